// Package summary renders the staff day summary as natural language.
package summary

import (
	"context"
	"fmt"

	"github.com/courierloop/delivery-notifier/internal/model"
)

type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Renderer turns a DaySummary into a short staff-facing message via a
// chat-completions API. Callers fall back to a fixed template when it
// errors or returns nothing.
type Renderer struct {
	llm completer
}

// NewRenderer wires the renderer onto a completions client.
func NewRenderer(llm completer) *Renderer {
	return &Renderer{llm: llm}
}

const systemPrompt = `You write one short SMS for delivery staff summarizing tomorrow's deliveries.
One or two sentences, plain text, no emoji, no greeting. Mention anything that needs attention (failures, customers still rescheduling).`

// RenderSummary asks the model for a one-sentence summary of the counts.
func (r *Renderer) RenderSummary(ctx context.Context, s model.DaySummary) (string, error) {
	prompt := fmt.Sprintf(
		"Date: %s. Total deliveries: %d. Confirmed: %d. Declined: %d. No reply yet: %d. Not yet notified: %d. Send failures: %d. Still rescheduling: %d.",
		s.Date.Format("Monday, January 2"),
		s.Total, s.Confirmed, s.Declined, s.NoReply, s.Pending, s.Failed, s.Rescheduling,
	)

	return r.llm.Complete(ctx, systemPrompt, prompt)
}
