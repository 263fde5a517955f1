// Package oracle implements the reschedule engine's date extraction
// oracle on top of a chat-completions API. The model is forced into a
// strict JSON contract; anything that doesn't parse is an error, never a
// guess — the engine treats those as transient and keeps the
// conversation open.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/courierloop/delivery-notifier/internal/model"
	"github.com/courierloop/delivery-notifier/internal/service/reschedule"
)

type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client adapts a chat-completions client to the DateOracle interface.
type Client struct {
	llm      completer
	location *time.Location
}

var _ reschedule.DateOracle = (*Client)(nil)

// NewClient wires the oracle onto a completions client.
func NewClient(llm completer, location *time.Location) *Client {
	return &Client{llm: llm, location: location}
}

const systemPrompt = `You help a delivery company reschedule deliveries over SMS.
Read the conversation and decide what the customer wants. Respond with ONLY a JSON object, no prose:
{"action":"confirm","date":"YYYY-MM-DD"} when the customer has clearly settled on one specific calendar date;
{"action":"clarify","reply":"..."} when you need to ask the customer a short clarifying question;
{"action":"handoff","reply":"..."} when the request needs a human (special instructions, complaints, anything beyond picking a date).
Replies are sent to the customer verbatim as SMS: keep them short, friendly and plain.
Never confirm a date the customer has not named or clearly agreed to.`

type wireResult struct {
	Action string `json:"action"`
	Date   string `json:"date"`
	Reply  string `json:"reply"`
}

// ExtractDate sends the conversation context to the model and parses the
// structured intent back out.
func (c *Client) ExtractDate(ctx context.Context, req reschedule.OracleRequest) (reschedule.OracleResult, error) {
	raw, err := c.llm.Complete(ctx, systemPrompt, c.userPrompt(req))
	if err != nil {
		return reschedule.OracleResult{}, fmt.Errorf("oracle completion: %w", err)
	}

	return c.parse(raw)
}

func (c *Client) userPrompt(req reschedule.OracleRequest) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Today is %s.\n", req.Today.Format("Monday, 2006-01-02"))
	fmt.Fprintf(&b, "The delivery was originally scheduled for %s at %s.\n",
		req.OriginalDate.Format("Monday, 2006-01-02"), req.Address)
	fmt.Fprintf(&b, "This area (%s) gets deliveries on: %s.\n", req.StoreTag, req.Store.DayNames())

	if len(req.Store.FlexibleDays) > 0 {
		names := make([]string, len(req.Store.FlexibleDays))
		for i, d := range req.Store.FlexibleDays {
			names[i] = d.String()
		}
		fmt.Fprintf(&b, "By exception a delivery can also happen on: %s.\n", strings.Join(names, ", "))
	}
	if req.Store.ExceptionNote != "" {
		fmt.Fprintf(&b, "Policy notes: %s\n", req.Store.ExceptionNote)
	}

	b.WriteString("\nConversation so far:\n")
	for _, turn := range req.History {
		who := "Customer"
		if turn.Role == model.RoleAssistant {
			who = "Us"
		}
		fmt.Fprintf(&b, "%s: %s\n", who, turn.Body)
	}

	return b.String()
}

// parse enforces the JSON contract. Models occasionally wrap JSON in
// code fences; that much is tolerated, nothing further.
func (c *Client) parse(raw string) (reschedule.OracleResult, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var wr wireResult
	if err := json.Unmarshal([]byte(raw), &wr); err != nil {
		return reschedule.OracleResult{}, fmt.Errorf("oracle returned non-JSON response: %w", err)
	}

	switch reschedule.OracleAction(wr.Action) {
	case reschedule.ActionConfirm:
		date, err := time.ParseInLocation("2006-01-02", wr.Date, c.location)
		if err != nil {
			return reschedule.OracleResult{}, fmt.Errorf("oracle confirmed unparseable date %q: %w", wr.Date, err)
		}
		return reschedule.OracleResult{Action: reschedule.ActionConfirm, Date: date}, nil

	case reschedule.ActionClarify, reschedule.ActionHandoff:
		if strings.TrimSpace(wr.Reply) == "" {
			return reschedule.OracleResult{}, fmt.Errorf("oracle action %q carried no reply", wr.Action)
		}
		return reschedule.OracleResult{Action: reschedule.OracleAction(wr.Action), Reply: wr.Reply}, nil
	}

	return reschedule.OracleResult{}, fmt.Errorf("oracle returned unknown action %q", wr.Action)
}
