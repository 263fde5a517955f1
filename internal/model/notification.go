// Package model defines the persisted entities of the delivery notifier.
//
// A Notification carries two independent state axes. Status tracks the
// delivery message itself, ConversationState tracks an active rescheduling
// dialogue. The permitted combinations:
//
//	status     | customer_response | conversation_state
//	-----------+-------------------+--------------------------------------
//	pending    | ""                | none
//	sent       | ""                | none
//	sent       | no                | rescheduling | rescheduled | handoff
//	sent       | stop              | none
//	delivered  | yes               | none
//	failed     | ""                | none
//	cancelled  | any               | none
//
// A conversation_state other than none is only ever entered after a "no"
// reply. A rescheduled date never mutates the original row: a new pending
// Notification is created with RescheduledFrom pointing back at it.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the delivery-message lifecycle state of a notification.
type Status string

const (
	StatusPending   Status = "pending"
	StatusSent      Status = "sent"
	StatusFailed    Status = "failed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Response is the classified customer reply, empty until one arrives.
type Response string

const (
	ResponseNone Response = ""
	ResponseYes  Response = "yes"
	ResponseNo   Response = "no"
	ResponseStop Response = "stop"
)

// ConversationState tracks the rescheduling sub-state machine.
type ConversationState string

const (
	ConversationNone         ConversationState = "none"
	ConversationRescheduling ConversationState = "rescheduling"
	ConversationRescheduled  ConversationState = "rescheduled"
	ConversationHandoff      ConversationState = "handoff"
)

// Notification represents one customer delivery notification.
type Notification struct {
	ID                uuid.UUID         `json:"id"`
	ExternalID        string            `json:"external_id"`   // route-planner stop id, dedup key; empty for rescheduled rows
	CustomerName      string            `json:"customer_name"` // display name used in the outbound message
	Phone             string            `json:"phone"`         // E.164
	Store             string            `json:"store"`         // resolved store/region tag, "unknown" when unresolved
	Address           string            `json:"address"`
	DeliveryDate      time.Time         `json:"delivery_date"` // calendar date, midnight in the service timezone
	TimeWindow        string            `json:"time_window"`   // canonical 2-hour window text, "TBD" for rescheduled rows
	RawTime           string            `json:"raw_time"`      // source time string as received
	Product           string            `json:"product"`
	Driver            string            `json:"driver"`
	Status            Status            `json:"status"`
	CustomerResponse  Response          `json:"customer_response"`
	ConversationState ConversationState `json:"conversation_state"`
	RescheduledFrom   *uuid.UUID        `json:"rescheduled_from,omitempty"` // originating notification when created via reschedule
	RescheduleCount   int               `json:"reschedule_count"`
	Retries           int               `json:"retries"`
	MessageID         string            `json:"message_id"`    // provider message id after a successful send
	ErrorMessage      string            `json:"error_message"` // provider error after a failed send
	SentAt            *time.Time        `json:"sent_at,omitempty"`
	RespondedAt       *time.Time        `json:"responded_at,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// TurnRole identifies who produced a conversation turn.
type TurnRole string

const (
	RoleCustomer  TurnRole = "customer"
	RoleAssistant TurnRole = "assistant"
)

// ConversationTurn is a single persisted turn of a rescheduling dialogue,
// append-only and scoped to one notification.
type ConversationTurn struct {
	ID             uuid.UUID `json:"id"`
	NotificationID uuid.UUID `json:"notification_id"`
	Role           TurnRole  `json:"role"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}

// ActivityEvent is an operator-facing log entry. Customers never see these.
type ActivityEvent struct {
	ID             uuid.UUID  `json:"id"`
	Kind           string     `json:"kind"` // e.g. "ingested", "skipped", "reply", "batch"
	NotificationID *uuid.UUID `json:"notification_id,omitempty"`
	Detail         string     `json:"detail"`
	CreatedAt      time.Time  `json:"created_at"`
}

// DaySummary aggregates notification counts for one delivery date,
// used by the staff report.
type DaySummary struct {
	Date         time.Time `json:"date"`
	Total        int       `json:"total"`
	Confirmed    int       `json:"confirmed"`
	Declined     int       `json:"declined"`
	NoReply      int       `json:"no_reply"`
	Pending      int       `json:"pending"`
	Failed       int       `json:"failed"`
	Rescheduling int       `json:"rescheduling"`
}
