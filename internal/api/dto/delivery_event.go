// Package dto defines the wire shapes accepted on the inbound webhooks.
package dto

import (
	"encoding/json"
)

// Stop is one delivery stop as pushed by the route-planning provider.
type Stop struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	ScheduledDate  string `json:"scheduled_date"` // YYYY-MM-DD
	ArrivalTime    string `json:"arrival_time"`   // free-form source time
	Classification string `json:"classification"` // store resolution key
	Product        string `json:"product"`
	Driver         string `json:"driver"`
	PlanID         string `json:"plan_id"`
}

// EventShape tags the recognized envelope variant of an inbound delivery
// event. The provider pushes several shapes; each is detected explicitly
// rather than scraped for plausible fields.
type EventShape string

const (
	ShapeStopArray    EventShape = "stop_array"   // bare JSON array of stops
	ShapeSingleStop   EventShape = "single_stop"  // {"stop": {...}}
	ShapeRoute        EventShape = "route"        // {"route": {"id": ..., "stops": [...]}}
	ShapeEnvelope     EventShape = "envelope"     // {"type": ..., "data": ...}
	ShapeBareStop     EventShape = "bare_stop"    // a stop object at the top level
	ShapeUnrecognized EventShape = "unrecognized" // logged and dropped
)

// DeliveryEvent is the normalized form of any recognized inbound shape.
type DeliveryEvent struct {
	Shape  EventShape
	Type   string // envelope event type, when present
	PlanID string // route/plan identifier, when present
	Stops  []Stop
}

type routeBody struct {
	ID    string `json:"id"`
	Stops []Stop `json:"stops"`
}

type objectEvent struct {
	Stop  *Stop            `json:"stop"`
	Route *routeBody       `json:"route"`
	Type  string           `json:"type"`
	Data  *json.RawMessage `json:"data"`
}

// ParseDeliveryEvent recognizes the tagged inbound shapes and normalizes
// them into a flat stop list. Unrecognized payloads come back with
// ShapeUnrecognized and no stops; the caller logs and moves on.
func ParseDeliveryEvent(raw []byte) DeliveryEvent {
	// Bare array of stops.
	var stops []Stop
	if err := json.Unmarshal(raw, &stops); err == nil {
		return DeliveryEvent{Shape: ShapeStopArray, Stops: stops}
	}

	var obj objectEvent
	if err := json.Unmarshal(raw, &obj); err != nil {
		return DeliveryEvent{Shape: ShapeUnrecognized}
	}

	switch {
	case obj.Route != nil:
		return DeliveryEvent{Shape: ShapeRoute, PlanID: obj.Route.ID, Stops: obj.Route.Stops}

	case obj.Stop != nil:
		return DeliveryEvent{Shape: ShapeSingleStop, Stops: []Stop{*obj.Stop}}

	case obj.Type != "" && obj.Data != nil:
		inner := ParseDeliveryEvent(*obj.Data)
		if inner.Shape == ShapeUnrecognized {
			return DeliveryEvent{Shape: ShapeUnrecognized, Type: obj.Type}
		}
		inner.Shape = ShapeEnvelope
		inner.Type = obj.Type
		return inner
	}

	// A stop-like object at the top level: require at least an id or a
	// phone alongside an address to avoid treating arbitrary JSON as a stop.
	var stop Stop
	if err := json.Unmarshal(raw, &stop); err == nil {
		if stop.ID != "" || (stop.Phone != "" && stop.Address != "") {
			return DeliveryEvent{Shape: ShapeBareStop, Stops: []Stop{stop}}
		}
	}

	return DeliveryEvent{Shape: ShapeUnrecognized}
}

// InboundSMS is the SMS gateway's inbound message webhook payload.
type InboundSMS struct {
	Direction string `json:"direction" validate:"required"` // only "incoming" is processed
	From      string `json:"from" validate:"required"`
	Body      string `json:"body"`
}
