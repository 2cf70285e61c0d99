package model

import (
	"time"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/codec"
	"github.com/reoring/courier/dsl"
)

// MessageDetails is the status record of one sent message. Timestamps are
// epoch milliseconds on the wire; zero means the step has not happened.
type MessageDetails struct {
	ID           string
	Status       MessageStatus
	Enqueued     time.Time
	Sent         time.Time
	Delivered    time.Time
	Opened       time.Time
	Clicked      time.Time
	Recipient    string
	Event        string
	Notification string
	Error        courier.Opt[string]
	Reason       courier.Opt[Reason]
}

var MessageDetailsSchema = dsl.Object(
	dsl.Required("id", dsl.String(), func(m *MessageDetails) *string { return &m.ID }),
	dsl.Required("status", MessageStatusSchema, func(m *MessageDetails) *MessageStatus { return &m.Status }),
	dsl.Required("enqueued", codec.Millis(), func(m *MessageDetails) *time.Time { return &m.Enqueued }),
	dsl.Required("sent", codec.Millis(), func(m *MessageDetails) *time.Time { return &m.Sent }),
	dsl.Required("delivered", codec.Millis(), func(m *MessageDetails) *time.Time { return &m.Delivered }),
	dsl.Required("opened", codec.Millis(), func(m *MessageDetails) *time.Time { return &m.Opened }),
	dsl.Required("clicked", codec.Millis(), func(m *MessageDetails) *time.Time { return &m.Clicked }),
	dsl.Required("recipient", dsl.String(), func(m *MessageDetails) *string { return &m.Recipient }),
	dsl.Required("event", dsl.String(), func(m *MessageDetails) *string { return &m.Event }),
	dsl.Required("notification", dsl.String(), func(m *MessageDetails) *string { return &m.Notification }),
	dsl.Optional("error", dsl.String(), func(m *MessageDetails) *courier.Opt[string] { return &m.Error }),
	dsl.Optional("reason", ReasonSchema, func(m *MessageDetails) *courier.Opt[Reason] { return &m.Reason }),
).MustBuild()
