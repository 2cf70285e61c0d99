package model

import (
	"time"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/codec"
	"github.com/reoring/courier/dsl"
)

type ListAuditEventsRequest struct {
	Cursor courier.Opt[string]
}

var ListAuditEventsRequestSchema = dsl.Object(
	dsl.Optional("cursor", dsl.String(), func(r *ListAuditEventsRequest) *courier.Opt[string] { return &r.Cursor }),
).MustBuild()

type Actor struct {
	ID    courier.Opt[string]
	Email courier.Opt[string]
}

var ActorSchema = dsl.Object(
	dsl.Optional("id", dsl.String(), func(a *Actor) *courier.Opt[string] { return &a.ID }),
	dsl.Optional("email", dsl.String(), func(a *Actor) *courier.Opt[string] { return &a.Email }),
).MustBuild()

type Target struct {
	ID    courier.Opt[string]
	Email courier.Opt[string]
}

var TargetSchema = dsl.Object(
	dsl.Optional("id", dsl.String(), func(t *Target) *courier.Opt[string] { return &t.ID }),
	dsl.Optional("email", dsl.String(), func(t *Target) *courier.Opt[string] { return &t.Email }),
).MustBuild()

// AuditEvent is one entry of the workspace audit log.
type AuditEvent struct {
	Actor        courier.Opt[Actor]
	AuditEventID string
	Source       string
	Target       courier.Opt[Target]
	Timestamp    time.Time
	Type         string
}

var AuditEventSchema = dsl.Object(
	dsl.Optional("actor", ActorSchema, func(e *AuditEvent) *courier.Opt[Actor] { return &e.Actor }),
	dsl.Required("auditEventID", dsl.String(), func(e *AuditEvent) *string { return &e.AuditEventID }).Key("auditEventId"),
	dsl.Required("source", dsl.String(), func(e *AuditEvent) *string { return &e.Source }),
	dsl.Optional("target", TargetSchema, func(e *AuditEvent) *courier.Opt[Target] { return &e.Target }),
	dsl.Required("timestamp", codec.DateTime(), func(e *AuditEvent) *time.Time { return &e.Timestamp }),
	dsl.Required("type", dsl.String(), func(e *AuditEvent) *string { return &e.Type }),
).MustBuild()

type ListAuditEventsResponse struct {
	Paging  Paging
	Results []AuditEvent
}

var ListAuditEventsResponseSchema = dsl.Object(
	dsl.Required("paging", PagingSchema, func(r *ListAuditEventsResponse) *Paging { return &r.Paging }),
	dsl.Required("results", dsl.Array(AuditEventSchema), func(r *ListAuditEventsResponse) *[]AuditEvent { return &r.Results }),
).MustBuild()
