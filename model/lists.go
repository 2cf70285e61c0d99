package model

import (
	"time"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/codec"
	"github.com/reoring/courier/dsl"
)

// List is a named group of subscribed recipients.
type List struct {
	ID      string
	Name    string
	Created courier.Opt[time.Time]
	Updated courier.Opt[time.Time]
}

var ListSchema = dsl.Object(
	dsl.Required("id", dsl.String(), func(l *List) *string { return &l.ID }),
	dsl.Required("name", dsl.String(), func(l *List) *string { return &l.Name }),
	dsl.Optional("created", codec.DateTime(), func(l *List) *courier.Opt[time.Time] { return &l.Created }),
	dsl.Optional("updated", codec.DateTime(), func(l *List) *courier.Opt[time.Time] { return &l.Updated }),
).MustBuild()

type ListGetAllResponse struct {
	Paging Paging
	Items  []List
}

var ListGetAllResponseSchema = dsl.Object(
	dsl.Required("paging", PagingSchema, func(r *ListGetAllResponse) *Paging { return &r.Paging }),
	dsl.Required("items", dsl.Array(ListSchema), func(r *ListGetAllResponse) *[]List { return &r.Items }),
).MustBuild()
