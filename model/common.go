package model

import (
	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
)

// Paging is the cursor block attached to list responses.
type Paging struct {
	Cursor courier.Opt[string]
	More   bool
}

var PagingSchema = dsl.Object(
	dsl.Optional("cursor", dsl.String(), func(p *Paging) *courier.Opt[string] { return &p.Cursor }),
	dsl.Required("more", dsl.Bool(), func(p *Paging) *bool { return &p.More }),
).MustBuild()

// Data is a free-form JSON object such as template variables.
type Data = map[string]any

var dataSchema = dsl.Map(dsl.Any())
