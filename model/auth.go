package model

import (
	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
)

// IssueTokenRequest asks for a scoped JWT. ExpiresIn takes a duration
// string such as "2 days".
type IssueTokenRequest struct {
	Scope     string
	ExpiresIn courier.Opt[string]
}

var IssueTokenRequestSchema = dsl.Object(
	dsl.Required("scope", dsl.String(), func(r *IssueTokenRequest) *string { return &r.Scope }),
	dsl.Optional("expiresIn", dsl.String(), func(r *IssueTokenRequest) *courier.Opt[string] { return &r.ExpiresIn }).Key("expires_in"),
).MustBuild()

type IssueTokenResponse struct {
	Token courier.Opt[string]
}

var IssueTokenResponseSchema = dsl.Object(
	dsl.Optional("token", dsl.String(), func(r *IssueTokenResponse) *courier.Opt[string] { return &r.Token }),
).MustBuild()
