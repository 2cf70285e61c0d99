// Package courier is the typed JSON layer of a Courier API client.
//
// A Schema[T] coerces the generic value produced by a JSON decoder
// (map[string]any, []any, string, json.Number, bool, nil) into a typed Go
// value, and dumps a typed value back into a JSON-encodable tree. Schemas are
// composed with package dsl:
//
//	type IssueTokenRequest struct {
//		Scope     string
//		ExpiresIn courier.Opt[string]
//	}
//
//	var IssueTokenRequestSchema = dsl.Object(
//		dsl.Required("scope", dsl.String(), func(r *IssueTokenRequest) *string { return &r.Scope }),
//		dsl.Optional("expiresIn", dsl.String(), func(r *IssueTokenRequest) *courier.Opt[string] { return &r.ExpiresIn }).Key("expires_in"),
//	).MustBuild()
//
// Coercion is all-or-nothing: a record either comes back fully populated or
// the call returns Issues. Typed causes (*MissingFieldError,
// *TypeMismatchError, *UnknownEnumValueError, *NoMatchingVariantError) are
// reachable with errors.As.
//
// Optional fields use Opt[T], which keeps absent, explicit null and value
// apart so that Dump omits what was never set.
package courier
