// Package dsl builds courier.Schema values.
//
// Leaves:
//
//	dsl.String(), dsl.Int(), dsl.Float(), dsl.Bool(), dsl.Any()
//	dsl.StringOf[T](), dsl.IntOf[T](), dsl.BoolOf[T]()
//	dsl.Enum(values...)
//
// Records bind wire keys to struct fields through accessors, so no
// reflection or struct tags are involved:
//
//	type ListAuditEventsRequest struct{ Cursor courier.Opt[string] }
//
//	dsl.Object(
//		dsl.Optional("cursor", dsl.String(), func(r *ListAuditEventsRequest) *courier.Opt[string] { return &r.Cursor }),
//	).MustBuild()
//
// Unknown keys are ignored unless UnknownStrict or UnknownPassthrough is
// chosen.
//
// Unions come in two flavors. OneOf tries its cases in declared order and
// keeps the first match; Discriminated selects a case by an object member.
// In both, the concrete Go type stored in the union interface identifies the
// case on dump:
//
//	type ExpiresIn interface{ isExpiresIn() }
//	type ExpiresInDuration string
//	type ExpiresInMillis int64
//
//	dsl.OneOf(
//		dsl.Case[ExpiresIn]("duration", dsl.StringOf[ExpiresInDuration]()),
//		dsl.Case[ExpiresIn]("millis", dsl.IntOf[ExpiresInMillis]()),
//	).MustBuild()
//
// Containers: Array, Map, Nullable. Adapters: Codec (wire/domain codecs),
// Convert (named types) and Erase (type erasure for registries).
package dsl
