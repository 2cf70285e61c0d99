// Package model declares Courier API request and response types together
// with the schemas that coerce them from decoded JSON and dump them back.
//
// Every exported type T has a matching TSchema variable. Top-level request
// and response types also implement json.Marshaler and json.Unmarshaler
// through their schema, so they can be handed directly to an HTTP layer.
package model
