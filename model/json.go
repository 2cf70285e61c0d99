package model

import (
	"context"

	courier "github.com/reoring/courier"
)

func marshal[T any](s courier.Schema[T], v T) ([]byte, error) {
	return courier.EncodeJSON(context.Background(), s, v)
}

func unmarshal[T any](s courier.Schema[T], data []byte, dst *T) error {
	v, err := courier.DecodeJSON(context.Background(), s, data)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func (r ListAuditEventsRequest) MarshalJSON() ([]byte, error) {
	return marshal(ListAuditEventsRequestSchema, r)
}

func (r *ListAuditEventsRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(ListAuditEventsRequestSchema, data, r)
}

func (r ListAuditEventsResponse) MarshalJSON() ([]byte, error) {
	return marshal(ListAuditEventsResponseSchema, r)
}

func (r *ListAuditEventsResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(ListAuditEventsResponseSchema, data, r)
}

func (r IssueTokenRequest) MarshalJSON() ([]byte, error) {
	return marshal(IssueTokenRequestSchema, r)
}

func (r *IssueTokenRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(IssueTokenRequestSchema, data, r)
}

func (r IssueTokenResponse) MarshalJSON() ([]byte, error) {
	return marshal(IssueTokenResponseSchema, r)
}

func (r *IssueTokenResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(IssueTokenResponseSchema, data, r)
}

func (r UpdateSubscriptionTopicRequest) MarshalJSON() ([]byte, error) {
	return marshal(UpdateSubscriptionTopicRequestSchema, r)
}

func (r *UpdateSubscriptionTopicRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(UpdateSubscriptionTopicRequestSchema, data, r)
}

func (r ListUserPreferencesResponse) MarshalJSON() ([]byte, error) {
	return marshal(ListUserPreferencesResponseSchema, r)
}

func (r *ListUserPreferencesResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(ListUserPreferencesResponseSchema, data, r)
}

func (m MessageDetails) MarshalJSON() ([]byte, error) {
	return marshal(MessageDetailsSchema, m)
}

func (m *MessageDetails) UnmarshalJSON(data []byte) error {
	return unmarshal(MessageDetailsSchema, data, m)
}

func (r SendMessageRequest) MarshalJSON() ([]byte, error) {
	return marshal(SendMessageRequestSchema, r)
}

func (r *SendMessageRequest) UnmarshalJSON(data []byte) error {
	return unmarshal(SendMessageRequestSchema, data, r)
}

func (r SendMessageResponse) MarshalJSON() ([]byte, error) {
	return marshal(SendMessageResponseSchema, r)
}

func (r *SendMessageResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(SendMessageResponseSchema, data, r)
}

func (l List) MarshalJSON() ([]byte, error) {
	return marshal(ListSchema, l)
}

func (l *List) UnmarshalJSON(data []byte) error {
	return unmarshal(ListSchema, data, l)
}

func (r ListGetAllResponse) MarshalJSON() ([]byte, error) {
	return marshal(ListGetAllResponseSchema, r)
}

func (r *ListGetAllResponse) UnmarshalJSON(data []byte) error {
	return unmarshal(ListGetAllResponseSchema, data, r)
}
