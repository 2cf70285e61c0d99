package model

import (
	"github.com/reoring/courier/dsl"
)

// Entry names one schema in the registry.
type Entry struct {
	Name    string
	Adapter dsl.AnyAdapter
}

var registry = []Entry{
	{"AuditEvent", dsl.Erase(AuditEventSchema)},
	{"Content", dsl.Erase(ContentSchema)},
	{"ElementalNode", dsl.Erase(ElementalNodeSchema)},
	{"Expiry", dsl.Erase(ExpirySchema)},
	{"IssueTokenRequest", dsl.Erase(IssueTokenRequestSchema)},
	{"IssueTokenResponse", dsl.Erase(IssueTokenResponseSchema)},
	{"List", dsl.Erase(ListSchema)},
	{"ListAuditEventsRequest", dsl.Erase(ListAuditEventsRequestSchema)},
	{"ListAuditEventsResponse", dsl.Erase(ListAuditEventsResponseSchema)},
	{"ListGetAllResponse", dsl.Erase(ListGetAllResponseSchema)},
	{"ListUserPreferencesResponse", dsl.Erase(ListUserPreferencesResponseSchema)},
	{"Message", dsl.Erase(MessageSchema)},
	{"MessageDetails", dsl.Erase(MessageDetailsSchema)},
	{"MessageRecipient", dsl.Erase(MessageRecipientSchema)},
	{"MessageStatus", dsl.Erase[MessageStatus](MessageStatusSchema)},
	{"Paging", dsl.Erase(PagingSchema)},
	{"PreferenceStatus", dsl.Erase[PreferenceStatus](PreferenceStatusSchema)},
	{"SendMessageRequest", dsl.Erase(SendMessageRequestSchema)},
	{"SendMessageResponse", dsl.Erase(SendMessageResponseSchema)},
	{"TopicPreference", dsl.Erase(TopicPreferenceSchema)},
	{"UpdateSubscriptionTopicRequest", dsl.Erase(UpdateSubscriptionTopicRequestSchema)},
}

// Registry returns the named schemas sorted by name.
func Registry() []Entry { return append([]Entry(nil), registry...) }

// Names lists the registry names in order.
func Names() []string {
	out := make([]string, len(registry))
	for i, e := range registry {
		out[i] = e.Name
	}
	return out
}

// Lookup returns the schema registered under name.
func Lookup(name string) (dsl.AnyAdapter, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e.Adapter, true
		}
	}
	return dsl.AnyAdapter{}, false
}
