package model

import (
	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
)

// TopicPreference is a recipient's setting for one subscription topic.
type TopicPreference struct {
	CustomRouting    courier.Opt[[]ChannelClassification]
	DefaultStatus    PreferenceStatus
	HasCustomRouting courier.Opt[bool]
	Status           PreferenceStatus
	TopicID          string
	TopicName        string
}

var channelsSchema = dsl.Array[ChannelClassification](ChannelClassificationSchema)

var TopicPreferenceSchema = dsl.Object(
	dsl.Optional("customRouting", channelsSchema, func(p *TopicPreference) *courier.Opt[[]ChannelClassification] { return &p.CustomRouting }).Key("custom_routing"),
	dsl.Required("defaultStatus", PreferenceStatusSchema, func(p *TopicPreference) *PreferenceStatus { return &p.DefaultStatus }).Key("default_status"),
	dsl.Optional("hasCustomRouting", dsl.Bool(), func(p *TopicPreference) *courier.Opt[bool] { return &p.HasCustomRouting }).Key("has_custom_routing"),
	dsl.Required("status", PreferenceStatusSchema, func(p *TopicPreference) *PreferenceStatus { return &p.Status }),
	dsl.Required("topicID", dsl.String(), func(p *TopicPreference) *string { return &p.TopicID }).Key("topic_id"),
	dsl.Required("topicName", dsl.String(), func(p *TopicPreference) *string { return &p.TopicName }).Key("topic_name"),
).MustBuild()

// SubscriptionTopic is the writable part of a topic preference.
type SubscriptionTopic struct {
	Status           PreferenceStatus
	HasCustomRouting courier.Opt[bool]
	CustomRouting    courier.Opt[[]ChannelClassification]
}

var SubscriptionTopicSchema = dsl.Object(
	dsl.Required("status", PreferenceStatusSchema, func(t *SubscriptionTopic) *PreferenceStatus { return &t.Status }),
	dsl.Optional("hasCustomRouting", dsl.Bool(), func(t *SubscriptionTopic) *courier.Opt[bool] { return &t.HasCustomRouting }).Key("has_custom_routing"),
	dsl.Optional("customRouting", channelsSchema, func(t *SubscriptionTopic) *courier.Opt[[]ChannelClassification] { return &t.CustomRouting }).Key("custom_routing"),
).MustBuild()

type UpdateSubscriptionTopicRequest struct {
	Topic SubscriptionTopic
}

var UpdateSubscriptionTopicRequestSchema = dsl.Object(
	dsl.Required("topic", SubscriptionTopicSchema, func(r *UpdateSubscriptionTopicRequest) *SubscriptionTopic { return &r.Topic }),
).MustBuild()

type ListUserPreferencesResponse struct {
	Items  []TopicPreference
	Paging Paging
}

var ListUserPreferencesResponseSchema = dsl.Object(
	dsl.Required("items", dsl.Array(TopicPreferenceSchema), func(r *ListUserPreferencesResponse) *[]TopicPreference { return &r.Items }),
	dsl.Required("paging", PagingSchema, func(r *ListUserPreferencesResponse) *Paging { return &r.Paging }),
).MustBuild()
