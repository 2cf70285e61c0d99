package model

import "github.com/reoring/courier/dsl"

// PreferenceStatus is a recipient's opt-in state for a subscription topic.
type PreferenceStatus string

const (
	PreferenceStatusOptedIn  PreferenceStatus = "OPTED_IN"
	PreferenceStatusOptedOut PreferenceStatus = "OPTED_OUT"
	PreferenceStatusRequired PreferenceStatus = "REQUIRED"
)

var PreferenceStatusSchema = dsl.Enum(
	PreferenceStatusOptedIn,
	PreferenceStatusOptedOut,
	PreferenceStatusRequired,
)

// ChannelClassification names a delivery channel family.
type ChannelClassification string

const (
	ChannelDirectMessage ChannelClassification = "direct_message"
	ChannelEmail         ChannelClassification = "email"
	ChannelPush          ChannelClassification = "push"
	ChannelSMS           ChannelClassification = "sms"
	ChannelWebhook       ChannelClassification = "webhook"
	ChannelInbox         ChannelClassification = "inbox"
)

var ChannelClassificationSchema = dsl.Enum(
	ChannelDirectMessage,
	ChannelEmail,
	ChannelPush,
	ChannelSMS,
	ChannelWebhook,
	ChannelInbox,
)

// MessageStatus is the delivery state reported for a sent message.
type MessageStatus string

const (
	MessageStatusCanceled      MessageStatus = "CANCELED"
	MessageStatusClicked       MessageStatus = "CLICKED"
	MessageStatusDelayed       MessageStatus = "DELAYED"
	MessageStatusDelivered     MessageStatus = "DELIVERED"
	MessageStatusDigested      MessageStatus = "DIGESTED"
	MessageStatusEnqueued      MessageStatus = "ENQUEUED"
	MessageStatusFiltered      MessageStatus = "FILTERED"
	MessageStatusOpened        MessageStatus = "OPENED"
	MessageStatusRouted        MessageStatus = "ROUTED"
	MessageStatusSent          MessageStatus = "SENT"
	MessageStatusSimulated     MessageStatus = "SIMULATED"
	MessageStatusThrottled     MessageStatus = "THROTTLED"
	MessageStatusUndeliverable MessageStatus = "UNDELIVERABLE"
	MessageStatusUnmapped      MessageStatus = "UNMAPPED"
	MessageStatusUnroutable    MessageStatus = "UNROUTABLE"
)

var MessageStatusSchema = dsl.Enum(
	MessageStatusCanceled,
	MessageStatusClicked,
	MessageStatusDelayed,
	MessageStatusDelivered,
	MessageStatusDigested,
	MessageStatusEnqueued,
	MessageStatusFiltered,
	MessageStatusOpened,
	MessageStatusRouted,
	MessageStatusSent,
	MessageStatusSimulated,
	MessageStatusThrottled,
	MessageStatusUndeliverable,
	MessageStatusUnmapped,
	MessageStatusUnroutable,
)

// Reason explains an undelivered or filtered message.
type Reason string

const (
	ReasonBounced       Reason = "BOUNCED"
	ReasonFailed        Reason = "FAILED"
	ReasonFiltered      Reason = "FILTERED"
	ReasonNoChannels    Reason = "NO_CHANNELS"
	ReasonNoProviders   Reason = "NO_PROVIDERS"
	ReasonOptInRequired Reason = "OPT_IN_REQUIRED"
	ReasonProviderError Reason = "PROVIDER_ERROR"
	ReasonUnpublished   Reason = "UNPUBLISHED"
	ReasonUnsubscribed  Reason = "UNSUBSCRIBED"
)

var ReasonSchema = dsl.Enum(
	ReasonBounced,
	ReasonFailed,
	ReasonFiltered,
	ReasonNoChannels,
	ReasonNoProviders,
	ReasonOptInRequired,
	ReasonProviderError,
	ReasonUnpublished,
	ReasonUnsubscribed,
)

type RoutingMethod string

const (
	RoutingMethodAll    RoutingMethod = "all"
	RoutingMethodSingle RoutingMethod = "single"
)

var RoutingMethodSchema = dsl.Enum(RoutingMethodAll, RoutingMethodSingle)

type Alignment string

const (
	AlignmentCenter Alignment = "center"
	AlignmentLeft   Alignment = "left"
	AlignmentRight  Alignment = "right"
	AlignmentFull   Alignment = "full"
)

var AlignmentSchema = dsl.Enum(AlignmentCenter, AlignmentLeft, AlignmentRight, AlignmentFull)

type ActionStyle string

const (
	ActionStyleButton ActionStyle = "button"
	ActionStyleLink   ActionStyle = "link"
)

var ActionStyleSchema = dsl.Enum(ActionStyleButton, ActionStyleLink)
