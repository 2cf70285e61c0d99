package model

import (
	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
)

// ---- recipients ----

// MessageRecipient is the "to" of a message: one recipient or a list of
// them. Implementations: ListRecipient, AudienceRecipient, UserRecipient,
// RecipientList.
type MessageRecipient interface{ isMessageRecipient() }

// Recipient is a single addressee. RecipientList elements are Recipients.
type Recipient interface {
	MessageRecipient
	isRecipient()
}

type ListRecipient struct {
	ListID string
	Data   courier.Opt[Data]
}

type AudienceRecipient struct {
	AudienceID string
	Data       courier.Opt[Data]
}

// UserRecipient addresses a user profile or raw contact details. Every
// field is optional, so it accepts any object.
type UserRecipient struct {
	UserID      courier.Opt[string]
	Email       courier.Opt[string]
	PhoneNumber courier.Opt[string]
	Locale      courier.Opt[string]
	Data        courier.Opt[Data]
}

type RecipientList []Recipient

func (ListRecipient) isMessageRecipient()     {}
func (AudienceRecipient) isMessageRecipient() {}
func (UserRecipient) isMessageRecipient()     {}
func (RecipientList) isMessageRecipient()     {}

func (ListRecipient) isRecipient()     {}
func (AudienceRecipient) isRecipient() {}
func (UserRecipient) isRecipient()     {}

var ListRecipientSchema = dsl.Object(
	dsl.Required("listID", dsl.String(), func(r *ListRecipient) *string { return &r.ListID }).Key("list_id"),
	dsl.Optional("data", dataSchema, func(r *ListRecipient) *courier.Opt[Data] { return &r.Data }),
).MustBuild()

var AudienceRecipientSchema = dsl.Object(
	dsl.Required("audienceID", dsl.String(), func(r *AudienceRecipient) *string { return &r.AudienceID }).Key("audience_id"),
	dsl.Optional("data", dataSchema, func(r *AudienceRecipient) *courier.Opt[Data] { return &r.Data }),
).MustBuild()

var UserRecipientSchema = dsl.Object(
	dsl.Optional("userID", dsl.String(), func(r *UserRecipient) *courier.Opt[string] { return &r.UserID }).Key("user_id"),
	dsl.Optional("email", dsl.String(), func(r *UserRecipient) *courier.Opt[string] { return &r.Email }),
	dsl.Optional("phoneNumber", dsl.String(), func(r *UserRecipient) *courier.Opt[string] { return &r.PhoneNumber }).Key("phone_number"),
	dsl.Optional("locale", dsl.String(), func(r *UserRecipient) *courier.Opt[string] { return &r.Locale }),
	dsl.Optional("data", dataSchema, func(r *UserRecipient) *courier.Opt[Data] { return &r.Data }),
).MustBuild()

// UserRecipient goes last: it matches every object.
var RecipientSchema = dsl.OneOf(
	dsl.Case[Recipient]("list", ListRecipientSchema),
	dsl.Case[Recipient]("audience", AudienceRecipientSchema),
	dsl.Case[Recipient]("user", UserRecipientSchema),
).MustBuild()

var RecipientListSchema = dsl.Convert(dsl.Array(RecipientSchema),
	func(rs []Recipient) RecipientList { return RecipientList(rs) },
	func(rl RecipientList) []Recipient { return []Recipient(rl) },
)

var MessageRecipientSchema = dsl.OneOf(
	dsl.Case[MessageRecipient]("list", ListRecipientSchema),
	dsl.Case[MessageRecipient]("audience", AudienceRecipientSchema),
	dsl.Case[MessageRecipient]("user", UserRecipientSchema),
	dsl.Case[MessageRecipient]("recipients", RecipientListSchema),
).MustBuild()

// ---- content ----

// Content is either full Elemental content or the title/body shorthand.
type Content interface{ isContent() }

type ElementalContent struct {
	Version  string
	Brand    courier.Opt[string]
	Elements []ElementalNode
}

// ElementalContentSugar is the shorthand rendered as a title and a text
// block.
type ElementalContentSugar struct {
	Title string
	Body  string
}

func (ElementalContent) isContent()      {}
func (ElementalContentSugar) isContent() {}

// ElementalNode is one block of Elemental content, tagged by "type".
type ElementalNode interface{ isElementalNode() }

type ElementalTextNode struct {
	Content  string
	Align    courier.Opt[Alignment]
	Channels courier.Opt[[]string]
	If       courier.Opt[string]
}

type ElementalMetaNode struct {
	Title courier.Opt[string]
}

type ElementalImageNode struct {
	Src     string
	Href    courier.Opt[string]
	AltText courier.Opt[string]
	Align   courier.Opt[Alignment]
}

type ElementalActionNode struct {
	Content string
	Href    string
	Style   courier.Opt[ActionStyle]
	Align   courier.Opt[Alignment]
}

type ElementalDividerNode struct {
	Color courier.Opt[string]
}

func (ElementalTextNode) isElementalNode()    {}
func (ElementalMetaNode) isElementalNode()    {}
func (ElementalImageNode) isElementalNode()   {}
func (ElementalActionNode) isElementalNode()  {}
func (ElementalDividerNode) isElementalNode() {}

var ElementalNodeSchema = dsl.Discriminated("type",
	dsl.Case[ElementalNode]("text", dsl.Object(
		dsl.Required("content", dsl.String(), func(n *ElementalTextNode) *string { return &n.Content }),
		dsl.Optional("align", AlignmentSchema, func(n *ElementalTextNode) *courier.Opt[Alignment] { return &n.Align }),
		dsl.Optional("channels", dsl.Array(dsl.String()), func(n *ElementalTextNode) *courier.Opt[[]string] { return &n.Channels }),
		dsl.Optional("if", dsl.String(), func(n *ElementalTextNode) *courier.Opt[string] { return &n.If }),
	).MustBuild()),
	dsl.Case[ElementalNode]("meta", dsl.Object(
		dsl.Optional("title", dsl.String(), func(n *ElementalMetaNode) *courier.Opt[string] { return &n.Title }),
	).MustBuild()),
	dsl.Case[ElementalNode]("image", dsl.Object(
		dsl.Required("src", dsl.String(), func(n *ElementalImageNode) *string { return &n.Src }),
		dsl.Optional("href", dsl.String(), func(n *ElementalImageNode) *courier.Opt[string] { return &n.Href }),
		dsl.Optional("altText", dsl.String(), func(n *ElementalImageNode) *courier.Opt[string] { return &n.AltText }),
		dsl.Optional("align", AlignmentSchema, func(n *ElementalImageNode) *courier.Opt[Alignment] { return &n.Align }),
	).MustBuild()),
	dsl.Case[ElementalNode]("action", dsl.Object(
		dsl.Required("content", dsl.String(), func(n *ElementalActionNode) *string { return &n.Content }),
		dsl.Required("href", dsl.String(), func(n *ElementalActionNode) *string { return &n.Href }),
		dsl.Optional("style", ActionStyleSchema, func(n *ElementalActionNode) *courier.Opt[ActionStyle] { return &n.Style }),
		dsl.Optional("align", AlignmentSchema, func(n *ElementalActionNode) *courier.Opt[Alignment] { return &n.Align }),
	).MustBuild()),
	dsl.Case[ElementalNode]("divider", dsl.Object(
		dsl.Optional("color", dsl.String(), func(n *ElementalDividerNode) *courier.Opt[string] { return &n.Color }),
	).MustBuild()),
).MustBuild()

var ElementalContentSchema = dsl.Object(
	dsl.Required("version", dsl.String(), func(c *ElementalContent) *string { return &c.Version }),
	dsl.Optional("brand", dsl.String(), func(c *ElementalContent) *courier.Opt[string] { return &c.Brand }),
	dsl.Required("elements", dsl.Array(ElementalNodeSchema), func(c *ElementalContent) *[]ElementalNode { return &c.Elements }),
).MustBuild()

var ElementalContentSugarSchema = dsl.Object(
	dsl.Required("title", dsl.String(), func(c *ElementalContentSugar) *string { return &c.Title }),
	dsl.Required("body", dsl.String(), func(c *ElementalContentSugar) *string { return &c.Body }),
).MustBuild()

var ContentSchema = dsl.OneOf(
	dsl.Case[Content]("elemental", ElementalContentSchema),
	dsl.Case[Content]("sugar", ElementalContentSugarSchema),
).MustBuild()

// ---- routing and expiry ----

type Routing struct {
	Method   RoutingMethod
	Channels []string
}

var RoutingSchema = dsl.Object(
	dsl.Required("method", RoutingMethodSchema, func(r *Routing) *RoutingMethod { return &r.Method }),
	dsl.Required("channels", dsl.Array(dsl.String()), func(r *Routing) *[]string { return &r.Channels }),
).MustBuild()

// ExpiresIn is either a duration string ("2 days") or milliseconds.
type ExpiresIn interface{ isExpiresIn() }

type ExpiresInDuration string

type ExpiresInMillis int64

func (ExpiresInDuration) isExpiresIn() {}
func (ExpiresInMillis) isExpiresIn()   {}

// A JSON string never coerces to an integer, so "5" is a duration whatever
// the case order.
var ExpiresInSchema = dsl.OneOf(
	dsl.Case[ExpiresIn]("duration", dsl.StringOf[ExpiresInDuration]()),
	dsl.Case[ExpiresIn]("millis", dsl.IntOf[ExpiresInMillis]()),
).MustBuild()

type Expiry struct {
	ExpiresAt courier.Opt[string]
	ExpiresIn ExpiresIn
}

var ExpirySchema = dsl.Object(
	dsl.Optional("expiresAt", dsl.String(), func(e *Expiry) *courier.Opt[string] { return &e.ExpiresAt }).Key("expires_at"),
	dsl.Required("expiresIn", ExpiresInSchema, func(e *Expiry) *ExpiresIn { return &e.ExpiresIn }).Key("expires_in"),
).MustBuild()

// ---- message ----

type Message struct {
	To       courier.Opt[MessageRecipient]
	Content  courier.Opt[Content]
	Template courier.Opt[string]
	Data     courier.Opt[Data]
	Routing  courier.Opt[Routing]
	Expiry   courier.Opt[Expiry]
	BrandID  courier.Opt[string]
}

var MessageSchema = dsl.Object(
	dsl.Optional("to", MessageRecipientSchema, func(m *Message) *courier.Opt[MessageRecipient] { return &m.To }),
	dsl.Optional("content", ContentSchema, func(m *Message) *courier.Opt[Content] { return &m.Content }),
	dsl.Optional("template", dsl.String(), func(m *Message) *courier.Opt[string] { return &m.Template }),
	dsl.Optional("data", dataSchema, func(m *Message) *courier.Opt[Data] { return &m.Data }),
	dsl.Optional("routing", RoutingSchema, func(m *Message) *courier.Opt[Routing] { return &m.Routing }),
	dsl.Optional("expiry", ExpirySchema, func(m *Message) *courier.Opt[Expiry] { return &m.Expiry }),
	dsl.Optional("brandID", dsl.String(), func(m *Message) *courier.Opt[string] { return &m.BrandID }).Key("brand_id"),
).MustBuild()

type SendMessageRequest struct {
	Message Message
}

var SendMessageRequestSchema = dsl.Object(
	dsl.Required("message", MessageSchema, func(r *SendMessageRequest) *Message { return &r.Message }),
).MustBuild()

type SendMessageResponse struct {
	RequestID string
}

var SendMessageResponseSchema = dsl.Object(
	dsl.Required("requestID", dsl.String(), func(r *SendMessageResponse) *string { return &r.RequestID }).Key("requestId"),
).MustBuild()
