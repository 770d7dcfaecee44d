// Package slashtypes defines the shared data model for the slashkit command
// schema and option resolution engine. This file contains the loosely-typed
// raw option tree received from the transport layer and the resolved entity
// bag that accompanies it.
package slashtypes

// RawKind identifies the variant held by a RawValue.
type RawKind int

const (
	// RawString holds a text value.
	RawString RawKind = iota
	// RawInteger holds a whole-number value.
	RawInteger
	// RawNumber holds a floating-point value.
	RawNumber
	// RawBool holds a true/false value.
	RawBool
	// RawRef holds an opaque entity ID for a by-reference option.
	RawRef
	// RawGroup holds nested options for a subcommand or group branch.
	RawGroup
)

// String returns a short name for the raw value kind, used in diagnostics.
func (k RawKind) String() string {
	switch k {
	case RawString:
		return "string"
	case RawInteger:
		return "integer"
	case RawNumber:
		return "number"
	case RawBool:
		return "boolean"
	case RawRef:
		return "reference"
	case RawGroup:
		return "group"
	default:
		return "unknown"
	}
}

// RawValue is one loosely-typed submitted value. Exactly one variant field is
// meaningful, selected by Kind. Raw values are created per interaction by the
// transport layer and discarded after resolution.
type RawValue struct {
	Kind  RawKind
	Str   string
	Int   int64
	Num   float64
	Bool  bool
	Ref   string
	Group []RawOption
}

// RawStr builds a string raw value.
func RawStr(v string) RawValue { return RawValue{Kind: RawString, Str: v} }

// RawInt builds an integer raw value.
func RawInt(v int64) RawValue { return RawValue{Kind: RawInteger, Int: v} }

// RawNum builds a floating-point raw value.
func RawNum(v float64) RawValue { return RawValue{Kind: RawNumber, Num: v} }

// RawBoolean builds a boolean raw value.
func RawBoolean(v bool) RawValue { return RawValue{Kind: RawBool, Bool: v} }

// RawReference builds a by-reference raw value holding an opaque entity ID.
func RawReference(id string) RawValue { return RawValue{Kind: RawRef, Ref: id} }

// RawGroupValue builds a nested-options raw value for subcommand dispatch.
func RawGroupValue(options ...RawOption) RawValue {
	return RawValue{Kind: RawGroup, Group: options}
}

// RawOption is one named submitted option as received from the transport.
type RawOption struct {
	// Name is the option name as submitted.
	Name string

	// Focused marks the option the user is actively editing in an
	// autocomplete interaction. Focused values receive relaxed validation.
	Focused bool

	// Value is the submitted payload.
	Value RawValue
}

// User is a resolved platform user.
type User struct {
	// ID is the user's opaque platform ID.
	ID string `json:"id"`

	// Username is the user's account name.
	Username string `json:"username"`

	// GlobalName is the user's display name, if set.
	GlobalName string `json:"global_name,omitempty"`

	// Bot reports whether the user is an application account.
	Bot bool `json:"bot,omitempty"`
}

// Member holds per-guild data for a resolved user.
type Member struct {
	// Nick is the member's guild-specific nickname, if set.
	Nick string `json:"nick,omitempty"`

	// Roles lists the member's role IDs.
	Roles []string `json:"roles,omitempty"`
}

// ResolvedUser pairs a resolved user with its guild member data, when the
// interaction happened inside a guild.
type ResolvedUser struct {
	// User is the resolved user.
	User User `json:"user"`

	// Member is the resolved guild member, if any.
	Member *Member `json:"member,omitempty"`
}

// Channel is a resolved platform channel.
type Channel struct {
	// ID is the channel's opaque platform ID.
	ID string `json:"id"`

	// Name is the channel name.
	Name string `json:"name"`

	// Kind is the channel kind.
	Kind ChannelKind `json:"type"`
}

// Role is a resolved guild role.
type Role struct {
	// ID is the role's opaque platform ID.
	ID string `json:"id"`

	// Name is the role name.
	Name string `json:"name"`
}

// Attachment is a resolved uploaded file.
type Attachment struct {
	// ID is the attachment's opaque platform ID.
	ID string `json:"id"`

	// Filename is the uploaded file name.
	Filename string `json:"filename"`

	// ContentType is the reported MIME type, if any.
	ContentType string `json:"content_type,omitempty"`

	// Size is the file size in bytes.
	Size int64 `json:"size"`

	// URL is the download location.
	URL string `json:"url"`
}

// Mentionable is a user-or-role union produced by Mentionable options.
// Exactly one of User and Role is non-nil.
type Mentionable struct {
	User *ResolvedUser
	Role *Role
}

// ID returns the opaque ID of whichever entity the mentionable holds.
func (m Mentionable) ID() string {
	if m.User != nil {
		return m.User.User.ID
	}
	if m.Role != nil {
		return m.Role.ID
	}
	return ""
}

// ResolvedBag is the side-table of fully-hydrated entities referenced by a
// raw option tree, keyed by opaque ID. It is supplied by the transport layer
// alongside each raw tree and is read-only during resolution.
type ResolvedBag struct {
	// Users maps user IDs to resolved users.
	Users map[string]User

	// Members maps user IDs to guild member data, when available.
	Members map[string]Member

	// Channels maps channel IDs to resolved channels.
	Channels map[string]Channel

	// Roles maps role IDs to resolved roles.
	Roles map[string]Role

	// Attachments maps attachment IDs to resolved attachments.
	Attachments map[string]Attachment
}

// UserByID looks up a resolved user, pairing it with member data if present.
func (b *ResolvedBag) UserByID(id string) (ResolvedUser, bool) {
	if b == nil {
		return ResolvedUser{}, false
	}
	user, ok := b.Users[id]
	if !ok {
		return ResolvedUser{}, false
	}
	resolved := ResolvedUser{User: user}
	if member, ok := b.Members[id]; ok {
		m := member
		resolved.Member = &m
	}
	return resolved, true
}

// ChannelByID looks up a resolved channel.
func (b *ResolvedBag) ChannelByID(id string) (Channel, bool) {
	if b == nil {
		return Channel{}, false
	}
	channel, ok := b.Channels[id]
	return channel, ok
}

// RoleByID looks up a resolved role.
func (b *ResolvedBag) RoleByID(id string) (Role, bool) {
	if b == nil {
		return Role{}, false
	}
	role, ok := b.Roles[id]
	return role, ok
}

// AttachmentByID looks up a resolved attachment.
func (b *ResolvedBag) AttachmentByID(id string) (Attachment, bool) {
	if b == nil {
		return Attachment{}, false
	}
	attachment, ok := b.Attachments[id]
	return attachment, ok
}

// MentionableByID looks up an ID that may refer to either a user or a role.
// Users take precedence, matching platform behavior.
func (b *ResolvedBag) MentionableByID(id string) (Mentionable, bool) {
	if user, ok := b.UserByID(id); ok {
		u := user
		return Mentionable{User: &u}, true
	}
	if role, ok := b.RoleByID(id); ok {
		r := role
		return Mentionable{Role: &r}, true
	}
	return Mentionable{}, false
}
