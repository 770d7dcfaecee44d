// Package registration compiles validated command schemas into the wire
// payloads the platform's registration endpoint consumes. This file contains
// the wire representation.
package registration

// Payload is the wire representation of one command registration.
type Payload struct {
	// Name is the command name.
	Name string `json:"name"`

	// Description is the canonical command description.
	Description string `json:"description"`

	// NameLocalizations holds localized command names. Omitted when empty.
	NameLocalizations map[string]string `json:"name_localizations,omitempty"`

	// DescriptionLocalizations holds localized command descriptions.
	DescriptionLocalizations map[string]string `json:"description_localizations,omitempty"`

	// DefaultMemberPermissions is the permission bitflag set, serialized as
	// a decimal string per the platform wire format.
	DefaultMemberPermissions *string `json:"default_member_permissions,omitempty"`

	// DMPermission controls whether the command is available in DMs.
	DMPermission *bool `json:"dm_permission,omitempty"`

	// NSFW marks the command as age-restricted.
	NSFW bool `json:"nsfw"`

	// Contexts is the ordered list of installation context codes.
	Contexts []int `json:"contexts,omitempty"`

	// IntegrationTypes is the ordered list of integration type codes.
	IntegrationTypes []int `json:"integration_types,omitempty"`

	// Options is the command's option tree in declaration order.
	Options []OptionPayload `json:"options,omitempty"`
}

// OptionPayload is the wire representation of one option, recursive through
// subcommands and groups.
type OptionPayload struct {
	// Type is the option type's numeric wire code.
	Type int `json:"type"`

	// Name is the option name.
	Name string `json:"name"`

	// Description is the canonical option description.
	Description string `json:"description"`

	// NameLocalizations holds localized option names. Omitted when empty.
	NameLocalizations map[string]string `json:"name_localizations,omitempty"`

	// DescriptionLocalizations holds localized option descriptions.
	DescriptionLocalizations map[string]string `json:"description_localizations,omitempty"`

	// Required marks the option as mandatory. Omitted when false.
	Required bool `json:"required,omitempty"`

	// Autocomplete enables autocomplete interactions. Omitted when false.
	Autocomplete bool `json:"autocomplete,omitempty"`

	// Choices is the ordered list of declared choices.
	Choices []ChoicePayload `json:"choices,omitempty"`

	// MinValue and MaxValue bound Integer and Number options. The concrete
	// type is int64 for Integer options and float64 for Number options.
	MinValue any `json:"min_value,omitempty"`
	MaxValue any `json:"max_value,omitempty"`

	// MinLength and MaxLength bound String option lengths.
	MinLength *int `json:"min_length,omitempty"`
	MaxLength *int `json:"max_length,omitempty"`

	// ChannelTypes is the ordered list of permitted channel kind codes.
	ChannelTypes []int `json:"channel_types,omitempty"`

	// Options holds nested options for subcommands and groups.
	Options []OptionPayload `json:"options,omitempty"`
}

// ChoicePayload is the wire representation of one declared choice.
type ChoicePayload struct {
	// Name is the choice display name.
	Name string `json:"name"`

	// NameLocalizations holds localized display names. Omitted when empty.
	NameLocalizations map[string]string `json:"name_localizations,omitempty"`

	// Value is the submitted value: string, int64 or float64.
	Value any `json:"value"`
}
