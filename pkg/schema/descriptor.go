// Package schema builds validated, immutable command schemas from plain
// descriptor values. This file contains the descriptor types consumed by the
// builder. Descriptors are plain data: they carry no validity guarantees and
// can come from code, generated tables, or manifest files.
package schema

import "slashkit/pkg/slashtypes"

// ChoiceDescriptor declares one predefined choice for an option.
type ChoiceDescriptor struct {
	// Name is the choice display name (1-100 chars).
	Name string

	// NameLocalizations holds localized display names, keyed by locale code.
	NameLocalizations map[string]string

	// Value is the value submitted when this choice is selected.
	Value slashtypes.ChoiceValue
}

// OptionDescriptor declares one option of a command, or a subcommand branch.
type OptionDescriptor struct {
	// Name is the option name.
	Name string

	// Description is the canonical option description.
	Description string

	// NameLocalizations holds localized option names.
	NameLocalizations map[string]string

	// DescriptionLocalizations holds localized option descriptions.
	DescriptionLocalizations map[string]string

	// Kind is the option type.
	Kind slashtypes.OptionType

	// Required marks the option as mandatory.
	Required bool

	// Autocomplete enables autocomplete interactions.
	Autocomplete bool

	// Choices restricts the option to a fixed set of values.
	Choices []ChoiceDescriptor

	// MinValue and MaxValue bound Integer and Number options (inclusive).
	MinValue *slashtypes.NumericBound
	MaxValue *slashtypes.NumericBound

	// MinLength and MaxLength bound String option lengths (inclusive).
	MinLength *int
	MaxLength *int

	// ChannelKinds restricts Channel options to specific channel kinds.
	ChannelKinds []slashtypes.ChannelKind

	// SubOptions holds nested options for SubCommand and SubCommandGroup.
	SubOptions []OptionDescriptor
}

// CommandDescriptor declares a whole command.
type CommandDescriptor struct {
	// Name is the command name.
	Name string

	// Description is the canonical command description.
	Description string

	// NameLocalizations holds localized command names.
	NameLocalizations map[string]string

	// DescriptionLocalizations holds localized command descriptions.
	DescriptionLocalizations map[string]string

	// DefaultMemberPermissions is an optional permission bitflag value.
	DefaultMemberPermissions *uint64

	// DMPermission controls whether the command is available in DMs.
	DMPermission *bool

	// NSFW marks the command as age-restricted.
	NSFW bool

	// Contexts lists the installation contexts the command is usable in.
	Contexts []slashtypes.ContextKind

	// IntegrationTypes lists the installation kinds the command supports.
	IntegrationTypes []slashtypes.IntegrationKind

	// Options declares the command's option tree, in order.
	Options []OptionDescriptor
}
