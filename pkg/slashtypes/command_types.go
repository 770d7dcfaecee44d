// Package slashtypes defines the shared data model for the slashkit command
// schema and option resolution engine. This file contains the validated,
// immutable command schema types produced by the schema builder.
package slashtypes

// LocalizationTable maps platform locale codes (e.g. "en-US", "fr") to
// localized strings. An empty table means "no localized variants; fall back
// to the canonical string everywhere."
type LocalizationTable map[string]string

// Clone returns a copy of the table. A nil table clones to nil.
func (lt LocalizationTable) Clone() LocalizationTable {
	if lt == nil {
		return nil
	}
	out := make(LocalizationTable, len(lt))
	for k, v := range lt {
		out[k] = v
	}
	return out
}

// ChoiceValueKind identifies the variant held by a ChoiceValue.
type ChoiceValueKind int

const (
	// ChoiceString holds a string choice value.
	ChoiceString ChoiceValueKind = iota
	// ChoiceInteger holds an integer choice value.
	ChoiceInteger
	// ChoiceNumber holds a floating-point choice value.
	ChoiceNumber
)

// ChoiceValue is the value of a predefined option choice. Exactly one of the
// variant fields is meaningful, selected by Kind; it must match the owning
// option's type (String, Integer or Number).
type ChoiceValue struct {
	Kind ChoiceValueKind
	Str  string
	Int  int64
	Num  float64
}

// StringChoiceValue builds a string-kinded ChoiceValue.
func StringChoiceValue(v string) ChoiceValue {
	return ChoiceValue{Kind: ChoiceString, Str: v}
}

// IntChoiceValue builds an integer-kinded ChoiceValue.
func IntChoiceValue(v int64) ChoiceValue {
	return ChoiceValue{Kind: ChoiceInteger, Int: v}
}

// NumberChoiceValue builds a number-kinded ChoiceValue.
func NumberChoiceValue(v float64) ChoiceValue {
	return ChoiceValue{Kind: ChoiceNumber, Num: v}
}

// Equal reports whether two choice values hold the same variant and payload.
func (cv ChoiceValue) Equal(other ChoiceValue) bool {
	if cv.Kind != other.Kind {
		return false
	}
	switch cv.Kind {
	case ChoiceString:
		return cv.Str == other.Str
	case ChoiceInteger:
		return cv.Int == other.Int
	case ChoiceNumber:
		return cv.Num == other.Num
	default:
		return false
	}
}

// Choice is one predefined value a user can pick for an option.
type Choice struct {
	// Name is the display name shown to users (canonical fallback).
	Name string `json:"name"`

	// NameLocalizations holds localized display names, keyed by locale code.
	NameLocalizations LocalizationTable `json:"name_localizations,omitempty"`

	// Value is the value submitted when this choice is selected.
	Value ChoiceValue `json:"value"`
}

// NumericBound is an optional inclusive bound on an Integer or Number option.
type NumericBound struct {
	// Int holds the bound for Integer options.
	Int int64
	// Num holds the bound for Number options.
	Num float64
}

// OptionSchema describes one named, typed parameter of a command, or a
// subcommand/group branch. Schemas are built once by the schema builder and
// must be treated as read-only afterwards; the engine never mutates them.
type OptionSchema struct {
	// Name is the option name (1-32 chars, lowercase identifier grammar).
	Name string `json:"name"`

	// Description is the canonical option description (1-100 chars).
	Description string `json:"description"`

	// NameLocalizations holds localized option names.
	NameLocalizations LocalizationTable `json:"name_localizations,omitempty"`

	// DescriptionLocalizations holds localized option descriptions.
	DescriptionLocalizations LocalizationTable `json:"description_localizations,omitempty"`

	// Kind is the option type.
	Kind OptionType `json:"kind"`

	// Required marks the option as mandatory at resolution time.
	Required bool `json:"required"`

	// Autocomplete enables autocomplete interactions for this option.
	// Mutually exclusive with Choices.
	Autocomplete bool `json:"autocomplete"`

	// Choices restricts the option to a fixed set of values (at most 25,
	// unique values). Only valid for String, Integer and Number options.
	Choices []Choice `json:"choices,omitempty"`

	// MinValue and MaxValue bound Integer and Number options (inclusive).
	MinValue *NumericBound `json:"min_value,omitempty"`
	MaxValue *NumericBound `json:"max_value,omitempty"`

	// MinLength and MaxLength bound String option lengths (inclusive).
	MinLength *int `json:"min_length,omitempty"`
	MaxLength *int `json:"max_length,omitempty"`

	// ChannelKinds restricts Channel options to specific channel kinds.
	ChannelKinds []ChannelKind `json:"channel_types,omitempty"`

	// SubOptions holds nested options for SubCommand and SubCommandGroup
	// branches, in declaration order.
	SubOptions []OptionSchema `json:"options,omitempty"`
}

// DispatchLevel reports whether any of the given sibling options introduces a
// subcommand dispatch level. The schema builder guarantees dispatch and field
// options are never mixed at one level.
func DispatchLevel(options []OptionSchema) bool {
	for i := range options {
		if options[i].Kind.Dispatch() {
			return true
		}
	}
	return false
}

// CommandSchema describes one top-level command: its metadata and its ordered
// option tree. Built once per command type and reused for every registration
// and every incoming interaction; safe to share across goroutines.
type CommandSchema struct {
	// Name is the command name (1-32 chars, lowercase identifier grammar).
	Name string `json:"name"`

	// Description is the canonical command description (1-100 chars).
	Description string `json:"description"`

	// NameLocalizations holds localized command names.
	NameLocalizations LocalizationTable `json:"name_localizations,omitempty"`

	// DescriptionLocalizations holds localized command descriptions.
	DescriptionLocalizations LocalizationTable `json:"description_localizations,omitempty"`

	// DefaultMemberPermissions is an optional permission bitflag string
	// required for members to use the command.
	DefaultMemberPermissions *uint64 `json:"default_member_permissions,omitempty"`

	// DMPermission controls whether the command is available in DMs.
	DMPermission *bool `json:"dm_permission,omitempty"`

	// NSFW marks the command as age-restricted.
	NSFW bool `json:"nsfw"`

	// Contexts lists the installation contexts the command is usable in.
	Contexts []ContextKind `json:"contexts,omitempty"`

	// IntegrationTypes lists the installation kinds the command supports.
	IntegrationTypes []IntegrationKind `json:"integration_types,omitempty"`

	// Options is the ordered option tree.
	Options []OptionSchema `json:"options,omitempty"`
}
