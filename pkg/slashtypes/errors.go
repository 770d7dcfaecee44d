// Package slashtypes defines the shared data model for the slashkit command
// schema and option resolution engine. This file contains the enumerable
// error types surfaced at schema construction and at resolution time.
package slashtypes

import "fmt"

// SchemaErrorKind identifies a structural problem found while building a
// command schema.
type SchemaErrorKind int

const (
	// ErrInvalidName means a command or option name violates the platform's
	// identifier grammar or length limits.
	ErrInvalidName SchemaErrorKind = iota
	// ErrDescriptionOutOfBounds means a description is empty or too long.
	ErrDescriptionOutOfBounds
	// ErrTooManyChoices means an option declares more than 25 choices.
	ErrTooManyChoices
	// ErrDuplicateChoiceValue means two choices on one option share a value.
	ErrDuplicateChoiceValue
	// ErrInconsistentBounds means a min bound exceeds its max bound, or a
	// bound appears on an option kind that does not support it.
	ErrInconsistentBounds
	// ErrRequiredAfterOptional means a required option follows an optional
	// sibling, violating the platform ordering rule.
	ErrRequiredAfterOptional
	// ErrInvalidNesting means subcommand nesting rules were violated.
	ErrInvalidNesting
	// ErrLocalizationKeyInvalid means a localization table entry uses an
	// unknown locale code, an empty string, or an over-long string.
	ErrLocalizationKeyInvalid
	// ErrMissingFallbackDescription means localized descriptions were
	// supplied without a canonical fallback description.
	ErrMissingFallbackDescription
	// ErrChoicesWithAutocomplete means an option declares both choices and
	// autocomplete, which are mutually exclusive.
	ErrChoicesWithAutocomplete
)

// String returns the stable name of the schema error kind.
func (k SchemaErrorKind) String() string {
	switch k {
	case ErrInvalidName:
		return "invalid_name"
	case ErrDescriptionOutOfBounds:
		return "description_out_of_bounds"
	case ErrTooManyChoices:
		return "too_many_choices"
	case ErrDuplicateChoiceValue:
		return "duplicate_choice_value"
	case ErrInconsistentBounds:
		return "inconsistent_bounds"
	case ErrRequiredAfterOptional:
		return "required_after_optional"
	case ErrInvalidNesting:
		return "invalid_nesting"
	case ErrLocalizationKeyInvalid:
		return "localization_key_invalid"
	case ErrMissingFallbackDescription:
		return "missing_fallback_description"
	case ErrChoicesWithAutocomplete:
		return "choices_with_autocomplete"
	default:
		return "unknown"
	}
}

// SchemaError is one construction-time violation. The builder accumulates
// every violation it finds; a non-empty error list is fatal and no schema is
// produced. Applications should treat schema errors as startup failures.
type SchemaError struct {
	// Kind classifies the violation.
	Kind SchemaErrorKind

	// Path locates the offending element, e.g. "profile.options.name".
	Path string

	// Detail describes the violation in human-readable form.
	Detail string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("schema error at %s: %s", e.Path, e.Kind)
	}
	return fmt.Sprintf("schema error at %s: %s: %s", e.Path, e.Kind, e.Detail)
}

// ParseErrorKind identifies why resolving a raw option tree failed.
type ParseErrorKind int

const (
	// ErrMissingRequiredOption means a required option was not submitted.
	ErrMissingRequiredOption ParseErrorKind = iota
	// ErrTypeMismatch means a raw value's variant does not match the
	// declared option type.
	ErrTypeMismatch
	// ErrOutOfRange means a value violated a declared numeric or length bound.
	ErrOutOfRange
	// ErrInvalidChoice means a value matched none of the declared choices.
	ErrInvalidChoice
	// ErrUnknownSubcommand means a dispatch-level sibling named no declared branch.
	ErrUnknownSubcommand
	// ErrEmptyOption means a dispatch level received no sibling to select a branch.
	ErrEmptyOption
	// ErrMissingResolvedEntity means a referenced entity ID was absent from
	// the resolved bag. This is a transport consistency fault, not user error.
	ErrMissingResolvedEntity
	// ErrInvalidChannelKind means a resolved channel's kind is outside the
	// option's declared channel kind restriction.
	ErrInvalidChannelKind
)

// String returns the stable name of the parse error kind.
func (k ParseErrorKind) String() string {
	switch k {
	case ErrMissingRequiredOption:
		return "missing_required_option"
	case ErrTypeMismatch:
		return "type_mismatch"
	case ErrOutOfRange:
		return "out_of_range"
	case ErrInvalidChoice:
		return "invalid_choice"
	case ErrUnknownSubcommand:
		return "unknown_subcommand"
	case ErrEmptyOption:
		return "empty_option"
	case ErrMissingResolvedEntity:
		return "missing_resolved_entity"
	case ErrInvalidChannelKind:
		return "invalid_channel_kind"
	default:
		return "unknown"
	}
}

// ParseError is the single terminal error of a failed resolution call. It
// carries enough context for the caller to produce a user-facing diagnostic
// without re-inspecting the raw input. Resolution never panics on malformed
// input; it always returns a ParseError.
type ParseError struct {
	// Kind classifies the failure.
	Kind ParseErrorKind

	// Field is the offending option or branch name.
	Field string

	// Expected describes the violated constraint, where relevant.
	Expected string

	// Actual describes the received value, where relevant.
	Actual string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	msg := fmt.Sprintf("failed to parse option %q: %s", e.Field, e.Kind)
	if e.Expected != "" {
		msg += fmt.Sprintf(" (expected %s", e.Expected)
		if e.Actual != "" {
			msg += fmt.Sprintf(", got %s", e.Actual)
		}
		msg += ")"
	} else if e.Actual != "" {
		msg += fmt.Sprintf(" (got %s)", e.Actual)
	}
	return msg
}
