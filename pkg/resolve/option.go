// Package resolve converts raw submitted option trees into strongly-typed,
// validated values against a built command schema. This file contains the
// single-option resolver: one schema field, one raw value, one outcome.
package resolve

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"slashkit/pkg/slashtypes"
)

// ResolveOption resolves one raw option against its schema field.
//
// An absent raw value fails for required fields and yields an absent outcome
// otherwise. Focused raw values skip bound and choice checks entirely and
// yield a focused outcome carrying the partial value. For by-value kinds the
// raw variant is type-checked, strings are trimmed of surrounding whitespace,
// bounds run before choices, and a declared choice set must contain the
// value. By-reference kinds are looked up in the bag; a missing entity is a
// transport consistency fault surfaced as ErrMissingResolvedEntity.
func ResolveOption(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption, bag *slashtypes.ResolvedBag) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if raw == nil {
		if schema.Required {
			return slashtypes.OptionOutcome{}, &slashtypes.ParseError{
				Kind:  slashtypes.ErrMissingRequiredOption,
				Field: schema.Name,
			}
		}
		return slashtypes.OptionOutcome{State: slashtypes.OutcomeAbsent}, nil
	}

	// The user is mid-typing an incomplete value; full validation would
	// reject it spuriously.
	if raw.Focused {
		return slashtypes.OptionOutcome{
			State:   slashtypes.OutcomeFocused,
			Partial: raw.Value,
		}, nil
	}

	if schema.Kind.ByReference() {
		return resolveReference(schema, raw, bag)
	}

	switch schema.Kind {
	case slashtypes.OptionTypeString:
		return resolveString(schema, raw)
	case slashtypes.OptionTypeInteger:
		return resolveInteger(schema, raw)
	case slashtypes.OptionTypeNumber:
		return resolveNumber(schema, raw)
	case slashtypes.OptionTypeBoolean:
		return resolveBoolean(schema, raw)
	default:
		return slashtypes.OptionOutcome{}, typeMismatch(schema, raw)
	}
}

func resolveString(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if raw.Value.Kind != slashtypes.RawString {
		return slashtypes.OptionOutcome{}, typeMismatch(schema, raw)
	}

	// Trim before any further check, matching platform behavior. Length
	// bounds count characters, not bytes.
	value := strings.TrimSpace(raw.Value.Str)
	length := utf8.RuneCountInString(value)

	if schema.MinLength != nil && length < *schema.MinLength {
		return slashtypes.OptionOutcome{}, outOfRange(schema.Name,
			fmt.Sprintf("length >= %d", *schema.MinLength),
			fmt.Sprintf("length %d", length))
	}
	if schema.MaxLength != nil && length > *schema.MaxLength {
		return slashtypes.OptionOutcome{}, outOfRange(schema.Name,
			fmt.Sprintf("length <= %d", *schema.MaxLength),
			fmt.Sprintf("length %d", length))
	}

	outcome := resolvedOutcome(slashtypes.OptionValue{Kind: schema.Kind, Str: value})
	return matchChoice(schema, slashtypes.StringChoiceValue(value), value, outcome)
}

func resolveInteger(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if raw.Value.Kind != slashtypes.RawInteger {
		return slashtypes.OptionOutcome{}, typeMismatch(schema, raw)
	}
	value := raw.Value.Int

	if schema.MinValue != nil && value < schema.MinValue.Int {
		return slashtypes.OptionOutcome{}, outOfRange(schema.Name,
			fmt.Sprintf(">= %d", schema.MinValue.Int), strconv.FormatInt(value, 10))
	}
	if schema.MaxValue != nil && value > schema.MaxValue.Int {
		return slashtypes.OptionOutcome{}, outOfRange(schema.Name,
			fmt.Sprintf("<= %d", schema.MaxValue.Int), strconv.FormatInt(value, 10))
	}

	outcome := resolvedOutcome(slashtypes.OptionValue{Kind: schema.Kind, Int: value})
	return matchChoice(schema, slashtypes.IntChoiceValue(value), strconv.FormatInt(value, 10), outcome)
}

func resolveNumber(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if raw.Value.Kind != slashtypes.RawNumber {
		return slashtypes.OptionOutcome{}, typeMismatch(schema, raw)
	}
	value := raw.Value.Num

	if schema.MinValue != nil && value < schema.MinValue.Num {
		return slashtypes.OptionOutcome{}, outOfRange(schema.Name,
			fmt.Sprintf(">= %g", schema.MinValue.Num), formatFloat(value))
	}
	if schema.MaxValue != nil && value > schema.MaxValue.Num {
		return slashtypes.OptionOutcome{}, outOfRange(schema.Name,
			fmt.Sprintf("<= %g", schema.MaxValue.Num), formatFloat(value))
	}

	outcome := resolvedOutcome(slashtypes.OptionValue{Kind: schema.Kind, Num: value})
	return matchChoice(schema, slashtypes.NumberChoiceValue(value), formatFloat(value), outcome)
}

func resolveBoolean(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if raw.Value.Kind != slashtypes.RawBool {
		return slashtypes.OptionOutcome{}, typeMismatch(schema, raw)
	}
	return resolvedOutcome(slashtypes.OptionValue{Kind: schema.Kind, Bool: raw.Value.Bool}), nil
}

func resolveReference(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption, bag *slashtypes.ResolvedBag) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if raw.Value.Kind != slashtypes.RawRef {
		return slashtypes.OptionOutcome{}, typeMismatch(schema, raw)
	}
	id := raw.Value.Ref
	value := slashtypes.OptionValue{Kind: schema.Kind}

	switch schema.Kind {
	case slashtypes.OptionTypeUser:
		user, ok := bag.UserByID(id)
		if !ok {
			return slashtypes.OptionOutcome{}, missingEntity(schema.Name, id)
		}
		value.User = &user

	case slashtypes.OptionTypeChannel:
		channel, ok := bag.ChannelByID(id)
		if !ok {
			return slashtypes.OptionOutcome{}, missingEntity(schema.Name, id)
		}
		if len(schema.ChannelKinds) > 0 && !containsChannelKind(schema.ChannelKinds, channel.Kind) {
			return slashtypes.OptionOutcome{}, &slashtypes.ParseError{
				Kind:     slashtypes.ErrInvalidChannelKind,
				Field:    schema.Name,
				Expected: fmt.Sprintf("one of %v", schema.ChannelKinds),
				Actual:   fmt.Sprintf("channel kind %d", channel.Kind),
			}
		}
		value.Channel = &channel

	case slashtypes.OptionTypeRole:
		role, ok := bag.RoleByID(id)
		if !ok {
			return slashtypes.OptionOutcome{}, missingEntity(schema.Name, id)
		}
		value.Role = &role

	case slashtypes.OptionTypeMentionable:
		mention, ok := bag.MentionableByID(id)
		if !ok {
			return slashtypes.OptionOutcome{}, missingEntity(schema.Name, id)
		}
		value.Mention = &mention

	case slashtypes.OptionTypeAttachment:
		attachment, ok := bag.AttachmentByID(id)
		if !ok {
			return slashtypes.OptionOutcome{}, missingEntity(schema.Name, id)
		}
		value.Attachment = &attachment
	}

	return resolvedOutcome(value), nil
}

// matchChoice enforces a declared choice set on an already bound-checked
// value and surfaces the matching choice's display name.
func matchChoice(schema *slashtypes.OptionSchema, value slashtypes.ChoiceValue, actual string, outcome slashtypes.OptionOutcome) (slashtypes.OptionOutcome, *slashtypes.ParseError) {
	if len(schema.Choices) == 0 {
		return outcome, nil
	}
	for i := range schema.Choices {
		if schema.Choices[i].Value.Equal(value) {
			outcome.ChoiceName = schema.Choices[i].Name
			return outcome, nil
		}
	}
	return slashtypes.OptionOutcome{}, &slashtypes.ParseError{
		Kind:   slashtypes.ErrInvalidChoice,
		Field:  schema.Name,
		Actual: actual,
	}
}

func resolvedOutcome(value slashtypes.OptionValue) slashtypes.OptionOutcome {
	return slashtypes.OptionOutcome{State: slashtypes.OutcomeResolved, Value: value}
}

func typeMismatch(schema *slashtypes.OptionSchema, raw *slashtypes.RawOption) *slashtypes.ParseError {
	expected := schema.Kind.String()
	if schema.Kind.ByReference() {
		expected = "reference"
	}
	return &slashtypes.ParseError{
		Kind:     slashtypes.ErrTypeMismatch,
		Field:    schema.Name,
		Expected: expected,
		Actual:   raw.Value.Kind.String(),
	}
}

func outOfRange(field, expected, actual string) *slashtypes.ParseError {
	return &slashtypes.ParseError{
		Kind:     slashtypes.ErrOutOfRange,
		Field:    field,
		Expected: expected,
		Actual:   actual,
	}
}

func missingEntity(field, id string) *slashtypes.ParseError {
	return &slashtypes.ParseError{
		Kind:   slashtypes.ErrMissingResolvedEntity,
		Field:  field,
		Actual: id,
	}
}

func containsChannelKind(kinds []slashtypes.ChannelKind, kind slashtypes.ChannelKind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
