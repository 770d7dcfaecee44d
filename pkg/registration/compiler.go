// Package registration compiles validated command schemas into the wire
// payloads the platform's registration endpoint consumes. This file contains
// the compiler: a pure, total, deterministic transform over built schemas.
package registration

import (
	"strconv"

	"slashkit/pkg/slashtypes"
)

// Compile transforms a validated command schema into its registration
// payload. It has no failure mode: every schema produced by the builder
// compiles, and compiling the same schema twice yields identical payloads.
// Declaration order is preserved at every nesting level.
func Compile(schema *slashtypes.CommandSchema) Payload {
	payload := Payload{
		Name:                     schema.Name,
		Description:              schema.Description,
		NameLocalizations:        localizations(schema.NameLocalizations),
		DescriptionLocalizations: localizations(schema.DescriptionLocalizations),
		DMPermission:             clonedBool(schema.DMPermission),
		NSFW:                     schema.NSFW,
		Options:                  compileOptions(schema.Options),
	}

	if schema.DefaultMemberPermissions != nil {
		perms := strconv.FormatUint(*schema.DefaultMemberPermissions, 10)
		payload.DefaultMemberPermissions = &perms
	}
	for _, ctx := range schema.Contexts {
		payload.Contexts = append(payload.Contexts, int(ctx))
	}
	for _, integration := range schema.IntegrationTypes {
		payload.IntegrationTypes = append(payload.IntegrationTypes, int(integration))
	}

	return payload
}

func compileOptions(options []slashtypes.OptionSchema) []OptionPayload {
	if len(options) == 0 {
		return nil
	}
	out := make([]OptionPayload, 0, len(options))
	for i := range options {
		out = append(out, compileOption(&options[i]))
	}
	return out
}

func compileOption(opt *slashtypes.OptionSchema) OptionPayload {
	payload := OptionPayload{
		Type:                     opt.Kind.Code(),
		Name:                     opt.Name,
		Description:              opt.Description,
		NameLocalizations:        localizations(opt.NameLocalizations),
		DescriptionLocalizations: localizations(opt.DescriptionLocalizations),
		Required:                 opt.Required,
		Autocomplete:             opt.Autocomplete,
		MinLength:                clonedInt(opt.MinLength),
		MaxLength:                clonedInt(opt.MaxLength),
		Options:                  compileOptions(opt.SubOptions),
	}

	for _, c := range opt.Choices {
		payload.Choices = append(payload.Choices, ChoicePayload{
			Name:              c.Name,
			NameLocalizations: localizations(c.NameLocalizations),
			Value:             choiceValue(c.Value),
		})
	}
	if opt.MinValue != nil {
		payload.MinValue = boundValue(opt.Kind, opt.MinValue)
	}
	if opt.MaxValue != nil {
		payload.MaxValue = boundValue(opt.Kind, opt.MaxValue)
	}
	for _, kind := range opt.ChannelKinds {
		payload.ChannelTypes = append(payload.ChannelTypes, int(kind))
	}

	return payload
}

// localizations flattens a localization table into the wire map, omitting
// empty tables entirely.
func localizations(table slashtypes.LocalizationTable) map[string]string {
	if len(table) == 0 {
		return nil
	}
	return map[string]string(table.Clone())
}

func choiceValue(v slashtypes.ChoiceValue) any {
	switch v.Kind {
	case slashtypes.ChoiceInteger:
		return v.Int
	case slashtypes.ChoiceNumber:
		return v.Num
	default:
		return v.Str
	}
}

// boundValue picks the variant matching the option kind, so Integer bounds
// serialize without a fractional part.
func boundValue(kind slashtypes.OptionType, bound *slashtypes.NumericBound) any {
	if kind == slashtypes.OptionTypeInteger {
		return bound.Int
	}
	return bound.Num
}

func clonedBool(v *bool) *bool {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func clonedInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
