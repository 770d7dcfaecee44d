// Package manifest loads YAML command manifests and converts them into
// schema descriptors. This file contains the conversion from manifest shapes
// to builder descriptors, including the name→code tables for option types,
// channel kinds, contexts and integration types.
package manifest

import (
	"fmt"

	"slashkit/pkg/schema"
	"slashkit/pkg/slashtypes"
)

// optionTypeNames maps manifest type names to option types.
var optionTypeNames = map[string]slashtypes.OptionType{
	"subcommand":       slashtypes.OptionTypeSubCommand,
	"subcommand_group": slashtypes.OptionTypeSubCommandGroup,
	"string":           slashtypes.OptionTypeString,
	"integer":          slashtypes.OptionTypeInteger,
	"boolean":          slashtypes.OptionTypeBoolean,
	"user":             slashtypes.OptionTypeUser,
	"channel":          slashtypes.OptionTypeChannel,
	"role":             slashtypes.OptionTypeRole,
	"mentionable":      slashtypes.OptionTypeMentionable,
	"number":           slashtypes.OptionTypeNumber,
	"attachment":       slashtypes.OptionTypeAttachment,
}

// channelKindNames maps manifest channel type names to channel kinds,
// using the platform's snake_case vocabulary.
var channelKindNames = map[string]slashtypes.ChannelKind{
	"guild_text":          slashtypes.ChannelKindGuildText,
	"dm":                  slashtypes.ChannelKindDM,
	"guild_voice":         slashtypes.ChannelKindGuildVoice,
	"group_dm":            slashtypes.ChannelKindGroupDM,
	"guild_category":      slashtypes.ChannelKindGuildCategory,
	"guild_announcement":  slashtypes.ChannelKindGuildAnnouncement,
	"announcement_thread": slashtypes.ChannelKindAnnouncementThread,
	"public_thread":       slashtypes.ChannelKindPublicThread,
	"private_thread":      slashtypes.ChannelKindPrivateThread,
	"guild_stage_voice":   slashtypes.ChannelKindGuildStageVoice,
	"guild_directory":     slashtypes.ChannelKindGuildDirectory,
	"guild_forum":         slashtypes.ChannelKindGuildForum,
	"guild_media":         slashtypes.ChannelKindGuildMedia,
}

// contextNames maps manifest context names to context kinds.
var contextNames = map[string]slashtypes.ContextKind{
	"guild":           slashtypes.ContextKindGuild,
	"bot_dm":          slashtypes.ContextKindBotDM,
	"private_channel": slashtypes.ContextKindPrivateChannel,
}

// integrationNames maps manifest integration names to integration kinds.
var integrationNames = map[string]slashtypes.IntegrationKind{
	"guild_install": slashtypes.IntegrationKindGuildInstall,
	"user_install":  slashtypes.IntegrationKindUserInstall,
}

// Descriptors converts every command in the manifest into a builder
// descriptor. Conversion errors (unknown type names, malformed values) are
// manifest faults reported immediately; structural schema validation is the
// builder's job and happens afterwards.
func (f *File) Descriptors() ([]schema.CommandDescriptor, error) {
	descs := make([]schema.CommandDescriptor, 0, len(f.Commands))
	for i := range f.Commands {
		desc, err := f.Commands[i].Descriptor()
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}
	return descs, nil
}

// Descriptor converts one manifest command into a builder descriptor.
func (c *Command) Descriptor() (schema.CommandDescriptor, error) {
	desc := schema.CommandDescriptor{
		Name:                     c.Name,
		Description:              c.Description,
		NameLocalizations:        c.NameLocalizations,
		DescriptionLocalizations: c.DescriptionLocalizations,
		DefaultMemberPermissions: c.DefaultMemberPermissions,
		DMPermission:             c.DMPermission,
		NSFW:                     c.NSFW,
	}

	for _, name := range c.Contexts {
		kind, ok := contextNames[name]
		if !ok {
			return schema.CommandDescriptor{}, fmt.Errorf("command %s: unknown context %q", c.Name, name)
		}
		desc.Contexts = append(desc.Contexts, kind)
	}
	for _, name := range c.IntegrationTypes {
		kind, ok := integrationNames[name]
		if !ok {
			return schema.CommandDescriptor{}, fmt.Errorf("command %s: unknown integration type %q", c.Name, name)
		}
		desc.IntegrationTypes = append(desc.IntegrationTypes, kind)
	}

	options, err := convertOptions(c.Name, c.Options)
	if err != nil {
		return schema.CommandDescriptor{}, err
	}
	desc.Options = options

	return desc, nil
}

func convertOptions(path string, options []Option) ([]schema.OptionDescriptor, error) {
	if len(options) == 0 {
		return nil, nil
	}
	out := make([]schema.OptionDescriptor, 0, len(options))
	for i := range options {
		desc, err := convertOption(path, &options[i])
		if err != nil {
			return nil, err
		}
		out = append(out, desc)
	}
	return out, nil
}

func convertOption(parent string, o *Option) (schema.OptionDescriptor, error) {
	path := parent + "." + o.Name

	kind, ok := optionTypeNames[o.Type]
	if !ok {
		return schema.OptionDescriptor{}, fmt.Errorf("option %s: unknown type %q", path, o.Type)
	}

	desc := schema.OptionDescriptor{
		Name:                     o.Name,
		Description:              o.Description,
		NameLocalizations:        o.NameLocalizations,
		DescriptionLocalizations: o.DescriptionLocalizations,
		Kind:                     kind,
		Required:                 o.Required,
		Autocomplete:             o.Autocomplete,
		MinLength:                o.MinLength,
		MaxLength:                o.MaxLength,
	}

	if o.MinValue != nil {
		desc.MinValue = numericBound(kind, *o.MinValue)
	}
	if o.MaxValue != nil {
		desc.MaxValue = numericBound(kind, *o.MaxValue)
	}

	for _, name := range o.ChannelTypes {
		ck, ok := channelKindNames[name]
		if !ok {
			return schema.OptionDescriptor{}, fmt.Errorf("option %s: unknown channel type %q", path, name)
		}
		desc.ChannelKinds = append(desc.ChannelKinds, ck)
	}

	for i := range o.Choices {
		choice, err := convertChoice(path, kind, &o.Choices[i])
		if err != nil {
			return schema.OptionDescriptor{}, err
		}
		desc.Choices = append(desc.Choices, choice)
	}

	sub, err := convertOptions(path, o.Options)
	if err != nil {
		return schema.OptionDescriptor{}, err
	}
	desc.SubOptions = sub

	return desc, nil
}

// numericBound places a YAML number into the bound variant matching the
// option kind, truncating to int64 for Integer options.
func numericBound(kind slashtypes.OptionType, v float64) *slashtypes.NumericBound {
	if kind == slashtypes.OptionTypeInteger {
		return &slashtypes.NumericBound{Int: int64(v)}
	}
	return &slashtypes.NumericBound{Num: v}
}

// convertChoice types a YAML choice value according to the owning option's
// kind, so integer-looking literals on number options still become floats.
func convertChoice(path string, kind slashtypes.OptionType, c *Choice) (schema.ChoiceDescriptor, error) {
	desc := schema.ChoiceDescriptor{
		Name:              c.Name,
		NameLocalizations: c.NameLocalizations,
	}

	switch v := c.Value.(type) {
	case string:
		desc.Value = slashtypes.StringChoiceValue(v)
	case int:
		if kind == slashtypes.OptionTypeNumber {
			desc.Value = slashtypes.NumberChoiceValue(float64(v))
		} else {
			desc.Value = slashtypes.IntChoiceValue(int64(v))
		}
	case int64:
		if kind == slashtypes.OptionTypeNumber {
			desc.Value = slashtypes.NumberChoiceValue(float64(v))
		} else {
			desc.Value = slashtypes.IntChoiceValue(v)
		}
	case float64:
		desc.Value = slashtypes.NumberChoiceValue(v)
	default:
		return schema.ChoiceDescriptor{}, fmt.Errorf("option %s: choice %q has unsupported value type %T", path, c.Name, c.Value)
	}

	return desc, nil
}
