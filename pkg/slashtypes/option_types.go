// Package slashtypes defines the shared data model for the slashkit command
// schema and option resolution engine. This file contains the closed set of
// option types and the platform enumerations used by command schemas.
package slashtypes

// OptionType identifies the kind of a command option. The set is closed and
// fixed by the platform protocol; the numeric values are the wire codes used
// in registration payloads.
type OptionType int

const (
	// OptionTypeSubCommand is a nested invocable branch holding leaf options.
	OptionTypeSubCommand OptionType = 1
	// OptionTypeSubCommandGroup is a grouping level holding only subcommands.
	OptionTypeSubCommandGroup OptionType = 2
	// OptionTypeString is a free-form text option.
	OptionTypeString OptionType = 3
	// OptionTypeInteger is a whole-number option.
	OptionTypeInteger OptionType = 4
	// OptionTypeBoolean is a true/false option.
	OptionTypeBoolean OptionType = 5
	// OptionTypeUser is a by-reference option resolving to a user.
	OptionTypeUser OptionType = 6
	// OptionTypeChannel is a by-reference option resolving to a channel.
	OptionTypeChannel OptionType = 7
	// OptionTypeRole is a by-reference option resolving to a role.
	OptionTypeRole OptionType = 8
	// OptionTypeMentionable is a by-reference option resolving to a user or role.
	OptionTypeMentionable OptionType = 9
	// OptionTypeNumber is a floating-point option.
	OptionTypeNumber OptionType = 10
	// OptionTypeAttachment is a by-reference option resolving to an uploaded file.
	OptionTypeAttachment OptionType = 11
)

// String returns the lowercase protocol name of the option type.
func (t OptionType) String() string {
	switch t {
	case OptionTypeSubCommand:
		return "subcommand"
	case OptionTypeSubCommandGroup:
		return "subcommand_group"
	case OptionTypeString:
		return "string"
	case OptionTypeInteger:
		return "integer"
	case OptionTypeBoolean:
		return "boolean"
	case OptionTypeUser:
		return "user"
	case OptionTypeChannel:
		return "channel"
	case OptionTypeRole:
		return "role"
	case OptionTypeMentionable:
		return "mentionable"
	case OptionTypeNumber:
		return "number"
	case OptionTypeAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}

// Code returns the numeric wire code of the option type.
func (t OptionType) Code() int {
	return int(t)
}

// OptionTypeFromCode maps a numeric wire code back to its OptionType.
// Returns false if the code is outside the platform-defined set.
func OptionTypeFromCode(code int) (OptionType, bool) {
	if code < int(OptionTypeSubCommand) || code > int(OptionTypeAttachment) {
		return 0, false
	}
	return OptionType(code), true
}

// ByReference reports whether values of this type arrive as opaque entity IDs
// that must be resolved through a ResolvedBag.
func (t OptionType) ByReference() bool {
	switch t {
	case OptionTypeUser, OptionTypeChannel, OptionTypeRole, OptionTypeMentionable, OptionTypeAttachment:
		return true
	default:
		return false
	}
}

// Dispatch reports whether this type introduces a subcommand dispatch level
// rather than a plain value field.
func (t OptionType) Dispatch() bool {
	return t == OptionTypeSubCommand || t == OptionTypeSubCommandGroup
}

// ChannelKind identifies the kind of a channel, using the platform's numeric codes.
type ChannelKind int

// Channel kinds defined by the platform protocol.
const (
	ChannelKindGuildText          ChannelKind = 0
	ChannelKindDM                 ChannelKind = 1
	ChannelKindGuildVoice         ChannelKind = 2
	ChannelKindGroupDM            ChannelKind = 3
	ChannelKindGuildCategory      ChannelKind = 4
	ChannelKindGuildAnnouncement  ChannelKind = 5
	ChannelKindAnnouncementThread ChannelKind = 10
	ChannelKindPublicThread       ChannelKind = 11
	ChannelKindPrivateThread      ChannelKind = 12
	ChannelKindGuildStageVoice    ChannelKind = 13
	ChannelKindGuildDirectory     ChannelKind = 14
	ChannelKindGuildForum         ChannelKind = 15
	ChannelKindGuildMedia         ChannelKind = 16
)

// ContextKind identifies an installation context a command can be used in.
type ContextKind int

// Installation contexts defined by the platform protocol.
const (
	ContextKindGuild          ContextKind = 0
	ContextKindBotDM          ContextKind = 1
	ContextKindPrivateChannel ContextKind = 2
)

// IntegrationKind identifies how an application was installed.
type IntegrationKind int

// Integration types defined by the platform protocol.
const (
	IntegrationKindGuildInstall IntegrationKind = 0
	IntegrationKindUserInstall  IntegrationKind = 1
)
