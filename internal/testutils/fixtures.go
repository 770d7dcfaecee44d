// Package testutils provides deterministic generators and fixture builders
// for slashkit testing. This file contains reusable descriptor fixtures and
// a fluent builder for resolved entity bags.
package testutils

import (
	"slashkit/pkg/schema"
	"slashkit/pkg/slashtypes"
)

// BagBuilder assembles a resolved entity bag for tests.
type BagBuilder struct {
	bag slashtypes.ResolvedBag
}

// NewBagBuilder creates an empty bag builder.
func NewBagBuilder() *BagBuilder {
	return &BagBuilder{
		bag: slashtypes.ResolvedBag{
			Users:       make(map[string]slashtypes.User),
			Members:     make(map[string]slashtypes.Member),
			Channels:    make(map[string]slashtypes.Channel),
			Roles:       make(map[string]slashtypes.Role),
			Attachments: make(map[string]slashtypes.Attachment),
		},
	}
}

// WithUser adds a resolved user.
func (b *BagBuilder) WithUser(id, username string) *BagBuilder {
	b.bag.Users[id] = slashtypes.User{ID: id, Username: username}
	return b
}

// NewUser adds a resolved user under a freshly minted entity ID and returns
// the ID for use in raw references.
func (b *BagBuilder) NewUser(username string) string {
	id := GenerateEntityID()
	b.WithUser(id, username)
	return id
}

// WithMember adds guild member data for a user ID.
func (b *BagBuilder) WithMember(id, nick string) *BagBuilder {
	b.bag.Members[id] = slashtypes.Member{Nick: nick}
	return b
}

// WithChannel adds a resolved channel.
func (b *BagBuilder) WithChannel(id, name string, kind slashtypes.ChannelKind) *BagBuilder {
	b.bag.Channels[id] = slashtypes.Channel{ID: id, Name: name, Kind: kind}
	return b
}

// NewChannel adds a resolved channel under a freshly minted entity ID and
// returns the ID.
func (b *BagBuilder) NewChannel(name string, kind slashtypes.ChannelKind) string {
	id := GenerateEntityID()
	b.WithChannel(id, name, kind)
	return id
}

// WithRole adds a resolved role.
func (b *BagBuilder) WithRole(id, name string) *BagBuilder {
	b.bag.Roles[id] = slashtypes.Role{ID: id, Name: name}
	return b
}

// NewRole adds a resolved role under a freshly minted entity ID and returns
// the ID.
func (b *BagBuilder) NewRole(name string) string {
	id := GenerateEntityID()
	b.WithRole(id, name)
	return id
}

// WithAttachment adds a resolved attachment.
func (b *BagBuilder) WithAttachment(id, filename string) *BagBuilder {
	b.bag.Attachments[id] = slashtypes.Attachment{ID: id, Filename: filename, Size: 1024, URL: "https://cdn.example.com/" + filename}
	return b
}

// NewAttachment adds a resolved attachment under a freshly minted entity ID
// and returns the ID.
func (b *BagBuilder) NewAttachment(filename string) string {
	id := GenerateEntityID()
	b.WithAttachment(id, filename)
	return id
}

// Build returns the assembled bag.
func (b *BagBuilder) Build() *slashtypes.ResolvedBag {
	return &b.bag
}

// SimpleCommandDescriptor returns a flat two-field command: a required
// string "message" and an optional user "target".
func SimpleCommandDescriptor() schema.CommandDescriptor {
	return schema.CommandDescriptor{
		Name:        "hello",
		Description: "Send a greeting",
		Options: []schema.OptionDescriptor{
			{
				Name:        "message",
				Description: "The message to send",
				Kind:        slashtypes.OptionTypeString,
				Required:    true,
			},
			{
				Name:        "target",
				Description: "The user to greet",
				Kind:        slashtypes.OptionTypeUser,
			},
		},
	}
}

// DispatchCommandDescriptor returns a command with two subcommand branches,
// "add" (required string "name") and "remove" (required integer "id").
func DispatchCommandDescriptor() schema.CommandDescriptor {
	return schema.CommandDescriptor{
		Name:        "tag",
		Description: "Manage tags",
		Options: []schema.OptionDescriptor{
			{
				Name:        "add",
				Description: "Add a tag",
				Kind:        slashtypes.OptionTypeSubCommand,
				SubOptions: []schema.OptionDescriptor{
					{
						Name:        "name",
						Description: "Tag name",
						Kind:        slashtypes.OptionTypeString,
						Required:    true,
					},
				},
			},
			{
				Name:        "remove",
				Description: "Remove a tag",
				Kind:        slashtypes.OptionTypeSubCommand,
				SubOptions: []schema.OptionDescriptor{
					{
						Name:        "id",
						Description: "Tag ID",
						Kind:        slashtypes.OptionTypeInteger,
						Required:    true,
					},
				},
			},
		},
	}
}

// GroupCommandDescriptor returns a command whose single subcommand group
// "user" holds two subcommand branches, exercising full nesting depth.
func GroupCommandDescriptor() schema.CommandDescriptor {
	return schema.CommandDescriptor{
		Name:        "config",
		Description: "Manage configuration",
		Options: []schema.OptionDescriptor{
			{
				Name:        "user",
				Description: "Per-user settings",
				Kind:        slashtypes.OptionTypeSubCommandGroup,
				SubOptions: []schema.OptionDescriptor{
					{
						Name:        "get",
						Description: "Read a setting",
						Kind:        slashtypes.OptionTypeSubCommand,
						SubOptions: []schema.OptionDescriptor{
							{
								Name:        "key",
								Description: "Setting name",
								Kind:        slashtypes.OptionTypeString,
								Required:    true,
							},
						},
					},
					{
						Name:        "set",
						Description: "Write a setting",
						Kind:        slashtypes.OptionTypeSubCommand,
						SubOptions: []schema.OptionDescriptor{
							{
								Name:        "key",
								Description: "Setting name",
								Kind:        slashtypes.OptionTypeString,
								Required:    true,
							},
							{
								Name:        "value",
								Description: "New value",
								Kind:        slashtypes.OptionTypeString,
								Required:    true,
							},
						},
					},
				},
			},
		},
	}
}
