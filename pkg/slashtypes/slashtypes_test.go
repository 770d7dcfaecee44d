package slashtypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionTypeCodes(t *testing.T) {
	tests := []struct {
		kind OptionType
		code int
		name string
	}{
		{OptionTypeSubCommand, 1, "subcommand"},
		{OptionTypeSubCommandGroup, 2, "subcommand_group"},
		{OptionTypeString, 3, "string"},
		{OptionTypeInteger, 4, "integer"},
		{OptionTypeBoolean, 5, "boolean"},
		{OptionTypeUser, 6, "user"},
		{OptionTypeChannel, 7, "channel"},
		{OptionTypeRole, 8, "role"},
		{OptionTypeMentionable, 9, "mentionable"},
		{OptionTypeNumber, 10, "number"},
		{OptionTypeAttachment, 11, "attachment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.kind.Code())
			assert.Equal(t, tt.name, tt.kind.String())

			decoded, ok := OptionTypeFromCode(tt.code)
			require.True(t, ok)
			assert.Equal(t, tt.kind, decoded)
		})
	}
}

func TestOptionTypeFromCodeRejectsUnknown(t *testing.T) {
	for _, code := range []int{0, -1, 12, 100} {
		_, ok := OptionTypeFromCode(code)
		assert.False(t, ok, "code %d should not decode", code)
	}
}

func TestOptionTypeClassification(t *testing.T) {
	assert.True(t, OptionTypeSubCommand.Dispatch())
	assert.True(t, OptionTypeSubCommandGroup.Dispatch())
	assert.False(t, OptionTypeString.Dispatch())

	assert.True(t, OptionTypeUser.ByReference())
	assert.True(t, OptionTypeChannel.ByReference())
	assert.True(t, OptionTypeRole.ByReference())
	assert.True(t, OptionTypeMentionable.ByReference())
	assert.True(t, OptionTypeAttachment.ByReference())
	assert.False(t, OptionTypeString.ByReference())
	assert.False(t, OptionTypeBoolean.ByReference())
}

func TestLocalizationTableClone(t *testing.T) {
	t.Run("nil clones to nil", func(t *testing.T) {
		var lt LocalizationTable
		assert.Nil(t, lt.Clone())
	})

	t.Run("clone is independent", func(t *testing.T) {
		lt := LocalizationTable{"fr": "bonjour"}
		clone := lt.Clone()
		clone["fr"] = "salut"
		assert.Equal(t, "bonjour", lt["fr"])
	})
}

func TestChoiceValueEqual(t *testing.T) {
	assert.True(t, StringChoiceValue("a").Equal(StringChoiceValue("a")))
	assert.False(t, StringChoiceValue("a").Equal(StringChoiceValue("b")))
	assert.True(t, IntChoiceValue(1).Equal(IntChoiceValue(1)))
	assert.False(t, IntChoiceValue(1).Equal(IntChoiceValue(2)))
	assert.True(t, NumberChoiceValue(1.5).Equal(NumberChoiceValue(1.5)))

	// different kinds never compare equal even with zero payloads
	assert.False(t, StringChoiceValue("").Equal(IntChoiceValue(0)))
	assert.False(t, IntChoiceValue(0).Equal(NumberChoiceValue(0)))
}

func TestMentionableID(t *testing.T) {
	user := Mentionable{User: &ResolvedUser{User: User{ID: "42"}}}
	assert.Equal(t, "42", user.ID())

	role := Mentionable{Role: &Role{ID: "99"}}
	assert.Equal(t, "99", role.ID())

	assert.Empty(t, Mentionable{}.ID())
}

func TestResolvedBagLookups(t *testing.T) {
	bag := &ResolvedBag{
		Users:    map[string]User{"u1": {ID: "u1", Username: "alice"}},
		Members:  map[string]Member{"u1": {Nick: "al"}},
		Channels: map[string]Channel{"c1": {ID: "c1", Name: "general"}},
		Roles:    map[string]Role{"r1": {ID: "r1", Name: "admin"}},
		Attachments: map[string]Attachment{
			"a1": {ID: "a1", Filename: "report.pdf"},
		},
	}

	t.Run("user with member data", func(t *testing.T) {
		resolved, ok := bag.UserByID("u1")
		require.True(t, ok)
		assert.Equal(t, "alice", resolved.User.Username)
		require.NotNil(t, resolved.Member)
		assert.Equal(t, "al", resolved.Member.Nick)
	})

	t.Run("missing user", func(t *testing.T) {
		_, ok := bag.UserByID("u2")
		assert.False(t, ok)
	})

	t.Run("channel and role and attachment", func(t *testing.T) {
		channel, ok := bag.ChannelByID("c1")
		require.True(t, ok)
		assert.Equal(t, "general", channel.Name)

		role, ok := bag.RoleByID("r1")
		require.True(t, ok)
		assert.Equal(t, "admin", role.Name)

		attachment, ok := bag.AttachmentByID("a1")
		require.True(t, ok)
		assert.Equal(t, "report.pdf", attachment.Filename)
	})

	t.Run("mentionable prefers users over roles", func(t *testing.T) {
		shared := &ResolvedBag{
			Users: map[string]User{"x": {ID: "x", Username: "both"}},
			Roles: map[string]Role{"x": {ID: "x", Name: "both"}},
		}
		m, ok := shared.MentionableByID("x")
		require.True(t, ok)
		require.NotNil(t, m.User)
		assert.Nil(t, m.Role)
	})

	t.Run("nil bag is safe", func(t *testing.T) {
		var nilBag *ResolvedBag
		_, ok := nilBag.UserByID("u1")
		assert.False(t, ok)
		_, ok = nilBag.ChannelByID("c1")
		assert.False(t, ok)
	})
}

func TestCommandModelNavigation(t *testing.T) {
	leaf := &CommandModel{
		Fields: []FieldResult{
			{Name: "key", Outcome: OptionOutcome{State: OutcomeResolved, Value: OptionValue{Kind: OptionTypeString, Str: "theme"}}},
			{Name: "verbose", Outcome: OptionOutcome{State: OutcomeAbsent}},
		},
	}
	model := &CommandModel{
		Branch: &BranchSelection{
			Name: "user",
			Kind: OptionTypeSubCommandGroup,
			Model: &CommandModel{
				Branch: &BranchSelection{Name: "get", Kind: OptionTypeSubCommand, Model: leaf},
			},
		},
	}

	assert.Equal(t, []string{"user", "get"}, model.Path())
	assert.Same(t, leaf, model.Leaf())

	outcome, ok := leaf.Field("key")
	require.True(t, ok)
	assert.True(t, outcome.Resolved())
	assert.Equal(t, "theme", outcome.Value.Str)

	outcome, ok = leaf.Field("verbose")
	require.True(t, ok)
	assert.Equal(t, OutcomeAbsent, outcome.State)

	_, ok = leaf.Field("missing")
	assert.False(t, ok)

	t.Run("field level has empty path and is its own leaf", func(t *testing.T) {
		assert.Empty(t, leaf.Path())
		assert.Same(t, leaf, leaf.Leaf())
	})
}

func TestSchemaErrorFormatting(t *testing.T) {
	err := &SchemaError{Kind: ErrInvalidName, Path: "weather.city", Detail: "name must be lowercase"}
	assert.Equal(t, "schema error at weather.city: invalid_name: name must be lowercase", err.Error())

	bare := &SchemaError{Kind: ErrTooManyChoices, Path: "weather.city"}
	assert.Equal(t, "schema error at weather.city: too_many_choices", bare.Error())
}

func TestParseErrorFormatting(t *testing.T) {
	t.Run("expected and actual", func(t *testing.T) {
		err := &ParseError{Kind: ErrTypeMismatch, Field: "count", Expected: "integer", Actual: "string"}
		assert.Equal(t, `failed to parse option "count": type_mismatch (expected integer, got string)`, err.Error())
	})

	t.Run("expected only", func(t *testing.T) {
		err := &ParseError{Kind: ErrMissingRequiredOption, Field: "city", Expected: "string"}
		assert.Equal(t, `failed to parse option "city": missing_required_option (expected string)`, err.Error())
	})

	t.Run("actual only", func(t *testing.T) {
		err := &ParseError{Kind: ErrUnknownSubcommand, Field: "tag", Actual: "rename"}
		assert.Equal(t, `failed to parse option "tag": unknown_subcommand (got rename)`, err.Error())
	})

	t.Run("bare", func(t *testing.T) {
		err := &ParseError{Kind: ErrEmptyOption, Field: "config"}
		assert.Equal(t, `failed to parse option "config": empty_option`, err.Error())
	})
}

func TestDispatchLevel(t *testing.T) {
	assert.True(t, DispatchLevel([]OptionSchema{{Name: "add", Kind: OptionTypeSubCommand}}))
	assert.False(t, DispatchLevel([]OptionSchema{{Name: "city", Kind: OptionTypeString}}))
	assert.False(t, DispatchLevel(nil))
}
