package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slashkit/internal/testutils"
	"slashkit/pkg/schema"
	"slashkit/pkg/slashtypes"
)

func mustBuild(t *testing.T, desc schema.CommandDescriptor) *slashtypes.CommandSchema {
	t.Helper()
	cmd, errs := schema.Build(desc)
	require.Empty(t, errs)
	return cmd
}

func TestResolveCommandFlat(t *testing.T) {
	cmd := mustBuild(t, testutils.SimpleCommandDescriptor())
	bag := testutils.NewBagBuilder().WithUser("u1", "alice").Build()

	t.Run("all options submitted", func(t *testing.T) {
		model, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "message", Value: slashtypes.RawStr("hi there")},
			{Name: "target", Value: slashtypes.RawReference("u1")},
		}, bag)
		require.NoError(t, err)
		require.Nil(t, model.Branch)
		require.Len(t, model.Fields, 2)

		message, ok := model.Field("message")
		require.True(t, ok)
		assert.Equal(t, "hi there", message.Value.Str)

		target, ok := model.Field("target")
		require.True(t, ok)
		assert.Equal(t, "alice", target.Value.User.User.Username)
	})

	t.Run("optional option omitted", func(t *testing.T) {
		model, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "message", Value: slashtypes.RawStr("hi")},
		}, bag)
		require.NoError(t, err)

		target, ok := model.Field("target")
		require.True(t, ok)
		assert.Equal(t, slashtypes.OutcomeAbsent, target.State)
	})

	t.Run("required option omitted", func(t *testing.T) {
		_, err := ResolveCommand(cmd, nil, bag)
		var perr *slashtypes.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, slashtypes.ErrMissingRequiredOption, perr.Kind)
		assert.Equal(t, "message", perr.Field)
	})

	t.Run("unmatched raw siblings are ignored", func(t *testing.T) {
		model, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "message", Value: slashtypes.RawStr("hi")},
			{Name: "added_by_newer_client", Value: slashtypes.RawBoolean(true)},
		}, bag)
		require.NoError(t, err)
		require.Len(t, model.Fields, 2)
		_, ok := model.Field("added_by_newer_client")
		assert.False(t, ok)
	})

	t.Run("results preserve declaration order", func(t *testing.T) {
		// submitted in reverse of the declared order
		model, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "target", Value: slashtypes.RawReference("u1")},
			{Name: "message", Value: slashtypes.RawStr("hi")},
		}, bag)
		require.NoError(t, err)
		assert.Equal(t, "message", model.Fields[0].Name)
		assert.Equal(t, "target", model.Fields[1].Name)
	})
}

func TestResolveCommandDispatch(t *testing.T) {
	cmd := mustBuild(t, testutils.DispatchCommandDescriptor())

	t.Run("selects the add branch", func(t *testing.T) {
		model, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "add", Value: slashtypes.RawGroupValue(
				slashtypes.RawOption{Name: "name", Value: slashtypes.RawStr("urgent")},
			)},
		}, nil)
		require.NoError(t, err)
		require.NotNil(t, model.Branch)
		assert.Equal(t, "add", model.Branch.Name)
		assert.Equal(t, slashtypes.OptionTypeSubCommand, model.Branch.Kind)

		name, ok := model.Leaf().Field("name")
		require.True(t, ok)
		assert.Equal(t, "urgent", name.Value.Str)
	})

	t.Run("selects the remove branch", func(t *testing.T) {
		model, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "remove", Value: slashtypes.RawGroupValue(
				slashtypes.RawOption{Name: "id", Value: slashtypes.RawInt(7)},
			)},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"remove"}, model.Path())

		id, ok := model.Leaf().Field("id")
		require.True(t, ok)
		assert.Equal(t, int64(7), id.Value.Int)
	})

	t.Run("unknown branch", func(t *testing.T) {
		_, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "rename", Value: slashtypes.RawGroupValue()},
		}, nil)
		var perr *slashtypes.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, slashtypes.ErrUnknownSubcommand, perr.Kind)
		assert.Equal(t, "rename", perr.Field)
	})

	t.Run("no sibling at a dispatch level", func(t *testing.T) {
		_, err := ResolveCommand(cmd, nil, nil)
		var perr *slashtypes.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, slashtypes.ErrEmptyOption, perr.Kind)
		assert.Equal(t, "tag", perr.Field)
	})

	t.Run("branch sibling without a nested group", func(t *testing.T) {
		_, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "add", Value: slashtypes.RawStr("urgent")},
		}, nil)
		var perr *slashtypes.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, slashtypes.ErrTypeMismatch, perr.Kind)
		assert.Equal(t, "add", perr.Field)
	})

	t.Run("nested failure propagates", func(t *testing.T) {
		_, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "add", Value: slashtypes.RawGroupValue()},
		}, nil)
		var perr *slashtypes.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, slashtypes.ErrMissingRequiredOption, perr.Kind)
		assert.Equal(t, "name", perr.Field)
	})
}

func TestResolveCommandGroupNesting(t *testing.T) {
	cmd := mustBuild(t, testutils.GroupCommandDescriptor())

	model, err := ResolveCommand(cmd, []slashtypes.RawOption{
		{Name: "user", Value: slashtypes.RawGroupValue(
			slashtypes.RawOption{Name: "set", Value: slashtypes.RawGroupValue(
				slashtypes.RawOption{Name: "key", Value: slashtypes.RawStr("theme")},
				slashtypes.RawOption{Name: "value", Value: slashtypes.RawStr("dark")},
			)},
		)},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "set"}, model.Path())
	assert.Equal(t, slashtypes.OptionTypeSubCommandGroup, model.Branch.Kind)

	leaf := model.Leaf()
	require.NotNil(t, leaf)
	key, _ := leaf.Field("key")
	value, _ := leaf.Field("value")
	assert.Equal(t, "theme", key.Value.Str)
	assert.Equal(t, "dark", value.Value.Str)

	t.Run("unknown subcommand beneath the group", func(t *testing.T) {
		_, err := ResolveCommand(cmd, []slashtypes.RawOption{
			{Name: "user", Value: slashtypes.RawGroupValue(
				slashtypes.RawOption{Name: "delete", Value: slashtypes.RawGroupValue()},
			)},
		}, nil)
		var perr *slashtypes.ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, slashtypes.ErrUnknownSubcommand, perr.Kind)
		assert.Equal(t, "delete", perr.Field)
	})
}

func TestResolveBranch(t *testing.T) {
	cmd := mustBuild(t, testutils.DispatchCommandDescriptor())
	add := &cmd.Options[0]

	model, err := ResolveBranch(add, []slashtypes.RawOption{
		{Name: "name", Value: slashtypes.RawStr("urgent")},
	}, nil)
	require.NoError(t, err)
	require.Nil(t, model.Branch)

	name, ok := model.Field("name")
	require.True(t, ok)
	assert.Equal(t, "urgent", name.Value.Str)
}

func TestParseSingle(t *testing.T) {
	cmd := mustBuild(t, testutils.SimpleCommandDescriptor())
	message := &cmd.Options[0]

	outcome, err := ParseSingle(message, []slashtypes.RawOption{
		{Name: "target", Value: slashtypes.RawReference("u1")},
		{Name: "message", Value: slashtypes.RawStr("hello")},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", outcome.Value.Str)

	_, err = ParseSingle(message, nil, nil)
	var perr *slashtypes.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, slashtypes.ErrMissingRequiredOption, perr.Kind)
}

func TestFocusedName(t *testing.T) {
	t.Run("flat", func(t *testing.T) {
		name, ok := FocusedName([]slashtypes.RawOption{
			{Name: "message", Value: slashtypes.RawStr("hi")},
			{Name: "level", Focused: true, Value: slashtypes.RawStr("lo")},
		})
		require.True(t, ok)
		assert.Equal(t, "level", name)
	})

	t.Run("nested beneath dispatch levels", func(t *testing.T) {
		name, ok := FocusedName([]slashtypes.RawOption{
			{Name: "user", Value: slashtypes.RawGroupValue(
				slashtypes.RawOption{Name: "get", Value: slashtypes.RawGroupValue(
					slashtypes.RawOption{Name: "key", Focused: true, Value: slashtypes.RawStr("th")},
				)},
			)},
		})
		require.True(t, ok)
		assert.Equal(t, "key", name)
	})

	t.Run("nothing focused", func(t *testing.T) {
		_, ok := FocusedName([]slashtypes.RawOption{
			{Name: "message", Value: slashtypes.RawStr("hi")},
		})
		assert.False(t, ok)
	})
}

func TestResolveCommandFocusedField(t *testing.T) {
	cmd := mustBuild(t, testutils.SimpleCommandDescriptor())

	model, err := ResolveCommand(cmd, []slashtypes.RawOption{
		{Name: "message", Focused: true, Value: slashtypes.RawStr("par")},
	}, nil)
	require.NoError(t, err)

	message, ok := model.Field("message")
	require.True(t, ok)
	assert.Equal(t, slashtypes.OutcomeFocused, message.State)
	assert.Equal(t, "par", message.Partial.Str)
}
