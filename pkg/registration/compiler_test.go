package registration

import (
	"encoding/json"
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

func TestCompileFlatCommand(t *testing.T) {
	cmd := mustBuild(t, testutils.SimpleCommandDescriptor())
	payload := Compile(cmd)

	assert.Equal(t, "hello", payload.Name)
	assert.Equal(t, "Send a greeting", payload.Description)
	require.Len(t, payload.Options, 2)

	assert.Equal(t, slashtypes.OptionTypeString.Code(), payload.Options[0].Type)
	assert.Equal(t, "message", payload.Options[0].Name)
	assert.True(t, payload.Options[0].Required)

	assert.Equal(t, slashtypes.OptionTypeUser.Code(), payload.Options[1].Type)
	assert.False(t, payload.Options[1].Required)
}

func TestCompileIsDeterministic(t *testing.T) {
	cmd := mustBuild(t, testutils.GroupCommandDescriptor())

	first, err := json.Marshal(Compile(cmd))
	require.NoError(t, err)
	second, err := json.Marshal(Compile(cmd))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestCompileTypeCodesAtEveryLevel(t *testing.T) {
	cmd := mustBuild(t, testutils.GroupCommandDescriptor())
	payload := Compile(cmd)

	require.Len(t, payload.Options, 1)
	group := payload.Options[0]
	assert.Equal(t, 2, group.Type)

	require.Len(t, group.Options, 2)
	for _, sub := range group.Options {
		assert.Equal(t, 1, sub.Type)
		for _, leaf := range sub.Options {
			kind, ok := slashtypes.OptionTypeFromCode(leaf.Type)
			require.True(t, ok)
			assert.Equal(t, slashtypes.OptionTypeString, kind)
		}
	}

	// children keep declaration order
	assert.Equal(t, "get", group.Options[0].Name)
	assert.Equal(t, "set", group.Options[1].Name)
}

func TestCompilePermissionsAndFlags(t *testing.T) {
	perms := uint64(2048)
	dm := false
	desc := testutils.SimpleCommandDescriptor()
	desc.DefaultMemberPermissions = &perms
	desc.DMPermission = &dm
	desc.NSFW = true
	desc.Contexts = []slashtypes.ContextKind{slashtypes.ContextKindGuild, slashtypes.ContextKindBotDM}
	desc.IntegrationTypes = []slashtypes.IntegrationKind{slashtypes.IntegrationKindUserInstall}

	payload := Compile(mustBuild(t, desc))

	require.NotNil(t, payload.DefaultMemberPermissions)
	assert.Equal(t, "2048", *payload.DefaultMemberPermissions)
	require.NotNil(t, payload.DMPermission)
	assert.False(t, *payload.DMPermission)
	assert.True(t, payload.NSFW)
	assert.Equal(t, []int{0, 1}, payload.Contexts)
	assert.Equal(t, []int{1}, payload.IntegrationTypes)
}

func TestCompileBoundsKeepNativeTypes(t *testing.T) {
	min := slashtypes.NumericBound{Int: 1}
	max := slashtypes.NumericBound{Int: 10}
	ratioMin := slashtypes.NumericBound{Num: 0.5}

	desc := schema.CommandDescriptor{
		Name:        "limits",
		Description: "Bound exercising command",
		Options: []schema.OptionDescriptor{
			{
				Name:        "count",
				Description: "A bounded integer",
				Kind:        slashtypes.OptionTypeInteger,
				MinValue:    &min,
				MaxValue:    &max,
			},
			{
				Name:        "ratio",
				Description: "A bounded number",
				Kind:        slashtypes.OptionTypeNumber,
				MinValue:    &ratioMin,
			},
		},
	}

	payload := Compile(mustBuild(t, desc))
	require.Len(t, payload.Options, 2)

	assert.Equal(t, int64(1), payload.Options[0].MinValue)
	assert.Equal(t, int64(10), payload.Options[0].MaxValue)
	assert.Equal(t, 0.5, payload.Options[1].MinValue)
	assert.Nil(t, payload.Options[1].MaxValue)
}

func TestCompileChoices(t *testing.T) {
	desc := schema.CommandDescriptor{
		Name:        "pick",
		Description: "Pick a level",
		Options: []schema.OptionDescriptor{
			{
				Name:        "level",
				Description: "Level to use",
				Kind:        slashtypes.OptionTypeInteger,
				Choices: []schema.ChoiceDescriptor{
					{Name: "Low", Value: slashtypes.IntChoiceValue(1)},
					{Name: "High", Value: slashtypes.IntChoiceValue(2)},
				},
			},
		},
	}

	payload := Compile(mustBuild(t, desc))
	require.Len(t, payload.Options[0].Choices, 2)
	assert.Equal(t, "Low", payload.Options[0].Choices[0].Name)
	assert.Equal(t, int64(1), payload.Options[0].Choices[0].Value)
	assert.Equal(t, int64(2), payload.Options[0].Choices[1].Value)
}

func TestCompileLocalizations(t *testing.T) {
	desc := testutils.SimpleCommandDescriptor()
	desc.NameLocalizations = map[string]string{"fr": "bonjour"}

	payload := Compile(mustBuild(t, desc))
	assert.Equal(t, map[string]string{"fr": "bonjour"}, payload.NameLocalizations)

	data, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name_localizations"`)
	// empty tables are omitted from the wire form entirely
	assert.NotContains(t, string(data), `"description_localizations"`)
}

func TestCompileOmitsEmptyCollections(t *testing.T) {
	desc := schema.CommandDescriptor{
		Name:        "ping",
		Description: "Check liveness",
	}

	payload := Compile(mustBuild(t, desc))
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	assert.NotContains(t, string(data), `"options"`)
	assert.NotContains(t, string(data), `"contexts"`)
	assert.NotContains(t, string(data), `"default_member_permissions"`)
}
