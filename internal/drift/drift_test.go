package drift

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slashkit/internal/testutils"
	"slashkit/pkg/registration"
	"slashkit/pkg/schema"
)

func compiled(t *testing.T, desc schema.CommandDescriptor) registration.Payload {
	t.Helper()
	cmd, errs := schema.Build(desc)
	require.Empty(t, errs)
	return registration.Compile(cmd)
}

func TestCompareNoDrift(t *testing.T) {
	payloads := []registration.Payload{
		compiled(t, testutils.SimpleCommandDescriptor()),
		compiled(t, testutils.DispatchCommandDescriptor()),
	}

	report, err := Compare(payloads, payloads)
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestCompareOrderIndependent(t *testing.T) {
	hello := compiled(t, testutils.SimpleCommandDescriptor())
	tag := compiled(t, testutils.DispatchCommandDescriptor())

	report, err := Compare(
		[]registration.Payload{hello, tag},
		[]registration.Payload{tag, hello},
	)
	require.NoError(t, err)
	assert.True(t, report.Empty())
}

func TestCompareAddedAndRemoved(t *testing.T) {
	hello := compiled(t, testutils.SimpleCommandDescriptor())
	tag := compiled(t, testutils.DispatchCommandDescriptor())
	config := compiled(t, testutils.GroupCommandDescriptor())

	report, err := Compare(
		[]registration.Payload{hello, config},
		[]registration.Payload{hello, tag},
	)
	require.NoError(t, err)

	assert.False(t, report.Empty())
	assert.Equal(t, []string{"config"}, report.Added)
	assert.Equal(t, []string{"tag"}, report.Removed)
	assert.Empty(t, report.Changed)
}

func TestCompareChanged(t *testing.T) {
	before := compiled(t, testutils.SimpleCommandDescriptor())

	changed := testutils.SimpleCommandDescriptor()
	changed.Description = "Send a very different greeting"
	after := compiled(t, changed)

	report, err := Compare(
		[]registration.Payload{after},
		[]registration.Payload{before},
	)
	require.NoError(t, err)

	require.Len(t, report.Changed, 1)
	assert.Equal(t, "hello", report.Changed[0].Name)
	assert.Contains(t, report.Changed[0].Diff, "different")
}

func TestLoadSnapshot(t *testing.T) {
	t.Run("round-trips compiled payloads", func(t *testing.T) {
		payloads := []registration.Payload{compiled(t, testutils.SimpleCommandDescriptor())}
		data, err := json.MarshalIndent(payloads, "", "  ")
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "snapshot.json")
		require.NoError(t, os.WriteFile(path, data, 0o644))

		loaded, err := LoadSnapshot(path)
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "hello", loaded[0].Name)

		report, err := Compare(payloads, loaded)
		require.NoError(t, err)
		assert.True(t, report.Empty())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read snapshot")
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
		_, err := LoadSnapshot(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid snapshot")
	})
}
