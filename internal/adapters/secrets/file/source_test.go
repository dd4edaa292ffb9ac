package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceReadReturnsFileContents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".credentials.json")
	want := `{"claudeAiOauth":{"accessToken":"tok"}}`
	require.NoError(t, os.WriteFile(path, []byte(want), 0o600))

	got, err := NewSource(path).Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestSourceReadMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := NewSource(path).Read(context.Background())
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorContains(t, err, "not found")
}

func TestSourceReadRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewSource("").Read(context.Background())
	require.ErrorContains(t, err, "credentials path is empty")
}

func TestSourceReadHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSource(filepath.Join(t.TempDir(), "x.json")).Read(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
