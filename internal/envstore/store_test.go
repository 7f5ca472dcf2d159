package envstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeEnv creates a backing file with content and returns its path.
func writeEnv(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), ".env.example")
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	return file
}

func readEnv(t *testing.T, file string) string {
	t.Helper()
	content, err := os.ReadFile(file)
	require.NoError(t, err)
	return string(content)
}

func asMap(s *Store) map[string]string {
	m := make(map[string]string)
	for _, e := range s.List() {
		m[e.Key] = e.Value
	}
	return m
}

func TestLoadMalformedLines(t *testing.T) {
	file := writeEnv(t, "# comment\n\nFOO=bar\nBADLINE\n")

	s, err := Open(context.Background(), file)
	require.NoError(t, err)
	assert.True(t, s.Exists())
	assert.Equal(t, map[string]string{"FOO": "bar"}, asMap(s))
}

func TestLoadMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing.env")

	s, err := Open(context.Background(), file)
	require.NoError(t, err)
	assert.False(t, s.Exists())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.List())

	_, statErr := os.Stat(file)
	assert.True(t, os.IsNotExist(statErr), "load must not create the file")
}

func TestLoadDirectoryFails(t *testing.T) {
	_, err := Open(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestLoadDuplicatesKeepFirstPosition(t *testing.T) {
	file := writeEnv(t, "A=1\nB=2\nA=3\n")

	s, err := Open(context.Background(), file)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, s.Keys())
	v, _ := s.Get("A")
	assert.Equal(t, "3", v)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	file := writeEnv(t, "  KEY  =  some value  \n")

	s, err := Open(context.Background(), file)
	require.NoError(t, err)
	v, ok := s.Get("KEY")
	assert.True(t, ok)
	assert.Equal(t, "some value", v)
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "app.env")

	s := New(file)
	require.NoError(t, s.Add(ctx, "ZED", "last"))
	require.NoError(t, s.Add(ctx, "ALPHA", "first=1"))
	require.NoError(t, s.Add(ctx, " SPACED ", "  padded  "))

	fresh, err := Open(ctx, file)
	require.NoError(t, err)
	assert.Equal(t, asMap(s), asMap(fresh))
	assert.Equal(t, []string{"ZED", "ALPHA", "SPACED"}, fresh.Keys())
	assert.Equal(t, "ZED=last\nALPHA=first=1\nSPACED=padded\n", readEnv(t, file))
}

func TestLoadLongValue(t *testing.T) {
	ctx := context.Background()
	cert := strings.Repeat("A", 70*1024)
	file := writeEnv(t, "FOO=bar\nCERT="+cert+"\n")

	s, err := Open(ctx, file)
	require.NoError(t, err)
	v, ok := s.Get("CERT")
	require.True(t, ok)
	assert.Len(t, v, len(cert))

	require.NoError(t, s.Save(ctx))
	assert.Equal(t, "FOO=bar\nCERT="+cert+"\n", readEnv(t, file))
}

func TestListSortedAndIdempotent(t *testing.T) {
	file := writeEnv(t, "B=2\nC=3\nA=1\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	first := s.List()
	second := s.List()
	assert.Equal(t, first, second)
	assert.Equal(t, []Entry{{Key: "A", Value: "1"}, {Key: "B", Value: "2"}, {Key: "C", Value: "3"}}, first)
	assert.Equal(t, []string{"B", "C", "A"}, s.Keys(), "listing must not reorder persistence")
}

func TestAddRejectsEmptyKey(t *testing.T) {
	file := writeEnv(t, "# untouched\nFOO=bar\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	err = s.Add(context.Background(), "   ", "value")
	assert.True(t, errors.Is(err, ErrEmptyKey))
	assert.True(t, IsUserError(err))
	assert.Equal(t, "# untouched\nFOO=bar\n", readEnv(t, file))
}

func TestAddRejectsDuplicate(t *testing.T) {
	file := writeEnv(t, "# untouched\nFOO=bar\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	err = s.Add(context.Background(), "FOO", "baz")
	assert.True(t, errors.Is(err, ErrKeyExists))
	assert.Equal(t, map[string]string{"FOO": "bar"}, asMap(s))
	// A save would have dropped the comment line
	assert.Equal(t, "# untouched\nFOO=bar\n", readEnv(t, file))
}

func TestAddCreatesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "new.env")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)
	require.False(t, s.Exists())

	require.NoError(t, s.Add(context.Background(), "NEW", "1"))
	assert.True(t, s.Exists())
	assert.Equal(t, "NEW=1\n", readEnv(t, file))
}

func TestAddSaveFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing", "app.env")
	s := New(file)

	err := s.Add(context.Background(), "A", "1")
	require.Error(t, err)
	assert.False(t, IsUserError(err))
}

func TestEditKeepCurrent(t *testing.T) {
	file := writeEnv(t, "FOO=bar\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	entry, kept, err := s.Edit(context.Background(), "FOO", "")
	require.NoError(t, err)
	assert.True(t, kept)
	assert.Equal(t, Entry{Key: "FOO", Value: "bar"}, entry)
	v, _ := s.Get("FOO")
	assert.Equal(t, "bar", v)
	assert.Equal(t, "FOO=bar\n", readEnv(t, file))
}

func TestEditOverwritesInPlace(t *testing.T) {
	file := writeEnv(t, "# header\nA=1\nFOO=bar\nZ=26\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	entry, kept, err := s.Edit(context.Background(), "FOO", "  baz ")
	require.NoError(t, err)
	assert.False(t, kept)
	assert.Equal(t, "baz", entry.Value)
	assert.Equal(t, "A=1\nFOO=baz\nZ=26\n", readEnv(t, file))
}

func TestEditMissingKey(t *testing.T) {
	file := writeEnv(t, "# untouched\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	_, _, err = s.Edit(context.Background(), "NOPE", "x")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, "# untouched\n", readEnv(t, file))
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	file := writeEnv(t, "FOO=bar\n")
	s, err := Open(ctx, file)
	require.NoError(t, err)

	for _, answer := range []string{"", "n", "yes", "N", "maybe"} {
		err := s.Delete(ctx, "FOO", answer)
		assert.True(t, errors.Is(err, ErrDeleteCancelled), "answer %q", answer)
		assert.Equal(t, map[string]string{"FOO": "bar"}, asMap(s))
	}

	require.NoError(t, s.Delete(ctx, "FOO", "Y"))
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", readEnv(t, file))
}

func TestDeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	file := writeEnv(t, "C=3\nA=1\nB=2\n")
	s, err := Open(ctx, file)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "A", " y "))
	assert.Equal(t, []string{"C", "B"}, s.Keys())
	assert.Equal(t, "C=3\nB=2\n", readEnv(t, file))
}

func TestDeleteMissingKey(t *testing.T) {
	file := writeEnv(t, "FOO=bar\n")
	s, err := Open(context.Background(), file)
	require.NoError(t, err)

	err = s.Delete(context.Background(), "BAR", "y")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
	assert.Equal(t, 1, s.Len())
}

func TestIsConfirmation(t *testing.T) {
	assert.True(t, IsConfirmation("y"))
	assert.True(t, IsConfirmation("Y"))
	assert.True(t, IsConfirmation(" y\n"))
	assert.False(t, IsConfirmation("yes"))
	assert.False(t, IsConfirmation(""))
}
