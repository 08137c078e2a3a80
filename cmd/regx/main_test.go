package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fractalqb/regx"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

const assignPattern = `(\w+)\s*(=\s*\w+)`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0640))
	return file
}

func TestRecipe_resolve(t *testing.T) {
	t.Run("pattern and groups", func(t *testing.T) {
		rc := recipe{pattern: assignPattern, groups: []string{":0", "1:"}, tabWidth: 8}
		al, err := rc.resolve("", discard)
		require.NoError(t, err)
		assert.Equal(t, 8, al.regx.TabWidth())
		assert.Equal(t, []regx.GroupSettings{regx.Pad(-1, 0), regx.Pad(1, -1)}, al.settings)
	})
	t.Run("default groups", func(t *testing.T) {
		rc := recipe{pattern: assignPattern}
		al, err := rc.resolve("", discard)
		require.NoError(t, err)
		assert.Equal(t, regx.DefaultTabWidth, al.regx.TabWidth())
		assert.Equal(t, make([]regx.GroupSettings, 2), al.settings)
	})
	t.Run("preset", func(t *testing.T) {
		rc := recipe{preset: "colon", tabWidth: 2}
		al, err := rc.resolve("", discard)
		require.NoError(t, err)
		assert.Equal(t, "colon", al.name)
		assert.Equal(t, 2, al.regx.TabWidth())
		out, err := al.Regularize("a: 1\nabc: 2")
		require.NoError(t, err)
		assert.Equal(t, "a:   1\nabc: 2", out)
	})
	t.Run("user preset", func(t *testing.T) {
		file := writeFile(t, "presets.yaml", `
presets:
  - name: arrow
    pattern: '^(.*?)\s*(->.*)$'
    groups: [{after: 1}, {}]
`)
		al, err := (&recipe{preset: "arrow"}).resolve(file, discard)
		require.NoError(t, err)
		out, err := al.Regularize("a -> b\nabcd -> e")
		require.NoError(t, err)
		assert.Equal(t, "a       -> b\nabcd    -> e", out)
	})
	t.Run("errors", func(t *testing.T) {
		_, err := (&recipe{}).resolve("", discard)
		assert.ErrorContains(t, err, "no pattern")
		_, err = (&recipe{preset: "nope"}).resolve("", discard)
		assert.ErrorContains(t, err, "unknown preset")
		_, err = (&recipe{pattern: assignPattern, groups: []string{"x"}}).resolve("", discard)
		assert.Error(t, err)
		_, err = (&recipe{pattern: assignPattern, groups: []string{":1"}}).resolve("", discard)
		var serr *regx.SettingsError
		assert.True(t, errors.As(err, &serr), "error: %v", err)
		_, err = (&recipe{pattern: `(?<!x)y`}).resolve("", discard)
		assert.Error(t, err)
	})
}

func TestEachFile(t *testing.T) {
	rc := recipe{pattern: assignPattern, groups: []string{":0", "1:"}}
	al, err := rc.resolve("", discard)
	require.NoError(t, err)
	files := []string{
		writeFile(t, "a.txt", "a = 1\nlongname = 2\n"),
		writeFile(t, "b.txt", "x = 1\r\nyy = 2\r\n"),
	}
	res, err := eachFile(context.Background(), files,
		func(in input) (aligned, error) { return alignInput(al, in) },
	)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, files[0], res[0].name)
	assert.Equal(t, "a        = 1\nlongname = 2\n", res[0].out)
	assert.Equal(t, "\n", res[0].eol)
	assert.Equal(t, "x    = 1\nyy   = 2\n", res[1].out)
	assert.Equal(t, "\r\n", res[1].eol)
	assert.Equal(t, os.FileMode(0640), res[1].mode)

	require.NoError(t, rewrite(&res[1]))
	data, err := os.ReadFile(files[1])
	require.NoError(t, err)
	assert.Equal(t, "x    = 1\r\nyy   = 2\r\n", string(data))

	var buf bytes.Buffer
	require.NoError(t, printDiff(&buf, &res[0]))
	assert.Contains(t, buf.String(), "-a = 1\n")
	assert.Contains(t, buf.String(), "+a        = 1\n")

	_, err = eachFile(context.Background(), []string{filepath.Join(t.TempDir(), "missing")},
		func(in input) (aligned, error) { return alignInput(al, in) },
	)
	assert.Error(t, err)
}

func TestExplain(t *testing.T) {
	al, err := (&recipe{pattern: assignPattern, groups: []string{":0", "1:"}}).resolve("", discard)
	require.NoError(t, err)
	lines, err := al.Parse("a = 1\nx")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, explain(&buf, al.regx, lines))
	assert.Equal(t, "   1 |a| = 1\n   2  x\nwidths: 4(1) 4(4)\n", buf.String())
}

// failingWriter accepts n writes and fails all following ones.
type failingWriter struct{ n int }

var errWrite = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWrite
	}
	w.n--
	return len(p), nil
}

func TestExplain_writeError(t *testing.T) {
	al, err := (&recipe{pattern: assignPattern, groups: []string{":0", "1:"}}).resolve("", discard)
	require.NoError(t, err)
	lines, err := al.Parse("a = 1\nx")
	require.NoError(t, err)
	assert.ErrorIs(t, explain(&failingWriter{n: 1}, al.regx, lines), errWrite)
	assert.ErrorIs(t, explain(&failingWriter{n: 2}, al.regx, lines), errWrite)
	assert.NoError(t, explain(&failingWriter{n: 3}, al.regx, lines))
}

func TestWritePresetList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePresetList(&buf, regx.DefaultPresets()))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	col := strings.Index(lines[0], "DESCRIPTION")
	require.Positive(t, col)
	for i, name := range []string{"assign", "colon", "comment", "define"} {
		assert.True(t, strings.HasPrefix(lines[i+1], name+" "), lines[i+1])
		assert.Equal(t, "align", lines[i+1][col:col+5], lines[i+1])
	}
}

func TestShowPresets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, showPresets(&buf, regx.DefaultPresets(), []string{"colon"}))
	ps, err := regx.ReadPresets(&buf)
	require.NoError(t, err)
	p, ok := ps.Get("colon")
	require.True(t, ok)
	def, _ := regx.DefaultPresets().Get("colon")
	assert.Equal(t, def, p)

	assert.Error(t, showPresets(&buf, regx.DefaultPresets(), []string{"nope"}))
}

func TestAlignCommand(t *testing.T) {
	file := writeFile(t, "in.txt", "a = 1\nlongname = 2\n")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"align",
		"-e", assignPattern,
		"-g", ":0", "-g", "1:",
		file,
	})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "a        = 1\nlongname = 2\n", out.String())
}
