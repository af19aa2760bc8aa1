// Copyright (c) 2026 CodeNinjaHub. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeninjahub/codeninjahub/internal/core/language"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestResolveCommand(t *testing.T) {
	out, err := execute(t, "resolve", "C++")
	require.NoError(t, err)

	var lang language.Language
	require.NoError(t, json.Unmarshal([]byte(out), &lang))
	assert.Equal(t, "cpp", lang.Slug)
	assert.Equal(t, "C++", lang.Name)
}

func TestResolveCommand_NotFound(t *testing.T) {
	_, err := execute(t, "resolve", "ruby")

	require.Error(t, err)
	assert.ErrorIs(t, err, language.ErrNotFound)
}

func TestResolveCommand_RequiresIdentifier(t *testing.T) {
	_, err := execute(t, "resolve")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate")

	require.NoError(t, err)
	assert.Equal(t, "catalog ok: 3 languages\n", out)
}

/*
TestExportCommand runs a full export into a temporary directory.
*/
func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SITE_BASE_URL", "https://codeninjahub.dev")

	out, err := execute(t, "export", "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 8 files to "+dir)

	sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "<loc>https://codeninjahub.dev/languages/cpp</loc>")
}
