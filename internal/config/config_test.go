package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
[other]
description = ignored

[gen]
description = 自作配列
title = Layouts
output = out/layout.json
from_optional_any = yes
input_source_id = com.apple.inputmethod.Kotoeri.RomajiTyping.Japanese
key_codes = lang1, , henkan
`)

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "自作配列", s.Description)
	assert.Equal(t, "Layouts", s.Title)
	assert.Equal(t, "out/layout.json", s.Output)
	assert.Equal(t, "com.apple.inputmethod.Kotoeri.RomajiTyping.Japanese", s.InputSourceID)
	require.NotNil(t, s.FromOptionalAny)
	assert.True(t, *s.FromOptionalAny)
	assert.Equal(t, []string{"lang1", "henkan"}, s.KeyCodes)
}

func TestLoadWithoutSection(t *testing.T) {
	s, err := Load(writeProfile(t, "[other]\nkey = value\n"))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
	assert.False(t, s.OptionalAny())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)

	_, err = Load(writeProfile(t, "[gen]\nfrom_optional_any = maybe\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyFromOptionalAny)
}

func TestFromSection(t *testing.T) {
	t.Parallel()

	cfg := ini.Empty()
	sec, err := cfg.NewSection(SectionName)
	require.NoError(t, err)

	_, err = sec.NewKey(KeyFromOptionalAny, "false")
	require.NoError(t, err)

	s, err := FromSection(sec)
	require.NoError(t, err)
	require.NotNil(t, s.FromOptionalAny)
	assert.False(t, *s.FromOptionalAny)
	assert.Nil(t, s.KeyCodes)
}

func TestDefaultPaths(t *testing.T) {
	paths := DefaultPaths()
	require.NotEmpty(t, paths)
	assert.Equal(t, DefaultFileName, paths[len(paths)-1])
}

func TestMerge(t *testing.T) {
	t.Parallel()

	flags := &Settings{Output: "-", KeyCodes: []string{"lang1"}}
	file := &Settings{Description: "from file", FromOptionalAny: Bool(true), KeyCodes: []string{"henkan", "lang1"}}
	profile := &Settings{Description: "from profile", Title: "T", Output: "p.json", FromOptionalAny: Bool(false)}
	defaults := &Settings{Description: "default", Output: "./layout.json"}

	got := Merge(flags, nil, file, profile, defaults)

	assert.Equal(t, Settings{
		Description:     "from file",
		Title:           "T",
		Output:          "-",
		FromOptionalAny: Bool(true),
		KeyCodes:        []string{"lang1", "henkan"},
	}, got)
	assert.True(t, got.OptionalAny())

	// layers are not modified
	assert.Equal(t, []string{"lang1"}, flags.KeyCodes)
}

func TestMergeEmpty(t *testing.T) {
	t.Parallel()

	got := Merge()
	assert.Equal(t, Settings{}, got)
	assert.Nil(t, got.KeyCodes)
	assert.False(t, got.OptionalAny())
}
