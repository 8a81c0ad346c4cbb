package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loginPkg = "../../processor/testdata/login"

func TestGenerate_OutputDir(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "generate", "--output-dir", dir, "--suffix", ".reg.go", loginPkg)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "github.com", "jhump", "annobind", "processor", "testdata", "login", "login.reg.go"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "DO NOT EDIT")
	assert.Contains(t, string(data), `"submit", (*Login).submit`)
}

func TestGenerate_MissingOutputDir(t *testing.T) {
	_, err := execute(t, "generate", "--output-dir", filepath.Join(t.TempDir(), "missing"), loginPkg)
	require.ErrorContains(t, err, "output directory")
}

func TestList_JSON(t *testing.T) {
	out, err := execute(t, "list", "--format", "json", loginPkg)
	require.NoError(t, err)

	var els []ListedElement
	require.NoError(t, json.Unmarshal([]byte(out), &els))
	require.Len(t, els, 6)
	assert.Equal(t, ListedElement{
		Package: "github.com/jhump/annobind/processor/testdata/login",
		Kind:    "type",
		Owner:   "Login",
		Name:    "Login",
		ID:      100,
		Pos:     els[0].Pos,
	}, els[0])
	assert.Equal(t, "method", els[5].Kind)
	assert.Equal(t, "Hint", els[5].Name)
}

func TestList_TextFromConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("packages: ["+loginPkg+"]\n"), 0o644))

	out, err := execute(t, "list", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "login.go:16:4\ttype   Login")
	assert.Contains(t, out, "Login.username")
	assert.Contains(t, out, "Login.Cancel")
}

func TestList_BadFormat(t *testing.T) {
	_, err := execute(t, "list", "--format", "xml", loginPkg)
	require.ErrorContains(t, err, `invalid format "xml"`)
}
