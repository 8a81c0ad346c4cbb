package processor

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/jhump/annobind"
)

const testdataPath = "github.com/jhump/annobind/processor/testdata/"

func load(t *testing.T, includeTests bool, patterns ...string) []*Context {
	t.Helper()
	cfg := Config{Patterns: patterns, IncludeTests: includeTests}
	ctxs, err := cfg.Load()
	require.NoError(t, err)
	return ctxs
}

func loadErr(t *testing.T, pattern string) *ErrorWithPosition {
	t.Helper()
	cfg := Config{Patterns: []string{pattern}}
	_, err := cfg.Load()
	require.Error(t, err)
	var pe *ErrorWithPosition
	require.True(t, errors.As(err, &pe), "expected positioned error, got %v", err)
	return pe
}

func TestLoad_Elements(t *testing.T) {
	ctxs := load(t, false, "./testdata/login")
	require.Len(t, ctxs, 1)
	ctx := ctxs[0]
	assert.Equal(t, testdataPath+"login", ctx.Package.PkgPath)
	require.Equal(t, 6, ctx.NumElements())

	type elem struct {
		kind annobind.ElementType
		name string
		id   int
		ptr  bool
	}
	var got []elem
	for i := 0; i < ctx.NumElements(); i++ {
		ae := ctx.GetElement(i)
		assert.Equal(t, "Login", ae.Owner.Name())
		assert.False(t, ae.Test)
		got = append(got, elem{kind: ae.Kind, name: ae.Name(), id: ae.Bind.ID, ptr: ae.PointerReceiver})
	}
	assert.Equal(t, []elem{
		{kind: annobind.Types, name: "Login", id: 100},
		{kind: annobind.Fields, name: "username", id: 201},
		{kind: annobind.Fields, name: "password", id: 202},
		{kind: annobind.Methods, name: "submit", id: 203, ptr: true},
		{kind: annobind.Methods, name: "Cancel", id: 204},
		{kind: annobind.Methods, name: "Hint", id: 0, ptr: true},
	}, got)

	assert.Len(t, ctx.ElementsOfType(annobind.Types), 1)
	assert.Len(t, ctx.ElementsOfType(annobind.Fields), 2)
	assert.Len(t, ctx.ElementsOfType(annobind.Methods), 3)

	typ := ctx.ElementsOfType(annobind.Types)[0]
	assert.Same(t, typ, ctx.ElementFor(typ.Obj))
	assert.Equal(t, 16, typ.Pos.Line)
	assert.Equal(t, 4, typ.Pos.Column)
	assert.Equal(t, "login.go", filepath.Base(typ.Pos.Filename))
}

func TestLoad_IncludeTests(t *testing.T) {
	ctxs := load(t, true, "./testdata/withtests")
	require.Len(t, ctxs, 1)
	ctx := ctxs[0]
	require.Equal(t, 4, ctx.NumElements())
	assert.Len(t, ctx.elementsFor(false), 2)
	tests := ctx.elementsFor(true)
	require.Len(t, tests, 2)
	assert.Equal(t, "fakePanel", tests[0].Name())
	assert.Equal(t, 21, tests[1].Bind.ID)

	ctxs = load(t, false, "./testdata/withtests")
	require.Len(t, ctxs, 1)
	assert.Equal(t, 2, ctxs[0].NumElements())
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		pattern string
		line    int
		col     int
		msg     string
	}{
		{"./testdata/badfunc", 9, 4, "@annobind.Bind is only allowed on package-level types, their fields and their methods"},
		{"./testdata/iface", 6, 5, "@annobind.Bind is only allowed on package-level types, their fields and their methods"},
		{"./testdata/undefined", 6, 20, "undefined: NoSuch"},
		{"./testdata/repeated", 7, 5, "@annobind.Bind is repeated"},
		{"./testdata/unknown", 6, 6, "unknown annotation annobind.Binding"},
	}
	for _, tc := range testCases {
		t.Run(filepath.Base(tc.pattern), func(t *testing.T) {
			pe := loadErr(t, tc.pattern)
			assert.Contains(t, pe.Underlying().Error(), tc.msg)
			assert.Equal(t, tc.line, pe.Pos().Line)
			assert.Equal(t, tc.col, pe.Pos().Column)
			assert.True(t, strings.HasPrefix(pe.Error(), pe.Pos().Filename+":"))
		})
	}
}

func TestLoad_ImportOnlyInAnnotations(t *testing.T) {
	cfg := Config{Patterns: []string{"./testdata/annotationimport"}}
	_, err := cfg.Load()
	require.ErrorContains(t, err, "imported and not used")
}

func TestGenerate(t *testing.T) {
	ctx := load(t, false, "./testdata/login")[0]
	var buf bytes.Buffer
	require.NoError(t, Generate(ctx, &buf))
	src := buf.String()

	assert.True(t, strings.HasPrefix(src, "// Code generated by bindgen. DO NOT EDIT.\n"))
	for _, want := range []string{
		"package login",
		`"reflect"`,
		`"github.com/jhump/annobind"`,
		"func init() {",
		"annobind.RegisterTypeAnnotation(reflect.TypeOf((*Login)(nil)).Elem(), annobind.Bind{ID: 100})",
		`annobind.RegisterFieldAnnotation(reflect.TypeOf((*Login)(nil)).Elem(), "username", annobind.Bind{ID: 201})`,
		`annobind.RegisterFieldAnnotation(reflect.TypeOf((*Login)(nil)).Elem(), "password", annobind.Bind{ID: 202})`,
		`annobind.RegisterMethodAnnotation(reflect.TypeOf((*Login)(nil)).Elem(), "submit", (*Login).submit, annobind.Bind{ID: 203})`,
		`annobind.RegisterMethodAnnotation(reflect.TypeOf((*Login)(nil)).Elem(), "Cancel", Login.Cancel, annobind.Bind{ID: 204})`,
		`annobind.RegisterMethodAnnotation(reflect.TypeOf((*Login)(nil)).Elem(), "Hint", (*Login).Hint, annobind.Bind{ID: 0})`,
	} {
		assert.Contains(t, src, want)
	}
	for _, unwanted := range []string{"submitButton", "notes", "unannotated", "Thing"} {
		assert.NotContains(t, src, unwanted)
	}

	_, err := parser.ParseFile(token.NewFileSet(), "login.binds.go", src, parser.ParseComments)
	require.NoError(t, err)

	// no test elements, so nothing is written
	buf.Reset()
	require.NoError(t, GenerateTests(ctx, &buf))
	assert.Zero(t, buf.Len())
}

type memOutput struct {
	files map[string]*bytes.Buffer
}

type memFile struct {
	*bytes.Buffer
}

func (memFile) Close() error { return nil }

func (m *memOutput) factory(path string) (io.WriteCloser, error) {
	buf := &bytes.Buffer{}
	m.files[path] = buf
	return memFile{buf}, nil
}

func TestExecute(t *testing.T) {
	out := &memOutput{files: map[string]*bytes.Buffer{}}
	var seen []string
	cfg := Config{
		Patterns:      []string{"./testdata/withtests", "./testdata/ids"},
		IncludeTests:  true,
		FileSuffix:    ".gen.go",
		OutputFactory: out.factory,
		Processors: []Processor{func(ctx *Context, output OutputFactory) error {
			seen = append(seen, ctx.Package.PkgPath)
			return nil
		}},
	}
	require.NoError(t, cfg.Execute())

	assert.ElementsMatch(t, []string{testdataPath + "withtests", testdataPath + "ids"}, seen)
	require.Len(t, out.files, 2)

	main := out.files[testdataPath+"withtests/withtests.gen.go"]
	require.NotNil(t, main)
	assert.Contains(t, main.String(), "(*Panel)(nil)")
	assert.NotContains(t, main.String(), "fakePanel")

	tests := out.files[testdataPath+"withtests/withtests.gen_test.go"]
	require.NotNil(t, tests)
	assert.Contains(t, tests.String(), `"title", annobind.Bind{ID: 21}`)
	assert.NotContains(t, tests.String(), "(*Panel)(nil)")
}

func TestExecute_ProcessorError(t *testing.T) {
	out := &memOutput{files: map[string]*bytes.Buffer{}}
	cfg := Config{
		Patterns:      []string{"./testdata/ids"},
		OutputFactory: out.factory,
		Processors: []Processor{func(*Context, OutputFactory) error {
			return errors.New("boom")
		}},
	}
	require.EqualError(t, cfg.Execute(), "boom")
	assert.Empty(t, out.files)
}

func TestDefaultOutputFactory(t *testing.T) {
	root := t.TempDir()
	w, err := DefaultOutputFactory(root, nil)("example.com/foo/bar.binds.go")
	require.NoError(t, err)
	_, err = io.WriteString(w, "package foo\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	data, err := os.ReadFile(filepath.Join(root, "example.com", "foo", "bar.binds.go"))
	require.NoError(t, err)
	assert.Equal(t, "package foo\n", string(data))

	src := t.TempDir()
	w, err = DefaultOutputFactory("", map[string]string{"example.com/foo": src})("example.com/foo/bar.binds.go")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	_, err = os.Stat(filepath.Join(src, "bar.binds.go"))
	require.NoError(t, err)

	_, err = DefaultOutputFactory("", nil)("example.com/other/x.go")
	require.ErrorContains(t, err, `could not determine output directory for package "example.com/other"`)
}

func TestSelectPackages(t *testing.T) {
	pkgs := []*packages.Package{
		{ID: "a", PkgPath: "a", Name: "a"},
		{ID: "a [a.test]", PkgPath: "a", Name: "a"},
		{ID: "a_test [a.test]", PkgPath: "a_test", Name: "a_test"},
		{ID: "a.test", PkgPath: "a.test", Name: "main"},
		{ID: "b", PkgPath: "b", Name: "b"},
	}
	var ids []string
	for _, p := range selectPackages(pkgs) {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"a [a.test]", "a_test [a.test]", "b"}, ids)
}

func TestRegisterProcessor(t *testing.T) {
	before := len(AllRegisteredProcessors())
	RegisterProcessor(func(*Context, OutputFactory) error { return nil })
	procs := AllRegisteredProcessors()
	assert.Len(t, procs, before+1)
	procs[0] = nil
	assert.NotNil(t, AllRegisteredProcessors()[0])
}
