package processor

import (
	"errors"
	"fmt"
	"go/token"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/jhump/annobind"
)

// AnnobindPath is the import path of the package that defines the Bind
// annotation and the registration functions called by generated code.
var AnnobindPath = reflect.TypeOf(annobind.Bind{}).PkgPath()

// DefaultFileSuffix is appended to the package name to form the name of the
// generated registration file.
const DefaultFileSuffix = ".binds.go"

// ErrorWithPosition is an error that has source position information associated
// with it. The position indicates the location in a source file where the error
// was encountered.
type ErrorWithPosition struct {
	err error
	pos token.Position
}

// Error implements the error interface. It includes position information in the
// returned message.
func (e *ErrorWithPosition) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.pos.Filename, e.pos.Line, e.pos.Column, e.err.Error())
}

// Underlying returns the underlying error.
func (e *ErrorWithPosition) Underlying() error {
	return e.err
}

// Unwrap returns the underlying error.
func (e *ErrorWithPosition) Unwrap() error {
	return e.err
}

// Pos returns the location in source where the underlying error was
// encountered.
func (e *ErrorWithPosition) Pos() token.Position {
	return e.pos
}

// NewErrorWithPosition returns the given error, but associates it with the
// given source code location.
func NewErrorWithPosition(pos token.Position, err error) *ErrorWithPosition {
	return &ErrorWithPosition{err: err, pos: pos}
}

func posError(pos token.Position, format string, args ...interface{}) *ErrorWithPosition {
	return NewErrorWithPosition(pos, fmt.Errorf(format, args...))
}

// OutputFactory creates a writer for the given output path. The path is the
// package's import path joined with the name of the file to write.
type OutputFactory func(path string) (io.WriteCloser, error)

// Processor acts on the annotations found in one package. It runs after the
// registration file for the package has been written.
type Processor func(ctx *Context, output OutputFactory) error

// DefaultOutputFactory returns an OutputFactory that writes files under
// rootDir, organized by import path. If rootDir is blank, files are written
// next to the package's sources; srcDirs maps import paths to those
// directories.
//
// Files are opened with os.OpenFile, creating them if necessary and
// truncating them if they already exist.
func DefaultOutputFactory(rootDir string, srcDirs map[string]string) OutputFactory {
	return func(path string) (io.WriteCloser, error) {
		path = filepath.ToSlash(path)
		pkgPath := path[:strings.LastIndexByte(path, '/')+1]
		pkgPath = strings.TrimSuffix(pkgPath, "/")
		dest, err := determineOutputDir(rootDir, pkgPath, srcDirs)
		if err != nil {
			return nil, err
		}
		dest = filepath.Join(dest, filepath.Base(path))
		return os.OpenFile(dest, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0666)
	}
}

func determineOutputDir(root, pkgPath string, srcDirs map[string]string) (string, error) {
	if root != "" {
		out := filepath.Join(root, filepath.FromSlash(pkgPath))
		if err := os.MkdirAll(out, os.ModePerm); err != nil {
			return "", fmt.Errorf("could not create output directory %s: %w", out, err)
		}
		return out, nil
	}
	if dir, ok := srcDirs[pkgPath]; ok && dir != "" {
		return dir, nil
	}
	return "", fmt.Errorf("could not determine output directory for package %q", pkgPath)
}

// Config describes which packages to process and where to put the generated
// files. The zero value processes the package in the current directory.
type Config struct {
	// Patterns are package patterns in the form accepted by "go list". If
	// empty, "." is used.
	Patterns []string
	// Dir is the directory in which patterns are interpreted. If blank, the
	// current directory is used.
	Dir string
	// IncludeTests causes test files to be processed. Annotated elements
	// declared in test files are registered from a separate _test.go file.
	IncludeTests bool
	// OutputDir, if not blank, is the root under which generated files are
	// written, organized by import path. Otherwise generated files are written
	// next to the package's sources.
	OutputDir string
	// FileSuffix is appended to the package name to form the generated file's
	// name. If blank, DefaultFileSuffix is used.
	FileSuffix string

	// Processors run for every package after its registration file has been
	// written.
	Processors []Processor
	// OutputFactory, if not nil, overrides the factory created from
	// OutputDir.
	OutputFactory OutputFactory
	// Logger receives progress and warning messages. If nil, slog.Default()
	// is used.
	Logger *slog.Logger
}

func (cfg *Config) logger() *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}

func (cfg *Config) fileSuffix() string {
	if cfg.FileSuffix != "" {
		return cfg.FileSuffix
	}
	return DefaultFileSuffix
}

// Load parses and type-checks the configured packages and extracts their
// annotations. It returns one context per package, in the order the packages
// were loaded.
func (cfg *Config) Load() ([]*Context, error) {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []string{"."}
	}
	pcfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:   cfg.Dir,
		Tests: cfg.IncludeTests,
	}
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, err
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	log := cfg.logger()
	var ctxs []*Context
	for _, pkg := range selectPackages(pkgs) {
		ctx := newContext(pkg, log)
		if err := ctx.computeAllAnnotations(); err != nil {
			return nil, err
		}
		log.Debug("loaded package", slog.String("package", pkg.PkgPath), slog.Int("elements", ctx.NumElements()))
		ctxs = append(ctxs, ctx)
	}
	return ctxs, nil
}

// selectPackages drops synthesized test mains and, when a package was also
// loaded as a test variant, the plain variant (the test variant has a superset
// of its files).
func selectPackages(pkgs []*packages.Package) []*packages.Package {
	hasTestVariant := map[string]bool{}
	for _, pkg := range pkgs {
		if pkg.ID != pkg.PkgPath && strings.HasSuffix(pkg.ID, ".test]") {
			hasTestVariant[pkg.PkgPath] = true
		}
	}
	var selected []*packages.Package
	for _, pkg := range pkgs {
		switch {
		case strings.HasSuffix(pkg.PkgPath, ".test") && pkg.Name == "main":
			continue
		case pkg.ID == pkg.PkgPath && hasTestVariant[pkg.PkgPath]:
			continue
		}
		selected = append(selected, pkg)
	}
	return selected
}

// Execute loads the configured packages, writes a registration file for each
// package that has annotated elements, and then runs the configured
// processors.
func (cfg *Config) Execute() error {
	ctxs, err := cfg.Load()
	if err != nil {
		return err
	}
	output := cfg.OutputFactory
	if output == nil {
		srcDirs := map[string]string{}
		for _, ctx := range ctxs {
			srcDirs[ctx.Package.PkgPath] = ctx.Dir()
		}
		output = DefaultOutputFactory(cfg.OutputDir, srcDirs)
	}
	for _, ctx := range ctxs {
		if err := cfg.writeRegistrations(ctx, output); err != nil {
			return err
		}
		for _, proc := range cfg.Processors {
			if err := proc(ctx, output); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *Config) writeRegistrations(ctx *Context, output OutputFactory) error {
	name := ctx.Package.Name + cfg.fileSuffix()
	testName := strings.TrimSuffix(name, ".go") + "_test.go"

	if err := cfg.writeFile(ctx, output, name, false); err != nil {
		return err
	}
	return cfg.writeFile(ctx, output, testName, true)
}

func (cfg *Config) writeFile(ctx *Context, output OutputFactory, name string, tests bool) error {
	if len(ctx.elementsFor(tests)) == 0 {
		return nil
	}
	path := ctx.Package.PkgPath + "/" + name
	w, err := output(path)
	if err != nil {
		return err
	}
	if err := generate(ctx, w, name, tests); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	cfg.logger().Info("wrote registrations", slog.String("package", ctx.Package.PkgPath), slog.String("file", name))
	return nil
}
