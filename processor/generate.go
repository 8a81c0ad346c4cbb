package processor

import (
	"fmt"
	"go/types"
	"io"
	"strings"

	"github.com/jhump/gopoet"

	"github.com/jhump/annobind"
)

const generatedHeader = "// Code generated by bindgen. DO NOT EDIT.\n\n"

var reflectTypeOf = gopoet.NewPackage("reflect").Symbol("TypeOf")

// Generate writes the registration file for the annotated elements declared
// in the package's non-test files. The file declares an init function that
// registers every annotation with annobind.DefaultRegistry.
func Generate(ctx *Context, w io.Writer) error {
	return generate(ctx, w, ctx.Package.Name+DefaultFileSuffix, false)
}

// GenerateTests is like Generate but registers the elements declared in the
// package's _test.go files.
func GenerateTests(ctx *Context, w io.Writer) error {
	name := strings.TrimSuffix(ctx.Package.Name+DefaultFileSuffix, ".go") + "_test.go"
	return generate(ctx, w, name, true)
}

func generate(ctx *Context, w io.Writer, fileName string, tests bool) error {
	els := ctx.elementsFor(tests)
	if len(els) == 0 {
		return nil
	}

	file := gopoet.NewGoFile(fileName, ctx.Package.PkgPath, ctx.Package.Name)
	annosPkg := annobindPackage(ctx)

	initFunc := gopoet.NewFunc("init")
	for _, ae := range els {
		switch ae.Kind {
		case annobind.Types:
			initFunc.Printf("%s(", annosPkg.Symbol("RegisterTypeAnnotation"))
			generateReflectType(&initFunc.CodeBlock, ae.Owner.Type())
			initFunc.Printlnf(", %s{ID: %d})", annosPkg.Symbol("Bind"), ae.Bind.ID)
		case annobind.Fields:
			initFunc.Printf("%s(", annosPkg.Symbol("RegisterFieldAnnotation"))
			generateReflectType(&initFunc.CodeBlock, ae.Owner.Type())
			initFunc.Printlnf(", %q, %s{ID: %d})", ae.Name(), annosPkg.Symbol("Bind"), ae.Bind.ID)
		case annobind.Methods:
			initFunc.Printf("%s(", annosPkg.Symbol("RegisterMethodAnnotation"))
			generateReflectType(&initFunc.CodeBlock, ae.Owner.Type())
			initFunc.Printf(", %q, ", ae.Name())
			generateMethodExpr(&initFunc.CodeBlock, ae)
			initFunc.Printlnf(", %s{ID: %d})", annosPkg.Symbol("Bind"), ae.Bind.ID)
		default:
			return NewErrorWithPosition(ae.Pos, fmt.Errorf("unexpected element kind %v", ae.Kind))
		}
	}
	file.AddElement(initFunc)

	if _, err := io.WriteString(w, generatedHeader); err != nil {
		return err
	}
	return gopoet.WriteGoFile(w, file)
}

func annobindPackage(ctx *Context) gopoet.Package {
	if p := ctx.Package.Imports[AnnobindPath]; p != nil && p.Types != nil {
		return gopoet.PackageForGoType(p.Types)
	}
	return gopoet.NewPackage(AnnobindPath)
}

func generateReflectType(out *gopoet.CodeBlock, t types.Type) {
	out.Printf("%s((*%s)(nil)).Elem()", reflectTypeOf, t)
}

func generateMethodExpr(out *gopoet.CodeBlock, ae *AnnotatedElement) {
	if ae.PointerReceiver {
		out.Printf("(*%s).%s", ae.Owner.Type(), ae.Name())
	} else {
		out.Printf("%s.%s", ae.Owner.Type(), ae.Name())
	}
}
