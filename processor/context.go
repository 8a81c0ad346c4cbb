package processor

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"text/scanner"

	"golang.org/x/tools/go/packages"

	"github.com/jhump/annobind"
	"github.com/jhump/annobind/parser"
)

// Context holds the annotated elements of one package.
type Context struct {
	// Package is the loaded package, with syntax and type information.
	Package *packages.Package

	log       *slog.Logger
	elements  []*AnnotatedElement
	byType    map[annobind.ElementType][]*AnnotatedElement
	byObject  map[types.Object]*AnnotatedElement
	processed map[*ast.CommentGroup]struct{}
}

// AnnotatedElement is a type, field or method that carries a Bind annotation.
type AnnotatedElement struct {
	Kind annobind.ElementType
	// Obj is a *types.TypeName for types, a *types.Var for fields and a
	// *types.Func for methods.
	Obj types.Object
	// Owner is the named type that declares a field or method. For types it
	// is the same as Obj.
	Owner *types.TypeName
	// PointerReceiver is true for methods declared with a pointer receiver.
	PointerReceiver bool
	Bind            annobind.Bind
	// Pos is the location of the annotation.
	Pos token.Position
	// Test is true for elements declared in _test.go files.
	Test bool
}

// Name returns the name used to register the element: the type name for
// types and the member name for fields and methods.
func (ae *AnnotatedElement) Name() string {
	return ae.Obj.Name()
}

func newContext(pkg *packages.Package, log *slog.Logger) *Context {
	return &Context{
		Package:   pkg,
		log:       log,
		byType:    map[annobind.ElementType][]*AnnotatedElement{},
		byObject:  map[types.Object]*AnnotatedElement{},
		processed: map[*ast.CommentGroup]struct{}{},
	}
}

// Dir returns the directory that holds the package's sources.
func (c *Context) Dir() string {
	if len(c.Package.GoFiles) == 0 {
		return ""
	}
	return filepath.Dir(c.Package.GoFiles[0])
}

// NumElements returns the number of annotated elements in the package.
func (c *Context) NumElements() int {
	return len(c.elements)
}

// GetElement returns the annotated element at the given index. Elements are
// in source order.
func (c *Context) GetElement(index int) *AnnotatedElement {
	return c.elements[index]
}

// ElementsOfType returns the annotated elements of the given kind.
func (c *Context) ElementsOfType(t annobind.ElementType) []*AnnotatedElement {
	return c.byType[t]
}

// ElementFor returns the annotated element for the given object, or nil.
func (c *Context) ElementFor(obj types.Object) *AnnotatedElement {
	return c.byObject[obj]
}

func (c *Context) elementsFor(tests bool) []*AnnotatedElement {
	var els []*AnnotatedElement
	for _, ae := range c.elements {
		if ae.Test == tests {
			els = append(els, ae)
		}
	}
	return els
}

func (c *Context) computeAllAnnotations() error {
	for _, file := range c.Package.Syntax {
		if err := c.computeAnnotationsFromFile(file); err != nil {
			return err
		}
	}
	for _, file := range c.Package.Syntax {
		if err := c.checkMisplaced(file); err != nil {
			return err
		}
	}
	return nil
}

func (c *Context) computeAnnotationsFromFile(file *ast.File) error {
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, s := range decl.Specs {
				spec := s.(*ast.TypeSpec)
				doc := spec.Doc
				if (doc == nil || len(doc.List) == 0) && len(decl.Specs) == 1 {
					doc = decl.Doc
				}
				if err := c.computeAnnotationsFromType(file, spec, doc); err != nil {
					return err
				}
			}
		case *ast.FuncDecl:
			if decl.Recv == nil {
				continue
			}
			if err := c.computeAnnotationsFromMethod(file, decl); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Context) computeAnnotationsFromType(file *ast.File, spec *ast.TypeSpec, doc *ast.CommentGroup) error {
	obj, ok := c.Package.TypesInfo.Defs[spec.Name].(*types.TypeName)
	if !ok {
		return nil
	}
	b, pos, found, err := c.bindAnnotation(file, doc)
	if err != nil {
		return err
	}
	if found {
		if err := checkNamedType(obj, spec, pos); err != nil {
			return err
		}
		c.newElement(file, &AnnotatedElement{Kind: annobind.Types, Obj: obj, Owner: obj, Bind: b, Pos: pos})
	}

	st, ok := spec.Type.(*ast.StructType)
	if !ok || st.Fields == nil {
		return nil
	}
	for _, field := range st.Fields.List {
		b, pos, found, err := c.bindAnnotation(file, field.Doc)
		if err != nil {
			return err
		}
		if !found {
			continue
		}
		if err := checkNamedType(obj, spec, pos); err != nil {
			return err
		}
		idents := field.Names
		if len(idents) == 0 {
			idents = []*ast.Ident{embeddedIdent(field.Type)}
		}
		for _, id := range idents {
			if id == nil {
				return posError(pos, "cannot determine annotated field")
			}
			v, ok := c.Package.TypesInfo.Defs[id].(*types.Var)
			if !ok {
				return posError(pos, "cannot determine annotated field %s", id.Name)
			}
			if id.Name == "_" {
				return posError(pos, "blank fields cannot be annotated; use a %q struct tag to annotate the type", annobind.TagName)
			}
			if field.Tag != nil {
				if tag, err := strconv.Unquote(field.Tag.Value); err == nil {
					if _, ok := reflect.StructTag(tag).Lookup(annobind.TagName); ok {
						c.log.Warn("field has both a bind annotation and a bind tag; the annotation wins",
							slog.String("field", obj.Name()+"."+id.Name), slog.String("pos", pos.String()))
					}
				}
			}
			c.newElement(file, &AnnotatedElement{Kind: annobind.Fields, Obj: v, Owner: obj, Bind: b, Pos: pos})
		}
	}
	return nil
}

func (c *Context) computeAnnotationsFromMethod(file *ast.File, decl *ast.FuncDecl) error {
	b, pos, found, err := c.bindAnnotation(file, decl.Doc)
	if err != nil || !found {
		return err
	}
	if len(decl.Recv.List) != 1 {
		return posError(pos, "method has no receiver")
	}
	recv := decl.Recv.List[0].Type
	ptr := false
	if star, ok := recv.(*ast.StarExpr); ok {
		ptr = true
		recv = star.X
	}
	id, ok := recv.(*ast.Ident)
	if !ok {
		return posError(pos, "methods of generic types cannot be annotated")
	}
	owner, ok := c.Package.TypesInfo.Uses[id].(*types.TypeName)
	if !ok {
		return posError(pos, "cannot determine receiver type of %s", decl.Name.Name)
	}
	fn, ok := c.Package.TypesInfo.Defs[decl.Name].(*types.Func)
	if !ok {
		return posError(pos, "cannot determine method %s", decl.Name.Name)
	}
	if decl.Name.Name == "_" {
		return posError(pos, "blank methods cannot be annotated")
	}
	c.newElement(file, &AnnotatedElement{Kind: annobind.Methods, Obj: fn, Owner: owner, PointerReceiver: ptr, Bind: b, Pos: pos})
	return nil
}

func checkNamedType(obj *types.TypeName, spec *ast.TypeSpec, pos token.Position) error {
	switch {
	case spec.Assign.IsValid():
		return posError(pos, "type alias %s cannot be annotated", obj.Name())
	case spec.TypeParams != nil && len(spec.TypeParams.List) > 0:
		return posError(pos, "generic type %s cannot be annotated", obj.Name())
	case obj.Parent() != obj.Pkg().Scope():
		return posError(pos, "only package-level types can be annotated")
	}
	if _, ok := obj.Type().Underlying().(*types.Interface); ok {
		return posError(pos, "interface type %s cannot be annotated", obj.Name())
	}
	return nil
}

func (c *Context) newElement(file *ast.File, ae *AnnotatedElement) {
	ae.Test = strings.HasSuffix(c.Package.Fset.Position(file.Package).Filename, "_test.go")
	c.elements = append(c.elements, ae)
	c.byType[ae.Kind] = append(c.byType[ae.Kind], ae)
	c.byObject[ae.Obj] = ae
}

// checkMisplaced reports Bind annotations in comments that were not
// examined while computing annotated elements, such as those on functions,
// variables, interface methods or types declared inside functions.
func (c *Context) checkMisplaced(file *ast.File) error {
	var err error
	ast.Inspect(file, func(node ast.Node) bool {
		if err != nil {
			return false
		}
		var doc *ast.CommentGroup
		switch node := node.(type) {
		case *ast.File:
			doc = node.Doc
		case *ast.ImportSpec:
			doc = node.Doc
		case *ast.GenDecl:
			doc = node.Doc
		case *ast.TypeSpec:
			doc = node.Doc
		case *ast.ValueSpec:
			doc = node.Doc
		case *ast.FuncDecl:
			doc = node.Doc
		case *ast.Field:
			doc = node.Doc
		}
		if doc == nil {
			return true
		}
		if _, ok := c.processed[doc]; ok {
			return true
		}
		annos, adjuster, perr := c.parseDoc(doc)
		if perr != nil {
			// prose that happens to start with '@'
			return true
		}
		for _, a := range annos {
			if ok, _ := c.isBind(file, a.Type); ok {
				err = posError(adjuster.adjustPosition(a.Pos),
					"@%v is only allowed on package-level types, their fields and their methods", a.Type)
				return false
			}
		}
		return true
	})
	return err
}

// bindAnnotation returns the Bind annotation in the given doc comment.
// Annotations of other types are ignored.
func (c *Context) bindAnnotation(file *ast.File, doc *ast.CommentGroup) (annobind.Bind, token.Position, bool, error) {
	if doc == nil {
		return annobind.Bind{}, token.Position{}, false, nil
	}
	c.processed[doc] = struct{}{}
	annos, adjuster, perr := c.parseDoc(doc)
	if perr != nil {
		return annobind.Bind{}, token.Position{}, false, NewErrorWithPosition(adjuster.adjustPosition(perr.Pos()), perr.Underlying())
	}
	var b annobind.Bind
	var pos token.Position
	found := false
	for _, a := range annos {
		ok, err := c.isBind(file, a.Type)
		if err != nil {
			return annobind.Bind{}, token.Position{}, false, NewErrorWithPosition(adjuster.adjustPosition(a.Type.Pos), err)
		}
		if !ok {
			continue
		}
		apos := adjuster.adjustPosition(a.Pos)
		if found {
			return annobind.Bind{}, token.Position{}, false, posError(apos, "@%v is repeated; it was first given at %v", a.Type, pos)
		}
		b, err = c.bindValue(file, a, adjuster)
		if err != nil {
			return annobind.Bind{}, token.Position{}, false, err
		}
		pos, found = apos, true
	}
	return b, pos, found, nil
}

func (c *Context) parseDoc(doc *ast.CommentGroup) ([]parser.Annotation, posAdjuster, *parser.ParseError) {
	buf, adjuster := c.extractAnnotations(doc)
	if buf == nil {
		return nil, nil, nil
	}
	filename := c.Package.Fset.Position(doc.Pos()).Filename
	annos, err := parser.ParseAnnotations(filename, buf)
	return annos, adjuster, err
}

// isBind reports whether the given annotation type refers to annobind.Bind.
// Annotation types from other packages, or whose qualifier is not an import
// of the file, are not Bind annotations.
func (c *Context) isBind(file *ast.File, id parser.Identifier) (bool, error) {
	path, ok := c.importPath(file, id.PackageAlias)
	if !ok || path != AnnobindPath {
		return false, nil
	}
	if id.Name != "Bind" {
		return false, fmt.Errorf("unknown annotation %v", id)
	}
	return true, nil
}

// importPath returns the import path for the given qualifier in the given
// file. An empty qualifier matches a dot import.
func (c *Context) importPath(file *ast.File, alias string) (string, bool) {
	if alias == "" {
		alias = "."
	}
	for _, imp := range file.Imports {
		path, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		name := ""
		if imp.Name != nil {
			name = imp.Name.Name
		} else if p := c.Package.Imports[path]; p != nil {
			name = p.Name
		}
		if name == alias {
			return path, true
		}
	}
	return "", false
}

func (c *Context) bindValue(file *ast.File, a parser.Annotation, adjuster posAdjuster) (annobind.Bind, error) {
	var b annobind.Bind
	switch {
	case a.Value != nil:
		id, err := c.evaluate(file, a.Value, adjuster)
		if err != nil {
			return b, err
		}
		b.ID = id
	case a.Braced:
		seen := false
		for _, f := range a.Fields {
			if f.Name != "ID" {
				return b, posError(adjuster.adjustPosition(f.Pos), "%v has no field named %s", a.Type, f.Name)
			}
			if seen {
				return b, posError(adjuster.adjustPosition(f.Pos), "field %s is repeated", f.Name)
			}
			seen = true
			id, err := c.evaluate(file, f.Value, adjuster)
			if err != nil {
				return b, err
			}
			b.ID = id
		}
	}
	return b, nil
}

// extractAnnotations returns the text of the annotation lines of the given
// doc comment: everything from the first line that starts with '@' to the
// end of the comment. The adjuster maps positions in the returned text back
// to positions in the source file.
func (c *Context) extractAnnotations(doc *ast.CommentGroup) (*bytes.Buffer, posAdjuster) {
	var buf bytes.Buffer
	var adjuster posAdjuster
	found := false
	prevSingleLine := false
	var pos token.Position
	for _, l := range doc.List {
		txt := l.Text
		singleLine := false
		if strings.HasPrefix(txt, "/*") {
			txt = strings.TrimSuffix(txt[2:], "*/")
		} else if strings.HasPrefix(txt, "//") {
			singleLine = true
			txt = txt[2:]
			if strings.HasPrefix(txt, "go:") || strings.HasPrefix(txt, "line ") {
				// directive
				continue
			}
		}

		if singleLine != prevSingleLine {
			found = false
			buf.Reset()
			prevSingleLine = singleLine
			adjuster = nil
		}

		pos = c.Package.Fset.Position(l.Slash)
		pos.Offset += 2
		pos.Column += 2

		for _, line := range strings.Split(txt, "\n") {
			trimmed := strings.TrimSpace(line)
			if !found && trimmed != "" && trimmed[0] == '@' {
				found = true
			}
			if found {
				adjuster = append(adjuster, posAdj{outOffset: buf.Len(), inPos: pos})
				buf.WriteString(line)
				buf.WriteByte('\n')
			}
			pos.Offset += len(line) + 1
			pos.Line++
			pos.Column = 1
		}

		pos = c.Package.Fset.Position(l.End())
	}
	if !found {
		return nil, nil
	}
	adjuster = append(adjuster, posAdj{outOffset: buf.Len(), inPos: pos})
	return &buf, adjuster
}

type posAdj struct {
	outOffset int
	inPos     token.Position
}

type posAdjuster []posAdj

func (a posAdjuster) adjustPosition(pos scanner.Position) token.Position {
	if pos.Line < 1 || pos.Line > len(a) {
		return token.Position{Filename: pos.Filename, Line: pos.Line, Column: pos.Column}
	}
	el := a[pos.Line-1]
	return token.Position{
		Filename: el.inPos.Filename,
		Line:     el.inPos.Line,
		Column:   el.inPos.Column + pos.Column - 1,
		Offset:   el.inPos.Offset + (pos.Offset - el.outOffset),
	}
}

func embeddedIdent(expr ast.Expr) *ast.Ident {
	for {
		switch e := expr.(type) {
		case *ast.Ident:
			return e
		case *ast.StarExpr:
			expr = e.X
		case *ast.SelectorExpr:
			return e.Sel
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		default:
			return nil
		}
	}
}
