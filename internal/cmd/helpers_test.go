package cmd

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"
)

const testPkgPath = "example.com/catchall/example"

// checkedSource is a single type-checked file.
type checkedSource struct {
	fset *token.FileSet
	file *ast.File
	info *types.Info
	pkg  *types.Package
}

func newTypesInfo() *types.Info {
	return &types.Info{
		Types: map[ast.Expr]types.TypeAndValue{},
		Defs:  map[*ast.Ident]types.Object{},
		Uses:  map[*ast.Ident]types.Object{},
	}
}

// checkSource parses and type-checks src as the only file of a package.
func checkSource(t *testing.T, src string) checkedSource {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "example.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	info := newTypesInfo()
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(testPkgPath, fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatalf("type check: %v", err)
	}

	return checkedSource{fset: fset, file: file, info: info, pkg: pkg}
}

// enumFromSource builds the first @catchall declaration in src.
func enumFromSource(t *testing.T, src string, defaults enumOptions) (*enum, error) {
	t.Helper()

	cs := checkSource(t, src)
	ds, err := findDeclarations(cs.fset, cs.file)
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		t.Fatalf("no declarations found in source")
	}

	return buildEnum(cs.fset, cs.info, cs.pkg, ds[0], defaults)
}
