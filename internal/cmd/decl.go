package cmd

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// declError is a generation error tied to a position in the scanned source.
type declError struct {
	Pos token.Position
	Msg string
}

func (e *declError) Error() string {
	return fmt.Sprintf("%s: go-catchall: %s", e.Pos, e.Msg)
}

func positionError(fset *token.FileSet, pos token.Pos, format string, args ...interface{}) error {
	return &declError{Pos: fset.Position(pos), Msg: fmt.Sprintf(format, args...)}
}

// catchallDecl is a "@catchall" annotated type declaration.
type catchallDecl struct {
	Annotation annotation
	Decl       *ast.GenDecl
	Interface  *ast.InterfaceType
}

// enumOptions are the enum-level settings. The zero value is what you get
// with no flags and no annotation options.
type enumOptions struct {
	RenameAll  casing
	IgnoreCase bool
	Completion bool
}

// enum is a fully validated declaration, ready to be generated.
type enum struct {
	Name       string
	Package    *types.Package
	Receiver   string
	Variants   []variant // in declaration order
	IgnoreCase bool
	Completion bool
}

type variant struct {
	Ident    string
	Pos      token.Pos
	Value    string    // string matched on the command line; unit variants only
	Catchall *catchall // nil for unit variants
}

type catchall struct {
	Type        types.Type
	Placeholder string
	Strategy    parseStrategy
}

// units returns the unit variants of e.
func (e *enum) units() []variant {
	var ret []variant
	for _, v := range e.Variants {
		if v.Catchall == nil {
			ret = append(ret, v)
		}
	}
	return ret
}

// catchall returns the catch-all variant of e.
func (e *enum) catchall() variant {
	for _, v := range e.Variants {
		if v.Catchall != nil {
			return v
		}
	}
	panic(fmt.Sprintf("enum %s has no catch-all variant", e.Name))
}

// possibleValues returns the unit strings followed by the catch-all placeholder.
func (e *enum) possibleValues() []string {
	var ret []string
	for _, v := range e.units() {
		ret = append(ret, v.Value)
	}
	return append(ret, "<"+e.catchall().Catchall.Placeholder+">")
}

// reservedIdents are variant identifiers that would collide with generated
// methods or with the generated Kind type.
var reservedIdents = map[string]struct{}{
	"Kind":           {},
	"String":         {},
	"Set":            {},
	"Type":           {},
	"PossibleValues": {},
	"MarshalText":    {},
	"UnmarshalText":  {},
}

// findDeclarations returns every @catchall declaration in file, in source order.
func findDeclarations(fset *token.FileSet, file *ast.File) ([]catchallDecl, error) {
	var ret []catchallDecl
	names := map[string]struct{}{}
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Doc == nil {
			continue
		}

		last := genDecl.Doc.List[len(genDecl.Doc.List)-1]
		a, ok, err := parseAnnotation(last, true)
		if !ok {
			continue
		}
		if err != nil {
			return nil, positionError(fset, last.Pos(), "%v", err)
		}

		if !token.IsIdentifier(a.Name) || !token.IsExported(a.Name) {
			return nil, positionError(fset, last.Pos(), "enum name %q is not an exported Go identifier", a.Name)
		}

		if genDecl.Tok != token.TYPE {
			return nil, positionError(fset, genDecl.Pos(), "%s must annotate a type declaration", annotationMarker)
		}

		if genDecl.Lparen.IsValid() || len(genDecl.Specs) != 1 {
			return nil, positionError(fset, genDecl.Pos(), "type declaration must not be surrounded by parentheses")
		}

		typeSpec := genDecl.Specs[0].(*ast.TypeSpec)
		if typeSpec.Name.Name != "_" {
			return nil, positionError(fset, typeSpec.Pos(), "type declaration must be named _")
		}

		iface, ok := typeSpec.Type.(*ast.InterfaceType)
		if !ok {
			return nil, positionError(fset, typeSpec.Pos(), "type must be defined as an interface")
		}

		if _, ok := names[a.Name]; ok {
			return nil, positionError(fset, typeSpec.Pos(), "cannot have duplicate enum names in file (%s)", a.Name)
		}
		names[a.Name] = struct{}{}

		ret = append(ret, catchallDecl{Annotation: a, Decl: genDecl, Interface: iface})
	}

	return ret, nil
}

// selectDeclarations narrows ds down to the ones that should be generated.
// If name is passed, only the declaration of that enum is returned.
// Otherwise, if line is positive, the first declaration after line is returned.
// Otherwise, all of ds is returned.
func selectDeclarations(fset *token.FileSet, ds []catchallDecl, name string, line int) ([]catchallDecl, error) {
	switch {
	case name != "":
		for _, d := range ds {
			if d.Annotation.Name == name {
				return []catchallDecl{d}, nil
			}
		}
		return nil, fmt.Errorf("enum %q not found", name)
	case line > 0:
		for _, d := range ds {
			if fset.Position(d.Decl.Pos()).Line > line {
				return []catchallDecl{d}, nil
			}
		}
		return nil, fmt.Errorf("no %s declaration found after line %d", annotationMarker, line)
	default:
		if len(ds) == 0 {
			return nil, fmt.Errorf("no %s declarations found", annotationMarker)
		}
		return ds, nil
	}
}

// resolveOptions applies the enum annotation's options on top of defaults.
func (d catchallDecl) resolveOptions(defaults enumOptions) (enumOptions, error) {
	a := d.Annotation
	if err := a.checkKeys("enum "+a.Name, "rename_all", "ignore_case", "completion"); err != nil {
		return enumOptions{}, err
	}

	ret := defaults
	if v, ok := a.lookup("rename_all"); ok {
		c, err := parseCasing(v)
		if err != nil {
			return enumOptions{}, err
		}
		ret.RenameAll = c
	}

	var err error
	if ret.IgnoreCase, err = a.lookupBool("ignore_case", defaults.IgnoreCase); err != nil {
		return enumOptions{}, err
	}
	if ret.Completion, err = a.lookupBool("completion", defaults.Completion); err != nil {
		return enumOptions{}, err
	}

	return ret, nil
}

// buildEnum validates d and resolves everything the generator needs from it.
// info must hold the type information of the package d was found in.
func buildEnum(fset *token.FileSet, info *types.Info, pkg *types.Package, d catchallDecl, defaults enumOptions) (*enum, error) {
	opts, err := d.resolveOptions(defaults)
	if err != nil {
		return nil, positionError(fset, d.Annotation.Pos, "%v", err)
	}

	e := &enum{
		Name:       d.Annotation.Name,
		Package:    pkg,
		IgnoreCase: opts.IgnoreCase,
		Completion: opts.Completion,
	}

	var catchallPos token.Pos
	for _, field := range d.Interface.Methods.List {
		if len(field.Names) == 0 {
			return nil, positionError(fset, field.Pos(), "embedded types are not allowed in a %s declaration", annotationMarker)
		}

		v, err := variantFromField(fset, info, pkg, field, opts)
		if err != nil {
			return nil, err
		}

		if v.Catchall != nil {
			if catchallPos.IsValid() {
				return nil, positionError(fset, field.Pos(), "there can only be 1 catch-all variant (first declared at %s)", fset.Position(catchallPos))
			}
			catchallPos = field.Pos()
		}

		e.Variants = append(e.Variants, v)
	}

	if !catchallPos.IsValid() {
		return nil, positionError(fset, d.Interface.Pos(), "missing catch-all variant: declare exactly one method with a single parameter")
	}

	e.Receiver = safeIndent(defaultReceiverName(e.Name), packageNames(e.catchall().Catchall.Type, pkg)...)

	units := e.units()
	if len(units) == 0 {
		return nil, positionError(fset, d.Interface.Pos(), "no unit variants found")
	}

	seen := map[string]variant{}
	for _, u := range units {
		key := u.Value
		if e.IgnoreCase {
			key = strings.ToLower(key)
		}

		if prev, ok := seen[key]; ok {
			return nil, positionError(fset, u.Pos, "variants %s and %s both match %q", prev.Ident, u.Ident, u.Value)
		}
		seen[key] = u
	}

	return e, nil
}

// variantFromField turns one interface method into a variant.
func variantFromField(fset *token.FileSet, info *types.Info, pkg *types.Package, field *ast.Field, opts enumOptions) (variant, error) {
	ident := field.Names[0].Name
	ret := variant{Ident: ident, Pos: field.Pos()}

	if !token.IsExported(ident) {
		return variant{}, positionError(fset, field.Pos(), "variant %s must be exported", ident)
	}

	if _, ok := reservedIdents[ident]; ok {
		return variant{}, positionError(fset, field.Pos(), "variant %s collides with a generated method", ident)
	}

	funcType, ok := field.Type.(*ast.FuncType)
	if !ok {
		return variant{}, positionError(fset, field.Pos(), "variant %s must be a method", ident)
	}

	if funcType.Results != nil && funcType.Results.NumFields() > 0 {
		return variant{}, positionError(fset, funcType.Results.Pos(), "variant %s cannot have a return type", ident)
	}

	var a annotation
	if field.Comment != nil {
		c := field.Comment.List[0]
		parsed, ok, err := parseAnnotation(c, false)
		if ok && err != nil {
			return variant{}, positionError(fset, c.Pos(), "%v", err)
		}
		if ok {
			a = parsed
		}
	}

	switch funcType.Params.NumFields() {
	case 0:
		if err := a.checkKeys("unit variant "+ident, "rename", "name"); err != nil {
			return variant{}, positionError(fset, a.Pos, "%v", err)
		}

		c := opts.RenameAll
		if r, ok := a.lookup("rename"); ok {
			var err error
			if c, err = parseCasing(r); err != nil {
				return variant{}, positionError(fset, a.Pos, "%v", err)
			}
		}

		ret.Value = c.apply(ident)
		if n, ok := a.lookup("name"); ok {
			ret.Value = n
		}

		if ret.Value == "" {
			return variant{}, positionError(fset, field.Pos(), "variant %s matches the empty string", ident)
		}

		return ret, nil
	case 1:
		param := funcType.Params.List[0]
		if _, ok := param.Type.(*ast.Ellipsis); ok {
			return variant{}, positionError(fset, param.Pos(), "catch-all variant %s cannot be variadic", ident)
		}

		if err := a.checkKeys("catch-all variant "+ident, "placeholder"); err != nil {
			return variant{}, positionError(fset, a.Pos, "%v", err)
		}

		t := info.TypeOf(param.Type)
		if t == nil {
			return variant{}, positionError(fset, param.Pos(), "cannot determine the type of catch-all variant %s", ident)
		}

		strategy, err := catchallStrategy(t)
		if err != nil {
			return variant{}, positionError(fset, param.Pos(), "%v", err)
		}

		if _, err := typeCode(t, pkg); err != nil {
			return variant{}, positionError(fset, param.Pos(), "%v", err)
		}

		placeholder := typeDisplayName(t)
		if p, ok := a.lookup("placeholder"); ok {
			placeholder = p
		}

		ret.Catchall = &catchall{Type: t, Placeholder: placeholder, Strategy: strategy}
		return ret, nil
	default:
		return variant{}, positionError(fset, funcType.Params.Pos(), "catch-all variants can only have 1 field (%s has %d)", ident, funcType.Params.NumFields())
	}
}
