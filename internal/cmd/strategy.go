package cmd

import (
	"fmt"
	"go/token"
	"go/types"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
)

// parseKind is the way a catch-all value is parsed from a string.
type parseKind int

const (
	parseText        parseKind = iota // var v T; v.UnmarshalText
	parseTextPointer                  // v := new(T); v.UnmarshalText
	parseDuration                     // time.ParseDuration
	parseString
	parseBool
	parseInt
	parseUint
	parseFloat
)

// marshalKind is the way a text catch-all value is formatted.
type marshalKind int

const (
	marshalNone  marshalKind = iota // fmt.Sprint
	marshalValue                    // v.MarshalText
	marshalAddr                     // MarshalText on an addressable copy of v
)

// parseStrategy describes the code generated to parse and format a catch-all value.
type parseStrategy struct {
	Kind parseKind
	Bits int // bitSize argument of strconv.Parse*; 0 means int or uint

	// Convert is true when the result of the parse function must be
	// converted to the catch-all type.
	Convert bool

	// Marshal is only set for parseText and parseTextPointer.
	Marshal marshalKind
}

// textUnmarshaler is encoding.TextUnmarshaler built without importing it.
var textUnmarshaler = func() *types.Interface {
	bytes := types.NewVar(token.NoPos, nil, "text", types.NewSlice(types.Typ[types.Byte]))
	result := types.NewVar(token.NoPos, nil, "", types.Universe.Lookup("error").Type())
	sig := types.NewSignatureType(nil, nil, nil, types.NewTuple(bytes), types.NewTuple(result), false)
	return types.NewInterfaceType([]*types.Func{types.NewFunc(token.NoPos, nil, "UnmarshalText", sig)}, nil).Complete()
}()

// textMarshaler is encoding.TextMarshaler built without importing it.
var textMarshaler = func() *types.Interface {
	text := types.NewVar(token.NoPos, nil, "text", types.NewSlice(types.Typ[types.Byte]))
	err := types.NewVar(token.NoPos, nil, "err", types.Universe.Lookup("error").Type())
	sig := types.NewSignatureType(nil, nil, nil, nil, types.NewTuple(text, err), false)
	return types.NewInterfaceType([]*types.Func{types.NewFunc(token.NoPos, nil, "MarshalText", sig)}, nil).Complete()
}()

// textMarshaling returns how values of t are turned back into text.
func textMarshaling(t types.Type) marshalKind {
	switch {
	case types.Implements(t, textMarshaler):
		return marshalValue
	case types.Implements(types.NewPointer(t), textMarshaler):
		return marshalAddr
	default:
		return marshalNone
	}
}

// catchallStrategy determines how values of t are parsed. It returns an error
// if t has no string parsing that can be generated.
func catchallStrategy(t types.Type) (parseStrategy, error) {
	switch tt := t.(type) {
	case *types.TypeParam:
		return parseStrategy{}, fmt.Errorf("catch-all type %s is a type parameter", t)
	case *types.Pointer:
		if types.Implements(tt, textUnmarshaler) {
			if _, ok := tt.Elem().(*types.Named); ok {
				return parseStrategy{Kind: parseTextPointer, Marshal: textMarshaling(tt)}, nil
			}
		}
		return parseStrategy{}, fmt.Errorf("pointer catch-all type %s must point to a named type implementing encoding.TextUnmarshaler", t)
	case *types.Named:
		if tt.TypeArgs().Len() > 0 {
			return parseStrategy{}, fmt.Errorf("generic catch-all type %s is not supported", t)
		}
	}

	if types.IsInterface(t) {
		return parseStrategy{}, fmt.Errorf("catch-all type %s is an interface", t)
	}

	if types.Implements(types.NewPointer(t), textUnmarshaler) {
		return parseStrategy{Kind: parseText, Marshal: textMarshaling(t)}, nil
	}

	if isNamedType(t, "time", "Duration") {
		return parseStrategy{Kind: parseDuration}, nil
	}

	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return parseStrategy{}, fmt.Errorf("catch-all type %s cannot be parsed from a string: it must be a basic type or implement encoding.TextUnmarshaler", t)
	}

	var ret parseStrategy
	var result types.BasicKind
	switch b.Kind() {
	case types.String:
		ret, result = parseStrategy{Kind: parseString}, types.String
	case types.Bool:
		ret, result = parseStrategy{Kind: parseBool}, types.Bool
	case types.Int:
		ret, result = parseStrategy{Kind: parseInt, Bits: 0}, types.Int64
	case types.Int8:
		ret, result = parseStrategy{Kind: parseInt, Bits: 8}, types.Int64
	case types.Int16:
		ret, result = parseStrategy{Kind: parseInt, Bits: 16}, types.Int64
	case types.Int32:
		ret, result = parseStrategy{Kind: parseInt, Bits: 32}, types.Int64
	case types.Int64:
		ret, result = parseStrategy{Kind: parseInt, Bits: 64}, types.Int64
	case types.Uint:
		ret, result = parseStrategy{Kind: parseUint, Bits: 0}, types.Uint64
	case types.Uint8:
		ret, result = parseStrategy{Kind: parseUint, Bits: 8}, types.Uint64
	case types.Uint16:
		ret, result = parseStrategy{Kind: parseUint, Bits: 16}, types.Uint64
	case types.Uint32:
		ret, result = parseStrategy{Kind: parseUint, Bits: 32}, types.Uint64
	case types.Uint64:
		ret, result = parseStrategy{Kind: parseUint, Bits: 64}, types.Uint64
	case types.Uintptr:
		ret, result = parseStrategy{Kind: parseUint, Bits: 0}, types.Uint64
	case types.Float32:
		ret, result = parseStrategy{Kind: parseFloat, Bits: 32}, types.Float64
	case types.Float64:
		ret, result = parseStrategy{Kind: parseFloat, Bits: 64}, types.Float64
	default:
		return parseStrategy{}, fmt.Errorf("catch-all type %s cannot be parsed from a string", t)
	}

	ret.Convert = !types.Identical(t, types.Typ[result])
	return ret, nil
}

// isNamedType reports whether t is the named type pkgPath.name.
func isNamedType(t types.Type, pkgPath, name string) bool {
	n, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := n.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == pkgPath && obj.Name() == name
}

// typeDisplayName returns the name shown for t in help and error messages,
// without the surrounding angle brackets.
func typeDisplayName(t types.Type) string {
	switch tt := t.(type) {
	case *types.Pointer:
		return typeDisplayName(tt.Elem())
	case *types.Named:
		return strings.ToLower(tt.Obj().Name())
	case *types.Basic:
		return tt.Name()
	default:
		return strings.ToLower(types.TypeString(t, func(*types.Package) string { return "" }))
	}
}

// typeCode returns the jen representation of t as seen from package local.
func typeCode(t types.Type, local *types.Package) (jen.Code, error) {
	switch tt := t.(type) {
	case *types.Pointer:
		elem, err := typeCode(tt.Elem(), local)
		if err != nil {
			return nil, err
		}
		return jen.Op("*").Add(elem), nil
	case *types.Named:
		obj := tt.Obj()
		if obj.Pkg() == nil || (local != nil && obj.Pkg().Path() == local.Path()) {
			return jen.Id(obj.Name()), nil
		}
		return jen.Qual(obj.Pkg().Path(), obj.Name()), nil
	case *types.Basic:
		return jen.Id(tt.Name()), nil
	default:
		return nil, fmt.Errorf("unsupported catch-all type %s", t)
	}
}

// packageNames returns the identifiers that packages referenced by t may be
// imported as in generated code. Local identifiers must not shadow them.
func packageNames(t types.Type, local *types.Package) []string {
	switch tt := t.(type) {
	case *types.Pointer:
		return packageNames(tt.Elem(), local)
	case *types.Named:
		pkg := tt.Obj().Pkg()
		if pkg == nil || (local != nil && pkg.Path() == local.Path()) {
			return nil
		}

		ret := []string{pkg.Name()}
		if alias := strings.ToLower(path.Base(pkg.Path())); alias != pkg.Name() && token.IsIdentifier(alias) {
			ret = append(ret, alias)
		}
		return ret
	default:
		return nil
	}
}
