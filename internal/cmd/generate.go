package cmd

import (
	"fmt"
	"go/types"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"
)

// generator holds the identifiers shared by the code generated for one enum.
type generator struct {
	e *enum

	kindType string
	parseFn  string

	strVar  string
	valVar  string
	nVar    string
	textVar string
}

func newGenerator(e *enum) *generator {
	g := &generator{
		e:        e,
		kindType: e.Name + "Kind",
		parseFn:  "Parse" + e.Name,
	}

	used := append([]string{e.Receiver}, packageNames(e.catchall().Catchall.Type, e.Package)...)
	g.strVar = safeIndent("s", used...)
	used = append(used, g.strVar)
	g.valVar = safeIndent("v", used...)
	used = append(used, g.valVar)
	g.nVar = safeIndent("n", used...)
	used = append(used, g.nVar)
	g.textVar = safeIndent("text", used...)
	return g
}

// generateCatchallCode generates the value parser for e
func generateCatchallCode(pkgName string, e *enum) (f *jen.File, err error) {
	defer func() {
		if r := recover(); r != nil {
			f = nil
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			err = fmt.Errorf("%v", r)
		}
	}()

	g := newGenerator(e)

	f = jen.NewFile(pkgName)
	f.HeaderComment(fmt.Sprintf("Code generated by %q; DO NOT EDIT.", strings.Join(os.Args, " ")))

	f.Line()
	g.generateKindType(f)

	f.Line()
	g.generateKindStringMethod(f)

	f.Line()
	g.generateEnumType(f)

	f.Line()
	g.generateConstructors(f)

	f.Line()
	g.generateAccessors(f)

	f.Line()
	g.generateParseFunc(f)

	f.Line()
	g.generateSetMethod(f)

	f.Line()
	g.generateStringMethod(f)

	f.Line()
	g.generateTypeMethod(f)

	f.Line()
	g.generatePossibleValuesMethod(f)

	f.Line()
	g.generateTextMethods(f)

	f.Line()
	g.generateCompileChecks(f)

	if e.Completion {
		f.Line()
		g.generateCompletionFunc(f)
	}

	return f, nil
}

// constName returns the name of the Kind constant for v.
func (g *generator) constName(v variant) string {
	return g.e.Name + v.Ident
}

// catchallType returns a fresh jen representation of the catch-all type.
func (g *generator) catchallType() jen.Code {
	c, err := typeCode(g.e.catchall().Catchall.Type, g.e.Package)
	if err != nil {
		panic(err)
	}
	return c
}

// catchallElemType returns the element type of a pointer catch-all type.
func (g *generator) catchallElemType() jen.Code {
	p, ok := g.e.catchall().Catchall.Type.(*types.Pointer)
	if !ok {
		panic(fmt.Errorf("catch-all type of %s is not a pointer", g.e.Name))
	}

	c, err := typeCode(p.Elem(), g.e.Package)
	if err != nil {
		panic(err)
	}
	return c
}

// literal returns the composite literal holding variant v with value val.
func (g *generator) literal(v variant, val jen.Code) *jen.Statement {
	d := jen.Dict{jen.Id("kind"): jen.Id(g.constName(v))}
	if val != nil {
		d[jen.Id("value")] = val
	}
	return jen.Id(g.e.Name).Values(d)
}

// generateKindType generates the Kind type and one constant per variant.
func (g *generator) generateKindType(f *jen.File) {
	f.Commentf("%s identifies the variant held by a %s.", g.kindType, g.e.Name)
	f.Type().Id(g.kindType).Uint8()

	f.Line()
	f.Const().DefsFunc(func(grp *jen.Group) {
		for i, v := range g.e.Variants {
			if i == 0 {
				grp.Id(g.constName(v)).Id(g.kindType).Op("=").Iota()
				continue
			}
			grp.Id(g.constName(v))
		}
	})
}

// generateKindStringMethod generates the String() method for the Kind type.
func (g *generator) generateKindStringMethod(f *jen.File) {
	r := defaultReceiverName(g.kindType)
	f.Commentf("String implements fmt.Stringer.")
	f.Func().Params(jen.Id(r).Id(g.kindType)).Id("String").Params().String().Block(
		jen.Switch(jen.Id(r)).BlockFunc(func(grp *jen.Group) {
			for _, v := range g.e.Variants {
				grp.Case(jen.Id(g.constName(v))).Block(jen.Return(jen.Lit(v.Ident)))
			}
		}),
		jen.Return(jen.Qual("fmt", "Sprintf").Call(jen.Lit(g.kindType+"(%d)"), jen.Id(r))),
	)
}

// generateEnumType generates the struct holding the parsed value.
func (g *generator) generateEnumType(f *jen.File) {
	c := g.e.catchall()
	var names []string
	for _, u := range g.e.units() {
		names = append(names, u.Ident)
	}

	f.Commentf("%s holds one of %s, or a %s value as %s.", g.e.Name, strings.Join(names, ", "), c.Catchall.Placeholder, c.Ident)
	f.Commentf("The zero value holds %s.", g.e.Variants[0].Ident)
	f.Type().Id(g.e.Name).Struct(
		jen.Id("kind").Id(g.kindType),
		jen.Id("value").Add(g.catchallType()),
	)
}

// generateConstructors generates one New function per variant.
func (g *generator) generateConstructors(f *jen.File) {
	for i, v := range g.e.Variants {
		if i > 0 {
			f.Line()
		}

		name := "New" + g.e.Name + v.Ident
		if v.Catchall == nil {
			f.Commentf("%s returns a %s holding %s.", name, g.e.Name, v.Ident)
			f.Func().Id(name).Params().Id(g.e.Name).Block(
				jen.Return(g.literal(v, nil)),
			)
			continue
		}

		f.Commentf("%s returns a %s holding %s.", name, g.e.Name, g.valVar)
		f.Func().Id(name).Params(jen.Id(g.valVar).Add(g.catchallType())).Id(g.e.Name).Block(
			jen.Return(g.literal(v, jen.Id(g.valVar))),
		)
	}
}

// generateAccessors generates the Kind() method and the catch-all accessor.
func (g *generator) generateAccessors(f *jen.File) {
	r := g.e.Receiver
	c := g.e.catchall()

	f.Commentf("Kind returns the variant held by %s.", r)
	f.Func().Params(jen.Id(r).Id(g.e.Name)).Id("Kind").Params().Id(g.kindType).Block(
		jen.Return(jen.Id(r).Dot("kind")),
	)

	f.Line()
	f.Commentf("%s returns the catch-all value held by %s. ok is false if %s holds a named variant.", c.Ident, r, r)
	f.Func().Params(jen.Id(r).Id(g.e.Name)).Id(c.Ident).Params().Params(jen.Id("value").Add(g.catchallType()), jen.Id("ok").Bool()).Block(
		jen.Return(jen.Id(r).Dot("value"), jen.Id(r).Dot("kind").Op("==").Id(g.constName(c))),
	)
}

// errorFormat returns the fmt.Errorf format used when the catch-all fails to parse.
func (g *generator) errorFormat() string {
	possible := strings.ReplaceAll(strings.Join(g.e.possibleValues(), ", "), "%", "%%")
	return fmt.Sprintf("invalid %s value %%q (possible values: %s): %%w", g.e.Name, possible)
}

// generateParseFunc generates the Parse function. Unit variants are matched
// first; everything else is handed to the catch-all type's own parsing.
func (g *generator) generateParseFunc(f *jen.File) {
	c := g.e.catchall()
	s := g.strVar

	f.Commentf("%s parses %s into a %s. %s is matched against %s.", g.parseFn, s, g.e.Name, s, strings.Join(quoteAll(unitValues(g.e)), ", "))
	if g.e.IgnoreCase {
		f.Comment("Matching ignores case.")
	}
	f.Commentf("Any other value is parsed as a %s.", c.Catchall.Placeholder)
	f.Func().Id(g.parseFn).Params(jen.Id(s).String()).Params(jen.Id(g.e.Name), jen.Error()).BlockFunc(func(grp *jen.Group) {
		var subject jen.Code = jen.Id(s)
		if g.e.IgnoreCase {
			subject = jen.Qual("strings", "ToLower").Call(jen.Id(s))
		}

		grp.Switch(subject).BlockFunc(func(sw *jen.Group) {
			for _, u := range g.e.units() {
				value := u.Value
				if g.e.IgnoreCase {
					value = strings.ToLower(value)
				}
				sw.Case(jen.Lit(value)).Block(jen.Return(g.literal(u, nil), jen.Nil()))
			}
		})

		grp.Line()
		g.generateCatchallParse(grp, c)
	})
}

// generateCatchallParse generates the tail of the Parse function.
func (g *generator) generateCatchallParse(grp *jen.Group, c variant) {
	strategy := c.Catchall.Strategy
	s, v, n := g.strVar, g.valVar, g.nVar

	failed := func() jen.Code {
		return jen.Return(jen.Id(g.e.Name).Values(), jen.Qual("fmt", "Errorf").Call(jen.Lit(g.errorFormat()), jen.Id(s), jen.Err()))
	}

	converted := func(x string) jen.Code {
		if strategy.Convert {
			return jen.Add(g.catchallType()).Parens(jen.Id(x))
		}
		return jen.Id(x)
	}

	switch strategy.Kind {
	case parseText, parseTextPointer:
		if strategy.Kind == parseText {
			grp.Var().Id(v).Add(g.catchallType())
		} else {
			grp.Id(v).Op(":=").New(g.catchallElemType())
		}
		grp.If(
			jen.Err().Op(":=").Id(v).Dot("UnmarshalText").Call(jen.Op("[]").Byte().Parens(jen.Id(s))),
			jen.Err().Op("!=").Nil(),
		).Block(failed())
		grp.Line()
		grp.Return(g.literal(c, jen.Id(v)), jen.Nil())
		return
	case parseString:
		grp.Return(g.literal(c, converted(s)), jen.Nil())
		return
	case parseDuration:
		grp.List(jen.Id(n), jen.Err()).Op(":=").Qual("time", "ParseDuration").Call(jen.Id(s))
	case parseBool:
		grp.List(jen.Id(n), jen.Err()).Op(":=").Qual("strconv", "ParseBool").Call(jen.Id(s))
	case parseInt:
		grp.List(jen.Id(n), jen.Err()).Op(":=").Qual("strconv", "ParseInt").Call(jen.Id(s), jen.Lit(10), jen.Lit(strategy.Bits))
	case parseUint:
		grp.List(jen.Id(n), jen.Err()).Op(":=").Qual("strconv", "ParseUint").Call(jen.Id(s), jen.Lit(10), jen.Lit(strategy.Bits))
	case parseFloat:
		grp.List(jen.Id(n), jen.Err()).Op(":=").Qual("strconv", "ParseFloat").Call(jen.Id(s), jen.Lit(strategy.Bits))
	default:
		panic(fmt.Errorf("unknown parse strategy %d", strategy.Kind))
	}

	grp.If(jen.Err().Op("!=").Nil()).Block(failed())
	grp.Line()
	grp.Return(g.literal(c, converted(n)), jen.Nil())
}

// generateSetMethod generates the Set() method of flag.Value and pflag.Value.
func (g *generator) generateSetMethod(f *jen.File) {
	r, s, v := g.e.Receiver, g.strVar, g.valVar
	f.Commentf("Set implements flag.Value and pflag.Value. See %s for the accepted values.", g.parseFn)
	f.Func().Params(jen.Id(r).Op("*").Id(g.e.Name)).Id("Set").Params(jen.Id(s).String()).Error().Block(
		jen.List(jen.Id(v), jen.Err()).Op(":=").Id(g.parseFn).Call(jen.Id(s)),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Err()),
		),
		jen.Op("*").Id(r).Op("=").Id(v),
		jen.Return(jen.Nil()),
	)
}

// generateStringMethod generates the String() method for the enum.
func (g *generator) generateStringMethod(f *jen.File) {
	r := g.e.Receiver

	f.Commentf("String implements fmt.Stringer. It returns the string %s parses back into %s,", g.parseFn, r)
	f.Comment("unless a catch-all value is spelled like a named variant.")
	f.Func().Params(jen.Id(r).Id(g.e.Name)).Id("String").Params().String().BlockFunc(func(grp *jen.Group) {
		grp.Switch(jen.Id(r).Dot("kind")).BlockFunc(func(sw *jen.Group) {
			for _, u := range g.e.units() {
				sw.Case(jen.Id(g.constName(u))).Block(jen.Return(jen.Lit(u.Value)))
			}
		})
		g.generateFormatValue(grp)
	})
}

// generateFormatValue generates the tail of String(), which formats the
// catch-all value so that the Parse function accepts it.
func (g *generator) generateFormatValue(grp *jen.Group) {
	strategy := g.e.catchall().Catchall.Strategy
	value := jen.Id(g.e.Receiver).Dot("value")

	as := func(basic string) jen.Code {
		if strategy.Convert {
			return jen.Id(basic).Parens(value)
		}
		return value
	}

	switch strategy.Kind {
	case parseString:
		grp.Return(as("string"))
	case parseDuration:
		grp.Return(value.Clone().Dot("String").Call())
	case parseBool:
		grp.Return(jen.Qual("strconv", "FormatBool").Call(as("bool")))
	case parseInt:
		grp.Return(jen.Qual("strconv", "FormatInt").Call(as("int64"), jen.Lit(10)))
	case parseUint:
		grp.Return(jen.Qual("strconv", "FormatUint").Call(as("uint64"), jen.Lit(10)))
	case parseFloat:
		grp.Return(jen.Qual("strconv", "FormatFloat").Call(as("float64"), jen.LitRune('g'), jen.Lit(-1), jen.Lit(strategy.Bits)))
	case parseText, parseTextPointer:
		switch strategy.Marshal {
		case marshalValue:
			grp.List(jen.Id(g.textVar), jen.Err()).Op(":=").Add(value.Clone()).Dot("MarshalText").Call()
		case marshalAddr:
			grp.Id(g.valVar).Op(":=").Add(value.Clone())
			grp.List(jen.Id(g.textVar), jen.Err()).Op(":=").Id(g.valVar).Dot("MarshalText").Call()
		default:
			grp.Return(jen.Qual("fmt", "Sprint").Call(value))
			return
		}
		grp.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Qual("fmt", "Sprint").Call(value.Clone())),
		)
		grp.Return(jen.String().Parens(jen.Id(g.textVar)))
	default:
		panic(fmt.Errorf("unknown parse strategy %d", strategy.Kind))
	}
}

// generateTypeMethod generates the Type() method of pflag.Value.
func (g *generator) generateTypeMethod(f *jen.File) {
	r := g.e.Receiver
	f.Commentf("Type implements pflag.Value.")
	f.Func().Params(jen.Id(r).Id(g.e.Name)).Id("Type").Params().String().Block(
		jen.Return(jen.Lit(g.e.Name)),
	)
}

// generatePossibleValuesMethod generates the PossibleValues() method.
func (g *generator) generatePossibleValuesMethod(f *jen.File) {
	r := g.e.Receiver
	f.Commentf("PossibleValues returns the accepted unit values followed by the catch-all placeholder.")
	f.Func().Params(jen.Id(r).Id(g.e.Name)).Id("PossibleValues").Params().Op("[]").String().Block(
		jen.Return(jen.Op("[]").String().ValuesFunc(func(grp *jen.Group) {
			for _, p := range g.e.possibleValues() {
				grp.Lit(p)
			}
		})),
	)
}

// generateTextMethods generates MarshalText() and UnmarshalText().
func (g *generator) generateTextMethods(f *jen.File) {
	r, text := g.e.Receiver, g.textVar

	c := g.e.catchall()
	f.Commentf("MarshalText implements encoding.TextMarshaler")
	f.Func().Params(jen.Id(r).Id(g.e.Name)).Id("MarshalText").Params().Params(jen.Op("[]").Byte(), jen.Error()).BlockFunc(func(grp *jen.Group) {
		switch c.Catchall.Strategy.Marshal {
		case marshalValue:
			grp.If(jen.Id(r).Dot("kind").Op("==").Id(g.constName(c))).Block(
				jen.Return(jen.Id(r).Dot("value").Dot("MarshalText").Call()),
			)
		case marshalAddr:
			grp.If(jen.Id(r).Dot("kind").Op("==").Id(g.constName(c))).Block(
				jen.Id(g.valVar).Op(":=").Id(r).Dot("value"),
				jen.Return(jen.Id(g.valVar).Dot("MarshalText").Call()),
			)
		}
		grp.Return(jen.Op("[]").Byte().Parens(jen.Id(r).Dot("String").Call()), jen.Nil())
	})

	f.Line()
	f.Commentf("UnmarshalText implements encoding.TextUnmarshaler")
	f.Func().Params(jen.Id(r).Op("*").Id(g.e.Name)).Id("UnmarshalText").Params(jen.Id(text).Op("[]").Byte()).Error().Block(
		jen.Return(jen.Id(r).Dot("Set").Call(jen.String().Parens(jen.Id(text)))),
	)
}

// generateCompileChecks generates assertions that the enum satisfies the
// interfaces it is generated for.
func (g *generator) generateCompileChecks(f *jen.File) {
	f.Var().Defs(
		jen.Id("_").Qual("flag", "Value").Op("=").Parens(jen.Op("*").Id(g.e.Name)).Call(jen.Nil()),
		jen.Id("_").Qual("encoding", "TextMarshaler").Op("=").Id(g.e.Name).Values(),
		jen.Id("_").Qual("encoding", "TextUnmarshaler").Op("=").Parens(jen.Op("*").Id(g.e.Name)).Call(jen.Nil()),
	)
}

// generateCompletionFunc generates a cobra flag completion function.
func (g *generator) generateCompletionFunc(f *jen.File) {
	name := "Complete" + g.e.Name
	v := g.valVar

	prefix := jen.Qual("strings", "HasPrefix").Call(jen.Id(v), jen.Id("toComplete"))
	if g.e.IgnoreCase {
		prefix = jen.Qual("strings", "HasPrefix").Call(
			jen.Qual("strings", "ToLower").Call(jen.Id(v)),
			jen.Qual("strings", "ToLower").Call(jen.Id("toComplete")),
		)
	}

	f.Commentf("%s completes %s flag values. Register it with cobra.Command.RegisterFlagCompletionFunc.", name, g.e.Name)
	f.Func().Id(name).Params(
		jen.Id("_").Op("*").Qual("github.com/spf13/cobra", "Command"),
		jen.Id("_").Op("[]").String(),
		jen.Id("toComplete").String(),
	).Params(jen.Op("[]").String(), jen.Qual("github.com/spf13/cobra", "ShellCompDirective")).Block(
		jen.Var().Id("ret").Op("[]").String(),
		jen.For(jen.List(jen.Id("_"), jen.Id(v)).Op(":=").Range().Op("[]").String().ValuesFunc(func(grp *jen.Group) {
			for _, u := range g.e.units() {
				grp.Lit(u.Value)
			}
		})).Block(
			jen.If(prefix).Block(
				jen.Id("ret").Op("=").Append(jen.Id("ret"), jen.Id(v)),
			),
		),
		jen.Return(jen.Id("ret"), jen.Qual("github.com/spf13/cobra", "ShellCompDirectiveNoFileComp")),
	)
}

func unitValues(e *enum) []string {
	var ret []string
	for _, u := range e.units() {
		ret = append(ret, u.Value)
	}
	return ret
}

func quoteAll(ss []string) []string {
	ret := make([]string, len(ss))
	for i, s := range ss {
		ret[i] = fmt.Sprintf("%q", s)
	}
	return ret
}
