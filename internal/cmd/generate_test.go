package cmd

import (
	"bytes"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
)

// renderEnum builds the first declaration in src and renders its generated code.
func renderEnum(t *testing.T, src string, defaults enumOptions) (checkedSource, string) {
	t.Helper()

	cs := checkSource(t, src)
	ds, err := findDeclarations(cs.fset, cs.file)
	if err != nil {
		t.Fatal(err)
	}
	if len(ds) == 0 {
		t.Fatal("no declarations found in source")
	}

	e, err := buildEnum(cs.fset, cs.info, cs.pkg, ds[0], defaults)
	if err != nil {
		t.Fatal(err)
	}

	f, err := generateCatchallCode("example", e)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}

	return cs, buf.String()
}

func Test_generateCatchallCode_compiles(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{
			"text unmarshaler",
			`package example

import "net"

// @catchall Target rename_all=kebab-case
type _ interface {
	AllHosts()
	Addr(net.IP)
}
`,
		},
		{
			"pointer text unmarshaler",
			`package example

import "math/big"

// @catchall Amount
type _ interface {
	Unlimited()
	Exactly(*big.Int)
}
`,
		},
		{
			"string",
			`package example

// @catchall Label
type _ interface {
	None()
	Text(string)
}
`,
		},
		{
			"named string",
			`package example

type Name string

// @catchall Owner rename_all=lowercase
type _ interface {
	Nobody()
	Named(Name)
}
`,
		},
		{
			"uint32 with receiver s",
			`package example

// @catchall Speed rename_all=UPPERCASE
type _ interface {
	Max(uint32)
	Min()
}
`,
		},
		{
			"float with receiver v",
			`package example

// @catchall Volume
type _ interface {
	Mute()
	Level(float64)
}
`,
		},
		{
			"named integer",
			`package example

type Port uint16

// @catchall Listen
type _ interface {
	Any()
	On(Port)
}
`,
		},
		{
			"int64",
			`package example

// @catchall Offset
type _ interface {
	Start()
	End()
	At(int64)
}
`,
		},
		{
			"bool",
			`package example

// @catchall Toggle
type _ interface {
	Auto()
	Fixed(bool)
}
`,
		},
		{
			"text marshaler",
			`package example

import "time"

// @catchall Deadline
type _ interface {
	None()
	At(time.Time)
}
`,
		},
		{
			"pointer receiver text marshaler",
			`package example

import "math/big"

// @catchall Budget
type _ interface {
	Unlimited()
	Exactly(big.Int)
}
`,
		},
		{
			"float32",
			`package example

// @catchall Ratio
type _ interface {
	Even()
	Of(float32)
}
`,
		},
		{
			"duration ignoring case",
			`package example

import "time"

// @catchall Timeout rename_all=kebab-case ignore_case=true
type _ interface {
	Never()
	UntilIdle() // @catchall name=idle
	After(time.Duration)
}
`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs, generated := renderEnum(t, tt.src, enumOptions{})

			gen, err := parser.ParseFile(cs.fset, "generated.go", generated, parser.ParseComments)
			if err != nil {
				t.Fatalf("generated code does not parse: %v\n%s", err, generated)
			}

			conf := types.Config{Importer: importer.ForCompiler(cs.fset, "source", nil)}
			if _, err := conf.Check(testPkgPath, cs.fset, []*ast.File{cs.file, gen}, newTypesInfo()); err != nil {
				t.Fatalf("generated code does not type check: %v\n%s", err, generated)
			}
		})
	}
}

func Test_generateCatchallCode_content(t *testing.T) {
	test := assertions.New(t)

	_, generated := renderEnum(t, `package example

import "net"

// @catchall Target rename_all=kebab-case
type _ interface {
	AllHosts()
	Local() // @catchall name=localhost
	Addr(net.IP) // @catchall placeholder=address
}
`, enumOptions{})

	test.So(generated, should.StartWith, "// Code generated by ")
	test.So(generated, should.ContainSubstring, "DO NOT EDIT.")
	test.So(generated, should.ContainSubstring, "package example")
	test.So(generated, should.ContainSubstring, "type TargetKind uint8")
	test.So(generated, should.ContainSubstring, "TargetAllHosts TargetKind = iota")
	test.So(generated, should.ContainSubstring, "func NewTargetAddr(v net.IP) Target")
	test.So(generated, should.ContainSubstring, "func (t Target) Addr() (value net.IP, ok bool)")
	test.So(generated, should.ContainSubstring, "func ParseTarget(s string) (Target, error)")
	test.So(generated, should.ContainSubstring, "switch s {")
	test.So(generated, should.ContainSubstring, `case "all-hosts":`)
	test.So(generated, should.ContainSubstring, `case "localhost":`)
	test.So(generated, should.ContainSubstring, "v.UnmarshalText([]byte(s))")
	test.So(generated, should.ContainSubstring, `"invalid Target value %q (possible values: all-hosts, localhost, <address>): %w"`)
	test.So(generated, should.ContainSubstring, "func (t *Target) Set(s string) error")
	test.So(generated, should.ContainSubstring, `return "Target"`)
	test.So(generated, should.ContainSubstring, `[]string{"all-hosts", "localhost", "<address>"}`)
	test.So(generated, should.ContainSubstring, "flag.Value")
	test.So(generated, should.ContainSubstring, "encoding.TextUnmarshaler")
	test.So(generated, should.NotContainSubstring, "cobra")
	test.So(generated, should.NotContainSubstring, "strings.ToLower")
}

func Test_generateCatchallCode_ignoreCase(t *testing.T) {
	test := assertions.New(t)

	_, generated := renderEnum(t, `package example

// @catchall Mode
type _ interface {
	Fast()
	Safe()
	Custom(string)
}
`, enumOptions{RenameAll: casingScreamingSnake, IgnoreCase: true})

	test.So(generated, should.ContainSubstring, "switch strings.ToLower(s) {")
	test.So(generated, should.ContainSubstring, `case "fast":`)
	test.So(generated, should.ContainSubstring, `case "safe":`)
	test.So(generated, should.ContainSubstring, "Matching ignores case.")
	test.So(generated, should.ContainSubstring, `[]string{"FAST", "SAFE", "<string>"}`)
	test.So(generated, should.NotContainSubstring, "fmt.Errorf")
}

func Test_generateCatchallCode_completion(t *testing.T) {
	test := assertions.New(t)

	_, generated := renderEnum(t, `package example

// @catchall Mode completion=true
type _ interface {
	Fast()
	Safe()
	Custom(string)
}
`, enumOptions{})

	test.So(generated, should.ContainSubstring, `"github.com/spf13/cobra"`)
	test.So(generated, should.ContainSubstring, "func CompleteMode(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective)")
	test.So(generated, should.ContainSubstring, `range []string{"Fast", "Safe"}`)
	test.So(generated, should.ContainSubstring, "strings.HasPrefix(v, toComplete)")
	test.So(generated, should.ContainSubstring, "cobra.ShellCompDirectiveNoFileComp")
}

func Test_generateCatchallCode_strconv(t *testing.T) {
	test := assertions.New(t)

	_, generated := renderEnum(t, `package example

type Port uint16

// @catchall Listen
type _ interface {
	Any()
	On(Port)
}
`, enumOptions{})

	test.So(generated, should.ContainSubstring, "n, err := strconv.ParseUint(s, 10, 16)")
	test.So(generated, should.ContainSubstring, "Port(n)")
	test.So(generated, should.ContainSubstring, "<port>")
}

func Test_generateCatchallCode_format(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			"text marshaler",
			`package example

import "time"

// @catchall Deadline
type _ interface {
	None()
	At(time.Time)
}
`,
			[]string{
				"text, err := d.value.MarshalText()",
				"return fmt.Sprint(d.value)",
				"return string(text)",
				"if d.kind == DeadlineAt {\n\t\treturn d.value.MarshalText()\n\t}",
				"return []byte(d.String()), nil",
			},
		},
		{
			"pointer receiver text marshaler",
			`package example

import "math/big"

// @catchall Budget
type _ interface {
	Unlimited()
	Exactly(big.Int)
}
`,
			[]string{
				"v := b.value\n\ttext, err := v.MarshalText()",
				"if b.kind == BudgetExactly {\n\t\tv := b.value\n\t\treturn v.MarshalText()\n\t}",
			},
		},
		{
			"uint32",
			`package example

// @catchall Count
type _ interface {
	All()
	Only(uint32)
}
`,
			[]string{"return strconv.FormatUint(uint64(c.value), 10)"},
		},
		{
			"int64",
			`package example

// @catchall Offset
type _ interface {
	Start()
	At(int64)
}
`,
			[]string{"return strconv.FormatInt(o.value, 10)"},
		},
		{
			"float32",
			`package example

// @catchall Ratio
type _ interface {
	Even()
	Of(float32)
}
`,
			[]string{"return strconv.FormatFloat(float64(r.value), 'g', -1, 32)"},
		},
		{
			"bool",
			`package example

// @catchall Toggle
type _ interface {
	Auto()
	Fixed(bool)
}
`,
			[]string{"return strconv.FormatBool(t.value)"},
		},
		{
			"duration",
			`package example

import "time"

// @catchall Timeout
type _ interface {
	Never()
	After(time.Duration)
}
`,
			[]string{"return t.value.String()"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := assertions.New(t)

			_, generated := renderEnum(t, tt.src, enumOptions{})
			for _, want := range tt.want {
				test.So(generated, should.ContainSubstring, want)
			}
			test.So(generated, should.ContainSubstring, "unless a catch-all value is spelled like a named variant.")
		})
	}
}

func Test_generateCatchallCode_packageShadowing(t *testing.T) {
	test := assertions.New(t)

	imported := types.NewPackage("example.com/v", "v")
	value := types.NewNamed(types.NewTypeName(token.NoPos, imported, "Value", nil), types.Typ[types.String], nil)
	e := &enum{
		Name:     "Mode",
		Package:  types.NewPackage(testPkgPath, "example"),
		Receiver: "m",
		Variants: []variant{
			{Ident: "Auto", Value: "auto"},
			{Ident: "Custom", Catchall: &catchall{
				Type:        value,
				Placeholder: "value",
				Strategy:    parseStrategy{Kind: parseString, Convert: true},
			}},
		},
	}

	g := newGenerator(e)
	test.So(g.strVar, should.Equal, "s")
	test.So(g.valVar, should.Equal, "_v")

	f, err := generateCatchallCode("example", e)
	if !test.So(err, should.BeNil) {
		return
	}

	var buf bytes.Buffer
	if !test.So(f.Render(&buf), should.BeNil) {
		return
	}
	generated := buf.String()
	test.So(generated, should.ContainSubstring, "func NewModeCustom(_v v.Value) Mode")
	test.So(generated, should.ContainSubstring, "value: v.Value(s)")
	test.So(generated, should.ContainSubstring, "_v, err := ParseMode(s)")
	test.So(generated, should.ContainSubstring, "return string(m.value)")
}
