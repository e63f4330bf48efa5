package cmd

import (
	"errors"
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/dave/jennifer/jen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/tools/go/packages"
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-catchall",
	Short: "Generate pflag value parsers for enums with a catch-all variant",
	Long: `Generate pflag value parsers for enums with a catch-all variant.

An enum is declared as an annotated blank interface. Methods without parameters
are named variants, matched by name. The single method with one parameter is the
catch-all variant: any other input is parsed as that parameter's type.

	//go:generate go-catchall
	// @catchall Target rename_all=kebab-case
	type _ interface {
		Everything()
		Only(uuid.UUID)
	}

go-catchall is designed to be called by go generate.`,
	Version:       buildVersion(),
	SilenceErrors: true,
	RunE:          run,
	Example:       "go-catchall --input example.go --pkg example --type UUIDEnum --rename-all SCREAMING_SNAKE_CASE",
}

func init() {
	fs := rootCmd.Flags()
	fs.StringVarP(&flagInput, "input", "i", "", "input file to scan. If not specified, input defaults to the value of $GOFILE, which is set by go generate")
	fs.StringVarP(&flagOutput, "output", "o", "", "output file to create. If not specified, output defaults to <enum>_catchall.go. As special cases, you can specify <STDOUT> or <STDERR> to output to standard output or standard error. Only valid when a single enum is generated")
	fs.StringVarP(&flagPkg, "pkg", "p", "", "package name for the generated file. If not specified, pkg defaults to the value of $GOPACKAGE which is set by go generate")
	fs.StringVarP(&flagType, "type", "t", "", "enum name to generate, as given in its @catchall annotation. If not specified, the first annotated declaration after $GOLINE is used, or every annotated declaration in the file if $GOLINE is unset")
	fs.StringVar(&flagRenameAll, "rename-all", "", "casing applied to named variants when the annotation does not set rename_all: kebab-case, camelCase, PascalCase, snake_case, SCREAMING_SNAKE_CASE, lowercase or UPPERCASE")
	fs.BoolVar(&flagIgnoreCase, "ignore-case", false, "match named variants case-insensitively when the annotation does not set ignore_case")
	fs.BoolVar(&flagCompletion, "completion", false, "generate a cobra completion function when the annotation does not set completion")
	fs.BoolVarP(&flagVerbose, "verbose", "v", false, "report generated files on standard error")
	fs.IntVarP(&flagLine, "line", "l", 0, "Use this parameter to specify the line to search for declarations from if a type name is not specified. If not specified, line defaults to the value of $GOLINE which is set by go generate.")
	_ = fs.MarkHidden("line")
}

var (
	flagInput      string
	flagOutput     string
	flagPkg        string
	flagType       string
	flagRenameAll  string
	flagIgnoreCase bool
	flagCompletion bool
	flagVerbose    bool
	flagLine       int
)

func run(cmd *cobra.Command, _ []string) error {
	inputFileName, ok := resolveParameterValue(cmd.Flag("input"), "GOFILE")
	if !ok {
		return errors.New("failed to determine input file")
	}

	pkgName, ok := resolveParameterValue(cmd.Flag("pkg"), "GOPACKAGE")
	if !ok {
		return errors.New("failed to determine package name")
	}

	pkg, err := loadPackage(pkgName, inputFileName)
	if err != nil {
		return err
	}

	file, err := findFile(pkg, inputFileName)
	if err != nil {
		return err
	}

	typeName, _ := resolveParameterValue(cmd.Flag("type"), "")

	var line int
	lineStr, _ := resolveParameterValue(cmd.Flag("line"), "GOLINE")
	if lineStr != "" {
		_, err = fmt.Sscan(lineStr, &line)
		if err != nil {
			return fmt.Errorf("failed to determine source line: %w", err)
		}
	}

	all, err := findDeclarations(pkg.Fset, file)
	if err != nil {
		return err
	}

	decls, err := selectDeclarations(pkg.Fset, all, typeName, line)
	if err != nil {
		return fmt.Errorf("%s: %w", inputFileName, err)
	}

	defaults, err := defaultOptions()
	if err != nil {
		return err
	}

	output, explicitOutput := resolveParameterValue(cmd.Flag("output"), "")
	if explicitOutput && len(decls) > 1 {
		return fmt.Errorf("--output cannot be used when %d enums are generated; use --type to pick one", len(decls))
	}

	for _, d := range decls {
		e, err := buildEnum(pkg.Fset, pkg.TypesInfo, pkg.Types, d, defaults)
		if err != nil {
			return err
		}

		f, err := generateCatchallCode(pkgName, e)
		if err != nil {
			return err
		}

		name := output
		if !explicitOutput {
			name = outputFileName(e.Name)
		}

		if err := writeOutput(name, f); err != nil {
			return err
		}

		if flagVerbose {
			cmd.PrintErrf("go-catchall: generated %s for %s\n", name, e.Name)
		}
	}

	return nil
}

// defaultOptions returns the enum options set on the command line.
func defaultOptions() (enumOptions, error) {
	c, err := parseCasing(flagRenameAll)
	if err != nil {
		return enumOptions{}, fmt.Errorf("--rename-all: %w", err)
	}

	return enumOptions{
		RenameAll:  c,
		IgnoreCase: flagIgnoreCase,
		Completion: flagCompletion,
	}, nil
}

// resolveParameterValue returns the parameter value from f if it was specified
// by the user. Otherwise, if env is not empty, it looks up the value from the
// environment variable named env.
func resolveParameterValue(f *pflag.Flag, env string) (string, bool) {
	if f.Changed {
		return f.Value.String(), true
	}

	if env != "" {
		return os.LookupEnv(env)
	}

	return f.DefValue, false
}

// loadPackage loads the package of file inputFileName.
func loadPackage(pkgName, inputFileName string) (*packages.Package, error) {
	abs, err := filepath.Abs(inputFileName)
	if err != nil {
		return nil, err
	}

	mode := packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports
	pkgs, err := packages.Load(&packages.Config{Mode: mode, Dir: filepath.Dir(abs)}, fmt.Sprintf("file=%s", abs))
	if err != nil {
		return nil, err
	}

	var ret *packages.Package
	for _, pkg := range pkgs {
		if pkg.Name != pkgName {
			continue
		}

		if ret != nil {
			return nil, fmt.Errorf("multiple packages found with name %s", pkgName)
		}

		ret = pkg
	}

	if ret == nil {
		return nil, fmt.Errorf("no packages found with name %s", pkgName)
	}

	return ret, nil
}

// findFile returns the syntax tree of inputFileName in pkg.
func findFile(pkg *packages.Package, inputFileName string) (*ast.File, error) {
	for _, f := range pkg.Syntax {
		if sameFile(pkg.Fset.Position(f.Pos()).Filename, inputFileName) {
			return f, nil
		}
	}

	return nil, fmt.Errorf("%s not found in package %s", inputFileName, pkg.Name)
}

// sameFile determines if a and b point to the same file
func sameFile(a, b string) bool {
	as, err := os.Stat(a)
	if err != nil {
		return false
	}

	bs, err := os.Stat(b)
	if err != nil {
		return false
	}

	return os.SameFile(as, bs)
}

// writeOutput renders f into the file named name.
func writeOutput(name string, f *jen.File) error {
	out, cleanup, err := openOutputFile(name)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := f.Render(out); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// openOutputFile opens/creates the file to write the output to.
// The returned func is the function to use to "close" the file.
func openOutputFile(name string) (*os.File, func(), error) {
	switch name {
	case "<STDOUT>":
		return os.Stdout, func() { _ = os.Stdout.Sync() }, nil
	case "<STDERR>":
		return os.Stderr, func() { _ = os.Stderr.Sync() }, nil
	default:
		ret, err := os.Create(name)
		if err != nil {
			return nil, nil, err
		}
		return ret, func() { _ = ret.Close() }, nil
	}
}

// buildVersion returns the module version go-catchall was built from.
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" || info.Main.Version == "(devel)" {
		return "dev"
	}
	return info.Main.Version
}
