// go-catchall is a tool designed to be called by go:generate for generating
// command-line value parsers for enums that have a catch-all variant.
//
// An enum is declared as a blank interface annotated with @catchall. Methods
// without parameters are named variants. Exactly one method takes a single
// parameter: it is the catch-all variant, and any input that does not name
// another variant is parsed as that parameter's type.
//
// For example, given code similar to what is shown below
//
//		//go:generate go-catchall
//		// @catchall Target rename_all=kebab-case
//		type _ interface {
//			AllHosts()
//			Host(uuid.UUID)
//		}
//
// go-catchall will generate a Target type holding either AllHosts or a uuid.UUID,
// along with the following
//
//		// ParseTarget parses s into a Target. "all-hosts" selects AllHosts,
//		// anything else is parsed with uuid.UUID's UnmarshalText.
//		func ParseTarget(s string) (Target, error) { /* omitted for brevity */ }
//
//		// Set implements flag.Value and pflag.Value
//		func (t *Target) Set(s string) error { /* omitted for brevity */ }
//
//		// PossibleValues returns "all-hosts" and "<uuid>"
//		func (t Target) PossibleValues() []string { /* omitted for brevity */ }
//
// Variants can be renamed individually with a trailing comment, such as
//
//		AllHosts() // @catchall name=all
//
// For help with the cli, run with the --help argument.
//
//		go-catchall --help
//
package main

import (
	"github.com/ajjensen13/go-catchall/internal/cmd"
)

func main() {
	cmd.Execute()
}
