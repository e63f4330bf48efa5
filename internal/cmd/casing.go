package cmd

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// casing is a renaming rule applied to unit variant identifiers.
type casing int

const (
	casingNone casing = iota
	casingCamel
	casingKebab
	casingSnake
	casingPascal
	casingLower
	casingUpper
	casingScreamingSnake
)

// parseCasing parses a casing name: kebab-case (or kabob-case), camelCase,
// PascalCase, snake_case, SCREAMING_SNAKE_CASE, lowercase or UPPERCASE.
// The empty string leaves names unchanged.
func parseCasing(s string) (casing, error) {
	switch s {
	case "":
		return casingNone, nil
	case "kabob-case", "kebab-case":
		return casingKebab, nil
	case "camelCase":
		return casingCamel, nil
	case "PascalCase":
		return casingPascal, nil
	case "snake_case":
		return casingSnake, nil
	case "SCREAMING_SNAKE_CASE":
		return casingScreamingSnake, nil
	case "lowercase":
		return casingLower, nil
	case "UPPERCASE":
		return casingUpper, nil
	default:
		return casingNone, fmt.Errorf("unknown casing %q", s)
	}
}

func (c casing) apply(s string) string {
	switch c {
	case casingCamel:
		return strcase.ToLowerCamel(s)
	case casingPascal:
		return strcase.ToCamel(s)
	case casingSnake:
		return strcase.ToSnake(s)
	case casingScreamingSnake:
		return strcase.ToScreamingSnake(s)
	case casingKebab:
		return strcase.ToKebab(s)
	case casingLower:
		return strings.ToLower(s)
	case casingUpper:
		return strings.ToUpper(s)
	default:
		return s
	}
}
