package cmd

import (
	"fmt"
	"go/ast"
	"go/token"
	"strconv"
	"strings"
	"unicode"
)

const annotationMarker = "@catchall"

// annotation is a parsed "@catchall" comment.
//
//	// @catchall UUIDEnum rename_all=SCREAMING_SNAKE_CASE
//	One() // @catchall name="one-and-only"
type annotation struct {
	Name    string // enum name; always empty on variant annotations
	Options []option
	Pos     token.Pos
}

type option struct {
	Key   string
	Value string
}

// lookup returns the value of the last option named key.
func (a annotation) lookup(key string) (string, bool) {
	for i := len(a.Options) - 1; i >= 0; i-- {
		if a.Options[i].Key == key {
			return a.Options[i].Value, true
		}
	}
	return "", false
}

// checkKeys returns an error if a carries an option not in allowed.
func (a annotation) checkKeys(what string, allowed ...string) error {
	for _, o := range a.Options {
		found := false
		for _, k := range allowed {
			if o.Key == k {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown option %q for %s (allowed: %s)", o.Key, what, strings.Join(allowed, ", "))
		}
	}
	return nil
}

// lookupBool returns the boolean value of key, or def if it is absent.
func (a annotation) lookupBool(key string, def bool) (bool, error) {
	v, ok := a.lookup(key)
	if !ok {
		return def, nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("option %s: %q is not a boolean", key, v)
	}
	return b, nil
}

// parseAnnotation parses c as a "@catchall" annotation. If named is true, the
// first field after the marker is the enum name. ok is false when c is an
// ordinary comment.
func parseAnnotation(c *ast.Comment, named bool) (a annotation, ok bool, err error) {
	text := c.Text
	switch {
	case strings.HasPrefix(text, "//"):
		text = text[2:]
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(text[2:], "*/")
	}

	text = strings.TrimSpace(text)
	rest := strings.TrimPrefix(text, annotationMarker)
	if len(rest) == len(text) || (rest != "" && !unicode.IsSpace(rune(rest[0]))) {
		return annotation{}, false, nil
	}

	fields, err := splitAnnotationFields(rest)
	if err != nil {
		return annotation{}, true, err
	}

	a.Pos = c.Pos()
	if named {
		if len(fields) == 0 || strings.Contains(fields[0], "=") {
			return a, true, fmt.Errorf("missing enum name after %s", annotationMarker)
		}
		a.Name = fields[0]
		fields = fields[1:]
	}

	for _, field := range fields {
		i := strings.IndexByte(field, '=')
		if i <= 0 {
			return a, true, fmt.Errorf("malformed option %q: expected key=value", field)
		}
		a.Options = append(a.Options, option{Key: field[:i], Value: field[i+1:]})
	}

	return a, true, nil
}

// splitAnnotationFields splits s on white space. Quoted values are unquoted
// and may contain white space, as in name="big one".
func splitAnnotationFields(s string) ([]string, error) {
	var fields []string
	var current strings.Builder
	inField := false
	for len(s) > 0 {
		r := rune(s[0])
		switch {
		case r == '"' || r == '`':
			q, err := strconv.QuotedPrefix(s)
			if err != nil {
				return nil, fmt.Errorf("malformed quoted value in %q", s)
			}
			v, err := strconv.Unquote(q)
			if err != nil {
				return nil, err
			}
			current.WriteString(v)
			inField = true
			s = s[len(q):]
		case unicode.IsSpace(r):
			if inField {
				fields = append(fields, current.String())
				current.Reset()
				inField = false
			}
			s = s[1:]
		default:
			current.WriteByte(s[0])
			inField = true
			s = s[1:]
		}
	}

	if inField {
		fields = append(fields, current.String())
	}

	return fields, nil
}
