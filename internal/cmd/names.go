package cmd

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

// defaultReceiverName returns the default receiver name to use for typeName
func defaultReceiverName(typeName string) string {
	s, _ := utf8.DecodeRuneInString(typeName)
	return unexportedName(string(s))
}

// safeIndent returns an identifier that is safe to use (not a keyword,
// and not already used). want is the requested identifier; not is a
// list of identifiers that are already used.
func safeIndent(want string, not ...string) string {
	if token.IsKeyword(want) {
		return safeIndent("_"+want, not...)
	}

	for _, s := range not {
		if want == s {
			return safeIndent("_"+want, not...)
		}
	}

	return want
}

// unexportedName returns s with the first character replaced
// with its lower case version if it is upper case.
func unexportedName(s string) string {
	if !ast.IsExported(s) {
		return s
	}

	start, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		panic("s is empty")
	}

	start = unicode.ToLower(start)
	return string(start) + s[size:]
}

// outputFileName returns the default output file for the enum named enumName.
func outputFileName(enumName string) string {
	return fmt.Sprintf("%s_catchall.go", strings.ToLower(enumName))
}
