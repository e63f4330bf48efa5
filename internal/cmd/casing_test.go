package cmd

import (
	"testing"
)

func Test_casing_apply(t *testing.T) {
	tests := []struct {
		casing string
		in     string
		want   string
	}{
		{"", "FooBar", "FooBar"},
		{"kabob-case", "FooBar", "foo-bar"},
		{"kebab-case", "UntilIdle", "until-idle"},
		{"camelCase", "FooBar", "fooBar"},
		{"PascalCase", "FooBar", "FooBar"},
		{"snake_case", "FooBar", "foo_bar"},
		{"SCREAMING_SNAKE_CASE", "FooBar", "FOO_BAR"},
		{"SCREAMING_SNAKE_CASE", "One", "ONE"},
		{"lowercase", "FooBar", "foobar"},
		{"UPPERCASE", "FooBar", "FOOBAR"},
	}
	for _, tt := range tests {
		t.Run(tt.casing+"/"+tt.in, func(t *testing.T) {
			c, err := parseCasing(tt.casing)
			if err != nil {
				t.Fatal(err)
			}
			if got := c.apply(tt.in); got != tt.want {
				t.Errorf("apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func Test_parseCasing_unknown(t *testing.T) {
	for _, s := range []string{"Title Case", "KEBAB-CASE", "snake"} {
		t.Run(s, func(t *testing.T) {
			if _, err := parseCasing(s); err == nil {
				t.Errorf("parseCasing(%q) returned no error", s)
			}
		})
	}
}
