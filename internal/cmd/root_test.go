package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"
	"github.com/spf13/pflag"
)

func Test_resolveParameterValue(t *testing.T) {
	t.Setenv("GO_CATCHALL_TEST_SET", "from-env")

	tests := []struct {
		name   string
		set    string
		env    string
		want   string
		wantOk bool
	}{
		{"flag wins", "from-flag", "GO_CATCHALL_TEST_SET", "from-flag", true},
		{"env fallback", "", "GO_CATCHALL_TEST_SET", "from-env", true},
		{"env unset", "", "GO_CATCHALL_TEST_UNSET", "", false},
		{"no env", "", "", "default", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test := assertions.New(t)

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			fs.String("input", "default", "")
			if tt.set != "" {
				if err := fs.Set("input", tt.set); err != nil {
					t.Fatal(err)
				}
			}

			got, ok := resolveParameterValue(fs.Lookup("input"), tt.env)
			test.So(got, should.Equal, tt.want)
			test.So(ok, should.Equal, tt.wantOk)
		})
	}
}

func Test_names(t *testing.T) {
	test := assertions.New(t)

	test.So(defaultReceiverName("UUIDEnum"), should.Equal, "u")
	test.So(defaultReceiverName("Éclair"), should.Equal, "é")
	test.So(unexportedName("Timeout"), should.Equal, "timeout")
	test.So(unexportedName("timeout"), should.Equal, "timeout")
	test.So(safeIndent("s"), should.Equal, "s")
	test.So(safeIndent("s", "s"), should.Equal, "_s")
	test.So(safeIndent("s", "s", "_s"), should.Equal, "__s")
	test.So(safeIndent("type"), should.Equal, "_type")
	test.So(outputFileName("UUIDEnum"), should.Equal, "uuidenum_catchall.go")
}

func Test_defaultOptions(t *testing.T) {
	test := assertions.New(t)

	prevRename, prevIgnore, prevCompletion := flagRenameAll, flagIgnoreCase, flagCompletion
	defer func() {
		flagRenameAll, flagIgnoreCase, flagCompletion = prevRename, prevIgnore, prevCompletion
	}()

	flagRenameAll, flagIgnoreCase, flagCompletion = "kebab-case", true, false
	got, err := defaultOptions()
	if test.So(err, should.BeNil) {
		test.So(got, should.Resemble, enumOptions{RenameAll: casingKebab, IgnoreCase: true})
	}

	flagRenameAll = "Title Case"
	_, err = defaultOptions()
	if test.So(err, should.NotBeNil) {
		test.So(err.Error(), should.StartWith, "--rename-all: ")
	}
}

func Test_openOutputFile(t *testing.T) {
	test := assertions.New(t)

	out, cleanup, err := openOutputFile("<STDOUT>")
	if test.So(err, should.BeNil) {
		test.So(out, should.Equal, os.Stdout)
		cleanup()
	}

	out, cleanup, err = openOutputFile("<STDERR>")
	if test.So(err, should.BeNil) {
		test.So(out, should.Equal, os.Stderr)
		cleanup()
	}

	name := filepath.Join(t.TempDir(), "out_catchall.go")
	out, cleanup, err = openOutputFile(name)
	if test.So(err, should.BeNil) {
		test.So(out.Name(), should.Equal, name)
		cleanup()
		_, err = os.Stat(name)
		test.So(err, should.BeNil)
	}

	_, _, err = openOutputFile(filepath.Join(t.TempDir(), "missing", "out.go"))
	test.So(err, should.NotBeNil)
}

func Test_buildVersion(t *testing.T) {
	test := assertions.New(t)
	test.So(buildVersion(), should.NotBeBlank)
}

const runSource = `package sample

//go:generate go-catchall
// @catchall Level rename_all=lowercase
type _ interface {
	Quiet()
	Loud()
	Exactly(uint8)
}
`

func Test_run(t *testing.T) {
	test := assertions.New(t)

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/sample\n\ngo 1.18\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	input := filepath.Join(dir, "sample.go")
	if err := os.WriteFile(input, []byte(runSource), 0o644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "level_catchall.go")

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"--input", input, "--pkg", "sample", "--type", "Level", "--output", output, "--verbose"})
	defer func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		flagVerbose = false
	}()

	if !test.So(rootCmd.Execute(), should.BeNil) {
		return
	}

	generated, err := os.ReadFile(output)
	if !test.So(err, should.BeNil) {
		return
	}
	test.So(string(generated), should.ContainSubstring, "package sample")
	test.So(string(generated), should.ContainSubstring, "func ParseLevel(s string) (Level, error)")
	test.So(string(generated), should.ContainSubstring, `case "quiet":`)
	test.So(string(generated), should.ContainSubstring, "strconv.ParseUint(s, 10, 8)")
	test.So(string(generated), should.ContainSubstring, `[]string{"quiet", "loud", "<uint8>"}`)
	test.So(stderr.String(), should.ContainSubstring, "generated "+output+" for Level")
}
