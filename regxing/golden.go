// Package regxing compares texts produced in Go tests against golden files.
//
// Example reads the expected text from testdata/TestAlign.golden:
//
//	func TestAlign(t *testing.T) {
//		out, _ := regx.New(4).Regularize(in, settings, pattern)
//		regxing.Error(t, "", out)
//	}
//
// A missing or outdated golden file is written by running the test with
// the environment variable REGXING_RECORD set to a regexp that matches the
// test name.
package regxing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/fractalqb/regx"
)

// When this environment variable is set to a regexp and the name of the
// current test matches, calls to Error or Fatal record got as the new
// golden file instead of comparing it. E.g.
//
//	REGXING_RECORD=TestAlign go test .
const RecordEnv = "REGXING_RECORD"

// GoTestdataDir is the name of Go's default directory for testdata (see go
// help test).
const GoTestdataDir = "testdata"

const (
	StdSuffix = ".golden"
	NoSuffix  = "\x00"
)

func Error(t testing.TB, hint, got string) error {
	return defaultConfig.Error(t, hint, got)
}

func Fatal(t testing.TB, hint, got string) {
	defaultConfig.Fatal(t, hint, got)
}

type RefRepo struct {
	Dir    string
	Suffix string
}

func (rr RefRepo) Filename(t testing.TB, hint string) string {
	suffix := rr.Suffix
	switch suffix {
	case "":
		suffix = StdSuffix
	case NoSuffix:
		suffix = ""
	}
	if hint == "" {
		return filepath.Join(rr.Dir, t.Name()+suffix)
	}
	if suffix == "" || strings.HasSuffix(hint, suffix) {
		return filepath.Join(rr.Dir, t.Name(), hint)
	}
	return filepath.Join(rr.Dir, t.Name(), hint+suffix)
}

type Config struct {
	GoldenFileName  func(t testing.TB, hint string) string
	RecordOverwrite bool
}

var defaultConfig = Config{
	GoldenFileName:  RefRepo{Dir: GoTestdataDir}.Filename,
	RecordOverwrite: true,
}

func (cfg Config) Error(t testing.TB, hint, got string) error {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, got)
		return nil
	}
	err := cfg.compare(t, hint, got)
	if err != nil {
		t.Error(err)
	}
	return err
}

func (cfg Config) Fatal(t testing.TB, hint, got string) {
	t.Helper()
	if recordTest(t) {
		cfg.Record(t, hint, got)
		return
	}
	if err := cfg.compare(t, hint, got); err != nil {
		t.Fatal(err)
	}
}

func recordTest(t testing.TB) bool {
	rec := os.Getenv(RecordEnv)
	if rec == "" {
		return false
	}
	r, err := regexp.Compile(rec)
	if err != nil {
		t.Logf("regxing: invalid regexp '%s' in %s, not recording: %s", rec, RecordEnv, err)
		return false
	}
	return r.MatchString(t.Name())
}

func (cfg *Config) compare(t testing.TB, hint, got string) error {
	file := cfg.GoldenFileName(t, hint)
	want, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		t.Logf("to record the golden file run '%[1]s=%[2]s go test -run %[2]s'",
			RecordEnv,
			t.Name(),
		)
		return fmt.Errorf("golden file %s does not exist", file)
	} else if err != nil {
		return err
	}
	if string(want) == got {
		return nil
	}
	diff, err := regx.UnifiedDiff(file, "got", string(want), got)
	if err != nil {
		return fmt.Errorf("%s: mismatch (no diff: %w)", file, err)
	}
	if diff == "" {
		diff = "(whitespace or newline difference)"
	}
	return fmt.Errorf("%s: mismatch\n%s", file, diff)
}

// Record writes got as the golden file and fails the test to signal that
// nothing was compared.
func (cfg Config) Record(t testing.TB, hint, got string) {
	t.Helper()
	file := cfg.GoldenFileName(t, hint)
	if _, err := os.Stat(file); err == nil && !cfg.RecordOverwrite {
		t.Fatalf("regxing: golden file '%s' already exists", file)
	}
	if err := os.MkdirAll(filepath.Dir(file), 0777); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, []byte(got), 0666); err != nil {
		t.Fatal(err)
	}
	t.Errorf("regxing recorded: %s", file)
}
