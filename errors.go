package regx

import (
	"errors"
	"fmt"
)

var ErrNilPattern = errors.New("nil pattern")

// SettingsError reports a group settings sequence that is shorter than the
// number of capture groups of the pattern it is used with.
type SettingsError struct {
	Groups   int
	Settings int
}

func (e *SettingsError) Error() string {
	return fmt.Sprintf("pattern has %d capture groups, only %d group settings given",
		e.Groups,
		e.Settings,
	)
}

type PatternError struct {
	Expr   string
	Engine Engine
	err    error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("%s pattern `%s`: %s", e.Engine, e.Expr, e.err)
}

func (e *PatternError) Unwrap() error { return e.err }

// LineError is returned when the pattern engine fails on a line. Line
// numbers start at 1.
type LineError struct {
	Line int
	err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d:%s", e.Line, e.err)
}

func (e *LineError) Unwrap() error { return e.err }
