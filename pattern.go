package regx

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// Group is the result of one capture group of a match. Matched is false if
// the group did not participate in the match.
type Group struct {
	Text    string
	Matched bool
}

// Pattern is what the Regularizer needs from a regular expression.
type Pattern interface {
	// NumSubexp returns the number of capture groups.
	NumSubexp() int
	// FindFirst returns the capture groups 1..NumSubexp() of the first
	// match in line. It returns nil if the pattern does not match.
	FindFirst(line string) ([]Group, error)
}

type Engine string

const (
	EngineRE2     Engine = "re2"
	EngineRegexp2 Engine = "regexp2"
)

// DefaultMatchTimeout limits the time a regexp2 pattern may spend on a
// single line.
const DefaultMatchTimeout = time.Second

func ParseEngine(s string) (Engine, error) {
	switch e := Engine(strings.ToLower(strings.TrimSpace(s))); e {
	case "":
		return EngineRE2, nil
	case EngineRE2, EngineRegexp2:
		return e, nil
	}
	return "", fmt.Errorf("unknown pattern engine '%s'", s)
}

func (e Engine) String() string {
	if e == "" {
		return string(EngineRE2)
	}
	return string(e)
}

// Set implements pflag.Value
func (e *Engine) Set(s string) (err error) {
	*e, err = ParseEngine(s)
	return err
}

// Type implements pflag.Value
func (e *Engine) Type() string { return "engine" }

type compileConfig struct {
	timeout time.Duration
}

type CompileOption func(*compileConfig)

// MatchTimeout sets the per line match timeout of regexp2 patterns. A
// non-positive d disables the timeout. RE2 patterns run in linear time and
// ignore it.
func MatchTimeout(d time.Duration) CompileOption {
	return func(cfg *compileConfig) { cfg.timeout = d }
}

// Compile compiles expr with the given engine. The empty engine selects
// EngineRE2.
func Compile(expr string, engine Engine, opts ...CompileOption) (Pattern, error) {
	cfg := compileConfig{timeout: DefaultMatchTimeout}
	for _, o := range opts {
		o(&cfg)
	}
	switch engine {
	case "", EngineRE2:
		rgx, err := regexp.Compile(expr)
		if err != nil {
			return nil, &PatternError{Expr: expr, Engine: EngineRE2, err: err}
		}
		return re2Pattern{rgx}, nil
	case EngineRegexp2:
		rgx, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, &PatternError{Expr: expr, Engine: engine, err: err}
		}
		if cfg.timeout > 0 {
			rgx.MatchTimeout = cfg.timeout
		}
		return newRegexp2Pattern(rgx, expr), nil
	}
	return nil, &PatternError{
		Expr:   expr,
		Engine: engine,
		err:    fmt.Errorf("unknown pattern engine '%s'", string(engine)),
	}
}

func MustCompile(expr string, engine Engine, opts ...CompileOption) Pattern {
	p, err := Compile(expr, engine, opts...)
	if err != nil {
		panic(err)
	}
	return p
}

type re2Pattern struct{ rgx *regexp.Regexp }

func (p re2Pattern) NumSubexp() int { return p.rgx.NumSubexp() }

func (p re2Pattern) FindFirst(line string) ([]Group, error) {
	loc := p.rgx.FindStringSubmatchIndex(line)
	if loc == nil {
		return nil, nil
	}
	res := make([]Group, p.rgx.NumSubexp())
	for i := range res {
		start, end := loc[2*i+2], loc[2*i+3]
		if start < 0 {
			continue
		}
		res[i] = Group{Text: line[start:end], Matched: true}
	}
	return res, nil
}

func (p re2Pattern) String() string { return p.rgx.String() }

// regexp2 numbers unnamed groups before named ones. order holds the group
// numbers in the order the groups appear in the pattern.
type regexp2Pattern struct {
	rgx   *regexp2.Regexp
	order []int
}

func newRegexp2Pattern(rgx *regexp2.Regexp, expr string) regexp2Pattern {
	p := regexp2Pattern{rgx: rgx, order: declaredGroups(rgx, expr)}
	if len(p.order) != len(rgx.GetGroupNumbers())-1 {
		p.order = rgx.GetGroupNumbers()[1:]
	}
	return p
}

func (p regexp2Pattern) NumSubexp() int { return len(p.order) }

func (p regexp2Pattern) FindFirst(line string) ([]Group, error) {
	m, err := p.rgx.FindStringMatch(line)
	if err != nil || m == nil {
		return nil, err
	}
	res := make([]Group, len(p.order))
	for i, num := range p.order {
		g := m.GroupByNumber(num)
		if g == nil || len(g.Captures) == 0 {
			continue
		}
		res[i] = Group{Text: g.String(), Matched: true}
	}
	return res, nil
}

// declaredGroups scans expr for capturing groups and returns their numbers
// in declaration order. A name used twice is one group.
func declaredGroups(rgx *regexp2.Regexp, expr string) (res []int) {
	var (
		unnamed int
		seen    = make(map[int]bool)
		inClass bool
	)
	add := func(num int) {
		if num > 0 && !seen[num] {
			seen[num] = true
			res = append(res, num)
		}
	}
	for i := 0; i < len(expr); i++ {
		switch c := expr[i]; {
		case c == '\\':
			i++
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			if strings.HasPrefix(expr[i+1:], "^") {
				i++
			}
			if strings.HasPrefix(expr[i+1:], "]") {
				i++
			}
		case c == '(':
			rest := expr[i+1:]
			if !strings.HasPrefix(rest, "?") {
				unnamed++
				add(unnamed)
				continue
			}
			if strings.HasPrefix(rest, "?#") {
				if end := strings.IndexByte(rest, ')'); end >= 0 {
					i += end + 1
				}
				continue
			}
			if name, ok := groupName(rest[1:]); ok {
				add(rgx.GroupNumberFromName(name))
			}
		}
	}
	return res
}

// groupName extracts the name of "<name>", "'name'" and "P<name>" group
// openers. Lookbehinds "<=" and "<!" are no names. For balancing groups
// "<a-b>" the name is a.
func groupName(s string) (string, bool) {
	s = strings.TrimPrefix(s, "P")
	if s == "" {
		return "", false
	}
	var end byte
	switch s[0] {
	case '<':
		if strings.HasPrefix(s, "<=") || strings.HasPrefix(s, "<!") {
			return "", false
		}
		end = '>'
	case '\'':
		end = '\''
	default:
		return "", false
	}
	n := strings.IndexByte(s[1:], end)
	if n < 0 {
		return "", false
	}
	name, _, _ := strings.Cut(s[1:1+n], "-")
	return name, name != ""
}

func (p regexp2Pattern) String() string { return p.rgx.String() }
