package regx

import (
	"strings"
)

// DefaultTabWidth is used when a Regularizer is created with a
// non-positive tab width.
const DefaultTabWidth = 4

// Regularizer aligns text into columns. Column widths are rounded up to
// multiples of the tab width. The zero value uses DefaultTabWidth. A
// Regularizer has no mutable state and can be used concurrently.
type Regularizer struct {
	tabWidth int
}

func New(tabWidth int) Regularizer {
	return Regularizer{tabWidth: tabWidth}
}

func (r Regularizer) TabWidth() int {
	if r.tabWidth > 0 {
		return r.tabWidth
	}
	return DefaultTabWidth
}

// Regularize aligns the capture groups of the first match of pattern in
// each line of text. settings must have at least one entry for each capture
// group of pattern, otherwise a *SettingsError is returned before any line
// is processed.
func (r Regularizer) Regularize(text string, settings []GroupSettings, pattern Pattern) (string, error) {
	lines, err := r.Parse(text, settings, pattern)
	if err != nil {
		return "", err
	}
	return Join(PadColumns(lines, r.Widths(lines))), nil
}

// Parse splits text at '\n' and parses each line.
func (r Regularizer) Parse(text string, settings []GroupSettings, pattern Pattern) ([]ParsedLine, error) {
	if pattern == nil {
		return nil, ErrNilPattern
	}
	if n := pattern.NumSubexp(); len(settings) < n {
		return nil, &SettingsError{Groups: n, Settings: len(settings)}
	}
	lines := strings.Split(text, "\n")
	res := make([]ParsedLine, len(lines))
	for i, line := range lines {
		pl, err := ParseLine(line, settings, pattern)
		if err != nil {
			return nil, &LineError{Line: i + 1, err: err}
		}
		res[i] = pl
	}
	return res, nil
}

// ParseLine parses a single line. Only the first match of pattern is used.
// Capture groups that did not participate in the match produce no token,
// the settings are still taken by group index.
func ParseLine(line string, settings []GroupSettings, pattern Pattern) (ParsedLine, error) {
	if line == "" {
		return RawLine(line), nil
	}
	groups, err := pattern.FindFirst(line)
	if err != nil {
		return ParsedLine{}, err
	}
	if groups == nil {
		return RawLine(line), nil
	}
	if len(settings) < len(groups) {
		return ParsedLine{}, &SettingsError{Groups: len(groups), Settings: len(settings)}
	}
	var tokens []string
	for i, g := range groups {
		if !g.Matched {
			continue
		}
		tokens = append(tokens, settings[i].apply(g.Text))
	}
	return SectionsLine(tokens...), nil
}

// Widths computes the final width of each column of lines. The result has
// one entry per column of the widest Sections line.
func (r Regularizer) Widths(lines []ParsedLine) []int {
	cols := 0
	for _, l := range lines {
		cols = max(cols, l.NumColumns())
	}
	res := make([]int, cols)
	for i := range res {
		res[i] = r.ColumnWidth(ColumnLength(lines, i))
	}
	return res
}

// ColumnLength is the length of the longest token in column col of the
// Sections lines. Lines with fewer columns are ignored.
func ColumnLength(lines []ParsedLine, col int) (res int) {
	for _, l := range lines {
		if col < l.NumColumns() {
			res = max(res, charCount(l.tokens[col]))
		}
	}
	return res
}

// ColumnWidth rounds length up to the next multiple of the tab width.
func (r Regularizer) ColumnWidth(length int) int {
	tw := r.TabWidth()
	if length%tw == 0 {
		return length
	}
	return (length/tw + 1) * tw
}

// PadColumns returns new lines with each token of the Sections lines padded
// to the width of its column. Tokens longer than their column width are
// truncated. Tokens without a width are dropped.
func PadColumns(lines []ParsedLine, widths []int) []ParsedLine {
	res := make([]ParsedLine, len(lines))
	for i, l := range lines {
		switch l.kind {
		case Raw:
			res[i] = l
		case Sections:
			n := min(len(l.tokens), len(widths))
			tokens := make([]string, n)
			for c := range n {
				tokens[c] = padTo(l.tokens[c], widths[c])
			}
			res[i] = SectionsLine(tokens...)
		default:
			panic("invalid parsed line kind")
		}
	}
	return res
}

// Join concatenates the tokens of each Sections line, removes trailing
// whitespace and joins all lines with '\n'.
func Join(lines []ParsedLine) string {
	var sb strings.Builder
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		switch l.kind {
		case Raw:
			sb.WriteString(l.raw)
		case Sections:
			sb.WriteString(trimTrailingSpace(strings.Join(l.tokens, "")))
		default:
			panic("invalid parsed line kind")
		}
	}
	return sb.String()
}
