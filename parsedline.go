package regx

import "strings"

type LineKind int

const (
	// Raw lines are passed through unchanged.
	Raw LineKind = iota
	// Sections lines are split into column tokens.
	Sections
)

func (k LineKind) String() string {
	switch k {
	case Raw:
		return "raw"
	case Sections:
		return "sections"
	}
	return "invalid"
}

// ParsedLine is either a Raw line or a Sections line. Use RawLine and
// SectionsLine to create one.
type ParsedLine struct {
	kind   LineKind
	raw    string
	tokens []string
}

func RawLine(content string) ParsedLine {
	return ParsedLine{kind: Raw, raw: content}
}

func SectionsLine(tokens ...string) ParsedLine {
	return ParsedLine{kind: Sections, tokens: tokens}
}

func (pl ParsedLine) Kind() LineKind { return pl.kind }

// Content returns the original text of a Raw line.
func (pl ParsedLine) Content() string { return pl.raw }

// Tokens returns the column tokens of a Sections line. Callers must not
// modify the returned slice.
func (pl ParsedLine) Tokens() []string { return pl.tokens }

// NumColumns is 0 for Raw lines.
func (pl ParsedLine) NumColumns() int {
	if pl.kind != Sections {
		return 0
	}
	return len(pl.tokens)
}

// String returns Raw content as is and Sections tokens separated by '|'.
func (pl ParsedLine) String() string {
	switch pl.kind {
	case Raw:
		return pl.raw
	case Sections:
		return strings.Join(pl.tokens, "|")
	}
	panic("invalid parsed line kind")
}
