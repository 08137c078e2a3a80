package regx

import (
	"fmt"
	"strconv"
	"strings"
)

// GroupSettings configures the token of one capture group. A nil padding
// means the corresponding side of the captured text is left untouched.
type GroupSettings struct {
	PaddingBefore *int `yaml:"before,omitempty"`
	PaddingAfter  *int `yaml:"after,omitempty"`
}

// Spaces returns a padding of n spaces for use in GroupSettings.
func Spaces(n int) *int { return &n }

// Pad returns the GroupSettings with padding before and after. Negative
// values mean unset.
func Pad(before, after int) (gs GroupSettings) {
	if before >= 0 {
		gs.PaddingBefore = Spaces(before)
	}
	if after >= 0 {
		gs.PaddingAfter = Spaces(after)
	}
	return gs
}

// ParseGroupSettings parses the notation "BEFORE:AFTER" where either side
// may be empty to leave it unset. A plain "N" is the same as ":N".
func ParseGroupSettings(s string) (gs GroupSettings, err error) {
	before, after, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		before, after = "", before
	}
	if gs.PaddingBefore, err = parsePadding(before); err != nil {
		return gs, fmt.Errorf("group settings '%s': %w", s, err)
	}
	if gs.PaddingAfter, err = parsePadding(after); err != nil {
		return gs, fmt.Errorf("group settings '%s': %w", s, err)
	}
	return gs, nil
}

func parsePadding(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	switch {
	case err != nil:
		return nil, err
	case n < 0:
		return nil, fmt.Errorf("negative padding %d", n)
	}
	return &n, nil
}

func (gs GroupSettings) String() string {
	var sb strings.Builder
	if gs.PaddingBefore != nil {
		sb.WriteString(strconv.Itoa(*gs.PaddingBefore))
	}
	sb.WriteByte(':')
	if gs.PaddingAfter != nil {
		sb.WriteString(strconv.Itoa(*gs.PaddingAfter))
	}
	return sb.String()
}

func (gs GroupSettings) apply(s string) string {
	before, after := 0, 0
	if gs.PaddingBefore != nil {
		s = trimLeadingSpace(s)
		before = *gs.PaddingBefore
	}
	if gs.PaddingAfter != nil {
		s = trimTrailingSpace(s)
		after = *gs.PaddingAfter
	}
	if before == 0 && after == 0 {
		return s
	}
	return spaces(before) + s + spaces(after)
}
