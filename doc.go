/*
Package regx aligns lines of text into columns. The columns are defined by
the capture groups of a regular expression: for each line the first match
of the pattern is taken and each participating capture group becomes one
column token. Tokens with the same column index are then padded to a
common width, so that e.g. the '=' of a block of assignments lines up:

	a = 1
	longname = 2

with the pattern `(\w+)\s*(=\s*\w+)`, a tab width of 4 and the group
settings ":0" and "1:" becomes

	a        = 1
	longname = 2

Text outside of the capture groups is not part of the result.

# Group Settings

Each capture group has a GroupSettings entry, group 1 uses settings[0] and
so on. PaddingBefore and PaddingAfter are optional. If PaddingBefore is
set, leading whitespace of the captured text is removed and the given
number of spaces is prepended. PaddingAfter does the same for trailing
whitespace. Whitespace is ' ', '\t' and '\n' only. Unset paddings leave the
captured text as it is.

A capture group that does not participate in a match yields no token for
that line. The settings of later groups are still looked up by their group
index, not by the index of the token they produce.

# Column Widths

The width of a column is the length of its longest token, counted in
characters (grapheme clusters), rounded up to the next multiple of the tab
width. Each token is right-padded with spaces to the width of its column.
A token longer than its column width is truncated to that width.

# Raw Lines

Empty lines and lines the pattern does not match are passed through
unchanged. Aligned lines have trailing whitespace removed. The number and
order of lines never change.

# Pattern Engines

Patterns are compiled with one of two engines: EngineRE2 uses the standard
library's regexp package, EngineRegexp2 uses github.com/dlclark/regexp2,
which supports lookaround and backreferences.
*/
package regx
