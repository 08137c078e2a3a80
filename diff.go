package regx

import "github.com/pmezard/go-difflib/difflib"

// UnifiedDiff returns the unified diff from text a to text b with 3 lines
// of context. It is empty if a and b are equal.
func UnifiedDiff(aName, bName, a, b string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: aName,
		ToFile:   bName,
		Context:  3,
	})
}
