// Package matcher scans text content line by line and returns lines containing the query
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lines splits contents into lines on '\n' and drops the '\r' right before each '\n'.
// A '\r' at the very end of contents without a following '\n' is kept as content.
// A final line terminator doesn't produce an extra empty line.
// Returned lines are substrings of contents, no copying is done.
func Lines(contents string) []string {
	lines := []string{}
	for len(contents) > 0 {
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			lines = append(lines, contents)
			break
		}
		lines = append(lines, strings.TrimSuffix(contents[:i], "\r"))
		contents = contents[i+1:]
	}
	return lines
}

// Search returns the lines of contents containing query, in original order.
// With caseSensitive == false both query and line are lower-cased with full Unicode
// mappings (special casing, final sigma) before comparison, but the original line text is returned.
func Search(query, contents string, caseSensitive bool) []string {
	var lower cases.Caser
	if !caseSensitive {
		lower = cases.Lower(language.Und)
		query = lower.String(query) // запрос приводим к нижнему регистру один раз
	}

	result := []string{}
	for _, line := range Lines(contents) {
		if FindMatch(query, line, caseSensitive, lower) {
			result = append(result, line)
		}
	}
	return result
}

// FindMatch expects query already lower-cased by lower when caseSensitive is false
func FindMatch(query, line string, caseSensitive bool, lower cases.Caser) bool {
	if !caseSensitive { // -i
		line = lower.String(line)
	}
	return strings.Contains(line, query)
}
