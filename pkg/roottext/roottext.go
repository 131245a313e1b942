// Package roottext splits spec text into the shared context around named
// @prompt blocks and cascades that context into composed prompt bodies.
//
// Multi-step execution strategies compose each @prompt block separately, so
// any text an author writes outside the blocks — persona, task framing,
// output rules — would otherwise be lost. Extract recovers that text and
// Cascade wraps every composed prompt with it.
package roottext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// promptLinePattern recognizes the start of a named prompt block.
var promptLinePattern = regexp.MustCompile(`^@prompt\b`)

// Extract returns the root prefix and suffix of a spec.
//
// The prefix is every line before the first @prompt directive, with the
// @execute line and its indented parameter lines removed so strategy
// configuration never leaks into prompt text. The suffix is everything
// after the last @prompt block; a block extends through blank and indented
// lines and ends at the first non-blank, non-indented line.
//
// Both results are empty when the spec has no @prompt directives — a
// single-block spec has no root text to cascade.
func Extract(text string) (prefix, suffix string) {
	lines := strings.Split(text, "\n")

	var promptIdx []int
	for i, line := range lines {
		if promptLinePattern.MatchString(strings.TrimSpace(line)) {
			promptIdx = append(promptIdx, i)
		}
	}
	if len(promptIdx) == 0 {
		return "", ""
	}

	// Prefix: lines before the first @prompt, minus the @execute block.
	first := promptIdx[0]
	var prefixLines []string
	for i := 0; i < first; {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "@execute") {
			i++
			for i < first && isIndented(lines[i]) {
				i++
			}
			continue
		}
		prefixLines = append(prefixLines, lines[i])
		i++
	}

	// Suffix: everything after the last @prompt block ends.
	last := promptIdx[len(promptIdx)-1]
	j := last + 1
	for j < len(lines) {
		if line := lines[j]; line != "" && !startsWithSpace(line) {
			break
		}
		j++
	}
	var suffixLines []string
	if j < len(lines) {
		suffixLines = lines[j:]
	}

	prefix = strings.TrimSpace(strings.Join(prefixLines, "\n"))
	suffix = strings.TrimSpace(strings.Join(suffixLines, "\n"))
	return prefix, suffix
}

// Cascade prepends prefix and appends suffix to every composed prompt,
// joined with blank lines. It returns the input unchanged when there is no
// root text, and for single-call results (exactly one entry under the
// reserved "default" key) whose composed text already is the complete
// resolved output.
func Cascade(prompts map[string]string, prefix, suffix string) map[string]string {
	if prefix == "" && suffix == "" {
		return prompts
	}
	if len(prompts) == 1 {
		if _, ok := prompts["default"]; ok {
			return prompts
		}
	}

	result := make(map[string]string, len(prompts))
	for name, text := range prompts {
		parts := make([]string, 0, 3)
		if prefix != "" {
			parts = append(parts, prefix)
		}
		parts = append(parts, text)
		if suffix != "" {
			parts = append(parts, suffix)
		}
		result[name] = strings.Join(parts, "\n\n")
	}
	return result
}

// isIndented reports whether a line begins with a space or tab.
func isIndented(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// startsWithSpace reports whether a line begins with any whitespace rune.
func startsWithSpace(line string) bool {
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsSpace(r)
}
