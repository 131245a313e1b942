// Package scanner extracts structured metadata from .promptspec.md spec text
// using pattern matching only — no LLM call, no I/O. It discovers:
//
//   - {{variables}} — text / multiline inputs
//   - @match var cases — select dropdowns
//   - @if var flags — boolean toggles
//   - @embed file: {{var}} (and @summarize, @compress, @extract, @refine) — file inputs
//   - @execute strategy — execution configuration
//   - @prompt name — named prompts
//   - @tool name — tool declarations
//   - @assert — validation hints
//   - @note near variables — help text
//
// Directive semantics are interpreted elsewhere by an LLM that tolerates
// imperfect structure, so this package is strictly syntactic and lenient:
// it accepts any text, never fails, and simply omits what it can't
// recognize. That makes it fast enough for form generation, catalog
// indexing and editor integrations.
package scanner

import (
	"regexp"
	"strconv"
	"strings"
)

// Scan extracts structured metadata from spec text using default options.
func Scan(text string) Metadata {
	return ScanWithOptions(text, Options{})
}

// ScanWithOptions extracts structured metadata from spec text. It never
// fails: malformed or absent directives yield empty or default fields.
func ScanWithOptions(text string, opts Options) Metadata {
	var meta Metadata

	// Title: first top-level heading.
	if m := headingPattern.FindStringSubmatch(text); m != nil {
		meta.Title = strings.TrimSpace(m[1])
	}
	meta.Description = extractDescription(text)

	// Notes feed input descriptions via proximity.
	blocks := findNoteBlocks(text)
	meta.HasNotes = len(blocks) > 0
	window := opts.NoteWindow
	if window <= 0 {
		window = defaultNoteWindow
	}
	hints := noteHints(text, blocks, window)

	meta.Execution = parseExecution(text)
	meta.PromptNames = dedupe(captures(promptPattern, text))
	meta.ToolNames = dedupe(captures(toolPattern, text))
	meta.Assertions = captures(assertPattern, text)

	// @refine with a literal path is a static spec dependency.
	for _, target := range captures(refinePattern, text) {
		if !isVariableRef(target) {
			meta.RefineFiles = append(meta.RefineFiles, target)
		}
	}

	meta.Inputs, meta.EmbedFiles = classifyInputs(text, hints, internalVariableSet(opts))
	return meta
}

// extractDescription returns the free text between the title heading and the
// first directive or next heading.
func extractDescription(text string) string {
	var desc []string
	pastTitle := false
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if !pastTitle && strings.HasPrefix(trimmed, "# ") {
			pastTitle = true
			continue
		}
		if strings.HasPrefix(trimmed, "@") || (pastTitle && strings.HasPrefix(trimmed, "#")) {
			break
		}
		if pastTitle {
			desc = append(desc, line)
		}
	}
	return strings.TrimSpace(strings.Join(desc, "\n"))
}

// parseExecution reads the first @execute directive and its indented
// parameter lines. The strategy name lands under "type"; parameter values
// are coerced int, then float, then kept as raw strings.
func parseExecution(text string) map[string]any {
	m := executePattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	config := map[string]any{"type": m[1]}
	for _, line := range strings.Split(strings.TrimSpace(m[2]), "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		config[strings.TrimSpace(key)] = coerceScalar(strings.TrimSpace(value))
	}
	return config
}

// coerceScalar attempts int then float conversion, falling back to the raw
// string. There is no error case.
func coerceScalar(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

// captures returns the first submatch of every occurrence of p in text.
func captures(p *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range p.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// isVariableRef reports whether a directive argument references a
// {{variable}} rather than a literal path.
func isVariableRef(arg string) bool {
	return strings.Contains(arg, "{{") && strings.Contains(arg, "}}")
}

// variableName extracts the variable name from a {{var}} argument, or ""
// if there is none.
func variableName(arg string) string {
	if m := varPattern.FindStringSubmatch(arg); m != nil {
		return m[1]
	}
	return ""
}

func internalVariableSet(opts Options) map[string]bool {
	set := make(map[string]bool, len(defaultInternalVariables)+len(opts.InternalVariables))
	for _, name := range defaultInternalVariables {
		set[name] = true
	}
	for _, name := range opts.InternalVariables {
		set[name] = true
	}
	return set
}
