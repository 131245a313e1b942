package scanner

import "strings"

// classifyInputs resolves every distinct variable name in the text to
// exactly one typed input. Precedence is fixed: @match subjects become
// selects, @if conditions become booleans, file-directive arguments become
// file pickers, and any remaining bare {{name}} falls back to text or
// multiline. The first rule to claim a name wins; strategy-internal names
// are excluded at every level.
//
// Static (non-variable) arguments of the file directives are returned as
// the second value: an informational list of embedded file dependencies,
// duplicates included.
func classifyInputs(text string, hints map[string]string, internal map[string]bool) ([]Input, []string) {
	var inputs []Input
	var embedFiles []string
	seen := make(map[string]bool)

	claim := func(name string) bool {
		if name == "" || seen[name] || internal[name] {
			return false
		}
		seen[name] = true
		return true
	}

	// 1. @match variables → select dropdowns.
	for _, idx := range matchPattern.FindAllStringSubmatchIndex(text, -1) {
		name := text[idx[2]:idx[3]]
		if !claim(name) {
			continue
		}
		inputs = append(inputs, Input{
			Name:        name,
			Type:        InputSelect,
			Options:     matchCases(text, idx[1]),
			Description: hints[name],
			Source:      "@match",
		})
	}

	// 2. @if variables → boolean toggles.
	for _, name := range captures(ifPattern, text) {
		if !claim(name) {
			continue
		}
		inputs = append(inputs, Input{
			Name:        name,
			Type:        InputBoolean,
			Default:     "false",
			Description: hints[name],
			Source:      "@if",
		})
	}

	// 3. File directives with {{var}} → file pickers; literal paths are
	// static dependencies.
	for _, d := range fileDirectives {
		for _, arg := range captures(d.pattern, text) {
			if !isVariableRef(arg) {
				embedFiles = append(embedFiles, arg)
				continue
			}
			name := variableName(arg)
			if !claim(name) {
				continue
			}
			inputs = append(inputs, Input{
				Name:        name,
				Type:        InputFile,
				FileHint:    d.hint,
				Description: hints[name],
				Source:      d.name,
			})
		}
	}

	// 4. @refine with {{var}} → file picker for a spec file.
	for _, arg := range captures(refinePattern, text) {
		if !isVariableRef(arg) {
			continue
		}
		name := variableName(arg)
		if !claim(name) {
			continue
		}
		inputs = append(inputs, Input{
			Name:        name,
			Type:        InputFile,
			FileHint:    refineHint,
			Description: hints[name],
			Source:      "@refine",
		})
	}

	// 5. Remaining bare {{variables}} → text / multiline.
	for _, name := range captures(varPattern, text) {
		if !claim(name) {
			continue
		}
		kind := InputText
		if isMultilineName(name) {
			kind = InputMultiline
		}
		inputs = append(inputs, Input{
			Name:        name,
			Type:        kind,
			Description: hints[name],
			Source:      "{{variable}}",
		})
	}

	return inputs, embedFiles
}

// matchCases collects the quoted case options of a @match directive from
// the indented block that follows it. Scanning stops at the first non-blank,
// non-indented line, so an unrelated quoted-arrow line further down the spec
// cannot be misattributed. A bare "_" wildcard case is appended last as the
// default-case sentinel.
func matchCases(text string, from int) []string {
	rest := text[from:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		rest = rest[i+1:]
	} else {
		rest = ""
	}

	var cases []string
	wildcard := false
	for _, line := range strings.Split(rest, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if line[0] != ' ' && line[0] != '\t' {
			break
		}
		if m := casePattern.FindStringSubmatch(trimmed); m != nil {
			cases = append(cases, m[1])
		} else if wildcardPattern.MatchString(trimmed) {
			wildcard = true
		}
	}
	if wildcard {
		cases = append(cases, "_")
	}
	return cases
}

// isMultilineName reports whether a variable name suggests long-form
// content.
func isMultilineName(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range multilineHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
