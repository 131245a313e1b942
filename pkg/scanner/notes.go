package scanner

import "strings"

// noteBlock is one @note annotation block: a run of indented, non-empty
// lines directly under the directive, ended by the first blank or
// non-indented line.
type noteBlock struct {
	end  int    // line index one past the last content line
	text string // space-joined, trimmed content
}

// findNoteBlocks locates every @note block in the text.
func findNoteBlocks(text string) []noteBlock {
	lines := strings.Split(text, "\n")
	var blocks []noteBlock

	for i := 0; i < len(lines); i++ {
		if !strings.HasPrefix(strings.TrimSpace(lines[i]), "@note") {
			continue
		}
		var content []string
		j := i + 1
		for j < len(lines) {
			line := lines[j]
			if strings.TrimSpace(line) == "" || (line[0] != ' ' && line[0] != '\t') {
				break
			}
			content = append(content, strings.TrimSpace(line))
			j++
		}
		if len(content) > 0 {
			blocks = append(blocks, noteBlock{end: j, text: strings.Join(content, " ")})
		}
		i = j - 1
	}
	return blocks
}

// noteHints maps variable names to the text of a nearby @note block. A block
// qualifies when its last line precedes the variable's line by at most
// window lines; the first qualifying block wins and the text is capped at
// maxDescriptionLen characters.
func noteHints(text string, blocks []noteBlock, window int) map[string]string {
	if len(blocks) == 0 {
		return nil
	}
	hints := make(map[string]string)
	for lineIdx, line := range strings.Split(text, "\n") {
		for _, m := range varPattern.FindAllStringSubmatch(line, -1) {
			name := m[1]
			if _, ok := hints[name]; ok {
				continue
			}
			for _, b := range blocks {
				if d := lineIdx - b.end; d >= 0 && d <= window {
					hints[name] = truncate(b.text, maxDescriptionLen)
					break
				}
			}
		}
	}
	return hints
}

// truncate caps s at n characters (runes, not bytes).
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
