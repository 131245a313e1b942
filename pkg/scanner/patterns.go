package scanner

import "regexp"

// Directive recognition patterns. The spec markup has no formal grammar, so
// these are best-effort shapes: anything they miss is silently ignored.
// All patterns are compiled once and never mutated.
var (
	varPattern      = regexp.MustCompile(`\{\{(\w+)\}\}`)
	matchPattern    = regexp.MustCompile(`(?m)^[ \t]*@match\s+(\w+)`)
	casePattern     = regexp.MustCompile(`^"([^"]+)"\s*==>`)
	wildcardPattern = regexp.MustCompile(`^_\s*==>`)
	ifPattern       = regexp.MustCompile(`(?m)^[ \t]*@if\s+(\w+)`)
	executePattern  = regexp.MustCompile(`(?m)^[ \t]*@execute\s+(\S+)((?:\n[ \t]+\S.*)*)`)
	promptPattern   = regexp.MustCompile(`(?m)^[ \t]*@prompt\s+(\w+)`)
	toolPattern     = regexp.MustCompile(`(?m)^[ \t]*@tool\s+(\S+)`)
	refinePattern   = regexp.MustCompile(`(?m)^[ \t]*@refine\s+(\S+)`)
	assertPattern   = regexp.MustCompile(`(?m)^[ \t]*@assert\s+(.*)`)
	headingPattern  = regexp.MustCompile(`(?m)^#\s+(.+)`)
)

// fileDirective couples a file-accepting directive with the pattern for its
// "file:" argument and the hint a file picker should show for it.
type fileDirective struct {
	name    string
	pattern *regexp.Regexp
	hint    string
}

// richFormatHint describes the document formats the composition step can
// convert when embedding, summarizing, compressing or extracting a file.
const richFormatHint = "Supports: .txt, .md, .pdf, .docx, .pptx, .xlsx, .html"

// refineHint describes the only file type @refine accepts.
const refineHint = "PromptSpec file (.promptspec.md)"

var fileDirectives = []fileDirective{
	{"@embed", regexp.MustCompile(`(?m)^[ \t]*@embed\s+file:\s*(\S+)`), richFormatHint},
	{"@summarize", regexp.MustCompile(`(?m)^[ \t]*@summarize\s+file:\s*(\S+)`), richFormatHint},
	{"@compress", regexp.MustCompile(`(?m)^[ \t]*@compress\s+file:\s*(\S+)`), richFormatHint},
	{"@extract", regexp.MustCompile(`(?m)^[ \t]*@extract\s+file:\s*(\S+)`), richFormatHint},
}

// multilineHints are name fragments that suggest a variable holds long-form
// content and should get a multi-line editor instead of a single-line field.
var multilineHints = []string{
	"description", "text", "content", "body", "prompt", "instructions",
	"message", "context", "details", "summary", "draft", "template",
}

// defaultInternalVariables are names injected at runtime by the known
// execution strategies. They are never user inputs. Additional names can be
// supplied through Options.InternalVariables (e.g. from an engine registry)
// so new strategies don't require a code change here.
var defaultInternalVariables = []string{
	"edited_content", "original_content", // collaborative strategy
	"best_path", "state", // tree-of-thought strategy
}
