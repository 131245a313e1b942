package scanner

// InputType classifies how a discovered variable should be collected from
// the user: free text, multi-line text, single select, boolean toggle, or
// file picker.
type InputType string

const (
	InputText      InputType = "text"
	InputMultiline InputType = "multiline"
	InputSelect    InputType = "select"
	InputBoolean   InputType = "boolean"
	InputFile      InputType = "file"
)

// Input is a single user-facing input discovered in a spec. Each variable
// name appears at most once in a scan result.
type Input struct {
	Name        string    `json:"name"`
	Type        InputType `json:"type"`
	Options     []string  `json:"options,omitempty"`
	Default     string    `json:"default,omitempty"`
	Description string    `json:"description,omitempty"`
	FileHint    string    `json:"file_hint,omitempty"`
	Source      string    `json:"source,omitempty"` // directive that produced this input (diagnostic)
}

// Metadata is the structured metadata extracted from a .promptspec.md file.
// It is a plain value: created fresh on every scan, never shared or mutated.
type Metadata struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Inputs      []Input        `json:"inputs"`
	Execution   map[string]any `json:"execution,omitempty"` // always has key "type" when non-nil
	PromptNames []string       `json:"prompt_names"`
	ToolNames   []string       `json:"tool_names"`
	RefineFiles []string       `json:"refine_files"`
	EmbedFiles  []string       `json:"embed_files"`
	Assertions  []string       `json:"assertions"`
	HasNotes    bool           `json:"has_notes"`
}

// Options tunes a scan. The zero value gives the standard behavior.
type Options struct {
	// NoteWindow is the maximum number of lines between the end of a @note
	// block and a variable occurrence for the note to become that variable's
	// description. Zero means the default of 5.
	NoteWindow int

	// InternalVariables lists additional strategy-injected variable names to
	// exclude from the inputs, on top of the built-in set.
	InternalVariables []string
}

// defaultNoteWindow is the note-to-variable proximity threshold in lines.
const defaultNoteWindow = 5

// maxDescriptionLen caps note-derived input descriptions.
const maxDescriptionLen = 200
