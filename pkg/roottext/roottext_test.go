package roottext

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractBasicPrefix(t *testing.T) {
	spec := "# My Solver\n" +
		"\n" +
		"@execute tree-of-thought\n" +
		"  branching_factor: 3\n" +
		"\n" +
		"You are a problem solver.\n" +
		"Problem: {{problem}}\n" +
		"\n" +
		"@prompt generate\n" +
		"  Solve step by step.\n"

	prefix, suffix := Extract(spec)

	for _, want := range []string{"# My Solver", "You are a problem solver.", "Problem: {{problem}}"} {
		if !strings.Contains(prefix, want) {
			t.Errorf("prefix missing %q:\n%s", want, prefix)
		}
	}
	if strings.Contains(prefix, "@execute") || strings.Contains(prefix, "branching_factor") {
		t.Errorf("execute block leaked into prefix:\n%s", prefix)
	}
	if suffix != "" {
		t.Errorf("suffix = %q, want empty", suffix)
	}
}

func TestExtractStripsExecuteParams(t *testing.T) {
	spec := "@execute self-consistency\n" +
		"  samples: 5\n" +
		"  aggregation: majority-vote\n" +
		"\n" +
		"Context text here.\n" +
		"\n" +
		"@prompt default\n" +
		"  Do something.\n"

	prefix, _ := Extract(spec)

	if !strings.Contains(prefix, "Context text here.") {
		t.Errorf("prefix = %q", prefix)
	}
	for _, leaked := range []string{"@execute", "samples", "aggregation"} {
		if strings.Contains(prefix, leaked) {
			t.Errorf("prefix contains %q:\n%s", leaked, prefix)
		}
	}
}

func TestExtractSuffixAfterLastPrompt(t *testing.T) {
	spec := "@execute single-call\n" +
		"\n" +
		"Root text.\n" +
		"\n" +
		"@prompt generate\n" +
		"  Generate something.\n" +
		"\n" +
		"@prompt evaluate\n" +
		"  Evaluate it.\n" +
		"\n" +
		"@output_format enforce: strict\n" +
		"  Always end with ANSWER: X\n"

	prefix, suffix := Extract(spec)

	if !strings.Contains(prefix, "Root text.") {
		t.Errorf("prefix = %q", prefix)
	}
	if !strings.Contains(suffix, "@output_format enforce: strict") {
		t.Errorf("suffix = %q", suffix)
	}
	if !strings.Contains(suffix, "Always end with ANSWER: X") {
		t.Errorf("suffix = %q", suffix)
	}
}

func TestExtractNoPromptDirectives(t *testing.T) {
	prefix, suffix := Extract("@execute single-call\n\nJust a simple spec with no prompt blocks.\n")
	if prefix != "" || suffix != "" {
		t.Errorf("prefix = %q, suffix = %q, want both empty", prefix, suffix)
	}
}

func TestExtractEmptyRootText(t *testing.T) {
	prefix, _ := Extract("@prompt generate\n  Do something.\n")
	if prefix != "" {
		t.Errorf("prefix = %q, want empty", prefix)
	}
}

func TestExtractPreservesOtherDirectives(t *testing.T) {
	spec := "@execute tree-of-thought\n" +
		"  branching_factor: 3\n" +
		"\n" +
		"@refine base-prompt.md\n" +
		"\n" +
		"You are a solver.\n" +
		"\n" +
		"@prompt generate\n" +
		"  Solve it.\n"

	prefix, _ := Extract(spec)

	if !strings.Contains(prefix, "@refine base-prompt.md") {
		t.Errorf("prefix = %q", prefix)
	}
	if !strings.Contains(prefix, "You are a solver.") {
		t.Errorf("prefix = %q", prefix)
	}
	if strings.Contains(prefix, "@execute") {
		t.Errorf("prefix = %q", prefix)
	}
}

func TestExtractPreservesMarkdownHeaders(t *testing.T) {
	spec := "# Title\n" +
		"\n" +
		"@execute reflection\n" +
		"  max_rounds: 2\n" +
		"\n" +
		"## Task\n" +
		"\n" +
		"Do the task: {{task}}\n" +
		"\n" +
		"@prompt generate\n" +
		"  Write it.\n"

	prefix, _ := Extract(spec)

	for _, want := range []string{"# Title", "## Task", "Do the task: {{task}}"} {
		if !strings.Contains(prefix, want) {
			t.Errorf("prefix missing %q:\n%s", want, prefix)
		}
	}
}

func TestExtractSuffixOnlyAfterLastBlock(t *testing.T) {
	spec := "Root.\n" +
		"\n" +
		"@prompt generate\n" +
		"  Gen.\n" +
		"\n" +
		"@prompt evaluate\n" +
		"  Eval.\n" +
		"\n" +
		"@prompt synthesize\n" +
		"  Synth.\n" +
		"\n" +
		"Final instruction.\n"

	prefix, suffix := Extract(spec)

	if !strings.Contains(prefix, "Root.") {
		t.Errorf("prefix = %q", prefix)
	}
	if !strings.Contains(suffix, "Final instruction.") {
		t.Errorf("suffix = %q", suffix)
	}
	if strings.Contains(suffix, "Synth.") {
		t.Errorf("block body leaked into suffix: %q", suffix)
	}
}

func TestCascadePrefixPrepended(t *testing.T) {
	prompts := map[string]string{
		"generate": "Solve step by step.",
		"evaluate": "Check the answer.",
	}
	result := Cascade(prompts, "You are a solver.", "")

	for name, body := range prompts {
		if !strings.HasPrefix(result[name], "You are a solver.") {
			t.Errorf("%s = %q", name, result[name])
		}
		if !strings.Contains(result[name], body) {
			t.Errorf("%s lost its body: %q", name, result[name])
		}
	}
}

func TestCascadeSuffixAppended(t *testing.T) {
	prompts := map[string]string{"generate": "Solve it.", "evaluate": "Check it."}
	result := Cascade(prompts, "", "ANSWER: X")

	for name := range prompts {
		if !strings.HasSuffix(result[name], "ANSWER: X") {
			t.Errorf("%s = %q", name, result[name])
		}
	}
}

func TestCascadeRoundTrip(t *testing.T) {
	result := Cascade(map[string]string{"generate": "X", "evaluate": "Y"}, "P", "S")

	want := map[string]string{
		"generate": "P\n\nX\n\nS",
		"evaluate": "P\n\nY\n\nS",
	}
	if !reflect.DeepEqual(result, want) {
		t.Errorf("result = %v, want %v", result, want)
	}
}

func TestCascadeEmptyRootNoop(t *testing.T) {
	prompts := map[string]string{"generate": "Original."}
	result := Cascade(prompts, "", "")
	if !reflect.DeepEqual(result, prompts) {
		t.Errorf("result = %v", result)
	}
}

func TestCascadeSingleDefaultSkipped(t *testing.T) {
	prompts := map[string]string{"default": "Z"}
	result := Cascade(prompts, "P", "S")
	if !reflect.DeepEqual(result, map[string]string{"default": "Z"}) {
		t.Errorf("result = %v, want untouched single-call map", result)
	}
}

func TestCascadeSystemKeyIncluded(t *testing.T) {
	prompts := map[string]string{"system": "You are a bot.", "generate": "Gen."}
	result := Cascade(prompts, "Root.", "")

	if !strings.HasPrefix(result["system"], "Root.") {
		t.Errorf("system = %q", result["system"])
	}
	if !strings.HasPrefix(result["generate"], "Root.") {
		t.Errorf("generate = %q", result["generate"])
	}
}

func TestExtractThenCascade(t *testing.T) {
	spec := "Shared context.\n" +
		"\n" +
		"@prompt generate\n" +
		"  Gen.\n" +
		"\n" +
		"@prompt evaluate\n" +
		"  Eval.\n"

	prefix, suffix := Extract(spec)
	result := Cascade(map[string]string{"generate": "A", "evaluate": "B"}, prefix, suffix)

	if result["generate"] != "Shared context.\n\nA" {
		t.Errorf("generate = %q", result["generate"])
	}
	if result["evaluate"] != "Shared context.\n\nB" {
		t.Errorf("evaluate = %q", result["evaluate"])
	}
}
