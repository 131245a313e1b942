package hub

import "testing"

func TestNewClientRequiresToken(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Fatal("expected error for empty token")
	}
	if _, err := NewClient("ghp_test"); err != nil {
		t.Fatalf("NewClient: %v", err)
	}
}

func TestParseRepo(t *testing.T) {
	owner, name, err := ParseRepo("acme/prompt-library")
	if err != nil {
		t.Fatalf("ParseRepo: %v", err)
	}
	if owner != "acme" || name != "prompt-library" {
		t.Errorf("got %q/%q", owner, name)
	}

	for _, bad := range []string{"", "acme", "/name", "acme/"} {
		if _, _, err := ParseRepo(bad); err == nil {
			t.Errorf("ParseRepo(%q) succeeded, want error", bad)
		}
	}
}

func TestIsSpecFile(t *testing.T) {
	cases := map[string]bool{
		"review.promptspec.md": true,
		"review.md":            false,
		"README.md":            false,
		"promptspec.md":        false,
	}
	for name, want := range cases {
		if got := IsSpecFile(name); got != want {
			t.Errorf("IsSpecFile(%q) = %v, want %v", name, got, want)
		}
	}
}
