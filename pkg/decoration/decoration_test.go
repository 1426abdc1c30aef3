package decoration

import (
	"testing"

	theme "github.com/goliatone/go-theme"
)

func TestFromSelection_TokenOverlay(t *testing.T) {
	selection := &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name: "acme",
			Tokens: map[string]string{
				TokenPromptPrefix: "> ",
				TokenErrorPrefix:  "x ",
			},
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{
						TokenErrorPrefix: "!! ",
					},
				},
			},
		},
	}

	got := FromSelection(selection)
	if got.PromptPrefix != "> " {
		t.Fatalf("manifest token not applied: %q", got.PromptPrefix)
	}
	if got.ErrorPrefix != "!! " {
		t.Fatalf("variant token should win: %q", got.ErrorPrefix)
	}
	if got.RequiredSuffix != " *" {
		t.Fatalf("base value lost: %q", got.RequiredSuffix)
	}
}

func TestFromSelection_NilFallsBackToBase(t *testing.T) {
	if got := FromSelection(nil); got != Base() {
		t.Fatalf("expected base defaults, got %+v", got)
	}
}

func TestMerge_DoesNotMutateReceiver(t *testing.T) {
	base := Base()
	merged := base.Merge(Defaults{PromptPrefix: ">> "})

	if merged.PromptPrefix != ">> " {
		t.Fatalf("override not applied: %q", merged.PromptPrefix)
	}
	if base.PromptPrefix != "" {
		t.Fatalf("receiver mutated: %q", base.PromptPrefix)
	}
	if merged.ErrorPrefix != base.ErrorPrefix {
		t.Fatalf("unset override must keep base value")
	}
}

func TestLabel(t *testing.T) {
	d := Defaults{PromptPrefix: "? ", RequiredSuffix: " *"}
	if got := d.Label("Tags", true); got != "? Tags *" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := d.Label("Tags", false); got != "? Tags" {
		t.Fatalf("unexpected label: %q", got)
	}
}

func TestErrorLine_EmptyMessage(t *testing.T) {
	d := Base()
	if got := d.ErrorLine("  "); got != "" {
		t.Fatalf("expected empty line for blank message, got %q", got)
	}
	if got := d.ErrorLine("nope"); got != "! nope" {
		t.Fatalf("unexpected error line: %q", got)
	}
}

func TestSanitizeHelp(t *testing.T) {
	if got := SanitizeHelp(`Pick <b>two</b> <script>alert(1)</script>tags`); got != "Pick two tags" {
		t.Fatalf("unexpected sanitised help: %q", got)
	}
	if got := SanitizeHelp("  "); got != "" {
		t.Fatalf("expected empty output for blank input, got %q", got)
	}
}
