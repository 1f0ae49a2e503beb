package tags

import (
	"strings"
	"testing"
)

func TestSupportedExamplesSurviveStripping(t *testing.T) {
	for _, sig := range Supported() {
		cleaned, removed := StripReport(sig.Example)
		if cleaned != sig.Example {
			t.Fatalf("%s: stripping changed %q to %q (removed %v)", sig.Name, sig.Example, cleaned, removed)
		}
		if !sig.Pattern.MatchString(sig.Example) {
			t.Fatalf("%s: pattern does not match its own example %q", sig.Name, sig.Example)
		}
	}
}

func TestUnsupportedExamplesLeaveNoSupportedMatch(t *testing.T) {
	for _, sig := range Unsupported() {
		if !sig.Pattern.MatchString(sig.Example) {
			t.Fatalf("%s: pattern does not match its own example %q", sig.Name, sig.Example)
		}
		cleaned := Strip(sig.Example)
		if cleaned != "" {
			t.Fatalf("%s: expected %q to be stripped entirely, got %q", sig.Name, sig.Example, cleaned)
		}
		if MatchesSupported(cleaned) {
			t.Fatalf("%s: supported pattern matched after stripping %q", sig.Name, sig.Example)
		}
	}
}

func TestStripCombinedUnsupportedBlock(t *testing.T) {
	var b strings.Builder
	for _, sig := range Unsupported() {
		b.WriteString(sig.Example)
	}
	block := b.String()
	cleaned, removed := StripReport(block)
	if MatchesSupported(cleaned) {
		t.Fatalf("expected no supported tag after stripping %q, got leftovers %q", block, cleaned)
	}
	if len(removed) == 0 {
		t.Fatal("expected removed tag names")
	}
}

func TestStripKeepsSupportedNeighbours(t *testing.T) {
	cleaned := Strip(`\bord2\b1\shad1\pos(10,20)\t(0,100,\fs80)\an7`)
	if cleaned != `\b1\pos(10,20)\an7` {
		t.Fatalf("unexpected cleaned block %q", cleaned)
	}
}

func TestStripTransformWithNestedParens(t *testing.T) {
	cleaned, removed := StripReport(`\t(0,500,\clip(0,0,10,10)\frz30\1c&H0000FF&)\b1`)
	if cleaned != `\b1` {
		t.Fatalf("expected transform removed whole, got %q", cleaned)
	}
	if len(removed) != 1 || removed[0] != "transform" {
		t.Fatalf("unexpected removed tags %v", removed)
	}
}

func TestToggleStartWins(t *testing.T) {
	bold := Toggles()[0]
	markup, ok := bold.Match(`\b0\b1`)
	if !ok || markup != "<b>" {
		t.Fatalf("expected start marker to win, got %q ok=%v", markup, ok)
	}
	markup, ok = bold.Match(`\b0`)
	if !ok || markup != "</b>" {
		t.Fatalf("expected end marker, got %q ok=%v", markup, ok)
	}
	if _, ok := bold.Match(`\i1`); ok {
		t.Fatal("expected no bold match")
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, sig := range All() {
		if seen[sig.Name] {
			t.Fatalf("duplicate catalog name %q", sig.Name)
		}
		seen[sig.Name] = true
		if sig.Supported == (sig.Category == CategoryDropped) {
			t.Fatalf("%s: category %q inconsistent with supported=%v", sig.Name, sig.Category, sig.Supported)
		}
	}
}
