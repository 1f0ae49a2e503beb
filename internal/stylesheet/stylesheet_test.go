package stylesheet_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"subtag/internal/stylesheet"
)

func colorRule(class, hex string) stylesheet.Rule {
	return stylesheet.Rule{
		Class: class,
		Text:  stylesheet.FormatRule(class, stylesheet.Declaration{Property: "color", Value: "#" + hex + " !important"}),
	}
}

func TestRegistryKeepsFirstRule(t *testing.T) {
	r := stylesheet.NewRegistry()
	if !r.Register("pFF0000", "first") {
		t.Fatal("expected first registration to add")
	}
	if r.Register("pFF0000", "second") {
		t.Fatal("expected repeated registration to be a no-op")
	}
	if r.Register("  ", "blank") {
		t.Fatal("expected blank class to be rejected")
	}
	got, ok := r.Lookup("pFF0000")
	if !ok || got != "first" {
		t.Fatalf("expected first rule kept, got %q", got)
	}
}

func TestRegistryConcurrentRegistration(t *testing.T) {
	r := stylesheet.NewRegistry()
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		added int
	)
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			class := []string{"pFF0000", "p00FF00"}[i%2]
			if r.Register(class, class) {
				mu.Lock()
				added++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	if added != 2 || r.Len() != 2 {
		t.Fatalf("expected exactly two additions, got added=%d len=%d", added, r.Len())
	}
}

func TestRegistryWriteToIsSorted(t *testing.T) {
	r := stylesheet.NewRegistry()
	r.Seed([]stylesheet.Rule{colorRule("pFF0000", "FF0000"), colorRule("p0000FF", "0000FF")})

	var buf bytes.Buffer
	if _, err := r.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], ".p0000FF") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestFormatRule(t *testing.T) {
	got := stylesheet.FormatRule("pFF0000", stylesheet.Declaration{Property: "color", Value: "#FF0000 !important"})
	if got != ".pFF0000 { color: #FF0000 !important; }" {
		t.Fatalf("unexpected rule %q", got)
	}
}

func TestParseRulesRoundTrip(t *testing.T) {
	shadow := stylesheet.FormatRule("ts00FF00", stylesheet.Declaration{
		Property: "text-shadow",
		Value:    "0 0 29.16px #00FF00, 0 0 29.16px #00FF00 !important",
	})
	sheet := strings.Join([]string{
		colorRule("pFF0000", "FF0000").Text,
		shadow,
		"@media print { .hidden { display: none; } }",
		"div.cue > span { color: red; }",
	}, "\n")

	rules, err := stylesheet.ParseRules([]byte(sheet))
	if err != nil {
		t.Fatalf("ParseRules returned error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 class rules, got %+v", rules)
	}
	if rules[0] != colorRule("pFF0000", "FF0000") {
		t.Fatalf("color rule did not round-trip: %+v", rules[0])
	}
	if rules[1].Class != "ts00FF00" || rules[1].Text != shadow {
		t.Fatalf("shadow rule did not round-trip: %+v", rules[1])
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "styles.db")

	store, err := stylesheet.OpenStore(ctx, path)
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	defer store.Close()

	added, err := store.Save(ctx, []stylesheet.Rule{colorRule("pFF0000", "FF0000"), colorRule("p0000FF", "0000FF")})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 rules added, got %d", added)
	}

	added, err = store.Save(ctx, []stylesheet.Rule{{Class: "pFF0000", Text: "replacement"}, colorRule("p00FF00", "00FF00")})
	if err != nil {
		t.Fatalf("second Save returned error: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected only the new class added, got %d", added)
	}

	rules, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(rules) != 3 {
		t.Fatalf("expected 3 stored rules, got %+v", rules)
	}
	if rules[2].Class != "pFF0000" || rules[2].Text != colorRule("pFF0000", "FF0000").Text {
		t.Fatalf("expected first rule kept for pFF0000, got %+v", rules[2])
	}
}

func TestStoreReopenKeepsRules(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "styles.db")

	store, err := stylesheet.OpenStore(ctx, path)
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	if _, err := store.Save(ctx, []stylesheet.Rule{colorRule("pFF0000", "FF0000")}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	reopened, err := stylesheet.OpenStore(ctx, path)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	defer reopened.Close()
	rules, err := reopened.Load(ctx)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(rules) != 1 || rules[0].Class != "pFF0000" {
		t.Fatalf("unexpected rules after reopen: %+v", rules)
	}
}

func TestMergeFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out", "subtitles.css")

	added, err := stylesheet.MergeFile(ctx, path, []stylesheet.Rule{colorRule("pFF0000", "FF0000")})
	if err != nil {
		t.Fatalf("MergeFile returned error: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 rule added, got %d", added)
	}

	added, err = stylesheet.MergeFile(ctx, path, []stylesheet.Rule{
		{Class: "pFF0000", Text: ".pFF0000 { color: #000000; }"},
		colorRule("p0000FF", "0000FF"),
	})
	if err != nil {
		t.Fatalf("second MergeFile returned error: %v", err)
	}
	if added != 1 {
		t.Fatalf("expected 1 new rule, got %d", added)
	}

	rules, err := stylesheet.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if len(rules) != 2 {
		t.Fatalf("expected 2 rules in file, got %+v", rules)
	}
	if rules[1] != colorRule("pFF0000", "FF0000") {
		t.Fatalf("expected existing rule to win, got %+v", rules[1])
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".stylesheet-") {
			t.Fatalf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestReadFileMissing(t *testing.T) {
	rules, err := stylesheet.ReadFile(filepath.Join(t.TempDir(), "missing.css"))
	if err != nil || rules != nil {
		t.Fatalf("expected no rules and no error, got %v %v", rules, err)
	}
}

func TestUsageReportsSeededRules(t *testing.T) {
	registry := stylesheet.NewRegistry()
	registry.Seed([]stylesheet.Rule{colorRule("pFF0000", "FF0000"), colorRule("p0000FF", "0000FF")})
	usage := stylesheet.NewUsage(registry)

	if usage.Register("pFF0000", "ignored") {
		t.Fatal("expected seeded class to be known")
	}
	if !usage.Register("ts000000", ".ts000000 { text-shadow: none; }") {
		t.Fatal("expected new class to be added")
	}

	rules := usage.Rules()
	if len(rules) != 2 {
		t.Fatalf("expected only used classes, got %+v", rules)
	}
	if rules[0] != colorRule("pFF0000", "FF0000") {
		t.Fatalf("expected seeded rule text, got %+v", rules[0])
	}
	if rules[1].Class != "ts000000" {
		t.Fatalf("unexpected second rule %+v", rules[1])
	}
	if registry.Len() != 3 {
		t.Fatalf("expected registration forwarded, got %d rules", registry.Len())
	}
}
