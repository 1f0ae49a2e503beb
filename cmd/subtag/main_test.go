package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"subtag/internal/stylesheet"
	"subtag/internal/track"
)

const sampleTrack = `script_info:
  play_res_x: 1920
  play_res_y: 1080
styles:
  - name: Default
    alignment: 2
cues:
  - text: '{\b1}Hello{\b0}'
    start: 1
    end: 3
  - text: '{\fad(200,500)\c&H0000FF&}Red\Nline'
    start: 3
    end: 6
  - text: '{\bord3\an8}Top'
    start: 6
    end: 8
    style: Sign
`

type cliTestEnv struct {
	baseDir    string
	configPath string
	storePath  string
	trackPath  string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", filepath.Join(base, "home"))
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		storePath:  filepath.Join(base, "state", "rules.db"),
		trackPath:  filepath.Join(base, "track.yaml"),
	}
	content := fmt.Sprintf("[stylesheet]\nstore_path = %q\npersist = true\n\n[logging]\nlevel = \"error\"\n", env.storePath)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if err := os.WriteFile(env.trackPath, []byte(sampleTrack), 0o644); err != nil {
		t.Fatalf("write track: %v", err)
	}
	return env
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestCompileToStdout(t *testing.T) {
	env := setupCLITestEnv(t)

	out, errOut, err := runCLI(t, []string{"compile", env.trackPath}, env.configPath)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	var doc track.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode stdout: %v\n%s", err, out)
	}
	if len(doc.Cues) != 3 {
		t.Fatalf("expected 3 cues, got %d", len(doc.Cues))
	}
	if doc.Cues[0].Text != "<b>Hello</b>" {
		t.Fatalf("unexpected first cue %q", doc.Cues[0].Text)
	}
	if doc.Cues[1].Text != `<span class="pFF0000">Red<br>line</span>` {
		t.Fatalf("unexpected second cue %q", doc.Cues[1].Text)
	}
	if doc.Cues[2].Vert == nil || *doc.Cues[2].Vert != "top" {
		t.Fatalf("expected top-aligned third cue, got %+v", doc.Cues[2].Attributes)
	}
	if len(doc.Stylesheet) != 1 || doc.Stylesheet[0].Class != "pFF0000" {
		t.Fatalf("expected used rules in output, got %+v", doc.Stylesheet)
	}

	requireContains(t, errOut, "3 compiled, 1 animated")
	requireContains(t, errOut, "1 used, 1 newly stored")
	requireContains(t, errOut, "unknown: Sign")
}

func TestCompileWritesFilesAndReusesStore(t *testing.T) {
	env := setupCLITestEnv(t)
	outPath := filepath.Join(env.baseDir, "out", "track.msgpack")
	cssPath := filepath.Join(env.baseDir, "out", "subtitles.css")

	_, errOut, err := runCLI(t, []string{"compile", env.trackPath, "-o", outPath, "--css", cssPath, "-w", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	requireContains(t, errOut, cssPath+" (+1)")

	compiled, err := track.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read compiled track: %v", err)
	}
	if !compiled.Cues[1].HasAnimation {
		t.Fatalf("expected animated cue in msgpack output, got %+v", compiled.Cues[1])
	}

	rules, err := stylesheet.ReadFile(cssPath)
	if err != nil {
		t.Fatalf("read stylesheet: %v", err)
	}
	if len(rules) != 1 || rules[0].Class != "pFF0000" {
		t.Fatalf("unexpected stylesheet rules %+v", rules)
	}

	_, errOut, err = runCLI(t, []string{"compile", env.trackPath, "-o", outPath, "--css", cssPath}, env.configPath)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}
	requireContains(t, errOut, "1 used, 0 newly stored")
	requireContains(t, errOut, cssPath+" (+0)")

	out, _, err := runCLI(t, []string{"stylesheet"}, env.configPath)
	if err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	requireContains(t, out, ".pFF0000 { color: #FF0000 !important; }")
}

func TestCompileNoPersistSkipsStore(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"compile", env.trackPath, "--no-persist"}, env.configPath); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := os.Stat(env.storePath); !os.IsNotExist(err) {
		t.Fatalf("expected no rule store, stat err=%v", err)
	}
}

func TestCompileExplain(t *testing.T) {
	env := setupCLITestEnv(t)

	_, errOut, err := runCLI(t, []string{"compile", env.trackPath, "--explain", "--no-persist"}, env.configPath)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	requireContains(t, errOut, "HANDLERS")
	requireContains(t, errOut, "border")
	requireContains(t, errOut, "color,fade")
}

func TestCompileRejectsUnknownExtension(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "track.ass")
	if err := os.WriteFile(path, []byte("[Script Info]"), 0o644); err != nil {
		t.Fatalf("write track: %v", err)
	}
	_, _, err := runCLI(t, []string{"compile", path}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown track format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}

func TestCatalogCommand(t *testing.T) {
	out, _, err := runCLI(t, []string{"catalog"}, "")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	requireContains(t, out, "bold_on")
	requireContains(t, out, "drawing")

	out, _, err = runCLI(t, []string{"catalog", "--supported"}, "")
	if err != nil {
		t.Fatalf("catalog --supported: %v", err)
	}
	if strings.Contains(out, "drawing") {
		t.Fatalf("expected unsupported tags filtered, got %s", out)
	}

	if _, _, err := runCLI(t, []string{"catalog", "--supported", "--unsupported"}, ""); err == nil {
		t.Fatal("expected conflicting filters to fail")
	}
}

func TestConfigInitShowAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "generated", "config.toml")

	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected existing config to be protected")
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	out, _, err = runCLI(t, []string{"config", "show"}, env.configPath)
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, env.storePath)
	requireContains(t, out, "surface_height")
}

func TestStylesheetCommandEmptyStore(t *testing.T) {
	env := setupCLITestEnv(t)
	out, _, err := runCLI(t, []string{"stylesheet", "--table"}, env.configPath)
	if err != nil {
		t.Fatalf("stylesheet: %v", err)
	}
	requireContains(t, out, "No style rules stored")
}
