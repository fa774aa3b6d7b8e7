package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ffab/internal/config"
	"ffab/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("FFAB_FFMPEG", "")

	cfg := testsupport.NewConfig(t, testsupport.WithStubbedBinaries())
	configPath := testsupport.WriteConfig(t, cfg)

	testsupport.WriteChainFile(t, cfg.Paths.ChainDir, "vocal.toml",
		"[[filter]]",
		`type = "volume"`,
		"decibels = -3.0",
		"",
		"[[filter]]",
		`type = "ffmpeg"`,
		`name = "lowpass"`,
		`params = [{ key = "f", value = "8000" }]`,
	)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    testsupport.BaseDir(cfg),
	}
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

func TestRenderCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"render", "vocal"}, env.configPath)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "[0:a]volume=-3dB[0001];[0001]lowpass=f=8000[out]\n"; out != want {
		t.Fatalf("unexpected render output %q", out)
	}

	out, _, err = runCLI(t, []string{"render", "vocal", "--mute", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("render --mute: %v", err)
	}
	if want := "[0:a]volume=-3dB[out]\n"; out != want {
		t.Fatalf("unexpected muted render output %q", out)
	}

	path := filepath.Join(env.cfg.Paths.ChainDir, "vocal.toml")
	out, stderr, err := runCLI(t, []string{"render", path, "-m", "1,2"}, env.configPath)
	if err != nil {
		t.Fatalf("render all muted: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	testsupport.RequireContains(t, stderr, "No active filters")
}

func TestRenderCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"render", "vocal", "--json", "--mute", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("render --json: %v", err)
	}
	var payload struct {
		Chain      string   `json:"chain"`
		Expression string   `json:"expression"`
		Fragments  []string `json:"fragments"`
		Muted      []int    `json:"muted"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if payload.Expression != "[0:a]lowpass=f=8000[out]" {
		t.Fatalf("unexpected expression %q", payload.Expression)
	}
	if len(payload.Fragments) != 1 || len(payload.Muted) != 1 || payload.Muted[0] != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if !strings.HasSuffix(payload.Chain, "vocal.toml") {
		t.Fatalf("unexpected chain path %q", payload.Chain)
	}
}

func TestRenderCommandRejectsBadInput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"render", "vocal", "--mute", "3"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "valid positions are 1..2") {
		t.Fatalf("expected position error, got %v", err)
	}

	_, _, err = runCLI(t, []string{"render", "missing"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}

	broken := testsupport.WriteChainFile(t, env.cfg.Paths.ChainDir, "broken.toml",
		"[[filter]]",
		`type = "reverb"`,
	)
	_, _, err = runCLI(t, []string{"render", broken}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "unknown filter type") {
		t.Fatalf("expected unknown type error, got %v", err)
	}
}

func TestGraphCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"graph", "vocal", "--mute", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("graph: %v", err)
	}
	testsupport.RequireContains(t, out,
		"INPUT", "OUTPUT", "Volume", "Lowpass",
		"volume=-3dB", "lowpass=f=8000",
		"1 active, 1 muted",
	)

	out, _, err = runCLI(t, []string{"graph", "vocal", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("graph --json: %v", err)
	}
	var rows []filterJSON
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if len(rows) != 4 || rows[0].Type != "input" || rows[3].Type != "output" || rows[1].ID != 1 {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestArgsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "in.wav")
	output := filepath.Join(env.baseDir, "out.wav")
	testsupport.WriteFile(t, input, 64)

	out, _, err := runCLI(t, []string{"args", "vocal", "--input", input, "--output", output}, env.configPath)
	if err != nil {
		t.Fatalf("args: %v", err)
	}
	testsupport.RequireContains(t, out,
		"ffmpeg -y -hide_banner -loglevel error -stats -i ",
		"-filter_complex '[0:a]volume=-3dB[0001];[0001]lowpass=f=8000[out]' -map '[out]'",
		"-c:a pcm_s24le -ar 48000 ",
	)

	out, _, err = runCLI(t, []string{"args", "vocal", "-i", input, "-o", output, "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("args --json: %v", err)
	}
	var argv []string
	if err := json.Unmarshal([]byte(out), &argv); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if argv[0] != "ffmpeg" || argv[len(argv)-1] != output {
		t.Fatalf("unexpected argv %q", argv)
	}

	_, _, err = runCLI(t, []string{"args", "vocal", "-i", filepath.Join(env.baseDir, "absent.wav"), "-o", output}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "inspect input") {
		t.Fatalf("expected missing input error, got %v", err)
	}
}

func TestChainCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"chain", "init"}, env.configPath)
	if err != nil {
		t.Fatalf("chain init: %v", err)
	}
	testsupport.RequireContains(t, out, "Wrote sample chain", "default.toml")

	_, _, err = runCLI(t, []string{"chain", "init"}, env.configPath)
	if err == nil || !strings.Contains(err.Error(), "--overwrite") {
		t.Fatalf("expected overwrite hint, got %v", err)
	}

	out, _, err = runCLI(t, []string{"chain", "validate", "default"}, env.configPath)
	if err != nil {
		t.Fatalf("chain validate: %v", err)
	}
	testsupport.RequireContains(t, out, "6 nodes, 5 connections", "Chain valid")

	out, _, err = runCLI(t, []string{"chain", "init", "Late Night"}, env.configPath)
	if err != nil {
		t.Fatalf("chain init NAME: %v", err)
	}
	testsupport.RequireContains(t, out, filepath.Join(env.cfg.Paths.ChainDir, "Late-Night.toml"))

	testsupport.WriteChainFile(t, env.cfg.Paths.ChainDir, "typo.toml", "[[filter]]", `typ = "volume"`)
	out, _, err = runCLI(t, []string{"chain", "list"}, env.configPath)
	if err != nil {
		t.Fatalf("chain list: %v", err)
	}
	testsupport.RequireContains(t, out, "default", "vocal", "Late-Night", "typo", "invalid")

	out, _, err = runCLI(t, []string{"chain", "types"}, "")
	if err != nil {
		t.Fatalf("chain types: %v", err)
	}
	testsupport.RequireContains(t, out, "volume", "ffmpeg", "custom")
	if strings.Contains(out, "INPUT") {
		t.Fatalf("sentinels should not be listed:\n%s", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath)
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	testsupport.RequireContains(t, out,
		"Config path: "+env.configPath,
		env.cfg.Paths.ChainDir,
		"FFmpeg:", "[OK]",
		"Configuration valid",
	)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	testsupport.RequireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	_, _, err = runCLI(t, []string{"config", "init", "--path", target}, "")
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected exists error, got %v", err)
	}
}

func TestInvalidConfigFailsBeforeCommandRuns(t *testing.T) {
	env := setupCLITestEnv(t)
	bad := filepath.Join(env.baseDir, "bad.toml")
	if err := os.WriteFile(bad, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := runCLI(t, []string{"render", "vocal"}, bad)
	if err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected config error, got %v", err)
	}
}
