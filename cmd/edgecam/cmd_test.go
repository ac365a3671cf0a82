package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func execute(t *testing.T, fs afero.Fs, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd(fs)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestSimulateBuiltin(t *testing.T) {
	out, stderr, err := execute(t, afero.NewMemMapFs(), "simulate", "--workers", "2", "--trace", "zoom-clamped")
	if err != nil {
		t.Fatalf("simulate: %v\n%s", err, stderr)
	}
	for _, want := range []string{"pan-clamp", "placement-deferred", "SCENARIO", "PLACEMENT"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "FAIL") {
		t.Errorf("Builtin scenario failed:\n%s", out)
	}
}

func TestSimulateReportsFailures(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := "name: wrong-team\nteam: red\nexpect:\n  team: blue\n"
	if err := afero.WriteFile(fs, "/s.yaml", []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	out, stderr, err := execute(t, fs, "simulate", "-f", "/s.yaml")
	if err == nil {
		t.Fatal("Expected error for failing scenario")
	}
	if !strings.Contains(out, "FAIL") || !strings.Contains(stderr, "wrong-team: team = red, want blue") {
		t.Errorf("Unexpected output:\n%s\n%s", out, stderr)
	}
}

func TestConfigDumpUsesFileAndFlags(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/edgecam.yaml", []byte("camera:\n  pan_speed: 77\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, _, err := execute(t, fs, "--config", "/edgecam.yaml", "config", "dump", "--format", "toml")
	if err != nil {
		t.Fatalf("config dump: %v", err)
	}
	if !strings.Contains(out, "pan_speed = 77") {
		t.Errorf("Expected pan_speed from file:\n%s", out)
	}

	if _, _, err := execute(t, fs, "config", "dump", "--format", "yaml", "-o", "/out.yaml"); err != nil {
		t.Fatalf("config dump -o: %v", err)
	}
	data, err := afero.ReadFile(fs, "/out.yaml")
	if err != nil || !strings.Contains(string(data), "zoom_speed: 300") {
		t.Errorf("Unexpected dumped file %q (%v)", data, err)
	}
}

func TestConfigShowRejectsInvalid(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/bad.yaml", []byte("camera:\n  min_zoom: 99\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := execute(t, fs, "-c", "/bad.yaml", "config", "show"); err == nil {
		t.Error("Expected validation error")
	}

	out, _, err := execute(t, afero.NewMemMapFs(), "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.HasPrefix(out, "# source: defaults") {
		t.Errorf("Unexpected header:\n%s", out)
	}
}

func TestSnapshotWritesImage(t *testing.T) {
	fs := afero.NewMemMapFs()
	out, _, err := execute(t, fs, "snapshot", "-o", "/gizmo.webp", "--team", "red")
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if !strings.Contains(out, "placement resolved") {
		t.Errorf("Expected resolved placement for red request: %s", out)
	}

	data, err := afero.ReadFile(fs, "/gizmo.webp")
	if err != nil {
		t.Fatalf("Snapshot not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("RIFF")) {
		t.Error("Expected RIFF container")
	}

	if _, _, err := execute(t, fs, "snapshot", "-o", "/x.img", "--format", "bmp"); err == nil {
		t.Error("Expected error for unsupported format")
	}
	if ok, _ := afero.Exists(fs, "/x.img"); ok {
		t.Error("Unsupported format must not leave an output file")
	}
}
