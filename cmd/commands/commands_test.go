package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("MOBY_WORK_DIR", "")
	t.Setenv("MOBY_LOG_DIR", "")
	t.Setenv("MOBY_LOG_LEVEL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSpinCommandWritesImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ke.dat"), []byte("0 10\n0.1 9\n0.2 7\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "spin", "--app.work_dir", dir, "--log.dir", filepath.Join(dir, "logs")); err != nil {
		t.Fatalf("spin: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "adaptive.png"))
	if err != nil || info.Size() == 0 {
		t.Fatalf("adaptive.png not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "logs", "app.log")); err != nil {
		t.Errorf("app.log not created: %v", err)
	}
}

func TestAllStopsAtFirstFailure(t *testing.T) {
	dir := t.TempDir()
	// steps input is missing, tuned input is present
	if err := os.WriteFile(filepath.Join(dir, "ke_tuned.dat"), []byte("0 1\n0.1 2\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := execute(t, "all", "--app.work_dir", dir, "--log.dir", filepath.Join(dir, "logs")); err == nil {
		t.Fatal("expected error for missing distances-l20.dat")
	}
	if _, err := os.Stat(filepath.Join(dir, "adaptive-tuned.png")); !os.IsNotExist(err) {
		t.Error("all should stop before running tuned")
	}
}

func TestInspectPrintsBins(t *testing.T) {
	dir := t.TempDir()
	data := "0 0.001\n1 0.002\n2 0.002\n3 0.01\n"
	if err := os.WriteFile(filepath.Join(dir, "distances-l20.dat"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "inspect", "steps", "--app.work_dir", dir, "--log.dir", filepath.Join(dir, "logs"))
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{"script: steps (histogram)", "rows:   4", "bins:   50"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "hist.png")); !os.IsNotExist(err) {
		t.Error("inspect must not write hist.png")
	}
}

func TestInspectUnknownScript(t *testing.T) {
	dir := t.TempDir()
	if _, err := execute(t, "inspect", "implicit", "--log.dir", filepath.Join(dir, "logs")); err == nil {
		t.Fatal("expected error for unknown script")
	}
}
