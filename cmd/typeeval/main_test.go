package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"typeeval"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestUsage(t *testing.T) {
	code, _, stderr := runCLI(t)
	if code != 2 || !strings.Contains(stderr, "Usage") {
		t.Errorf("code = %d, stderr = %q", code, stderr)
	}
	code, _, _ = runCLI(t, "frobnicate")
	if code != 2 {
		t.Errorf("unknown command exit code = %d", code)
	}
	code, stdout, _ := runCLI(t, "help")
	if code != 0 || !strings.Contains(stdout, "check") {
		t.Errorf("help: code = %d, stdout = %q", code, stdout)
	}
}

func TestStubCommand(t *testing.T) {
	code, stdout, stderr := runCLI(t, "stub")
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{"bool", "bool -> int", "Node", "print"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output lacks %q:\n%s", want, stdout)
		}
	}

	code, _, stderr = runCLI(t, "stub", filepath.Join(t.TempDir(), "missing.yaml"))
	if code != 1 || !strings.Contains(stderr, "not found") {
		t.Errorf("missing stub: code = %d, stderr = %q", code, stderr)
	}
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(good, []byte("module: good\nvariables: [\"n: int = 1\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("module: bad\nvariables: [\"n: int = 'x'\"]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := runCLI(t, "check", good)
	if code != 0 || !strings.Contains(stdout, "no errors") {
		t.Errorf("good: code = %d, stdout = %q, stderr = %q", code, stdout, stderr)
	}

	code, stdout, _ = runCLI(t, "check", good, bad)
	if code != 1 || !strings.Contains(stdout, "error[T007]") {
		t.Errorf("bad: code = %d, stdout = %q", code, stdout)
	}

	cfg := filepath.Join(dir, "typeeval.yaml")
	if err := os.WriteFile(cfg, []byte("cache: types.db\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr = runCLI(t, "check", "-config", cfg, good)
	if code != 0 {
		t.Errorf("with config: code = %d, stderr = %q", code, stderr)
	}
	if _, err := os.Stat(filepath.Join(dir, "types.db")); err != nil {
		t.Errorf("cache not written: %v", err)
	}

	if code, _, _ := runCLI(t, "check"); code != 2 {
		t.Errorf("no modules: code = %d", code)
	}
}

func TestShowCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zoo.yaml")
	src := `
module: zoo
classes:
  - name: Animal
  - {name: Dog, bases: [Animal]}
variables: ["rex = Dog()"]
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	code, stdout, stderr := runCLI(t, "show", path)
	if code != 0 {
		t.Fatalf("code = %d, stderr = %q", code, stderr)
	}
	for _, want := range []string{"class Dog(Animal):  # type[Dog]", "rex = Dog()  # Dog"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output lacks %q:\n%s", want, stdout)
		}
	}
}
