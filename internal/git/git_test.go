package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	runCmd(t, dir, "git", "init")
	runCmd(t, dir, "git", "checkout", "-b", "main")
	runCmd(t, dir, "git", "config", "user.email", "test@test.com")
	runCmd(t, dir, "git", "config", "user.name", "Test")

	if err := os.WriteFile(filepath.Join(dir, "hello.go"), []byte("package main\n\nfunc hello() {}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	runCmd(t, dir, "git", "add", ".")
	runCmd(t, dir, "git", "commit", "-m", "initial")

	// The working copy moves on; HEAD keeps the committed version.
	if err := os.WriteFile(filepath.Join(dir, "hello.go"), []byte("package main\n\nfunc hello() { println(\"hi\") }\n"), 0644); err != nil {
		t.Fatal(err)
	}

	return dir
}

func runCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("%v failed: %s\n%s", args, err, out)
	}
}

func TestShowFile(t *testing.T) {
	dir := setupTestRepo(t)
	r := &Runner{Dir: dir}
	got, err := r.ShowFile("HEAD", "hello.go")
	if err != nil {
		t.Fatal(err)
	}
	want := "package main\n\nfunc hello() {}\n"
	if got != want {
		t.Errorf("ShowFile = %q, want %q", got, want)
	}
}

func TestShowFileInSubdirectory(t *testing.T) {
	dir := setupTestRepo(t)
	sub := filepath.Join(dir, "pkg")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "util.go"), []byte("package pkg\n"), 0644); err != nil {
		t.Fatal(err)
	}
	runCmd(t, dir, "git", "add", ".")
	runCmd(t, dir, "git", "commit", "-m", "add pkg")

	// Resolving from inside the subdirectory still hits the right blob.
	r := &Runner{Dir: sub}
	got, err := r.ShowFile("HEAD", "util.go")
	if err != nil {
		t.Fatal(err)
	}
	if got != "package pkg\n" {
		t.Errorf("ShowFile = %q, want %q", got, "package pkg\n")
	}
}

func TestShowFileUntracked(t *testing.T) {
	dir := setupTestRepo(t)
	if err := os.WriteFile(filepath.Join(dir, "new.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r := &Runner{Dir: dir}
	if _, err := r.ShowFile("HEAD", "new.go"); err == nil {
		t.Error("expected error for untracked file")
	}
}

func TestIsRepo(t *testing.T) {
	dir := setupTestRepo(t)
	r := &Runner{Dir: dir}
	if !r.IsRepo() {
		t.Error("IsRepo = false inside a repository")
	}
	r = &Runner{Dir: t.TempDir()}
	if r.IsRepo() {
		t.Error("IsRepo = true outside a repository")
	}
}
