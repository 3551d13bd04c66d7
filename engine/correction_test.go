package engine

import "testing"

func TestRenderParts(t *testing.T) {
	c := PartsCorrection([]string{"git", "status"})
	if got := c.Render(Bash); got != "git status" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderCommand(t *testing.T) {
	c := CommandCorrection("  git status  ")
	if got := c.Render(Bash); got != "git status" {
		t.Fatalf("Render = %q, want trimmed", got)
	}
}

func TestRenderAndBash(t *testing.T) {
	c := AndCommand([]string{"mkdir", "-p", "app"}, "cd app")
	if got := c.Render(Bash); got != "mkdir -p app && cd app" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderAndFish(t *testing.T) {
	c := AndCommand([]string{"mkdir", "-p", "app"}, "cd app")
	if got := c.Render(Fish); got != "mkdir -p app and cd app" {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderAndIsRecursive(t *testing.T) {
	inner := AndCommand([]string{"chmod", "+x", "./foo"}, "./foo")
	outer := AndCorrection(inner, CommandCorrection("echo done"))
	got := outer.Render(Bash)
	want := "chmod +x ./foo && ./foo && echo done"
	if got != want {
		t.Fatalf("Render = %q, want %q", got, want)
	}
}
