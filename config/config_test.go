package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0644); err != nil {
		t.Fatalf("write %s: %v", FileName, err)
	}
}

func TestLoadFromParsesRecipes(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
recipes:
  - name: rename-foo
    signature: "A foo(..)"
    refactor: changeMethodName
    args:
      newName: bar
`)

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if len(cfg.Recipes) != 1 {
		t.Fatalf("len(Recipes) = %d, want 1", len(cfg.Recipes))
	}
	r := cfg.Recipes[0]
	if r.Name != "rename-foo" || r.Signature != "A foo(..)" || r.Refactor != "changeMethodName" {
		t.Errorf("unexpected recipe: %+v", r)
	}
	if r.Args["newName"] != "bar" {
		t.Errorf("args[newName] = %q, want %q", r.Args["newName"], "bar")
	}
}

func TestLoadFromRejectsIncompleteRecipe(t *testing.T) {
	cases := []string{
		"recipes:\n  - signature: \"A foo(..)\"\n    refactor: changeMethodName\n",
		"recipes:\n  - name: r\n    refactor: changeMethodName\n",
		"recipes:\n  - name: r\n    signature: \"A foo(..)\"\n",
	}
	for _, contents := range cases {
		dir := t.TempDir()
		writeConfig(t, dir, contents)
		if _, err := LoadFrom(dir); err == nil {
			t.Errorf("LoadFrom(%q): expected error, got nil", contents)
		}
	}
}

func TestConfigRecipeLookup(t *testing.T) {
	cfg := &Config{Recipes: []Recipe{{Name: "a"}, {Name: "b"}}}
	if r := cfg.Recipe("b"); r == nil || r.Name != "b" {
		t.Errorf("Recipe(%q) = %v, want recipe named b", "b", r)
	}
	if r := cfg.Recipe("missing"); r != nil {
		t.Errorf("Recipe(%q) = %v, want nil", "missing", r)
	}
}
