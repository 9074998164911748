package patch

import (
	"testing"

	"github.com/dhamidi/javarefactor/tree"
)

func TestApplyReplace(t *testing.T) {
	original := `new B().singleArg("boo")`
	start := len(`new B().singleArg("`)
	end := start + len("boo")
	fix := tree.Replace(tree.Range{Start: start, End: end}, "bar")

	got, err := Apply(original, []tree.Fix{fix})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := `new B().singleArg("bar")`
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApplyInsertAndDelete(t *testing.T) {
	original := "abcdef"
	fixes := []tree.Fix{
		tree.Delete(tree.Range{Start: 1, End: 3}),     // remove "bc"
		tree.Insert(4, "X"),                           // after "d"
	}
	got, err := Apply(original, fixes)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	want := "adXef"
	if got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestFromFixesSingleLineReplace(t *testing.T) {
	original := "line one\nline two\nline three\n"
	start := len("line one\nline ")
	end := start + len("two")
	fix := tree.Replace(tree.Range{Start: start, End: end}, "TWO")

	p, err := FromFixes(original, []tree.Fix{fix})
	if err != nil {
		t.Fatalf("FromFixes: %v", err)
	}
	if len(p.Hunks) != 1 {
		t.Fatalf("len(Hunks) = %d, want 1", len(p.Hunks))
	}
	h := p.Hunks[0]
	if h.OldStart != 1 || h.OldLines != 3 {
		t.Errorf("hunk old = start %d lines %d, want 1,3", h.OldStart, h.OldLines)
	}

	rendered := Render(p, "a.java", "b.java")
	if rendered == "" {
		t.Fatal("Render produced empty output")
	}
}

func TestFromFixesNoFixesProducesEmptyPatch(t *testing.T) {
	p, err := FromFixes("abc\n", nil)
	if err != nil {
		t.Fatalf("FromFixes: %v", err)
	}
	if len(p.Hunks) != 0 {
		t.Errorf("expected no hunks, got %d", len(p.Hunks))
	}
}
