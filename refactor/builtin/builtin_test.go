package builtin

import (
	"strings"
	"testing"

	"github.com/dhamidi/javarefactor/javatype"
	"github.com/dhamidi/javarefactor/patch"
	"github.com/dhamidi/javarefactor/refactor"
	"github.com/dhamidi/javarefactor/tree"
)

// buildInvocation builds a MethodInvocation(target, name, args...) node
// tree following the Children[0]=target, Children[1]=name,
// Children[2:]=args convention, with every node's Range set to its own
// span within source.
func buildInvocation(targetText string, nameStart, nameEnd int, name string) *tree.Node {
	target := tree.New(tree.KindIdentifier)
	target.Text = targetText
	target.Formatting = tree.Reified("", "")

	id := tree.New(tree.KindIdentifier)
	id.Text = name
	id.Range = tree.Range{Start: nameStart, End: nameEnd}
	id.Formatting = tree.Reified("", "")

	inv := tree.New(tree.KindMethodInvocation)
	inv.Children = []*tree.Node{target, id}
	return inv
}

// TestChangeMethodNameRenamesOnlyTheIdentifier pins down that staging
// ChangeMethodName(inv, "bar") against `new B().foo("boo")` only
// touches the "foo" identifier span.
func TestChangeMethodNameRenamesOnlyTheIdentifier(t *testing.T) {
	source := `new B().foo("boo")`
	nameStart := len("new B().")
	nameEnd := nameStart + len("foo")
	inv := buildInvocation("new B()", nameStart, nameEnd, "foo")

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{inv}

	txn := refactor.New(source, cu).Visit(ChangeMethodName(inv, "bar"))
	result, err := txn.Fix()
	if err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected Changed = true")
	}
	if len(result.Patch.Hunks) != 1 {
		t.Fatalf("len(Hunks) = %d, want 1", len(result.Patch.Hunks))
	}
	diff := patch.Render(result.Patch, "a/source.java", "b/source.java")
	if !strings.Contains(diff, `-new B().foo("boo")`) || !strings.Contains(diff, `+new B().bar("boo")`) {
		t.Errorf("expected only the method name rewritten, got diff:\n%s", diff)
	}
}

// TestChangeTypeRewritesReferenceAndImports checks that changing a
// declared type swaps both the simple-name reference and the import.
func TestChangeTypeRewritesReferenceAndImports(t *testing.T) {
	oldType := javatype.Build("com.acme.Old")
	newType := javatype.Build("com.acme.v2.New")

	source := "import com.acme.Old;\n\nOld x;\n"

	imp := tree.New(tree.KindImport)
	imp.Text = "com.acme.Old"
	imp.Range = tree.Range{Start: len("import "), End: len("import com.acme.Old")}

	ref := tree.New(tree.KindIdentifier)
	ref.Text = "Old"
	ref.Type = oldType
	refStart := len("import com.acme.Old;\n\n")
	ref.Range = tree.Range{Start: refStart, End: refStart + len("Old")}
	ref.Formatting = tree.Reified("", "")

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{imp, ref}

	txn := refactor.New(source, cu).Visit(ChangeType(oldType.String(), newType.String()))
	result, err := txn.Fix()
	if err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected Changed = true")
	}
	if len(result.Patch.Hunks) == 0 {
		t.Fatal("expected at least one hunk")
	}
}

// TestChangeTypeWarnsOnUnresolvedNameMatch pins down ChangeType's
// refusal to rewrite an identifier that merely shares From's simple
// name but was never type-resolved: it must neither touch the node
// nor silently drop the ambiguity, but report it as a warning.
func TestChangeTypeWarnsOnUnresolvedNameMatch(t *testing.T) {
	oldType := javatype.Build("com.acme.Old")
	newType := javatype.Build("com.acme.v2.New")

	source := "Old x;\n"

	ref := tree.New(tree.KindIdentifier)
	ref.Text = "Old"
	ref.Range = tree.Range{Start: 0, End: len("Old")}
	ref.Formatting = tree.Reified("", "")

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{ref}

	txn := refactor.New(source, cu).Visit(ChangeType(oldType.String(), newType.String()))
	result, err := txn.Fix()
	if err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if result.Changed {
		t.Fatal("expected Changed = false: an unresolved reference must not be rewritten")
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
	}
}

// TestChangeTypeRewritesArrayElementType covers the array-typed
// shape: ChangeType rewrites an array's element type both in the
// declared variable's ArrayType and in the matching array-creation
// expression, with the import flipped the same way a plain reference
// already is in TestChangeTypeRewritesReferenceAndImports. The gap
// this closes is specific to the array shape: a resolved identifier
// nested inside an ArrayType node, rather than standing alone as
// ChangeType's other callers exercise it.
func TestChangeTypeRewritesArrayElementType(t *testing.T) {
	oldType := javatype.Build("a.A1")
	newType := javatype.Build("a.A2")

	source := "import a.A1;\n\nA1[] a = new A1[0];\n"

	imp := tree.New(tree.KindImport)
	imp.Text = "a.A1"
	imp.Range = tree.Range{Start: 0, End: len("import a.A1;")}

	declStart := len("import a.A1;\n\n")
	declRef := tree.New(tree.KindIdentifier)
	declRef.Text = "A1"
	declRef.Type = oldType
	declRef.Range = tree.Range{Start: declStart, End: declStart + len("A1")}
	declRef.Formatting = tree.Reified("", "")

	arrType := tree.New(tree.KindArrayType)
	arrType.Formatting = tree.Reified("", "[]")
	arrType.Children = []*tree.Node{declRef}

	newRefStart := declStart + len("A1[] a = new ")
	newRef := tree.New(tree.KindIdentifier)
	newRef.Text = "A1"
	newRef.Type = oldType
	newRef.Range = tree.Range{Start: newRefStart, End: newRefStart + len("A1")}
	newRef.Formatting = tree.Reified("", "")

	newArr := tree.New(tree.KindNewArray)
	newArr.Children = []*tree.Node{newRef}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{imp, arrType, newArr}

	txn := refactor.New(source, cu).Visit(ChangeType(oldType.String(), newType.String()))
	result, err := txn.Fix()
	if err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected Changed = true")
	}

	diff := patch.Render(result.Patch, "a/source.java", "b/source.java")
	if !strings.Contains(diff, "-A1[] a = new A1[0];") || !strings.Contains(diff, "+A2[] a = new A2[0];") {
		t.Errorf("expected both the declared array type and the array-creation type rewritten, got diff:\n%s", diff)
	}
	if !strings.Contains(diff, "-import a.A1;") || !strings.Contains(diff, "+import a.A2;") {
		t.Errorf("expected the import flipped from a.A1 to a.A2, got diff:\n%s", diff)
	}
}

// TestRemoveImportDropsUnreferencedNamedImport covers the
// named-import half of RemoveImport: a named import is dropped once
// nothing in the tree resolves to it any more.
func TestRemoveImportDropsUnreferencedNamedImport(t *testing.T) {
	named := tree.New(tree.KindImport)
	named.Text = "java.util.List"
	named.Range = tree.Range{Start: 0, End: len("import java.util.List;")}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{named}

	fixes := RemoveImport(cu, "java.util.List")
	if len(fixes) != 1 {
		t.Fatalf("len(fixes) = %d, want 1", len(fixes))
	}
	if fixes[0].Range != named.Range {
		t.Errorf("fix range = %+v, want %+v", fixes[0].Range, named.Range)
	}
}

// TestRemoveImportLeavesNamedImportWhileStillReferenced checks the
// opposite: RemoveImport is a no-op while a resolved reference to the
// class remains in the tree.
func TestRemoveImportLeavesNamedImportWhileStillReferenced(t *testing.T) {
	named := tree.New(tree.KindImport)
	named.Text = "java.util.List"
	named.Range = tree.Range{Start: 0, End: len("import java.util.List;")}

	ref := tree.New(tree.KindIdentifier)
	ref.Type = javatype.Build("java.util.List")

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{named, ref}

	if fixes := RemoveImport(cu, "java.util.List"); len(fixes) != 0 {
		t.Errorf("expected no fixes while java.util.List is still referenced, got %v", fixes)
	}
}

// TestRemoveImportCollapsesStarToSingleType covers the star-import
// half of RemoveImport: once only one member of the covering
// package is still referenced, the star import collapses to a named
// import of that one member.
func TestRemoveImportCollapsesStarToSingleType(t *testing.T) {
	star := tree.New(tree.KindImport)
	star.Text = "java.util.*"
	star.Range = tree.Range{Start: 0, End: len("import java.util.*;")}

	remaining := tree.New(tree.KindIdentifier)
	remaining.Type = javatype.Build("java.util.Map")

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{star, remaining}

	fixes := RemoveImport(cu, "java.util.List")
	if len(fixes) != 1 {
		t.Fatalf("len(fixes) = %d, want 1", len(fixes))
	}
	if fixes[0].Kind != tree.FixReplace || fixes[0].Text != "import java.util.Map;" {
		t.Errorf("fix = %+v, want a replace with \"import java.util.Map;\"", fixes[0])
	}
}

// TestRemoveImportDeletesStarWhenPackageUnreferenced covers the
// remaining branch: no reference to the package at all deletes the
// star import outright.
func TestRemoveImportDeletesStarWhenPackageUnreferenced(t *testing.T) {
	star := tree.New(tree.KindImport)
	star.Text = "java.util.*"
	star.Range = tree.Range{Start: 0, End: len("import java.util.*;")}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{star}

	fixes := RemoveImport(cu, "java.util.List")
	if len(fixes) != 1 || fixes[0].Kind != tree.FixDelete {
		t.Fatalf("fixes = %+v, want a single delete fix", fixes)
	}
}

// TestRemoveImportDeletesUnreferencedStaticNamedImport covers the
// static-named shape: a single imported static method, no longer
// invoked unqualified anywhere in the tree, is deleted.
func TestRemoveImportDeletesUnreferencedStaticNamedImport(t *testing.T) {
	staticNamed := tree.New(tree.KindImport)
	staticNamed.Text = "a.Utils.helper"
	staticNamed.Modifiers = []tree.Modifier{tree.ModifierStatic}
	staticNamed.Range = tree.Range{Start: 0, End: len("import static a.Utils.helper;")}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{staticNamed}

	fixes := RemoveImport(cu, "a.Utils")
	if len(fixes) != 1 || fixes[0].Kind != tree.FixDelete {
		t.Fatalf("fixes = %+v, want a single delete fix", fixes)
	}
}

// TestRemoveImportKeepsStaticNamedImportWhileStillCalled checks that a
// static-named import survives while its method is still invoked
// unqualified.
func TestRemoveImportKeepsStaticNamedImportWhileStillCalled(t *testing.T) {
	staticNamed := tree.New(tree.KindImport)
	staticNamed.Text = "a.Utils.helper"
	staticNamed.Modifiers = []tree.Modifier{tree.ModifierStatic}
	staticNamed.Range = tree.Range{Start: 0, End: len("import static a.Utils.helper;")}

	target := tree.New(tree.KindIdentifier)
	target.Type = javatype.Build("a.Utils")
	name := tree.New(tree.KindIdentifier)
	name.Text = "helper"
	inv := tree.New(tree.KindMethodInvocation)
	inv.Children = []*tree.Node{target, name}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{staticNamed, inv}

	if fixes := RemoveImport(cu, "a.Utils"); len(fixes) != 0 {
		t.Errorf("expected no fixes while a.Utils.helper is still called, got %v", fixes)
	}
}

// TestRemoveImportDeletesStaticStarWhenNoStaticMethodCalled covers
// the static-star shape: an unreferenced static-import-on-demand is
// deleted outright.
func TestRemoveImportDeletesStaticStarWhenNoStaticMethodCalled(t *testing.T) {
	staticStar := tree.New(tree.KindImport)
	staticStar.Text = "a.Utils.*"
	staticStar.Modifiers = []tree.Modifier{tree.ModifierStatic}
	staticStar.Range = tree.Range{Start: 0, End: len("import static a.Utils.*;")}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{staticStar}

	fixes := RemoveImport(cu, "a.Utils")
	if len(fixes) != 1 || fixes[0].Kind != tree.FixDelete {
		t.Fatalf("fixes = %+v, want a single delete fix", fixes)
	}
}

// TestRemoveImportKeepsStaticStarWhileAnyStaticMethodCalled checks
// that a static-star import survives as long as any static method of
// its owner is still invoked unqualified.
func TestRemoveImportKeepsStaticStarWhileAnyStaticMethodCalled(t *testing.T) {
	staticStar := tree.New(tree.KindImport)
	staticStar.Text = "a.Utils.*"
	staticStar.Modifiers = []tree.Modifier{tree.ModifierStatic}
	staticStar.Range = tree.Range{Start: 0, End: len("import static a.Utils.*;")}

	target := tree.New(tree.KindIdentifier)
	target.Type = javatype.Build("a.Utils")
	name := tree.New(tree.KindIdentifier)
	name.Text = "otherHelper"
	inv := tree.New(tree.KindMethodInvocation)
	inv.Children = []*tree.Node{target, name}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{staticStar, inv}

	if fixes := RemoveImport(cu, "a.Utils"); len(fixes) != 0 {
		t.Errorf("expected no fixes while a.Utils has a referenced static method, got %v", fixes)
	}
}

// TestChangeLiteralPreservesNumericSuffix checks that transforming a
// long literal's value reattaches the "L" suffix.
func TestChangeLiteralPreservesNumericSuffix(t *testing.T) {
	source := "42L"
	lit := tree.New(tree.KindLiteral)
	lit.Text = "42L"
	lit.Value = int64(42)
	lit.PrimitiveTag = javatype.Long
	lit.Type = &javatype.Primitive{Tag: javatype.Long}
	lit.Range = tree.Range{Start: 0, End: len(source)}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{lit}

	txn := refactor.New(source, cu).Visit(ChangeLiteral(cu, func(v interface{}) interface{} {
		return v.(int64) + 1
	}))
	result, err := txn.Fix()
	if err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if !result.Changed {
		t.Fatal("expected Changed = true")
	}
	if len(result.Patch.Hunks) != 1 {
		t.Fatalf("len(Hunks) = %d, want 1", len(result.Patch.Hunks))
	}
	diff := patch.Render(result.Patch, "a/source.java", "b/source.java")
	if !strings.Contains(diff, "+43L") {
		t.Errorf("expected the rewritten literal to keep its L suffix, got diff:\n%s", diff)
	}
}

func TestAddImportSkipsWhenAlreadyCovered(t *testing.T) {
	star := tree.New(tree.KindImport)
	star.Text = "java.util.*"
	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{star}

	if fixes := AddImport(cu, "java.util.List"); fixes != nil {
		t.Errorf("expected no fixes, got %v", fixes)
	}
}

func TestAddImportSortsIntoExistingBlock(t *testing.T) {
	first := tree.New(tree.KindImport)
	first.Text = "java.util.List"
	first.Range = tree.Range{Start: 7, End: 7 + len("java.util.List")}

	cu := tree.New(tree.KindCompilationUnit)
	cu.Children = []*tree.Node{first}

	fixes := AddImport(cu, "java.io.File") // sorts before java.util.List
	if len(fixes) != 1 {
		t.Fatalf("len(fixes) = %d, want 1", len(fixes))
	}
	if fixes[0].Range.Start != first.Range.Start {
		t.Errorf("insert offset = %d, want %d", fixes[0].Range.Start, first.Range.Start)
	}
}
