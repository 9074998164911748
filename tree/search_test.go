package tree

import (
	"testing"

	"github.com/dhamidi/javarefactor/javatype"
)

func newTarget(fqn string) *Node {
	n := New(KindIdentifier)
	n.Type = javatype.Build(fqn)
	return n
}

func newInvocation(declType string, methodName string, argTypes ...string) *Node {
	inv := New(KindMethodInvocation)
	name := New(KindIdentifier)
	name.Text = methodName
	inv.Children = append(inv.Children, newTarget(declType), name)
	for _, at := range argTypes {
		arg := New(KindLiteral)
		arg.Type = javatype.Build(at)
		inv.Children = append(inv.Children, arg)
	}
	return inv
}

type stubMatcher struct {
	wantDecl string
	wantName string
}

func (s stubMatcher) MatchesInvocation(decl *javatype.Class, name string, args []javatype.Type) bool {
	return decl != nil && decl.FullyQualifiedName == s.wantDecl && name == s.wantName
}

func TestFindMethodCalls(t *testing.T) {
	cu := New(KindCompilationUnit)
	cu.Children = []*Node{
		newInvocation("a.B", "singleArg", "java.lang.String"),
		newInvocation("a.C", "other"),
	}

	got := FindMethodCalls(cu, stubMatcher{wantDecl: "a.B", wantName: "singleArg"})
	if len(got) != 1 {
		t.Fatalf("len(FindMethodCalls) = %d, want 1", len(got))
	}
	if got[0].MethodName() != "singleArg" {
		t.Errorf("MethodName() = %q, want singleArg", got[0].MethodName())
	}
}

func TestHasTypeAndHasImport(t *testing.T) {
	cu := New(KindCompilationUnit)
	imp := New(KindImport)
	imp.Text = "a.B"
	field := New(KindVariableDecls)
	field.Type = javatype.Build("a.B")
	cu.Children = []*Node{imp, field}

	if !HasType(cu, "a.B") {
		t.Error("expected HasType to find a.B")
	}
	if HasType(cu, "a.C") {
		t.Error("did not expect HasType to find a.C")
	}
	if !HasImport(cu, "a.B") {
		t.Error("expected HasImport to find a.B")
	}
}

func TestImportMatchesStarImport(t *testing.T) {
	star := New(KindImport)
	star.Text = "a.*"

	if !ImportMatches(star, "a.B") {
		t.Error("expected star import a.* to match a.B")
	}
	if ImportMatches(star, "c.B") {
		t.Error("did not expect star import a.* to match c.B")
	}
}

func TestFindFields(t *testing.T) {
	classDecl := New(KindClassDecl)
	f1 := New(KindVariableDecls)
	f1.Type = javatype.Build("a.B")
	f2 := New(KindVariableDecls)
	f2.Type = javatype.Build("a.C")
	classDecl.Children = []*Node{f1, f2}

	got := FindFields(classDecl, "a.B")
	if len(got) != 1 || got[0] != f1 {
		t.Errorf("FindFields = %v, want [f1]", got)
	}
}

func TestFindInheritedFields(t *testing.T) {
	base := javatype.Build("a.Base")
	base.Members = []javatype.Type{
		&javatype.Var{Name: "conn", Type: javatype.Build("a.Connection")},
	}
	derived := javatype.Build("a.Derived")
	derived.Supertype = base

	classDecl := New(KindClassDecl)
	classDecl.Type = derived

	got := FindInheritedFields(classDecl, "a.Connection")
	if len(got) != 1 || got[0].Name != "conn" {
		t.Errorf("FindInheritedFields = %v", got)
	}
}
