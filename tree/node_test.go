package tree

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCompilationUnit, "CompilationUnit"},
		{KindMethodInvocation, "MethodInvocation"},
		{KindBinary, "Binary"},
		{Kind(9999), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestNodeAddChild(t *testing.T) {
	parent := New(KindClassDecl)
	child1 := New(KindMethodDecl)
	child2 := New(KindVariableDecls)

	parent.AddChild(child1)
	parent.AddChild(child2)
	parent.AddChild(nil)

	if len(parent.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(parent.Children))
	}
	if parent.Children[0] != child1 || parent.Children[1] != child2 {
		t.Error("children out of order or mismatched")
	}
}

func TestNodeIDsAreUniqueAndStable(t *testing.T) {
	a := New(KindIdentifier)
	b := New(KindIdentifier)
	if a.ID() == b.ID() {
		t.Error("expected distinct ids for distinct nodes")
	}
	clone := a.WithChildren(nil)
	if clone.ID() == a.ID() {
		t.Error("WithChildren should produce a node with its own identity, since it represents a transformed (not identical) node")
	}
}

func TestFirstAndChildrenOfKind(t *testing.T) {
	parent := New(KindBlock)
	m1 := New(KindMethodDecl)
	m1.Text = "first"
	f1 := New(KindVariableDecls)
	m2 := New(KindMethodDecl)
	m2.Text = "second"
	parent.Children = []*Node{m1, f1, m2}

	if got := parent.FirstChildOfKind(KindMethodDecl); got != m1 {
		t.Errorf("FirstChildOfKind = %v, want %v", got, m1)
	}
	if got := parent.ChildrenOfKind(KindMethodDecl); len(got) != 2 {
		t.Errorf("len(ChildrenOfKind) = %d, want 2", len(got))
	}
}
