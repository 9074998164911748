package tree

import "github.com/dhamidi/javarefactor/javatype"

// DeclaringType returns the resolved type of the target expression a
// MethodInvocation is called on (n.Children[0], conventionally), or
// nil if unresolved. FindMethodCalls hands it to an InvocationMatcher,
// so the method matcher can query a tree node without this package
// importing matcher.
func (n *Node) DeclaringType() *javatype.Class {
	if n.Kind != KindMethodInvocation || len(n.Children) == 0 {
		return nil
	}
	target := n.Children[0]
	if target == nil || target.Type == nil {
		return nil
	}
	c, _ := javatype.AsClass(target.Type)
	return c
}

// MethodNameNode returns the Identifier child holding the invoked
// method's simple name: by convention Children[0] is the target
// expression and Children[1] is that identifier, with Children[2:]
// the argument expressions. ChangeMethodName replaces this node in
// place, leaving the target expression and every argument untouched.
func (n *Node) MethodNameNode() *Node {
	if n.Kind != KindMethodInvocation || len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}

// MethodName returns the simple name of the invoked method.
func (n *Node) MethodName() string {
	if id := n.MethodNameNode(); id != nil {
		return id.Text
	}
	return ""
}

// ArgTypes returns the resolved types of the invocation's arguments,
// which are every Child after the target (Children[0]) and the
// method-name identifier (Children[1], when present).
func (n *Node) ArgTypes() []javatype.Type {
	if n.Kind != KindMethodInvocation {
		return nil
	}
	var types []javatype.Type
	for i, c := range n.Children {
		if i < 2 {
			continue
		}
		types = append(types, c.Type)
	}
	return types
}

// Walk calls visit for every node in the subtree rooted at n,
// depth-first, in source order — the same traversal order the
// visitor framework uses.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// InvocationMatcher is the minimal interface FindMethodCalls needs
// from a compiled signature; satisfied by *matcher.Matcher.
type InvocationMatcher interface {
	MatchesInvocation(decl *javatype.Class, name string, args []javatype.Type) bool
}

// FindMethodCalls returns every MethodInvocation node in cu accepted
// by m.
func FindMethodCalls(cu *Node, m InvocationMatcher) []*Node {
	var out []*Node
	Walk(cu, func(n *Node) {
		if n.Kind != KindMethodInvocation {
			return
		}
		if m.MatchesInvocation(n.DeclaringType(), n.MethodName(), n.ArgTypes()) {
			out = append(out, n)
		}
	})
	return out
}

// FindFields returns the fields declared directly on classDecl whose
// type equals fqn.
func FindFields(classDecl *Node, fqn string) []*Node {
	var out []*Node
	for _, decl := range classDecl.ChildrenOfKind(KindVariableDecls) {
		if fieldTypeName(decl) == fqn {
			out = append(out, decl)
		}
	}
	return out
}

// FindInheritedFields returns fields of type fqn reachable through
// classDecl's resolved supertype chain. classDecl's own Type must be
// a *javatype.Class carrying Members populated with *javatype.Var
// entries for its fields; this mirrors how a post-resolution pass
// would expose inherited members, since the tree itself only holds
// locally declared members.
func FindInheritedFields(classDecl *Node, fqn string) []*javatype.Var {
	class, ok := javatype.AsClass(classDecl.Type)
	if !ok || class == nil {
		return nil
	}
	var out []*javatype.Var
	for _, ancestor := range javatype.SupertypeClosure(class) {
		if ancestor == class {
			continue // locally declared; see FindFields
		}
		for _, member := range ancestor.Members {
			v, ok := member.(*javatype.Var)
			if !ok || v.Type == nil {
				continue
			}
			if v.Type.String() == fqn {
				out = append(out, v)
			}
		}
	}
	return out
}

func fieldTypeName(decl *Node) string {
	if decl.Type == nil {
		return ""
	}
	return decl.Type.String()
}

// HasType reports whether any node in cu resolves to type fqn.
func HasType(cu *Node, fqn string) bool {
	found := false
	Walk(cu, func(n *Node) {
		if found || n.Type == nil {
			return
		}
		if n.Type.String() == fqn {
			found = true
		}
	})
	return found
}

// HasImport reports whether cu imports fqn, directly or via a
// covering star import.
func HasImport(cu *Node, fqn string) bool {
	for _, imp := range cu.ChildrenOfKind(KindImport) {
		if ImportMatches(imp, fqn) {
			return true
		}
	}
	return false
}

// ImportMatches reports whether importing imp's subject would bring
// fqn into scope: true iff the import is a single-type import naming
// fqn exactly, or a star import whose package prefix equals fqn's
// package.
func ImportMatches(imp *Node, fqn string) bool {
	if imp.Kind != KindImport {
		return false
	}
	name := imp.Text
	if name == fqn {
		return true
	}
	if len(name) > 1 && name[len(name)-1] == '*' {
		pkg := name[:len(name)-2] // strip ".*"
		return javatype.Build(fqn).Package() == pkg
	}
	return false
}
