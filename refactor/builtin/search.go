// Package builtin implements the concrete refactor operations built
// on top of refactor.Transaction and visit.Visitor: changing a type
// reference, renaming a method call, transforming a literal, and
// adding/removing imports. The read-only queries
// (FindMethods, FindFields, HasType, HasImport) are thin wrappers over
// tree/search.go, kept here so a caller only needs to import one
// package for both sides of a refactor.
package builtin

import (
	"github.com/dhamidi/javarefactor/matcher"
	"github.com/dhamidi/javarefactor/tree"
)

// FindMethods returns every method invocation in cu accepted by m.
func FindMethods(cu *tree.Node, m *matcher.Matcher) []*tree.Node {
	return tree.FindMethodCalls(cu, m)
}

// FindFields returns the fields declared directly on classDecl whose
// type equals fqn.
func FindFields(classDecl *tree.Node, fqn string) []*tree.Node {
	return tree.FindFields(classDecl, fqn)
}

// HasType reports whether any node in cu resolves to type fqn.
func HasType(cu *tree.Node, fqn string) bool {
	return tree.HasType(cu, fqn)
}

// HasImport reports whether cu imports fqn, directly or via a
// covering star import.
func HasImport(cu *tree.Node, fqn string) bool {
	return tree.HasImport(cu, fqn)
}
