package matcher

import (
	"strings"

	"github.com/dhamidi/javarefactor/javatype"
)

// MatchesTargetType reports whether decl itself, or any type in its
// supertype/interface closure, has a fully qualified name accepted by
// m's target-type pattern: a matcher written against a supertype also
// accepts every subtype.
func (m *Matcher) MatchesTargetType(decl *javatype.Class) bool {
	if decl == nil {
		return false
	}
	for _, ancestor := range javatype.SupertypeClosure(decl) {
		if m.TargetTypePattern.MatchString(ancestor.FullyQualifiedName) {
			return true
		}
	}
	return false
}

// MatchesName reports whether name is accepted by m's method-name
// glob. When the signature opted into case-insensitive matching
// (Signature.CaseInsensitive), name is folded with the same
// Unicode-aware caser CompileSignature folded the pattern with, so
// e.g. a Turkish "İ" and an ASCII "i" compare equal the way a plain
// strings.ToLower would not guarantee.
func (m *Matcher) MatchesName(name string) bool {
	if m.Signature.CaseInsensitive {
		name = foldCaser.String(name)
	}
	return m.MethodNamePattern.MatchString(name)
}

// MatchesArgs reports whether args, read left to right, is accepted by
// m's argument pattern. A nil element (an unresolved parameter type)
// never matches, since the pattern compares against a fully qualified
// name there's nothing resolved to compare.
func (m *Matcher) MatchesArgs(args []javatype.Type) bool {
	names := make([]string, len(args))
	for i, a := range args {
		if a == nil {
			return false
		}
		names[i] = argTypeName(a)
	}
	return m.ArgumentPattern.MatchString(strings.Join(names, ","))
}

// argTypeName renders a resolved argument type the way the argument
// pattern expects to see it: arrays as "ElementType[]" repeated per
// dimension, everything else via its own String().
func argTypeName(t javatype.Type) string {
	if arr, ok := t.(*javatype.Array); ok {
		return argTypeName(arr.ElementType) + "[]"
	}
	return t.String()
}

// MatchesInvocation implements tree.InvocationMatcher: a single
// invocation matches only when its declaring type, method name and
// argument types all satisfy their respective patterns.
func (m *Matcher) MatchesInvocation(decl *javatype.Class, name string, args []javatype.Type) bool {
	return m.MatchesTargetType(decl) && m.MatchesName(name) && m.MatchesArgs(args)
}
