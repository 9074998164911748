package visit

import (
	"sort"

	"github.com/dhamidi/javarefactor/tree"
)

// Hook is called once per node of a given kind, post-order: by the
// time it runs, the node's own children have already been
// transformed and reassembled into the node passed in. A hook may
// return (nil, fixes) to leave the node itself untouched while still
// emitting fixes localized to some part of it (e.g. a single literal
// inside a larger expression), or (replacement, fixes) to swap the
// node itself for a new node of the same kind — the framework derives
// the textual Fix for that swap automatically from the original
// node's Range.
type Hook func(c *Cursor, n *tree.Node) (replacement *tree.Node, fixes []tree.Fix)

// Visitor is a struct of per-kind hooks rather than an interface with
// one override per call site. Kinds with no registered hook simply
// recurse.
type Visitor struct {
	Name  string
	Hooks map[tree.Kind]Hook
}

// NewVisitor builds an empty Visitor; callers populate Hooks directly.
func NewVisitor(name string) *Visitor {
	return &Visitor{Name: name, Hooks: make(map[tree.Kind]Hook)}
}

// On registers a hook for kind, returning the visitor for chaining.
func (v *Visitor) On(kind tree.Kind, h Hook) *Visitor {
	v.Hooks[kind] = h
	return v
}

// Apply runs v over the tree rooted at root and returns the
// (possibly) transformed tree together with every fix emitted during
// the traversal, sorted by start offset, plus any warnings hooks
// recorded via Cursor.Warn along the way. Apply does not itself
// enforce non-overlap; callers needing the ConflictingFixes check
// should go through refactor.Transaction.
func Apply(v *Visitor, root *tree.Node) (*tree.Node, []tree.Fix, []error) {
	cursor := newCursor()
	result, fixes := apply(v, cursor, root)
	sort.SliceStable(fixes, func(i, j int) bool { return fixes[i].Range.Start < fixes[j].Range.Start })
	return result, fixes, cursor.Warnings()
}

func apply(v *Visitor, c *Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
	if n == nil {
		return nil, nil
	}

	c.push(n)

	var fixes []tree.Fix
	newChildren := make([]*tree.Node, len(n.Children))
	changed := false
	for i, child := range n.Children {
		nc, cfixes := apply(v, c, child)
		fixes = append(fixes, cfixes...)
		if nc != child {
			changed = true
		}
		newChildren[i] = nc
	}

	result := n
	if changed {
		result = n.WithChildren(newChildren)
	}

	var replacement *tree.Node
	if hook, ok := v.Hooks[n.Kind]; ok {
		var hookFixes []tree.Fix
		replacement, hookFixes = hook(c, result)
		fixes = append(fixes, hookFixes...)
	}

	c.pop()

	if replacement != nil && replacement != result {
		if fix, ok := autoFix(n, replacement); ok {
			fixes = append(fixes, fix)
		}
		result = replacement
	}

	return result, fixes
}

// autoFix derives a Replace fix covering original's exact source
// range when original carries one (i.e. it came from parsed source,
// not from a prior synthesis step within the same pass). Nodes with a
// zero Range were themselves just inserted and have nothing of their
// own to replace textually; the fix for their introduction is the
// responsibility of whatever hook inserted them (typically an Insert
// fix anchored at a sibling's position).
func autoFix(original, replacement *tree.Node) (tree.Fix, bool) {
	if original.Range == (tree.Range{}) {
		return tree.Fix{}, false
	}
	return tree.Replace(original.Range, tree.Print(replacement)), true
}

// Scoped wraps a Visitor so every hook is a no-op outside the subtree
// rooted at the node with id anchorID.
func Scoped(anchorID int64, inner *Visitor) *Visitor {
	scoped := NewVisitor(inner.Name)
	for kind, hook := range inner.Hooks {
		hook := hook
		scoped.Hooks[kind] = func(c *Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
			if !c.IsScopeInCursorPath(anchorID) {
				return nil, nil
			}
			return hook(c, n)
		}
	}
	return scoped
}

// Fold builds one scoped Visitor per anchor id by invoking factory for
// each, so a single refactor invocation can fold a visitor constructor
// over a list of scope-anchor ids.
func Fold(anchorIDs []int64, factory func(anchorID int64) *Visitor) []*Visitor {
	visitors := make([]*Visitor, len(anchorIDs))
	for i, id := range anchorIDs {
		visitors[i] = Scoped(id, factory(id))
	}
	return visitors
}
