// Package visit implements the depth-first, cursor-aware visitor
// framework that refactors are built on. A Visitor is a struct of
// per-kind hook functions — not an interface with one override per
// call site — so a refactor only has to populate the hooks it
// actually cares about; every other kind falls through to the
// framework's default post-order recursion.
package visit

import "github.com/dhamidi/javarefactor/tree"

// Cursor is the live ancestor stack the framework maintains during
// traversal. Hooks receive a *Cursor rather than reaching for
// call-stack state, so the ancestry is explicit and push/pop is
// guaranteed correct under early return.
type Cursor struct {
	stack    []*tree.Node
	warnings []error
}

func newCursor() *Cursor { return &Cursor{} }

func (c *Cursor) push(n *tree.Node) { c.stack = append(c.stack, n) }

func (c *Cursor) pop() { c.stack = c.stack[:len(c.stack)-1] }

// Node returns the node currently being visited (the top of the
// stack).
func (c *Cursor) Node() *tree.Node {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// Parent returns the direct parent of the node currently being
// visited, or nil at the root.
func (c *Cursor) Parent() *tree.Node {
	if len(c.stack) < 2 {
		return nil
	}
	return c.stack[len(c.stack)-2]
}

// Path returns the full ancestor chain, root first, current node last.
// The returned slice must not be retained across calls: it aliases
// the cursor's internal stack.
func (c *Cursor) Path() []*tree.Node {
	return c.stack
}

// IsScopeInCursorPath reports whether the node with the given id is
// currently on the ancestor stack (inclusive of the node being
// visited). Used by Scoped to gate its hooks to a subtree
// anchored at a specific node.
func (c *Cursor) IsScopeInCursorPath(anchorID int64) bool {
	for _, n := range c.stack {
		if n.ID() == anchorID {
			return true
		}
	}
	return false
}

// EnclosingOfKind returns the nearest ancestor (including the current
// node) with the given kind, or nil.
func (c *Cursor) EnclosingOfKind(kind tree.Kind) *tree.Node {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].Kind == kind {
			return c.stack[i]
		}
	}
	return nil
}

// Warn records a non-fatal problem hit while visiting the current
// node (e.g. a reference a hook can't resolve confidently enough to
// rewrite). It does not stop the traversal; the caller of Apply
// collects everything recorded this way once the pass finishes.
func (c *Cursor) Warn(err error) {
	if err != nil {
		c.warnings = append(c.warnings, err)
	}
}

// Warnings returns everything recorded via Warn during the traversal
// so far.
func (c *Cursor) Warnings() []error {
	return c.warnings
}
