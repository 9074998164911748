package tree

import (
	"strings"
	"sync"
)

// Print renders n to its textual form. For a tree produced entirely
// by the (external) parser — every node's Formatting is Reified or
// None — Print is the identity over the original source: a lossless
// round-trip. For a tree containing synthesized subtrees (Formatting:
// Infer), Print first reifies them (see Reify) and then prints the
// contracted textual form over the replaced subtrees.
//
// The canonical token sequence for a node's kind is its Text field
// together with any Operator it carries; printing recursively
// interleaves children's printed forms by walking Children in order.
// Fixed structural punctuation that has no semantic child of its own
// (the parentheses around an if-condition, the comma between
// parameters, the braces of a block) is carried as Prefix/Suffix
// formatting on the nearest child or on the node itself — Formatting
// covers whitespace, comments, and punctuation alike.
func Print(n *Node) string {
	if n == nil {
		return ""
	}
	reified := Reify(n)
	var sb strings.Builder
	printTo(reified, &sb)
	return sb.String()
}

func printTo(n *Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	sb.WriteString(n.Formatting.Prefix)

	switch n.Kind {
	case KindBinary:
		printTo(n.Children[0], sb)
		writeOperator(sb, n.Operator)
		printTo(n.Children[1], sb)
	case KindCompoundAssign:
		printTo(n.Children[0], sb)
		sb.WriteString(n.Operator.Formatting.Prefix)
		sb.WriteString(n.Operator.Tag.Symbol())
		sb.WriteString("=")
		sb.WriteString(n.Operator.Formatting.Suffix)
		printTo(n.Children[1], sb)
	case KindUnary:
		if n.IsPostfix {
			printTo(n.Children[0], sb)
			writeOperator(sb, n.Operator)
		} else {
			writeOperator(sb, n.Operator)
			printTo(n.Children[0], sb)
		}
	case KindClassDecl:
		if n.Text != "" {
			sb.WriteString(n.Text)
		} else {
			// A synthesized ClassDecl (no verbatim header captured at
			// parse time) prints its declaration keyword from ClassKind.
			sb.WriteString(classKindNames[n.ClassKind])
		}
		for _, c := range n.Children {
			printTo(c, sb)
		}
	default:
		sb.WriteString(n.Text)
		for _, c := range n.Children {
			printTo(c, sb)
		}
	}

	sb.WriteString(n.Formatting.Suffix)
}

func writeOperator(sb *strings.Builder, op Operator) {
	sb.WriteString(op.Formatting.Prefix)
	sb.WriteString(op.Tag.Symbol())
	sb.WriteString(op.Formatting.Suffix)
}

var reifyCache sync.Map // map[int64]*Node

// Reify walks n bottom-up and replaces every Infer-formatted node
// with a Reified one, computed by copying the prefix/suffix style of
// the nearest sibling of matching Kind, falling back to a single
// leading space (or nothing, for the first child in a list). The
// result is memoized per node id so repeated prints of the same
// synthesized subtree don't repeat the sibling scan.
//
// n itself has no siblings in scope at the root of this call (its
// real siblings, if any, live in its parent's Children and are only
// visible to reifyChild, which this function delegates to for every
// child); an Infer-formatted n is therefore reified to a bare empty
// envelope, the root-of-subtree fallback for a node with no matching
// neighbor to copy from.
func Reify(n *Node) *Node {
	if n == nil {
		return nil
	}
	if cached, ok := reifyCache.Load(n.id); ok {
		return cached.(*Node)
	}

	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = reifyChild(c, n.Children, i)
	}

	out := n.WithChildren(children)
	out.id = n.id // preserve identity across reification: reifying is not a semantic replacement
	if n.Formatting.Kind == FormattingInfer {
		out.Formatting = Reified("", "")
	}

	reifyCache.Store(n.id, out)
	return out
}

// reifyChild reifies child, the node at index i within siblings (its
// parent's real Children slice), so that an Infer-formatted child can
// copy the prefix/suffix style of its nearest matching-Kind sibling —
// the sibling context Reify itself has no access to once recursion
// has moved past the parent frame.
func reifyChild(child *Node, siblings []*Node, i int) *Node {
	if child == nil {
		return nil
	}
	if cached, ok := reifyCache.Load(child.id); ok {
		return cached.(*Node)
	}

	grandchildren := make([]*Node, len(child.Children))
	for gi, gc := range child.Children {
		grandchildren[gi] = reifyChild(gc, child.Children, gi)
	}

	out := child.WithChildren(grandchildren)
	out.id = child.id
	if child.Formatting.Kind == FormattingInfer {
		out.Formatting = inferFormatting(siblings, i, child.Kind)
	}

	reifyCache.Store(child.id, out)
	return out
}

// inferFormatting computes a Reified formatting for the sibling at
// siblingIndex (or for the node itself, when siblingIndex < 0) by
// copying the nearest already-Reified sibling of the same kind,
// preferring the nearest preceding sibling and falling back to the
// nearest following one, and finally to a bare single space (an empty
// envelope for the first sibling).
func inferFormatting(siblings []*Node, siblingIndex int, kind Kind) Formatting {
	for i := siblingIndex - 1; i >= 0; i-- {
		if siblings[i].Kind == kind && siblings[i].Formatting.Kind == FormattingReified {
			return Reified(siblings[i].Formatting.Prefix, siblings[i].Formatting.Suffix)
		}
	}
	for i := siblingIndex + 1; i < len(siblings); i++ {
		if siblings[i].Kind == kind && siblings[i].Formatting.Kind == FormattingReified {
			return Reified(siblings[i].Formatting.Prefix, siblings[i].Formatting.Suffix)
		}
	}
	if siblingIndex <= 0 {
		return Reified("", "")
	}
	return Reified(" ", "")
}
