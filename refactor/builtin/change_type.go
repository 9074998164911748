package builtin

import (
	"strings"

	"github.com/dhamidi/javarefactor/javatype"
	"github.com/dhamidi/javarefactor/jerrors"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/dhamidi/javarefactor/visit"
)

// ChangeType rewrites every reference resolved to type from into to,
// preserving each reference's own qualification style (a simple name
// stays simple, spelled as to's simple name; a qualified name is
// rewritten in full), and keeps the import list consistent: from's
// named import is dropped and to's is added.
//
// A node whose simple name matches from's but whose Type never got
// resolved is left untouched rather than guessed at — it is reported
// as an UnresolvedSymbol warning instead, since rewriting it on a
// name match alone risks renaming an unrelated identifier that merely
// shadows from's simple name.
func ChangeType(from, to string) *visit.Visitor {
	changed := false
	fromSimple := simpleName(from)
	rewrite := func(c *visit.Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
		if n.Type == nil {
			if simpleName(n.Text) == fromSimple {
				c.Warn(&jerrors.UnresolvedSymbol{NodeID: n.ID(), What: n.Text})
			}
			return nil, nil
		}
		if n.Type.String() != from {
			return nil, nil
		}
		changed = true
		replacement := n.Clone()
		replacement.Type = javatype.Build(to)
		if strings.Contains(n.Text, ".") {
			replacement.Text = to
		} else {
			replacement.Text = simpleName(to)
		}
		return replacement, nil
	}

	v := visit.NewVisitor("change-type")
	v.On(tree.KindIdentifier, rewrite)
	v.On(tree.KindFieldAccess, rewrite)
	v.On(tree.KindCompilationUnit, func(c *visit.Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
		if !changed {
			return nil, nil
		}
		var fixes []tree.Fix
		fixes = append(fixes, RemoveImport(n, from)...)
		fixes = append(fixes, AddImport(n, to)...)
		return nil, fixes
	})
	return v
}

func simpleName(fqn string) string {
	if i := strings.LastIndex(fqn, "."); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}
