package builtin

import (
	"github.com/dhamidi/javarefactor/tree"
	"github.com/dhamidi/javarefactor/visit"
)

// ChangeMethodName replaces the method-name identifier of invocation
// with newName, leaving the target expression and every argument's
// text untouched.
func ChangeMethodName(invocation *tree.Node, newName string) *visit.Visitor {
	v := visit.NewVisitor("change-method-name").On(tree.KindMethodInvocation, func(c *visit.Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
		if n.ID() != invocation.ID() {
			return nil, nil
		}
		name := n.MethodNameNode()
		if name == nil {
			return nil, nil
		}
		return nil, []tree.Fix{tree.Replace(name.Range, newName)}
	})
	return v
}
