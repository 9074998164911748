package main

import (
	"fmt"

	"github.com/dhamidi/javarefactor/matcher"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/spf13/cobra"
)

func newFindCmd() *cobra.Command {
	var input string
	var fieldOf string

	cmd := &cobra.Command{
		Use:   "find <signature-or-type>",
		Short: "List method invocations or fields matching a pattern",
		Long: `With no --field flag, find <signature> lists every method
invocation in the snapshot matching the AspectJ-style signature.

With --field <class-name>, find <type> lists fields of the resolved
type declared directly on the first class decl resolving to
<class-name> (simple or fully qualified), using the same resolved-type
matching findFields uses internally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := readSnapshot(input)
			if err != nil {
				return err
			}

			if fieldOf != "" {
				return runFindFields(snap.CU, fieldOf, args[0])
			}
			return runFindMethods(snap.CU, args[0])
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "snapshot JSON file (default: stdin)")
	cmd.Flags().StringVar(&fieldOf, "field", "", "class name to search fields on, instead of matching method invocations")

	return cmd
}

func runFindMethods(cu *tree.Node, signature string) error {
	m, err := matcher.Compile(signature)
	if err != nil {
		return err
	}
	for _, inv := range tree.FindMethodCalls(cu, m) {
		target := "?"
		if decl := inv.DeclaringType(); decl != nil {
			target = decl.String()
		}
		fmt.Printf("%d:%d %s.%s(...)\n", inv.Range.Start, inv.Range.End, target, inv.MethodName())
	}
	return nil
}

func runFindFields(cu *tree.Node, className, fqn string) error {
	decl := findClassDecl(cu, className)
	if decl == nil {
		return fmt.Errorf("no class declaration named %q in snapshot", className)
	}
	for _, field := range tree.FindFields(decl, fqn) {
		fmt.Printf("%d:%d %s\n", field.Range.Start, field.Range.End, field.Text)
	}
	return nil
}

// findClassDecl looks up a ClassDecl node by its resolved type's
// fully qualified or simple name.
func findClassDecl(cu *tree.Node, name string) *tree.Node {
	var found *tree.Node
	tree.Walk(cu, func(n *tree.Node) {
		if found != nil || n.Kind != tree.KindClassDecl || n.Type == nil {
			return
		}
		if full := n.Type.String(); full == name || simpleName(full) == name {
			found = n
		}
	})
	return found
}
