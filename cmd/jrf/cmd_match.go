package main

import (
	"fmt"

	"github.com/dhamidi/javarefactor/matcher"
	"github.com/spf13/cobra"
)

func newMatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match <signature>",
		Short: "Compile an AspectJ-style method signature and print its pieces",
		Long: `Compile a signature string (e.g. "com.acme.*Service +*(int, ..)")
without matching it against any compilation unit, reporting the
target-type, method-name and argument regular expressions it compiles
to, or the parse error if it doesn't.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := matcher.Compile(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("target: %s\n", m.TargetTypePattern)
			fmt.Printf("name:   %s\n", m.MethodNamePattern)
			fmt.Printf("args:   %s\n", m.ArgumentPattern)
			return nil
		},
	}
	return cmd
}
