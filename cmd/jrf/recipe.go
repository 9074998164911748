package main

import (
	"fmt"

	"github.com/dhamidi/javarefactor/config"
	"github.com/dhamidi/javarefactor/matcher"
	"github.com/dhamidi/javarefactor/refactor"
	"github.com/dhamidi/javarefactor/refactor/builtin"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/dhamidi/javarefactor/visit"
)

// runRecipe stages the visitors recipe describes against snapshot and
// runs them, producing a rendered patch and transformed tree — the
// CLI's path from config.Recipe (a refactor name plus its signature
// and args) to a refactor.Result. jrf find/match expose the read-only
// half of this (matcher+tree.FindMethodCalls); apply/diff/watch/pr
// all share this function for the writing half.
func runRecipe(recipe *config.Recipe, snap *tree.Snapshot) (*refactor.Result, error) {
	visitors, err := buildVisitors(recipe, snap.CU)
	if err != nil {
		return nil, err
	}

	txn := refactor.New(snap.Source, snap.CU)
	for _, v := range visitors {
		txn.Visit(v)
	}
	return txn.Fix()
}

func buildVisitors(recipe *config.Recipe, cu *tree.Node) ([]*visit.Visitor, error) {
	switch recipe.Refactor {
	case "changeMethodName":
		return changeMethodNameVisitors(recipe, cu)
	case "changeType":
		from, to := recipe.Args["from"], recipe.Args["to"]
		if from == "" || to == "" {
			return nil, fmt.Errorf("recipe %q: changeType needs args.from and args.to", recipe.Name)
		}
		return []*visit.Visitor{builtin.ChangeType(from, to)}, nil
	case "changeLiteral":
		from, to := recipe.Args["from"], recipe.Args["to"]
		if from == "" || to == "" {
			return nil, fmt.Errorf("recipe %q: changeLiteral needs args.from and args.to", recipe.Name)
		}
		transform := func(value interface{}) interface{} {
			if fmt.Sprint(value) != from {
				return value
			}
			return to
		}
		return []*visit.Visitor{builtin.ChangeLiteral(cu, transform)}, nil
	case "addImport":
		clazz := recipe.Args["class"]
		if clazz == "" {
			return nil, fmt.Errorf("recipe %q: addImport needs args.class", recipe.Name)
		}
		return []*visit.Visitor{fixesAsVisitor("add-import", func(cu *tree.Node) []tree.Fix {
			return builtin.AddImport(cu, clazz)
		})}, nil
	case "removeImport":
		clazz := recipe.Args["class"]
		if clazz == "" {
			return nil, fmt.Errorf("recipe %q: removeImport needs args.class", recipe.Name)
		}
		return []*visit.Visitor{fixesAsVisitor("remove-import", func(cu *tree.Node) []tree.Fix {
			return builtin.RemoveImport(cu, clazz)
		})}, nil
	default:
		return nil, fmt.Errorf("recipe %q: unknown refactor %q", recipe.Name, recipe.Refactor)
	}
}

// changeMethodNameVisitors compiles recipe.Signature and stages one
// ChangeMethodName per matching invocation, since builtin.ChangeMethodName
// is anchored to a single invocation node rather than a whole tree.
func changeMethodNameVisitors(recipe *config.Recipe, cu *tree.Node) ([]*visit.Visitor, error) {
	newName := recipe.Args["newName"]
	if newName == "" {
		return nil, fmt.Errorf("recipe %q: changeMethodName needs args.newName", recipe.Name)
	}
	if recipe.Signature == "" {
		return nil, fmt.Errorf("recipe %q: changeMethodName needs a signature", recipe.Name)
	}
	m, err := matcher.Compile(recipe.Signature)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", recipe.Name, err)
	}

	var visitors []*visit.Visitor
	for _, inv := range tree.FindMethodCalls(cu, m) {
		visitors = append(visitors, builtin.ChangeMethodName(inv, newName))
	}
	return visitors, nil
}

// fixesAsVisitor wraps a whole-compilation-unit fix function (the
// shape AddImport/RemoveImport return) as a one-shot visitor, so it
// stages through refactor.Transaction like every other recipe.
func fixesAsVisitor(name string, fn func(cu *tree.Node) []tree.Fix) *visit.Visitor {
	return visit.NewVisitor(name).On(tree.KindCompilationUnit, func(c *visit.Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
		return nil, fn(n)
	})
}
