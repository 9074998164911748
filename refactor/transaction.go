// Package refactor implements the staged refactor pipeline: a
// Transaction collects one or more visitors, runs them over a
// compilation unit in staging order, merges their fixes, and renders
// a patch.
package refactor

import (
	"sort"

	"github.com/google/uuid"

	"github.com/dhamidi/javarefactor/jerrors"
	"github.com/dhamidi/javarefactor/patch"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/dhamidi/javarefactor/visit"
)

// stage is one unit of staged work: either a plain visitor, or a
// visitor factory folded over a list of scope-anchor ids.
type stage struct {
	visitor *visit.Visitor
	folded  []*visit.Visitor
}

// Transaction stages visitors against one compilation unit and, on
// Fix, applies them in staging order to produce a new tree and patch.
// A Transaction.ID is assigned at construction so callers (the CLI,
// an embedder's audit log) can correlate a rendered patch back to the
// run that produced it, independent of any node's id.
type Transaction struct {
	ID     string
	Source string
	CU     *tree.Node

	stages   []stage
	warnings []error
}

// New creates a transaction scoped to cu, whose printed form must
// equal source (the caller's already-parsed original text); Fix uses
// source as the base text fixes are rendered against.
func New(source string, cu *tree.Node) *Transaction {
	return &Transaction{ID: uuid.NewString(), Source: source, CU: cu}
}

// Visit stages a transforming visitor.
func (t *Transaction) Visit(v *visit.Visitor) *Transaction {
	t.stages = append(t.stages, stage{visitor: v})
	return t
}

// Fold stages one scoped visitor per anchor id, built from factory.
func (t *Transaction) Fold(anchorIDs []int64, factory func(anchorID int64) *visit.Visitor) *Transaction {
	t.stages = append(t.stages, stage{folded: visit.Fold(anchorIDs, factory)})
	return t
}

// Result is what Fix returns: the transformed tree, the rendered
// patch, whether anything actually changed, and any non-fatal
// warnings collected along the way (nodes a visitor chose to skip
// rather than rewrite, e.g. an unresolved reference).
type Result struct {
	Fixed    *tree.Node
	Patch    *patch.Patch
	Changed  bool
	Warnings []error
}

// Fix runs every staged visitor in order, applying each pass's fixes
// to the current tree before the next pass runs, so later passes see
// earlier output. Fix is referentially transparent for a given input
// tree and staging order.
//
// Node Ranges are preserved across Clone/WithChildren (see
// tree.Node.Clone), so a later pass's fixes remain expressed in terms
// of the same original source offsets as an earlier pass's, even
// though the tree those fixes were derived from has already been
// transformed once. This lets Fix collect every pass's fixes into one
// combined, non-overlapping set and apply them against the original
// source exactly once, rather than re-parsing intermediate text.
func (t *Transaction) Fix() (*Result, error) {
	currentTree := t.CU
	var allFixes []tree.Fix

	for _, st := range t.stages {
		if st.visitor != nil {
			newTree, fixes, warnings := visit.Apply(st.visitor, currentTree)
			currentTree = newTree
			allFixes = append(allFixes, fixes...)
			for _, w := range warnings {
				t.warn(w)
			}
		} else {
			for _, v := range st.folded {
				newTree, fixes, warnings := visit.Apply(v, currentTree)
				currentTree = newTree
				allFixes = append(allFixes, fixes...)
				for _, w := range warnings {
					t.warn(w)
				}
			}
		}
	}

	if len(allFixes) == 0 {
		return &Result{Fixed: currentTree, Patch: &patch.Patch{}, Changed: false, Warnings: t.warnings}, nil
	}

	sorted, err := mergeFixes(allFixes)
	if err != nil {
		return nil, err
	}

	p, err := patch.FromFixes(t.Source, sorted)
	if err != nil {
		return nil, err
	}

	return &Result{
		Fixed:    currentTree,
		Patch:    p,
		Changed:  true,
		Warnings: t.warnings,
	}, nil
}

// warn records a non-fatal per-node error to be attached to the
// eventual Result rather than aborting the transaction.
func (t *Transaction) warn(err error) {
	if err != nil {
		t.warnings = append(t.warnings, err)
	}
}

// mergeFixes sorts fixes by start offset and rejects any overlap
// among them; Fix calls it once on every pass's fixes combined.
func mergeFixes(fixes []tree.Fix) ([]tree.Fix, error) {
	sorted := make([]tree.Fix, len(fixes))
	copy(sorted, fixes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Range.Start < sorted[j].Range.Start })

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if cur.Range.Start < prev.Range.End {
			return nil, &jerrors.ConflictingFixes{
				First:  jerrors.Range{Start: prev.Range.Start, End: prev.Range.End},
				Second: jerrors.Range{Start: cur.Range.Start, End: cur.Range.End},
			}
		}
	}
	return sorted, nil
}
