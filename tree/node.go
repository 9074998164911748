package tree

import (
	"sync/atomic"

	"github.com/dhamidi/javarefactor/javatype"
)

// FormattingKind selects which of the three formatting variants a
// Node carries.
type FormattingKind int

const (
	// FormattingInfer means the node has no verbatim whitespace on
	// record (it was synthesized by a refactor) and must have its
	// prefix/suffix computed on reify, see print.go.
	FormattingInfer FormattingKind = iota
	// FormattingReified carries the verbatim prefix/suffix captured
	// from the original source at parse time.
	FormattingReified
	// FormattingNone means the node contributes no whitespace of its
	// own (e.g. a synthetic wrapper node with no token of its own).
	FormattingNone
)

// Formatting is the whitespace/comment envelope around a node's own
// tokens.
type Formatting struct {
	Kind   FormattingKind
	Prefix string
	Suffix string
}

// Infer builds the zero-information formatting variant used for
// freshly synthesized nodes; print.go reifies it lazily before
// printing.
func Infer() Formatting { return Formatting{Kind: FormattingInfer} }

// Reified builds a formatting value carrying verbatim prefix/suffix
// text captured from the original source.
func Reified(prefix, suffix string) Formatting {
	return Formatting{Kind: FormattingReified, Prefix: prefix, Suffix: suffix}
}

// NoFormatting builds the variant for nodes that own no whitespace.
func NoFormatting() Formatting { return Formatting{Kind: FormattingNone} }

// Range is a half-open span of source offsets, [Start, End).
type Range struct {
	Start int
	End   int
}

func (r Range) Len() int { return r.End - r.Start }

var nextNodeID int64

// nextID assigns a monotonically increasing id, independent of
// structural equality. Using an atomic counter rather than a per-tree
// counter keeps ids stable and globally unique across parses running
// in different goroutines, which matters once a caller starts
// resolving types concurrently across files.
func nextID() int64 {
	return atomic.AddInt64(&nextNodeID, 1)
}

// Node is an immutable value node in the lossless tree. Nodes are
// produced by the (external) parser or by refactor transformations;
// once constructed a Node and its Children are never mutated in
// place — transformations build new Nodes and unchanged subtrees are
// shared by identity.
type Node struct {
	id int64

	Kind       Kind
	Formatting Formatting

	// Range is the exact source span this node occupied in the
	// original input, set by the parser for every parsed node. A zero
	// Range ({0,0}) marks a node synthesized by a refactor with no
	// corresponding original source span; the visitor framework uses
	// this to decide whether a node replacement can be expressed as a
	// single localized Fix (see visit.Apply).
	Range Range

	// Text carries the node's own token text: an identifier's name, a
	// literal's source form (e.g. "3L" or "\"hi\""), a package/import
	// qualified name, or a punctuation token for nodes that are
	// otherwise childless.
	Text string

	// Value carries a literal's semantic value (string, rune, int64,
	// float64, bool, or nil) for Literal nodes; ignored otherwise.
	Value interface{}

	// PrimitiveTag records the literal type tag for a Literal node;
	// ChangeLiteral picks a rewritten value's source form by it.
	PrimitiveTag javatype.PrimitiveTag

	// Type is the resolved type of an expression or type-bearing
	// node, or nil if type resolution didn't cover this node (see
	// jerrors.UnresolvedSymbol).
	Type javatype.Type

	// Operator is populated for Binary, Unary and CompoundAssign nodes.
	Operator Operator

	// IsPostfix distinguishes x++ from ++x on a Unary node.
	IsPostfix bool

	// ClassKind distinguishes class/interface/enum/annotation/record
	// for a ClassDecl node.
	ClassKind ClassKind

	// Modifiers holds the modifier keywords of a declaration, in
	// source order.
	Modifiers []Modifier

	// Children holds every child node, in source (traversal) order.
	Children []*Node
}

// New constructs a Node of the given kind with default (Infer)
// formatting and assigns it a fresh id.
func New(kind Kind) *Node {
	return &Node{id: nextID(), Kind: kind, Formatting: Infer()}
}

// ID returns the node's stable identity, independent of structural
// equality.
func (n *Node) ID() int64 { return n.id }

// Clone returns a shallow copy of n with a freshly assigned id and
// the same Children slice header (not deep-copied); refactors that
// need to replace a child should build a new Children slice rather
// than mutate the clone's.
func (n *Node) Clone() *Node {
	c := *n
	c.id = nextID()
	return &c
}

// WithChildren returns a copy of n with Children replaced. Used by
// the visitor framework's post-order reassembly to build a parent's
// replacement once its children have already been transformed.
func (n *Node) WithChildren(children []*Node) *Node {
	c := n.Clone()
	c.Children = children
	return c
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

// FirstChildOfKind returns the first direct child with the given
// kind, or nil.
func (n *Node) FirstChildOfKind(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOfKind returns every direct child with the given kind, in
// order.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// FixKind is the closed set of textual edits a visitor can emit.
type FixKind int

const (
	FixDelete FixKind = iota
	FixReplace
	FixInsert
)

// Fix is a single localized textual edit over source offsets.
// Insert fixes use Range.Start == Range.End as the insertion point.
type Fix struct {
	Kind  FixKind
	Range Range
	Text  string
}

func Delete(r Range) Fix { return Fix{Kind: FixDelete, Range: r} }
func Replace(r Range, text string) Fix {
	return Fix{Kind: FixReplace, Range: r, Text: text}
}
func Insert(pos int, text string) Fix {
	return Fix{Kind: FixInsert, Range: Range{Start: pos, End: pos}, Text: text}
}
