package tree

import (
	"encoding/json"
	"fmt"

	"github.com/dhamidi/javarefactor/javatype"
	"github.com/dhamidi/javarefactor/jerrors"
)

// Package tree's Node is produced by an external parser at runtime;
// this file defines the JSON interchange format a caller uses to hand
// an already-parsed compilation unit to this engine without linking
// against whatever parser produced it. cmd/jrf is the only caller: it
// reads a {"source": ..., "cu": ...} document from a file or stdin
// rather than parsing .java text itself.

// Snapshot is the on-disk/wire shape of one parsed compilation unit:
// the original text plus its tree, exactly what refactor.New needs.
type Snapshot struct {
	Source string `json:"source"`
	CU     *Node  `json:"cu"`
}

// nodeJSON mirrors Node but with Type narrowed to a tagged union JSON
// can round-trip, since javatype.Type is a sealed interface.
type nodeJSON struct {
	Kind         Kind        `json:"kind"`
	Formatting   Formatting  `json:"formatting"`
	Range        Range       `json:"range"`
	Text         string      `json:"text,omitempty"`
	Value        interface{} `json:"value,omitempty"`
	PrimitiveTag string      `json:"primitiveTag,omitempty"`
	Type         *typeJSON   `json:"type,omitempty"`
	Operator     Operator    `json:"operator,omitempty"`
	IsPostfix    bool        `json:"isPostfix,omitempty"`
	ClassKind    ClassKind   `json:"classKind,omitempty"`
	Modifiers    []Modifier  `json:"modifiers,omitempty"`
	Children     []*Node     `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler so a *Node (and its Children,
// recursively) encodes through nodeJSON's narrowed Type field. Node's
// own id is deliberately not part of the wire format: identity is
// assigned fresh by New/Clone on decode.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(nodeJSON{
		Kind:         n.Kind,
		Formatting:   n.Formatting,
		Range:        n.Range,
		Text:         n.Text,
		Value:        n.Value,
		PrimitiveTag: n.PrimitiveTag.String(),
		Type:         encodeType(n.Type),
		Operator:     n.Operator,
		IsPostfix:    n.IsPostfix,
		ClassKind:    n.ClassKind,
		Modifiers:    n.Modifiers,
		Children:     n.Children,
	})
}

// UnmarshalJSON implements json.Unmarshaler, assigning a fresh node id
// the way New does.
func (n *Node) UnmarshalJSON(data []byte) error {
	var aux nodeJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	n.id = nextID()
	n.Kind = aux.Kind
	n.Formatting = aux.Formatting
	n.Range = aux.Range
	n.Text = aux.Text
	n.Value = aux.Value
	n.PrimitiveTag = primitiveTagFromString(aux.PrimitiveTag)
	n.Type = decodeType(aux.Type)
	n.Operator = aux.Operator
	n.IsPostfix = aux.IsPostfix
	n.ClassKind = aux.ClassKind
	n.Modifiers = aux.Modifiers
	n.Children = aux.Children
	return nil
}

// typeJSON is a tagged union over the javatype.Type variants this
// codec round-trips: Class, Primitive and Array, which cover every
// type a parser would actually attach to a syntax node. Method, Var
// and GenericTypeVariable describe resolved symbols rather than
// syntax-node types and never appear here.
type typeJSON struct {
	Kind    string    `json:"kind"` // "class", "primitive", "array"
	Name    string    `json:"name,omitempty"`
	Tag     string    `json:"tag,omitempty"`
	Element *typeJSON `json:"element,omitempty"`
}

func encodeType(t javatype.Type) *typeJSON {
	switch v := t.(type) {
	case nil:
		return nil
	case *javatype.Class:
		return &typeJSON{Kind: "class", Name: v.FullyQualifiedName}
	case *javatype.Primitive:
		return &typeJSON{Kind: "primitive", Tag: v.Tag.String()}
	case *javatype.Array:
		return &typeJSON{Kind: "array", Element: encodeType(v.ElementType)}
	default:
		return nil
	}
}

func decodeType(j *typeJSON) javatype.Type {
	if j == nil {
		return nil
	}
	switch j.Kind {
	case "class":
		return javatype.Build(j.Name)
	case "primitive":
		return &javatype.Primitive{Tag: primitiveTagFromString(j.Tag)}
	case "array":
		return &javatype.Array{ElementType: decodeType(j.Element)}
	default:
		return nil
	}
}

var primitiveTagsByName = map[string]javatype.PrimitiveTag{
	"boolean": javatype.Boolean,
	"byte":    javatype.Byte,
	"char":    javatype.Char,
	"short":   javatype.Short,
	"int":     javatype.Int,
	"long":    javatype.Long,
	"float":   javatype.Float,
	"double":  javatype.Double,
	"void":    javatype.Void,
	"String":  javatype.String,
	"*":       javatype.Wildcard,
	"null":    javatype.Null,
	"":        javatype.None,
}

func primitiveTagFromString(s string) javatype.PrimitiveTag {
	if tag, ok := primitiveTagsByName[s]; ok {
		return tag
	}
	return javatype.None
}

// DecodeSnapshot parses a Snapshot from JSON, suitable for
// refactor.New(snapshot.Source, snapshot.CU). It also checks the
// print invariant the rest of this engine relies on: printing CU
// unchanged must reproduce Source exactly, since every downstream fix
// is computed as an offset into Source. A mismatch means whatever
// produced this snapshot disagrees with this package's Formatting
// model, not something a refactor can route around, so it is reported
// rather than silently producing fixes against the wrong offsets.
func DecodeSnapshot(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.CU == nil {
		return nil, fmt.Errorf("decode snapshot: missing \"cu\"")
	}
	if got := Print(snap.CU); got != snap.Source {
		return nil, &jerrors.PrintInvariantViolation{NodeID: snap.CU.ID(), Got: got, Want: snap.Source}
	}
	return &snap, nil
}
