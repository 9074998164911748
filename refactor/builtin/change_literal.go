package builtin

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/javarefactor/javatype"
	"github.com/dhamidi/javarefactor/tree"
	"github.com/dhamidi/javarefactor/visit"
)

// ChangeLiteral applies transform to every literal's value within
// scope's subtree and rewrites its source text to match, reattaching
// the type-appropriate numeric suffix and quoting. A literal whose
// transformed value equals its original value, or whose PrimitiveTag
// renderLiteral doesn't know how to render, is left untouched.
func ChangeLiteral(scope *tree.Node, transform func(value interface{}) interface{}) *visit.Visitor {
	v := visit.NewVisitor("change-literal").On(tree.KindLiteral, func(c *visit.Cursor, n *tree.Node) (*tree.Node, []tree.Fix) {
		if !c.IsScopeInCursorPath(scope.ID()) {
			return nil, nil
		}
		transformed := transform(n.Value)
		if transformed == n.Value {
			return nil, nil
		}
		text, ok := renderLiteral(n.PrimitiveTag, transformed)
		if !ok {
			return nil, nil
		}
		return nil, []tree.Fix{tree.Replace(n.Range, text)}
	})
	return v
}

// renderLiteral formats value as Java source text for a literal tagged
// tag, following the per-tag table in ChangeLiteral.java.
func renderLiteral(tag javatype.PrimitiveTag, value interface{}) (string, bool) {
	switch tag {
	case javatype.Boolean, javatype.Byte, javatype.Int, javatype.Short, javatype.Void:
		return fmt.Sprint(value), true
	case javatype.Char:
		return formatCharLiteral(value), true
	case javatype.Double:
		return fmt.Sprint(value) + "d", true
	case javatype.Float:
		return fmt.Sprint(value) + "f", true
	case javatype.Long:
		return fmt.Sprint(value) + "L", true
	case javatype.String:
		return strconv.Quote(fmt.Sprint(value)), true
	case javatype.Wildcard:
		return "*", true
	case javatype.Null:
		return "null", true
	case javatype.None:
		return "", true
	}
	return "", false
}

// formatCharLiteral quotes value as a Java character literal.
// strconv.QuoteRune's escaping happens to already diverge from
// Java's only where Java's own rules do — '"' and '/' print bare
// inside single quotes in both — so no special-casing is needed here.
func formatCharLiteral(value interface{}) string {
	var r rune
	switch v := value.(type) {
	case int32: // rune is an alias for int32
		r = v
	case byte:
		r = rune(v)
	case string:
		for _, c := range v {
			r = c
			break
		}
	}
	return strconv.QuoteRune(r)
}
