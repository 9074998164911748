// Package tree implements the lossless Java AST: a closed set of node
// kinds, each carrying the formatting (surrounding whitespace and
// comments) needed to reprint the original source byte-for-byte
// outside of whatever a refactor actually touched.
package tree

// Kind enumerates the closed set of node kinds mirroring the Java
// grammar. Operators are not represented as Kind
// values; they are tagged variants carried on Binary/Unary/CompoundAssign
// nodes (see Operator in token.go) so each operator occurrence can
// carry its own formatting, e.g. the whitespace between the two '>'
// tokens that make up '>>' in a generic type argument list.
type Kind int

const (
	KindInvalid Kind = iota

	KindCompilationUnit
	KindPackage
	KindImport

	KindClassDecl
	KindMethodDecl
	KindVariableDecls
	KindNamedVariable // one name + optional initializer within a VariableDecls

	KindBlock
	KindAnnotation

	KindArrayAccess
	KindArrayType
	KindAssign
	KindCompoundAssign
	KindBinary
	KindBreak
	KindCase
	KindCatch
	KindContinue
	KindDoWhile
	KindEmpty
	KindEnumValue
	KindFieldAccess
	KindForEachLoop
	KindForLoop
	KindIdentifier
	KindIf
	KindInstanceOf
	KindLabel
	KindLambda
	KindLiteral
	KindMethodInvocation
	KindMultiCatch
	KindNewArray
	KindNewClass
	KindParameterizedType
	KindParentheses
	KindPrimitive
	KindReturn
	KindSwitch
	KindSynchronized
	KindTernary
	KindThrow
	KindTry
	KindTypeCast
	KindTypeParameter
	KindTypeParameters
	KindUnary
	KindWhile
	KindWildcard
)

var kindNames = map[Kind]string{
	KindInvalid:           "Invalid",
	KindCompilationUnit:   "CompilationUnit",
	KindPackage:           "Package",
	KindImport:            "Import",
	KindClassDecl:         "ClassDecl",
	KindMethodDecl:        "MethodDecl",
	KindVariableDecls:     "VariableDecls",
	KindNamedVariable:     "NamedVariable",
	KindBlock:             "Block",
	KindAnnotation:        "Annotation",
	KindArrayAccess:       "ArrayAccess",
	KindArrayType:         "ArrayType",
	KindAssign:            "Assign",
	KindCompoundAssign:    "CompoundAssign",
	KindBinary:            "Binary",
	KindBreak:             "Break",
	KindCase:              "Case",
	KindCatch:             "Catch",
	KindContinue:          "Continue",
	KindDoWhile:           "DoWhile",
	KindEmpty:             "Empty",
	KindEnumValue:         "EnumValue",
	KindFieldAccess:       "FieldAccess",
	KindForEachLoop:       "ForEachLoop",
	KindForLoop:           "ForLoop",
	KindIdentifier:        "Identifier",
	KindIf:                "If",
	KindInstanceOf:        "InstanceOf",
	KindLabel:             "Label",
	KindLambda:            "Lambda",
	KindLiteral:           "Literal",
	KindMethodInvocation:  "MethodInvocation",
	KindMultiCatch:        "MultiCatch",
	KindNewArray:          "NewArray",
	KindNewClass:          "NewClass",
	KindParameterizedType: "ParameterizedType",
	KindParentheses:       "Parentheses",
	KindPrimitive:         "Primitive",
	KindReturn:            "Return",
	KindSwitch:            "Switch",
	KindSynchronized:      "Synchronized",
	KindTernary:           "Ternary",
	KindThrow:             "Throw",
	KindTry:               "Try",
	KindTypeCast:          "TypeCast",
	KindTypeParameter:     "TypeParameter",
	KindTypeParameters:    "TypeParameters",
	KindUnary:             "Unary",
	KindWhile:             "While",
	KindWildcard:          "Wildcard",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ClassKind distinguishes the five declaration shapes a ClassDecl
// node may have.
type ClassKind int

const (
	ClassKindClass ClassKind = iota
	ClassKindInterface
	ClassKindEnum
	ClassKindAnnotation
	ClassKindRecord
)

var classKindNames = map[ClassKind]string{
	ClassKindClass:      "class",
	ClassKindInterface:  "interface",
	ClassKindEnum:       "enum",
	ClassKindAnnotation: "@interface",
	ClassKindRecord:     "record",
}

func (k ClassKind) String() string {
	if name, ok := classKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Modifier is a single Java modifier keyword attached to a
// declaration. Kept as a closed set of strings rather than bit flags
// so that each modifier instance can, in principle, carry its own
// formatting the same way operators do; in this implementation
// modifiers are kept simple (order-preserving, no individual
// formatting), since no caller has needed per-modifier whitespace
// preserved yet.
type Modifier string

const (
	ModifierPublic       Modifier = "public"
	ModifierProtected    Modifier = "protected"
	ModifierPrivate      Modifier = "private"
	ModifierStatic       Modifier = "static"
	ModifierFinal        Modifier = "final"
	ModifierAbstract     Modifier = "abstract"
	ModifierSynchronized Modifier = "synchronized"
	ModifierNative       Modifier = "native"
	ModifierTransient    Modifier = "transient"
	ModifierVolatile     Modifier = "volatile"
	ModifierStrictfp     Modifier = "strictfp"
	ModifierDefault      Modifier = "default"
)
