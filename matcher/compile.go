package matcher

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/dhamidi/javarefactor/jerrors"
)

// foldCaser folds a name pattern and a candidate method name to the
// same Unicode-aware case form before comparison, rather than relying
// on ASCII-only case folding, for Signature.CaseInsensitive matching.
var foldCaser = cases.Fold()

// translateTypePattern turns a typePattern (dot-separated segments of
// identifiers, "*" or "..") into a regex fragment matching a fully
// qualified name, following this translation table:
//
//	".."       -> zero or more whole package segments, dots included
//	"*"        -> exactly one segment, any characters but '.'
//	identifier -> that literal segment
//
// A ".." dotSeg is written with no separator dots of its own around
// it (e.g. "com.foo..Bar" has exactly two dots between "foo" and
// "Bar"), so splitting the pattern on "." yields an empty string at
// that position rather than the literal text "..": that empty
// element is what this function treats as the wildcard. At the start
// or end of the pattern the split yields two adjacent empty elements,
// which count as a single wildcard.
//
// The returned fragment is NOT anchored; callers anchor with ^...$.
func translateTypePattern(pattern string) string {
	segs := strings.Split(pattern, ".")
	parts := make([]string, len(segs))
	isDotDot := make([]bool, len(segs))
	for i, seg := range segs {
		switch seg {
		case "":
			parts[i] = `(\.[^.]+)*`
			isDotDot[i] = true
		case "*":
			parts[i] = `[^.]+`
		default:
			parts[i] = regexp.QuoteMeta(seg)
		}
	}

	var sb strings.Builder
	wroteSeg := false
	for i, p := range parts {
		if isDotDot[i] {
			if i > 0 && isDotDot[i-1] {
				continue
			}
			if !wroteSeg {
				p = `([^.]+\.)*` // leading "..": each segment carries its trailing dot
			}
		} else {
			if wroteSeg {
				sb.WriteString(`\.`)
			}
			wroteSeg = true
		}
		sb.WriteString(p)
	}
	if !wroteSeg {
		return `.*` // the pattern is ".." alone
	}
	return sb.String()
}

// translateNamePattern turns a method-name glob (identifier characters
// plus optional '*' wildcards) into a regex fragment. Unlike
// typePattern, there is no dot structure to preserve: every literal
// run is escaped and every '*' becomes ".*".
func translateNamePattern(pattern string) string {
	chunks := strings.Split(pattern, "*")
	for i, c := range chunks {
		chunks[i] = regexp.QuoteMeta(c)
	}
	return strings.Join(chunks, ".*")
}

// withJavaLangFallback widens a translated type-pattern regex to also
// accept the same bare name under java.lang, for any pattern written
// without a package qualifier: unqualified types in source are
// overwhelmingly java.lang members (String, Object, Integer, ...), and
// a resolved reference always carries its fully qualified name, so an
// unqualified pattern has to match both spellings to be useful. "*"
// and the primitive keywords are excluded since they aren't java.lang
// names to begin with.
func withJavaLangFallback(typePattern, base string) string {
	if !strings.Contains(typePattern, ".") && typePattern != "*" && !isPrimitiveKeyword(typePattern) {
		return `(?:` + base + `|java\.lang\.` + regexp.QuoteMeta(typePattern) + `)`
	}
	return base
}

// translateArgType turns a bare type pattern appearing inside an
// argument list into a regex fragment, applying withJavaLangFallback.
// trailingArrays is the number of "[]" suffixes found on the
// argPattern.
func translateArgType(typePattern string, trailingArrays int) string {
	base := withJavaLangFallback(typePattern, translateTypePattern(typePattern))
	suffix := strings.Repeat(`\[\]`, trailingArrays)
	return base + suffix
}

var primitiveKeywords = map[string]bool{
	"boolean": true, "byte": true, "char": true, "short": true,
	"int": true, "long": true, "float": true, "double": true, "void": true,
}

func isPrimitiveKeyword(s string) bool { return primitiveKeywords[s] }

// splitArrays strips trailing "[]" markers from an argPattern, for
// example "String[]" -> ("String", 1).
func splitArrays(argPattern string) (base string, count int) {
	base = argPattern
	for strings.HasSuffix(base, "[]") {
		base = strings.TrimSuffix(base, "[]")
		count++
	}
	return base, count
}

// argPiece is one element of a compiled argument pattern. A piece
// able to match zero items (".." or "T...") records whether its own
// regex already carries the comma that would otherwise separate it
// from its left/right neighbor, so joinArgPieces knows when to leave
// that separator out rather than force a comma that an empty match
// can't supply.
type argPiece struct {
	regex             string
	selfLeadingComma  bool
	selfTrailingComma bool
}

// compileArgPattern turns a single argPattern token into an argPiece.
// isFirst/isLast locate it within the whole argument list, which
// changes which side (if any) needs to absorb the separating comma
// itself to stay correct when the piece matches zero items.
func compileArgPattern(argPattern string, isFirst, isLast bool) argPiece {
	if argPattern == ".." {
		switch {
		case isFirst && isLast:
			return argPiece{regex: `.*`, selfLeadingComma: true, selfTrailingComma: true}
		case isLast:
			return argPiece{regex: `(?:,[^,]+)*`, selfLeadingComma: true}
		case isFirst:
			return argPiece{regex: `(?:[^,]+,)*`, selfTrailingComma: true}
		default:
			// Middle wildcard: bounded by mandatory content on both
			// sides, so it needs an explicit comma from its left
			// neighbor but supplies its own trailing comma per
			// matched item (or nothing, when it matches zero).
			return argPiece{regex: `(?:[^,]+,)*`, selfTrailingComma: true}
		}
	}

	if strings.HasSuffix(argPattern, "...") {
		elem := strings.TrimSuffix(argPattern, "...")
		elemRegex := translateArgType(elem, 0)
		arrayForm := elemRegex + `\[\]`
		listForm := `(?:` + elemRegex + `(?:,` + elemRegex + `)*)?`
		if isFirst && isLast {
			return argPiece{
				regex:             `(?:` + arrayForm + `|` + listForm + `)`,
				selfLeadingComma:  true,
				selfTrailingComma: true,
			}
		}
		// Varargs is always the last formal parameter in legal Java
		// source, so the realistic shape absorbs its own leading
		// comma and leaves nothing dangling when it matches zero
		// flattened arguments.
		return argPiece{
			regex:            `(?:,` + arrayForm + `|(?:,` + elemRegex + `)*)`,
			selfLeadingComma: true,
		}
	}

	base, arrays := splitArrays(argPattern)
	return argPiece{regex: translateArgType(base, arrays)}
}

// joinArgPieces assembles the full, anchored argument-list regex from
// the per-argPattern pieces. A literal "," separator is inserted
// between two adjacent pieces unless the right-hand piece already
// supplies its own leading comma, or the left-hand piece already
// supplies its own trailing comma — true of any wildcard piece able
// to match zero items, per compileArgPattern.
func joinArgPieces(pieces []argPiece) string {
	var sb strings.Builder
	sb.WriteString("^")
	for i, p := range pieces {
		if i > 0 && !pieces[i-1].selfTrailingComma && !p.selfLeadingComma {
			sb.WriteString(",")
		}
		sb.WriteString(p.regex)
	}
	sb.WriteString("$")
	return sb.String()
}

// Matcher is a compiled signature: three independent regexes, each
// anchored, matched separately against the declaring type's fully
// qualified name, the method's simple name, and the comma-joined
// fully qualified parameter type list of a candidate invocation.
type Matcher struct {
	Signature *Signature

	TargetTypePattern *regexp.Regexp
	MethodNamePattern *regexp.Regexp
	ArgumentPattern   *regexp.Regexp
}

// Compile parses and compiles a signature string in one step.
func Compile(raw string) (*Matcher, error) {
	sig, err := ParseSignature(raw)
	if err != nil {
		return nil, err
	}
	return CompileSignature(sig)
}

// CompileSignature compiles an already-parsed Signature.
func CompileSignature(sig *Signature) (*Matcher, error) {
	targetRe, err := regexp.Compile("^" + withJavaLangFallback(sig.TargetType, translateTypePattern(sig.TargetType)) + "$")
	if err != nil {
		return nil, &jerrors.InvalidSignature{Signature: sig.Raw, Token: sig.TargetType, Reason: err.Error()}
	}

	namePattern := sig.Name
	if sig.CaseInsensitive {
		namePattern = foldCaser.String(namePattern)
	}
	nameRe, err := regexp.Compile("^" + translateNamePattern(namePattern) + "$")
	if err != nil {
		return nil, &jerrors.InvalidSignature{Signature: sig.Raw, Token: sig.Name, Reason: err.Error()}
	}

	pieces := make([]argPiece, len(sig.Args))
	for i, a := range sig.Args {
		pieces[i] = compileArgPattern(a, i == 0, i == len(sig.Args)-1)
	}
	var argRe *regexp.Regexp
	if len(pieces) == 0 {
		argRe, err = regexp.Compile(`^$`)
	} else {
		argRe, err = regexp.Compile(joinArgPieces(pieces))
	}
	if err != nil {
		return nil, &jerrors.InvalidSignature{Signature: sig.Raw, Token: strings.Join(sig.Args, ","), Reason: err.Error()}
	}

	return &Matcher{
		Signature:         sig,
		TargetTypePattern: targetRe,
		MethodNamePattern: nameRe,
		ArgumentPattern:   argRe,
	}, nil
}

func (m *Matcher) String() string { return m.Signature.Raw }
