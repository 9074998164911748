// Package matcher compiles an AspectJ-subset method signature into
// three regular-expression fragments — target type, method name,
// argument list — and matches them against a resolved method
// invocation's declaring type, name and parameter types.
package matcher

import (
	"strings"

	"github.com/dhamidi/javarefactor/jerrors"
)

// Signature is the parsed (but not yet compiled) form of a signature
// string, per this grammar:
//
//	signature   := typePattern WS namePattern '(' argPatterns? ')'
//	typePattern := dotSeg ('.' dotSeg)*
//	dotSeg      := '*' | '..' | identChars
//	namePattern := '(?i)'? identChars
//	argPatterns := argPattern (',' WS? argPattern)*
//	argPattern  := typePattern ('[]')* | '..' | typePattern '...'
//
// A namePattern prefixed with the literal "(?i)" opts into
// case-insensitive name comparison, an explicit extension beyond
// Java's own (case-sensitive) identifier rules; every other pattern
// keeps its exact case.
type Signature struct {
	Raw             string
	TargetType      string
	Name            string
	CaseInsensitive bool
	Args            []string
}

// caseInsensitivePrefix opts a namePattern into Unicode-aware
// case-insensitive comparison, see Signature.CaseInsensitive.
const caseInsensitivePrefix = "(?i)"

// ParseSignature parses raw into its three top-level pieces. It does
// not itself compile any regex; see Compile. Errors are
// *jerrors.InvalidSignature.
func ParseSignature(raw string) (*Signature, error) {
	open := strings.IndexByte(raw, '(')
	// A "(?i)" name prefix carries its own '(': skip past it to the
	// parenthesis that opens the argument list.
	if open >= 0 && strings.HasPrefix(raw[open:], caseInsensitivePrefix) {
		rest := open + len(caseInsensitivePrefix)
		if next := strings.IndexByte(raw[rest:], '('); next >= 0 {
			open = rest + next
		} else {
			open = -1
		}
	}
	if open < 0 {
		return nil, &jerrors.InvalidSignature{Signature: raw, Position: len(raw), Reason: "missing '('"}
	}
	if !strings.HasSuffix(raw, ")") {
		return nil, &jerrors.InvalidSignature{Signature: raw, Position: len(raw) - 1, Reason: "missing closing ')'"}
	}

	head := strings.TrimSpace(raw[:open])
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return nil, &jerrors.InvalidSignature{Signature: raw, Token: head, Position: 0, Reason: "expected \"typePattern namePattern\""}
	}

	argsRaw := raw[open+1 : len(raw)-1]
	var args []string
	if strings.TrimSpace(argsRaw) != "" {
		for _, a := range splitTopLevelCommas(argsRaw) {
			a = strings.TrimSpace(a)
			if a == "" {
				return nil, &jerrors.InvalidSignature{Signature: raw, Token: argsRaw, Position: open, Reason: "empty argument pattern"}
			}
			args = append(args, a)
		}
	}

	name := fields[1]
	caseInsensitive := strings.HasPrefix(name, caseInsensitivePrefix)
	if caseInsensitive {
		name = strings.TrimPrefix(name, caseInsensitivePrefix)
		if name == "" {
			return nil, &jerrors.InvalidSignature{Signature: raw, Token: fields[1], Position: 0, Reason: "(?i) needs a name pattern after it"}
		}
	}

	return &Signature{Raw: raw, TargetType: fields[0], Name: name, CaseInsensitive: caseInsensitive, Args: args}, nil
}

// splitTopLevelCommas splits s on commas; the argument grammar has no
// nested parens or generics, so this is a plain split, kept as its
// own function for symmetry with argPatterns' comma-separated shape
// and to centralize whitespace trimming.
func splitTopLevelCommas(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
