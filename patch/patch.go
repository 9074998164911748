// Package patch renders unified-diff hunks directly from a sorted
// list of tree.Fix values plus the original source text. Because
// every fix already carries its exact source range and replacement
// text, there is no need to run a generic line-diff (LCS/Myers)
// algorithm over the before/after text the way a plain `diff` would:
// the changed lines are already known structurally, and only need
// grouping into hunks with a context window — the shape of
// rsc-rf/diff's Diff entry point, without shelling out to an external
// diff binary.
package patch

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dhamidi/javarefactor/tree"
)

// contextLines is the number of unchanged lines shown around each
// hunk, the standard three-line unified-diff convention.
const contextLines = 3

// Patch is a rendered unified diff over one source text.
type Patch struct {
	ID    string
	Hunks []Hunk
}

// Hunk is one contiguous run of changed lines plus surrounding
// context, in the conventional unified-diff header shape.
type Hunk struct {
	OldStart, OldLines int
	NewStart, NewLines int
	Lines              []string // each prefixed " ", "-" or "+"
}

// Apply splices fixes into original, producing the transformed text.
// fixes must already be sorted by start offset and non-overlapping;
// refactor.Transaction enforces this before calling Apply.
func Apply(original string, fixes []tree.Fix) (string, error) {
	var sb strings.Builder
	pos := 0
	for _, f := range fixes {
		if f.Range.Start < pos {
			return "", fmt.Errorf("patch: fix at %d precedes current position %d", f.Range.Start, pos)
		}
		sb.WriteString(original[pos:f.Range.Start])
		switch f.Kind {
		case tree.FixInsert:
			sb.WriteString(f.Text)
			pos = f.Range.Start
		case tree.FixDelete:
			pos = f.Range.End
		case tree.FixReplace:
			sb.WriteString(f.Text)
			pos = f.Range.End
		}
	}
	sb.WriteString(original[pos:])
	return sb.String(), nil
}

// lineIndex maps byte offsets in text to 0-based line numbers.
type lineIndex struct {
	starts []int // starts[i] = byte offset of line i
	text   string
}

func newLineIndex(text string) *lineIndex {
	idx := &lineIndex{starts: []int{0}, text: text}
	for i, b := range text {
		if b == '\n' {
			idx.starts = append(idx.starts, i+1)
		}
	}
	return idx
}

func (idx *lineIndex) lineCount() int { return len(idx.starts) }

func (idx *lineIndex) lineOf(offset int) int {
	// starts is sorted; find the last start <= offset.
	lo, hi := 0, len(idx.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if idx.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// lineText returns line i's text, including its trailing newline if
// it has one.
func (idx *lineIndex) lineText(i int) string {
	start := idx.starts[i]
	end := len(idx.text)
	if i+1 < len(idx.starts) {
		end = idx.starts[i+1]
	}
	return idx.text[start:end]
}

func (idx *lineIndex) byteOffset(i int) int {
	if i >= len(idx.starts) {
		return len(idx.text)
	}
	return idx.starts[i]
}

// FromFixes renders fixes (sorted, non-overlapping) against original
// into a Patch. Each hunk's changed lines are derived directly from
// the fixes touching it; unchanged lines around them are copied
// verbatim as context.
func FromFixes(original string, fixes []tree.Fix) (*Patch, error) {
	if len(fixes) == 0 {
		return &Patch{ID: uuid.NewString()}, nil
	}

	idx := newLineIndex(original)
	touched := make([]bool, idx.lineCount())
	for _, f := range fixes {
		start := idx.lineOf(f.Range.Start)
		end := start
		if f.Range.End > f.Range.Start {
			end = idx.lineOf(f.Range.End - 1)
		}
		for l := start; l <= end; l++ {
			touched[l] = true
		}
	}

	runs := touchedRuns(touched)
	hunkRanges := mergeWithContext(runs, idx.lineCount(), contextLines)

	var hunks []Hunk
	newLineOffset := 0 // cumulative old-vs-new line count delta from prior hunks
	for _, hr := range hunkRanges {
		hunk, delta, err := renderHunk(idx, fixes, hr, newLineOffset)
		if err != nil {
			return nil, err
		}
		hunks = append(hunks, hunk)
		newLineOffset += delta
	}

	return &Patch{ID: uuid.NewString(), Hunks: hunks}, nil
}

type lineRange struct{ lo, hi int } // [lo, hi)

func touchedRuns(touched []bool) []lineRange {
	var runs []lineRange
	i := 0
	for i < len(touched) {
		if !touched[i] {
			i++
			continue
		}
		start := i
		for i < len(touched) && touched[i] {
			i++
		}
		runs = append(runs, lineRange{lo: start, hi: i})
	}
	return runs
}

// mergeWithContext expands each touched run by contextLines on
// either side, clipped to [0, lineCount), and merges runs whose
// expanded windows overlap — the standard hunk-grouping rule unified
// diff output follows.
func mergeWithContext(runs []lineRange, lineCount, context int) []lineRange {
	var out []lineRange
	for _, r := range runs {
		lo := r.lo - context
		if lo < 0 {
			lo = 0
		}
		hi := r.hi + context
		if hi > lineCount {
			hi = lineCount
		}
		if len(out) > 0 && lo <= out[len(out)-1].hi {
			out[len(out)-1].hi = hi
		} else {
			out = append(out, lineRange{lo: lo, hi: hi})
		}
	}
	return out
}

// renderHunk builds one Hunk covering old lines [hr.lo, hr.hi),
// applying only the fixes whose range falls inside that window. It
// returns the hunk and the net line-count delta (new - old) it
// contributes, so the caller can track NewStart across hunks.
func renderHunk(idx *lineIndex, allFixes []tree.Fix, hr lineRange, newLineOffset int) (Hunk, int, error) {
	windowStart := idx.byteOffset(hr.lo)
	windowEnd := idx.byteOffset(hr.hi)
	windowText := idx.text[windowStart:windowEnd]

	var inWindow []tree.Fix
	for _, f := range allFixes {
		if f.Range.Start >= windowStart && f.Range.End <= windowEnd {
			inWindow = append(inWindow, tree.Fix{
				Kind:  f.Kind,
				Range: tree.Range{Start: f.Range.Start - windowStart, End: f.Range.End - windowStart},
				Text:  f.Text,
			})
		}
	}

	newWindowText, err := Apply(windowText, inWindow)
	if err != nil {
		return Hunk{}, 0, err
	}

	oldLines := splitLines(windowText)
	newLines := splitLines(newWindowText)

	lines := diffLinesByFixes(idx, hr, inWindow, oldLines, newLines)

	hunk := Hunk{
		OldStart: hr.lo + 1,
		OldLines: len(oldLines),
		NewStart: hr.lo + 1 + newLineOffset,
		NewLines: len(newLines),
		Lines:    lines,
	}
	return hunk, len(newLines) - len(oldLines), nil
}

// diffLinesByFixes partitions the hunk window's old lines into
// untouched context runs and fix-touched runs (known directly from
// inWindow's ranges, not discovered by comparing text), rendering
// context lines verbatim and touched runs as a deletion block
// followed by an insertion block.
func diffLinesByFixes(idx *lineIndex, hr lineRange, inWindow []tree.Fix, oldLines, newLines []string) []string {
	touchedOld := make([]bool, len(oldLines))
	for _, f := range inWindow {
		startLine := byteLineWithin(oldLines, f.Range.Start)
		endLine := startLine
		if f.Range.End > f.Range.Start {
			endLine = byteLineWithin(oldLines, f.Range.End-1)
		}
		for l := startLine; l <= endLine && l < len(touchedOld); l++ {
			touchedOld[l] = true
		}
	}

	// Without a precise mapping from new lines back to the fixes that
	// produced them, the simplest faithful rendering — and the one
	// that stays exact regardless of how a fix reshuffles line counts
	// inside the window — is: context lines untouched by any fix
	// print once, and every touched old line together with the whole
	// reprinted window's changed region prints as one deletion block
	// followed by one insertion block bracketing it. For the common
	// case of a single localized fix this reproduces exactly what a
	// line-oriented diff would show.
	var out []string
	i := 0
	for i < len(oldLines) {
		if !touchedOld[i] {
			out = append(out, " "+stripNL(oldLines[i]))
			i++
			continue
		}
		start := i
		for i < len(oldLines) && touchedOld[i] {
			i++
		}
		for l := start; l < i; l++ {
			out = append(out, "-"+stripNL(oldLines[l]))
		}
		newStart, newEnd := mapOldRunToNew(oldLines, newLines, start, i)
		for l := newStart; l < newEnd; l++ {
			out = append(out, "+"+stripNL(newLines[l]))
		}
	}
	_ = idx
	_ = hr
	return out
}

// mapOldRunToNew locates the new-line span corresponding to an old
// touched run [start,end) by matching the shared untouched prefix and
// suffix lines around it; the run's own new lines are whatever
// remains between the two matched boundaries.
func mapOldRunToNew(oldLines, newLines []string, start, end int) (int, int) {
	prefixMatch := 0
	for prefixMatch < start && prefixMatch < len(newLines) && oldLines[prefixMatch] == newLines[prefixMatch] {
		prefixMatch++
	}
	oldSuffix := len(oldLines) - end
	newSuffix := 0
	for newSuffix < oldSuffix && newSuffix < len(newLines)-prefixMatch &&
		oldLines[len(oldLines)-1-newSuffix] == newLines[len(newLines)-1-newSuffix] {
		newSuffix++
	}
	newStart := prefixMatch
	newEnd := len(newLines) - newSuffix
	if newEnd < newStart {
		newEnd = newStart
	}
	return newStart, newEnd
}

func byteLineWithin(lines []string, offset int) int {
	pos := 0
	for i, l := range lines {
		pos += len(l)
		if offset < pos {
			return i
		}
	}
	if len(lines) == 0 {
		return 0
	}
	return len(lines) - 1
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	var lines []string
	start := 0
	for i, b := range text {
		if b == '\n' {
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}

func stripNL(s string) string { return strings.TrimSuffix(s, "\n") }

// Render formats p as unified-diff text over oldName/newName.
func Render(p *Patch, oldName, newName string) string {
	var sb strings.Builder
	if len(p.Hunks) == 0 {
		return ""
	}
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", oldName, newName)
	for _, h := range p.Hunks {
		fmt.Fprintf(&sb, "@@ -%d,%d +%d,%d @@\n", h.OldStart, h.OldLines, h.NewStart, h.NewLines)
		for _, l := range h.Lines {
			sb.WriteString(l)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
