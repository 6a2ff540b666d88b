package builtin

import (
	"regexp"
	"strings"

	"github.com/mako10k/ishell/internal/result"
)

// renderMarkdown converts markdown source into OutputSegments per spec §3's
// segment type list. Markdown-to-segment rendering is explicitly out of
// core scope (spec §1: "described only at its input/output contract") —
// this is a line-oriented classifier sized to the segment type vocabulary
// the spec defines, not a general CommonMark renderer; no library in the
// pack produces this bespoke segment schema (see DESIGN.md).
func renderMarkdown(content string) []result.Segment {
	var segs []result.Segment
	inCodeBlock := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			segs = append(segs, result.Segment{Text: trimmed + "\n", Type: result.SegTypeCodeBlockBorder})
			inCodeBlock = !inCodeBlock
			continue
		}
		if inCodeBlock {
			segs = append(segs, result.Segment{Text: line + "\n", Type: result.SegTypeCodeBlock})
			continue
		}

		switch {
		case trimmed == "" :
			segs = append(segs, result.Segment{Text: "\n", Type: result.SegTypeNormal})
		case strings.HasPrefix(trimmed, "### "):
			segs = append(segs, result.Segment{Text: "### ", Type: result.SegTypeHeaderSymbol})
			segs = append(segs, result.Segment{Text: strings.TrimPrefix(trimmed, "### ") + "\n", Type: result.SegTypeHeader3})
		case strings.HasPrefix(trimmed, "## "):
			segs = append(segs, result.Segment{Text: "## ", Type: result.SegTypeHeaderSymbol})
			segs = append(segs, result.Segment{Text: strings.TrimPrefix(trimmed, "## ") + "\n", Type: result.SegTypeHeader2})
		case strings.HasPrefix(trimmed, "# "):
			segs = append(segs, result.Segment{Text: "# ", Type: result.SegTypeHeaderSymbol})
			segs = append(segs, result.Segment{Text: strings.TrimPrefix(trimmed, "# ") + "\n", Type: result.SegTypeHeader1})
		case trimmed == "---" || trimmed == "***" || trimmed == "___":
			segs = append(segs, result.Segment{Text: trimmed + "\n", Type: result.SegTypeHR})
		case strings.HasPrefix(trimmed, "> "):
			segs = append(segs, result.Segment{Text: "> ", Type: result.SegTypeBlockquoteSymbol})
			segs = append(segs, inlineSegments(strings.TrimPrefix(trimmed, "> "))...)
			segs = append(segs, result.Segment{Text: "\n", Type: result.SegTypeNormal})
		case strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* "):
			segs = append(segs, result.Segment{Text: "• ", Type: result.SegTypeListBullet})
			segs = append(segs, inlineSegments(trimmed[2:])...)
			segs = append(segs, result.Segment{Text: "\n", Type: result.SegTypeNormal})
		case orderedListRe.MatchString(trimmed):
			m := orderedListRe.FindStringSubmatch(trimmed)
			segs = append(segs, result.Segment{Text: m[1] + ". ", Type: result.SegTypeListNumber})
			segs = append(segs, inlineSegments(m[2])...)
			segs = append(segs, result.Segment{Text: "\n", Type: result.SegTypeNormal})
		default:
			segs = append(segs, inlineSegments(line)...)
			segs = append(segs, result.Segment{Text: "\n", Type: result.SegTypeNormal})
		}
	}
	return segs
}

var (
	orderedListRe = regexp.MustCompile(`^(\d+)\.\s+(.*)$`)
	linkRe        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	codeRe        = regexp.MustCompile("`([^`]+)`")
	boldRe        = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicRe      = regexp.MustCompile(`\*([^*]+)\*`)
)

// inlineSegments splits a single line of already-block-classified text into
// link/inline-code/bold/italic/normal runs. Each construct is matched
// greedily left to right, non-overlapping; nesting is not supported.
func inlineSegments(line string) []result.Segment {
	type match struct {
		start, end int
		seg        result.Segment
	}
	var matches []match

	for _, m := range linkRe.FindAllStringSubmatchIndex(line, -1) {
		matches = append(matches, match{m[0], m[1], result.Segment{Text: line[m[2]:m[3]], Type: result.SegTypeLink, URL: line[m[4]:m[5]]}})
	}
	for _, m := range codeRe.FindAllStringSubmatchIndex(line, -1) {
		matches = append(matches, match{m[0], m[1], result.Segment{Text: line[m[2]:m[3]], Type: result.SegTypeInlineCode}})
	}
	for _, m := range boldRe.FindAllStringSubmatchIndex(line, -1) {
		matches = append(matches, match{m[0], m[1], result.Segment{Text: line[m[2]:m[3]], Type: result.SegTypeBold}})
	}
	for _, m := range italicRe.FindAllStringSubmatchIndex(line, -1) {
		matches = append(matches, match{m[0], m[1], result.Segment{Text: line[m[2]:m[3]], Type: result.SegTypeItalic}})
	}

	if len(matches) == 0 {
		return []result.Segment{{Text: line, Type: result.SegTypeNormal}}
	}

	// Sort by start position and drop overlaps (first match wins).
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].start < matches[j-1].start; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}
	var filtered []match
	cursor := 0
	for _, m := range matches {
		if m.start < cursor {
			continue
		}
		filtered = append(filtered, m)
		cursor = m.end
	}

	var segs []result.Segment
	pos := 0
	for _, m := range filtered {
		if m.start > pos {
			segs = append(segs, result.Segment{Text: line[pos:m.start], Type: result.SegTypeNormal})
		}
		segs = append(segs, m.seg)
		pos = m.end
	}
	if pos < len(line) {
		segs = append(segs, result.Segment{Text: line[pos:], Type: result.SegTypeNormal})
	}
	return segs
}
