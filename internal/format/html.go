// Package format converts model-produced lightweight markup into the
// constrained HTML vocabulary accepted by the transport, validates it,
// and splits long messages into size-bounded chunks.
package format

import (
	"fmt"
	"regexp"
	"strings"
)

// Message is formatted text ready for the transport layer. When the
// staged rewrites produce structurally invalid markup, WellFormed is
// false and HTML carries the escaped original text instead.
type Message struct {
	HTML       string
	WellFormed bool
}

var (
	reFencedBlock = regexp.MustCompile("(?s)```(\\w+)?\n(.*?)```")
	reTickBlock   = regexp.MustCompile("(?s)`(\\w+)\n(.*?)`")
	reListItem    = regexp.MustCompile(`(?m)^\* `)
	reBold        = regexp.MustCompile(`\*\*(.*?)\*\*`)
	reItalic      = regexp.MustCompile(`\*(.*?)\*`)
	reInlineCode  = regexp.MustCompile("`([^`\n]+)`")
	reHeader      = regexp.MustCompile(`(?m)^#+\s+`)
	reEscapedTag  = regexp.MustCompile(`&lt;(/?(?:b|strong|i|em|u|ins|s|strike|del|code|pre|tg-spoiler)(?: class="[a-zA-Z0-9_-]*")?)&gt;`)

	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// ToHTML rewrites lightweight markup into transport HTML through ordered
// text-level stages, then validates the result. Invalid output degrades
// to the escaped original text.
func ToHTML(text string) Message {
	s := ReplaceCodeBlocks(text)
	s = ReplaceListMarkers(s)
	s = ReplaceEmphasis(s)
	s = StripHeaders(s)
	s = EscapeAndRestoreTags(s)

	if !Validate(s) {
		return Message{HTML: EscapeText(text), WellFormed: false}
	}
	return Message{HTML: s, WellFormed: true}
}

// ReplaceCodeBlocks rewrites fenced code blocks (triple backticks, or a
// single backtick pair with a language tag) into <pre><code> blocks with
// an escaped body.
func ReplaceCodeBlocks(text string) string {
	replace := func(re *regexp.Regexp, match string) string {
		parts := re.FindStringSubmatch(match)
		lang := parts[1]
		body := EscapeText(strings.TrimSpace(parts[2]))
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`, lang, body)
	}

	text = reFencedBlock.ReplaceAllStringFunc(text, func(m string) string {
		return replace(reFencedBlock, m)
	})
	return reTickBlock.ReplaceAllStringFunc(text, func(m string) string {
		return replace(reTickBlock, m)
	})
}

// ReplaceListMarkers turns leading "* " list markers into bullet glyphs.
func ReplaceListMarkers(text string) string {
	return reListItem.ReplaceAllString(text, "• ")
}

// ReplaceEmphasis rewrites **bold**, *italic* and inline `code` spans.
// Bold must run before italic so that "**" is not eaten pairwise by the
// single-asterisk rule.
func ReplaceEmphasis(text string) string {
	text = reBold.ReplaceAllString(text, `<b>$1</b>`)
	text = reItalic.ReplaceAllString(text, `<i>$1</i>`)
	return reInlineCode.ReplaceAllString(text, `<code>$1</code>`)
}

// StripHeaders removes leading #-style header markers.
func StripHeaders(text string) string {
	return reHeader.ReplaceAllString(text, "")
}

// EscapeAndRestoreTags escapes the whole text for HTML, then selectively
// un-escapes the fixed tag vocabulary inserted by earlier stages. Tags
// outside the vocabulary stay escaped.
func EscapeAndRestoreTags(text string) string {
	text = EscapeText(text)
	return reEscapedTag.ReplaceAllString(text, "<$1>")
}

// EscapeText escapes &, < and > for HTML transport.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}
