package format

import "strings"

// Split breaks text into chunks of at most maxLen characters. Paragraphs
// (separated by a blank line) are packed greedily and never divided
// unless a single paragraph exceeds the limit, in which case it is
// hard-split at the last space at or before the limit, or at the exact
// limit when no space exists. Joining the chunks with the paragraph
// separator reinserted reproduces the input, except across forced
// hard-splits, which still preserve every original character.
func Split(text string, maxLen int) []string {
	if maxLen <= 0 || len(text) <= maxLen {
		return []string{text}
	}

	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	current := ""
	haveCurrent := false

	flush := func() {
		if haveCurrent {
			chunks = append(chunks, current)
			current = ""
			haveCurrent = false
		}
	}

	for _, para := range paragraphs {
		for len(para) > maxLen {
			flush()
			cut := strings.LastIndex(para[:maxLen], " ")
			if cut <= 0 {
				cut = maxLen
			}
			chunks = append(chunks, para[:cut])
			para = para[cut:]
		}

		switch {
		case !haveCurrent:
			current = para
			haveCurrent = true
		case len(current)+len("\n\n")+len(para) <= maxLen:
			current += "\n\n" + para
		default:
			chunks = append(chunks, current)
			current = para
		}
	}
	flush()

	return chunks
}
