package format

import "regexp"

var reTagToken = regexp.MustCompile(`<(/?)(b|strong|i|em|u|ins|s|strike|del|code|pre|tg-spoiler)(?: class="[^"]*")?>`)

// Validate checks that every opening tag of the fixed vocabulary has a
// matching, correctly nested closing tag. Text content is ignored; only
// tag structure is inspected.
func Validate(html string) bool {
	var stack []string
	for _, m := range reTagToken.FindAllStringSubmatch(html, -1) {
		name := m[2]
		if m[1] != "/" {
			stack = append(stack, name)
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != name {
			return false
		}
		stack = stack[:len(stack)-1]
	}
	return len(stack) == 0
}
