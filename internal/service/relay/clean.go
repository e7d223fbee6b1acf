package relay

import (
	"regexp"
	"strings"
)

var (
	markupChars = regexp.MustCompile("[#*_~`]")
	blankLines  = regexp.MustCompile(`\n\s*\n`)
)

// clean strips markdown punctuation from a completion and turns blank-line
// runs into explicit paragraph breaks for the chat UI.
func clean(text string) string {
	text = markupChars.ReplaceAllString(text, "")
	text = blankLines.ReplaceAllString(text, "<br><br>")
	return strings.TrimSpace(text)
}
