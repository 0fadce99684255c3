package journal

import (
	"html"
	"regexp"
	"strings"
)

var testIDPattern = regexp.MustCompile(`\b([VUP][\d.]+)\b`)

// RenderHTML formats an entry as an HTML fragment. Test identifiers like
// V1.2.3 are emphasized and PASS/FAIL verdicts get result classes so the
// stylesheet can color them.
func RenderHTML(e Entry) string {
	class := "journal-entry"
	if e.CategoryComplete {
		class += " category-complete"
	}

	content := html.EscapeString(e.Content)
	content = testIDPattern.ReplaceAllString(content, "<b>$1</b>")
	content = strings.ReplaceAll(content, "PASS", `<span class="result-pass">PASS</span>`)
	content = strings.ReplaceAll(content, "FAIL", `<span class="result-fail">FAIL</span>`)
	content = strings.ReplaceAll(content, "\n", "<br/>\n")

	var b strings.Builder
	b.WriteString(`<div class="` + class + `">` + "\n")
	b.WriteString(`<div class="entry-timestamp">` + html.EscapeString(e.Timestamp) + "</div>\n")
	b.WriteString(`<div class="entry-content">` + content + "</div>\n")
	b.WriteString("</div>")
	return b.String()
}
