package service

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The model is prompted to reply with a single self-contained document, but
// replies arrive both fenced and bare. Only the first fence is honored.
var codeFenceRe = regexp.MustCompile("(?is)```(?:html)?(.*?)```")

// ExtractRunnableCode pulls a runnable document out of a full model reply.
// Priority: first fenced code block, then a reply that itself starts with a
// doctype or root tag. Returns false when no code is found.
func ExtractRunnableCode(reply string) (string, bool) {
	if match := codeFenceRe.FindStringSubmatch(reply); match != nil {
		code := strings.TrimSpace(match[1])
		return code, code != ""
	}

	trimmed := strings.TrimSpace(reply)
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html") {
		return trimmed, true
	}

	return "", false
}

// DocumentTitle returns the <title> text of an HTML document, or "" when the
// document has none or does not parse.
func DocumentTitle(code string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(code))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}
