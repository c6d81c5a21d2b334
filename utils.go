package materialcolors

import (
	nurl "net/url"
	"path/filepath"
	"strings"

	"github.com/go-shiori/dom"
	"github.com/kennygrant/sanitize"
	"golang.org/x/net/html"
)

// isValidURL checks if URL is valid.
func isValidURL(s string) bool {
	url, err := nurl.ParseRequestURI(s)
	return err == nil && url.Scheme != "" && url.Hostname() != ""
}

// blockTags are elements whose content never runs into the text around
// them, e.g. <div>Red</div><div>500</div> reads as "Red 500".
var blockTags = map[string]struct{}{
	"address": {}, "article": {}, "aside": {}, "blockquote": {}, "br": {},
	"dd": {}, "div": {}, "dl": {}, "dt": {}, "figcaption": {}, "figure": {},
	"footer": {}, "form": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {},
	"h5": {}, "h6": {}, "header": {}, "hr": {}, "li": {}, "main": {},
	"nav": {}, "ol": {}, "p": {}, "pre": {}, "section": {}, "table": {},
	"td": {}, "th": {}, "tr": {}, "ul": {},
}

// textOf returns the text content of node with whitespace runs collapsed
// into a single space. Block elements are separated from their
// neighbours by a space, inline elements are not.
func textOf(node *html.Node) string {
	var buffer strings.Builder
	var finder func(*html.Node)

	finder = func(node *html.Node) {
		switch node.Type {
		case html.TextNode:
			buffer.WriteString(node.Data)
			return
		case html.ElementNode:
		default:
			return
		}

		_, isBlock := blockTags[dom.TagName(node)]
		if isBlock {
			buffer.WriteByte(' ')
		}

		for child := node.FirstChild; child != nil; child = child.NextSibling {
			finder(child)
		}

		if isBlock {
			buffer.WriteByte(' ')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		finder(child)
	}

	return strings.Join(strings.Fields(buffer.String()), " ")
}

// constantName joins palette name and shade label into an identifier,
// e.g. "Light Blue" and "A100" become "Light_Blue_A100". Accented letters
// are folded to ASCII, so "Á100" and "A100" share a name.
func constantName(paletteName, label string) string {
	name := paletteName + "_" + label
	name = sanitize.Accents(name)
	return strings.ReplaceAll(name, " ", "_")
}

// className derives the Java class name from its file name.
func className(fileName string) string {
	base := filepath.Base(fileName)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// isMarkupContentType reports whether a response with this content type
// can be parsed as a document.
func isMarkupContentType(contentType string) bool {
	if contentType == "" {
		return true
	}

	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	switch {
	case strings.HasPrefix(mediaType, "text/"),
		mediaType == "application/xml",
		strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+xml"):
		return true
	default:
		return false
	}
}
