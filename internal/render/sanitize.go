package render

import (
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags survive sanitizing, without their attributes
var allowedTags = map[atom.Atom]bool{
	atom.P:      true,
	atom.B:      true,
	atom.I:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.Br:     true,
}

// droppedTags are removed together with their content
var droppedTags = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Object:   true,
	atom.Embed:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// SanitizeSummary reduces upstream summary markup to simple inline formatting.
// Other elements are unwrapped so their text is kept.
func SanitizeSummary(raw string) template.HTML {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return template.HTML(html.EscapeString(raw))
	}
	body := doc.Find("body")
	if body.Length() == 0 {
		return ""
	}

	var b strings.Builder
	writeSanitized(&b, body.Get(0))
	return template.HTML(b.String())
}

func writeSanitized(b *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(html.EscapeString(c.Data))
		case html.ElementNode:
			switch {
			case droppedTags[c.DataAtom]:
			case c.DataAtom == atom.Br:
				b.WriteString("<br>")
			case allowedTags[c.DataAtom]:
				b.WriteString("<" + c.Data + ">")
				writeSanitized(b, c)
				b.WriteString("</" + c.Data + ">")
			default:
				writeSanitized(b, c)
			}
		}
	}
}
