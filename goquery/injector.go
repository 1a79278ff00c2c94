// Package goquery injects generated stylesheets into built HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/fontloc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Injector implements fontloc.HTMLInjector.
var _ fontloc.HTMLInjector = (*Injector)(nil)

// Injector adds a <style data-href> element to the head of HTML documents.
type Injector struct{}

// NewInjector creates a new Injector.
func NewInjector() *Injector {
	return &Injector{}
}

// Inject returns doc with css appended to its head inside
// <style data-href="href">. A document that already carries a style element
// with the same data-href is returned unchanged.
func (i *Injector) Inject(doc, css, href string) (string, error) {
	if strings.Contains(strings.ToLower(css), "</style") {
		return "", fontloc.Errorf(fontloc.EINVALID, "stylesheet must not contain a closing style tag")
	}

	d, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", fontloc.Errorf(fontloc.EINVALID, "failed to parse HTML: %v", err)
	}

	if hasStyle(d, href) {
		return doc, nil
	}

	head := d.Find("head").First()
	if head.Length() == 0 {
		return "", fontloc.Errorf(fontloc.EINVALID, "document has no head element")
	}
	head.AppendNodes(styleNode(css, href))

	out, err := d.Html()
	if err != nil {
		return "", fontloc.Errorf(fontloc.EINTERNAL, "failed to render HTML: %v", err)
	}
	return out, nil
}

func hasStyle(d *goquery.Document, href string) bool {
	found := false
	d.Find("style[data-href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("data-href"); v == href {
			found = true
		}
		return !found
	})
	return found
}

func styleNode(css, href string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Style,
		Data:     "style",
		Attr:     []html.Attribute{{Key: "data-href", Val: href}},
	}
	n.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return n
}
