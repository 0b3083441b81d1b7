// Package render hydrates page skeletons with content. Each step writes one
// data subtree into its container and leaves the page untouched when either
// the data or the container is missing.
package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Page is a parsed HTML skeleton being hydrated for a single response.
type Page struct {
	doc *goquery.Document
}

// ParsePage parses an HTML skeleton.
func ParsePage(r io.Reader) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Page{doc: doc}, nil
}

// ParsePageBytes is ParsePage over an in-memory skeleton.
func ParsePageBytes(b []byte) (*Page, error) {
	return ParsePage(bytes.NewReader(b))
}

// Find returns the elements matching selector.
func (p *Page) Find(selector string) *goquery.Selection {
	return p.doc.Find(selector)
}

// Has reports whether at least one element matches selector.
func (p *Page) Has(selector string) bool {
	return p.doc.Find(selector).Length() > 0
}

// Body returns the <body> element.
func (p *Page) Body() *goquery.Selection {
	return p.doc.Find("body").First()
}

// HTML serializes the whole document, doctype included.
func (p *Page) HTML() (string, error) {
	return p.doc.Html()
}

// byID returns the element with the given id, or nil when absent.
func (p *Page) byID(id string) *goquery.Selection {
	sel := p.doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return nil
	}
	return sel
}
