// Package hocr reads hOCR documents (OCR output as HTML with bbox
// metadata) into positioned text runs for comparison.
//
// Only the elements the comparison pipeline needs are read: ocr_page for
// page boundaries and dimensions, and ocrx_word for word-level runs.
// Intermediate grouping elements (ocr_carea, ocr_par, ocr_line) are
// traversed but not materialized. hOCR coordinates are top-left origin
// with Y increasing downward, matching the page coordinate space of
// [model.BBox].
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/redline/model"
)

// Page is one ocr_page element: its dimensions and word runs.
type Page struct {
	// Index is the zero-based page index
	Index int

	// Width and Height are the page dimensions from the page's bbox
	Width  float64
	Height float64

	// Runs are the page's ocrx_word elements in document order
	Runs []model.TextRun
}

// Document provides access to hOCR content.
type Document struct {
	pages []Page
}

// Open reads an hOCR file.
func Open(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses hOCR from an io.Reader.
func OpenReader(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	doc := &Document{}
	doc.extract(root)
	return doc, nil
}

// Pages returns the parsed pages in document order.
func (d *Document) Pages() []Page {
	return d.pages
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// Runs returns every word run across all pages, in document order, ready
// for block detection.
func (d *Document) Runs() []model.TextRun {
	var runs []model.TextRun
	for _, p := range d.pages {
		runs = append(runs, p.Runs...)
	}
	return runs
}

// extract walks the tree collecting pages and their word runs.
func (d *Document) extract(n *html.Node) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		page := Page{Index: len(d.pages)}
		if box, ok := titleBBox(n); ok {
			page.Width = box.Width
			page.Height = box.Height
		}
		d.collectWords(n, &page)
		d.pages = append(d.pages, page)
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.extract(c)
	}
}

// collectWords gathers ocrx_word descendants of a page node.
func (d *Document) collectWords(n *html.Node, page *Page) {
	if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
		text := strings.TrimSpace(textContent(n))
		box, ok := titleBBox(n)
		if text != "" && ok {
			page.Runs = append(page.Runs, model.TextRun{
				Text: text,
				Page: page.Index,
				BBox: box,
			})
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		d.collectWords(c, page)
	}
}

// hasClass reports whether the node's class attribute contains name.
func hasClass(n *html.Node, name string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == name {
				return true
			}
		}
	}
	return false
}

// titleBBox extracts the bbox field from an hOCR title attribute, whose
// value is a semicolon-separated property list such as
// "bbox 100 200 340 260; x_wconf 95".
func titleBBox(n *html.Node) (model.BBox, bool) {
	for _, attr := range n.Attr {
		if attr.Key != "title" {
			continue
		}
		for _, field := range strings.Split(attr.Val, ";") {
			parts := strings.Fields(strings.TrimSpace(field))
			if len(parts) != 5 || parts[0] != "bbox" {
				continue
			}
			coords := make([]float64, 4)
			valid := true
			for i, p := range parts[1:] {
				v, err := strconv.ParseFloat(p, 64)
				if err != nil {
					valid = false
					break
				}
				coords[i] = v
			}
			if valid {
				return model.NewBBoxFromCorners(coords[0], coords[1], coords[2], coords[3]), true
			}
		}
	}
	return model.BBox{}, false
}

// textContent returns the concatenated text of a node's descendants.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
