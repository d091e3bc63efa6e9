package htmlreport

import (
	"errors"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoPages is returned when the document contains no recognizable page
// blocks at all. This is the only fatal parse failure; everything else
// degrades to warnings.
var ErrNoPages = errors.New("htmlreport: no page blocks found in document")

// Table is a raw two-dimensional table lifted out of a page.
// Bordered carries the report's border="1" attribute, which the generator
// sets on component and condition tables. It is a hint, not a guarantee.
type Table struct {
	Rows     [][]string
	Bordered bool
}

// Page is one structural block of the report, corresponding to one printed
// sheet. Pages are transient: the reconstructor folds them into Records and
// they are not retained afterwards.
type Page struct {
	Heading   string   // h3 text, cleaned; "" when the page has no heading
	Tables    []Table  // in document order
	ImageSrcs []string // src attributes of <img> elements, in document order
}

// FirstBordered returns the first table carrying the border hint, skipping
// the first skip tables. Returns nil when none is present.
func (p *Page) FirstBordered(skip int) *Table {
	for i := range p.Tables {
		if i < skip {
			continue
		}
		if p.Tables[i].Bordered {
			return &p.Tables[i]
		}
	}
	return nil
}

// ExtractPages parses the raw report HTML and returns its page blocks in
// document order. hyperMILL emits one div.page per printed sheet; a document
// without any is structurally unusable and yields ErrNoPages.
func ExtractPages(r io.Reader) ([]Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	blocks := doc.Find("div.page")
	if blocks.Length() == 0 {
		return nil, ErrNoPages
	}

	pages := make([]Page, 0, blocks.Length())
	blocks.Each(func(_ int, sel *goquery.Selection) {
		var p Page

		if h3 := sel.Find("h3").First(); h3.Length() > 0 {
			p.Heading = CleanText(h3.Text())
		}

		sel.Find("table").Each(func(_ int, tbl *goquery.Selection) {
			t := Table{Bordered: tbl.AttrOr("border", "") == "1"}
			tbl.Find("tr").Each(func(_ int, tr *goquery.Selection) {
				var cells []string
				tr.Find("td, th").Each(func(_ int, td *goquery.Selection) {
					cells = append(cells, CleanText(td.Text()))
				})
				t.Rows = append(t.Rows, cells)
			})
			p.Tables = append(p.Tables, t)
		})

		sel.Find("img").Each(func(_ int, img *goquery.Selection) {
			if src, ok := img.Attr("src"); ok && src != "" {
				p.ImageSrcs = append(p.ImageSrcs, src)
			}
		})

		pages = append(pages, p)
	})

	return pages, nil
}
