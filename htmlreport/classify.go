package htmlreport

import (
	"regexp"
	"strconv"
)

// PageKind tags what a page's heading says the page is.
type PageKind int

const (
	PageUnknown PageKind = iota
	PageAssembly
	PageTool
	PageHolder
	PageSubComponent
)

func (k PageKind) String() string {
	switch k {
	case PageAssembly:
		return "assembly"
	case PageTool:
		return "tool"
	case PageHolder:
		return "holder"
	case PageSubComponent:
		return "subcomponent"
	default:
		return "unknown"
	}
}

// Heading is the classified form of a page heading.
type Heading struct {
	Kind      PageKind
	Name      string // assembly/tool/holder/sub-component display name
	Number    int    // assembly sequence number
	TypeLabel string // tool type, e.g. "ボールミル" or "Ball mill"
	Dialect   string // sub-component term that matched: "subholder" or "extension"
}

// Heading patterns, one JA and one EN variant per kind. All are anchored at
// the start: "サブホルダー:" and "Subholder:" contain the holder prefix as a
// substring, so unanchored matching would misfile sub-component pages.
type headingPattern struct {
	kind    PageKind
	re      *regexp.Regexp
	dialect string
}

var headingPatterns = []headingPattern{
	{PageAssembly, regexp.MustCompile(`^NCツール\(N\):(.+?)\s*\((\d+)\)\s*$`), ""},
	{PageAssembly, regexp.MustCompile(`^NC-?Tool\(N\):(.+?)\s*\((\d+)\)\s*$`), ""},
	{PageTool, regexp.MustCompile(`^工具:\s*(.+?)\s*\((.+?)\)\s*$`), ""},
	{PageTool, regexp.MustCompile(`^Tool:\s*(.+?)\s*\((.+?)\)\s*$`), ""},
	{PageHolder, regexp.MustCompile(`^ホルダー:\s*(.+?)\s*$`), ""},
	{PageHolder, regexp.MustCompile(`^Holder:\s*(.+?)\s*$`), ""},
	{PageSubComponent, regexp.MustCompile(`^(?:サブホルダー|Subholder):\s*(.+?)\s*$`), "subholder"},
	{PageSubComponent, regexp.MustCompile(`^(?:エクステンション|Extension):\s*(.+?)\s*$`), "extension"},
}

// ClassifyHeading matches a cleaned heading against the bilingual pattern
// set. Headings matching nothing classify as PageUnknown; the reconstructor
// drops those pages.
func ClassifyHeading(text string) Heading {
	for _, p := range headingPatterns {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		h := Heading{Kind: p.kind, Name: CleanText(m[1]), Dialect: p.dialect}
		switch p.kind {
		case PageAssembly:
			h.Number, _ = strconv.Atoi(m[2])
		case PageTool:
			h.TypeLabel = CleanText(m[2])
		}
		return h
	}
	return Heading{Kind: PageUnknown}
}
