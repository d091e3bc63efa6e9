package htmlreport

import (
	"fmt"
	"io"
	"log/slog"
)

// unknownNameSentinel replaces an empty assembly name so a sealed record is
// never anonymous in the output sheets.
const unknownNameSentinel = "(UNKNOWN_NCTOOL)"

// Parse reads a hyperMILL NC-tool HTML report and reconstructs its tool
// assembly records. It returns the records in first-encounter order, the
// document-level warnings (distinct from each record's own warnings), and
// an error only when the document has no page blocks at all.
//
// The page sequence has no reliable structural delimiter: one logical tool
// spans three, four, or more pages depending on optional sub-components.
// Reconstruction therefore runs as a single-pass state machine keyed off
// the classified headings; see feed.
func Parse(r io.Reader, sourcePath string) ([]Record, []string, error) {
	pages, err := ExtractPages(r)
	if err != nil {
		return nil, nil, err
	}

	rc := &reconstructor{source: sourcePath}
	for i := range pages {
		rc.feed(&pages[i])
	}
	records, warnings := rc.finish()

	slog.Info("htmlreport: parse complete",
		"source", sourcePath, "pages", len(pages),
		"records", len(records), "warnings", len(warnings))

	return records, warnings, nil
}

// reconstructor folds the classified page stream into records. current is
// the one record under construction; it is sealed on the next assembly page
// or at end of input, and never revisited after that.
type reconstructor struct {
	source   string
	current  *Record
	records  []Record
	warnings []string
}

func (rc *reconstructor) feed(p *Page) {
	h := ClassifyHeading(p.Heading)

	if h.Kind == PageAssembly {
		rc.openAssembly(h, p)
		return
	}

	// Anything before the first assembly page is cover/front matter and
	// carries no tool data.
	if rc.current == nil {
		return
	}

	switch h.Kind {
	case PageTool:
		rc.mergeToolPage(h, p)
	case PageHolder:
		rc.mergeHolderPage(h, p)
	case PageSubComponent:
		// Sub-component geometry was already folded in from the assembly
		// page's component grid; the extra page is only worth a note.
		rc.current.Warnings = append(rc.current.Warnings,
			fmt.Sprintf("%s page detected: %s", h.Dialect, h.Name))
	}
}

func (rc *reconstructor) openAssembly(h Heading, p *Page) {
	rc.finalize()

	rec := &Record{
		SourcePath: rc.source,
		NCToolName: h.Name,
		NCToolNo:   h.Number,
	}
	rc.current = rec

	// The comment lives in the second key-value table.
	if len(p.Tables) >= 2 {
		kv := ReadKeyValue(p.Tables[1])
		rec.NCToolComment = kv[KeyNCToolComment]
	} else {
		rec.Warnings = append(rec.Warnings, "assembly page is missing tables")
	}

	// Component grid: the only bordered table on the assembly page.
	if grid := p.FirstBordered(0); grid != nil {
		applyComponentRows(rec, ReadGrid(*grid))
	} else {
		rec.Warnings = append(rec.Warnings, "assembly page has no bordered component table")
	}

	if len(p.ImageSrcs) > 0 {
		rec.ImageRelSrc = p.ImageSrcs[0]
	} else {
		rec.Warnings = append(rec.Warnings, "assembly page has no image src")
	}
}

func (rc *reconstructor) mergeToolPage(h Heading, p *Page) {
	rec := rc.current
	rec.ToolPageName = h.Name
	rec.ToolType = h.TypeLabel

	if len(p.Tables) == 0 {
		rec.Warnings = append(rec.Warnings, "tool page has no dimension table")
	} else {
		kv := ReadKeyValue(p.Tables[0])
		rec.ToolDiameterMM = kv[KeyDiameter]
		rec.ToolCornerRadiusMM = kv[KeyCornerRadius]
		rec.ToolFlutes = kv[KeyFlutes]
		rec.ToolCutLengthApMM = kv[KeyCutLengthAp]
		rec.ToolShankDMM = kv[KeyShankDiameter]
		rec.ToolChamferLenMM = kv[KeyChamferLength]
		rec.ToolTipLenMM = kv[KeyTipLength]
		rec.ToolTaperAngleDeg = kv[KeyTaperAngle]
		rec.SpindleRotation = kv[KeySpindleRotation]
	}

	// Machining conditions: first bordered table after the dimension table.
	// Only the first row is retained.
	if cond := p.FirstBordered(1); cond != nil {
		if rows := ReadGrid(*cond); len(rows) > 0 {
			c0 := rows[0]
			rec.CondSn = c0["S (n)"]
			rec.CondFX = c0["FX"]
			rec.CondFZ = c0["FZ"]
			rec.CondFr = c0["Fr"]
			rec.CondAp = c0["ap"]
			rec.CondAe = c0["ae"]
		}
	} else {
		rec.Warnings = append(rec.Warnings, "tool page has no bordered condition table")
	}
}

func (rc *reconstructor) mergeHolderPage(h Heading, p *Page) {
	rec := rc.current
	rec.HolderPageName = h.Name

	if len(p.Tables) == 0 {
		rec.Warnings = append(rec.Warnings, "holder page has no table")
		return
	}
	kv := ReadKeyValue(p.Tables[0])
	rec.HolderComment = kv[KeyHolderComment]
}

// finalize seals the record under construction. A sealed record always has
// a display name; parsing that produced an empty one is flagged but never
// fails the run.
func (rc *reconstructor) finalize() {
	if rc.current == nil {
		return
	}
	if CleanText(rc.current.NCToolName) == "" {
		rc.current.NCToolName = unknownNameSentinel
		rc.current.Warnings = append(rc.current.Warnings,
			"assembly name was empty (possible parse failure)")
	}
	rc.records = append(rc.records, *rc.current)
	rc.current = nil
}

func (rc *reconstructor) finish() ([]Record, []string) {
	rc.finalize()
	return rc.records, rc.warnings
}
