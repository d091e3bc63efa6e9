package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/htmlreport"
	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/images"
)

// ReportOptions configures WriteBlockReport.
type ReportOptions struct {
	EmbedImages bool
	Lang        string // "ja" (default) or "en" sheet labels
}

// Block report column layout. Caliber, ID and the two compensation columns
// are hand-filled on the shop floor and stay empty in the export.
const (
	colNo = iota + 1
	colName
	colCaliber
	colIdent
	colCompH
	colCompD
	colImage
	colKind
	colComponent
	colDetail
	colNote
)

var reportColWidths = map[int]float64{
	colNo:        6,
	colName:      24,
	colCaliber:   7,
	colIdent:     7,
	colCompH:     7,
	colCompD:     7,
	colImage:     40,
	colKind:      12,
	colComponent: 55,
	colDetail:    55,
	colNote:      50,
}

type reportLabels struct {
	headers      []string
	diameter     string
	flutes       string
	radius       string
	shank        string
	taper        string
	rotation     string
	extOverhang  string
	toolOverhang string
	overhang     string
}

var reportLabelSets = map[string]reportLabels{
	"ja": {
		headers: []string{
			"No", "NCツール名", "呼径", "識別", "補正H", "補正D",
			"画像", "種別", "名称", "詳細", "追記",
		},
		diameter: "直径", flutes: "刃数", radius: "R",
		shank: "シャンク", taper: "テーパー角", rotation: "回転",
		extOverhang: "extension突き出し", toolOverhang: "工具突き出し",
		overhang: "突き出し長さ",
	},
	"en": {
		headers: []string{
			"No", "NC tool name", "Caliber", "ID", "Comp. H", "Comp. D",
			"Image", "Kind", "Name", "Details", "Notes",
		},
		diameter: "Diameter", flutes: "Flutes", radius: "R",
		shank: "Shank", taper: "Taper angle", rotation: "Rotation",
		extOverhang: "Ext. overhang", toolOverhang: "Tool overhang",
		overhang: "Overhang length",
	},
}

const (
	blockRows      = 3
	blockStartRow  = 2
	blockRowHeight = 80.0
	labelSep       = " / "
)

// WriteBlockReport writes the 3-row-per-tool report sheet: record-wide
// columns merged across the block, a centered thumbnail, and one row each
// for holder, extension, and tool details. Returns blocks written and
// images embedded.
func WriteBlockReport(records []htmlreport.Record, outPath string, opts ReportOptions) (int, int, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, 0, fmt.Errorf("creating output directory: %w", err)
	}

	labels, ok := reportLabelSets[opts.Lang]
	if !ok {
		labels = reportLabelSets["ja"]
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Report"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return 0, 0, err
	}

	for col, w := range reportColWidths {
		name, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(sheet, name, name, w); err != nil {
			return 0, 0, err
		}
	}

	st := newStyler(f)

	// Header row.
	if err := f.SetRowHeight(sheet, 1, 22); err != nil {
		return 0, 0, err
	}
	for i, text := range labels.headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, text); err != nil {
			return 0, 0, err
		}
	}
	if err := applyBlockBorder(f, st, sheet, 1, 1, fontHeader); err != nil {
		return 0, 0, err
	}

	written, embedded := 0, 0
	for i := range records {
		rec := &records[i]
		r1 := blockStartRow + written*blockRows
		r3 := r1 + blockRows - 1

		if err := writeBlock(f, st, sheet, rec, labels, r1); err != nil {
			return 0, 0, err
		}

		if opts.EmbedImages && rec.ImageCachedPath != "" {
			if err := embedCentered(f, sheet, rec.ImageCachedPath, colImage, r1, r3); err == nil {
				embedded++
			}
		}
		written++
	}

	if err := f.SaveAs(outPath); err != nil {
		return 0, 0, fmt.Errorf("saving report: %w", err)
	}
	return written, embedded, nil
}

func writeBlock(f *excelize.File, st *styler, sheet string, rec *htmlreport.Record,
	labels reportLabels, r1 int) error {

	r2, r3 := r1+1, r1+2

	for r := r1; r <= r3; r++ {
		if err := f.SetRowHeight(sheet, r, blockRowHeight); err != nil {
			return err
		}
	}

	// Record-wide columns span the whole block.
	for _, c := range []int{colNo, colName, colCaliber, colIdent, colCompH, colCompD, colImage, colNote} {
		top, _ := excelize.CoordinatesToCellName(c, r1)
		bottom, _ := excelize.CoordinatesToCellName(c, r3)
		if err := f.MergeCell(sheet, top, bottom); err != nil {
			return err
		}
	}

	set := func(col, row int, v any) error {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		return f.SetCellValue(sheet, cell, v)
	}

	if err := set(colNo, r1, rec.NCToolNo); err != nil {
		return err
	}
	if err := set(colName, r1, rec.NCToolName); err != nil {
		return err
	}

	// Holder row.
	holder := rec.HolderName
	if holder == "" {
		holder = rec.HolderPageName
	}
	if err := set(colKind, r1, "holder"); err != nil {
		return err
	}
	if err := set(colComponent, r1, holder); err != nil {
		return err
	}
	holderDetail := strings.Join([]string{
		labels.diameter + ": " + rec.ToolDiameterMM,
		labels.flutes + ": " + rec.ToolFlutes,
		labels.radius + ": " + rec.ToolCornerRadiusMM,
	}, labelSep) + "\n" +
		labels.shank + ": " + rec.ToolShankDMM + "\n" +
		labels.taper + ": " + rec.ToolTaperAngleDeg + labelSep +
		labels.rotation + ": " + rec.SpindleRotation
	if err := set(colDetail, r1, holderDetail); err != nil {
		return err
	}

	// Extension row.
	if err := set(colKind, r2, "extension"); err != nil {
		return err
	}
	if err := set(colComponent, r2, rec.ExtensionsDesc); err != nil {
		return err
	}
	extDetail := labels.extOverhang + ": " + rec.ExtOverhangMM + labelSep +
		labels.toolOverhang + ": " + rec.ToolOverhangMM
	if err := set(colDetail, r2, extDetail); err != nil {
		return err
	}

	// Tool row.
	tool := rec.ToolPageName
	if tool == "" {
		tool = rec.ToolName
	}
	if err := set(colKind, r3, "tool"); err != nil {
		return err
	}
	if err := set(colComponent, r3, tool); err != nil {
		return err
	}
	if err := set(colDetail, r3, labels.overhang+": "+rec.OverhangMM); err != nil {
		return err
	}

	return applyBlockBorder(f, st, sheet, r1, r3, fontNormal)
}

// embedCentered anchors the thumbnail at the top of the merged image cell
// with pixel offsets that center it over the whole block.
func embedCentered(f *excelize.File, sheet, imgPath string, col, rowTop, rowBottom int) error {
	imgW, imgH, err := images.Size(imgPath)
	if err != nil {
		return err
	}

	cellW := colWidthToPixels(reportColWidths[col])
	cellH := (rowBottom - rowTop + 1) * rowHeightToPixels(blockRowHeight)

	offX := (cellW - imgW) / 2
	if offX < 0 {
		offX = 0
	}
	offX += 12 // nudge clear of the block border
	offY := (cellH - imgH) / 2
	if offY < 0 {
		offY = 0
	}

	cell, _ := excelize.CoordinatesToCellName(col, rowTop)
	return f.AddPicture(sheet, cell, imgPath, &excelize.GraphicOptions{
		OffsetX: offX,
		OffsetY: offY,
	})
}

// Spreadsheet unit conversions, matching how the report sheet is sized.
func colWidthToPixels(w float64) int {
	if w <= 0 {
		return 0
	}
	return int(w*7.5 + 5)
}

func rowHeightToPixels(points float64) int {
	return int(points * 96.0 / 72.0)
}
