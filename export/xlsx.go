// Package export renders reconstructed tool records into XLSX workbooks.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/htmlreport"
)

// ErrorEntry is one line of the workbook's errors sheet: a parse warning or
// image problem tied to a record row.
type ErrorEntry struct {
	Row     int // row of the record in the output sheet; 0 for document-level
	Name    string
	Message string
}

// WorkbookOptions configures WriteWorkbook.
type WorkbookOptions struct {
	EmbedImages bool
	Errors      []ErrorEntry
}

// listColumns is the flat sheet's column order. Values are written as plain
// strings; everything numeric already is a display string on the record.
var listColumns = []string{
	"nctool_no", "nctool_name", "nctool_comment",
	"holder_name", "holder_length", "tool_name", "tool_length",
	"tool_type", "tool_page_name",
	"tool_diameter_mm", "tool_corner_radius_mm", "tool_flutes",
	"tool_cut_length_ap_mm", "tool_shank_d_mm", "tool_chamfer_len_mm",
	"tool_tip_len_mm", "tool_taper_angle_deg", "spindle_rotation",
	"cond_S_n", "cond_FX", "cond_FZ", "cond_Fr", "cond_ap", "cond_ae",
	"image_rel_src", "image_abs_path", "image_cached_path",
	"source_html_path",
}

func listValues(rec *htmlreport.Record) []any {
	return []any{
		rec.NCToolNo, rec.NCToolName, rec.NCToolComment,
		rec.HolderName, rec.HolderLength, rec.ToolName, rec.ToolLength,
		rec.ToolType, rec.ToolPageName,
		rec.ToolDiameterMM, rec.ToolCornerRadiusMM, rec.ToolFlutes,
		rec.ToolCutLengthApMM, rec.ToolShankDMM, rec.ToolChamferLenMM,
		rec.ToolTipLenMM, rec.ToolTaperAngleDeg, rec.SpindleRotation,
		rec.CondSn, rec.CondFX, rec.CondFZ, rec.CondFr, rec.CondAp, rec.CondAe,
		rec.ImageRelSrc, rec.ImageAbsPath, rec.ImageCachedPath,
		rec.SourcePath,
	}
}

// WriteWorkbook writes the flat "nctools" listing: one row per record, an
// optional trailing image column with the cached thumbnails embedded, plus
// "meta" and "errors" sheets. Returns the number of record rows written and
// the number of images embedded.
func WriteWorkbook(records []htmlreport.Record, outPath string, opts WorkbookOptions) (int, int, error) {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return 0, 0, fmt.Errorf("creating output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "nctools"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return 0, 0, err
	}

	cols := listColumns
	if opts.EmbedImages {
		cols = append(append([]string{}, listColumns...), "image")
	}

	// Track the widest cell per column for autosizing.
	maxLen := make([]int, len(cols))
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c
		maxLen[i] = len(c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, 0, err
	}

	embedded := 0
	for i := range records {
		rec := &records[i]
		row := i + 2

		vals := listValues(rec)
		if opts.EmbedImages {
			vals = append(vals, "")
		}
		for c, v := range vals {
			s := fmt.Sprint(v)
			if len(s) > maxLen[c] {
				maxLen[c] = len(s)
			}
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(sheet, cell, &vals); err != nil {
			return 0, 0, err
		}
		if err := f.SetRowHeight(sheet, row, 90); err != nil {
			return 0, 0, err
		}
	}

	if opts.EmbedImages {
		imgCol := len(cols)
		for i := range records {
			p := records[i].ImageCachedPath
			if p == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(imgCol, i+2)
			if err := f.AddPicture(sheet, cell, p, nil); err != nil {
				continue // a bad image never fails the export
			}
			embedded++
		}
		name, _ := excelize.ColumnNumberToName(imgCol)
		f.SetColWidth(sheet, name, name, 18)
		maxLen[imgCol-1] = 0 // keep the fixed width
	}

	for i, ln := range maxLen {
		if ln == 0 {
			continue
		}
		w := float64(ln + 2)
		if w < 10 {
			w = 10
		}
		if w > 60 {
			w = 60
		}
		name, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, name, name, w)
	}

	if err := writeMetaSheet(f, len(records), embedded, opts.EmbedImages); err != nil {
		return 0, 0, err
	}
	if err := writeErrorsSheet(f, opts.Errors); err != nil {
		return 0, 0, err
	}

	if err := f.SaveAs(outPath); err != nil {
		return 0, 0, fmt.Errorf("saving workbook: %w", err)
	}
	return len(records), embedded, nil
}

func writeMetaSheet(f *excelize.File, records, embedded int, embedImages bool) error {
	if _, err := f.NewSheet("meta"); err != nil {
		return err
	}
	rows := [][]any{
		{"records", records},
		{"embedded_images", embedded},
		{"embed_images", strconv.FormatBool(embedImages)},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("meta", cell, &r); err != nil {
			return err
		}
	}
	return nil
}

func writeErrorsSheet(f *excelize.File, entries []ErrorEntry) error {
	if _, err := f.NewSheet("errors"); err != nil {
		return err
	}
	header := []any{"row_index(1-based in nctools)", "nctool_name", "message"}
	if err := f.SetSheetRow("errors", "A1", &header); err != nil {
		return err
	}
	for i, e := range entries {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{e.Row, e.Name, e.Message}
		if err := f.SetSheetRow("errors", cell, &row); err != nil {
			return err
		}
	}
	return nil
}
