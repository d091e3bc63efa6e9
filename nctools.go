// Package nctools converts hyperMILL NC-tool HTML reports into normalized
// tool-assembly spreadsheets. Parsing lives in htmlreport, spreadsheet
// output in export; this package wires them together with image handling
// and output-path conventions.
package nctools

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/export"
	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/htmlreport"
	"github.com/m1tkd23-lang/hypermill-nctools-html-exporter/images"
)

// Progress reports export progress to interactive front ends.
type Progress func(done, total int, msg string)

// Summary describes one completed export.
type Summary struct {
	HTML           string `json:"html"`
	OutXLSX        string `json:"out_xlsx"`
	Records        int    `json:"records"`
	EmbeddedImages int    `json:"embedded_images"`
	Errors         int    `json:"errors"`
	Lang           string `json:"lang,omitempty"`
}

// ParseFile parses one report from disk. It returns the reconstructed
// records, the document-level warnings, and an error only when the file
// cannot be read or contains no page blocks.
func ParseFile(path string) ([]htmlreport.Record, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	return htmlreport.Parse(f, path)
}

// ExportWorkbook parses htmlPath and writes the flat record listing to
// <outDir>/<stem>/nctools_list__<stem>.xlsx. Each record's image reference
// is resolved relative to the HTML and embedded as a downscaled thumbnail
// unless cfg.EmbedImages is off.
func ExportWorkbook(htmlPath, outDir string, cfg Config, progress Progress) (string, Summary, error) {
	return runExport(htmlPath, outDir, cfg, progress, false)
}

// ExportBlockReport is like ExportWorkbook but writes the 3-row block
// report sheet to <outDir>/<stem>/nctools_report__<stem>.xlsx, with sheet
// labels in cfg.Lang.
func ExportBlockReport(htmlPath, outDir string, cfg Config, progress Progress) (string, Summary, error) {
	return runExport(htmlPath, outDir, cfg, progress, true)
}

func runExport(htmlPath, outDir string, cfg Config, progress Progress, blockReport bool) (string, Summary, error) {
	step := func(done, total int, msg string) {
		if progress != nil {
			progress(done, total, msg)
		}
	}

	absHTML, err := filepath.Abs(htmlPath)
	if err != nil {
		return "", Summary{}, fmt.Errorf("resolving input path: %w", err)
	}

	step(0, 3, "parsing HTML")
	start := time.Now()
	records, docWarnings, err := ParseFile(absHTML)
	if err != nil {
		return "", Summary{}, err
	}
	slog.Info("export: parsed report", "file", filepath.Base(absHTML),
		"records", len(records), "elapsed", time.Since(start).Round(time.Millisecond))

	step(1, 3, "preparing images")
	// The error-sheet row index differs between the two layouts: the flat
	// listing counts from its header row, the block report per block.
	rowBase := 2
	if blockReport {
		rowBase = 1
	}
	entries, temps := prepareImages(records, absHTML, cfg, rowBase)
	defer func() {
		for _, p := range temps {
			os.Remove(p)
		}
	}()
	for _, w := range docWarnings {
		entries = append(entries, export.ErrorEntry{Message: w})
	}

	stem := SanitizeFilename(strings.TrimSuffix(filepath.Base(absHTML), filepath.Ext(absHTML)))
	outFolder := filepath.Join(outDir, stem)

	step(2, 3, "writing XLSX")
	var (
		outXLSX  string
		written  int
		embedded int
	)
	if blockReport {
		outXLSX = filepath.Join(outFolder, "nctools_report__"+stem+".xlsx")
		written, embedded, err = export.WriteBlockReport(records, outXLSX, export.ReportOptions{
			EmbedImages: cfg.EmbedImages,
			Lang:        cfg.Lang,
		})
	} else {
		outXLSX = filepath.Join(outFolder, "nctools_list__"+stem+".xlsx")
		written, embedded, err = export.WriteWorkbook(records, outXLSX, export.WorkbookOptions{
			EmbedImages: cfg.EmbedImages,
			Errors:      entries,
		})
	}
	if err != nil {
		return "", Summary{}, err
	}

	step(3, 3, "done")
	summary := Summary{
		HTML:           absHTML,
		OutXLSX:        outXLSX,
		Records:        written,
		EmbeddedImages: embedded,
		Errors:         len(entries),
	}
	if blockReport {
		summary.Lang = cfg.Lang
	}
	return outXLSX, summary, nil
}

// prepareImages resolves each record's image reference next to the source
// HTML and, when embedding, caches a downscaled PNG in the temp directory.
// Image problems and per-record parse warnings become error-sheet entries;
// none of them stop the export.
func prepareImages(records []htmlreport.Record, htmlPath string, cfg Config, rowBase int) ([]export.ErrorEntry, []string) {
	var entries []export.ErrorEntry
	var temps []string

	for i := range records {
		rec := &records[i]
		row := rowBase + i

		rec.ImageAbsPath = images.Resolve(htmlPath, rec.ImageRelSrc)

		if cfg.EmbedImages {
			if rec.ImageAbsPath == "" {
				entries = append(entries, export.ErrorEntry{
					Row:     row,
					Name:    rec.NCToolName,
					Message: fmt.Sprintf("image not found: %s", rec.ImageRelSrc),
				})
			} else {
				tmp, err := images.MakeTempResizedPNG(rec.ImageAbsPath, cfg.MaxImagePx)
				if err != nil {
					entries = append(entries, export.ErrorEntry{
						Row: row, Name: rec.NCToolName, Message: err.Error(),
					})
				} else {
					rec.ImageCachedPath = tmp
					temps = append(temps, tmp)
				}
			}
		}

		for _, w := range rec.Warnings {
			entries = append(entries, export.ErrorEntry{Row: row, Name: rec.NCToolName, Message: w})
		}
	}

	return entries, temps
}

// SanitizeFilename strips characters Windows rejects in file names and
// trailing dots/spaces. An empty result falls back to "output".
func SanitizeFilename(name string) string {
	out := name
	for _, ch := range `<>:"/\|?*` {
		out = strings.ReplaceAll(out, string(ch), "_")
	}
	out = strings.TrimRight(out, ". ")
	out = strings.TrimSpace(out)
	if out == "" {
		return "output"
	}
	return out
}
