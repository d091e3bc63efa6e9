package htmlreport

import (
	"strings"
)

// extensionKinds is the set of coupling-type spellings that count as an
// extension-like component. The report drifts between terms depending on
// tool vendor and UI language.
var extensionKinds = map[string]bool{
	"extension": true,
	"subholder": true,
	"ext":       true,
}

// applyComponentRows scans an assembly's component grid once and fills the
// holder/tool/extension fields plus the three derived overhang lengths.
//
// The rules match the report's own display convention:
//   - extension overhang is the sum of extension lengths, "0" when the
//     assembly has no extension rows at all;
//   - tool overhang is the tool row's length re-formatted, empty when the
//     length did not parse;
//   - total overhang is extension sum + tool length, and is only reported
//     when the tool length parsed. Partial data never fabricates a number.
func applyComponentRows(rec *Record, rows []map[string]string) {
	var (
		toolLen   float64
		toolFound bool
		extSum    float64
		extFound  bool
	)

	for _, row := range rows {
		kind := strings.ToLower(strings.TrimSpace(row[KeyCouplingType]))
		name := row[KeyName]
		lnStr := row[KeyTotalLength]
		ln, ok := ParseMeasurement(lnStr)

		switch {
		case kind == "holder":
			rec.HolderName = name
			rec.HolderLength = lnStr

		case kind == "tool":
			rec.ToolName = name
			rec.ToolLength = lnStr
			toolLen, toolFound = ln, ok

		case extensionKinds[kind]:
			if ok {
				extSum += ln
			}
			extFound = true
		}
	}

	rec.ExtensionsDesc = extensionsDesc(rows)

	if extFound {
		rec.ExtOverhangMM = FormatMeasurement(extSum)
	} else {
		rec.ExtOverhangMM = "0"
	}

	if toolFound {
		rec.ToolOverhangMM = FormatMeasurement(toolLen)
		rec.OverhangMM = FormatMeasurement(extSum + toolLen)
	} else {
		rec.ToolOverhangMM = ""
		rec.OverhangMM = ""
	}
}

// extensionsDesc concatenates the extension-like rows into the display
// string used by the report sheets, e.g. "EXT_A(L=25) / EXT_B(L=50)".
// Rows with neither a name nor a length are skipped.
func extensionsDesc(rows []map[string]string) string {
	var parts []string
	for _, row := range rows {
		kind := strings.ToLower(strings.TrimSpace(row[KeyCouplingType]))
		if !extensionKinds[kind] {
			continue
		}
		name := strings.TrimSpace(row[KeyName])
		ln := strings.TrimSpace(row[KeyTotalLength])
		switch {
		case name == "" && ln == "":
			continue
		case ln == "":
			parts = append(parts, name)
		case name == "":
			parts = append(parts, "(L="+ln+")")
		default:
			parts = append(parts, name+"(L="+ln+")")
		}
	}
	return strings.Join(parts, " / ")
}
