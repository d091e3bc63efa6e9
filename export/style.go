package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Font variants used on the report sheet.
type fontKind int

const (
	fontNormal fontKind = iota
	fontHeader          // bold column headers
	fontTitle           // bold 14pt NC tool name
	fontNo              // bold 12pt sequence number
)

// Border line weights (excelize border style indices).
const (
	borderNone   = 0
	borderThin   = 1
	borderMedium = 2
)

// styler caches excelize style IDs. Styles in a workbook are whole-cell
// (font + alignment + border together), so every distinct combination used
// by the block grid needs its own ID; without a cache a large report would
// register thousands of identical styles.
type styler struct {
	f     *excelize.File
	cache map[string]int
}

func newStyler(f *excelize.File) *styler {
	return &styler{f: f, cache: make(map[string]int)}
}

func (s *styler) id(font fontKind, left, right, top, bottom int) (int, error) {
	key := fmt.Sprintf("%d:%d%d%d%d", font, left, right, top, bottom)
	if id, ok := s.cache[key]; ok {
		return id, nil
	}

	style := excelize.Style{
		Alignment: &excelize.Alignment{
			Vertical:   "center",
			Horizontal: "left",
			WrapText:   true,
		},
	}
	switch font {
	case fontHeader:
		style.Font = &excelize.Font{Size: 11, Bold: true}
	case fontTitle:
		style.Font = &excelize.Font{Size: 14, Bold: true}
	case fontNo:
		style.Font = &excelize.Font{Size: 12, Bold: true}
	default:
		style.Font = &excelize.Font{Size: 11}
	}

	for _, b := range []struct {
		side  string
		width int
	}{
		{"left", left}, {"right", right}, {"top", top}, {"bottom", bottom},
	} {
		if b.width == borderNone {
			continue
		}
		style.Border = append(style.Border, excelize.Border{
			Type:  b.side,
			Color: "000000",
			Style: b.width,
		})
	}

	id, err := s.f.NewStyle(&style)
	if err != nil {
		return 0, err
	}
	s.cache[key] = id
	return id, nil
}

// applyBlockBorder draws the block frame: thin inner grid, medium outline,
// and no inner horizontals through the vertically merged image column. The
// font applies to every cell except the No and name columns, which keep
// their own weights inside record blocks.
func applyBlockBorder(f *excelize.File, st *styler, sheet string, startRow, endRow int, font fontKind) error {
	for r := startRow; r <= endRow; r++ {
		for c := colNo; c <= colNote; c++ {
			left, right, top, bottom := borderThin, borderThin, borderThin, borderThin
			if r == startRow {
				top = borderMedium
			}
			if r == endRow {
				bottom = borderMedium
			}
			if c == colNo {
				left = borderMedium
			}
			if c == colNote {
				right = borderMedium
			}

			// The image column is merged across the block; suppress the
			// horizontal rules inside it.
			if c == colImage {
				if r != startRow {
					top = borderNone
				}
				if r != endRow {
					bottom = borderNone
				}
			}

			cellFont := font
			if font != fontHeader {
				switch c {
				case colNo:
					cellFont = fontNo
				case colName:
					cellFont = fontTitle
				}
			}

			id, err := st.id(cellFont, left, right, top, bottom)
			if err != nil {
				return err
			}
			cell, _ := excelize.CoordinatesToCellName(c, r)
			if err := f.SetCellStyle(sheet, cell, cell, id); err != nil {
				return err
			}
		}
	}
	return nil
}
