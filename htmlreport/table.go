package htmlreport

// ReadKeyValue flattens a label/value table into a map keyed by canonical
// field names. The report prints either one pair per row (2 cells) or two
// adjacent pairs (4 cells); rows with any other cell count are layout
// artifacts and are skipped. Rows with an empty label cell are skipped too.
func ReadKeyValue(t Table) map[string]string {
	kv := make(map[string]string)
	for _, cells := range t.Rows {
		switch len(cells) {
		case 2:
			if cells[0] != "" {
				kv[CanonicalKey(cells[0])] = cells[1]
			}
		case 4:
			if cells[0] != "" {
				kv[CanonicalKey(cells[0])] = cells[1]
			}
			if cells[2] != "" {
				kv[CanonicalKey(cells[2])] = cells[3]
			}
		}
	}
	return kv
}

// ReadGrid reads a header-row table into one map per data row, keyed by the
// canonicalized header cells. All-empty rows are dropped; a row shorter than
// the header yields "" for the missing trailing columns. An empty table
// yields nil.
func ReadGrid(t Table) []map[string]string {
	if len(t.Rows) == 0 {
		return nil
	}

	header := make([]string, len(t.Rows[0]))
	for i, h := range t.Rows[0] {
		header[i] = CanonicalKey(h)
	}

	var out []map[string]string
	for _, cells := range t.Rows[1:] {
		empty := true
		for _, c := range cells {
			if c != "" {
				empty = false
				break
			}
		}
		if empty {
			continue
		}

		row := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(cells) {
				row[key] = cells[i]
			} else {
				row[key] = ""
			}
		}
		out = append(out, row)
	}
	return out
}
