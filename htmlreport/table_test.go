package htmlreport

import (
	"reflect"
	"testing"
)

func TestReadKeyValue(t *testing.T) {
	tbl := Table{Rows: [][]string{
		{"直径", "10"},
		{"刃数", "4", "コーナー半径", "0.5"},
		{"", "ignored"},
		{"odd", "row", "here"},
		{"Shank diameter", "10"},
	}}

	got := ReadKeyValue(tbl)
	want := map[string]string{
		KeyDiameter:      "10",
		KeyFlutes:        "4",
		KeyCornerRadius:  "0.5",
		KeyShankDiameter: "10",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ReadKeyValue = %v, want %v", got, want)
	}
}

func TestReadKeyValueUnmappedLabelPassesThrough(t *testing.T) {
	tbl := Table{Rows: [][]string{{"Some new column", "x"}}}
	got := ReadKeyValue(tbl)
	if got["Some new column"] != "x" {
		t.Errorf("unmapped label lost: %v", got)
	}
}

func TestReadGrid(t *testing.T) {
	tbl := Table{Rows: [][]string{
		{"カップリング種類", "名称", "全長"},
		{"holder", "HLD-1", "100"},
		{"", "", ""},
		{"tool", "T-1"}, // short row: missing cells fill with ""
	}}

	got := ReadGrid(tbl)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0][KeyCouplingType] != "holder" || got[0][KeyName] != "HLD-1" || got[0][KeyTotalLength] != "100" {
		t.Errorf("first row wrong: %v", got[0])
	}
	if got[1][KeyCouplingType] != "tool" || got[1][KeyTotalLength] != "" {
		t.Errorf("short row not padded: %v", got[1])
	}
}

func TestReadGridEmpty(t *testing.T) {
	if got := ReadGrid(Table{}); got != nil {
		t.Errorf("empty table should yield nil, got %v", got)
	}
}

func TestReadGridEnglishHeader(t *testing.T) {
	tbl := Table{Rows: [][]string{
		{"Coupling type", "Name", "Total length"},
		{"extension", "EXT_A", "25"},
	}}
	got := ReadGrid(tbl)
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	// Both dialects land on the same canonical keys.
	if got[0][KeyCouplingType] != "extension" || got[0][KeyTotalLength] != "25" {
		t.Errorf("english header not canonicalized: %v", got[0])
	}
}
