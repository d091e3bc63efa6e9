package htmlreport

import (
	"testing"
)

func row(kind, name, length string) map[string]string {
	return map[string]string{
		KeyCouplingType: kind,
		KeyName:         name,
		KeyTotalLength:  length,
	}
}

func TestApplyComponentRows(t *testing.T) {
	tests := []struct {
		name            string
		rows            []map[string]string
		wantExtOverhang string
		wantToolOver    string
		wantOverhang    string
	}{
		{
			name:            "extension only",
			rows:            []map[string]string{row("extension", "EXT_A", "25")},
			wantExtOverhang: "25",
			wantToolOver:    "",
			wantOverhang:    "",
		},
		{
			name:            "tool only",
			rows:            []map[string]string{row("tool", "T1", "40")},
			wantExtOverhang: "0",
			wantToolOver:    "40",
			wantOverhang:    "40",
		},
		{
			name: "extension and tool",
			rows: []map[string]string{
				row("holder", "H1", "100"),
				row("extension", "EXT_A", "10"),
				row("subholder", "EXT_B", "15"),
				row("tool", "T1", "40"),
			},
			wantExtOverhang: "25",
			wantToolOver:    "40",
			wantOverhang:    "65",
		},
		{
			name: "extension without parseable length still counts as present",
			rows: []map[string]string{
				row("extension", "EXT_A", "n/a"),
				row("tool", "T1", "40"),
			},
			wantExtOverhang: "0",
			wantToolOver:    "40",
			wantOverhang:    "40",
		},
		{
			name:            "tool length unparseable",
			rows:            []map[string]string{row("tool", "T1", "unknown")},
			wantExtOverhang: "0",
			wantToolOver:    "",
			wantOverhang:    "",
		},
		{
			name:            "no rows",
			rows:            nil,
			wantExtOverhang: "0",
			wantToolOver:    "",
			wantOverhang:    "",
		},
		{
			name: "kind is case and dialect tolerant",
			rows: []map[string]string{
				row("Ext", "EXT_A", "25"),
				row("TOOL", "T1", "40"),
			},
			wantExtOverhang: "25",
			wantToolOver:    "40",
			wantOverhang:    "65",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec Record
			applyComponentRows(&rec, tt.rows)
			if rec.ExtOverhangMM != tt.wantExtOverhang {
				t.Errorf("ExtOverhangMM = %q, want %q", rec.ExtOverhangMM, tt.wantExtOverhang)
			}
			if rec.ToolOverhangMM != tt.wantToolOver {
				t.Errorf("ToolOverhangMM = %q, want %q", rec.ToolOverhangMM, tt.wantToolOver)
			}
			if rec.OverhangMM != tt.wantOverhang {
				t.Errorf("OverhangMM = %q, want %q", rec.OverhangMM, tt.wantOverhang)
			}
		})
	}
}

func TestApplyComponentRowsHolderAndTool(t *testing.T) {
	var rec Record
	applyComponentRows(&rec, []map[string]string{
		row("holder", "HSK-A63", "100.000"),
		row("tool", "BALL_D10", "40.5"),
	})

	if rec.HolderName != "HSK-A63" || rec.HolderLength != "100.000" {
		t.Errorf("holder fields = %q/%q", rec.HolderName, rec.HolderLength)
	}
	// Length strings pass through verbatim; only derived fields re-format.
	if rec.ToolName != "BALL_D10" || rec.ToolLength != "40.5" {
		t.Errorf("tool fields = %q/%q", rec.ToolName, rec.ToolLength)
	}
	if rec.ToolOverhangMM != "40.5" {
		t.Errorf("ToolOverhangMM = %q", rec.ToolOverhangMM)
	}
}

func TestExtensionsDesc(t *testing.T) {
	tests := []struct {
		name string
		rows []map[string]string
		want string
	}{
		{
			"name and length",
			[]map[string]string{row("extension", "EXT_A", "25"), row("subholder", "EXT_B", "50")},
			"EXT_A(L=25) / EXT_B(L=50)",
		},
		{
			"name only",
			[]map[string]string{row("extension", "EXT_A", "")},
			"EXT_A",
		},
		{
			"length only",
			[]map[string]string{row("extension", "", "25")},
			"(L=25)",
		},
		{
			"blank rows and non-extension rows skipped",
			[]map[string]string{row("extension", "", ""), row("tool", "T1", "40")},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extensionsDesc(tt.rows); got != tt.want {
				t.Errorf("extensionsDesc = %q, want %q", got, tt.want)
			}
		})
	}
}
