package htmlreport

// Canonical field keys. The report is exported by hyperMILL in either the
// Japanese or the English UI language; both label vocabularies normalize to
// these so downstream code never sees a dialect.
const (
	KeyNCToolComment   = "nctool_comment"
	KeyHolderComment   = "holder_comment"
	KeyDiameter        = "diameter"
	KeyCornerRadius    = "corner_radius"
	KeyFlutes          = "flutes"
	KeyCutLengthAp     = "cut_length_ap"
	KeyShankDiameter   = "shank_diameter"
	KeyChamferLength   = "chamfer_length"
	KeyTipLength       = "tip_length"
	KeyTaperAngle      = "taper_angle"
	KeySpindleRotation = "spindle_rotation"
	KeyCouplingType    = "coupling_type"
	KeyName            = "name"
	KeyTotalLength     = "total_length"
)

// canonicalKeys maps localized table labels (already whitespace-cleaned,
// exact match) to canonical keys. The condition grid columns S (n), FX, FZ,
// Fr, ap, ae are spelled identically in both UI languages and stay as-is.
var canonicalKeys = map[string]string{
	// Japanese
	"NCツール コメント": KeyNCToolComment,
	"ホルダー コメント":  KeyHolderComment,
	"直径":         KeyDiameter,
	"コーナー半径":     KeyCornerRadius,
	"刃数":         KeyFlutes,
	"切削長さ (ap)":  KeyCutLengthAp,
	"シャンク直径":     KeyShankDiameter,
	"面取り長さ":      KeyChamferLength,
	"先端長さ":       KeyTipLength,
	"テーパー角度":     KeyTaperAngle,
	"スピンドル回転方向":  KeySpindleRotation,
	"カップリング種類":   KeyCouplingType,
	"名称":         KeyName,
	"全長":         KeyTotalLength,
	// English
	"NC-Tool comment":     KeyNCToolComment,
	"Holder comment":      KeyHolderComment,
	"Diameter":            KeyDiameter,
	"Corner radius":       KeyCornerRadius,
	"Number of flutes":    KeyFlutes,
	"Cutting length (ap)": KeyCutLengthAp,
	"Shank diameter":      KeyShankDiameter,
	"Chamfer length":      KeyChamferLength,
	"Tip length":          KeyTipLength,
	"Taper angle":         KeyTaperAngle,
	"Spindle direction":   KeySpindleRotation,
	"Coupling type":       KeyCouplingType,
	"Name":                KeyName,
	"Total length":        KeyTotalLength,
}

// CanonicalKey maps a localized label to its canonical key. Labels outside
// the known set pass through unchanged so unexpected columns survive.
func CanonicalKey(label string) string {
	if k, ok := canonicalKeys[label]; ok {
		return k
	}
	return label
}
