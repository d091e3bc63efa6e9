package htmlreport

// Record is one normalized NC tool assembly reconstructed from the report.
// All dimension fields are kept as display strings: the spreadsheet output
// reproduces the report verbatim, so nothing is re-parsed downstream.
type Record struct {
	// identity
	NCToolNo      int
	NCToolName    string
	NCToolComment string

	// assembly components
	HolderName     string
	HolderLength   string
	ToolName       string
	ToolLength     string
	ExtensionsDesc string // concatenated extension rows, e.g. "EXT1(L=50) / EXT2(L=80)"

	// computed lengths (mm, formatted for display)
	ExtOverhangMM  string // sum of extension lengths; "0" when no extension rows
	ToolOverhangMM string // tool length re-formatted; "" when not parseable
	OverhangMM     string // extension sum + tool length; "" when no tool length
	TotalLengthMM  string // reserved for holder + ext + tool; not computed yet

	// image
	ImageRelSrc     string // src attribute as written in the report
	ImageAbsPath    string // resolved on disk, filled by the image step
	ImageCachedPath string // resized temp PNG, filled by the image step

	// tool page
	ToolType     string
	ToolPageName string

	ToolDiameterMM     string
	ToolCornerRadiusMM string
	ToolFlutes         string
	ToolCutLengthApMM  string
	ToolShankDMM       string
	ToolChamferLenMM   string
	ToolTipLenMM       string
	ToolTaperAngleDeg  string
	SpindleRotation    string

	// machining conditions (first row only)
	CondSn string
	CondFX string
	CondFZ string
	CondFr string
	CondAp string
	CondAe string

	// holder page
	HolderPageName string
	HolderComment  string

	// provenance
	SourcePath string

	// non-fatal issues found while building this record
	Warnings []string
}
