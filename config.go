package nctools

// Config holds the export settings shared by the command-line and library
// entry points.
type Config struct {
	// EmbedImages controls whether each record's picture is resized and
	// embedded in the workbook. Off, the export skips all image work.
	EmbedImages bool `json:"embed_images" yaml:"embed_images"`

	// MaxImagePx caps the longest side of embedded thumbnails, in pixels.
	MaxImagePx int `json:"max_image_px" yaml:"max_image_px"`

	// Lang selects the block report's sheet labels: "ja" or "en".
	// The parser itself is dialect-agnostic; this only affects output.
	Lang string `json:"lang" yaml:"lang"`
}

// DefaultConfig returns the settings the original tooling shipped with.
func DefaultConfig() Config {
	return Config{
		EmbedImages: true,
		MaxImagePx:  320,
		Lang:        "ja",
	}
}
