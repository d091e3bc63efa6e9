// Package images resolves the picture references of a parsed report and
// prepares downscaled copies for spreadsheet embedding.
package images

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
)

// Resolve maps an img src from the report (typically a Windows-style
// relative path like `img\xxxx.png`) to a file next to the source HTML.
// Returns "" when the reference is empty or the file does not exist.
func Resolve(htmlPath, relSrc string) string {
	if relSrc == "" {
		return ""
	}
	rel := strings.ReplaceAll(relSrc, `\`, "/")
	p := filepath.Join(filepath.Dir(htmlPath), filepath.FromSlash(rel))

	info, err := os.Stat(p)
	if err != nil || info.IsDir() {
		return ""
	}
	return p
}

// MakeTempResizedPNG decodes srcPath, scales it down so its longest side is
// at most maxPx, and writes the result as a PNG in the OS temp directory.
// The caller owns the returned file and removes it after embedding. Images
// already within bounds are re-encoded without scaling.
func MakeTempResizedPNG(srcPath string, maxPx int) (string, error) {
	f, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("opening image %s: %w", srcPath, err)
	}
	src, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		return "", fmt.Errorf("decoding image %s: %w", srcPath, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	longest := max(w, h)

	out := src
	if maxPx > 0 && longest > maxPx {
		scale := float64(maxPx) / float64(longest)
		nw := max(1, int(float64(w)*scale))
		nh := max(1, int(float64(h)*scale))
		dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		out = dst
	}

	tmp, err := os.CreateTemp("", "hmimg_*.png")
	if err != nil {
		return "", fmt.Errorf("creating temp image: %w", err)
	}
	if err := png.Encode(tmp, out); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("encoding temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

// Size reports an image file's pixel dimensions without decoding the full
// bitmap. Used to center pictures inside merged spreadsheet cells.
func Size(path string) (w, h int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("reading image config %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
