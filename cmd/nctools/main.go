// Command nctools converts a hyperMILL NC-tool HTML report into an XLSX
// tool list or block report.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	nctools "github.com/m1tkd23-lang/hypermill-nctools-html-exporter"
)

func main() {
	cmd := &cli.Command{
		Name:  "nctools",
		Usage: "Convert hyperMILL NC-tool HTML reports to XLSX",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "html",
				Aliases:  []string{"i"},
				Usage:    "Input HTML report path",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Aliases:  []string{"o"},
				Usage:    "Output directory",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "report",
				Usage: "Write the 3-row block report instead of the flat list",
			},
			&cli.BoolFlag{
				Name:  "no-embed",
				Usage: "Do not embed images (light mode)",
			},
			&cli.IntFlag{
				Name:  "max-px",
				Usage: "Max embedded image size in pixels",
				Value: 320,
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Block report label language (ja or en)",
				Value: "ja",
			},
		},
		Action: run,
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("export failed", "error", err)
		os.Exit(1)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	cfg := nctools.DefaultConfig()
	cfg.EmbedImages = !cmd.Bool("no-embed")
	cfg.MaxImagePx = cmd.Int("max-px")
	cfg.Lang = cmd.String("lang")

	progress := func(done, total int, msg string) {
		fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", done, total, msg)
	}

	var (
		outXLSX string
		summary nctools.Summary
		err     error
	)
	if cmd.Bool("report") {
		outXLSX, summary, err = nctools.ExportBlockReport(cmd.String("html"), cmd.String("out"), cfg, progress)
	} else {
		outXLSX, summary, err = nctools.ExportWorkbook(cmd.String("html"), cmd.String("out"), cfg, progress)
	}
	if err != nil {
		return err
	}

	fmt.Println("OK:", outXLSX)
	fmt.Printf("records=%d embedded_images=%d errors=%d\n",
		summary.Records, summary.EmbeddedImages, summary.Errors)
	return nil
}
