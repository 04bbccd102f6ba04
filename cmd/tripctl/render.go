package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
	"github.com/urfave/cli/v2"

	"itinera/internal/document"
)

type renderJob struct {
	input    string
	outDir   string
	logo     string
	shareURL string
	owner    string
	at       time.Time
}

type renderResult struct {
	input  string
	output string
	pages  int
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "render one or more itinerary JSON files to PDF",
		ArgsUsage: "FILE [FILE...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out-dir", Value: ".", Usage: "directory for the PDF files"},
			&cli.IntFlag{Name: "workers", Value: 4, Usage: "documents rendered at the same time"},
			&cli.StringFlag{Name: "logo", EnvVars: []string{"PDF_LOGO_PATH"}},
			&cli.StringFlag{Name: "share-url", Usage: "link printed as a QR code in the header"},
			&cli.StringFlag{Name: "owner", Usage: "name printed under the title"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("at least one itinerary file is required", 2)
			}
			if err := os.MkdirAll(c.String("out-dir"), 0o755); err != nil {
				return err
			}

			jobs := make([]renderJob, 0, c.NArg())
			now := time.Now().UTC()
			for _, input := range c.Args().Slice() {
				jobs = append(jobs, renderJob{
					input:    input,
					outDir:   c.String("out-dir"),
					logo:     c.String("logo"),
					shareURL: c.String("share-url"),
					owner:    c.String("owner"),
					at:       now,
				})
			}

			results, err := renderAll(jobs, c.Int("workers"))
			for _, r := range results {
				log.Info().Str("input", r.input).Str("output", r.output).Int("pages", r.pages).Msg("rendered")
			}
			return err
		},
	}
}

// renderAll renders every job on a bounded pool. Failed jobs do not stop
// the others; their errors are joined.
func renderAll(jobs []renderJob, workers int) ([]renderResult, error) {
	if workers < 1 {
		workers = 1
	}

	p := pool.NewWithResults[renderResult]().WithErrors().WithMaxGoroutines(workers)
	for _, job := range jobs {
		p.Go(func() (renderResult, error) {
			return renderOne(job)
		})
	}
	return p.Wait()
}

func renderOne(job renderJob) (renderResult, error) {
	tf, err := readTripFile(job.input)
	if err != nil {
		return renderResult{}, err
	}

	doc, err := document.Render(tf.Itinerary, document.Metadata{
		Destination: tf.Request.Destination,
		Duration:    tf.Request.Duration,
		PeopleCount: tf.Request.PeopleCount,
		Budget:      tf.Request.Budget,
		Currency:    tf.Request.Currency,
		GeneratedAt: job.at,
		OwnerName:   job.owner,
		ShareURL:    job.shareURL,
		LogoPath:    job.logo,
	})
	if err != nil {
		log.Error().Err(err).Str("input", job.input).Msg("render failed")
		return renderResult{}, err
	}

	base := strings.TrimSuffix(filepath.Base(job.input), filepath.Ext(job.input))
	output := filepath.Join(job.outDir, base+".pdf")
	if err := os.WriteFile(output, doc.Bytes, 0o644); err != nil {
		return renderResult{}, err
	}

	return renderResult{input: job.input, output: output, pages: doc.PageCount}, nil
}
