// Package document lays an itinerary out as a paginated A4 PDF.
package document

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"

	"itinera/internal/models/response_models"
	"itinera/pkg/destination"
	"itinera/pkg/utils"
)

const Attribution = "Generated by Itinera - AI travel planner"

// Metadata is the trip context printed alongside the itinerary.
type Metadata struct {
	Destination string
	Duration    int
	PeopleCount int
	Budget      float64
	Currency    string
	GeneratedAt time.Time
	OwnerName   string
	// ShareURL, when set, is printed as a QR code in the header.
	ShareURL string
	// LogoPath is an optional PNG or JPEG drawn in the header.
	LogoPath string
}

// Document is a finished PDF. Pages holds the text drawn on each page in
// drawing order.
type Document struct {
	Bytes     []byte
	PageCount int
	Pages     [][]string
}

// Text joins the transcript of every page.
func (d *Document) Text() string {
	var b strings.Builder
	for i, p := range d.Pages {
		if i > 0 {
			b.WriteString("\f")
		}
		b.WriteString(strings.Join(p, "\n"))
	}
	return b.String()
}

// Render validates the destination, lays out every section and stamps the
// footers. No partial document is returned on failure.
func Render(it *response_models.Itinerary, meta Metadata) (doc *Document, err error) {
	if err := destination.Validate(meta.Destination); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRender, err)
	}
	if it == nil {
		return nil, fmt.Errorf("%w: nothing to render", utils.ErrRender)
	}
	if meta.GeneratedAt.IsZero() {
		meta.GeneratedAt = time.Now().UTC()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("destination", meta.Destination).Msg("pdf layout failed")
			doc, err = nil, fmt.Errorf("%w: layout fault", utils.ErrRender)
		}
	}()

	pdf := gofpdf.New(orientation, unit, pageSize, "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Trip to "+meta.Destination, true)
	pdf.SetAuthor("Itinera", true)
	pdf.SetCreator("Itinera", true)
	pdf.SetCreationDate(meta.GeneratedAt)
	pdf.SetModificationDate(meta.GeneratedAt)
	pdf.SetCatalogSort(true)

	l := newLayout(pdf)
	l.addPage()

	writeHeader(l, meta)
	writeOverview(l, it, meta)
	writeDays(l, it, meta.Currency)
	writeAccommodation(l, it.Accommodation, meta.Currency)
	writeTransportation(l, it.Transportation, meta.Currency)
	writeBudget(l, it.BudgetBreakdown, meta.Currency)
	writeTips(l, it)
	writeFooters(l)

	if pdf.Err() {
		log.Error().Err(pdf.Error()).Str("destination", meta.Destination).Msg("pdf layout failed")
		return nil, fmt.Errorf("%w: %v", utils.ErrRender, pdf.Error())
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrRender, err)
	}

	return &Document{
		Bytes:     buf.Bytes(),
		PageCount: pdf.PageCount(),
		Pages:     l.text,
	}, nil
}

// writeFooters runs once every page exists, so the total is known.
func writeFooters(l *layout) {
	total := l.pdf.PageCount()
	for n := 1; n <= total; n++ {
		l.pdf.SetPage(n)
		y := l.height - footerOffset

		l.pdf.SetDrawColor(200, 205, 212)
		l.pdf.SetLineWidth(0.2)
		l.pdf.Line(marginLeft, y-2, marginLeft+l.contentWidth(), y-2)

		l.font("I", 8)
		l.pdf.SetTextColor(120, 120, 120)
		l.cursor = Cursor{Y: y, Page: n}
		l.textLine(marginLeft, l.contentWidth()/2, l.tr(Attribution), "L")

		label := fmt.Sprintf("Page %d of %d", n, total)
		l.textLine(marginLeft+l.contentWidth()/2, l.contentWidth()/2, label, "R")

		l.record(n, Attribution)
		l.record(n, label)
	}
	l.pdf.SetTextColor(33, 33, 33)
}
