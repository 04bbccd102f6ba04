package document

import (
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"
)

const (
	pageSize    = "A4"
	orientation = "P"
	unit        = "mm"

	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 18.0
	marginBottom = 22.0

	footerOffset = 14.0

	fontFamily = "Helvetica"
	bodySize   = 9.0
	lineHeight = 4.6
	cellPad    = 1.4
)

// Cursor is where the next element goes: a vertical offset on a page.
type Cursor struct {
	Y    float64
	Page int
}

type column struct {
	title string
	frac  float64
	align string
}

type tableRow struct {
	cells []string
	bold  bool
}

// layout owns the pdf, the cursor and the per-page text transcript.
type layout struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	cursor Cursor
	width  float64
	height float64
	text   [][]string
}

func newLayout(pdf *gofpdf.Fpdf) *layout {
	w, h := pdf.GetPageSize()
	return &layout{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		width:  w,
		height: h,
	}
}

func (l *layout) contentWidth() float64 {
	return l.width - marginLeft - marginRight
}

func (l *layout) bottom() float64 {
	return l.height - marginBottom
}

// printable is the usable height of a fresh page.
func (l *layout) printable() float64 {
	return l.bottom() - marginTop
}

func (l *layout) addPage() {
	l.pdf.AddPage()
	l.cursor = Cursor{Y: marginTop, Page: l.pdf.PageNo()}
	l.text = append(l.text, nil)
}

// ensure starts a new page when h does not fit above the bottom margin.
// It reports whether a page break happened.
func (l *layout) ensure(h float64) bool {
	if l.cursor.Y+h <= l.bottom() {
		return false
	}
	l.addPage()
	return true
}

func (l *layout) advance(h float64) {
	l.cursor.Y += h
}

func (l *layout) record(pageNo int, s string) {
	if s == "" || pageNo < 1 || pageNo > len(l.text) {
		return
	}
	l.text[pageNo-1] = append(l.text[pageNo-1], s)
}

func (l *layout) font(style string, size float64) {
	l.pdf.SetFont(fontFamily, style, size)
}

// wrap splits s into lines that fit width w with the current font.
func (l *layout) wrap(s string, w float64) []string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return []string{""}
	}
	raw := l.pdf.SplitLines([]byte(l.tr(s)), w)
	if len(raw) == 0 {
		return []string{""}
	}
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = string(l)
	}
	return lines
}

// textLine writes one already-translated line at (x, cursor.Y).
func (l *layout) textLine(x, w float64, line, align string) {
	l.pdf.SetXY(x, l.cursor.Y)
	l.pdf.CellFormat(w, lineHeight, line, "", 0, align, false, 0, "")
}

func (l *layout) heading(title string, size float64) {
	h := size*0.5 + 4
	// keep a heading together with at least a table header and one row
	l.ensure(h + 3*(lineHeight+2*cellPad))

	l.font("B", size)
	l.pdf.SetTextColor(22, 64, 112)
	l.pdf.SetXY(marginLeft, l.cursor.Y)
	l.pdf.CellFormat(l.contentWidth(), size*0.5, l.tr(title), "", 0, "L", false, 0, "")
	l.record(l.cursor.Page, title)

	l.pdf.SetDrawColor(22, 64, 112)
	l.pdf.SetLineWidth(0.4)
	lineY := l.cursor.Y + size*0.5 + 1
	l.pdf.Line(marginLeft, lineY, marginLeft+l.contentWidth(), lineY)

	l.pdf.SetTextColor(33, 33, 33)
	l.advance(h)
}

func (l *layout) subheading(title string) {
	l.ensure(lineHeight + 2 + 2*(lineHeight+2*cellPad))
	l.font("B", 10.5)
	l.pdf.SetTextColor(44, 44, 44)
	l.pdf.SetXY(marginLeft, l.cursor.Y)
	l.pdf.CellFormat(l.contentWidth(), lineHeight+1, l.tr(title), "", 0, "L", false, 0, "")
	l.record(l.cursor.Page, title)
	l.advance(lineHeight + 2)
}

// table draws a grid with fixed column fractions. Rows may continue on the
// next page; the header row is repeated there.
func (l *layout) table(cols []column, rows []tableRow) {
	widths := make([]float64, len(cols))
	for i, c := range cols {
		widths[i] = c.frac * l.contentWidth()
	}

	header := tableRow{bold: true}
	for _, c := range cols {
		header.cells = append(header.cells, c.title)
	}

	l.row(cols, widths, header, true)
	for _, r := range rows {
		if l.row(cols, widths, r, false) {
			// page turned before this row: repeat header, then the row
			l.row(cols, widths, header, true)
			l.row(cols, widths, r, false)
		}
	}
	l.advance(3)
}

// row draws one table row. When the row does not fit it starts a new page
// and returns true without drawing, so the caller can repeat the header.
func (l *layout) row(cols []column, widths []float64, r tableRow, isHeader bool) bool {
	style := ""
	if r.bold || isHeader {
		style = "B"
	}
	l.font(style, bodySize)

	maxLines := int((l.printable()-2*(lineHeight+2*cellPad))/lineHeight) - 1
	cellLines := make([][]string, len(cols))
	lines := 1
	for i := range cols {
		text := ""
		if i < len(r.cells) {
			text = r.cells[i]
		}
		wrapped := l.clip(l.wrap(text, widths[i]-2*cellPad), maxLines, widths[i]-2*cellPad)
		cellLines[i] = wrapped
		lines = max(lines, len(wrapped))
	}
	h := float64(lines)*lineHeight + 2*cellPad

	if l.ensure(h) && !isHeader {
		return true
	}

	x := marginLeft
	y := l.cursor.Y
	l.pdf.SetDrawColor(200, 205, 212)
	l.pdf.SetLineWidth(0.2)
	if isHeader {
		l.pdf.SetFillColor(231, 239, 248)
	}
	for i, c := range cols {
		styleStr := "D"
		if isHeader {
			styleStr = "FD"
		}
		l.pdf.Rect(x, y, widths[i], h, styleStr)

		for j, line := range cellLines[i] {
			l.pdf.SetXY(x+cellPad, y+cellPad+float64(j)*lineHeight)
			l.pdf.CellFormat(widths[i]-2*cellPad, lineHeight, line, "", 0, c.align, false, 0, "")
		}
		if i < len(r.cells) {
			l.record(l.cursor.Page, r.cells[i])
		}
		x += widths[i]
	}
	l.advance(h)
	return false
}

// bullet writes a wrapped paragraph that is never split across pages.
func (l *layout) bullet(text string) {
	l.font("", bodySize)
	indent := 5.0
	w := l.contentWidth() - indent
	lines := l.wrap(text, w)

	lines = l.clip(lines, int(l.printable()/lineHeight)-1, w)
	h := float64(len(lines))*lineHeight + 1.5
	l.ensure(h)

	l.pdf.SetXY(marginLeft, l.cursor.Y)
	l.pdf.CellFormat(indent, lineHeight, l.tr("•"), "", 0, "C", false, 0, "")
	for i, line := range lines {
		l.pdf.SetXY(marginLeft+indent, l.cursor.Y+float64(i)*lineHeight)
		l.pdf.CellFormat(w, lineHeight, line, "", 0, "L", false, 0, "")
	}
	l.record(l.cursor.Page, text)
	l.advance(h)
}

const ellipsis = "..."

// clip keeps at most maxLines wrapped lines. When text is dropped the last
// kept line is shortened to end in an ellipsis within width.
func (l *layout) clip(lines []string, maxLines int, width float64) []string {
	maxLines = max(maxLines, 1)
	if len(lines) <= maxLines {
		return lines
	}
	log.Warn().
		Int("lines", len(lines)).
		Int("kept", maxLines).
		Int("page", l.cursor.Page).
		Msg("text taller than a page was cut")

	kept := append([]string(nil), lines[:maxLines]...)
	last := strings.TrimRight(kept[maxLines-1], " ")
	for last != "" && l.pdf.GetStringWidth(last+ellipsis) > width {
		last = strings.TrimRight(last[:len(last)-1], " ")
	}
	kept[maxLines-1] = last + ellipsis
	return kept
}
