package document

import (
	"fmt"
	"strings"

	"itinera/internal/models/response_models"
)

const (
	titleSize   = 20.0
	sectionSize = 14.0
	assetSize   = 28.0
)

var (
	overviewColumns = []column{
		{title: "Trip Detail", frac: .3, align: "L"},
		{title: "Value", frac: .7, align: "L"},
	}
	activityColumns = []column{
		{title: "Time", frac: .16, align: "L"},
		{title: "Activity", frac: .22, align: "L"},
		{title: "Description", frac: .32, align: "L"},
		{title: "Location", frac: .16, align: "L"},
		{title: "Cost", frac: .14, align: "R"},
	}
	mealColumns = []column{
		{title: "Meal", frac: .14, align: "L"},
		{title: "Suggestion", frac: .44, align: "L"},
		{title: "Location", frac: .28, align: "L"},
		{title: "Cost", frac: .14, align: "R"},
	}
	accommodationColumns = []column{
		{title: "Name", frac: .2, align: "L"},
		{title: "Description", frac: .32, align: "L"},
		{title: "Location", frac: .16, align: "L"},
		{title: "Suitable For", frac: .16, align: "L"},
		{title: "Per Night", frac: .16, align: "R"},
	}
	transportColumns = []column{
		{title: "Type", frac: .16, align: "L"},
		{title: "Description", frac: .44, align: "L"},
		{title: "Recommended For", frac: .22, align: "L"},
		{title: "Cost", frac: .18, align: "R"},
	}
	budgetColumns = []column{
		{title: "Category", frac: .65, align: "L"},
		{title: "Amount", frac: .35, align: "R"},
	}
)

func writeHeader(l *layout, meta Metadata) {
	top := l.cursor.Y
	assetsBottom := top
	right := marginLeft + l.contentWidth()
	if drawn := drawLogo(l, meta.LogoPath, right-assetSize, top); drawn {
		right -= assetSize + 3
		assetsBottom = top + assetSize
	}
	if drawn := drawShareQR(l, meta.ShareURL, right-assetSize, top); drawn {
		right -= assetSize + 3
		assetsBottom = top + assetSize
	}
	textWidth := right - marginLeft

	title := "Trip to " + meta.Destination
	l.font("B", titleSize)
	l.pdf.SetTextColor(22, 64, 112)
	for _, line := range l.wrap(title, textWidth) {
		l.pdf.SetXY(marginLeft, l.cursor.Y)
		l.pdf.CellFormat(textWidth, titleSize*0.45, line, "", 0, "L", false, 0, "")
		l.advance(titleSize * 0.45)
	}
	l.record(l.cursor.Page, title)
	l.advance(2)

	l.font("", 10)
	l.pdf.SetTextColor(90, 90, 90)
	sub := fmt.Sprintf("%s | %s | Budget %s",
		plural(meta.Duration, "day"), plural(meta.PeopleCount, "traveler"),
		FormatAmount(meta.Budget, meta.Currency))
	lines := []string{sub}
	if meta.OwnerName != "" {
		lines = append(lines, "Prepared for "+meta.OwnerName)
	}
	lines = append(lines, "Generated on "+meta.GeneratedAt.UTC().Format("2 January 2006"))
	for _, s := range lines {
		l.textLine(marginLeft, textWidth, l.tr(s), "L")
		l.record(l.cursor.Page, s)
		l.advance(lineHeight + 0.6)
	}

	l.pdf.SetTextColor(33, 33, 33)
	l.cursor.Y = max(l.cursor.Y, assetsBottom) + 6
}

func writeOverview(l *layout, it *response_models.Itinerary, meta Metadata) {
	l.heading("Trip Overview", sectionSize)

	perPerson := meta.Budget
	if meta.PeopleCount > 0 {
		perPerson = meta.Budget / float64(meta.PeopleCount)
	}
	rows := []tableRow{
		{cells: []string{"Destination", meta.Destination}},
		{cells: []string{"Duration", plural(meta.Duration, "day")}},
		{cells: []string{"Travelers", plural(meta.PeopleCount, "person")}},
		{cells: []string{"Total budget", FormatAmount(meta.Budget, meta.Currency)}},
		{cells: []string{"Budget per person", FormatAmount(perPerson, meta.Currency)}},
	}
	if it.BestTimeToVisit != "" {
		rows = append(rows, tableRow{cells: []string{"Best time to visit", it.BestTimeToVisit}})
	}
	if len(it.LocalCuisine) > 0 {
		rows = append(rows, tableRow{cells: []string{"Local cuisine", strings.Join(it.LocalCuisine, ", ")}})
	}
	l.table(overviewColumns, rows)
}

func writeDays(l *layout, it *response_models.Itinerary, currency string) {
	l.heading("Daily Schedule", sectionSize)

	for _, day := range it.Days {
		l.subheading(fmt.Sprintf("Day %d", day.Day))

		activities := make([]tableRow, 0, len(day.Activities))
		for _, a := range day.Activities {
			desc := a.Description
			if a.WeatherConsideration != "" {
				desc = strings.TrimSpace(desc + " Weather: " + a.WeatherConsideration)
			}
			activities = append(activities, tableRow{cells: []string{
				a.Time, a.Name, desc, a.Location, FormatAmount(a.Cost, currency),
			}})
		}
		l.table(activityColumns, activities)

		if len(day.Meals) == 0 {
			continue
		}
		meals := make([]tableRow, 0, len(day.Meals))
		for _, m := range day.Meals {
			meals = append(meals, tableRow{cells: []string{
				mealLabel(m.Type), m.Suggestion, m.Location, FormatAmount(m.Cost, currency),
			}})
		}
		l.table(mealColumns, meals)
	}
}

func writeAccommodation(l *layout, options []response_models.AccommodationOption, currency string) {
	if len(options) == 0 {
		return
	}
	l.heading("Accommodation", sectionSize)

	rows := make([]tableRow, 0, len(options))
	for _, o := range options {
		desc := o.Description
		if len(o.Amenities) > 0 {
			desc = strings.TrimSpace(desc + " Amenities: " + strings.Join(o.Amenities, ", "))
		}
		rows = append(rows, tableRow{cells: []string{
			o.Name, desc, o.Location, o.SuitableFor, FormatAmount(o.PricePerNight, currency),
		}})
	}
	l.table(accommodationColumns, rows)
}

func writeTransportation(l *layout, options []response_models.TransportOption, currency string) {
	if len(options) == 0 {
		return
	}
	l.heading("Transportation", sectionSize)

	rows := make([]tableRow, 0, len(options))
	for _, o := range options {
		rows = append(rows, tableRow{cells: []string{
			o.Type, o.Description, o.RecommendedFor, FormatAmount(o.Cost, currency),
		}})
	}
	l.table(transportColumns, rows)
}

func writeBudget(l *layout, b response_models.BudgetBreakdown, currency string) {
	l.heading("Budget Breakdown", sectionSize)
	l.table(budgetColumns, []tableRow{
		{cells: []string{"Accommodation", FormatAmount(b.Accommodation, currency)}},
		{cells: []string{"Food", FormatAmount(b.Food, currency)}},
		{cells: []string{"Activities", FormatAmount(b.Activities, currency)}},
		{cells: []string{"Transportation", FormatAmount(b.Transportation, currency)}},
		{cells: []string{"Miscellaneous", FormatAmount(b.Miscellaneous, currency)}},
		{cells: []string{"Total", FormatAmount(b.Total, currency)}, bold: true},
	})
}

func writeTips(l *layout, it *response_models.Itinerary) {
	if len(it.Tips) == 0 {
		return
	}
	l.heading("Travel Tips", sectionSize)
	for _, tip := range it.Tips {
		if strings.TrimSpace(tip) == "" {
			continue
		}
		l.bullet(tip)
	}
}

func mealLabel(t response_models.MealType) string {
	s := string(t)
	if s == "" {
		return "Meal"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	if noun == "person" {
		return fmt.Sprintf("%d people", n)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
