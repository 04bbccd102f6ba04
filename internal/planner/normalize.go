package planner

import (
	"fmt"
	"math"

	"itinera/internal/models/response_models"
)

const (
	// SumTolerance is how far the reported total may drift from the category
	// sum before it is replaced.
	SumTolerance = 10.0
	// BudgetTolerance is the fraction of the requested budget the total may
	// differ by before categories are rescaled.
	BudgetTolerance = 0.05
)

const (
	DefaultBestTimeToVisit      = "Check local weather and seasonal events before you travel; shoulder seasons usually offer good weather and fewer crowds."
	DefaultWeatherConsideration = "Check the local forecast before heading out."
	DefaultMealLocation         = "Local restaurant"
	DefaultSuitableFor          = "All travelers"
	DefaultRecommendedFor       = "General travel"
)

var DefaultLocalCuisine = []string{
	"Local specialties",
	"Street food",
	"Traditional regional dishes",
}

// Placeholder meal costs per person, in trip currency units.
var placeholderMeals = []struct {
	kind response_models.MealType
	cost float64
}{
	{response_models.MealBreakfast, 200},
	{response_models.MealLunch, 400},
	{response_models.MealDinner, 600},
}

// Trip is the request data the normalize steps need.
type Trip struct {
	Destination string
	Duration    int
	PeopleCount int
	Budget      float64
}

// Normalize repairs a decoded itinerary in place: fill day gaps, reconcile
// the budget sum, rescale to the requested budget and fill defaults.
func Normalize(it *response_models.Itinerary, trip Trip) {
	FillDayGaps(it, trip)
	ReconcileSum(&it.BudgetBreakdown)
	RescaleToBudget(&it.BudgetBreakdown, trip.Budget)
	FillDefaults(it)
}

// FillDayGaps makes Days hold exactly one entry for each index 1..Duration in
// ascending order. Missing days become placeholders, out-of-range and
// repeated days are dropped.
func FillDayGaps(it *response_models.Itinerary, trip Trip) {
	byDay := make(map[int]response_models.DayPlan, trip.Duration)
	for _, d := range it.Days {
		if d.Day < 1 || d.Day > trip.Duration {
			continue
		}
		if _, seen := byDay[d.Day]; seen {
			continue
		}
		byDay[d.Day] = d
	}

	days := make([]response_models.DayPlan, 0, trip.Duration)
	for i := 1; i <= trip.Duration; i++ {
		d, ok := byDay[i]
		if !ok {
			d = PlaceholderDay(i, trip)
		}
		days = append(days, d)
	}
	it.Days = days
}

// PlaceholderDay is the plan used for a day the model left out.
func PlaceholderDay(day int, trip Trip) response_models.DayPlan {
	people := float64(max(trip.PeopleCount, 1))

	meals := make([]response_models.Meal, 0, len(placeholderMeals))
	for _, m := range placeholderMeals {
		meals = append(meals, response_models.Meal{
			Type:       m.kind,
			Suggestion: fmt.Sprintf("Try a local %s spot", m.kind),
			Cost:       m.cost * people,
			Location:   DefaultMealLocation,
		})
	}

	return response_models.DayPlan{
		Day: day,
		Activities: []response_models.Activity{{
			Name:                 "Free time to explore",
			Description:          fmt.Sprintf("Explore %s at your own pace.", trip.Destination),
			Time:                 "Flexible",
			Cost:                 0,
			Location:             trip.Destination,
			WeatherConsideration: DefaultWeatherConsideration,
		}},
		Meals: meals,
	}
}

// ReconcileSum replaces Total with the category sum when they differ by more
// than SumTolerance.
func ReconcileSum(b *response_models.BudgetBreakdown) {
	sum := b.CategorySum()
	if math.Abs(sum-b.Total) > SumTolerance {
		b.Total = sum
	}
}

// RescaleToBudget scales the five categories by budget/Total and pins Total
// to budget when Total is more than BudgetTolerance away from it. Smaller
// discrepancies are left alone. An all-zero breakdown is split with the
// default shares.
func RescaleToBudget(b *response_models.BudgetBreakdown, budget float64) {
	if budget <= 0 || math.Abs(b.Total-budget) <= budget*BudgetTolerance {
		return
	}

	if b.Total <= 0 {
		b.Accommodation = math.Round(budget * 0.35)
		b.Food = math.Round(budget * 0.25)
		b.Activities = math.Round(budget * 0.20)
		b.Transportation = math.Round(budget * 0.15)
		b.Miscellaneous = math.Round(budget * 0.05)
		b.Total = budget
		return
	}

	ratio := budget / b.Total
	b.Accommodation = math.Round(b.Accommodation * ratio)
	b.Food = math.Round(b.Food * ratio)
	b.Activities = math.Round(b.Activities * ratio)
	b.Transportation = math.Round(b.Transportation * ratio)
	b.Miscellaneous = math.Round(b.Miscellaneous * ratio)
	b.Total = budget
}

// FillDefaults fills optional descriptive fields the model left empty.
func FillDefaults(it *response_models.Itinerary) {
	if it.BestTimeToVisit == "" {
		it.BestTimeToVisit = DefaultBestTimeToVisit
	}
	if len(it.LocalCuisine) == 0 {
		it.LocalCuisine = append([]string(nil), DefaultLocalCuisine...)
	}
	if it.Tips == nil {
		it.Tips = []string{}
	}

	for i := range it.Days {
		day := &it.Days[i]
		for j := range day.Activities {
			if day.Activities[j].WeatherConsideration == "" {
				day.Activities[j].WeatherConsideration = DefaultWeatherConsideration
			}
		}
		for j := range day.Meals {
			if day.Meals[j].Location == "" {
				day.Meals[j].Location = DefaultMealLocation
			}
		}
	}

	for i := range it.Accommodation {
		if it.Accommodation[i].SuitableFor == "" {
			it.Accommodation[i].SuitableFor = DefaultSuitableFor
		}
	}
	for i := range it.Transportation {
		if it.Transportation[i].RecommendedFor == "" {
			it.Transportation[i].RecommendedFor = DefaultRecommendedFor
		}
	}
}
