package response_models

// Itinerary is the validated travel plan produced by the generation pipeline.
type Itinerary struct {
	Days            []DayPlan             `json:"days"`
	Accommodation   []AccommodationOption `json:"accommodation"`
	Transportation  []TransportOption     `json:"transportation"`
	BudgetBreakdown BudgetBreakdown       `json:"budgetBreakdown"`
	Tips            []string              `json:"tips"`
	BestTimeToVisit string                `json:"bestTimeToVisit,omitempty"`
	LocalCuisine    []string              `json:"localCuisine,omitempty"`
}

type DayPlan struct {
	Day        int        `json:"day"`
	Activities []Activity `json:"activities"`
	Meals      []Meal     `json:"meals"`
}

type Activity struct {
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Time                 string  `json:"time"`
	Cost                 float64 `json:"cost"`
	Location             string  `json:"location"`
	WeatherConsideration string  `json:"weatherConsideration,omitempty"`
}

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type Meal struct {
	Type       MealType `json:"type"`
	Suggestion string   `json:"suggestion"`
	Cost       float64  `json:"cost"`
	Location   string   `json:"location,omitempty"`
}

type AccommodationOption struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	PricePerNight float64  `json:"pricePerNight"`
	Location      string   `json:"location"`
	Amenities     []string `json:"amenities"`
	SuitableFor   string   `json:"suitableFor,omitempty"`
}

type TransportOption struct {
	Type           string  `json:"type"`
	Description    string  `json:"description"`
	Cost           float64 `json:"cost"`
	RecommendedFor string  `json:"recommendedFor,omitempty"`
}

// BudgetBreakdown holds the five category sums and their total, all in the
// trip's currency units.
type BudgetBreakdown struct {
	Accommodation  float64 `json:"accommodation"`
	Food           float64 `json:"food"`
	Activities     float64 `json:"activities"`
	Transportation float64 `json:"transportation"`
	Miscellaneous  float64 `json:"miscellaneous"`
	Total          float64 `json:"total"`
}

// CategorySum adds up the five categories, ignoring Total.
func (b BudgetBreakdown) CategorySum() float64 {
	return b.Accommodation + b.Food + b.Activities + b.Transportation + b.Miscellaneous
}
