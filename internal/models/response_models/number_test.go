package response_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"3400":          3400,
		"Rs. 3,400":     3400,
		"€12.50":        12.5,
		"$1,250,000":    1250000,
		"-15":           -15,
		"approx 200 pp": 200,
		"free":          0,
		"":              0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseAmount(in), in)
	}
}

func TestActivityAcceptsQuotedCost(t *testing.T) {
	var a Activity
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Louvre", "time": "09:00", "cost": "3400"}`), &a))
	assert.Equal(t, "Louvre", a.Name)
	assert.Equal(t, "09:00", a.Time)
	assert.Equal(t, 3400.0, a.Cost)
}

func TestItineraryRoundTripsStoredJSON(t *testing.T) {
	in := Itinerary{
		Days:            []DayPlan{{Day: 1, Activities: []Activity{{Name: "Walk", Cost: 12.5}}, Meals: []Meal{{Type: MealDinner, Cost: 30}}}},
		Accommodation:   []AccommodationOption{{Name: "Inn", PricePerNight: 80, Amenities: []string{"WiFi"}}},
		Transportation:  []TransportOption{{Type: "Bus", Cost: 4}},
		BudgetBreakdown: BudgetBreakdown{Food: 30, Total: 30},
		Tips:            []string{"Go early"},
	}
	raw, err := json.Marshal(in)
	require.NoError(t, err)

	var out Itinerary
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}
