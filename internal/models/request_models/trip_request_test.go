package request_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/pkg/utils"
)

func validRequest() TripRequest {
	return TripRequest{
		Destination: "  Paris ",
		Duration:    3,
		PeopleCount: 2,
		Budget:      60000,
	}
}

func TestTripRequestValidateDefaultsCurrency(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())
	assert.Equal(t, "Paris", req.Destination)
	assert.Equal(t, DefaultCurrency, req.Currency)
}

func TestTripRequestValidateUppercasesCurrency(t *testing.T) {
	req := validRequest()
	req.Currency = "usd"
	require.NoError(t, req.Validate())
	assert.Equal(t, "USD", req.Currency)
}

func TestTripRequestValidateRanges(t *testing.T) {
	cases := map[string]func(r *TripRequest){
		"duration zero":     func(r *TripRequest) { r.Duration = 0 },
		"duration too long": func(r *TripRequest) { r.Duration = 31 },
		"no people":         func(r *TripRequest) { r.PeopleCount = 0 },
		"too many people":   func(r *TripRequest) { r.PeopleCount = 21 },
		"budget too small":  func(r *TripRequest) { r.Budget = 99 },
		"bad currency":      func(r *TripRequest) { r.Currency = "RUPEES" },
		"empty destination": func(r *TripRequest) { r.Destination = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := validRequest()
			mutate(&req)
			assert.ErrorIs(t, req.Validate(), utils.ErrInvalidInput)
		})
	}
}

func TestTripRequestValidateDestinationHeuristics(t *testing.T) {
	for _, dest := range []string{"42", "asdf", "Paris!!!<>"} {
		req := validRequest()
		req.Destination = dest
		assert.ErrorIs(t, req.Validate(), utils.ErrInvalidDestination, dest)
	}
}
