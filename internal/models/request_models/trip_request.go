package request_models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"itinera/pkg/destination"
	"itinera/pkg/utils"
)

const DefaultCurrency = "INR"

// TripRequest is what the user submits to get an itinerary generated.
type TripRequest struct {
	Destination string  `json:"destination" binding:"required,min=1,max=100"`
	Duration    int     `json:"duration" binding:"required,min=1,max=30"`
	PeopleCount int     `json:"peopleCount" binding:"required,min=1,max=20"`
	Budget      float64 `json:"budget" binding:"required,gte=100"`
	Currency    string  `json:"currency,omitempty" binding:"omitempty,len=3,alpha"`
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}()

// Normalize trims the free-text fields and applies the default currency.
func (r *TripRequest) Normalize() {
	r.Destination = strings.TrimSpace(r.Destination)
	r.Currency = strings.ToUpper(strings.TrimSpace(r.Currency))
	if r.Currency == "" {
		r.Currency = DefaultCurrency
	}
}

// Validate normalizes the request and checks every field. The destination
// check failure wraps utils.ErrInvalidDestination, everything else wraps
// utils.ErrInvalidInput.
func (r *TripRequest) Validate() error {
	r.Normalize()

	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: %s failed on %q", utils.ErrInvalidInput, fe.Field(), fe.Tag())
		}
		return fmt.Errorf("%w: %v", utils.ErrInvalidInput, err)
	}

	if err := destination.ValidateInput(r.Destination); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrInvalidDestination, err)
	}

	return nil
}

type ListTripsQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=10" binding:"min=1,max=100"`
}
