package response_models

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var amountPattern = regexp.MustCompile(`-?\d[\d,]*(?:\.\d+)?`)

// lenientNumber decodes a JSON number, or a string holding one such as
// "3400", "Rs. 3,400" or "€12.50". Anything else decodes to 0.
type lenientNumber float64

func (n *lenientNumber) UnmarshalJSON(data []byte) error {
	*n = 0
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			*n = lenientNumber(ParseAmount(s))
		}
		return nil
	}

	var f float64
	if err := json.Unmarshal(trimmed, &f); err == nil {
		*n = lenientNumber(f)
	}
	return nil
}

// ParseAmount reads the first number in s, ignoring currency symbols and
// thousands separators. It returns 0 when s holds no number.
func ParseAmount(s string) float64 {
	match := amountPattern.FindString(s)
	if match == "" {
		return 0
	}
	f, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func (d *DayPlan) UnmarshalJSON(data []byte) error {
	type plain DayPlan
	aux := struct {
		*plain
		Day lenientNumber `json:"day"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.Day = int(math.Round(float64(aux.Day)))
	return nil
}

func (a *Activity) UnmarshalJSON(data []byte) error {
	type plain Activity
	aux := struct {
		*plain
		Cost lenientNumber `json:"cost"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Cost = float64(aux.Cost)
	return nil
}

func (m *Meal) UnmarshalJSON(data []byte) error {
	type plain Meal
	aux := struct {
		*plain
		Cost lenientNumber `json:"cost"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.Cost = float64(aux.Cost)
	return nil
}

func (o *AccommodationOption) UnmarshalJSON(data []byte) error {
	type plain AccommodationOption
	aux := struct {
		*plain
		PricePerNight lenientNumber `json:"pricePerNight"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.PricePerNight = float64(aux.PricePerNight)
	return nil
}

func (o *TransportOption) UnmarshalJSON(data []byte) error {
	type plain TransportOption
	aux := struct {
		*plain
		Cost lenientNumber `json:"cost"`
	}{plain: (*plain)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	o.Cost = float64(aux.Cost)
	return nil
}

func (b *BudgetBreakdown) UnmarshalJSON(data []byte) error {
	var aux struct {
		Accommodation  lenientNumber `json:"accommodation"`
		Food           lenientNumber `json:"food"`
		Activities     lenientNumber `json:"activities"`
		Transportation lenientNumber `json:"transportation"`
		Miscellaneous  lenientNumber `json:"miscellaneous"`
		Total          lenientNumber `json:"total"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*b = BudgetBreakdown{
		Accommodation:  float64(aux.Accommodation),
		Food:           float64(aux.Food),
		Activities:     float64(aux.Activities),
		Transportation: float64(aux.Transportation),
		Miscellaneous:  float64(aux.Miscellaneous),
		Total:          float64(aux.Total),
	}
	return nil
}
