package db_models

import (
	"encoding/json"

	"gorm.io/datatypes"

	"itinera/internal/models/response_models"
)

// Trip is a generated itinerary together with the request that produced it.
type Trip struct {
	BaseModel
	OwnerID     string `gorm:"index"`
	Destination string `gorm:"size:100;not null"`
	Duration    int    `gorm:"not null"`
	PeopleCount int    `gorm:"not null"`
	Budget      float64
	Currency    string         `gorm:"size:3"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb"`
}

func (t *Trip) SetItinerary(it *response_models.Itinerary) error {
	raw, err := json.Marshal(it)
	if err != nil {
		return err
	}
	t.Itinerary = datatypes.JSON(raw)
	return nil
}

func (t *Trip) DecodeItinerary() (*response_models.Itinerary, error) {
	var it response_models.Itinerary
	if len(t.Itinerary) == 0 {
		return &it, nil
	}
	if err := json.Unmarshal(t.Itinerary, &it); err != nil {
		return nil, err
	}
	return &it, nil
}
