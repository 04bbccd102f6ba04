package main

import (
	"encoding/json"
	"fmt"
	"os"

	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
)

// tripFile is the on-disk form shared by the generate and render commands.
type tripFile struct {
	Request   request_models.TripRequest `json:"request"`
	Itinerary *response_models.Itinerary `json:"itinerary"`
}

func readTripFile(path string) (*tripFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var tf tripFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if tf.Itinerary == nil {
		return nil, fmt.Errorf("%s: no itinerary in file", path)
	}
	tf.Request.Normalize()
	return &tf, nil
}

func writeTripFile(path string, tf *tripFile) error {
	data, err := json.MarshalIndent(tf, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
