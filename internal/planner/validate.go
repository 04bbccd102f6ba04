package planner

import (
	"bytes"
	"encoding/json"
	"fmt"

	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

type fieldKind int

const (
	kindArray fieldKind = iota
	kindObject
)

var requiredFields = []struct {
	name string
	kind fieldKind
}{
	{"days", kindArray},
	{"accommodation", kindArray},
	{"transportation", kindArray},
	{"budgetBreakdown", kindObject},
	{"tips", kindArray},
}

// ValidateStructure checks that the top-level fields the itinerary needs are
// present with the right JSON kind.
func ValidateStructure(doc map[string]json.RawMessage) error {
	for _, f := range requiredFields {
		raw, ok := doc[f.name]
		if !ok || isNull(raw) {
			return fmt.Errorf("%w: missing required field %q", utils.ErrGeneration, f.name)
		}
		if !hasKind(raw, f.kind) {
			return fmt.Errorf("%w: field %q has the wrong type", utils.ErrGeneration, f.name)
		}
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func hasKind(raw json.RawMessage, kind fieldKind) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	switch kind {
	case kindArray:
		return trimmed[0] == '['
	case kindObject:
		return trimmed[0] == '{'
	}
	return false
}

// DecodeItinerary validates the structure of doc and decodes it.
func DecodeItinerary(doc map[string]json.RawMessage) (*response_models.Itinerary, error) {
	if err := ValidateStructure(doc); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGeneration, err)
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal(raw, &itinerary); err != nil {
		return nil, fmt.Errorf("%w: malformed itinerary: %v", utils.ErrGeneration, err)
	}
	return &itinerary, nil
}
