package planner

import (
	"fmt"
	"strconv"
	"strings"

	"itinera/internal/models/request_models"
)

// InvalidDestinationSentinel is what the model is told to answer with when
// the destination is not a real place.
const InvalidDestinationSentinel = "INVALID_DESTINATION:"

const itinerarySchema = `{
  "days": [
    {
      "day": 1,
      "activities": [
        {
          "name": "string",
          "description": "string",
          "time": "09:00 AM - 11:00 AM",
          "cost": 0,
          "location": "string",
          "weatherConsideration": "string"
        }
      ],
      "meals": [
        {
          "type": "breakfast | lunch | dinner | snack",
          "suggestion": "string",
          "cost": 0,
          "location": "string"
        }
      ]
    }
  ],
  "accommodation": [
    {
      "name": "string",
      "description": "string",
      "pricePerNight": 0,
      "location": "string",
      "amenities": ["string"],
      "suitableFor": "string"
    }
  ],
  "transportation": [
    {
      "type": "string",
      "description": "string",
      "cost": 0,
      "recommendedFor": "string"
    }
  ],
  "budgetBreakdown": {
    "accommodation": 0,
    "food": 0,
    "activities": 0,
    "transportation": 0,
    "miscellaneous": 0,
    "total": 0
  },
  "tips": ["string"],
  "bestTimeToVisit": "string",
  "localCuisine": ["string"]
}`

// BuildPrompt renders the instruction block for a trip request. The output
// only depends on the request.
func BuildPrompt(req request_models.TripRequest) string {
	var prompt strings.Builder
	budget := strconv.FormatFloat(req.Budget, 'f', -1, 64)

	prompt.WriteString("You are an expert travel planner. Create a detailed, realistic travel itinerary.\n\n")

	prompt.WriteString("TRIP DETAILS:\n")
	fmt.Fprintf(&prompt, "- Destination: %s\n", req.Destination)
	fmt.Fprintf(&prompt, "- Duration: %d days\n", req.Duration)
	fmt.Fprintf(&prompt, "- Number of travelers: %d\n", req.PeopleCount)
	fmt.Fprintf(&prompt, "- Total budget: %s %s for the whole group\n\n", budget, req.Currency)

	prompt.WriteString("DESTINATION CHECK:\n")
	fmt.Fprintf(&prompt, "If %q is not a real city, region or country, respond with exactly one line:\n", req.Destination)
	fmt.Fprintf(&prompt, "%s <short reason>\n", InvalidDestinationSentinel)
	prompt.WriteString("and nothing else.\n\n")

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	fmt.Fprintf(&prompt, "1. Generate exactly %d days, numbered 1 to %d with no gaps\n", req.Duration, req.Duration)
	prompt.WriteString("2. Each day has 3-5 activities and breakfast, lunch and dinner\n")
	fmt.Fprintf(&prompt, "3. All costs are numbers in %s, without currency symbols or separators\n", req.Currency)
	fmt.Fprintf(&prompt, "4. budgetBreakdown.total must equal %s and equal the sum of the five categories\n", budget)
	fmt.Fprintf(&prompt, "5. Costs must cover all %d travelers\n", req.PeopleCount)
	prompt.WriteString("6. Provide at least 2 accommodation options, 2 transportation options and 5 tips\n")
	prompt.WriteString("7. Return ONLY valid JSON, no markdown, no comments, no extra text\n\n")

	prompt.WriteString("Return JSON in this EXACT format:\n")
	prompt.WriteString(itinerarySchema)
	prompt.WriteString("\n")

	return prompt.String()
}
