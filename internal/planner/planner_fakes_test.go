package planner

import (
	"context"
	"sync"
	"time"
)

// scriptedClient replays responses in order, repeating the last one.
type scriptedClient struct {
	mu        sync.Mutex
	responses []string
	errs      []error
	calls     int
	prompts   []string
}

func (c *scriptedClient) GenerateText(_ context.Context, prompt string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.calls
	c.calls++
	c.prompts = append(c.prompts, prompt)

	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if len(c.responses) == 0 {
		return "", nil
	}
	if i >= len(c.responses) {
		i = len(c.responses) - 1
	}
	return c.responses[i], nil
}

func (c *scriptedClient) Close() error { return nil }

func (c *scriptedClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// recordingTimer fires immediately and remembers every requested wait.
type recordingTimer struct {
	waits []time.Duration
	ch    chan time.Time
}

func (t *recordingTimer) Start(d time.Duration) {
	t.waits = append(t.waits, d)
	t.ch = make(chan time.Time, 1)
	t.ch <- time.Now()
}

func (t *recordingTimer) Stop() {}

func (t *recordingTimer) C() <-chan time.Time { return t.ch }

const parisDayTwoOnly = "Here is your plan:\n```json\n" + `{
  "days": [
    {
      "day": 2,
      "activities": [
        {"name": "Louvre Museum", "description": "Highlights tour", "time": "09:00 AM - 12:00 PM", "cost": 3400, "location": "Rue de Rivoli"},
        {"name": "Seine cruise", "description": "Evening boat ride", "time": "07:00 PM - 08:00 PM", "cost": 2600, "location": "Port de la Bourdonnais", "weatherConsideration": "Bring a jacket"}
      ],
      "meals": [
        {"type": "breakfast", "suggestion": "Croissants", "cost": 900},
        {"type": "lunch", "suggestion": "Bistro menu", "cost": 3000, "location": "Le Marais"},
        {"type": "dinner", "suggestion": "Brasserie", "cost": 5000, "location": "Saint-Germain"}
      ]
    }
  ],
  "accommodation": [
    {"name": "Hotel Lumiere", "description": "Boutique hotel", "pricePerNight": 9000, "location": "Montmartre", "amenities": ["WiFi", "Breakfast"]}
  ],
  "transportation": [
    {"type": "Metro", "description": "Navigo weekly pass", "cost": 2500}
  ],
  "budgetBreakdown": {
    "accommodation": 20000,
    "food": 12000,
    "activities": 8000,
    "transportation": 7000,
    "miscellaneous": 3000,
    "total": 50000
  },
  "tips": ["Buy museum tickets online", "Carry a reusable water bottle"]
}` + "\n```\nEnjoy your trip!"
