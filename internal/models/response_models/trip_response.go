package response_models

type TripResponse struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"ownerId,omitempty"`
	Destination string     `json:"destination"`
	Duration    int        `json:"duration"`
	PeopleCount int        `json:"peopleCount"`
	Budget      float64    `json:"budget"`
	Currency    string     `json:"currency"`
	CreatedAt   string     `json:"createdAt"`
	Itinerary   *Itinerary `json:"itinerary,omitempty"`
}

type ShareResponse struct {
	Token     string `json:"token"`
	URL       string `json:"url"`
	ExpiresAt string `json:"expiresAt"`
}

type TripListResponse struct {
	Items    []TripResponse `json:"items"`
	Page     int            `json:"page"`
	PageSize int            `json:"pageSize"`
	Total    int64          `json:"total"`
}
