package response_models

import "encoding/json"

type GeocodeResponse struct {
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	FormattedAddress string  `json:"formatted_address"`
}

type RouteStepResponse struct {
	Miles       float64 `json:"miles"`
	Instruction string  `json:"instruction"`
}

type DirectionsResponse struct {
	TripID       string              `json:"trip_id"`
	StartingTown string              `json:"startingTown"`
	EndingTown   string              `json:"endingTown"`
	Miles        float64             `json:"miles"`
	Minutes      int                 `json:"minutes"`
	Steps        []RouteStepResponse `json:"steps"`
}

type VisitResponse struct {
	City                string          `json:"city"`
	State               string          `json:"state"`
	IsGem               bool            `json:"is_gem"`
	Facts               json.RawMessage `json:"facts"`
	NewlyUnlockedBadges []BadgeResponse `json:"newly_unlocked_badges"`
}

type TripSummaryResponse struct {
	TripID       string `json:"trip_id"`
	StartingTown string `json:"startingTown"`
	EndingTown   string `json:"endingTown"`
	CreatedAt    int64  `json:"created_at"`
}

type TripCityResponse struct {
	ID        string          `json:"id"`
	City      string          `json:"city"`
	State     string          `json:"state"`
	Facts     json.RawMessage `json:"facts"`
	IsGem     bool            `json:"is_gem"`
	VisitedAt int64           `json:"visited_at"`
}

type TripCitiesResponse struct {
	TripID string             `json:"tripId"`
	Cities []TripCityResponse `json:"cities"`
}

type LocationResponse struct {
	ID    string          `json:"id"`
	City  string          `json:"city"`
	State string          `json:"state"`
	Facts json.RawMessage `json:"facts"`
	IsGem bool            `json:"is_gem"`
}

type SimilarLocationResponse struct {
	LocationID string   `json:"location_id"`
	City       string   `json:"city"`
	State      string   `json:"state"`
	Highlights []string `json:"highlights"`
}

type NearestCityResponse struct {
	City  string `json:"city"`
	State string `json:"state"`
}
