package request_models

type DirectionsRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type RecordVisitRequest struct {
	TripID string `json:"trip_id" binding:"required,uuid4"`
	City   string `json:"city" binding:"required"`
	State  string `json:"state" binding:"required"`
}
