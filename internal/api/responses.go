// Package api holds the response envelopes shared across handlers.
package api

type ErrorResponse struct {
	Error string `json:"error" example:"booking not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"notification queued"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"callananny-api"`
}
