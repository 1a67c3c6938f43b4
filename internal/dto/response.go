package dto

import "time"

// BasicResponse is the uniform envelope for errors and acknowledgments.
type BasicResponse struct {
	Ok        bool      `json:"ok"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func NewBasicResponse(ok bool, message string) BasicResponse {
	return BasicResponse{
		Ok:        ok,
		Message:   message,
		Timestamp: time.Now(),
	}
}
