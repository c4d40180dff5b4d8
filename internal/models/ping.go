package models

// PingRequest is the body of POST /ping.
type PingRequest struct {
	Payload string `json:"payload"`
}

// PongResponse echoes the payload back, upper-cased and prefixed.
type PongResponse struct {
	Payload string `json:"payload"`
}
