package dto

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

// CommentResponse flags retries so clients can reconcile optimistic inserts.
type CommentResponse struct {
	OK           bool `json:"ok"`
	Deduplicated bool `json:"deduplicated,omitempty"`
	Data         any  `json:"data"`
}

type ArchiveResponse struct {
	OK       bool `json:"ok"`
	Archived int  `json:"archived"`
}
