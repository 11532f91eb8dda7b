package model

// Incoming body of POST /summaries. Any string is accepted, including "".
type DTOSummaryRequest struct {
	Text string `json:"text"`
}

// Outgoing body of POST /summaries.
type DTOSummaryResponse struct {
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}
