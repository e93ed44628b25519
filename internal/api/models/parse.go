package models

// ParseRequest is the body of POST /api/parse.
type ParseRequest struct {
	Email string `json:"email" example:"Tuesday at 3pm works, here is the link: https://meet.example.com/abc"`
}

// ParseResponse is the normalized extraction result plus storage metadata.
//
// Field order matches the wire order clients pretty-print.
type ParseResponse struct {
	ReplyType       *string `json:"reply_type" example:"acceptance"`
	ProposedTime    *string `json:"proposed_time" example:"2024-03-12T15:00:00Z"`
	MeetingLink     *string `json:"meeting_link" example:"https://meet.example.com/abc"`
	DelegateTo      *string `json:"delegate_to"`
	AdditionalNotes *string `json:"additional_notes"`
	ID              int64   `json:"id" example:"42"`
	CreatedAt       string  `json:"created_at" example:"2024-03-08T09:12:44.123Z"`
}

// HistoryEntry is one stored parse result as returned by GET /api/history.
type HistoryEntry struct {
	ID              int64   `json:"id" example:"42"`
	InputText       string  `json:"input_text"`
	ReplyType       *string `json:"reply_type" example:"reschedule"`
	ProposedTime    *string `json:"proposed_time"`
	MeetingLink     *string `json:"meeting_link"`
	DelegateTo      *string `json:"delegate_to"`
	AdditionalNotes *string `json:"additional_notes"`
	CreatedAt       string  `json:"created_at" example:"2024-03-08T09:12:44.123Z"`
}
