package models

// SafetyAlert is derived per booking that has no arrival confirmation
// past its expected arrival time. Computed on demand, never persisted.
type SafetyAlert struct {
	BookingID           uint   `json:"booking_id"`
	User                string `json:"user"`
	Room                string `json:"room"`
	Date                string `json:"date"`
	ExpectedArrivalTime string `json:"expected_arrival_time"`
	Message             string `json:"message"`
	Flagged             bool   `json:"flagged"`
}

// CommuteAlert is the commute-entry counterpart of SafetyAlert. The
// frontend reads the message under "alert_message" here, so the two
// types keep separate JSON shapes.
type CommuteAlert struct {
	EntryID             uint   `json:"entry_id"`
	User                string `json:"user"`
	Date                string `json:"date"`
	ExpectedArrivalTime string `json:"expected_arrival_time"`
	TravelMode          string `json:"travel_mode,omitempty"`
	AlertMessage        string `json:"alert_message"`
	Flagged             bool   `json:"flagged"`
}
