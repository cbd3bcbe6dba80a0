package models

// Doctor is read-only directory data owned by the directory service.
type Doctor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Specialization  string   `json:"specialization"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"review_count"`
	Location        string   `json:"location"`
	ConsultationFee float64  `json:"consultation_fee"`
	AvailableSlots  []string `json:"available_slots"`
}
