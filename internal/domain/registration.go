package domain

type RegistrationFields struct {
	ParticipantRef   *string `json:"teilnehmer,omitempty"` // URL to a participant record
	CourseRef        *string `json:"kurs,omitempty"`       // URL to a course record
	RegistrationDate *string `json:"anmeldedatum,omitempty"`
	Paid             *bool   `json:"bezahlt,omitempty"`
}

// IsPaid treats an absent flag as unpaid.
func (f RegistrationFields) IsPaid() bool {
	return f.Paid != nil && *f.Paid
}

type Registration = Record[RegistrationFields]
