package domain

type InstructorFields struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"telefon,omitempty"`
	Specialty *string `json:"fachgebiet,omitempty"`
}

type ParticipantFields struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"telefon,omitempty"`
	BirthDate *string `json:"geburtsdatum,omitempty"`
}

type Instructor = Record[InstructorFields]

type Participant = Record[ParticipantFields]
