package domain

import "time"

type Participant struct {
	ID                    uint      `json:"id"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Gender                string    `json:"gender"`
	Age                   int       `json:"age"`
	DateOfBirth           time.Time `json:"date_of_birth"`
	Grade                 string    `json:"grade"`
	MedicalInfo           string    `json:"medical_info"`
	ParentName            string    `json:"parent_name"`
	PrimaryContactNo      string    `json:"primary_contact_no"`
	AlternateContactNo    string    `json:"alternate_contact_no"`
	WhatsAppNo            string    `json:"whatsapp_no"`
	Email                 string    `json:"email"`
	Church                string    `json:"church"`
	PickupPersonName      string    `json:"pickup_person_name"`
	PickupPersonContactNo string    `json:"pickup_person_contact_no"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (p Participant) FullName() string {
	return p.FirstName + " " + p.LastName
}
