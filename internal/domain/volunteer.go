package domain

import "time"

type Volunteer struct {
	ID                uint      `json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Gender            string    `json:"gender"`
	PreferredRole     string    `json:"preferred_role"`
	Church            string    `json:"church"`
	PreferredClass    string    `json:"preferred_class"`
	ContactNo         string    `json:"contact_no"`
	WhatsAppNo        string    `json:"whatsapp_no"`
	Email             string    `json:"email"`
	PreviousVolunteer bool      `json:"previous_volunteer"`
	PreviousSite      string    `json:"previous_site"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
