package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/lic-events/vbs-api/internal/domain"
)

type CreateVolunteerRequest struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Gender            string `json:"gender"`
	ContactNo         string `json:"contact_no"`
	WhatsAppNo        string `json:"whatsapp_no"`
	Email             string `json:"email"`
	Church            string `json:"church"`
	PreferredRole     string `json:"preferred_role"`
	PreferredClass    string `json:"preferred_class"`
	PreviousVolunteer bool   `json:"previous_volunteer"`
	PreviousSite      string `json:"previous_site"`
}

func (r CreateVolunteerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Gender, validation.Required, validation.In("Male", "Female")),
		validation.Field(&r.ContactNo, validation.Required),
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.PreferredRole, validation.Required),
	)
}

func (r CreateVolunteerRequest) ToDomain() domain.Volunteer {
	return domain.Volunteer{
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		Gender:            r.Gender,
		ContactNo:         r.ContactNo,
		WhatsAppNo:        r.WhatsAppNo,
		Email:             r.Email,
		Church:            r.Church,
		PreferredRole:     r.PreferredRole,
		PreferredClass:    r.PreferredClass,
		PreviousVolunteer: r.PreviousVolunteer,
		PreviousSite:      r.PreviousSite,
	}
}
