package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/lic-events/vbs-api/internal/domain"
)

const dateOfBirthLayout = "2006-01-02"

type CreateParticipantRequest struct {
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Gender              string `json:"gender"`
	Age                 int    `json:"age"`
	DateOfBirth         string `json:"date_of_birth"`
	Grade               string `json:"grade"`
	MedicalInfo         string `json:"medical_info"`
	ParentName          string `json:"parent_name"`
	PrimaryContactNo    string `json:"primary_contact_no"`
	AlternateContactNo  string `json:"alternate_contact_no"`
	WhatsAppNo          string `json:"whatsapp_no"`
	Email               string `json:"email"`
	Church              string `json:"church"`
	PickupPersonName    string `json:"pickup_person_name"`
	PickupPersonContact string `json:"pickup_person_contact_no"`
}

func (r CreateParticipantRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Gender, validation.Required, validation.In("Male", "Female")),
		validation.Field(&r.Age, validation.Required, validation.Min(1), validation.Max(18)),
		validation.Field(&r.DateOfBirth, validation.Date(dateOfBirthLayout)),
		validation.Field(&r.Grade, validation.Required),
		validation.Field(&r.ParentName, validation.Required),
		validation.Field(&r.PrimaryContactNo, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}

func (r CreateParticipantRequest) ToDomain() domain.Participant {
	dob, _ := time.Parse(dateOfBirthLayout, r.DateOfBirth)

	return domain.Participant{
		FirstName:             r.FirstName,
		LastName:              r.LastName,
		Gender:                r.Gender,
		Age:                   r.Age,
		DateOfBirth:           dob,
		Grade:                 r.Grade,
		MedicalInfo:           r.MedicalInfo,
		ParentName:            r.ParentName,
		PrimaryContactNo:      r.PrimaryContactNo,
		AlternateContactNo:    r.AlternateContactNo,
		WhatsAppNo:            r.WhatsAppNo,
		Email:                 r.Email,
		Church:                r.Church,
		PickupPersonName:      r.PickupPersonName,
		PickupPersonContactNo: r.PickupPersonContact,
	}
}

type PickupRequest struct {
	PickupPerson string `json:"pickup_person"`
}

func (r PickupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PickupPerson, validation.Required, validation.Length(1, 200)),
	)
}
