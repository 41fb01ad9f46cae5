package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/lic-events/vbs-api/internal/domain"
)

// NameRequest covers the reference types that are a bare unique name, such as
// grades, churches and attendance types.
type NameRequest struct {
	Name string `json:"name"`
}

func (r NameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
	)
}

type CreateSessionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

func (r CreateSessionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.StartDate, validation.Required, validation.Date(dateOfBirthLayout)),
		validation.Field(&r.EndDate, validation.Required, validation.Date(dateOfBirthLayout)),
	)
}

func (r CreateSessionRequest) ToDomain() domain.Session {
	start, _ := time.Parse(dateOfBirthLayout, r.StartDate)
	end, _ := time.Parse(dateOfBirthLayout, r.EndDate)

	return domain.Session{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
	}
}

type CreatePickupPersonRequest struct {
	Name      string `json:"name"`
	ContactNo string `json:"contact_no"`
}

func (r CreatePickupPersonRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.ContactNo, validation.Required),
	)
}

type CreateParentRequest struct {
	FullName           string `json:"full_name"`
	PrimaryContactNo   string `json:"primary_contact_no"`
	AlternateContactNo string `json:"alternate_contact_no"`
	Email              string `json:"email"`
}

func (r CreateParentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.PrimaryContactNo, validation.Required),
		validation.Field(&r.Email, is.Email),
	)
}
