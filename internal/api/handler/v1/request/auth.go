package request

import (
	"errors"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// at least 8 characters, with at least one letter and one digit.
var passwordPattern = regexp2.MustCompile(`^(?=.*[A-Za-z])(?=.*\d).{8,}$`, regexp2.None)

type SignupRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r SignupRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	if ok, _ := passwordPattern.MatchString(r.Password); !ok {
		return errors.New("password must be at least 8 characters long and contain at least one letter and one digit")
	}

	if r.Password != r.ConfirmPassword {
		return errors.New("passwords do not match")
	}

	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}
