package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() SignupRequest {
	return SignupRequest{
		Name:            "Admin",
		Email:           "admin@example.com",
		Password:        "secret1234",
		ConfirmPassword: "secret1234",
	}
}

func TestSignupRequest_Validate(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		assert.NoError(t, validSignup().Validate())
	})

	t.Run("rejects a short password", func(t *testing.T) {
		req := validSignup()
		req.Password = "ab1"
		req.ConfirmPassword = "ab1"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects a digitless password", func(t *testing.T) {
		req := validSignup()
		req.Password = "onlyletters"
		req.ConfirmPassword = "onlyletters"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		req := validSignup()
		req.ConfirmPassword = "different1234"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		req := validSignup()
		req.Email = "not-an-email"
		assert.Error(t, req.Validate())
	})
}

func validParticipant() CreateParticipantRequest {
	return CreateParticipantRequest{
		FirstName:        "Ama",
		LastName:         "Mensah",
		Gender:           "Female",
		Age:              9,
		DateOfBirth:      "2017-03-21",
		Grade:            "Grade 3",
		ParentName:       "Kofi Mensah",
		PrimaryContactNo: "0244000000",
	}
}

func TestCreateParticipantRequest_Validate(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		assert.NoError(t, validParticipant().Validate())
	})

	t.Run("rejects an unknown gender", func(t *testing.T) {
		req := validParticipant()
		req.Gender = "Other"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects a malformed date of birth", func(t *testing.T) {
		req := validParticipant()
		req.DateOfBirth = "21-03-2017"
		assert.Error(t, req.Validate())
	})

	t.Run("rejects a missing parent name", func(t *testing.T) {
		req := validParticipant()
		req.ParentName = ""
		assert.Error(t, req.Validate())
	})
}

func TestCreateParticipantRequest_ToDomain(t *testing.T) {
	req := validParticipant()
	require.NoError(t, req.Validate())

	participant := req.ToDomain()
	assert.Equal(t, "Ama Mensah", participant.FullName())
	assert.Equal(t, 2017, participant.DateOfBirth.Year())
}

func TestPickupRequest_Validate(t *testing.T) {
	assert.NoError(t, PickupRequest{PickupPerson: "Kofi Mensah"}.Validate())
	assert.Error(t, PickupRequest{}.Validate())
}
