package domain

import "time"

type Grade struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Church struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AttendanceType struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type Session struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

type PickupPerson struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	ContactNo string `json:"contact_no"`
}

type Parent struct {
	ID                 uint   `json:"id"`
	FullName           string `json:"full_name"`
	PrimaryContactNo   string `json:"primary_contact_no"`
	AlternateContactNo string `json:"alternate_contact_no"`
	Email              string `json:"email"`
}
