package domain

import "time"

const (
	// PickupCodeMin and PickupCodeMax bound the 5-digit pickup codes issued
	// at check-in.
	PickupCodeMin = 10000
	PickupCodeMax = 99999
)

// AttendanceRecord is a participant's check-in for one event day. At most
// one record exists per (participant, event day); once written it is never
// cleared or overwritten.
type AttendanceRecord struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	EventDay      EventDay  `json:"event_day"`
	CheckedInAt   time.Time `json:"checked_in_at"`
}

// PickupCode is the one-time numeric code issued at check-in, keyed by
// participant and event day.
type PickupCode struct {
	ID            uint     `json:"id"`
	ParticipantID uint     `json:"participant_id"`
	EventDay      EventDay `json:"event_day"`
	Code          int      `json:"code"`
}

// PickupRecord is a participant's pickup for one event day, including the
// name of the person who collected them. Same singularity as AttendanceRecord.
type PickupRecord struct {
	ID            uint      `json:"id"`
	ParticipantID uint      `json:"participant_id"`
	EventDay      EventDay  `json:"event_day"`
	PickedUpAt    time.Time `json:"picked_up_at"`
	PickupPerson  string    `json:"pickup_person"`
}

// CheckInResult is the outcome of an admit action. AlreadyRecorded means the
// participant was checked in earlier today and nothing was mutated.
type CheckInResult struct {
	EventDay        EventDay  `json:"event_day"`
	CheckedInAt     time.Time `json:"checked_in_at"`
	PickupCode      int       `json:"pickup_code"`
	AlreadyRecorded bool      `json:"already_recorded"`
}

// AttendanceStatus is the front desk's view of a participant's state for
// today: whether they were checked in, the code issued, and whether they have
// been collected.
type AttendanceStatus struct {
	EventDay     EventDay   `json:"event_day"`
	CheckedIn    bool       `json:"checked_in"`
	CheckedInAt  *time.Time `json:"checked_in_at,omitempty"`
	PickupCode   int        `json:"pickup_code,omitempty"`
	PickedUp     bool       `json:"picked_up"`
	PickedUpAt   *time.Time `json:"picked_up_at,omitempty"`
	PickupPerson string     `json:"pickup_person,omitempty"`
}

// PickupResult is the outcome of a pickup action.
type PickupResult struct {
	EventDay        EventDay  `json:"event_day"`
	PickedUpAt      time.Time `json:"picked_up_at"`
	PickupPerson    string    `json:"pickup_person"`
	AlreadyRecorded bool      `json:"already_recorded"`
}
