package response

// AdmitResponse is returned for both a fresh check-in and an idempotent
// repeat; AlreadyRecorded distinguishes the two and PickupCode is only set on
// a fresh check-in.
type AdmitResponse struct {
	Detail          string `json:"detail"`
	PickupCode      int    `json:"pickup_code,omitempty"`
	AlreadyRecorded bool   `json:"already_recorded"`
}

type PickupResponse struct {
	Detail          string `json:"detail"`
	AlreadyRecorded bool   `json:"already_recorded"`
}
