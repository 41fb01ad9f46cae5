package domain

// GradeCount is one bucket of a per-grade distribution.
type GradeCount struct {
	Grade string `json:"grade"`
	Count int64  `json:"count"`
}

type DashboardOverview struct {
	Participants                int64 `json:"participants"`
	Volunteers                  int64 `json:"volunteers"`
	ParticipantChurches         int64 `json:"participant_churches"`
	VolunteerChurches           int64 `json:"volunteer_churches"`
	ParticipantsThisWeek        int64 `json:"participants_this_week"`
	VolunteersThisWeek          int64 `json:"volunteers_this_week"`
	ParticipantChurchesThisWeek int64 `json:"participant_churches_this_week"`
	VolunteerChurchesThisWeek   int64 `json:"volunteer_churches_this_week"`
}

type DashboardDistributions struct {
	ParticipantClassDistribution []GradeCount `json:"participant_class_distribution"`
	VolunteerClassDistribution   []GradeCount `json:"volunteer_class_distribution"`
}

type DashboardData struct {
	Overview      DashboardOverview      `json:"overview"`
	Distributions DashboardDistributions `json:"distributions"`
}
