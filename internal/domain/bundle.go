package domain

type Stats struct {
	MeetingsToday    int `json:"meetingsToday"`
	PendingIssues    int `json:"pendingIssues"`
	CompletedReports int `json:"completedReports"`
}

// Bundle is one fetch worth of data. Stats is nil when the backend omitted it.
type Bundle struct {
	User            *Session         `json:"user,omitempty"`
	Correspondences []Correspondence `json:"correspondences"`
	Meetings        []Meeting        `json:"meetings"`
	Stats           *Stats           `json:"stats,omitempty"`
}

func (b *Bundle) Normalize() {
	if b == nil {
		return
	}
	if b.Correspondences == nil {
		b.Correspondences = []Correspondence{}
	}
	if b.Meetings == nil {
		b.Meetings = []Meeting{}
	}
}
