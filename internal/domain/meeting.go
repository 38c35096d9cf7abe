package domain

type Meeting struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Time         string `json:"time"`
	Date         string `json:"date,omitempty"`
	StartTime    string `json:"startTime,omitempty"`
	Location     string `json:"location"`
	Participants int    `json:"participants"`
	Platform     string `json:"platform"`
	Status       string `json:"status"`
	IsOnline     bool   `json:"isOnline,omitempty"`
	MeetingLink  string `json:"meetingLink,omitempty"`
	Attendees    int    `json:"attendees,omitempty"`
}

// HeadCount prefers participants and falls back to the older attendees field.
func (m Meeting) HeadCount() int {
	if m.Participants > 0 {
		return m.Participants
	}

	return m.Attendees
}

func (m Meeting) Joinable() bool {
	return m.IsOnline && m.MeetingLink != ""
}
