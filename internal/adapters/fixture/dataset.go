package fixture

import "github.com/bnema/dcms-cli/internal/domain"

type Account struct {
	Username string
	Password string
	Session  domain.Session
}

// Dataset is what the fixture backend serves. Correspondences with no responsible engineer
// are visible to everyone; the rest only to the engineer they are assigned to.
type Dataset struct {
	Accounts        []Account
	Correspondences []domain.Correspondence
	Meetings        []domain.Meeting
	Stats           domain.Stats
}

func (d Dataset) account(username, password string) (Account, bool) {
	for _, account := range d.Accounts {
		if account.Username == username && account.Password == password {
			return account, true
		}
	}
	return Account{}, false
}

func (d Dataset) session(id domain.UserID) (domain.Session, bool) {
	for _, account := range d.Accounts {
		if account.Session.ID == id {
			return account.Session, true
		}
	}
	return domain.Session{}, false
}

func (d Dataset) bundleFor(session *domain.Session) domain.Bundle {
	correspondences := make([]domain.Correspondence, 0, len(d.Correspondences))
	for _, item := range d.Correspondences {
		if session == nil || item.ResponsibleEngineer == "" || item.ResponsibleEngineer == session.Name {
			correspondences = append(correspondences, item)
		}
	}

	stats := d.Stats
	meetings := append([]domain.Meeting(nil), d.Meetings...)
	bundle := domain.Bundle{
		User:            session,
		Correspondences: correspondences,
		Meetings:        meetings,
		Stats:           &stats,
	}
	bundle.Normalize()
	return bundle
}

func DefaultDataset() Dataset {
	return Dataset{
		Accounts: []Account{
			{Username: "eng1", Password: "eng1", Session: domain.Session{ID: 7, Name: "Eng One", Role: "Engineer", Username: "eng1"}},
			{Username: "manager", Password: "manager", Session: domain.Session{ID: 1, Name: "Site Manager", Role: "Manager", Username: "manager"}},
		},
		Correspondences: []domain.Correspondence{
			{
				ID:                  101,
				Subject:             "Pump station handover schedule",
				Date:                "2026-10-12",
				Status:              domain.StatusNew,
				ReferenceNumber:     "IN-2026-0412",
				ResponsibleEngineer: "Eng One",
				Description:         "Contractor requests confirmation of the handover date for pump station 3.",
				Category:            domain.CategoryInbound,
				Attachments: []domain.Attachment{
					{Title: "Contractor letter", URL: "/files/in-2026-0412.pdf", Type: domain.AttachmentOriginal},
					{Title: "Department reply", URL: "/files/in-2026-0412-reply.pdf", Type: domain.AttachmentReply},
				},
			},
			{
				ID:                  102,
				Subject:             "Budget revision for road maintenance",
				Date:                "2026-10-09",
				Status:              "Processed",
				ReferenceNumber:     "OUT-2026-0117",
				ResponsibleEngineer: "Site Manager",
				Category:            domain.CategoryOutbound,
				Attachments: []domain.Attachment{
					{Title: "Transfer note", URL: "https://files.example.com/out-2026-0117.pdf", Type: domain.AttachmentTransfer},
				},
			},
			{
				ID:                    103,
				Subject:               "Quarterly safety circular",
				Date:                  "2026-10-01",
				Status:                "Processed",
				ReferenceNumber:       "GEN-2026-0042",
				Category:              domain.CategoryGeneral,
				OriginalAttachmentURL: "files/gen-2026-0042.pdf",
			},
		},
		Meetings: []domain.Meeting{
			{ID: 201, Title: "Weekly coordination", Time: "10:00", Date: "2026-10-19", Location: "Main hall", Participants: 8, Platform: "In person", Status: "Scheduled"},
			{ID: 202, Title: "Contractor follow-up", Time: "13:30", Date: "2026-10-19", Location: "Online", Participants: 4, Platform: "Teams", Status: "Scheduled", IsOnline: true, MeetingLink: "https://meet.example.com/dcms-202"},
		},
		Stats: domain.Stats{MeetingsToday: 2, PendingIssues: 5, CompletedReports: 12},
	}
}
