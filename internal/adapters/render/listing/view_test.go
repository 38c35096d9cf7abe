package listing

import (
	"testing"

	"github.com/bnema/dcms-cli/internal/adapters/gateway"
	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolver(raw string) (string, bool) {
	return gateway.ResolveAttachmentURL("https://api.example.com", raw)
}

func sampleSnapshot() application.Snapshot {
	return application.Snapshot{
		State:    application.RefreshReady,
		Identity: 7,
		Correspondences: []domain.Correspondence{
			{ID: 101, Subject: "Pump station", ReferenceNumber: "IN-2026-0412", Category: domain.CategoryInbound, Status: domain.StatusNew, ResponsibleEngineer: "Eng One", Date: "2026-10-12"},
			{ID: 103, Subject: "Site access", ReferenceNumber: "GEN-2026-0042", Category: domain.CategoryGeneral, Status: "Closed", Date: "2026-10-01"},
		},
		Meetings: []domain.Meeting{
			{ID: 1, Title: "Weekly sync", Time: "09:30", Location: "Room 2", Attendees: 6, Platform: "Teams", Status: "Scheduled", IsOnline: true, MeetingLink: "https://meet.example/sync"},
		},
		Stats: domain.Stats{MeetingsToday: 2, PendingIssues: 5, CompletedReports: 12},
	}
}

func TestRenderHome(t *testing.T) {
	output, err := Render(View{
		Kind:     KindHome,
		Session:  &domain.Session{ID: 7, Name: "Eng One", Role: "Engineer"},
		Snapshot: sampleSnapshot(),
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Welcome, Eng One")
	assert.Contains(t, output, "pending issues")
	assert.Contains(t, output, "Weekly sync")
	assert.Contains(t, output, "6 participants")
	assert.Contains(t, output, "https://meet.example/sync")
	assert.Contains(t, output, "IN-2026-0412")
	assert.Contains(t, output, "Unassigned")
	assert.NotContains(t, output, "Loading...")
}

func TestRenderLoadingAndEmptyLists(t *testing.T) {
	output := Compose(View{
		Kind:     KindHome,
		Snapshot: application.Snapshot{State: application.RefreshLoading},
	})

	assert.Contains(t, output, "Loading...")
	assert.Contains(t, output, "No meetings scheduled.")
	assert.Contains(t, output, "No correspondence available.")
}

func TestRenderSearchLabelsAndCursor(t *testing.T) {
	snapshot := sampleSnapshot()
	output := Compose(View{
		Kind:     KindSearch,
		Snapshot: snapshot,
		Items:    snapshot.Correspondences,
		Query:    "",
		Cursor:   1,
	})

	assert.Contains(t, output, "correspondences: 2")
	assert.Contains(t, output, "Inbound")
	assert.Contains(t, output, "Outbound")
	assert.Contains(t, output, "New")
	assert.Contains(t, output, "Processed")
	assert.Contains(t, output, "> #103")
}

func TestRenderSearchWithoutMatches(t *testing.T) {
	output := Compose(View{Kind: KindSearch, Snapshot: sampleSnapshot(), Items: []domain.Correspondence{}, Query: "zzz", Cursor: -1})

	assert.Contains(t, output, `correspondences: 0 matching "zzz"`)
	assert.Contains(t, output, `No correspondence matches "zzz".`)
}

func TestRenderDetailResolvesAttachments(t *testing.T) {
	item := domain.Correspondence{
		ID:              101,
		Subject:         "Pump station",
		ReferenceNumber: "IN-2026-0412",
		Reply:           "Approved.",
		Attachments: []domain.Attachment{
			{Title: "Letter", URL: "/files/a.pdf", Type: domain.AttachmentOriginal},
			{Title: "Transfer", URL: "https://cdn.example.com/t.pdf", Type: domain.AttachmentTransfer},
			{Title: "Broken", URL: "  ", Type: domain.AttachmentType("memo")},
		},
	}

	output := Compose(View{Kind: KindDetail, Snapshot: sampleSnapshot(), Selected: &item, Resolve: resolver})

	assert.Contains(t, output, "No additional details recorded for this subject.")
	assert.Contains(t, output, "Approved.")
	assert.Contains(t, output, "Original attachment: Letter https://api.example.com/files/a.pdf")
	assert.Contains(t, output, "Transfer / endorsement attachment: Transfer https://cdn.example.com/t.pdf")
	assert.Contains(t, output, "Additional attachment: Broken unavailable")
}

func TestAttachmentsFallBackToLegacyLink(t *testing.T) {
	rows := Attachments(domain.Correspondence{ReferenceNumber: "GEN-1", ReplyAttachmentURL: "files/r.pdf"}, resolver)

	require.Len(t, rows, 1)
	assert.Equal(t, "https://api.example.com/files/r.pdf", rows[0].URL)
	assert.Equal(t, "GEN-1", rows[0].Title)

	assert.Empty(t, Attachments(domain.Correspondence{}, resolver))
}

func TestRenderErrorPanel(t *testing.T) {
	snapshot := application.Snapshot{State: application.RefreshFailed, Err: domain.NewServerError(500, "DB down")}

	output := Compose(View{Kind: KindHome, Snapshot: snapshot})

	assert.Contains(t, output, "Could not load data")
	assert.Contains(t, output, "DB down")
	assert.Contains(t, output, "Retry")
}

func TestRenderAgendaAndProfile(t *testing.T) {
	session := &domain.Session{ID: 7, Name: "Eng One", Role: "Engineer"}

	agenda := Compose(View{Kind: KindAgenda, Snapshot: sampleSnapshot()})
	assert.Contains(t, agenda, "meetings: 1")
	assert.Contains(t, agenda, "09:30")

	profile := Compose(View{Kind: KindProfile, Session: session, Snapshot: sampleSnapshot(), DataSaver: true})
	assert.Contains(t, profile, "Engineer | id 7")
	assert.Contains(t, profile, "Data saver: on")

	assert.Contains(t, Compose(View{Kind: KindProfile}), "Not signed in.")
}
