package listing

import (
	"fmt"
	"strings"

	"github.com/bnema/dcms-cli/internal/application"
	"github.com/bnema/dcms-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Kind string

const (
	KindHome    Kind = "home"
	KindSearch  Kind = "search"
	KindDetail  Kind = "detail"
	KindAgenda  Kind = "agenda"
	KindProfile Kind = "profile"
)

// View is everything one frame needs. Items holds the already filtered correspondences for
// KindSearch; Cursor highlights one of them and is ignored when negative.
type View struct {
	Kind      Kind
	Session   *domain.Session
	Snapshot  application.Snapshot
	Items     []domain.Correspondence
	Query     string
	Cursor    int
	Selected  *domain.Correspondence
	DataSaver bool
	Resolve   func(raw string) (string, bool)
}

// ResolvedAttachment is a detail-view attachment row. URL is empty when the raw reference
// could not be resolved.
type ResolvedAttachment struct {
	Label string
	Title string
	URL   string
}

// Attachments lists the detail attachments of item, falling back to the primary legacy link
// when the item has no attachment array.
func Attachments(item domain.Correspondence, resolve func(string) (string, bool)) []ResolvedAttachment {
	rows := make([]ResolvedAttachment, 0, len(item.Attachments)+1)
	for _, attachment := range item.Attachments {
		rows = append(rows, ResolvedAttachment{
			Label: attachment.Type.Label(),
			Title: attachment.Title,
			URL:   resolveWith(resolve, attachment.URL),
		})
	}

	if len(rows) == 0 {
		if primary := item.PrimaryAttachmentURL(); primary != "" {
			rows = append(rows, ResolvedAttachment{
				Label: domain.AttachmentOriginal.Label(),
				Title: item.ReferenceNumber,
				URL:   resolveWith(resolve, primary),
			})
		}
	}

	return rows
}

func resolveWith(resolve func(string) (string, bool), raw string) string {
	if resolve == nil {
		return strings.TrimSpace(raw)
	}

	resolved, ok := resolve(raw)
	if !ok {
		return ""
	}
	return resolved
}

func renderView(view View, s styles) string {
	if view.Snapshot.Err != nil {
		return ErrorPanel(view.Snapshot.Err)
	}

	switch view.Kind {
	case KindSearch:
		return renderSearch(view, s)
	case KindDetail:
		return renderDetail(view, s)
	case KindAgenda:
		return renderAgenda(view, s)
	case KindProfile:
		return renderProfile(view, s)
	default:
		return renderHome(view, s)
	}
}

// ErrorPanel is the failed-fetch panel with the retry hint.
func ErrorPanel(err error) string {
	s := newStyles()
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		s.warning.Render("Could not load data"),
		s.detail.Render(domain.UserMessage(err)),
		s.meta.Render("Retry to fetch again."),
	)
	return s.panel.Render(body)
}

func renderHome(view View, s styles) string {
	lines := []string{greeting(view.Session, s)}
	if view.Snapshot.Loading() {
		lines = append(lines, s.empty.Render("Loading..."))
	}

	lines = append(lines, s.section.Render(renderStats(view.Snapshot.Stats, s)))

	meetings := []string{s.title.Render("Today's meetings")}
	meetings = append(meetings, meetingLines(view.Snapshot.Meetings, s)...)
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, meetings...)))

	recent := []string{s.title.Render("Recent correspondence")}
	recent = append(recent, correspondenceLines(view.Snapshot.Correspondences, -1, "", s)...)
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, recent...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func greeting(session *domain.Session, s styles) string {
	if session == nil {
		return s.greeting.Render("Welcome")
	}
	return s.greeting.Render(fmt.Sprintf("Welcome, %s", session.Name))
}

func renderStats(stats domain.Stats, s styles) string {
	cell := func(label string, value int) string {
		return fmt.Sprintf("%s %s", s.statValue.Render(fmt.Sprintf("%d", value)), s.meta.Render(label))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		cell("meetings today", stats.MeetingsToday),
		"   ",
		cell("pending issues", stats.PendingIssues),
		"   ",
		cell("completed reports", stats.CompletedReports),
	)
}

func renderSearch(view View, s styles) string {
	header := fmt.Sprintf("correspondences: %d", len(view.Items))
	if strings.TrimSpace(view.Query) != "" {
		header = fmt.Sprintf("%s matching %q", header, view.Query)
	}

	lines := []string{s.title.Render("Correspondence"), s.header.Render(header)}
	if view.Snapshot.Loading() {
		lines = append(lines, s.empty.Render("Loading..."))
	}
	lines = append(lines, correspondenceLines(view.Items, view.Cursor, view.Query, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func correspondenceLines(items []domain.Correspondence, cursor int, query string, s styles) []string {
	if len(items) == 0 {
		if strings.TrimSpace(query) != "" {
			return []string{s.empty.Render(fmt.Sprintf("No correspondence matches %q.", query))}
		}
		return []string{s.empty.Render("No correspondence available.")}
	}

	lines := make([]string, 0, len(items))
	for i, item := range items {
		marker := "  "
		if i == cursor {
			marker = "> "
		}
		lines = append(lines, marker+correspondenceLine(item, s))
	}

	return lines
}

func correspondenceLine(item domain.Correspondence, s styles) string {
	category := s.badgeOut.Render(item.Category.Label())
	if item.Category == domain.CategoryInbound {
		category = s.badgeIn.Render(item.Category.Label())
	}

	status := s.badgeDone.Render(item.Status.Label())
	if item.Status.IsNew() {
		status = s.badgeNew.Render(item.Status.Label())
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.meta.Render(fmt.Sprintf("#%d ", item.ID)),
		s.subject.Render(item.Subject),
		" ",
		s.meta.Render(item.ReferenceNumber),
		" ",
		category,
		" ",
		status,
		" ",
		s.meta.Render(fmt.Sprintf("%s, %s", item.EngineerName(), item.Date)),
	)
}

func renderDetail(view View, s styles) string {
	if view.Selected == nil {
		return s.empty.Render("No correspondence selected.")
	}

	item := *view.Selected
	lines := []string{
		s.subject.Render(item.Subject),
		s.meta.Render(fmt.Sprintf("%s | %s | %s | %s", item.ReferenceNumber, item.Date, item.Category.Label(), item.Status.Label())),
		s.detail.Render("Responsible engineer: " + item.EngineerName()),
		s.section.Render(s.detail.Render(item.DetailDescription())),
	}

	if strings.TrimSpace(item.Reply) != "" {
		lines = append(lines, s.section.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			s.title.Render("Reply"),
			s.detail.Render(item.Reply),
		)))
	}

	attachments := []string{s.title.Render("Attachments")}
	rows := Attachments(item, view.Resolve)
	if len(rows) == 0 {
		attachments = append(attachments, s.empty.Render("No attachments."))
	}
	for i, row := range rows {
		target := s.link.Render(row.URL)
		if row.URL == "" {
			target = s.warning.Render("unavailable")
		}
		attachments = append(attachments, fmt.Sprintf("%d. %s: %s %s", i+1, row.Label, row.Title, target))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, attachments...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAgenda(view View, s styles) string {
	lines := []string{s.title.Render("Agenda"), s.header.Render(fmt.Sprintf("meetings: %d", len(view.Snapshot.Meetings)))}
	if view.Snapshot.Loading() {
		lines = append(lines, s.empty.Render("Loading..."))
	}
	lines = append(lines, meetingLines(view.Snapshot.Meetings, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func meetingLines(meetings []domain.Meeting, s styles) []string {
	if len(meetings) == 0 {
		return []string{s.empty.Render("No meetings scheduled.")}
	}

	lines := make([]string, 0, len(meetings))
	for _, meeting := range meetings {
		when := meeting.Time
		if when == "" {
			when = meeting.StartTime
		}

		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.statValue.Render(when),
			" ",
			s.subject.Render(meeting.Title),
			" ",
			s.meta.Render(fmt.Sprintf("%s, %d participants, %s, %s", meeting.Location, meeting.HeadCount(), meeting.Platform, meeting.Status)),
		)
		if meeting.Joinable() {
			line += " " + s.link.Render(meeting.MeetingLink)
		}
		lines = append(lines, line)
	}

	return lines
}

func renderProfile(view View, s styles) string {
	if view.Session == nil {
		return s.empty.Render("Not signed in.")
	}

	saver := "off"
	if view.DataSaver {
		saver = "on"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.greeting.Render(view.Session.Name),
		s.meta.Render(fmt.Sprintf("%s | id %s", view.Session.Role, view.Session.ID)),
		s.section.Render(renderStats(view.Snapshot.Stats, s)),
		s.section.Render(s.detail.Render("Data saver: "+saver)),
	)
}
