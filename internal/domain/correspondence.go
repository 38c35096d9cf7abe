package domain

import "strings"

type Category string

const (
	CategoryInbound  Category = "Inbound"
	CategoryOutbound Category = "Outbound"
	CategoryGeneral  Category = "General"
)

// Label is the list badge. Only Inbound is called out; everything else is shown as outgoing.
func (c Category) Label() string {
	if c == CategoryInbound {
		return "Inbound"
	}

	return "Outbound"
}

type CorrespondenceStatus string

const StatusNew CorrespondenceStatus = "New"

func (s CorrespondenceStatus) IsNew() bool {
	return s == StatusNew
}

func (s CorrespondenceStatus) Label() string {
	if s.IsNew() {
		return "New"
	}

	return "Processed"
}

type AttachmentType string

const (
	AttachmentOriginal AttachmentType = "original"
	AttachmentReply    AttachmentType = "reply"
	AttachmentTransfer AttachmentType = "transfer"
	AttachmentOther    AttachmentType = "other"
)

func (t AttachmentType) Label() string {
	switch t {
	case AttachmentOriginal:
		return "Original attachment"
	case AttachmentReply:
		return "Direct reply file"
	case AttachmentTransfer:
		return "Transfer / endorsement attachment"
	default:
		return "Additional attachment"
	}
}

type Attachment struct {
	Title string         `json:"title"`
	URL   string         `json:"url"`
	Type  AttachmentType `json:"type"`
}

type Correspondence struct {
	ID                  int64                `json:"id"`
	Subject             string               `json:"subject"`
	Date                string               `json:"date"`
	Status              CorrespondenceStatus `json:"status"`
	ReferenceNumber     string               `json:"referenceNumber"`
	ResponsibleEngineer string               `json:"responsibleEngineer,omitempty"`
	Description         string               `json:"description,omitempty"`
	Category            Category             `json:"category,omitempty"`
	Reply               string               `json:"reply,omitempty"`
	Attachments         []Attachment         `json:"attachments,omitempty"`

	// Older backends only send these single-link fields.
	OriginalAttachmentURL string `json:"originalAttachmentUrl,omitempty"`
	ReplyAttachmentURL    string `json:"replyAttachmentUrl,omitempty"`
	PDFURL                string `json:"pdfUrl,omitempty"`
}

// PrimaryAttachmentURL returns the first non-empty legacy link: original, reply, then pdf.
func (c Correspondence) PrimaryAttachmentURL() string {
	for _, candidate := range []string{c.OriginalAttachmentURL, c.ReplyAttachmentURL, c.PDFURL} {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}

	return ""
}

func (c Correspondence) EngineerName() string {
	if strings.TrimSpace(c.ResponsibleEngineer) == "" {
		return "Unassigned"
	}

	return c.ResponsibleEngineer
}

func (c Correspondence) DetailDescription() string {
	if strings.TrimSpace(c.Description) == "" {
		return "No additional details recorded for this subject."
	}

	return c.Description
}

func FindCorrespondence(items []Correspondence, id int64) (Correspondence, error) {
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}

	return Correspondence{}, ErrCorrespondenceNotFound
}
