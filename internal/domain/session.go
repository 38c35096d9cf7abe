package domain

import "strconv"

type UserID int64

// AnonymousUserID is the identity used while nobody is signed in.
const AnonymousUserID UserID = 0

func (id UserID) Scoped() bool {
	return id != AnonymousUserID
}

func (id UserID) String() string {
	if !id.Scoped() {
		return "anonymous"
	}

	return strconv.FormatInt(int64(id), 10)
}

type Session struct {
	ID       UserID `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username,omitempty"`
}

// Identity returns the identity a data refresh is keyed on. A nil session is anonymous.
func (s *Session) Identity() UserID {
	if s == nil {
		return AnonymousUserID
	}

	return s.ID
}
