package domain

import "time"

// Case is a court case record. Judge is the display name of the assigned
// identity, resolved on every read.
type Case struct {
	ID           string
	JudgeID      string
	Judge        string
	CaseNumber   string
	CaseName     string
	CaseCategory string
	LegalSection string
	Parties      string
	Status       string
	FilingDate   string
	NextHearing  string
	Description  string
	CreatedAt    time.Time
}

// AccessPolicy decides who may open a single case.
type AccessPolicy string

const (
	// AccessOpen lets any logged in judge open any case by id.
	AccessOpen AccessPolicy = "open"

	// AccessAssigned restricts a case to the judge it is assigned to.
	AccessAssigned AccessPolicy = "assigned"
)

// ParseAccessPolicy returns ok=false for anything but the two known values.
func ParseAccessPolicy(s string) (AccessPolicy, bool) {
	switch AccessPolicy(s) {
	case AccessOpen, AccessAssigned:
		return AccessPolicy(s), true
	}
	return "", false
}

// CanView reports whether viewer may open c under p.
func (p AccessPolicy) CanView(viewer Identity, c Case) bool {
	if p == AccessAssigned {
		return c.JudgeID == viewer.ID
	}
	return true
}
