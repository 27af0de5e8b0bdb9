package guard

import (
	"time"

	"github.com/srad-secure/srad-backend-go/internal/domain/region"
)

// Crew is one side of the strict 2-shift rotation.
type Crew string

const (
	CrewEven Crew = "EVEN"
	CrewOdd  Crew = "ODD"
)

func (c Crew) Valid() bool {
	return c == CrewEven || c == CrewOdd
}

// Opposite returns the relief crew.
func (c Crew) Opposite() Crew {
	if c == CrewEven {
		return CrewOdd
	}
	return CrewEven
}

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusOnLeave  Status = "ON_LEAVE"
	StatusVacation Status = "VACATION"
	StatusBlocked  Status = "BLOCKED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusVacation, StatusBlocked:
		return true
	}
	return false
}

type CheckInState string

const (
	CheckInInside  CheckInState = "INSIDE"
	CheckInOutside CheckInState = "OUTSIDE"
	CheckInPending CheckInState = "PENDING"
)

type DocumentKind string

const (
	DocumentRecycling      DocumentKind = "RECYCLING_COURSE"
	DocumentFirearmPermit  DocumentKind = "FIREARM_PERMIT"
	DocumentMedicalExam    DocumentKind = "MEDICAL_EXAM"
	DocumentPPE            DocumentKind = "PPE"
	DocumentTrainingCourse DocumentKind = "TRAINING_COURSE"
)

func (k DocumentKind) Valid() bool {
	switch k {
	case DocumentRecycling, DocumentFirearmPermit, DocumentMedicalExam, DocumentPPE, DocumentTrainingCourse:
		return true
	}
	return false
}

type DocumentStatus string

const (
	DocumentValid   DocumentStatus = "VALID"
	DocumentExpired DocumentStatus = "EXPIRED"
	DocumentAlert   DocumentStatus = "ALERT"
)

// DocumentAlertWindow is how long before expiry a document is flagged.
const DocumentAlertWindow = 30 * 24 * time.Hour

type Document struct {
	Kind       DocumentKind
	ValidUntil time.Time
	Status     DocumentStatus
}

// StatusAt classifies the document against now.
func (d Document) StatusAt(now time.Time) DocumentStatus {
	switch {
	case now.After(d.ValidUntil):
		return DocumentExpired
	case now.Add(DocumentAlertWindow).After(d.ValidUntil):
		return DocumentAlert
	default:
		return DocumentValid
	}
}

// Guard is a security guard (colaborador). Guards are never deleted, only
// moved between statuses.
type Guard struct {
	ID                string
	Name              string
	Registration      string
	CPF               string
	Position          string
	Phone             string
	Crew              Crew
	HomeRegion        region.Region
	AuthorizedRegions []region.Region
	Status            Status
	OvertimeHours     float64
	FatigueIndex      float64
	NightApt          bool
	CurrentPostID     *string
	CheckIn           CheckInState
	LastCheckInAt     *time.Time
	LastLatitude      *float64
	LastLongitude     *float64
	Documents         []Document
	RefusalCount      int
	AdmittedAt        time.Time
	UpdatedAt         time.Time
}

// IsAuthorizedFor reports whether r is in the guard's authorized region set.
func (g *Guard) IsAuthorizedFor(r region.Region) bool {
	return region.Contains(g.AuthorizedRegions, r)
}

func (g *Guard) IsActive() bool {
	return g.Status == StatusActive
}

func (g *Guard) HasExpiredDocument() bool {
	for _, d := range g.Documents {
		if d.Status == DocumentExpired {
			return true
		}
	}
	return false
}

// RefreshDocuments reclassifies every document against now and returns the
// kinds that moved to EXPIRED.
func (g *Guard) RefreshDocuments(now time.Time) []DocumentKind {
	expired := []DocumentKind{}
	for i := range g.Documents {
		status := g.Documents[i].StatusAt(now)
		if status == DocumentExpired && g.Documents[i].Status != DocumentExpired {
			expired = append(expired, g.Documents[i].Kind)
		}
		g.Documents[i].Status = status
	}
	return expired
}

// Clone returns a deep copy so snapshots never alias store state.
func (g Guard) Clone() Guard {
	out := g
	out.AuthorizedRegions = append([]region.Region(nil), g.AuthorizedRegions...)
	out.Documents = append([]Document(nil), g.Documents...)
	if g.CurrentPostID != nil {
		id := *g.CurrentPostID
		out.CurrentPostID = &id
	}
	if g.LastCheckInAt != nil {
		at := *g.LastCheckInAt
		out.LastCheckInAt = &at
	}
	if g.LastLatitude != nil {
		lat := *g.LastLatitude
		out.LastLatitude = &lat
	}
	if g.LastLongitude != nil {
		lng := *g.LastLongitude
		out.LastLongitude = &lng
	}
	return out
}
