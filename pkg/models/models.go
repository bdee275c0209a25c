package models

import (
	"time"
)

// FilingStatus is the lifecycle state of a filing as reported by the registry API.
type FilingStatus string

const (
	StatusCompleted FilingStatus = "COMPLETED"
	StatusCorrected FilingStatus = "CORRECTED"
	StatusDraft     FilingStatus = "DRAFT"
	StatusError     FilingStatus = "ERROR"
	StatusNew       FilingStatus = "NEW"
	StatusPaid      FilingStatus = "PAID"
	StatusPending   FilingStatus = "PENDING"
	StatusWithdrawn FilingStatus = "WITHDRAWN"
)

// Filing type names as they appear on the wire
const (
	FilingTypeAdminFreeze        = "adminFreeze"
	FilingTypeCourtOrder         = "courtOrder"
	FilingTypeDissolution        = "dissolution"
	FilingTypePutBackOn          = "putBackOn"
	FilingTypeRegistrarsNotation = "registrarsNotation"
	FilingTypeRegistrarsOrder    = "registrarsOrder"
	FilingTypeRestoration        = "restoration"
)

// Filing subtype values
const (
	SubTypeDissolutionAdministrative = "administrative"
	SubTypeDissolutionInvoluntary    = "involuntary"
	SubTypeDissolutionVoluntary      = "voluntary"
	SubTypeFullRestoration           = "fullRestoration"
	SubTypeLimitedRestoration        = "limitedRestoration"
)

// Filing represents one regulatory filing against a business entity.
type Filing struct {
	ID                 int64        `json:"filingId"`
	BusinessIdentifier string       `json:"businessIdentifier"`
	Name               string       `json:"name"`
	DisplayName        string       `json:"displayName,omitempty"`
	FilingSubType      string       `json:"filingSubType,omitempty"`
	Status             FilingStatus `json:"status"`
	EffectiveDate      *time.Time   `json:"effectiveDate,omitempty"`
	SubmittedDate      *time.Time   `json:"submittedDate,omitempty"`
	Submitter          string       `json:"submitter,omitempty"`
	IsFutureEffective  bool         `json:"isFutureEffective"`
	Comments           []Comment    `json:"comments,omitempty"`
	CommentsCount      int          `json:"commentsCount"`
	CommentsLink       string       `json:"commentsLink,omitempty"`
	DocumentsLink      string       `json:"documentsLink,omitempty"`
}

// FilingEnvelope is the {"filing": {...}} wrapper returned by the filing endpoint.
type FilingEnvelope struct {
	Filing Filing `json:"filing"`
}

// Comment is one user comment on a filing.
type Comment struct {
	ID                   int64     `json:"id,omitempty"`
	Comment              string    `json:"comment"`
	FilingID             int64     `json:"filingId"`
	SubmitterDisplayName string    `json:"submitterDisplayName,omitempty"`
	Timestamp            time.Time `json:"timestamp"`
}

// CommentEnvelope is the {"comment": {...}} wrapper the comments API puts
// around each entry. It must be unwrapped before storage.
type CommentEnvelope struct {
	Comment Comment `json:"comment"`
}

// StateFiling is the narrower view of a filing's dissolution or restoration
// details used by the classification predicates.
type StateFiling struct {
	Dissolution *Dissolution `json:"dissolution,omitempty"`
	Restoration *Restoration `json:"restoration,omitempty"`
}

// Dissolution holds the dissolution sub-detail of a state filing.
type Dissolution struct {
	DissolutionType string `json:"dissolutionType"`
}

// Restoration holds the restoration sub-detail of a state filing.
type Restoration struct {
	Type string `json:"type"`
}

// Document is one output document attached to a filing.
type Document struct {
	Title    string `json:"title"`
	Filename string `json:"filename"`
	Link     string `json:"link"`
}

// DocumentList groups a filing's documents by category, mirroring the
// {"documents": {...}} wire shape.
type DocumentList map[string][]Document
