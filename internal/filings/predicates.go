// Package filings classifies filing records. Everything here is a pure
// predicate: no I/O, no mutation.
package filings

import (
	"time"

	"github.com/filingdesk/pkg/models"
)

// IsFilingType reports whether the filing matches the given subtype (when
// provided) or the given type name (when provided). The two optional filters
// are OR'd; with both absent nothing matches.
func IsFilingType(f models.Filing, filingType, subType string) bool {
	switch {
	case subType != "" && f.FilingSubType == subType:
		return true
	case filingType != "" && f.Name == filingType:
		return true
	}
	return false
}

// IsStaffFiling reports whether the filing is a type normally only created
// by internal registry staff.
func IsStaffFiling(f models.Filing) bool {
	return IsFilingType(f, models.FilingTypeAdminFreeze, "") ||
		IsFilingType(f, "", models.SubTypeDissolutionAdministrative) ||
		IsFilingType(f, models.FilingTypePutBackOn, "") ||
		IsFilingType(f, models.FilingTypeRegistrarsNotation, "") ||
		IsFilingType(f, models.FilingTypeRegistrarsOrder, "")
}

// IsCourtOrderType reports whether the filing is a court order.
func IsCourtOrderType(f models.Filing) bool {
	return f.Name == models.FilingTypeCourtOrder
}

// IsDissolutionType reports whether the state filing's dissolution detail
// matches the given subtype. Fails closed when the detail is absent.
func IsDissolutionType(sf *models.StateFiling, subType string) bool {
	return sf != nil && sf.Dissolution != nil && sf.Dissolution.DissolutionType == subType
}

// IsRestorationType reports whether the state filing's restoration detail
// matches the given subtype. Fails closed when the detail is absent.
func IsRestorationType(sf *models.StateFiling, subType string) bool {
	return sf != nil && sf.Restoration != nil && sf.Restoration.Type == subType
}

// IsFilingStatus reports whether the filing has the given status.
func IsFilingStatus(f models.Filing, status models.FilingStatus) bool {
	return f.Status == status
}

// IsFutureEffectiveAndPaid reports whether the filing is paid and flagged
// future effective, regardless of its effective date.
func IsFutureEffectiveAndPaid(f models.Filing) bool {
	return IsFilingStatus(f, models.StatusPaid) && f.IsFutureEffective
}

// IsFutureEffectivePending reports whether a paid future-effective filing is
// overdue: its effective date has passed but it has not been processed yet.
func IsFutureEffectivePending(f models.Filing) bool {
	return IsFutureEffectiveAndPaid(f) &&
		f.EffectiveDate != nil &&
		f.EffectiveDate.Before(time.Now())
}

// IsFutureEffective reports whether a paid future-effective filing is still
// scheduled for a later date. An effective date of exactly now satisfies
// neither this nor IsFutureEffectivePending.
func IsFutureEffective(f models.Filing) bool {
	return IsFutureEffectiveAndPaid(f) &&
		f.EffectiveDate != nil &&
		f.EffectiveDate.After(time.Now())
}
