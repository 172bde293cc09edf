package property

import (
	"fmt"

	"github.com/diegorozoc/million/pkg/domain/owner"
)

// OwnershipService enforces the rules governing who may hold a property and
// keeps both sides of the property/owner relationship in step.
type OwnershipService struct{}

// NewOwnershipService builds an OwnershipService.
func NewOwnershipService() *OwnershipService {
	return &OwnershipService{}
}

// ValidateOwnerCanAcquireProperty checks adulthood first, then the ownership
// cap. Rejections are advisory results for the caller to present.
func (s *OwnershipService) ValidateOwnerCanAcquireProperty(o *owner.Owner) ValidationResult {
	if !o.IsAdult() {
		return InvalidResult(fmt.Sprintf(
			"owner %q must be at least 18 years old to own property", o.Name))
	}
	if !o.CanOwnMoreProperties() {
		return InvalidResult(fmt.Sprintf(
			"owner %q has reached the maximum number of properties they can own", o.Name))
	}
	return ValidResult()
}

// AssignPropertyToOwner re-validates the ownership rules and, on success, sets
// the property's owner reference and links the property id to the owner. Both
// sides change together; on failure neither does.
//
// The re-validation failing here is escalated as a hard error: callers must
// not treat an earlier successful check as a guarantee.
func (s *OwnershipService) AssignPropertyToOwner(p *Property, o *owner.Owner) error {
	if p == nil {
		return ErrPropertyIDEmpty
	}
	if o == nil {
		return ErrNilOwner
	}
	if result := s.ValidateOwnerCanAcquireProperty(o); !result.IsValid() {
		return fmt.Errorf("%w: %s", ErrOwnershipRuleViolated, result.Reason())
	}
	if err := p.SetOwner(o); err != nil {
		return err
	}
	return o.AddProperty(p.ID)
}
