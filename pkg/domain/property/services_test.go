package property_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/diegorozoc/million/pkg/domain/owner"
	"github.com/diegorozoc/million/pkg/domain/property"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubCodeChecker records lookups so tests can assert short-circuiting.
type stubCodeChecker struct {
	exists bool
	err    error
	calls  []string
}

func (s *stubCodeChecker) CodeInternalExists(_ context.Context, codeInternal string) (bool, error) {
	s.calls = append(s.calls, codeInternal)
	return s.exists, s.err
}

func TestValidateCodeInternalUniqueness(t *testing.T) {
	t.Parallel()

	t.Run("blank code rejected without lookup", func(t *testing.T) {
		t.Parallel()
		checker := &stubCodeChecker{}
		svc := property.NewValidationService(checker)

		result, err := svc.ValidateCodeInternalUniqueness(context.Background(), "   ")
		require.NoError(t, err)
		assert.False(t, result.IsValid())
		assert.Contains(t, result.Reason(), "cannot be empty")
		assert.Empty(t, checker.calls)
	})

	t.Run("duplicate code rejected", func(t *testing.T) {
		t.Parallel()
		checker := &stubCodeChecker{exists: true}
		svc := property.NewValidationService(checker)

		result, err := svc.ValidateCodeInternalUniqueness(context.Background(), "PROP-001")
		require.NoError(t, err)
		assert.False(t, result.IsValid())
		assert.Contains(t, result.Reason(), "PROP-001")
	})

	t.Run("fresh code passes", func(t *testing.T) {
		t.Parallel()
		svc := property.NewValidationService(&stubCodeChecker{})

		result, err := svc.ValidateCodeInternalUniqueness(context.Background(), "PROP-001")
		require.NoError(t, err)
		assert.True(t, result.IsValid())
		assert.Empty(t, result.Reason())
	})

	t.Run("lookup failure is an error, not a rejection", func(t *testing.T) {
		t.Parallel()
		lookupErr := errors.New("connection refused")
		svc := property.NewValidationService(&stubCodeChecker{err: lookupErr})

		_, err := svc.ValidateCodeInternalUniqueness(context.Background(), "PROP-001")
		require.ErrorIs(t, err, lookupErr)
	})
}

func TestValidatePropertyForCreationShortCircuits(t *testing.T) {
	t.Parallel()
	currentYear := time.Now().Year()

	t.Run("name checked before year", func(t *testing.T) {
		t.Parallel()
		checker := &stubCodeChecker{}
		svc := property.NewValidationService(checker)

		result, err := svc.ValidatePropertyForCreation(context.Background(), "", "PROP-001", 1500)
		require.NoError(t, err)
		assert.False(t, result.IsValid())
		assert.Contains(t, result.Reason(), "name")
		assert.Empty(t, checker.calls)
	})

	t.Run("year checked before uniqueness", func(t *testing.T) {
		t.Parallel()
		checker := &stubCodeChecker{exists: true}
		svc := property.NewValidationService(checker)

		result, err := svc.ValidatePropertyForCreation(
			context.Background(), "Loft", "PROP-001", currentYear+1)
		require.NoError(t, err)
		assert.False(t, result.IsValid())
		assert.Contains(t, result.Reason(), "year")
		assert.Empty(t, checker.calls)
	})

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		checker := &stubCodeChecker{}
		svc := property.NewValidationService(checker)

		result, err := svc.ValidatePropertyForCreation(
			context.Background(), "Loft", "PROP-001", currentYear)
		require.NoError(t, err)
		assert.True(t, result.IsValid())
		assert.Equal(t, []string{"PROP-001"}, checker.calls)
	})
}

func TestValidateOwnerCanAcquireProperty(t *testing.T) {
	t.Parallel()
	svc := property.NewOwnershipService()

	t.Run("minor rejected before cap check", func(t *testing.T) {
		t.Parallel()
		minor := newTestOwner(t, 17)

		result := svc.ValidateOwnerCanAcquireProperty(minor)
		assert.False(t, result.IsValid())
		assert.Contains(t, result.Reason(), "18")
	})

	t.Run("exactly eighteen accepted", func(t *testing.T) {
		t.Parallel()
		adult := newTestOwner(t, 18)

		result := svc.ValidateOwnerCanAcquireProperty(adult)
		assert.True(t, result.IsValid())
	})

	t.Run("full owner rejected", func(t *testing.T) {
		t.Parallel()
		full := newTestOwner(t, 30)
		for i := 0; i < owner.MaxProperties; i++ {
			require.NoError(t, full.AddProperty(uuid.New()))
		}

		result := svc.ValidateOwnerCanAcquireProperty(full)
		assert.False(t, result.IsValid())
		assert.Contains(t, result.Reason(), "maximum number of properties")
	})
}

func TestAssignPropertyToOwner(t *testing.T) {
	t.Parallel()
	svc := property.NewOwnershipService()

	t.Run("links both sides on success", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestProperty(t)
		buyer := newTestOwner(t, 40)

		require.NoError(t, svc.AssignPropertyToOwner(p, buyer))
		assert.Equal(t, buyer.ID, p.OwnerID)
		assert.True(t, buyer.OwnsProperty(p.ID))
	})

	t.Run("full owner leaves both sides untouched", func(t *testing.T) {
		t.Parallel()
		p, seller := newTestProperty(t)
		full := newTestOwner(t, 30)
		for i := 0; i < owner.MaxProperties; i++ {
			require.NoError(t, full.AddProperty(uuid.New()))
		}

		err := svc.AssignPropertyToOwner(p, full)
		require.ErrorIs(t, err, property.ErrOwnershipRuleViolated)
		assert.Contains(t, err.Error(), "maximum number of properties")
		assert.Equal(t, owner.MaxProperties, full.PropertyCount())
		assert.Equal(t, seller.ID, p.OwnerID, "property keeps its current owner")
	})

	t.Run("minor rejected", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestProperty(t)
		minor := newTestOwner(t, 16)

		err := svc.AssignPropertyToOwner(p, minor)
		require.ErrorIs(t, err, property.ErrOwnershipRuleViolated)
		assert.False(t, minor.HasProperties())
	})

	t.Run("nil arguments rejected", func(t *testing.T) {
		t.Parallel()
		p, _ := newTestProperty(t)

		assert.ErrorIs(t, svc.AssignPropertyToOwner(nil, newTestOwner(t, 30)), property.ErrPropertyIDEmpty)
		assert.ErrorIs(t, svc.AssignPropertyToOwner(p, nil), property.ErrNilOwner)
	})
}
