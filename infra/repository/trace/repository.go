// Package trace is the PostgreSQL implementation of the sale trace
// repository. Statistics run as SQL aggregates; specification queries load
// the property's traces and run through the in-memory evaluator.
package trace

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/diegorozoc/million/infra/repository/model"
	propertydomain "github.com/diegorozoc/million/pkg/domain/property"
	"github.com/diegorozoc/million/pkg/money"
	"github.com/diegorozoc/million/pkg/repository"
	"github.com/diegorozoc/million/pkg/specification"
)

type repo struct {
	db *gorm.DB
}

// New creates the PostgreSQL trace repository.
func New(db *gorm.DB) repository.TraceRepository {
	return &repo{db: db}
}

func (r *repo) GetByID(ctx context.Context, id uuid.UUID) (*propertydomain.Trace, error) {
	var m model.PropertyTrace
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toDomain(&m)
}

func (r *repo) Find(
	ctx context.Context, spec specification.Specification[*propertydomain.Trace],
) ([]*propertydomain.Trace, error) {
	var models []model.PropertyTrace
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, err
	}
	traces := make([]*propertydomain.Trace, 0, len(models))
	for i := range models {
		tr, err := toDomain(&models[i])
		if err != nil {
			return nil, err
		}
		traces = append(traces, tr)
	}
	return specification.Evaluate(traces, spec), nil
}

func (r *repo) FindOne(
	ctx context.Context, spec specification.Specification[*propertydomain.Trace],
) (*propertydomain.Trace, error) {
	matches, err := r.Find(ctx, spec)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, repository.ErrNotFound
	}
	return matches[0], nil
}

func (r *repo) Save(ctx context.Context, tr *propertydomain.Trace) error {
	m := toModel(tr)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.PropertyTrace{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *repo) DeleteByProperty(ctx context.Context, propertyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&model.PropertyTrace{}, "property_id = ?", propertyID).Error
}

func (r *repo) HasTraces(ctx context.Context, propertyID uuid.UUID) (bool, error) {
	count, err := r.CountByProperty(ctx, propertyID)
	return count > 0, err
}

func (r *repo) CountByProperty(ctx context.Context, propertyID uuid.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PropertyTrace{}).
		Where("property_id = ?", propertyID).Count(&count).Error
	return int(count), err
}

func (r *repo) AverageValueByProperty(ctx context.Context, propertyID uuid.UUID) (float64, error) {
	var row struct {
		Avg      *float64
		Currency *string
	}
	err := r.db.WithContext(ctx).Model(&model.PropertyTrace{}).
		Where("property_id = ?", propertyID).
		Select("AVG(value_amount) AS avg, MIN(value_currency) AS currency").
		Scan(&row).Error
	if err != nil || row.Avg == nil || row.Currency == nil {
		return 0, err
	}
	// The average is in the smallest currency unit; convert through Money so
	// the minor unit scale of the currency applies.
	value, err := money.NewFromSmallestUnit(int64(*row.Avg), *row.Currency)
	if err != nil {
		return 0, err
	}
	return value.AmountFloat(), nil
}

func toDomain(m *model.PropertyTrace) (*propertydomain.Trace, error) {
	value, err := money.NewFromSmallestUnit(m.ValueAmount, m.ValueCurrency)
	if err != nil {
		return nil, fmt.Errorf("hydrating trace %s: %w", m.ID, err)
	}
	taxAmount, err := money.NewFromSmallestUnit(m.TaxAmount, m.ValueCurrency)
	if err != nil {
		return nil, fmt.Errorf("hydrating trace %s: %w", m.ID, err)
	}
	return propertydomain.HydrateTrace(
		m.ID, m.PropertyID, m.DateSale, value, m.TaxPercentage, taxAmount, m.CreatedAt), nil
}

func toModel(tr *propertydomain.Trace) model.PropertyTrace {
	return model.PropertyTrace{
		ID:            tr.ID,
		PropertyID:    tr.PropertyID,
		DateSale:      tr.DateSale,
		ValueAmount:   tr.Value.Amount(),
		ValueCurrency: tr.Value.CurrencyCode().String(),
		TaxPercentage: tr.TaxPercentage,
		TaxAmount:     tr.TaxAmount.Amount(),
		CreatedAt:     tr.CreatedAt,
	}
}
