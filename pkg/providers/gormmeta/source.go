package gormmeta

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/goliatone/go-formbuilder/pkg/model"
)

// Source loads association choices from the database. Label and value
// columns default to name and id; association metadata or per-call options
// override them.
type Source struct {
	db *gorm.DB
}

var _ model.RecordSource = (*Source)(nil)

// NewSource wraps an open gorm handle.
func NewSource(db *gorm.DB) *Source {
	return &Source{db: db}
}

// Records implements model.RecordSource.
func (s *Source) Records(ctx context.Context, assoc model.Association) ([]model.Choice, error) {
	if s.db == nil {
		return nil, fmt.Errorf("gormmeta: nil database handle")
	}

	labelColumn := assoc.LabelMethod
	if labelColumn == "" {
		labelColumn = "name"
	}
	valueColumn := assoc.ValueMethod
	if valueColumn == "" {
		valueColumn = "id"
	}

	query := s.db.WithContext(ctx).
		Table(assoc.Target).
		Select(fmt.Sprintf("%s AS value, %s AS label", valueColumn, labelColumn))

	for column, expected := range assoc.Conditions {
		query = query.Where(map[string]any{column: expected})
	}
	if assoc.OrderBy != "" {
		query = query.Order(assoc.OrderBy)
	} else {
		query = query.Order(labelColumn)
	}

	var rows []struct {
		Label string
		Value string
	}
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("gormmeta: load %s records: %w", assoc.Target, err)
	}

	choices := make([]model.Choice, 0, len(rows))
	for _, row := range rows {
		choices = append(choices, model.Choice{Label: row.Label, Value: row.Value})
	}
	return choices, nil
}
