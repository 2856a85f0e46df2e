package postgres

import (
	"context"
	"errors"

	"github.com/selamstaff/backend/internal/models"
	"github.com/selamstaff/backend/internal/utils"
	"gorm.io/gorm"
)

// RecordRepository is the shared lifecycle store for candidate, employer and
// agency rows. The three tables are structurally parallel (uuid id, status,
// created_at), so the repository is written once and instantiated per model.
type RecordRepository[T any] interface {
	Insert(ctx context.Context, row *T) error
	// List returns every row ordered by creation time descending.
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	// UpdateFields applies a column map to one row; utils.ErrNotFound when the
	// id does not exist.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// Save writes the full row back (replace semantics for partial updates).
	Save(ctx context.Context, row *T) error
	// Delete hard-deletes the row and reports whether one was actually removed.
	Delete(ctx context.Context, id string) (bool, error)
	CountByStatus(ctx context.Context) (map[models.Status]int64, error)
}

type recordRepo[T any] struct {
	db *gorm.DB
}

func NewRecordRepo[T any](db *gorm.DB) RecordRepository[T] {
	return &recordRepo[T]{db: db}
}

func (r *recordRepo[T]) Insert(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *recordRepo[T]) List(ctx context.Context) ([]T, error) {
	rows := []T{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *recordRepo[T]) Get(ctx context.Context, id string) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *recordRepo[T]) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(new(T)).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *recordRepo[T]) Save(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *recordRepo[T]) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(new(T))
	return res.RowsAffected > 0, res.Error
}

func (r *recordRepo[T]) CountByStatus(ctx context.Context) (map[models.Status]int64, error) {
	var rows []struct {
		Status models.Status
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Select("status, count(*) as n").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[models.Status]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}
