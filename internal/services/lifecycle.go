package services

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/utils"
)

// FileUpload is one named multipart part handed down from the intake handler.
// Ext keeps the original extension (with dot); the stored name is a fresh UUID.
type FileUpload struct {
	Field  string
	Ext    string
	Reader io.Reader
}

// Lifecycle is the review surface every record type shares: list, fetch,
// approve/reject, full-row update and hard delete.
type Lifecycle[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Approve(ctx context.Context, id string) (*T, error)
	Reject(ctx context.Context, id string) (*T, error)
	// Update persists a row the caller already merged (replace semantics).
	Update(ctx context.Context, row *T) error
	// Delete reports false when the id was already gone. Uploaded files are
	// intentionally left on disk.
	Delete(ctx context.Context, id string) (bool, error)
}

// lifecycle implements Lifecycle once for all three entities; the entity name
// feeds operation labels and not-found messages ("Agency not found").
type lifecycle[T any] struct {
	repo   pgrepo.RecordRepository[T]
	entity string
}

func newLifecycle[T any](repo pgrepo.RecordRepository[T], entity string) lifecycle[T] {
	return lifecycle[T]{repo: repo, entity: entity}
}

func (s *lifecycle[T]) List(ctx context.Context) ([]T, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, s.entity+"Service.List", "failed to list records", err)
	}
	return rows, nil
}

func (s *lifecycle[T]) Get(ctx context.Context, id string) (*T, error) {
	op := s.entity + "Service.Get"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	row, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, s.entity+" not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get record", err)
	}
	return row, nil
}

func (s *lifecycle[T]) Approve(ctx context.Context, id string) (*T, error) {
	return s.setStatus(ctx, id, models.StatusApproved, "Approve")
}

func (s *lifecycle[T]) Reject(ctx context.Context, id string) (*T, error) {
	return s.setStatus(ctx, id, models.StatusRejected, "Reject")
}

// setStatus writes the target status unconditionally. There is no transition
// table: approving an approved record, or rejecting it afterwards, is allowed
// and last write wins.
func (s *lifecycle[T]) setStatus(ctx context.Context, id string, st models.Status, opSuffix string) (*T, error) {
	op := s.entity + "Service." + opSuffix

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	err := s.repo.UpdateFields(ctx, id, map[string]any{
		"status":     st,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, s.entity+" not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update status", err)
	}
	return s.Get(ctx, id)
}

func (s *lifecycle[T]) Update(ctx context.Context, row *T) error {
	op := s.entity + "Service.Update"

	if row == nil {
		return utils.E(utils.CodeInvalidArgument, op, "record is required", nil)
	}
	if err := s.repo.Save(ctx, row); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save record", err)
	}
	return nil
}

func (s *lifecycle[T]) Delete(ctx context.Context, id string) (bool, error) {
	op := s.entity + "Service.Delete"

	if id == "" {
		return false, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, utils.E(utils.CodeInternal, op, "failed to delete record", err)
	}
	return removed, nil
}

// setVerified backs the verify action on employers and agencies. Verified is
// independent of status.
func (s *lifecycle[T]) setVerified(ctx context.Context, id string) (*T, error) {
	op := s.entity + "Service.Verify"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	err := s.repo.UpdateFields(ctx, id, map[string]any{
		"verified":   true,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, s.entity+" not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to update record", err)
	}
	return s.Get(ctx, id)
}
