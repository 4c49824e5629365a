package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/receptionist-dashboard/internal/model"
	"github.com/jwalitptl/receptionist-dashboard/internal/repository"
	apperrors "github.com/jwalitptl/receptionist-dashboard/pkg/errors"
)

type callRepository struct {
	db *sqlx.DB
}

func NewCallRepository(db *sqlx.DB) repository.CallRepository {
	return &callRepository{db: db}
}

const callColumns = `
	id, "when", name, direction, reason, status, duration_sec,
	age, appt_date, clinic_id, insurance, phone, email, recording_url, note
`

func (r *callRepository) List(ctx context.Context) ([]*model.Call, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM calls
		ORDER BY id DESC
	`, callColumns)

	var calls []*model.Call
	if err := r.db.SelectContext(ctx, &calls, query); err != nil {
		return nil, fmt.Errorf("failed to list calls: %w", err)
	}
	return calls, nil
}

func (r *callRepository) Get(ctx context.Context, id int64) (*model.Call, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM calls
		WHERE id = $1
	`, callColumns)

	var call model.Call
	if err := r.db.GetContext(ctx, &call, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("call", err)
		}
		return nil, fmt.Errorf("failed to get call: %w", err)
	}
	return &call, nil
}
