package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/anapiyani/Checkdaily-backend/internal/days"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// MutateFunc computes the day-row changes for a check loaded under a row
// lock. It may mutate the check's name and count in place.
type MutateFunc func(check *dom.Check, statuses []dom.DayStatus) (days.Plan, error)

// CheckRepo provides check and day-status persistence. All lookups are
// scoped by user id; a check owned by someone else surfaces as
// pgx.ErrNoRows, never as a distinct "forbidden".
type CheckRepo interface {
	Create(ctx context.Context, check dom.Check, statuses []dom.DayStatus) error
	GetWithDays(ctx context.Context, userID int64, id string) (dom.Check, []dom.DayStatus, error)
	ListWithDays(ctx context.Context, userID int64) ([]dom.Check, map[string][]dom.DayStatus, error)
	Mutate(ctx context.Context, userID int64, id string, fn MutateFunc) (dom.Check, []dom.DayStatus, error)
	Delete(ctx context.Context, userID int64, id string) error
	CheckedBetween(ctx context.Context, userID int64, from, to time.Time) ([]dom.DayStatus, error)
}

// PGCheckRepo implements CheckRepo with Postgres.
type PGCheckRepo struct {
	db *pgxpool.Pool
}

// NewPGCheckRepo returns a new PGCheckRepo.
func NewPGCheckRepo(db *pgxpool.Pool) *PGCheckRepo {
	return &PGCheckRepo{db: db}
}

// Create inserts the check and its initial day rows in one transaction.
func (r *PGCheckRepo) Create(ctx context.Context, check dom.Check, statuses []dom.DayStatus) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO checks (id, user_id, name, count, created_at) VALUES ($1, $2, $3, $4, $5)`,
		check.ID, check.UserID, check.Name, check.Count, check.CreatedAt,
	)
	if err != nil {
		return err
	}
	if err := insertDayStatuses(ctx, tx, statuses); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// GetWithDays returns the user's check and its day rows ordered by date.
func (r *PGCheckRepo) GetWithDays(ctx context.Context, userID int64, id string) (dom.Check, []dom.DayStatus, error) {
	check, err := scanCheck(r.db.QueryRow(ctx,
		`SELECT id, user_id, name, count, created_at FROM checks WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
	if err != nil {
		return dom.Check{}, nil, err
	}
	statuses, err := r.loadDayStatuses(ctx, r.db, id)
	if err != nil {
		return dom.Check{}, nil, err
	}
	return check, statuses, nil
}

// ListWithDays returns all of the user's checks and their day rows keyed by
// check id.
func (r *PGCheckRepo) ListWithDays(ctx context.Context, userID int64) ([]dom.Check, map[string][]dom.DayStatus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, count, created_at FROM checks WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var checks []dom.Check
	for rows.Next() {
		c, err := scanCheck(rows)
		if err != nil {
			return nil, nil, err
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	byCheck := make(map[string][]dom.DayStatus, len(checks))
	dsRows, err := r.db.Query(ctx, `
		SELECT d.id, d.check_id, d.date, d.is_checked, d.checked_at
		FROM day_statuses d
		JOIN checks c ON c.id = d.check_id
		WHERE c.user_id = $1
		ORDER BY d.date`,
		userID,
	)
	if err != nil {
		return nil, nil, err
	}
	defer dsRows.Close()
	for dsRows.Next() {
		var ds dom.DayStatus
		if err := dsRows.Scan(&ds.ID, &ds.CheckID, &ds.Date, &ds.IsChecked, &ds.CheckedAt); err != nil {
			return nil, nil, err
		}
		byCheck[ds.CheckID] = append(byCheck[ds.CheckID], ds)
	}
	if err := dsRows.Err(); err != nil {
		return nil, nil, err
	}
	return checks, byCheck, nil
}

// Mutate runs fn against the check and its day rows inside one transaction,
// holding a row lock on the check so that concurrent mutations of the same
// check serialize. This is what keeps two concurrent check-today calls from
// both inserting a row for the same date.
func (r *PGCheckRepo) Mutate(ctx context.Context, userID int64, id string, fn MutateFunc) (dom.Check, []dom.DayStatus, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return dom.Check{}, nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	check, err := scanCheck(tx.QueryRow(ctx,
		`SELECT id, user_id, name, count, created_at FROM checks WHERE id = $1 AND user_id = $2 FOR UPDATE`,
		id, userID,
	))
	if err != nil {
		return dom.Check{}, nil, err
	}
	statuses, err := r.loadDayStatuses(ctx, tx, id)
	if err != nil {
		return dom.Check{}, nil, err
	}

	plan, err := fn(&check, statuses)
	if err != nil {
		return dom.Check{}, nil, err
	}

	if err := insertDayStatuses(ctx, tx, plan.Created); err != nil {
		return dom.Check{}, nil, err
	}
	for _, ds := range plan.Updated {
		_, err := tx.Exec(ctx,
			`UPDATE day_statuses SET is_checked = $2, checked_at = $3 WHERE id = $1`,
			ds.ID, ds.IsChecked, ds.CheckedAt,
		)
		if err != nil {
			return dom.Check{}, nil, err
		}
	}
	if len(plan.DeletedIDs) > 0 {
		_, err := tx.Exec(ctx, `DELETE FROM day_statuses WHERE id = ANY($1)`, plan.DeletedIDs)
		if err != nil {
			return dom.Check{}, nil, err
		}
	}
	_, err = tx.Exec(ctx,
		`UPDATE checks SET name = $2, count = $3 WHERE id = $1`,
		check.ID, check.Name, check.Count,
	)
	if err != nil {
		return dom.Check{}, nil, err
	}

	statuses, err = r.loadDayStatuses(ctx, tx, id)
	if err != nil {
		return dom.Check{}, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return dom.Check{}, nil, err
	}
	return check, statuses, nil
}

// Delete removes the user's check; day rows go with it via the FK cascade.
func (r *PGCheckRepo) Delete(ctx context.Context, userID int64, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM checks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// CheckedBetween returns all checked day rows for the user in [from, to).
func (r *PGCheckRepo) CheckedBetween(ctx context.Context, userID int64, from, to time.Time) ([]dom.DayStatus, error) {
	rows, err := r.db.Query(ctx, `
		SELECT d.id, d.check_id, d.date, d.is_checked, d.checked_at
		FROM day_statuses d
		JOIN checks c ON c.id = d.check_id
		WHERE c.user_id = $1 AND d.is_checked = TRUE AND d.date >= $2 AND d.date < $3
		ORDER BY d.date`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []dom.DayStatus
	for rows.Next() {
		var ds dom.DayStatus
		if err := rows.Scan(&ds.ID, &ds.CheckID, &ds.Date, &ds.IsChecked, &ds.CheckedAt); err != nil {
			return nil, err
		}
		list = append(list, ds)
	}
	return list, rows.Err()
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PGCheckRepo) loadDayStatuses(ctx context.Context, q querier, checkID string) ([]dom.DayStatus, error) {
	rows, err := q.Query(ctx,
		`SELECT id, check_id, date, is_checked, checked_at FROM day_statuses WHERE check_id = $1 ORDER BY date`,
		checkID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []dom.DayStatus
	for rows.Next() {
		var ds dom.DayStatus
		if err := rows.Scan(&ds.ID, &ds.CheckID, &ds.Date, &ds.IsChecked, &ds.CheckedAt); err != nil {
			return nil, err
		}
		list = append(list, ds)
	}
	return list, rows.Err()
}

func insertDayStatuses(ctx context.Context, tx pgx.Tx, statuses []dom.DayStatus) error {
	for _, ds := range statuses {
		_, err := tx.Exec(ctx,
			`INSERT INTO day_statuses (id, check_id, date, is_checked, checked_at) VALUES ($1, $2, $3, $4, $5)`,
			ds.ID, ds.CheckID, ds.Date, ds.IsChecked, ds.CheckedAt,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanCheck(row pgx.Row) (dom.Check, error) {
	var c dom.Check
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Count, &c.CreatedAt)
	return c, err
}
