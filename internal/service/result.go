package service

import (
	"context"
	"fmt"

	"resultsvc/internal/database"
	"resultsvc/internal/model"
)

const (
	listByDateQuery = `
		SELECT id,
		       COALESCE(date, '') AS date,
		       COALESCE(time, '') AS time,
		       COALESCE(coupon_name, '') AS coupon_name,
		       COALESCE(number, '') AS number
		FROM results
		WHERE date = ?
		ORDER BY time ASC
	`
	listAllQuery = `
		SELECT id,
		       COALESCE(date, '') AS date,
		       COALESCE(time, '') AS time,
		       COALESCE(coupon_name, '') AS coupon_name,
		       COALESCE(number, '') AS number
		FROM results
		ORDER BY date DESC, time ASC
	`
	insertQuery = `INSERT INTO results (date, time, coupon_name, number) VALUES (?, ?, ?, ?) RETURNING id`
	deleteQuery = `DELETE FROM results WHERE id = ?`
)

type ResultService struct {
	db *database.DB
}

func NewResultService(db *database.DB) *ResultService {
	return &ResultService{db: db}
}

// List returns results recorded on date ordered by time, or every result
// ordered by date descending then time when date is empty.
func (s *ResultService) List(ctx context.Context, date string) ([]model.Result, error) {
	query, args := listAllQuery, []any{}
	if date != "" {
		query, args = listByDateQuery, []any{date}
	}

	results := []model.Result{}
	if err := s.db.SelectContext(ctx, &results, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	return results, nil
}

// Create stores r and returns the assigned id. r.ID is ignored.
func (s *ResultService) Create(ctx context.Context, r model.Result) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.db.Rebind(insertQuery),
		r.Date, r.Time, r.CouponName, r.Number,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert result: %w", err)
	}
	return id, nil
}

// Delete removes the result with id. A missing id is not an error.
func (s *ResultService) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(deleteQuery), id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}
	return nil
}
