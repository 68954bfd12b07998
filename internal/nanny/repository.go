package nanny

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrNannyNotFound = errors.New("nanny not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, name, email, phone, locale string) (*Nanny, error) {
	query := `
		INSERT INTO nannies (name, email, phone, locale)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, phone, locale, active, created_at
	`

	var n Nanny
	err := r.db.GetContext(ctx, &n, query, name, email, phone, locale)
	if err != nil {
		return nil, err
	}

	return &n, nil
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Nanny, error) {
	query := `
		SELECT id, name, email, phone, locale, active, created_at
		FROM nannies
		WHERE id = $1
	`

	var n Nanny
	err := r.db.GetContext(ctx, &n, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNannyNotFound
		}
		return nil, err
	}

	return &n, nil
}

func (r *repository) List(ctx context.Context, onlyActive bool) ([]Nanny, error) {
	query := `
		SELECT id, name, email, phone, locale, active, created_at
		FROM nannies
	`
	if onlyActive {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	var nannies []Nanny
	err := r.db.SelectContext(ctx, &nannies, query)
	if err != nil {
		return nil, err
	}

	return nannies, nil
}

func (r *repository) SetActive(ctx context.Context, id int64, active bool) error {
	result, err := r.db.ExecContext(ctx, `UPDATE nannies SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNannyNotFound
	}

	return nil
}
