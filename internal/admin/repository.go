package admin

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/mazelpouch-tech/callanannycare-v2-sub001/internal/db"
)

var ErrAdminNotFound = errors.New("admin not found")

const adminColumns = `id, name, email, password_hash, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) Create(ctx context.Context, name, email, passwordHash string) (*Admin, error) {
	query := `
		INSERT INTO admins (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + adminColumns

	var a Admin
	if err := r.db.GetContext(ctx, &a, query, name, email, passwordHash); err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	var a Admin
	if err := r.db.GetContext(ctx, &a, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	var a Admin
	if err := r.db.GetContext(ctx, &a, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `SELECT EXISTS(SELECT 1 FROM admins WHERE email = $1)`, email)
}
