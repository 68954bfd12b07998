package nanny

import "context"

type Repository interface {
	Create(ctx context.Context, name, email, phone, locale string) (*Nanny, error)
	GetByID(ctx context.Context, id int64) (*Nanny, error)
	List(ctx context.Context, onlyActive bool) ([]Nanny, error)
	SetActive(ctx context.Context, id int64, active bool) error
}
