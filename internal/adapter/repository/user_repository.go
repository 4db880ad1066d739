package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/domain/user"
	"github.com/arumugam1010/sri-Devi-snacks-sub000/internal/infrastructure/database"
)

// UserRepository implements user.Repository on PostgreSQL.
type UserRepository struct {
	db *database.PostgresDB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *database.PostgresDB) user.Repository {
	return &UserRepository{db: db}
}

// Create implements user.Repository.Create.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	q := r.db.Querier(ctx)

	err := q.QueryRow(ctx,
		`INSERT INTO users (name, phone, role, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		u.Name, u.Phone, u.Role, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByID implements user.Repository.FindByID.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	q := r.db.Querier(ctx)

	var u user.User
	err := q.QueryRow(ctx,
		`SELECT id, name, phone, role, created_at FROM users WHERE id = $1`,
		id).Scan(&u.ID, &u.Name, &u.Phone, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

// FindAll implements user.Repository.FindAll.
func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	q := r.db.Querier(ctx)

	rows, err := q.Query(ctx, `SELECT id, name, phone, role, created_at FROM users ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Phone, &u.Role, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// Exists implements user.Repository.Exists.
func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	q := r.db.Querier(ctx)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return exists, nil
}
