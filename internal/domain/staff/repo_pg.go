package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibox/medibox/pkg/pagination"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepositoryPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, st *Staff) error {
	if st.ID == uuid.Nil {
		st.ID = uuid.New()
	}

	query := `
		INSERT INTO staff (id, name, username, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, st.ID, st.Name, st.Username, st.Role).Scan(&st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

func (r *repoPG) GetByUsername(ctx context.Context, username string) (*Staff, error) {
	var st Staff
	query := `SELECT id, name, username, role, created_at, updated_at FROM staff WHERE username = $1`
	err := r.pool.QueryRow(ctx, query, username).Scan(&st.ID, &st.Name, &st.Username, &st.Role, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}
	return &st, nil
}

func (r *repoPG) List(ctx context.Context, p pagination.Params) ([]Staff, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	query := `SELECT id, name, username, role, created_at, updated_at FROM staff ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	members := []Staff{}
	for rows.Next() {
		var st Staff
		if err := rows.Scan(&st.ID, &st.Name, &st.Username, &st.Role, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan staff: %w", err)
		}
		members = append(members, st)
	}
	return members, total, rows.Err()
}
