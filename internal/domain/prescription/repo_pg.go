package prescription

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibox/medibox/pkg/pagination"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepositoryPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const prescriptionColumns = `id, rfid_tag, paracetamol, azithromycin, revital, frequency, duration, status, last_dispensed, created_at, updated_at`

func scanPrescription(row pgx.Row, p *Prescription) error {
	return row.Scan(&p.ID, &p.RFIDTag, &p.Paracetamol, &p.Azithromycin, &p.Revital,
		&p.Frequency, &p.Duration, &p.Status, &p.LastDispensed, &p.CreatedAt, &p.UpdatedAt)
}

func (r *repoPG) Create(ctx context.Context, p *Prescription) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query := `
		INSERT INTO prescription (id, rfid_tag, paracetamol, azithromycin, revital, frequency, duration, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.RFIDTag, p.Paracetamol, p.Azithromycin, p.Revital, p.Frequency, p.Duration, p.Status,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *repoPG) LatestPending(ctx context.Context, tag string) (*Prescription, error) {
	query := `
		SELECT ` + prescriptionColumns + `
		FROM prescription
		WHERE rfid_tag = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1`

	var p Prescription
	if err := scanPrescription(r.pool.QueryRow(ctx, query, tag, StatusPending), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoActive
		}
		return nil, fmt.Errorf("failed to get pending prescription: %w", err)
	}
	return &p, nil
}

func (r *repoPG) List(ctx context.Context, status Status, pg pagination.Params) ([]Prescription, int, error) {
	where := ""
	countArgs := []any{}
	listArgs := []any{pg.Limit, pg.Offset}
	if status != "" {
		where = ` WHERE status = $1`
		countArgs = append(countArgs, status)
		listArgs = []any{status, pg.Limit, pg.Offset}
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM prescription`+where, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count prescriptions: %w", err)
	}

	query := `SELECT ` + prescriptionColumns + ` FROM prescription` + where + ` ORDER BY created_at DESC`
	if status != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}

	rows, err := r.pool.Query(ctx, query, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list prescriptions: %w", err)
	}
	defer rows.Close()

	prescriptions := []Prescription{}
	for rows.Next() {
		var p Prescription
		if err := scanPrescription(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("failed to scan prescription: %w", err)
		}
		prescriptions = append(prescriptions, p)
	}
	return prescriptions, total, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, p *Prescription) error {
	query := `
		UPDATE prescription
		SET status = $2, last_dispensed = $3, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	if err := r.pool.QueryRow(ctx, query, p.ID, p.Status, p.LastDispensed).Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNoActive
		}
		return fmt.Errorf("failed to update prescription: %w", err)
	}
	return nil
}
