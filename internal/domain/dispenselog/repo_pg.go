package dispenselog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medibox/medibox/pkg/pagination"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepositoryPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Insert(ctx context.Context, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	var p, a, v *int
	if e.Medicines != nil {
		p, a, v = &e.Medicines.Paracetamol, &e.Medicines.Azithromycin, &e.Medicines.Revital
	}

	query := `
		INSERT INTO dispensing_log (id, rfid_tag, patient_name, paracetamol, azithromycin, revital, status, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`

	err := r.pool.QueryRow(ctx, query,
		e.ID, e.RFIDTag, e.PatientName, p, a, v, e.Status, e.ErrorMessage,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert dispensing log: %w", err)
	}
	return nil
}

func (r *repoPG) List(ctx context.Context, p pagination.Params) ([]Entry, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM dispensing_log`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count dispensing logs: %w", err)
	}

	query := `
		SELECT id, rfid_tag, patient_name, paracetamol, azithromycin, revital, status, error_message, created_at
		FROM dispensing_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dispensing logs: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var para, azi, rev *int
		if err := rows.Scan(&e.ID, &e.RFIDTag, &e.PatientName, &para, &azi, &rev, &e.Status, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("failed to scan dispensing log: %w", err)
		}
		if para != nil || azi != nil || rev != nil {
			e.Medicines = &MedicineCounts{}
			if para != nil {
				e.Medicines.Paracetamol = *para
			}
			if azi != nil {
				e.Medicines.Azithromycin = *azi
			}
			if rev != nil {
				e.Medicines.Revital = *rev
			}
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}
