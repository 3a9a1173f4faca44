package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Ensure(ctx context.Context) (*Inventory, error) {
	inv, err := r.Get(ctx)
	if err == nil {
		return inv, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return r.seed(ctx)
}

func (r *repoPG) Get(ctx context.Context) (*Inventory, error) {
	var inv Inventory
	err := r.pool.QueryRow(ctx,
		`SELECT id, created_at, updated_at FROM inventory LIMIT 1`).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, position, medicine, stock, max_capacity
		FROM dispenser_slot WHERE inventory_id = $1 ORDER BY position`, inv.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var s Slot
		if err := rows.Scan(&s.ID, &s.Position, &s.Medicine, &s.Stock, &s.Max); err != nil {
			return nil, err
		}
		inv.Slots = append(inv.Slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &inv, nil
}

// seed creates the singleton inventory with the factory-default slots.
func (r *repoPG) seed(ctx context.Context) (*Inventory, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	inv := &Inventory{ID: uuid.New(), Slots: DefaultSlots()}
	if _, err := tx.Exec(ctx, `INSERT INTO inventory (id) VALUES ($1)`, inv.ID); err != nil {
		return nil, err
	}
	for i := range inv.Slots {
		inv.Slots[i].ID = uuid.New()
		s := inv.Slots[i]
		if _, err := tx.Exec(ctx, `
			INSERT INTO dispenser_slot (id, inventory_id, position, medicine, stock, max_capacity)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			s.ID, inv.ID, s.Position, s.Medicine, s.Stock, s.Max); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.Get(ctx)
}

func (r *repoPG) SaveSlots(ctx context.Context, inv *Inventory) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM dispenser_slot WHERE inventory_id = $1`, inv.ID); err != nil {
		return err
	}
	for i := range inv.Slots {
		if inv.Slots[i].ID == uuid.Nil {
			inv.Slots[i].ID = uuid.New()
		}
		s := inv.Slots[i]
		if _, err := tx.Exec(ctx, `
			INSERT INTO dispenser_slot (id, inventory_id, position, medicine, stock, max_capacity)
			VALUES ($1,$2,$3,$4,$5,$6)`,
			s.ID, inv.ID, s.Position, s.Medicine, s.Stock, s.Max); err != nil {
			return err
		}
	}
	if _, err := tx.Exec(ctx, `UPDATE inventory SET updated_at = NOW() WHERE id = $1`, inv.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
