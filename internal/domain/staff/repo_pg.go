package staff

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

// NewRepo returns a PostgreSQL-backed Repository.
func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Get(ctx context.Context, roomID string) (*Assignment, error) {
	var a Assignment
	err := r.pool.QueryRow(ctx, `
		SELECT room_id, nurse, tens, shift, updated_at
		FROM staff_assignment WHERE room_id = $1`, roomID).
		Scan(&a.RoomID, &a.Nurse, &a.Tens, &a.Shift, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotAssigned
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repoPG) Put(ctx context.Context, a *Assignment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff_assignment (room_id, nurse, tens, shift)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (room_id) DO UPDATE SET
			nurse = EXCLUDED.nurse,
			tens = EXCLUDED.tens,
			shift = EXCLUDED.shift,
			updated_at = NOW()`,
		a.RoomID, a.Nurse, a.Tens, a.Shift,
	)
	return err
}

func (r *repoPG) All(ctx context.Context) (map[string]*Assignment, error) {
	rows, err := r.pool.Query(ctx, `SELECT room_id, nurse, tens, shift, updated_at FROM staff_assignment`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]*Assignment)
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(&a.RoomID, &a.Nurse, &a.Tens, &a.Shift, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out[a.RoomID] = &a
	}
	return out, rows.Err()
}
