package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption/internal/domain/adoptions"
)

const adoptionColumns = `
	id, pet_id, owner_user_id, adopter_user_id,
	message, status,
	created_at, updated_at, decided_at`

var errAdoptionNotFound = fmt.Errorf("%w: %w", ErrNotFound, adoptions.ErrNotFound)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO adoptions (`+adoptionColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		a.ID,
		a.PetID,
		a.OwnerUserID,
		a.AdopterUserID,
		a.Message,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
		toNullTime(a.DecidedAt),
	)
	return err
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoptions
		SET
			message = $2,
			status = $3,
			updated_at = $4,
			decided_at = $5
		WHERE id = $1
	`,
		a.ID,
		a.Message,
		string(a.Status),
		a.UpdatedAt,
		toNullTime(a.DecidedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return errAdoptionNotFound
	}
	return nil
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return adoptions.Adoption{}, errAdoptionNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+adoptionColumns+` FROM adoptions WHERE id = $1`, id)
	a, err := scanAdoption(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return adoptions.Adoption{}, errAdoptionNotFound
		}
		return adoptions.Adoption{}, err
	}
	return a, nil
}

func (r *AdoptionsRepo) ListByPet(ctx context.Context, petID string) ([]adoptions.Adoption, error) {
	return r.query(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE pet_id = $1
		ORDER BY created_at ASC
	`, petID)
}

func (r *AdoptionsRepo) ListByAdopter(ctx context.Context, adopterUserID string) ([]adoptions.Adoption, error) {
	return r.query(ctx, `
		SELECT `+adoptionColumns+`
		FROM adoptions
		WHERE adopter_user_id = $1
		ORDER BY created_at ASC
	`, adopterUserID)
}

func (r *AdoptionsRepo) query(ctx context.Context, q string, args ...any) ([]adoptions.Adoption, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAdoption(s scanner) (adoptions.Adoption, error) {
	var (
		a         adoptions.Adoption
		status    string
		decidedAt sql.NullTime
	)
	if err := s.Scan(
		&a.ID,
		&a.PetID,
		&a.OwnerUserID,
		&a.AdopterUserID,
		&a.Message,
		&status,
		&a.CreatedAt,
		&a.UpdatedAt,
		&decidedAt,
	); err != nil {
		return adoptions.Adoption{}, err
	}
	a.Status = adoptions.Status(status)
	a.DecidedAt = fromNullTime(decidedAt)
	return a, nil
}
