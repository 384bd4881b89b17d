package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
)

type ProfileRepository struct {
	q Queryer
}

func NewProfileRepository(q Queryer) *ProfileRepository {
	return &ProfileRepository{q: q}
}

const profileColumns = `id, kind, email, full_name, password_hash, document, kyc_approved, calculated_score, created_at, updated_at`

func (r *ProfileRepository) Create(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	logger.Info("profile repository create", logger.Fields{
		"profileId": profile.ID,
		"kind":      profile.Kind,
	})

	const query = `
INSERT INTO profiles (
	id,
	kind,
	email,
	full_name,
	password_hash,
	document,
	kyc_approved,
	calculated_score,
	created_at,
	updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	if _, err := r.q.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.Kind,
		profile.Email,
		profile.FullName,
		profile.PasswordHash,
		profile.Document,
		profile.KYCApproved,
		profile.CalculatedScore,
		profile.CreatedAt,
		profile.UpdatedAt,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.Profile{}, commons.ErrDuplicateRecord
		}
		logger.Error("profile repository create failed", err, logger.Fields{
			"profileId": profile.ID,
		})
		return domain.Profile{}, fmt.Errorf("create profile: %w", err)
	}

	return profile, nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return r.scanProfile(r.q.QueryRowContext(ctx, query, id))
}

func (r *ProfileRepository) GetByEmail(ctx context.Context, email string) (domain.Profile, error) {
	const query = `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`
	return r.scanProfile(r.q.QueryRowContext(ctx, query, email))
}

func (r *ProfileRepository) UpdateScore(ctx context.Context, id string, score int) error {
	const query = `UPDATE profiles SET calculated_score = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.q.ExecContext(ctx, query, id, score)
	if err != nil {
		logger.Error("profile repository update score failed", err, logger.Fields{
			"profileId": id,
		})
		return fmt.Errorf("update profile score: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update profile score rows affected: %w", err)
	}
	if rows == 0 {
		return commons.ErrRecordNotFound
	}
	return nil
}

func (r *ProfileRepository) scanProfile(row *sql.Row) (domain.Profile, error) {
	var profile domain.Profile
	if err := row.Scan(
		&profile.ID,
		&profile.Kind,
		&profile.Email,
		&profile.FullName,
		&profile.PasswordHash,
		&profile.Document,
		&profile.KYCApproved,
		&profile.CalculatedScore,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return domain.Profile{}, commons.ErrRecordNotFound
		}
		return domain.Profile{}, err
	}
	return profile, nil
}
