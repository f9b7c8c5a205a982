package assessments

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres. Responses are stored as JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new assessment.
func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessments (
    id,
    responses,
    total_score,
    website_score,
    social_score,
    ad_score,
    company_name,
    email,
    industry,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	responses, err := json.Marshal(assessment.Responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		assessment.ID,
		responses,
		assessment.TotalScore,
		assessment.WebsiteScore,
		assessment.SocialScore,
		assessment.AdScore,
		nullString(assessment.CompanyName),
		nullString(assessment.Email),
		nullString(assessment.Industry),
		assessment.CreatedAt,
	)
	return err
}

// GetByID fetches an assessment by ID.
func (r *PGRepo) GetByID(ctx context.Context, assessmentID string) (Assessment, error) {
	const query = `
SELECT id, responses, total_score, website_score, social_score, ad_score, company_name, email, industry, created_at
FROM assessments
WHERE id = $1
LIMIT 1`

	var (
		assessment  Assessment
		responses   []byte
		companyName sql.NullString
		email       sql.NullString
		industry    sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, assessmentID).Scan(
		&assessment.ID,
		&responses,
		&assessment.TotalScore,
		&assessment.WebsiteScore,
		&assessment.SocialScore,
		&assessment.AdScore,
		&companyName,
		&email,
		&industry,
		&assessment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, ErrNotFound
		}
		return Assessment{}, err
	}
	if err := json.Unmarshal(responses, &assessment.Responses); err != nil {
		return Assessment{}, fmt.Errorf("unmarshal responses: %w", err)
	}
	if companyName.Valid {
		assessment.CompanyName = companyName.String
	}
	if email.Valid {
		assessment.Email = email.String
	}
	if industry.Valid {
		assessment.Industry = industry.String
	}
	return assessment, nil
}

// List returns assessments ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, responses, total_score, website_score, social_score, ad_score, company_name, email, industry, created_at
FROM assessments
ORDER BY created_at DESC, id
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		var (
			assessment  Assessment
			responses   []byte
			companyName sql.NullString
			email       sql.NullString
			industry    sql.NullString
		)
		if err := rows.Scan(
			&assessment.ID,
			&responses,
			&assessment.TotalScore,
			&assessment.WebsiteScore,
			&assessment.SocialScore,
			&assessment.AdScore,
			&companyName,
			&email,
			&industry,
			&assessment.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(responses, &assessment.Responses); err != nil {
			return nil, fmt.Errorf("unmarshal responses: %w", err)
		}
		if companyName.Valid {
			assessment.CompanyName = companyName.String
		}
		if email.Valid {
			assessment.Email = email.String
		}
		if industry.Valid {
			assessment.Industry = industry.String
		}
		out = append(out, assessment)
	}
	return out, rows.Err()
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
