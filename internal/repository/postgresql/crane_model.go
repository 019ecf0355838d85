package postgresql

import (
	"context"
	"fmt"

	"github.com/dycrane/crane-safety-backend-go/internal/domain/crane"
	"github.com/dycrane/crane-safety-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type craneModelRepository struct {
	db *database.DB
}

func NewCraneModelRepository(db *database.DB) crane.CraneModelRepository {
	return &craneModelRepository{db: db}
}

// Create implements crane.CraneModelRepository.
func (r *craneModelRepository) Create(ctx context.Context, model crane.CraneModel) (crane.CraneModel, error) {
	q := GetQuerier(ctx, r.db)

	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	query := `
		INSERT INTO crane_models (
			id, model_name, max_lifting_capacity_ton_m, max_working_height_m,
			max_working_radius_m, boom_sections, tele_speed_m_sec,
			boom_angle_speed_deg_sec, lifting_load_distance_kg_m, optional_specs
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		model.ID, model.ModelName, model.MaxLiftingCapacityTM, model.MaxWorkingHeightM,
		model.MaxWorkingRadiusM, model.BoomSections, model.TeleSpeedMSec,
		model.BoomAngleSpeedDegSec, model.LiftingLoadDistance, model.OptionalSpecs,
	).Scan(&model.CreatedAt, &model.UpdatedAt)
	if err != nil {
		return crane.CraneModel{}, fmt.Errorf("failed to create crane model: %w", err)
	}

	return model, nil
}

// GetByID implements crane.CraneModelRepository.
func (r *craneModelRepository) GetByID(ctx context.Context, id string) (crane.CraneModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, model_name, max_lifting_capacity_ton_m, max_working_height_m,
			   max_working_radius_m, boom_sections, tele_speed_m_sec,
			   boom_angle_speed_deg_sec, lifting_load_distance_kg_m, optional_specs,
			   created_at, updated_at
		FROM crane_models
		WHERE id = $1
	`

	var m crane.CraneModel
	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.ModelName, &m.MaxLiftingCapacityTM, &m.MaxWorkingHeightM,
		&m.MaxWorkingRadiusM, &m.BoomSections, &m.TeleSpeedMSec,
		&m.BoomAngleSpeedDegSec, &m.LiftingLoadDistance, &m.OptionalSpecs,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return crane.CraneModel{}, crane.ErrCraneModelNotFound
		}
		return crane.CraneModel{}, fmt.Errorf("failed to get crane model by ID: %w", err)
	}

	return m, nil
}

// List implements crane.CraneModelRepository.
func (r *craneModelRepository) List(ctx context.Context) ([]crane.CraneModel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, model_name, max_lifting_capacity_ton_m, max_working_height_m,
			   max_working_radius_m, boom_sections, tele_speed_m_sec,
			   boom_angle_speed_deg_sec, lifting_load_distance_kg_m, optional_specs,
			   created_at, updated_at
		FROM crane_models
		ORDER BY model_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query crane models: %w", err)
	}
	defer rows.Close()

	var models []crane.CraneModel
	for rows.Next() {
		var m crane.CraneModel
		err := rows.Scan(
			&m.ID, &m.ModelName, &m.MaxLiftingCapacityTM, &m.MaxWorkingHeightM,
			&m.MaxWorkingRadiusM, &m.BoomSections, &m.TeleSpeedMSec,
			&m.BoomAngleSpeedDegSec, &m.LiftingLoadDistance, &m.OptionalSpecs,
			&m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crane model: %w", err)
		}
		models = append(models, m)
	}

	return models, nil
}
