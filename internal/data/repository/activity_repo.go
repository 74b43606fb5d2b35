package repository

import (
	"context"
	"fmt"

	"hotel-manager/internal/data/entity"
	"hotel-manager/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, log *entity.ActivityLog) error
	FindRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error)
	FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.ActivityLog, error)
}

type activityLogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActivityLogRepository(db database.PgxIface, log *zap.Logger) ActivityLogRepository {
	return &activityLogRepository{
		db:  db,
		log: log.With(zap.String("repository", "activity_log")),
	}
}

func (r *activityLogRepository) Create(ctx context.Context, entry *entity.ActivityLog) error {
	query := `
		INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Details,
		entry.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to write activity log",
			zap.Error(err),
			zap.String("action", entry.Action),
		)
		return fmt.Errorf("write activity log %s: %w", entry.Action, err)
	}

	return nil
}

func (r *activityLogRepository) FindRecent(ctx context.Context, limit int) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, entity_type, entity_id, details, created_at
		FROM activity_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to list recent activity", zap.Error(err))
		return nil, fmt.Errorf("list recent activity: %w", err)
	}
	defer rows.Close()

	var entries []*entity.ActivityLog
	for rows.Next() {
		var entry entity.ActivityLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity log row: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func (r *activityLogRepository) FindByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.ActivityLog, error) {
	query := `
		SELECT id, user_id, action, entity_type, entity_id, details, created_at
		FROM activity_logs
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, entityType, entityID)
	if err != nil {
		r.log.Error("Failed to list entity activity",
			zap.Error(err),
			zap.String("entity_type", entityType),
			zap.String("entity_id", entityID.String()),
		)
		return nil, fmt.Errorf("list activity for %s %s: %w", entityType, entityID.String(), err)
	}
	defer rows.Close()

	var entries []*entity.ActivityLog
	for rows.Next() {
		var entry entity.ActivityLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.EntityType,
			&entry.EntityID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan activity log row: %w", err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}
