package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ActivityService interface {
	// Record is best-effort: a failed audit write is logged, never surfaced,
	// so it cannot abort the operation being audited.
	Record(ctx context.Context, userID *uuid.UUID, action, entityType string, entityID *uuid.UUID, details string)
	ListRecent(ctx context.Context, limit int) ([]response.ActivityLogResponse, error)
	ListByEntity(ctx context.Context, entityType, entityID string) ([]response.ActivityLogResponse, error)
}

type activityService struct {
	repo repository.ActivityLogRepository
	log  *zap.Logger
}

func NewActivityService(repo repository.ActivityLogRepository, log *zap.Logger) ActivityService {
	return &activityService{
		repo: repo,
		log:  log.With(zap.String("service", "activity")),
	}
}

func (s *activityService) Record(ctx context.Context, userID *uuid.UUID, action, entityType string, entityID *uuid.UUID, details string) {
	entry := &entity.ActivityLog{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		s.log.Warn("Activity entry dropped",
			zap.Error(err),
			zap.String("action", action),
			zap.String("entity_type", entityType),
		)
	}
}

func (s *activityService) ListRecent(ctx context.Context, limit int) ([]response.ActivityLogResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	entries, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		s.log.Error("Failed to list recent activity", zap.Error(err))
		return nil, fmt.Errorf("list recent activity: %w", err)
	}

	responses := make([]response.ActivityLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = response.ActivityLogToResponse(entry)
	}

	return responses, nil
}

func (s *activityService) ListByEntity(ctx context.Context, entityType, entityID string) ([]response.ActivityLogResponse, error) {
	id, err := uuid.Parse(entityID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid entity ID %s", ErrValidation, entityID)
	}

	entries, err := s.repo.FindByEntity(ctx, entityType, id)
	if err != nil {
		s.log.Error("Failed to list entity activity",
			zap.Error(err),
			zap.String("entity_type", entityType),
		)
		return nil, fmt.Errorf("list activity for %s: %w", entityType, err)
	}

	responses := make([]response.ActivityLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = response.ActivityLogToResponse(entry)
	}

	return responses, nil
}
