package entity

import "github.com/google/uuid"

// ActivityLog is an append-only audit entry written by mutating operations.
type ActivityLog struct {
	BaseSimple
	UserID     *uuid.UUID `db:"user_id"`
	Action     string     `db:"action"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Details    string     `db:"details"`
}
