package response

import (
	"time"

	"hotel-manager/internal/data/entity"
)

type DashboardResponse struct {
	TotalReservations  int64   `json:"total_reservations"`
	ActiveReservations int     `json:"active_reservations"`
	TotalRooms         int64   `json:"total_rooms"`
	AvailableRooms     int64   `json:"available_rooms"`
	TotalCustomers     int64   `json:"total_customers"`
	TotalRevenue       float64 `json:"total_revenue"`
}

type ActivityLogResponse struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"user_id,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   *string   `json:"entity_id,omitempty"`
	Details    string    `json:"details,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ActivityLogToResponse(entry *entity.ActivityLog) ActivityLogResponse {
	resp := ActivityLogResponse{
		ID:         entry.ID.String(),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		Details:    entry.Details,
		CreatedAt:  entry.CreatedAt,
	}
	if entry.UserID != nil {
		userID := entry.UserID.String()
		resp.UserID = &userID
	}
	if entry.EntityID != nil {
		entityID := entry.EntityID.String()
		resp.EntityID = &entityID
	}
	return resp
}
