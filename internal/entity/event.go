package entity

import "time"

type VacationEventType string

const (
	EventVacationCreated VacationEventType = "vacation.created"
	EventVacationUpdated VacationEventType = "vacation.updated"
	EventVacationDeleted VacationEventType = "vacation.deleted"
	EventLikeAdded       VacationEventType = "like.added"
	EventLikeRemoved     VacationEventType = "like.removed"
)

type VacationEvent struct {
	Type       VacationEventType `json:"type"`
	VacationID int64             `json:"vacation_id"`
	UserID     int64             `json:"user_id,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
