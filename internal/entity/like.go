package entity

type Like struct {
	ID         int64 `json:"id"`
	UserID     int64 `json:"user_id"`
	VacationID int64 `json:"vacation_id"`
}

type LikeUpdate struct {
	UserID     *int64
	VacationID *int64
}

func (u LikeUpdate) IsEmpty() bool {
	return u.UserID == nil && u.VacationID == nil
}

type LikeAction string

const (
	LikeActionAdded   LikeAction = "added"
	LikeActionRemoved LikeAction = "removed"
)

type LikeToggle struct {
	Action     LikeAction `json:"action"`
	VacationID int64      `json:"vacation_id"`
	LikesCount int        `json:"likes_count"`
}
