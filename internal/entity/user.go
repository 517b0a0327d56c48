package entity

type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int64  `json:"role_id"`
}

func (u User) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}

// UserUpdate is a partial update of a users row. Nil fields are left as is.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash *string
	RoleID       *int64
}

func (u UserUpdate) IsEmpty() bool {
	return u.FirstName == nil && u.LastName == nil && u.Email == nil && u.PasswordHash == nil && u.RoleID == nil
}
