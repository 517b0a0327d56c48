package entity

type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

const (
	RoleIDCustomer int64 = 1
	RoleIDAdmin    int64 = 2
)

type RoleUpdate struct {
	Name *string
}

func (u RoleUpdate) IsEmpty() bool {
	return u.Name == nil
}
