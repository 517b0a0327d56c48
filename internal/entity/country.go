package entity

type Country struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CountryUpdate struct {
	Name *string
}

func (u CountryUpdate) IsEmpty() bool {
	return u.Name == nil
}
