package models

type User struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Pro      bool    `json:"pro"`
	Todos    []*Todo `json:"todos"`
}
