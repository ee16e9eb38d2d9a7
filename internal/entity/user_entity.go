package entity

// User is the singleton identity held by the session manager. Every other
// component receives it read-only.
//
// JSON tags mirror the persisted client record; the stored layout is a
// compatibility contract with existing data.
type User struct {
	Id     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
}
