package shop

import "time"

// Shop is a physical store location staffed by attendants.
type Shop struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Location     string    `json:"location"`
	AdminID      string    `json:"adminId"`
	AttendantIDs []string  `json:"attendantIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
