package identity

import "time"

// Role classifies what a user may do in the shop.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleAttendant Role = "ATTENDANT"
)

// Public carries every user field that may leave the service. The password
// hash never does; it lives only on User.
type Public struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Phone     string     `json:"phone"`
	DOB       *time.Time `json:"dob,omitempty"`
	Gender    string     `json:"gender"`
	Image     string     `json:"image"`
	Role      Role       `json:"role"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// User is the stored credential record.
type User struct {
	Public
	PasswordHash []byte
}

// Contact is the reduced projection used when listing a shop's attendants.
type Contact struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Image    string `json:"image"`
	Role     Role   `json:"role"`
}

// Contact returns the reduced projection of the user.
func (u User) Contact() Contact {
	return Contact{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Image:    u.Image,
		Role:     u.Role,
	}
}
