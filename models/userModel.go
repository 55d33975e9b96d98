package models

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
)

type User struct {
	ID       string  `json:"id"`
	Username string  `json:"username" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Role     string  `json:"role" validate:"required,eq=student|eq=staff"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Account is a registered credential pair. Login is simulated (unknown
// emails are accepted with any password), but accounts created through
// signup keep a hashed password that is checked on later logins.
type Account struct {
	Username string `json:"username" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
