package account

// Role gates access to the admin dashboard.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the client-side session identity. The backend only vouches for the
// email/password pair and its role; everything else is assembled locally on
// login and discarded on logout. Nothing is persisted across restarts.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

// IsAdmin reports whether the session may use the admin product CRUD screens.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }
