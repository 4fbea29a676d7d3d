package employee

type Employee struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"fullName"`
	Role      string `json:"role"`
	ManagerID string `json:"managerId,omitempty"`
}

// Credentials is the minimal projection used by login. The hash never leaves
// this package boundary except for the bcrypt comparison.
type Credentials struct {
	ID           string
	Role         string
	PasswordHash string
}
