package models

// Instructor defines the instructor account model based on the 'instructors' table.
// The wire shape matches the table one to one; ID is a pointer so an instructor
// that has not been persisted yet serializes as "id": null.
type Instructor struct {
	ID        *int64 `json:"id" db:"id" example:"1"`                       // Server-assigned identifier, nil until persisted
	Username  string `json:"username" db:"username" example:"mike_wilson"` // Unique login name, case-sensitive
	Password  string `json:"password" db:"password"`                       // Stored verbatim; compared through auth.PasswordVerifier
	FirstName string `json:"firstName" db:"first_name" example:"Mike"`     // Display first name
	LastName  string `json:"lastName" db:"last_name" example:"Wilson"`     // Display last name
}
