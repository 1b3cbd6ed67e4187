package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Code         string `json:"code" db:"code" example:"CS402"` // Unique course code
	Name         string `json:"name" db:"name" example:"Compiler Design"`
	InstructorID int64  `json:"instructorId" db:"instructor_id" example:"1"`

	// Relations (populated when needed)
	Exams []*Exam `json:"exams,omitempty"`
}
