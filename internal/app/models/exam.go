package models

// Exam defines the exam model based on the 'exams' table
type Exam struct {
	ID       int64  `json:"id" db:"id" example:"1"`
	Name     string `json:"name" db:"name" example:"Midterm 1"`
	CourseID int64  `json:"courseId" db:"course_id" example:"1"`
}
