package dto

// CreateCourseRequest is the body for creating a course
type CreateCourseRequest struct {
	Code         string `json:"code" binding:"required" example:"CS402"`
	Name         string `json:"name" binding:"required" example:"Compiler Design"`
	InstructorID int64  `json:"instructorId" binding:"required" example:"1"`
}

// CreateExamRequest is the body for attaching an exam to a course
type CreateExamRequest struct {
	Name string `json:"name" binding:"required" example:"Midterm 1"`
}
