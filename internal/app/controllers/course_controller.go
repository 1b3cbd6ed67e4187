package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/models/dto"
	"github.com/kanav2002/plagchecker/internal/app/services"
	"github.com/kanav2002/plagchecker/internal/middleware"
)

// CourseController handles course and exam catalog operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// parseIDParam parses an int64 path parameter, writing a 400 response on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail, Timestamp: time.Now()})
		return 0, false
	}
	return id, true
}

// CreateCourse creates a new course
// @Summary Create a new course
// @Description Creates a course owned by an existing instructor
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course information"
// @Success 201 {object} dto.APIResponse{data=models.Course} "Course created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Instructor not found"
// @Failure 409 {object} dto.APIResponse "Course code already exists"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid course data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail, Timestamp: time.Now()})
		return
	}

	course := &models.Course{
		Code:         req.Code,
		Name:         req.Name,
		InstructorID: req.InstructorID,
	}
	if err := c.courseService.CreateCourse(ctx, course); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Message:   "Course created successfully",
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetAllCourses lists all courses
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /courses [get]
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetCourseByID retrieves a course with its exams
// @Summary Get course by ID
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=models.Course}
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [get]
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      course,
		Timestamp: time.Now(),
	})
}

// GetCoursesByInstructor lists the courses owned by an instructor
// @Summary List instructor courses
// @Tags courses
// @Produce json
// @Param id path int true "Instructor ID" Format(int64)
// @Success 200 {object} dto.APIResponse{data=[]models.Course}
// @Failure 400 {object} dto.APIResponse "Invalid instructor ID"
// @Failure 404 {object} dto.APIResponse "Instructor not found"
// @Router /instructors/{id}/courses [get]
func (c *CourseController) GetCoursesByInstructor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	courses, err := c.courseService.GetCoursesByInstructor(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// DeleteCourse removes a course and its exams
// @Summary Delete course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64)
// @Success 200 {object} dto.APIResponse "Course deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid course ID"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Course deleted successfully",
		Timestamp: time.Now(),
	})
}

// AddExam attaches an exam to a course
// @Summary Add exam to course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID" Format(int64)
// @Param request body dto.CreateExamRequest true "Exam information"
// @Success 201 {object} dto.APIResponse{data=models.Exam} "Exam created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Course not found"
// @Router /courses/{id}/exams [post]
func (c *CourseController) AddExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.CreateExamRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid exam data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{Error: errorDetail, Timestamp: time.Now()})
		return
	}

	exam, err := c.courseService.AddExam(ctx, id, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Success:   true,
		Message:   "Exam created successfully",
		Data:      exam,
		Timestamp: time.Now(),
	})
}

// DeleteExam removes an exam from a course
// @Summary Delete exam
// @Tags courses
// @Produce json
// @Param id path int true "Course ID" Format(int64)
// @Param examId path int true "Exam ID" Format(int64)
// @Success 200 {object} dto.APIResponse "Exam deleted successfully"
// @Failure 400 {object} dto.APIResponse "Invalid ID"
// @Failure 404 {object} dto.APIResponse "Exam not found"
// @Router /courses/{id}/exams/{examId} [delete]
func (c *CourseController) DeleteExam(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	examID, ok := parseIDParam(ctx, "examId")
	if !ok {
		return
	}

	if err := c.courseService.DeleteExam(ctx, id, examID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Success:   true,
		Message:   "Exam deleted successfully",
		Timestamp: time.Now(),
	})
}
