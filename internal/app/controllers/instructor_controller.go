package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kanav2002/plagchecker/internal/app/models"
	"github.com/kanav2002/plagchecker/internal/app/models/dto"
	"github.com/kanav2002/plagchecker/internal/app/services"
)

// InstructorController handles the instructor account endpoints. The wire
// contract is fixed: bare Instructor JSON bodies, plain-text password-change
// results, and a bare 400 for anything the service rejects. Service failures
// are never surfaced as a detailed 500.
type InstructorController struct {
	instructorService services.InstructorService
}

// NewInstructorController creates a new instructor controller
func NewInstructorController(instructorService services.InstructorService) *InstructorController {
	return &InstructorController{
		instructorService: instructorService,
	}
}

// CreateInstructor creates a new instructor account
// @Summary Create instructor
// @Description Creates a new instructor account; the username must be unique
// @Tags instructors
// @Accept json
// @Produce json
// @Param instructor body models.Instructor true "Instructor to create"
// @Success 200 {object} models.Instructor "Created instructor with assigned id"
// @Failure 400 "Malformed body or duplicate username"
// @Router /instructors [post]
func (c *InstructorController) CreateInstructor(ctx *gin.Context) {
	var instructor models.Instructor
	if err := ctx.ShouldBindJSON(&instructor); err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}

	created, err := c.instructorService.CreateInstructor(ctx, &instructor)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}

	ctx.JSON(http.StatusOK, created)
}

// GetAllInstructors lists every instructor account
// @Summary List instructors
// @Description Retrieves all instructor accounts
// @Tags instructors
// @Produce json
// @Success 200 {array} models.Instructor "All instructors, possibly empty"
// @Router /instructors [get]
func (c *InstructorController) GetAllInstructors(ctx *gin.Context) {
	instructors, err := c.instructorService.GetAllInstructors(ctx)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}

	ctx.JSON(http.StatusOK, instructors)
}

// GetInstructorByID retrieves an instructor by id
// @Summary Get instructor by ID
// @Tags instructors
// @Produce json
// @Param id path int true "Instructor ID" Format(int64)
// @Success 200 {object} models.Instructor
// @Failure 400 "Non-integer id"
// @Failure 404 "Instructor not found"
// @Router /instructors/{id} [get]
func (c *InstructorController) GetInstructorByID(ctx *gin.Context) {
	idParam := ctx.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}

	instructor, err := c.instructorService.GetInstructorByID(ctx, id)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	if instructor == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, instructor)
}

// GetInstructorByUsername retrieves an instructor by exact username
// @Summary Get instructor by username
// @Tags instructors
// @Produce json
// @Param username path string true "Username, case-sensitive"
// @Success 200 {object} models.Instructor
// @Failure 404 "Instructor not found"
// @Router /instructors/username/{username} [get]
func (c *InstructorController) GetInstructorByUsername(ctx *gin.Context) {
	username := ctx.Param("username")

	instructor, err := c.instructorService.GetInstructorByUsername(ctx, username)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	if instructor == nil {
		ctx.Status(http.StatusNotFound)
		return
	}

	ctx.JSON(http.StatusOK, instructor)
}

// UpdatePassword changes an instructor's password after verifying the old one.
// An unknown username and a wrong old password produce the same response body
// so the endpoint cannot be used to enumerate usernames.
// @Summary Update instructor password
// @Tags instructors
// @Accept json
// @Produce plain
// @Param username path string true "Username"
// @Param request body dto.UpdatePasswordRequest true "Old and new password"
// @Success 200 {string} string "Password updated successfully"
// @Failure 400 {string} string "Invalid old password"
// @Router /instructors/password/{username} [put]
func (c *InstructorController) UpdatePassword(ctx *gin.Context) {
	username := ctx.Param("username")

	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	// Missing keys are rejected; empty values are legal and stored verbatim.
	if req.OldPassword == nil || req.NewPassword == nil {
		ctx.Status(http.StatusBadRequest)
		return
	}

	updated, err := c.instructorService.UpdatePassword(ctx, username, *req.OldPassword, *req.NewPassword)
	if err != nil {
		ctx.Status(http.StatusBadRequest)
		return
	}
	if !updated {
		ctx.String(http.StatusBadRequest, "Invalid old password")
		return
	}

	ctx.String(http.StatusOK, "Password updated successfully")
}
