package handler

import (
	"errors"
	"net/http"

	"github.com/campusdesk/coursehub-backend/internal/model"
	"github.com/campusdesk/coursehub-backend/internal/repository"
	"github.com/campusdesk/coursehub-backend/internal/response"
	"github.com/campusdesk/coursehub-backend/internal/service"
	"github.com/campusdesk/coursehub-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AssignmentHandler serves the assignment routes.
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
	log               zerolog.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService *service.AssignmentService, log zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
		log:               log.With().Str("component", "assignment_handler").Logger(),
	}
}

// ListByCourse godoc
// GET /assignments/:courseId — any authenticated role.
func (h *AssignmentHandler) ListByCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidCourse)
		return
	}

	assignments, err := h.assignmentService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		h.log.Error().Err(err).Str("course_id", courseID.String()).Msg("fetch assignments failed")
		response.Error(c, http.StatusInternalServerError, "Error fetching assignments")
		return
	}

	if assignments == nil {
		assignments = []model.Assignment{}
	}
	c.JSON(http.StatusOK, assignments)
}

// Create godoc
// POST /assignments — teacher only.
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req model.CreateAssignmentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Error creating assignment", fields)
		return
	}

	assignment := &model.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		DueDate:     req.DueDate,
		TotalMarks:  req.TotalMarks,
		Description: req.Description,
	}
	if err := h.assignmentService.Create(c.Request.Context(), assignment); err != nil {
		if errors.Is(err, repository.ErrCourseRefMissing) {
			response.ErrorWithDetail(c, http.StatusBadRequest, "Error creating assignment", err.Error())
			return
		}
		h.log.Error().Err(err).Msg("create assignment failed")
		response.Error(c, http.StatusInternalServerError, "Error creating assignment")
		return
	}

	c.JSON(http.StatusCreated, assignment)
}
