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

const (
	msgCourseNotFound = "Course not found"
	msgInvalidCourse  = "Invalid course id"
)

// CourseHandler serves the course CRUD routes.
type CourseHandler struct {
	courseService *service.CourseService
	log           zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler.
func NewCourseHandler(courseService *service.CourseService, log zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService: courseService,
		log:           log.With().Str("component", "course_handler").Logger(),
	}
}

// List godoc
// GET /courses — any authenticated role.
func (h *CourseHandler) List(c *gin.Context) {
	courses, err := h.courseService.List(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch courses failed")
		response.Error(c, http.StatusInternalServerError, "Error fetching courses")
		return
	}

	if courses == nil {
		courses = []model.Course{}
	}
	c.JSON(http.StatusOK, courses)
}

// Create godoc
// POST /courses — teacher only.
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Error creating course", fields)
		return
	}

	course := &model.Course{
		Title:      req.Title,
		Credit:     req.Credit,
		CourseCode: req.CourseCode,
	}
	if err := h.courseService.Create(c.Request.Context(), course); err != nil {
		if errors.Is(err, repository.ErrDuplicateCourseCode) {
			response.ErrorWithDetail(c, http.StatusBadRequest, "Error creating course", err.Error())
			return
		}
		h.log.Error().Err(err).Msg("create course failed")
		response.Error(c, http.StatusInternalServerError, "Error creating course")
		return
	}

	c.JSON(http.StatusCreated, course)
}

// Update godoc
// PUT /courses/:id — teacher only. Merge update, returns the updated course.
func (h *CourseHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidCourse)
		return
	}

	var req model.UpdateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Error updating course", fields)
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, msgCourseNotFound)
		case errors.Is(err, repository.ErrDuplicateCourseCode):
			response.ErrorWithDetail(c, http.StatusBadRequest, "Error updating course", err.Error())
		default:
			h.log.Error().Err(err).Str("course_id", id.String()).Msg("update course failed")
			response.Error(c, http.StatusInternalServerError, "Error updating course")
		}
		return
	}

	c.JSON(http.StatusOK, course)
}

// Delete godoc
// DELETE /courses/:id — teacher only. Returns the deleted course.
func (h *CourseHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidCourse)
		return
	}

	course, err := h.courseService.Delete(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			response.Error(c, http.StatusNotFound, msgCourseNotFound)
		case errors.Is(err, repository.ErrCourseInUse):
			response.ErrorWithDetail(c, http.StatusBadRequest, "Error deleting course", err.Error())
		default:
			h.log.Error().Err(err).Str("course_id", id.String()).Msg("delete course failed")
			response.Error(c, http.StatusInternalServerError, "Error deleting course")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Course deleted successfully",
		"deletedCourse": course,
	})
}
