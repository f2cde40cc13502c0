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

// ClassTestHandler serves the class-test routes.
type ClassTestHandler struct {
	testService *service.ClassTestService
	log         zerolog.Logger
}

// NewClassTestHandler creates a new ClassTestHandler.
func NewClassTestHandler(testService *service.ClassTestService, log zerolog.Logger) *ClassTestHandler {
	return &ClassTestHandler{
		testService: testService,
		log:         log.With().Str("component", "classtest_handler").Logger(),
	}
}

// ListAll godoc
// GET /class-tests — any authenticated role.
// Each test's courseId comes back resolved to a {title, credit} projection.
func (h *ClassTestHandler) ListAll(c *gin.Context) {
	tests, err := h.testService.ListWithCourse(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("fetch class tests failed")
		response.Error(c, http.StatusInternalServerError, "Error fetching class tests")
		return
	}

	if tests == nil {
		tests = []model.ClassTestWithCourse{}
	}
	c.JSON(http.StatusOK, tests)
}

// ListByCourse godoc
// GET /class-tests/:courseId — any authenticated role. Reference unresolved.
func (h *ClassTestHandler) ListByCourse(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("courseId"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, msgInvalidCourse)
		return
	}

	tests, err := h.testService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		h.log.Error().Err(err).Str("course_id", courseID.String()).Msg("fetch class tests failed")
		response.Error(c, http.StatusInternalServerError, "Error fetching class tests")
		return
	}

	if tests == nil {
		tests = []model.ClassTest{}
	}
	c.JSON(http.StatusOK, tests)
}

// Create godoc
// POST /class-tests — teacher only.
func (h *ClassTestHandler) Create(c *gin.Context) {
	var req model.CreateClassTestRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ErrorWithDetail(c, http.StatusBadRequest, "Error creating class test", fields)
		return
	}

	test := &model.ClassTest{
		CourseID:   req.CourseID,
		Syllabus:   req.Syllabus,
		DateOfTest: req.DateOfTest,
		RoomNumber: req.RoomNumber,
		TotalMarks: req.TotalMarks,
	}
	if err := h.testService.Create(c.Request.Context(), test); err != nil {
		if errors.Is(err, repository.ErrCourseRefMissing) {
			response.ErrorWithDetail(c, http.StatusBadRequest, "Error creating class test", err.Error())
			return
		}
		h.log.Error().Err(err).Msg("create class test failed")
		response.Error(c, http.StatusInternalServerError, "Error creating class test")
		return
	}

	c.JSON(http.StatusCreated, test)
}
