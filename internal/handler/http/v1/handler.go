package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/citypulse/waterlog-api/internal/apperror"
	"github.com/citypulse/waterlog-api/internal/config"
	"github.com/citypulse/waterlog-api/internal/models"
	"github.com/citypulse/waterlog-api/internal/service"
	"github.com/citypulse/waterlog-api/internal/storage"
)

type Handler struct {
	authService      service.AuthService
	reportService    service.ReportService
	analyticsService service.AnalyticsService
	images           *storage.ImageStore
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(auth service.AuthService, reports service.ReportService, analytics service.AnalyticsService, images *storage.ImageStore, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		authService:      auth,
		reportService:    reports,
		analyticsService: analytics,
		images:           images,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError maps the service error taxonomy onto HTTP statuses.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	var ve *apperror.ValidationError
	switch {
	case errors.As(err, &ve):
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, apperror.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperror.ErrUnauthorized):
		log.WithError(err).Warn("Unauthorized")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, apperror.ErrForbidden):
		log.WithError(err).Warn("Forbidden")
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, apperror.ErrConflict):
		log.WithError(err).Warn("Conflict")
		c.JSON(http.StatusConflict, gin.H{"error": "conflict with existing state"})
	case errors.Is(err, apperror.ErrRateLimited):
		log.WithError(err).Warn("Rate limited")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded, try again later"})
	case errors.Is(err, apperror.ErrUnavailable):
		log.WithError(err).Error("Data unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "data unavailable"})
	default:
		log.WithError(err).Error("Internal error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Register a new account
// @Description Create a citizen account. Authority accounts are provisioned out of band.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
		Phone:    input.Phone,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToUserResponse(user))
}

// @Summary Log in
// @Description Exchange email and password for an access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new access/refresh pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body RefreshRequest true "Refresh request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var input RefreshRequest
	log := h.logger.WithField("method", "refresh")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pair, err := h.authService.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	})
}

// @Summary Get the current account
// @Description Return the account behind the presented access token.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/me [get]
func (h *Handler) currentUser(c *gin.Context) {
	log := h.logger.WithField("method", "currentUser")

	user, err := h.authService.CurrentUser(c.Request.Context(), callerID(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToUserResponse(user))
}

// @Summary Submit a water-logging report
// @Description Create a report at a coordinate, optionally with a photo. The ward is resolved from the coordinate.
// @Tags Reports
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Short title"
// @Param description formData string true "What is happening"
// @Param latitude formData number true "Latitude"
// @Param longitude formData number true "Longitude"
// @Param address formData string false "Free-form address"
// @Param severity formData string false "LOW, MEDIUM, HIGH or CRITICAL"
// @Param image formData file false "Photo of the water-logging"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Report rate limit exceeded"
// @Router /reports [post]
func (h *Handler) createReport(c *gin.Context) {
	var input CreateReportRequest
	log := h.logger.WithField("method", "createReport")

	if err := c.ShouldBind(&input); err != nil {
		log.WithError(err).Warn("Failed to bind request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.Report{
		UserID:      callerID(c),
		Title:       input.Title,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Address:     input.Address,
		Severity:    models.ReportSeverity(input.Severity),
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			log.WithError(err).Warn("Failed to open uploaded image")
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded image"})
			return
		}
		path, err := h.images.Save(file.Filename, file.Size, src)
		src.Close()
		if err != nil {
			h.respondError(c, log, err)
			return
		}
		report.ImagePath = path
	}

	if err := h.reportService.CreateReport(c.Request.Context(), report); err != nil {
		if report.ImagePath != "" {
			if rmErr := h.images.Remove(report.ImagePath); rmErr != nil {
				log.WithError(rmErr).Warn("Failed to remove orphaned image")
			}
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary List reports
// @Description Get a filtered, paginated list of reports.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param ward_id query int false "Filter by ward"
// @Param severity query string false "Filter by severity"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Items per page" default(50)
// @Success 200 {object} ReportListResponse
// @Failure 400 {object} map[string]string "Invalid filter value"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /reports [get]
func (h *Handler) listReports(c *gin.Context) {
	log := h.logger.WithField("method", "listReports")

	filter := service.ReportFilter{}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "50"))

	if raw := c.Query("status"); raw != "" {
		status := models.ReportStatus(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("severity"); raw != "" {
		severity := models.ReportSeverity(raw)
		if !severity.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid severity filter"})
			return
		}
		filter.Severity = &severity
	}
	if raw := c.Query("ward_id"); raw != "" {
		wardID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ward_id filter"})
			return
		}
		filter.WardID = &wardID
	}

	reports, total, err := h.reportService.ListReports(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ReportListResponse{
		Reports:  ModelsToReportResponses(reports),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// @Summary Get a report
// @Description Get a single report by its ID.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id} [get]
func (h *Handler) getReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getReport").WithField("id", id)

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Upvote a report
// @Description Add the caller's upvote to a report. A second upvote by the same user is a conflict.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 409 {object} map[string]string "Already upvoted"
// @Router /reports/{id}/upvote [post]
func (h *Handler) upvoteReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "upvoteReport").WithField("id", id)

	if err := h.reportService.UpvoteReport(c.Request.Context(), id, callerID(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Comment on a report
// @Description Add a comment to a report.
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Failure 429 {object} map[string]string "Comment rate limit exceeded"
// @Router /reports/{id}/comments [post]
func (h *Handler) addComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "addComment").WithField("id", id)

	var input CommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.reportService.AddComment(c.Request.Context(), id, callerID(c), input.Content)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToCommentResponse(comment))
}

// @Summary List comments on a report
// @Description Get all comments on a report in chronological order.
// @Tags Reports
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {array} CommentResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/comments [get]
func (h *Handler) listComments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "listComments").WithField("id", id)

	comments, err := h.reportService.ListComments(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToCommentResponses(comments))
}

// @Summary Triage a report
// @Description Update status, severity or assigned agency of a report. Authority role required.
// @Tags Authority
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param update body TriageRequest true "Fields to update"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Authority role required"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/triage [patch]
func (h *Handler) triageReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "triageReport").WithField("id", id)

	var input TriageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := service.TriageUpdate{Notes: input.Notes}
	if input.Status != nil {
		status := models.ReportStatus(*input.Status)
		update.Status = &status
	}
	if input.Severity != nil {
		severity := models.ReportSeverity(*input.Severity)
		update.Severity = &severity
	}
	if input.Agency != nil {
		agency := models.Agency(*input.Agency)
		update.Agency = &agency
	}

	report, err := h.reportService.TriageReport(c.Request.Context(), id, callerID(c), update)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Upload a resolution image
// @Description Attach a photo documenting the resolution of a report. Authority role required.
// @Tags Authority
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param image formData file true "Resolution photo"
// @Success 200 {object} ReportResponse
// @Failure 400 {object} map[string]string "Missing or invalid image"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Authority role required"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/resolution-image [post]
func (h *Handler) uploadResolutionImage(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "uploadResolutionImage").WithField("id", id)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file required"})
		return
	}
	src, err := file.Open()
	if err != nil {
		log.WithError(err).Warn("Failed to open uploaded image")
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded image"})
		return
	}
	path, err := h.images.Save(file.Filename, file.Size, src)
	src.Close()
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	report, err := h.reportService.AttachResolutionImage(c.Request.Context(), id, callerID(c), path)
	if err != nil {
		if rmErr := h.images.Remove(path); rmErr != nil {
			log.WithError(rmErr).Warn("Failed to remove orphaned image")
		}
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToReportResponse(report))
}

// @Summary Get a report's audit trail
// @Description Get the audit log of authority actions on a report. Authority role required.
// @Tags Authority
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {array} AuditEntryResponse
// @Failure 400 {object} map[string]string "Invalid report ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Authority role required"
// @Failure 404 {object} map[string]string "Report not found"
// @Router /reports/{id}/audit [get]
func (h *Handler) getAuditLog(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report ID"})
		return
	}
	log := h.logger.WithField("method", "getAuditLog").WithField("id", id)

	entries, err := h.reportService.GetAuditLog(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToAuditResponses(entries))
}

// @Summary List wards with risk scores
// @Description Get all wards with their current risk score and incident density.
// @Tags Analytics
// @Produce json
// @Success 200 {array} models.Ward
// @Router /analytics/wards [get]
func (h *Handler) listWards(c *gin.Context) {
	log := h.logger.WithField("method", "listWards")

	wards, err := h.analyticsService.ListWards(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, wards)
}

// @Summary Get ward analytics
// @Description Get report counters and resolution time for one ward.
// @Tags Analytics
// @Produce json
// @Param id path int true "Ward ID"
// @Success 200 {object} models.WardAnalytics
// @Failure 400 {object} map[string]string "Invalid ward ID"
// @Failure 404 {object} map[string]string "Ward not found"
// @Router /analytics/wards/{id} [get]
func (h *Handler) getWardAnalytics(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ward ID"})
		return
	}
	log := h.logger.WithField("method", "getWardAnalytics").WithField("id", id)

	analytics, err := h.analyticsService.GetWardAnalytics(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// @Summary Hotspot map layer
// @Description Get all ward boundaries as GeoJSON with risk score and category properties.
// @Tags Analytics
// @Produce json
// @Success 200 {object} models.FeatureCollection
// @Router /analytics/hotspots [get]
func (h *Handler) getHotspots(c *gin.Context) {
	log := h.logger.WithField("method", "getHotspots")

	fc, err := h.analyticsService.HotspotsGeoJSON(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Report map layer
// @Description Get report locations as GeoJSON points, optionally filtered by status.
// @Tags Analytics
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {object} models.FeatureCollection
// @Failure 400 {object} map[string]string "Invalid status filter"
// @Router /analytics/reports-geojson [get]
func (h *Handler) getReportsGeoJSON(c *gin.Context) {
	log := h.logger.WithField("method", "getReportsGeoJSON")

	var status *models.ReportStatus
	if raw := c.Query("status"); raw != "" {
		s := models.ReportStatus(raw)
		if !s.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status filter"})
			return
		}
		status = &s
	}

	fc, err := h.analyticsService.ReportsGeoJSON(c.Request.Context(), status)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, fc)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
