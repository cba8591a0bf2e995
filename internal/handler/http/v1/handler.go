package v1

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	zoneService      service.ZoneService
	scoreService     service.ScoreService
	alertService     service.AlertService
	incidentService  service.IncidentService
	directoryService service.DirectoryService
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(zoneService service.ZoneService, scoreService service.ScoreService, alertService service.AlertService, incidentService service.IncidentService, directoryService service.DirectoryService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		zoneService:      zoneService,
		scoreService:     scoreService,
		alertService:     alertService,
		incidentService:  incidentService,
		directoryService: directoryService,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondServiceError транслирует доменные ошибки в HTTP-статусы
func respondServiceError(c *gin.Context, log *logrus.Entry, err error) {
	var validationErr *models.ValidationError
	var permissionErr *models.PermissionError
	var notFoundErr *models.NotFoundError
	var transitionErr *models.InvalidTransitionError

	switch {
	case errors.As(err, &validationErr):
		log.WithError(err).Warn("Validation failed in service")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &permissionErr):
		log.WithError(err).Warn("Permission denied in service")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.As(err, &notFoundErr):
		log.WithError(err).Warn("Entity not found in service")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &transitionErr):
		log.WithError(err).Warn("Conflicting state transition in service")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Service call failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Create a new zone
// @Description Create a new geo zone in the system. Requires authority API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param zone body CreateZoneRequest true "Zone creation request"
// @Success 201 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [post]
func (h *Handler) createZone(c *gin.Context) {
	var input CreateZoneRequest
	log := h.logger.WithField("method", "createZone")

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

	model := DTOToZoneModel(input)
	if err := h.zoneService.CreateZone(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToZoneResponse(model))
}

// @Summary Get a list of zones
// @Description Get a paginated list of all zones. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} ZoneResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones [get]
func (h *Handler) listZones(c *gin.Context) {
	log := h.logger.WithField("method", "listZones")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	zones, err := h.zoneService.ListZones(c.Request.Context(), page, pageSize)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelsToZoneResponses(zones))
}

// @Summary Get zone by ID
// @Description Get a single zone by its ID. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 200 {object} ZoneResponse
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Zone not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [get]
func (h *Handler) getZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "getZone").WithField("id", id)

	zone, err := h.zoneService.GetZone(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get zone from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToZoneResponse(zone))
}

// @Summary Update an existing zone
// @Description Update an existing zone by ID. Requires authority API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Param zone body UpdateZoneRequest true "Zone update request"
// @Success 200 "OK"
// @Failure 400 {object} map[string]string "Invalid zone ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [put]
func (h *Handler) updateZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "updateZone").WithField("id", id)

	var input UpdateZoneRequest
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

	model := DTOToZoneModel(input)
	model.ID = id

	if err := h.zoneService.UpdateZone(c.Request.Context(), model); err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.Status(http.StatusOK)
}

// @Summary Deactivate a zone
// @Description Deactivate a zone by its ID. The zone disappears from all queries. Requires authority API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Zone ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid zone ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /zones/{id} [delete]
func (h *Handler) deleteZone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid zone ID"})
		return
	}
	log := h.logger.WithField("method", "deleteZone").WithField("id", id)

	if err := h.zoneService.DeactivateZone(c.Request.Context(), id); err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Find zones near a point
// @Description Find active zones whose center is within the given radius of a point, sorted by distance. Requires API key.
// @Tags Zones
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param latitude query number true "Point latitude"
// @Param longitude query number true "Point longitude"
// @Param radius_meters query number false "Search radius in meters" default(5000)
// @Success 200 {array} NearbyZoneResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /zones/nearby [get]
func (h *Handler) nearbyZones(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
		return
	}
	radius, err := strconv.ParseFloat(c.DefaultQuery("radius_meters", "5000"), 64)
	if err != nil || radius <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
		return
	}

	point := models.Position{Latitude: lat, Longitude: lon}
	if !point.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "coordinates out of range"})
		return
	}

	nearby := h.zoneService.NearbyZones(point, radius)
	c.JSON(http.StatusOK, DistancesToNearbyResponses(nearby))
}

// @Summary Update tourist location
// @Description Submit a new tourist position, recompute the safety score and record a safety check. Requires API key.
// @Tags Location
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param location body LocationUpdateRequest true "Location update request"
// @Success 200 {object} SafetyScoreResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /location/update [post]
func (h *Handler) updateLocation(c *gin.Context) {
	var input LocationUpdateRequest
	log := h.logger.WithField("method", "updateLocation")

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

	touristID, err := uuid.Parse(input.TouristID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourist ID"})
		return
	}

	point := models.Position{Latitude: input.Latitude, Longitude: input.Longitude, Timestamp: time.Now()}
	score, err := h.scoreService.EvaluateLocation(c.Request.Context(), touristID, point)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SafetyScoreResponse{TouristID: input.TouristID, Score: score})
}

// @Summary Raise an SOS alert
// @Description Raise an SOS alert for a tourist. The tourist is marked as in emergency and responders are notified. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sos body SOSRequest true "SOS request"
// @Success 201 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/sos [post]
func (h *Handler) createSOS(c *gin.Context) {
	var input SOSRequest
	log := h.logger.WithField("method", "createSOS")

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

	touristID, err := uuid.Parse(input.TouristID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourist ID"})
		return
	}

	location := models.Position{Latitude: input.Latitude, Longitude: input.Longitude, Timestamp: time.Now()}
	alert, err := h.alertService.CreateAlert(c.Request.Context(), models.AlertKindSOS, touristID, location, models.Severity(input.Severity), input.Message)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, ModelToAlertResponse(alert))
}

// @Summary Get alert by ID
// @Description Get a single alert by its ID. Requires API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Alert not found"
// @Router /alerts/{id} [get]
func (h *Handler) getAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "getAlert").WithField("id", id)

	alert, err := h.alertService.GetAlert(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get alert from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "alert not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary Transition an alert to a new status
// @Description Move an alert forward through its lifecycle. Only authorities may transition alerts. Requires authority API key.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Alert ID"
// @Param transition body TransitionRequest true "Transition request"
// @Success 200 {object} AlertResponse
// @Failure 400 {object} map[string]string "Invalid alert ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Alert not found"
// @Failure 409 {object} map[string]string "Transition not allowed from current status"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/{id}/status [patch]
func (h *Handler) transitionAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid alert ID"})
		return
	}
	log := h.logger.WithField("method", "transitionAlert").WithField("id", id)

	var input TransitionRequest
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

	authorityID, err := uuid.Parse(input.AuthorityID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authority ID"})
		return
	}

	actor := service.Actor{ID: authorityID, Role: callerRole(c)}
	alert, err := h.alertService.Transition(c.Request.Context(), id, models.AlertStatus(input.Status), actor, input.ResponseNotes)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, ModelToAlertResponse(alert))
}

// @Summary File a new incident
// @Description File an incident report. A unique reference number is assigned and a linked alert is created atomically. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param incident body FileIncidentRequest true "Incident filing request"
// @Success 201 {object} FileIncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Reporter not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) fileIncident(c *gin.Context) {
	var input FileIncidentRequest
	log := h.logger.WithField("method", "fileIncident")

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

	reporterID, err := uuid.Parse(input.ReporterID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reporter ID"})
		return
	}

	incident, alert, err := h.incidentService.FileIncident(c.Request.Context(), service.FileIncidentInput{
		ReporterID:   reporterID,
		Type:         input.Type,
		Title:        input.Title,
		Description:  input.Description,
		Location:     models.Position{Latitude: input.Latitude, Longitude: input.Longitude},
		Severity:     models.Severity(input.Severity),
		Witnesses:    input.Witnesses,
		EvidenceRefs: input.EvidenceRefs,
	})
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, FileIncidentResponse{
		Incident: ModelToIncidentResponse(incident),
		Alert:    ModelToAlertResponse(alert),
	})
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get tourist safety score
// @Description Get the current cached safety score of a tourist. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Success 200 {object} SafetyScoreResponse
// @Failure 400 {object} map[string]string "Invalid tourist ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Router /tourists/{id}/safety-score [get]
func (h *Handler) getSafetyScore(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourist ID"})
		return
	}
	log := h.logger.WithField("method", "getSafetyScore").WithField("id", id)

	score, err := h.scoreService.GetSafetyScore(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, SafetyScoreResponse{TouristID: id.String(), Score: score})
}

// @Summary Get tourist profile
// @Description Get a tourist profile by ID. Last known position is exposed only when the tourist shares location. Requires API key.
// @Tags Tourists
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Tourist ID"
// @Success 200 {object} TouristResponse
// @Failure 400 {object} map[string]string "Invalid tourist ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Tourist not found"
// @Router /tourists/{id} [get]
func (h *Handler) getTourist(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourist ID"})
		return
	}
	log := h.logger.WithField("method", "getTourist").WithField("id", id)

	tourist, err := h.directoryService.ResolveTourist(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToTouristResponse(tourist))
}

// @Summary Get authority profile
// @Description Get an authority profile by ID. Requires API key.
// @Tags Authorities
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Authority ID"
// @Success 200 {object} AuthorityResponse
// @Failure 400 {object} map[string]string "Invalid authority ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Authority not found"
// @Router /authorities/{id} [get]
func (h *Handler) getAuthority(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid authority ID"})
		return
	}
	log := h.logger.WithField("method", "getAuthority").WithField("id", id)

	authority, err := h.directoryService.ResolveAuthority(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAuthorityResponse(authority))
}

// @Summary Get tourist statistics
// @Description Get the count of tourists that checked their location within the configured time window. Requires API key.
// @Tags Admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} StatsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	touristCount, err := h.scoreService.GetStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, StatsResponse{TouristCount: touristCount})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
