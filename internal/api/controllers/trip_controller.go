package controllers

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary
// @Description Ask the AI planner for a day-by-day itinerary and store it
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Destination, duration, travelers, budget"
// @Success 201 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (t *TripController) GenerateItinerary(c *gin.Context) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip request: "+err.Error())
		return
	}

	trip, err := t.tripService.GenerateTrip(c.Request.Context(), req, c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, trip, "Itinerary generated successfully")
}

// ListTrips godoc
// @Summary List my trips
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {object} response_models.TripListResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (t *TripController) ListTrips(c *gin.Context) {
	var query request_models.ListTripsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page or page size (page >= 1, page size 1-100)")
		return
	}

	trips, err := t.tripService.ListTrips(c.Request.Context(), c.GetString("user_id"), query.Page, query.PageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

// GetTrip godoc
// @Summary Get a trip with its itinerary
// @Tags Itinerary
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id} [get]
func (t *TripController) GetTrip(c *gin.Context) {
	trip, err := t.tripService.GetTrip(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Trip fetched successfully")
}

// DeleteTrip godoc
// @Summary Delete a trip
// @Tags Itinerary
// @Param id path string true "Trip ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{id} [delete]
func (t *TripController) DeleteTrip(c *gin.Context) {
	if err := t.tripService.DeleteTrip(c.Request.Context(), c.Param("id"), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}

// DownloadTripPDF godoc
// @Summary Download a trip as PDF
// @Tags Itinerary
// @Produce application/pdf
// @Param id path string true "Trip ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{id}/pdf [get]
func (t *TripController) DownloadTripPDF(c *gin.Context) {
	doc, err := t.tripService.RenderTripPDF(c.Request.Context(), c.Param("id"), c.GetString("user_name"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFileName(c.Param("id"))))
	c.Data(http.StatusOK, "application/pdf", doc.Bytes)
}

// ShareTrip godoc
// @Summary Create a share link for a trip
// @Tags Itinerary
// @Produce json
// @Param id path string true "Trip ID"
// @Success 201 {object} response_models.ShareResponse
// @Router /itineraries/{id}/share [post]
func (t *TripController) ShareTrip(c *gin.Context) {
	share, err := t.tripService.ShareTrip(c.Request.Context(), c.Param("id"), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondWithStatus(c, http.StatusCreated, share, "Share link created")
}

// GetSharedTrip godoc
// @Summary Open a shared trip
// @Tags Itinerary
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} response_models.TripResponse
// @Failure 404 {object} utils.APIResponse
// @Router /shared/{token} [get]
func (t *TripController) GetSharedTrip(c *gin.Context) {
	trip, err := t.tripService.GetSharedTrip(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trip, "Shared trip fetched successfully")
}

// DownloadSharedTripPDF godoc
// @Summary Download a shared trip as PDF
// @Tags Itinerary
// @Produce application/pdf
// @Param token path string true "Share token"
// @Success 200 {file} file
// @Failure 404 {object} utils.APIResponse
// @Router /shared/{token}/pdf [get]
func (t *TripController) DownloadSharedTripPDF(c *gin.Context) {
	doc, err := t.tripService.RenderSharedTripPDF(c.Request.Context(), c.Param("token"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, pdfFileName(c.Param("token"))))
	c.Data(http.StatusOK, "application/pdf", doc.Bytes)
}

func Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{"status": "ok"}, "")
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9-]+`)

func pdfFileName(id string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(id, "-"), "-")
	if name == "" {
		name = "trip"
	}
	return "itinerary-" + name + ".pdf"
}
