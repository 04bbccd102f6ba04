package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinera/internal/document"
	"itinera/internal/models/request_models"
	"itinera/internal/models/response_models"
	"itinera/pkg/utils"
)

type fakeTripService struct {
	generateErr error
	lastReq     request_models.TripRequest
	lastOwner   string
	lastPage    [2]int
}

func (f *fakeTripService) GenerateTrip(_ context.Context, req request_models.TripRequest, ownerID string) (*response_models.TripResponse, error) {
	f.lastReq, f.lastOwner = req, ownerID
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return &response_models.TripResponse{ID: "trip-1", Destination: req.Destination, OwnerID: ownerID}, nil
}

func (f *fakeTripService) GetTrip(_ context.Context, tripID string) (*response_models.TripResponse, error) {
	if tripID != "trip-1" {
		return nil, utils.ErrTripNotFound
	}
	return &response_models.TripResponse{ID: tripID, Destination: "Kyoto"}, nil
}

func (f *fakeTripService) ListTrips(_ context.Context, ownerID string, page int, pageSize int) (*response_models.TripListResponse, error) {
	f.lastOwner, f.lastPage = ownerID, [2]int{page, pageSize}
	return &response_models.TripListResponse{Page: page, PageSize: pageSize}, nil
}

func (f *fakeTripService) DeleteTrip(_ context.Context, tripID string, ownerID string) error {
	if ownerID != "owner" {
		return utils.ErrForbidden
	}
	return nil
}

func (f *fakeTripService) RenderTripPDF(_ context.Context, tripID string, _ string) (*document.Document, error) {
	if tripID == "broken" {
		return nil, fmt.Errorf("%w: layout fault", utils.ErrRender)
	}
	return &document.Document{Bytes: []byte("%PDF-1.3 fake"), PageCount: 1}, nil
}

func (f *fakeTripService) ShareTrip(_ context.Context, tripID string, _ string) (*response_models.ShareResponse, error) {
	return &response_models.ShareResponse{Token: "tok", URL: "http://x/shared/tok"}, nil
}

func (f *fakeTripService) GetSharedTrip(_ context.Context, token string) (*response_models.TripResponse, error) {
	if token != "tok" {
		return nil, utils.ErrShareNotFound
	}
	return &response_models.TripResponse{ID: "trip-1"}, nil
}

func (f *fakeTripService) RenderSharedTripPDF(_ context.Context, token string) (*document.Document, error) {
	if token != "tok" {
		return nil, utils.ErrShareNotFound
	}
	return &document.Document{Bytes: []byte("%PDF-1.3 shared"), PageCount: 1}, nil
}

func newTestRouter(svc *fakeTripService, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	tc := NewTripController(svc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("trace_id", "trace-test")
		if userID != "" {
			c.Set("user_id", userID)
		}
	})
	r.GET("/healthz", Health)
	r.POST("/itineraries/generate", tc.GenerateItinerary)
	r.GET("/itineraries", tc.ListTrips)
	r.GET("/itineraries/:id", tc.GetTrip)
	r.DELETE("/itineraries/:id", tc.DeleteTrip)
	r.GET("/itineraries/:id/pdf", tc.DownloadTripPDF)
	r.POST("/itineraries/:id/share", tc.ShareTrip)
	r.GET("/shared/:token", tc.GetSharedTrip)
	r.GET("/shared/:token/pdf", tc.DownloadSharedTripPDF)
	return r
}

func do(r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, utils.APIResponse) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp utils.APIResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestGenerateItinerary(t *testing.T) {
	svc := &fakeTripService{}
	r := newTestRouter(svc, "user-1")

	w, resp := do(r, http.MethodPost, "/itineraries/generate",
		`{"destination": "Paris", "duration": 3, "peopleCount": 2, "budget": 60000, "currency": "INR"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "trace-test", resp.TraceID)
	assert.Equal(t, "Paris", svc.lastReq.Destination)
	assert.Equal(t, 60000.0, svc.lastReq.Budget)
	assert.Equal(t, "user-1", svc.lastOwner)
}

func TestGenerateItineraryBadBody(t *testing.T) {
	r := newTestRouter(&fakeTripService{}, "")

	for _, body := range []string{
		`{"destination": "Paris", "duration": 0, "peopleCount": 2, "budget": 60000}`,
		`{"destination": "Paris", "duration": 3, "peopleCount": 2, "budget": 50}`,
		`{"duration": 3, "peopleCount": 2, "budget": 60000}`,
		`not json`,
	} {
		w, resp := do(r, http.MethodPost, "/itineraries/generate", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "error", resp.Status, body)
	}
}

func TestGenerateItineraryServiceErrors(t *testing.T) {
	cases := map[error]int{
		fmt.Errorf("%w: destination cannot be purely numeric", utils.ErrInvalidDestination): http.StatusUnprocessableEntity,
		fmt.Errorf("%w (gave up after 3 attempts)", utils.ErrGeneration):                    http.StatusBadGateway,
	}
	for err, code := range cases {
		r := newTestRouter(&fakeTripService{generateErr: err}, "")
		w, _ := do(r, http.MethodPost, "/itineraries/generate",
			`{"destination": "42", "duration": 3, "peopleCount": 2, "budget": 60000}`)
		assert.Equal(t, code, w.Code, err.Error())
	}
}

func TestListTripsPaging(t *testing.T) {
	svc := &fakeTripService{}
	r := newTestRouter(svc, "user-1")

	w, _ := do(r, http.MethodGet, "/itineraries", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [2]int{1, 10}, svc.lastPage)

	w, _ = do(r, http.MethodGet, "/itineraries?page=3&pageSize=25", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, [2]int{3, 25}, svc.lastPage)

	w, _ = do(r, http.MethodGet, "/itineraries?pageSize=500", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTripAndShare(t *testing.T) {
	r := newTestRouter(&fakeTripService{}, "")

	w, _ := do(r, http.MethodGet, "/itineraries/trip-1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(r, http.MethodGet, "/itineraries/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, resp := do(r, http.MethodPost, "/itineraries/trip-1/share", "")
	assert.Equal(t, http.StatusCreated, w.Code)
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "tok", data["token"])

	w, _ = do(r, http.MethodGet, "/shared/tok", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(r, http.MethodGet, "/shared/expired", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTrip(t *testing.T) {
	w, _ := do(newTestRouter(&fakeTripService{}, "intruder"), http.MethodDelete, "/itineraries/trip-1", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(newTestRouter(&fakeTripService{}, "owner"), http.MethodDelete, "/itineraries/trip-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDownloadTripPDF(t *testing.T) {
	r := newTestRouter(&fakeTripService{}, "")

	w, _ := do(r, http.MethodGet, "/itineraries/trip-1/pdf", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary-trip-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF-"))

	w, resp := do(r, http.MethodGet, "/itineraries/broken/pdf", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestDownloadSharedTripPDF(t *testing.T) {
	r := newTestRouter(&fakeTripService{}, "")

	w, _ := do(r, http.MethodGet, "/shared/tok/pdf", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary-tok.pdf"`, w.Header().Get("Content-Disposition"))

	w, resp := do(r, http.MethodGet, "/shared/expired/pdf", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", resp.Status)
}

func TestHealth(t *testing.T) {
	w, resp := do(newTestRouter(&fakeTripService{}, ""), http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp.Status)
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "itinerary-abc-123.pdf", pdfFileName("abc-123"))
	assert.Equal(t, "itinerary-a-b.pdf", pdfFileName("../a/b"))
	assert.Equal(t, "itinerary-trip.pdf", pdfFileName("//"))
}
