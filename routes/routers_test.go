package routes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotelmate/config"
	"hotelmate/models"
	"hotelmate/services"
	"hotelmate/services/logger"

	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

var testSecret = []byte("test-secret")

type envelope struct {
	Code  int             `json:"code"`
	Mess  string          `json:"mess"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Total int             `json:"total"`
}

func fp(v float64) *float64 { return &v }

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.OpenSQLite(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	row := models.HotelRate{Date: "2025-03-01", DefaultRate: 100}
	_ = row.SetPax(1, fp(80))
	_ = row.SetPax(2, fp(100))
	db.Create(&models.RatePlan{HotelCode: "HTL", RoomTypeID: 101, MealPlan: "BB", CurrencyCode: "USD",
		SellMode: "Per Person", RateMode: "Auto", PrimaryOccupancy: 2, HotelRates: []models.HotelRate{row}})
	db.Create(&models.RatePlan{HotelCode: "HTL", RoomTypeID: 102, MealPlan: "RO", CurrencyCode: "USD",
		SellMode: "Per Room", RateMode: "Manual", PrimaryOccupancy: 2,
		HotelRates: []models.HotelRate{{Date: "2025-03-01", DefaultRate: 50}}})
	db.Create(&[]models.RoomAvailability{
		{HotelCode: "HTL", RoomTypeID: 101, RoomType: "Deluxe", Date: "2025-03-01", Count: 3},
		{HotelCode: "HTL", RoomTypeID: 102, RoomType: "Standard", Date: "2025-03-01", Count: 6},
	})

	log := logger.NewLogger(logger.ErrorLevel, io.Discard)
	svc := services.NewRateGridService(services.RateGridServiceOptions{DB: db, Logger: log})

	router := gin.New()
	SetupRoutes(router, Deps{Grid: svc, JWTSecret: testSecret, Logger: log})
	return router
}

func token(t *testing.T, hotelCode string) string {
	t.Helper()
	tok, err := services.NewToken(services.TokenInfo{UserID: 1, Role: 2, HotelCode: hotelCode}, testSecret)
	if err != nil {
		t.Fatalf("NewToken: %v", err)
	}
	return "Bearer " + tok
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v (%s)", err, w.Body.String())
		}
	}
	return w, env
}

func roomCount(t *testing.T, env envelope) int {
	t.Helper()
	var rooms []map[string]interface{}
	if err := json.Unmarshal(env.Data, &rooms); err != nil {
		t.Fatalf("decode rooms: %v", err)
	}
	return len(rooms)
}

func TestPing(t *testing.T) {
	router := setupRouter(t)
	w, _ := do(t, router, http.MethodGet, "/ping", nil, nil)
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("unexpected ping response %d %s", w.Code, w.Body.String())
	}
}

func TestGetRateGrid(t *testing.T) {
	router := setupRouter(t)
	const path = "/api/v1/rateGrid?from=2025-03-01&to=2025-03-01"

	w, _ := do(t, router, http.MethodGet, path, nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without hotel, got %d", w.Code)
	}

	w, env := do(t, router, http.MethodGet, path, nil, map[string]string{"X-Hotel-Code": "HTL"})
	if w.Code != http.StatusOK || env.Code != 1 {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Session-ID") == "" {
		t.Error("session id header should be set")
	}
	if roomCount(t, env) != 2 {
		t.Fatalf("expected 2 rooms: %s", env.Data)
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/rateGrid?from=2025-03-05&to=2025-03-01", nil, map[string]string{"X-Hotel-Code": "HTL"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed range, got %d", w.Code)
	}
}

func TestRateGridRemembersSessionFilters(t *testing.T) {
	router := setupRouter(t)
	headers := map[string]string{"X-Hotel-Code": "HTL", "X-Session-ID": "s1"}
	const path = "/api/v1/rateGrid?from=2025-03-01&to=2025-03-01"

	_, env := do(t, router, http.MethodGet, path+"&roomType=standard", nil, headers)
	if roomCount(t, env) != 1 {
		t.Fatalf("filter not applied: %s", env.Data)
	}

	_, env = do(t, router, http.MethodGet, path, nil, headers)
	if roomCount(t, env) != 1 {
		t.Fatalf("session filter not remembered: %s", env.Data)
	}

	_, env = do(t, router, http.MethodGet, path, nil, map[string]string{"X-Hotel-Code": "HTL", "X-Session-ID": "s2"})
	if roomCount(t, env) != 2 {
		t.Fatalf("filters leaked to another session: %s", env.Data)
	}

	_, env = do(t, router, http.MethodGet, path+"&reset=1", nil, headers)
	if roomCount(t, env) != 2 {
		t.Fatalf("reset should clear filters: %s", env.Data)
	}
}

func TestOverrideRate(t *testing.T) {
	router := setupRouter(t)
	const path = "/api/v1/rateGrid/override"
	body := map[string]interface{}{
		"roomTypeID": 101,
		"planKey":    "BB__rc_NA",
		"dateFrom":   "2025-03-01",
		"dateTo":     "2025-03-01",
		"occupancy":  2,
		"value":      120,
		"mode":       "set",
	}

	w, _ := do(t, router, http.MethodPost, path, body, map[string]string{"X-Hotel-Code": "HTL"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	w, _ = do(t, router, http.MethodPost, path, body, map[string]string{"X-Hotel-Code": "HTL", "Authorization": token(t, "OTHER")})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for other hotel token, got %d", w.Code)
	}

	w, env := do(t, router, http.MethodPost, path, body, map[string]string{"Authorization": token(t, "HTL")})
	if w.Code != http.StatusOK || env.Code != 1 {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
	var payloads []map[string]interface{}
	if err := json.Unmarshal(env.Data, &payloads); err != nil || len(payloads) != 1 {
		t.Fatalf("decode payloads: %v (%s)", err, env.Data)
	}
	payload := payloads[0]
	if payload["pax2"] != 120.0 || payload["pax1"] != 80.0 || payload["defaultRate"] != 120.0 {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if _, ok := payload["pax18"]; !ok {
		t.Fatal("payload must carry all 18 pax keys")
	}

	body["occupancy"] = 1
	w, _ = do(t, router, http.MethodPost, path, body, map[string]string{"Authorization": token(t, "HTL")})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for derived cell, got %d", w.Code)
	}
}

func TestRatePlanAndAvailabilityRoutes(t *testing.T) {
	router := setupRouter(t)
	hotel := map[string]string{"X-Hotel-Code": "HTL"}

	w, env := do(t, router, http.MethodGet, "/api/v1/ratePlans?from=2025-03-01&to=2025-03-01", nil, hotel)
	if w.Code != http.StatusOK || env.Total != 2 {
		t.Fatalf("unexpected rate plans response %d %s", w.Code, w.Body.String())
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/ratePlans/abc", nil, hotel)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad id, got %d", w.Code)
	}

	w, _ = do(t, router, http.MethodGet, "/api/v1/ratePlans/999", nil, hotel)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown plan, got %d", w.Code)
	}

	update := map[string]interface{}{"items": []map[string]interface{}{
		{"roomTypeID": 101, "roomType": "Deluxe", "date": "2025-03-01", "count": 1},
	}}
	w, _ = do(t, router, http.MethodPut, "/api/v1/availability", update, map[string]string{"Authorization": token(t, "HTL")})
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected availability update %d %s", w.Code, w.Body.String())
	}

	w, env = do(t, router, http.MethodGet, "/api/v1/availability?from=2025-03-01&to=2025-03-01", nil, hotel)
	if w.Code != http.StatusOK {
		t.Fatalf("unexpected availability response %d %s", w.Code, w.Body.String())
	}
	var records []struct {
		RoomTypeID   uint `json:"roomTypeID"`
		Availability []struct {
			Count int `json:"count"`
		} `json:"availability"`
	}
	if err := json.Unmarshal(env.Data, &records); err != nil {
		t.Fatalf("decode availability: %v", err)
	}
	if len(records) != 2 || records[0].Availability[0].Count != 1 {
		t.Fatalf("unexpected availability: %s", env.Data)
	}
}
