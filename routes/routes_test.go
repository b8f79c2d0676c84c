package routes

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/eco4-survey-crm/dto"
	"github.com/eco4-survey-crm/lib/realtime"
	"github.com/eco4-survey-crm/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open sqlite")

	// Every sqlite :memory: connection is a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Survey{}, &models.SurveyDetail{}, &models.User{}))

	hub := realtime.NewHub()
	router := gin.New()
	SetupRoutes(router, db, hub)
	return router, hub
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createSurvey(t *testing.T, router *gin.Engine, body string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/surveys", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.CreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ID)
	return resp.ID
}

func TestSurveyLifecycleEndToEnd(t *testing.T) {
	router, _ := newTestRouter(t)

	id := createSurvey(t, router, `{"customer_name":"A","property_address":"1 Road"}`)

	w := doJSON(t, router, http.MethodGet, "/api/surveys/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.SurveyWithDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "A", fetched.Survey.CustomerName)
	assert.Equal(t, models.StatusPending, fetched.Survey.Status)
	assert.NotNil(t, fetched.Details)
	assert.Empty(t, fetched.Details)

	w = doJSON(t, router, http.MethodDelete, "/api/surveys/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/surveys/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSurveyValidatesRequiredFields(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/surveys", `{"property_address":"1 Road"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/surveys", `{"customer_name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/surveys", `{"customer_name":"A","property_address":"1 Road","property_type":"castle"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateAndDeleteMissingSurveyReturnNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	body := `{"customer_name":"A","property_address":"1 Road","status":"pending"}`
	w := doJSON(t, router, http.MethodPut, "/api/surveys/missing", body)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/surveys/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/surveys/missing/details", `{"room_name":"Loft"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateSurveyOverwritesAllFields(t *testing.T) {
	router, _ := newTestRouter(t)

	id := createSurvey(t, router, `{"customer_name":"A","property_address":"1 Road","customer_email":"a@example.com"}`)

	body := `{"customer_name":"B","property_address":"2 Road","status":"in-progress"}`
	w := doJSON(t, router, http.MethodPut, "/api/surveys/"+id, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/surveys/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.SurveyWithDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "B", fetched.Survey.CustomerName)
	assert.Equal(t, "2 Road", fetched.Survey.PropertyAddress)
	assert.Equal(t, models.StatusInProgress, fetched.Survey.Status)
	assert.Empty(t, fetched.Survey.CustomerEmail, "omitted fields are overwritten as empty")
}

func TestAddSurveyDetailsReturnsThemOnFetch(t *testing.T) {
	router, _ := newTestRouter(t)

	id := createSurvey(t, router, `{"customer_name":"A","property_address":"1 Road"}`)

	for i := 0; i < 3; i++ {
		body := fmt.Sprintf(`{"room_name":"Room %d","estimated_cost":%d.5}`, i, 100*(i+1))
		w := doJSON(t, router, http.MethodPost, "/api/surveys/"+id+"/details", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	w := doJSON(t, router, http.MethodGet, "/api/surveys/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.SurveyWithDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Len(t, fetched.Details, 3)
}

func TestDashboardStatsMatchSurveyList(t *testing.T) {
	router, _ := newTestRouter(t)

	for i := 0; i < 6; i++ {
		createSurvey(t, router, fmt.Sprintf(`{"customer_name":"Customer %d","property_address":"%d Road"}`, i, i))
		time.Sleep(5 * time.Millisecond)
	}

	w := doJSON(t, router, http.MethodGet, "/api/surveys", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Survey
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	w = doJSON(t, router, http.MethodGet, "/api/dashboard", "")
	require.Equal(t, http.StatusOK, w.Code)
	var stats dto.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))

	assert.Equal(t, int64(len(list)), stats.TotalSurveys)

	var sum int64
	for _, sc := range stats.ByStatus {
		sum += sc.Count
	}
	assert.Equal(t, stats.TotalSurveys, sum)

	require.LessOrEqual(t, len(stats.RecentSurveys), 5)
	for i, survey := range stats.RecentSurveys {
		assert.Equal(t, list[i].ID, survey.ID, "recentSurveys must be a prefix of the list ordering")
	}
}

func TestEventStreamDeliversMutationEvents(t *testing.T) {
	router, _ := newTestRouter(t)

	server := httptest.NewServer(router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)

	// The preamble confirms the subscription is registered before we mutate
	preamble, err := reader.ReadString('\n')
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(preamble, ": connected"))

	id := createSurvey(t, router, `{"customer_name":"A","property_address":"1 Road"}`)

	lines := make(chan string, 8)
	go func() {
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				close(lines)
				return
			}
			lines <- strings.TrimRight(line, "\n")
		}
	}()

	var eventLine, dataLine string
	for eventLine == "" || dataLine == "" {
		select {
		case line, ok := <-lines:
			require.True(t, ok, "stream closed before event arrived")
			if strings.HasPrefix(line, "event: ") {
				eventLine = line
			} else if strings.HasPrefix(line, "data: ") {
				dataLine = line
			}
		case <-ctx.Done():
			t.Fatal("timed out waiting for survey_created event")
		}
	}

	assert.Equal(t, "event: "+realtime.EventSurveyCreated, eventLine)

	var event realtime.Event
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(dataLine, "data: ")), &event))
	assert.Equal(t, id, event.ID)
	assert.Equal(t, "New survey created", event.Message)
}
