package endpoint_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/config"
	"github.com/hgapps/medicare-api/endpoint"
	"github.com/hgapps/medicare-api/genai"
	"github.com/hgapps/medicare-api/middleware"
	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/store"
	"github.com/hgapps/medicare-api/util"
)

// SetupTestServer initializes the in-memory DB, migrates the record table,
// installs a demo-mode generation client, and returns a router plus the
// backing store. Cleanup drops the tables.
func SetupTestServer(t *testing.T) (*gin.Engine, *store.Store) {
	db, err := config.ConnectDB()
	require.NoError(t, err, "failed to connect test DB")

	st := store.New(db)
	require.NoError(t, st.Migrate(), "migration failed")

	t.Cleanup(func() {
		if err := db.Migrator().DropTable(&model.StoreRecord{}); err != nil {
			t.Errorf("failed to drop tables during cleanup: %v", err)
		}
	})

	client, err := genai.NewClient(context.Background(), "")
	require.NoError(t, err)
	endpoint.SetGenAIClient(client)

	util.FlushNewsCache()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.DatabaseMiddleware(db, st))

	// Public routes
	r.POST("/auth/signup", endpoint.Signup)
	r.POST("/auth/login", endpoint.Login)
	r.GET("/auth/session", endpoint.CurrentSession)

	r.GET("/preferences", endpoint.GetPreferences)
	r.PATCH("/preferences", endpoint.UpdatePreferences)

	r.POST("/plans/generate", endpoint.GeneratePlan)
	r.POST("/plans", endpoint.SavePlan)
	r.GET("/plans/history", endpoint.GetHistory)
	r.GET("/plans/active", endpoint.GetActivePlan)

	r.GET("/reminders", endpoint.ListReminders)
	r.POST("/reminders", endpoint.CreateReminder)
	r.DELETE("/reminders/:id", endpoint.DeleteReminder)
	r.GET("/reminders/sounds", endpoint.ListSounds)

	r.POST("/chat", endpoint.SendChatMessage)
	r.GET("/chat", endpoint.GetChatTranscript)
	r.DELETE("/chat", endpoint.ClearChatTranscript)

	r.GET("/news", endpoint.GetNews)
	r.GET("/news/live", endpoint.GetLiveNews)
	r.GET("/medicines", endpoint.LookupMedicine)
	r.GET("/locations", endpoint.GetLocations)

	// Protected routes
	auth := r.Group("/")
	auth.Use(middleware.ValidateLoginToken())
	{
		auth.POST("/auth/logout", endpoint.Logout)
	}

	return r, st
}

// requestParams groups HTTP request parameters to reduce function arguments
type requestParams struct {
	method  string
	path    string
	body    interface{}
	headers map[string]string
}

// doRequest executes an HTTP request and returns the recorder plus the
// decoded API envelope.
func doRequest(t *testing.T, r http.Handler, params requestParams) (*httptest.ResponseRecorder, util.APIResponse) {
	var buf bytes.Buffer
	if params.body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(params.body))
	}

	req, err := http.NewRequest(params.method, params.path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range params.headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp util.APIResponse
	if rr.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "response was not JSON: %s", rr.Body.String())
	}
	return rr, resp
}

// decodeData re-marshals the envelope's data field into dst.
func decodeData(t *testing.T, resp util.APIResponse, dst interface{}) {
	raw, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, dst))
}
