package endpoint_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/model"
)

func TestGeneratePlanSavesActiveAndHistory(t *testing.T) {
	r, st := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/plans/generate",
		body: map[string]interface{}{
			"patientName": "John Doe",
			"age":         42,
			"gender":      "male",
			"symptoms":    "Fever, headache",
		},
	})
	require.Equal(t, http.StatusOK, rr.Code, "generate failed: %s", rr.Body.String())

	var plan model.TreatmentPlan
	decodeData(t, resp, &plan)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "John Doe", plan.PatientName)
	assert.NotEmpty(t, plan.GeneratedPlan.Medicines, "demo-mode plan still carries medicines")

	active := st.ActivePlan()
	require.NotNil(t, active, "generated plan becomes the active plan")
	assert.Equal(t, plan.ID, active.ID)

	history := st.LoadHistory(model.GuestKey)
	require.Len(t, history, 1, "generated plan is recorded in guest history")
	assert.Equal(t, plan.ID, history[0].ID)
}

func TestGeneratePlanValidation(t *testing.T) {
	r, _ := SetupTestServer(t)

	// Missing required fields.
	rr, _ := doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/plans/generate",
		body: map[string]interface{}{"patientName": "John Doe"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Invalid image payload.
	rr, _ = doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/plans/generate",
		body: map[string]interface{}{
			"patientName": "John Doe",
			"age":         42,
			"symptoms":    "Fever",
			"image":       "not!!base64",
		},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSavePlanUpsertsHistory(t *testing.T) {
	r, st := SetupTestServer(t)

	plan := model.TreatmentPlan{
		ID:          "p1",
		PatientName: "John Doe",
		CreatedAt:   time.Now(),
	}

	rr, _ := doRequest(t, r, requestParams{method: http.MethodPost, path: "/plans", body: plan})
	require.Equal(t, http.StatusOK, rr.Code)

	// Saving the same id again replaces, not duplicates.
	plan.PatientName = "John Doe Updated"
	rr, _ = doRequest(t, r, requestParams{method: http.MethodPost, path: "/plans", body: plan})
	require.Equal(t, http.StatusOK, rr.Code)

	history := st.LoadHistory(model.GuestKey)
	require.Len(t, history, 1)
	assert.Equal(t, "John Doe Updated", history[0].PatientName)

	// A plan without an id is rejected.
	rr, _ = doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/plans",
		body: model.TreatmentPlan{PatientName: "No ID"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHistoryFollowsSessionIdentity(t *testing.T) {
	r, st := SetupTestServer(t)

	// Guest saves a plan.
	doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/plans",
		body: model.TreatmentPlan{ID: "guest-plan", PatientName: "Guest"},
	})

	// A logged-in user gets their own namespace.
	require.NoError(t, st.Login(model.User{ID: "u1", Username: "John", Email: "john@example.com"}))
	doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/plans",
		body: model.TreatmentPlan{ID: "john-plan", PatientName: "John"},
	})

	rr, resp := doRequest(t, r, requestParams{method: http.MethodGet, path: "/plans/history"})
	require.Equal(t, http.StatusOK, rr.Code)

	var history []model.TreatmentPlan
	decodeData(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "john-plan", history[0].ID)

	assert.Len(t, st.LoadHistory(model.GuestKey), 1)
}

func TestGetActivePlanEmpty(t *testing.T) {
	r, _ := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{method: http.MethodGet, path: "/plans/active"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, resp.Data)
}
