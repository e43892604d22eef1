package endpoint_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/endpoint"
	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/reminder"
)

func TestCreateReminderValidatesTime(t *testing.T) {
	r, _ := SetupTestServer(t)

	for _, bad := range []string{"9:00", "24:00", "12:60", "noon"} {
		rr, _ := doRequest(t, r, requestParams{
			method: http.MethodPost, path: "/reminders",
			body: map[string]interface{}{"name": "Aspirin", "time": bad},
		})
		assert.Equal(t, http.StatusBadRequest, rr.Code, "time %q must be rejected", bad)
	}
}

func TestReminderListPartitionsByPeriod(t *testing.T) {
	r, st := SetupTestServer(t)

	for _, body := range []map[string]interface{}{
		{"name": "Aspirin", "dosage": "1 tablet", "time": "09:00", "alarmEnabled": true, "sound": "bell"},
		{"name": "Melatonin", "dosage": "1 tablet", "time": "22:00", "alarmEnabled": true},
		{"name": "Midnight Dose", "time": "00:00"},
	} {
		rr, _ := doRequest(t, r, requestParams{method: http.MethodPost, path: "/reminders", body: body})
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// An active plan contributes derived entries.
	require.NoError(t, st.SaveActivePlan(model.TreatmentPlan{
		ID: "p1",
		GeneratedPlan: model.GeneratedPlan{
			Medicines: []model.Medicine{
				{Name: "Paracetamol", Dosage: "500mg", Frequency: "Twice daily", Schedule: []string{"08:00", "20:00"}},
			},
		},
		CreatedAt: time.Now(),
	}))

	rr, resp := doRequest(t, r, requestParams{method: http.MethodGet, path: "/reminders"})
	require.Equal(t, http.StatusOK, rr.Code)

	var list endpoint.ReminderListResponse
	decodeData(t, resp, &list)

	morning := map[string]bool{}
	for _, v := range list.Morning {
		morning[v.Name] = true
		assert.Equal(t, model.PeriodAM, v.Period)
	}
	evening := map[string]bool{}
	for _, v := range list.Evening {
		evening[v.Name] = true
		assert.Equal(t, model.PeriodPM, v.Period)
	}

	assert.True(t, morning["Aspirin"])
	assert.True(t, morning["Midnight Dose"], "00:00 belongs to the AM bucket")
	assert.True(t, morning["Paracetamol"], "plan dose at 08:00 is AM")
	assert.True(t, evening["Melatonin"])
	assert.True(t, evening["Paracetamol"], "plan dose at 20:00 is PM")

	// Plan-derived entries carry synthetic ids and the default sound.
	for _, v := range append(list.Morning, list.Evening...) {
		if v.FromPlan {
			assert.Contains(t, v.ID, "plan-0-")
			assert.Equal(t, reminder.DefaultSoundKey, v.Sound)
		}
	}
}

func TestDeleteReminderIsIdempotent(t *testing.T) {
	r, _ := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/reminders",
		body: map[string]interface{}{"name": "Aspirin", "time": "09:00"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var created model.CustomReminder
	decodeData(t, resp, &created)
	require.NotEmpty(t, created.ID)

	path := fmt.Sprintf("/reminders/%s", created.ID)
	rr, _ = doRequest(t, r, requestParams{method: http.MethodDelete, path: path})
	assert.Equal(t, http.StatusOK, rr.Code)

	// Deleting again, or deleting an unknown id, still succeeds.
	rr, _ = doRequest(t, r, requestParams{method: http.MethodDelete, path: path})
	assert.Equal(t, http.StatusOK, rr.Code)
	rr, _ = doRequest(t, r, requestParams{method: http.MethodDelete, path: "/reminders/nope"})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestUnknownSoundFallsBackToDefault(t *testing.T) {
	r, _ := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{
		method: http.MethodPost, path: "/reminders",
		body: map[string]interface{}{"name": "Aspirin", "time": "09:00", "sound": "kazoo"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var created model.CustomReminder
	decodeData(t, resp, &created)
	assert.Equal(t, reminder.DefaultSoundKey, created.Sound)
}

func TestListSounds(t *testing.T) {
	r, _ := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{method: http.MethodGet, path: "/reminders/sounds"})
	require.Equal(t, http.StatusOK, rr.Code)

	var sounds []reminder.AlarmSound
	decodeData(t, resp, &sounds)
	assert.Len(t, sounds, 4)
}
