package endpoint_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hgapps/medicare-api/endpoint"
	"github.com/hgapps/medicare-api/model"
)

func TestPreferencesDefaults(t *testing.T) {
	r, _ := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{method: http.MethodGet, path: "/preferences"})
	require.Equal(t, http.StatusOK, rr.Code)

	var prefs endpoint.PreferencesResponse
	decodeData(t, resp, &prefs)
	assert.Equal(t, model.DefaultLanguage, prefs.Language)
	assert.Equal(t, model.DefaultTheme, prefs.Theme)
}

func TestUpdatePreferences(t *testing.T) {
	r, st := SetupTestServer(t)

	rr, resp := doRequest(t, r, requestParams{
		method: http.MethodPatch, path: "/preferences",
		body: map[string]string{"language": "ta", "theme": "light"},
	})
	require.Equal(t, http.StatusOK, rr.Code)

	var prefs endpoint.PreferencesResponse
	decodeData(t, resp, &prefs)
	assert.Equal(t, model.LanguageTamil, prefs.Language)
	assert.Equal(t, model.ThemeLight, prefs.Theme)

	assert.Equal(t, model.LanguageTamil, st.Language())

	// Partial update leaves the other preference alone.
	rr, resp = doRequest(t, r, requestParams{
		method: http.MethodPatch, path: "/preferences",
		body: map[string]string{"theme": "dark"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	decodeData(t, resp, &prefs)
	assert.Equal(t, model.LanguageTamil, prefs.Language)
	assert.Equal(t, model.ThemeDark, prefs.Theme)
}

func TestUpdatePreferencesRejectsUnknownValues(t *testing.T) {
	r, st := SetupTestServer(t)

	rr, _ := doRequest(t, r, requestParams{
		method: http.MethodPatch, path: "/preferences",
		body: map[string]string{"language": "fr"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, model.DefaultLanguage, st.Language())

	rr, _ = doRequest(t, r, requestParams{
		method: http.MethodPatch, path: "/preferences",
		body: map[string]string{"theme": "sepia"},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, model.DefaultTheme, st.Theme())
}
