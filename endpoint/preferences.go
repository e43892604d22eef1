package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/util"
)

type PreferencesResponse struct {
	Language model.Language `json:"language" example:"en"`
	Theme    model.Theme    `json:"theme" example:"dark"`
}

type UpdatePreferencesRequest struct {
	Language *model.Language `json:"language,omitempty" example:"hi"`
	Theme    *model.Theme    `json:"theme,omitempty" example:"light"`
}

// GetPreferences godoc
// @Summary      Get UI preferences
// @Description  Return the stored language and theme, falling back to defaults
// @Tags         Preferences
// @Produce      json
// @Success      200 {object} util.APIResponse{data=PreferencesResponse}
// @Router       /preferences [get]
func GetPreferences(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "OK",
		Data: PreferencesResponse{Language: st.Language(), Theme: st.Theme()},
	})
}

// UpdatePreferences godoc
// @Summary      Update UI preferences
// @Description  Persist language and/or theme; unknown values are rejected
// @Tags         Preferences
// @Accept       json
// @Produce      json
// @Param        request body UpdatePreferencesRequest true "Preferences to update"
// @Success      200 {object} util.APIResponse{data=PreferencesResponse}
// @Failure      400 {object} util.APIResponse "Unknown language or theme"
// @Router       /preferences [patch]
func UpdatePreferences(c *gin.Context) {
	var req UpdatePreferencesRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	if req.Language != nil {
		if !req.Language.Valid() {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Unknown language",
				Err: fmt.Errorf("unsupported language %q", *req.Language),
			})
			return
		}
		if err := st.SetLanguage(*req.Language); err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save language", Err: err})
			return
		}
	}

	if req.Theme != nil {
		if !req.Theme.Valid() {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Unknown theme",
				Err: fmt.Errorf("unsupported theme %q", *req.Theme),
			})
			return
		}
		if err := st.SetTheme(*req.Theme); err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save theme", Err: err})
			return
		}
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Preferences updated",
		Data: PreferencesResponse{Language: st.Language(), Theme: st.Theme()},
	})
}
