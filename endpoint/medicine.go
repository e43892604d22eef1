package endpoint

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/util"
)

// LookupMedicine godoc
// @Summary      Medicine information
// @Description  Return structured details for a medicine name, classified into a known dosage form
// @Tags         Medicine
// @Produce      json
// @Param        name query string true "Medicine name"
// @Success      200 {object} util.APIResponse{data=model.MedicineInfo}
// @Failure      400 {object} util.APIResponse "Missing name"
// @Failure      503 {object} util.APIResponse "Lookup unavailable"
// @Router       /medicines [get]
func LookupMedicine(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Medicine name is required",
			Err: fmt.Errorf("missing name parameter"),
		})
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	client, ok := getGenAIOrRespond(c)
	if !ok {
		return
	}

	info, err := client.LookupMedicine(c.Request.Context(), name, st.Language())
	if err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: "Medicine lookup is unavailable", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: info})
}
