package endpoint

import (
	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/util"
)

// Curated fallback markers, used until a real facility directory is wired
// in. Centered on Chennai like the rest of the demo content.
var defaultMarkers = []model.LocationMarker{
	{ID: "loc-1", Name: "Apollo Hospital", Type: "HOSPITAL", Address: "Greams Road, Chennai", Lat: 13.0604, Lng: 80.2496},
	{ID: "loc-2", Name: "Fortis Malar Hospital", Type: "HOSPITAL", Address: "Adyar, Chennai", Lat: 13.0067, Lng: 80.2572},
	{ID: "loc-3", Name: "MedPlus Pharmacy", Type: "PHARMACY", Address: "T. Nagar, Chennai", Lat: 13.0418, Lng: 80.2341},
	{ID: "loc-4", Name: "Apollo Pharmacy", Type: "PHARMACY", Address: "Anna Nagar, Chennai", Lat: 13.0850, Lng: 80.2101},
}

type LocationsResponse struct {
	Country string                 `json:"country,omitempty" example:"India"`
	Markers []model.LocationMarker `json:"markers"`
}

// GetLocations godoc
// @Summary      Nearby hospitals and pharmacies
// @Description  Return facility markers, with the caller's country resolved from their IP when possible
// @Tags         Locations
// @Produce      json
// @Success      200 {object} util.APIResponse{data=LocationsResponse}
// @Router       /locations [get]
func GetLocations(c *gin.Context) {
	_, country := util.GetIPLocation(c.ClientIP())
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "OK",
		Data: LocationsResponse{Country: country, Markers: defaultMarkers},
	})
}
