package model

// LocationMarker is a nearby hospital or pharmacy shown on the locations
// view. Markers are static demo data; only the country tag is derived from
// the caller's IP.
type LocationMarker struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Type    string  `json:"type" example:"HOSPITAL"` // HOSPITAL or PHARMACY
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}
