package model

// Recognized medicine forms for the lookup classifier.
var MedicineForms = []string{
	"Tablet", "Capsule", "Syrup", "Injection", "Cream", "Ointment",
	"Drops", "Inhaler", "Gel", "Spray", "Powder", "Other",
}

// MedicineInfo is the structured result of a medicine lookup.
// @Description Medicine lookup result
type MedicineInfo struct {
	Name        string   `json:"name" example:"Paracetamol"`
	Type        string   `json:"type" example:"Tablet"`
	Uses        []string `json:"uses"`
	SideEffects []string `json:"sideEffects"`
	Dosage      string   `json:"dosage"`
	Warnings    []string `json:"warnings"`
	Substitutes []string `json:"substitutes,omitempty"`
}
