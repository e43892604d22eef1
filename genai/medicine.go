package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/hgapps/medicare-api/model"
)

var medicineSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"name": {Type: genai.TypeString},
		"type": {
			Type:        genai.TypeString,
			Description: "The physical form of the medicine. Analyze the name and description. MUST be one of: 'Tablet', 'Capsule', 'Syrup', 'Injection', 'Cream', 'Ointment', 'Drops', 'Inhaler', 'Gel', 'Spray', 'Powder', 'Other'.",
		},
		"uses":        {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"sideEffects": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"dosage":      {Type: genai.TypeString},
		"warnings":    {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"substitutes": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"name", "type", "uses", "sideEffects", "dosage", "warnings"},
}

// LookupMedicine fetches structured information for a medicine by name. In
// demo mode the placeholder result classifies the form from keywords in the
// query, like the live prompt instructs the model to do.
func (c *Client) LookupMedicine(ctx context.Context, name string, lang model.Language) (model.MedicineInfo, error) {
	if c.Demo() {
		return demoMedicine(name), nil
	}

	prompt := fmt.Sprintf(`Provide detailed medical information for the medicine: %q.
Target Language: %s.

CRITICAL: Accurately classify the 'type' (form) of the medicine.
- If the name includes 'Gel' or 'Jel', classify as 'Gel'.
- If the name includes 'Cream', classify as 'Cream'.
- If the name includes 'Syrup', 'Suspension', or 'Liquid', classify as 'Syrup'.
- If the name includes 'Inhaler' or 'Respule', classify as 'Inhaler'.
- If the name includes 'Injection' or 'Vial', classify as 'Injection'.
- If the name includes 'Drops' (Eye/Ear), classify as 'Drops'.
- Otherwise, infer the most common form (e.g., Tablet or Capsule).

Ensure the information is accurate, professional, and easy to understand.`, name, lang.Name())

	var info model.MedicineInfo
	if err := c.generateJSON(ctx, lookupModel, prompt, "", medicineSchema, nil, &info); err != nil {
		return model.MedicineInfo{}, err
	}
	return info, nil
}
