package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/hgapps/medicare-api/model"
)

// PlanRequest carries the patient form fields for plan generation.
type PlanRequest struct {
	Name        string
	Age         int
	Gender      string
	History     string
	Symptoms    string
	Medications string
	Language    model.Language
	Image       *ImageAttachment
}

var planSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"overview": {Type: genai.TypeString, Description: "A comprehensive medical overview of the condition based on symptoms and image."},
		"diet":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "List of dietary recommendations."},
		"medicines": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"name":      {Type: genai.TypeString},
					"dosage":    {Type: genai.TypeString},
					"frequency": {Type: genai.TypeString},
					"duration":  {Type: genai.TypeString},
					"schedule":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "Array of 24h times like '08:00', '20:00'"},
				},
				Required: []string{"name", "dosage", "frequency", "duration", "schedule"},
			},
		},
		"monitoring":   {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}, Description: "List of things to monitor."},
		"durationDays": {Type: genai.TypeInteger},
	},
	Required: []string{"overview", "diet", "medicines", "monitoring", "durationDays"},
}

// GeneratePlan produces the structured plan document for the given patient
// details. In demo mode a fixed placeholder plan is returned.
func (c *Client) GeneratePlan(ctx context.Context, req PlanRequest) (model.GeneratedPlan, error) {
	if c.Demo() {
		return demoPlan(), nil
	}

	target := req.Language.Name()
	prompt := fmt.Sprintf(`Generate a medical treatment plan for a patient.
Target Language: %s (IMPORTANT: ALL OUTPUT MUST BE IN %s).

Details:
- Name: %s
- Age: %d
- Gender: %s
- Medical History: %s
- Symptoms: %s
- Current Meds: %s

If an image is provided, analyze it (e.g., skin rash, wound, medical report) and incorporate findings into the 'overview' and 'medicines'.
Provide specific medicines with dosages and specific 'schedule' times (e.g. ["09:00", "21:00"]).
Ensure the tone is professional yet reassuring.`,
		target, target, req.Name, req.Age, req.Gender, req.History, req.Symptoms, req.Medications)

	system := fmt.Sprintf("You are an expert AI medical assistant. You analyze symptoms and images to suggest treatment plans. You must reply in %s.", target)

	var plan model.GeneratedPlan
	if err := c.generateJSON(ctx, planModel, prompt, system, planSchema, req.Image, &plan); err != nil {
		return model.GeneratedPlan{}, err
	}
	return plan, nil
}
