package endpoint

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hgapps/medicare-api/genai"
	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/util"
)

type GeneratePlanRequest struct {
	PatientName string `json:"patientName" binding:"required" example:"John Doe"`
	Age         int    `json:"age" binding:"required" example:"42"`
	Gender      string `json:"gender" example:"male"`
	History     string `json:"history" example:"Hypertension"`
	Symptoms    string `json:"symptoms" binding:"required" example:"Fever, headache"`
	Medications string `json:"medications" example:"Amlodipine"`
	// Image is an optional base64-encoded attachment (e.g. a prescription
	// photo) forwarded to the generation service.
	Image         string `json:"image,omitempty"`
	ImageMIMEType string `json:"imageMimeType,omitempty" example:"image/jpeg"`
}

// GeneratePlan godoc
// @Summary      Generate a treatment plan
// @Description  Produce a structured plan from patient details, save it as the active plan, and record it in history
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body GeneratePlanRequest true "Patient details"
// @Success      200 {object} util.APIResponse{data=model.TreatmentPlan}
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      503 {object} util.APIResponse "Generation unavailable"
// @Router       /plans/generate [post]
func GeneratePlan(c *gin.Context) {
	var req GeneratePlanRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
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

	image, err := decodeImage(req.Image, req.ImageMIMEType)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid image attachment", Err: err})
		return
	}

	generated, err := client.GeneratePlan(c.Request.Context(), genai.PlanRequest{
		Name:        req.PatientName,
		Age:         req.Age,
		Gender:      req.Gender,
		History:     req.History,
		Symptoms:    req.Symptoms,
		Medications: req.Medications,
		Language:    st.Language(),
		Image:       image,
	})
	if err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{
			Msg: "Plan generation failed",
			Err: err,
		})
		return
	}

	plan := model.TreatmentPlan{
		ID:            uuid.NewString(),
		PatientName:   req.PatientName,
		Age:           req.Age,
		Gender:        req.Gender,
		History:       req.History,
		Symptoms:      req.Symptoms,
		Medications:   req.Medications,
		GeneratedPlan: generated,
		CreatedAt:     time.Now(),
	}

	if err := st.SaveActivePlan(plan); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save active plan", Err: err})
		return
	}
	userKey := requestUserKey(c, st)
	if err := st.AppendOrReplaceHistory(userKey, plan); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record plan history", Err: err})
		return
	}

	util.LogEvent(util.Event{
		EventType: util.EventPlanGenerated,
		Email:     userKey,
		IP:        c.ClientIP(),
		Message:   fmt.Sprintf("plan %s generated for %s", plan.ID, plan.PatientName),
	})

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Plan generated", Data: plan})
}

func decodeImage(data, mimeType string) (*genai.ImageAttachment, error) {
	if data == "" {
		return nil, nil
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("image is not valid base64: %w", err)
	}
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return &genai.ImageAttachment{MIMEType: mimeType, Data: raw}, nil
}

// SavePlan godoc
// @Summary      Save a plan to history
// @Description  Insert the plan into the caller's history, replacing in place when the ID already exists
// @Tags         Plans
// @Accept       json
// @Produce      json
// @Param        request body model.TreatmentPlan true "Plan to save"
// @Success      200 {object} util.APIResponse
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Router       /plans [post]
func SavePlan(c *gin.Context) {
	var plan model.TreatmentPlan
	if !bindJSONOrRespond(c, &plan, "Invalid request payload") {
		return
	}
	if plan.ID == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Plan ID is required",
			Err: fmt.Errorf("missing plan id"),
		})
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	userKey := requestUserKey(c, st)
	if err := st.AppendOrReplaceHistory(userKey, plan); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save plan", Err: err})
		return
	}

	util.LogEvent(util.Event{
		EventType: util.EventPlanSaved,
		Email:     userKey,
		IP:        c.ClientIP(),
		Message:   fmt.Sprintf("plan %s saved", plan.ID),
	})

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Plan saved"})
}

// GetHistory godoc
// @Summary      Plan history
// @Description  Return the caller's saved plans, newest first
// @Tags         Plans
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.TreatmentPlan}
// @Router       /plans/history [get]
func GetHistory(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	history := st.LoadHistory(requestUserKey(c, st))
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: history})
}

// GetActivePlan godoc
// @Summary      Active plan
// @Description  Return the plan currently driving reminders, if any
// @Tags         Plans
// @Produce      json
// @Success      200 {object} util.APIResponse{data=model.TreatmentPlan}
// @Router       /plans/active [get]
func GetActivePlan(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	plan := st.ActivePlan()
	if plan == nil {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "No active plan", Data: nil})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: plan})
}
