package endpoint

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/reminder"
	"github.com/hgapps/medicare-api/util"
)

type CreateReminderRequest struct {
	Name         string `json:"name" binding:"required" example:"Aspirin"`
	Dosage       string `json:"dosage" example:"1 tablet"`
	Time         string `json:"time" binding:"required" example:"09:00"`
	AlarmEnabled bool   `json:"alarmEnabled"`
	Notes        string `json:"notes"`
	Sound        string `json:"sound" example:"gentle"`
}

// ReminderView is one merged entry of the reminder list: either a custom
// reminder or a dose derived from the active plan's schedule.
type ReminderView struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Dosage       string       `json:"dosage"`
	Time         string       `json:"time"`
	Period       model.Period `json:"period" example:"AM"`
	AlarmEnabled bool         `json:"alarmEnabled"`
	Notes        string       `json:"notes,omitempty"`
	Sound        string       `json:"sound"`
	FromPlan     bool         `json:"fromPlan"`
	State        string       `json:"state" example:"ARMED"`
}

type ReminderListResponse struct {
	Morning []ReminderView `json:"morning"`
	Evening []ReminderView `json:"evening"`
}

// ListReminders godoc
// @Summary      List reminders
// @Description  Merge custom reminders with doses from the active plan, split into AM and PM buckets
// @Tags         Reminders
// @Produce      json
// @Success      200 {object} util.APIResponse{data=ReminderListResponse}
// @Router       /reminders [get]
func ListReminders(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	now := time.Now()
	engine := getReminderEngine()
	views := make([]ReminderView, 0)

	for _, r := range st.CustomReminders() {
		views = append(views, reminderView(r.ID, r.Name, r.Dosage, r.Time, r.AlarmEnabled, r.Notes, r.Sound, false, engine, now))
	}
	if plan := st.ActivePlan(); plan != nil {
		for i, med := range plan.GeneratedPlan.Medicines {
			for _, t := range med.Schedule {
				id := reminder.PlanReminderID(i, t)
				views = append(views, reminderView(id, med.Name, med.Dosage, t, true, med.Frequency, reminder.DefaultSoundKey, true, engine, now))
			}
		}
	}

	resp := ReminderListResponse{Morning: []ReminderView{}, Evening: []ReminderView{}}
	for _, v := range views {
		if v.Period == model.PeriodAM {
			resp.Morning = append(resp.Morning, v)
		} else {
			resp.Evening = append(resp.Evening, v)
		}
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: resp})
}

func reminderView(id, name, dosage, timeStr string, enabled bool, notes, sound string, fromPlan bool, engine *reminder.Engine, now time.Time) ReminderView {
	state := string(reminder.StateArmed)
	if engine != nil {
		state = string(engine.State(id, now))
	}
	// Unparseable times only happen for plan schedules the generator got
	// wrong; bucket those with the evening entries.
	period, err := model.ClockPeriod(timeStr)
	if err != nil {
		period = model.PeriodPM
	}
	return ReminderView{
		ID:           id,
		Name:         name,
		Dosage:       dosage,
		Time:         timeStr,
		Period:       period,
		AlarmEnabled: enabled,
		Notes:        notes,
		Sound:        reminder.ResolveSound(sound).Key,
		FromPlan:     fromPlan,
		State:        state,
	}
}

// CreateReminder godoc
// @Summary      Create a custom reminder
// @Description  Add a reminder with a strict 24h HH:MM time
// @Tags         Reminders
// @Accept       json
// @Produce      json
// @Param        request body CreateReminderRequest true "Reminder details"
// @Success      200 {object} util.APIResponse{data=model.CustomReminder}
// @Failure      400 {object} util.APIResponse "Invalid time or payload"
// @Router       /reminders [post]
func CreateReminder(c *gin.Context) {
	var req CreateReminderRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	if _, _, err := model.ParseClock(req.Time); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Time must be a 24h HH:MM value",
			Err: err,
		})
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	rem := model.CustomReminder{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Dosage:       req.Dosage,
		Time:         req.Time,
		AlarmEnabled: req.AlarmEnabled,
		Notes:        req.Notes,
		Sound:        reminder.ResolveSound(req.Sound).Key,
	}
	if err := st.AddCustomReminder(rem); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to save reminder", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Reminder created", Data: rem})
}

// DeleteReminder godoc
// @Summary      Delete a custom reminder
// @Description  Remove the reminder with the given ID; deleting an unknown ID succeeds
// @Tags         Reminders
// @Produce      json
// @Param        id path string true "Reminder ID"
// @Success      200 {object} util.APIResponse
// @Router       /reminders/{id} [delete]
func DeleteReminder(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Reminder ID is required",
			Err: fmt.Errorf("missing reminder id"),
		})
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	if err := st.DeleteCustomReminder(id); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete reminder", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Reminder deleted"})
}

// ListSounds godoc
// @Summary      Alarm sound library
// @Description  Return the fixed set of alarm sounds
// @Tags         Reminders
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]reminder.AlarmSound}
// @Router       /reminders/sounds [get]
func ListSounds(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: reminder.Sounds()})
}
