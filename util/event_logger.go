package util

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/hgapps/medicare-api/model"
)

// EventType represents different types of application events
type EventType string

const (
	EventLoginSuccess      EventType = "LOGIN_SUCCESS"
	EventLoginFailure      EventType = "LOGIN_FAILURE"
	EventSignupSuccess     EventType = "SIGNUP_SUCCESS"
	EventLogout            EventType = "LOGOUT"
	EventAlertFired        EventType = "ALERT_FIRED"
	EventPlanGenerated     EventType = "PLAN_GENERATED"
	EventPlanSaved         EventType = "PLAN_SAVED"
	EventRateLimitExceeded EventType = "RATE_LIMIT_EXCEEDED"
	EventSuspicious        EventType = "SUSPICIOUS_ACTIVITY"
	EventEndpointCall      EventType = "ENDPOINT_CALL"
)

// Event represents an application event to be logged
type Event struct {
	EventType EventType
	UserID    string
	Email     string
	IP        string
	UserAgent string
	Message   string
	Details   map[string]interface{}
}

var eventLogger *log.Logger
var eventDB *gorm.DB

// SetEventLoggerDB sets a gorm DB instance used by the event logger. Call
// this during startup after DB initialization so events persist to the
// EventLog table.
func SetEventLoggerDB(db *gorm.DB) {
	eventDB = db
}

func init() {
	eventLogger = log.New(os.Stdout, "[EVENT] ", log.LstdFlags|log.Lmsgprefix)
}

// sanitizeLogValue removes newlines and other characters that could break log parsing
func sanitizeLogValue(value string) string {
	value = strings.ReplaceAll(value, "\n", " ")
	value = strings.ReplaceAll(value, "\r", " ")
	value = strings.ReplaceAll(value, "\t", " ")
	if len(value) > 200 {
		value = value[:200] + "..."
	}
	return value
}

// LogEvent logs an application event to stdout and, best-effort, to the
// database. A failed persist never fails the calling operation.
func LogEvent(event Event) {
	msg := fmt.Sprintf("Event=%s UserID=%s Email=%s IP=%s UserAgent=%s Message=%s",
		sanitizeLogValue(string(event.EventType)),
		sanitizeLogValue(event.UserID),
		sanitizeLogValue(event.Email),
		sanitizeLogValue(event.IP),
		sanitizeLogValue(event.UserAgent),
		sanitizeLogValue(event.Message),
	)
	if len(event.Details) > 0 {
		msg = fmt.Sprintf("%s DetailsCount=%d", msg, len(event.Details))
	}
	eventLogger.Println(msg)

	if eventDB == nil {
		return
	}

	var details datatypes.JSON
	if len(event.Details) > 0 {
		if b, err := json.Marshal(event.Details); err == nil {
			details = b
		}
	}

	city, country := GetIPLocation(event.IP)
	location := ""
	if city != "" || country != "" {
		location = fmt.Sprintf("%s/%s", city, country)
	}

	rec := model.EventLog{
		EventType: string(event.EventType),
		UserID:    event.UserID,
		Email:     event.Email,
		IP:        event.IP,
		Location:  location,
		UserAgent: event.UserAgent,
		Message:   event.Message,
		Details:   details,
	}
	if err := eventDB.Create(&rec).Error; err != nil {
		eventLogger.Printf("failed to persist event: %v", err)
	}
}

// LogLoginFailure records a failed credential check.
func LogLoginFailure(email, ip, agent, reason string) {
	LogEvent(Event{
		EventType: EventLoginFailure,
		Email:     email,
		IP:        ip,
		UserAgent: agent,
		Message:   reason,
	})
}

// LogRateLimitExceeded records a throttled request.
func LogRateLimitExceeded(email, ip, endpoint string) {
	LogEvent(Event{
		EventType: EventRateLimitExceeded,
		Email:     email,
		IP:        ip,
		Message:   fmt.Sprintf("rate limit exceeded on %s", endpoint),
	})
}

// LogAlertFired records one reminder alert emission.
func LogAlertFired(reminderID, name, timeStr string) {
	LogEvent(Event{
		EventType: EventAlertFired,
		Message:   fmt.Sprintf("reminder %s fired for %s at %s", reminderID, name, timeStr),
		Details: map[string]interface{}{
			"reminder_id": reminderID,
			"name":        name,
			"time":        timeStr,
		},
	})
}
