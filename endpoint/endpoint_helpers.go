package endpoint

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/genai"
	"github.com/hgapps/medicare-api/middleware"
	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/reminder"
	"github.com/hgapps/medicare-api/store"
	"github.com/hgapps/medicare-api/util"
)

var (
	genaiMu     sync.RWMutex
	genaiClient *genai.Client
)

// SetGenAIClient installs the shared content-generation client. Called once
// during startup, and by tests to swap in a demo-mode client.
func SetGenAIClient(c *genai.Client) {
	genaiMu.Lock()
	defer genaiMu.Unlock()
	genaiClient = c
}

var (
	engineMu       sync.RWMutex
	reminderEngine *reminder.Engine
)

// SetReminderEngine installs the shared reminder engine so handlers can
// report per-reminder state.
func SetReminderEngine(e *reminder.Engine) {
	engineMu.Lock()
	defer engineMu.Unlock()
	reminderEngine = e
}

func getReminderEngine() *reminder.Engine {
	engineMu.RLock()
	defer engineMu.RUnlock()
	return reminderEngine
}

func bindJSONOrRespond(c *gin.Context, dst interface{}, msg string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: msg, Err: err})
		return false
	}
	return true
}

func getStoreOrRespond(c *gin.Context) (*store.Store, bool) {
	st, err := middleware.GetStore(c)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Store not available", Err: err})
		return nil, false
	}
	return st, true
}

func getGenAIOrRespond(c *gin.Context) (*genai.Client, bool) {
	genaiMu.RLock()
	client := genaiClient
	genaiMu.RUnlock()
	if client == nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{
			Msg: "Content generation is not available",
			Err: fmt.Errorf("genai client not configured"),
		})
		return nil, false
	}
	return client, true
}

// requestUserKey resolves the per-user namespace for history and chat
// records: the authenticated token identity when present, otherwise the
// stored session, otherwise the guest bucket.
func requestUserKey(c *gin.Context, st *store.Store) string {
	if email, err := middleware.GetUserEmail(c); err == nil {
		return model.UserKey(email)
	}
	if user := st.CurrentSession(); user != nil {
		return model.UserKey(user.Email)
	}
	return model.GuestKey
}
