package endpoint

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/hgapps/medicare-api/middleware"
	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/store"
	"github.com/hgapps/medicare-api/util"
)

type SignupRequest struct {
	Username        string `json:"username" binding:"required" example:"John Doe"`
	Email           string `json:"email" binding:"required,email" example:"john@example.com"`
	Password        string `json:"password" binding:"required" example:"secret123"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" example:"secret123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"john@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

type LoginResponse struct {
	Token string     `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	User  model.User `json:"user"`
}

// Signup godoc
// @Summary      Register a new account
// @Description  Create an account in the registered-users record and log the user in
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body SignupRequest true "Signup details"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Signup successful"
// @Failure      400 {object} util.APIResponse "Invalid request payload"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /auth/signup [post]
func Signup(c *gin.Context) {
	var req SignupRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	if !validateSignup(c, req) {
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	user, err := st.RegisterUser(req.Username, req.Email, req.Password)
	if errors.Is(err, store.ErrEmailExists) {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "An account with this email already exists",
			Err: err,
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to register account", Err: err})
		return
	}

	finalizeLogin(c, st, user, util.EventSignupSuccess, "account created")
}

func validateSignup(c *gin.Context, req SignupRequest) bool {
	if len(req.Password) < 6 {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Password must be at least 6 characters",
			Err: fmt.Errorf("password too short"),
		})
		return false
	}
	if req.Password != req.ConfirmPassword {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Passwords do not match",
			Err: fmt.Errorf("password confirmation mismatch"),
		})
		return false
	}
	return true
}

// Login godoc
// @Summary      User login
// @Description  Authenticate against the registered-users record and start a session
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200 {object} util.APIResponse{data=LoginResponse} "Login successful"
// @Failure      400 {object} util.APIResponse "Invalid email or password"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}

	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	user, err := st.Authenticate(req.Email, req.Password)
	if errors.Is(err, store.ErrNoAccounts) || errors.Is(err, store.ErrInvalidCredentials) {
		util.LogLoginFailure(req.Email, c.ClientIP(), c.Request.UserAgent(), err.Error())
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid email or password",
			Err: fmt.Errorf("invalid credentials"),
		})
		return
	}
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Login failed", Err: err})
		return
	}

	finalizeLogin(c, st, user, util.EventLoginSuccess, "login successful")
}

func finalizeLogin(c *gin.Context, st *store.Store, user model.User, event util.EventType, msg string) {
	token, err := util.IssueToken(user.ID, user.Username, user.Email)
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to issue session token", Err: err})
		return
	}
	if err := st.Login(user); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to persist session", Err: err})
		return
	}
	// Token bookkeeping in Redis is best-effort.
	_ = util.AddSessionToUserSet(user.ID, token)

	util.LogEvent(util.Event{
		EventType: event,
		UserID:    user.ID,
		Email:     user.Email,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Message:   msg,
	})

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "OK",
		Data: LoginResponse{Token: token, User: user},
	})
}

// Logout godoc
// @Summary      End the current session
// @Description  Clear the stored session and revoke the presented token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} util.APIResponse "Logout successful"
// @Failure      401 {object} util.APIResponse "Not authenticated"
// @Router       /auth/logout [post]
func Logout(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	userID, _ := middleware.GetUserID(c)
	email, _ := middleware.GetUserEmail(c)

	if err := st.Logout(); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to clear session", Err: err})
		return
	}
	if token := c.GetHeader("session-token"); token != "" && userID != "" {
		_ = util.RemoveSessionTokenFromUserSet(userID, token)
	}

	util.LogEvent(util.Event{
		EventType: util.EventLogout,
		UserID:    userID,
		Email:     email,
		IP:        c.ClientIP(),
		Message:   "logout",
	})

	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Logged out"})
}

// CurrentSession godoc
// @Summary      Current session
// @Description  Return the stored session user, if any
// @Tags         Authentication
// @Produce      json
// @Success      200 {object} util.APIResponse{data=model.User} "Current user or null"
// @Router       /auth/session [get]
func CurrentSession(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}

	user := st.CurrentSession()
	if user == nil {
		util.CallSuccessOK(c, util.APISuccessParams{Msg: "No active session", Data: nil})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "OK", Data: user})
}
