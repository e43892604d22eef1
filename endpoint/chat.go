package endpoint

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hgapps/medicare-api/model"
	"github.com/hgapps/medicare-api/util"
)

type ChatRequest struct {
	Text string `json:"text" example:"What should I eat with a fever?"`
	// Image is an optional base64-encoded attachment.
	Image         string `json:"image,omitempty"`
	ImageMIMEType string `json:"imageMimeType,omitempty" example:"image/png"`
}

type ChatResponse struct {
	Reply      model.ChatMessage   `json:"reply"`
	Transcript []model.ChatMessage `json:"transcript"`
}

// SendChatMessage godoc
// @Summary      Send a chat message
// @Description  Append the user's message to the per-user transcript, ask the assistant, and append its reply
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        request body ChatRequest true "Message"
// @Success      200 {object} util.APIResponse{data=ChatResponse}
// @Failure      400 {object} util.APIResponse "Empty message"
// @Failure      503 {object} util.APIResponse "Assistant unavailable"
// @Router       /chat [post]
func SendChatMessage(c *gin.Context) {
	var req ChatRequest
	if !bindJSONOrRespond(c, &req, "Invalid request payload") {
		return
	}
	if req.Text == "" && req.Image == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Message text or image is required",
			Err: fmt.Errorf("empty message"),
		})
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

	userKey := requestUserKey(c, st)
	userMsg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleUser,
		Text:      req.Text,
		Timestamp: time.Now(),
	}
	if err := st.AppendMessage(userKey, userMsg); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record message", Err: err})
		return
	}

	replyText, err := client.Chat(c.Request.Context(), req.Text, image, st.Language())
	if err != nil {
		util.CallServiceUnavailable(c, util.APIErrorParams{Msg: "Assistant is unavailable", Err: err})
		return
	}

	reply := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.ChatRoleModel,
		Text:      replyText,
		Timestamp: time.Now(),
	}
	if err := st.AppendMessage(userKey, reply); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record reply", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "OK",
		Data: ChatResponse{Reply: reply, Transcript: st.LoadTranscript(userKey)},
	})
}

// GetChatTranscript godoc
// @Summary      Chat transcript
// @Description  Return the caller's transcript in insertion order
// @Tags         Chat
// @Produce      json
// @Success      200 {object} util.APIResponse{data=[]model.ChatMessage}
// @Router       /chat [get]
func GetChatTranscript(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "OK",
		Data: st.LoadTranscript(requestUserKey(c, st)),
	})
}

// ClearChatTranscript godoc
// @Summary      Clear chat transcript
// @Description  Delete the caller's transcript record
// @Tags         Chat
// @Produce      json
// @Success      200 {object} util.APIResponse
// @Router       /chat [delete]
func ClearChatTranscript(c *gin.Context) {
	st, ok := getStoreOrRespond(c)
	if !ok {
		return
	}
	if err := st.ClearTranscript(requestUserKey(c, st)); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to clear transcript", Err: err})
		return
	}
	util.CallSuccessOK(c, util.APISuccessParams{Msg: "Transcript cleared"})
}
