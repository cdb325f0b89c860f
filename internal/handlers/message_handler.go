package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/trainer-marketplace/internal/httperr"
	"github.com/BruksfildServices01/trainer-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/trainer-marketplace/internal/middleware"
	ucmessage "github.com/BruksfildServices01/trainer-marketplace/internal/usecase/message"
)

type MessageHandler struct {
	create *ucmessage.CreateMessage
	read   *ucmessage.MarkMessageRead
	list   *ucmessage.ListMessagesForUser
}

func NewMessageHandler(
	create *ucmessage.CreateMessage,
	read *ucmessage.MarkMessageRead,
	list *ucmessage.ListMessagesForUser,
) *MessageHandler {
	return &MessageHandler{
		create: create,
		read:   read,
		list:   list,
	}
}

// --------- Requests ---------

type MessageData struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Subject    string `json:"subject" binding:"max=150,nopersonaldata"`
	Message    string `json:"message" binding:"required,min=10,max=500,nopersonaldata"`
}

type MessageActionRequest struct {
	Action string `json:"action" binding:"required"`

	MessageData *MessageData `json:"messageData"`
	MessageID   string       `json:"messageId"`
}

// --------- Handlers ---------

func (h *MessageHandler) Post(c *gin.Context) {
	var req MessageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	switch req.Action {
	case "create":
		h.send(c, req.MessageData)
	case "mark_read":
		h.markRead(c, req.MessageID)
	default:
		httperr.BadRequest(c, "invalid_action", "Unknown action.")
	}
}

func (h *MessageHandler) send(c *gin.Context, data *MessageData) {
	if data == nil {
		httperr.BadRequest(c, "invalid_request", "messageData is required.")
		return
	}

	m, err := h.create.Execute(c.Request.Context(), ucmessage.CreateMessageInput{
		SenderID:   currentUserID(c),
		SenderName: c.GetString(middleware.ContextUserName),
		ReceiverID: data.ReceiverID,
		Subject:    data.Subject,
		Body:       data.Message,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": m})
}

func (h *MessageHandler) markRead(c *gin.Context, id string) {
	if id == "" {
		httperr.BadRequest(c, "invalid_request", "messageId is required.")
		return
	}

	m, err := h.read.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": m})
}

// List serves GET /messages?userId=&box=.
func (h *MessageHandler) List(c *gin.Context) {
	userID, ok := targetUser(c)
	if !ok {
		return
	}

	out, err := h.list.Execute(c.Request.Context(), userID, c.Query("box"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, "messages", out.Messages, gin.H{
		"box":    out.Box,
		"unread": out.Unread,
	})
}
