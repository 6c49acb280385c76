package api

import (
	"crypto_bot/internal/command" // Command processor
	"net/http"                    // HTTP status codes

	"github.com/gin-gonic/gin"                   // Gin web framework
	"github.com/line/line-bot-sdk-go/v7/linebot" // LINE messaging SDK
	"github.com/sirupsen/logrus"                 // Logging library
)

// WebhookHandler receives LINE webhook deliveries and answers each text event
// with exactly one reply. The platform treats any non-200 as a delivery
// failure and redelivers the whole batch, so once the events have been
// attempted the response is always 200.
func WebhookHandler(bot *linebot.Client, proc *command.Processor) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Signature validation and event decoding are the SDK's job
		events, err := bot.ParseRequest(c.Request)
		if err != nil {
			if err == linebot.ErrInvalidSignature {
				// Forged or mis-signed request, reject before touching any event
				c.Status(http.StatusBadRequest)
			} else {
				c.Status(http.StatusInternalServerError)
			}
			return
		}
		// Events are processed strictly in delivery order; one failing event
		// never aborts the rest of the batch
		for _, event := range events {
			if event.Type != linebot.EventTypeMessage || event.Source == nil {
				continue // Only message events carry commands
			}
			msg, ok := event.Message.(*linebot.TextMessage)
			if !ok {
				continue // Stickers, images and the rest are ignored without reply
			}
			reply, err := proc.Handle(c.Request.Context(), event.Source.UserID, msg.Text)
			if err != nil {
				// Internal fault: log it and still answer the user
				logrus.WithFields(logrus.Fields{
					"user_id": event.Source.UserID, // User identifier
					"error":   err.Error(),         // Error message
				}).Error("Event handling failed")
				reply = command.MsgInternal
			}
			// Address the reply with the event's one-time reply token
			if _, err := bot.ReplyMessage(event.ReplyToken, linebot.NewTextMessage(reply)).Do(); err != nil {
				logrus.WithFields(logrus.Fields{
					"user_id": event.Source.UserID, // User identifier
					"error":   err.Error(),         // Error message
				}).Error("Reply failed")
			}
		}
		c.Status(http.StatusOK) // Batch attempted, success by platform contract
	}
}
