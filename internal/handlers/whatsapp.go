package handlers

import (
	"net/http"

	"github.com/sbilibin2017/zar-bot/internal/commands"
	"github.com/sbilibin2017/zar-bot/internal/formatters"
	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

// NewWhatsAppHandler handles messaging-webhook callbacks in Twilio format.
// @Summary WhatsApp webhook
// @Description Receives a form-encoded {Body, From} message and answers with a TwiML envelope wrapping one text message.
// @Tags whatsapp
// @Accept x-www-form-urlencoded
// @Produce xml
// @Param Body formData string true "Message text" default(USD ZAR 100)
// @Param From formData string false "Sender address" default(whatsapp:+27820000000)
// @Success 200 {string} string "TwiML response"
// @Failure 400 {string} string "Malformed form body"
// @Router /whatsapp [post]
func NewWhatsAppHandler(dispatcher IntentDispatcher, footer string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "malformed form body", http.StatusBadRequest)
			return
		}

		body := r.PostForm.Get("Body")
		logger.Log.Debugw("whatsapp message received",
			"from", r.PostForm.Get("From"),
			"body", body,
		)

		reply := dispatcher.Dispatch(r.Context(), models.ChannelWhatsApp, commands.ParseText(body))

		out, err := formatters.TwiML(formatters.Text(reply, footer))
		if err != nil {
			logger.Log.Errorw("failed to render twiml", "err", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", formatters.ContentTypeXML)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(out)
	}
}
