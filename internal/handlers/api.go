package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/zar-bot/internal/commands"
	"github.com/sbilibin2017/zar-bot/internal/formatters"
	"github.com/sbilibin2017/zar-bot/internal/logger"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

//go:generate mockgen -source=api.go -destination=mock_api_test.go -package=handlers

// IntentDispatcher executes a parsed intent.
type IntentDispatcher interface {
	Dispatch(ctx context.Context, channel string, intent models.Intent) models.Reply
}

// NewAPIHandler handles structured JSON requests.
// @Summary Convert currency, list rates or fetch odds
// @Description Accepts {from, to, amount} for a conversion, {command: "rates", from} for a rates snapshot, or {command: "odds", sport} / {command: "<league>"} for upcoming match odds. Upstream failures are reported with success=false and HTTP 200.
// @Tags api
// @Accept json
// @Produce json
// @Param request body models.APIRequest true "Command"
// @Success 200 {object} formatters.ConversionResponse "Conversion"
// @Success 200 {object} formatters.RatesResponse "Rates snapshot"
// @Success 200 {object} formatters.OddsResponse "Odds"
// @Success 200 {object} formatters.UsageResponse "Help or missing parameters"
// @Failure 400 {object} formatters.UsageResponse "Malformed JSON body"
// @Router /api [post]
func NewAPIHandler(dispatcher IntentDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req models.APIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Debugw("malformed api request", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(formatters.MissingParameters())
			return
		}

		reply := dispatcher.Dispatch(r.Context(), models.ChannelAPI, commands.ParseRequest(req))

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(formatters.JSON(reply))
	}
}
