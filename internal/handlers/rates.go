package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sbilibin2017/zar-bot/internal/formatters"
	"github.com/sbilibin2017/zar-bot/internal/models"
)

// NewGetRatesHandler returns an HTTP handler for fetching the watch-list rates.
// @Summary Get exchange rates
// @Description Fetches watch-list rates relative to base (ZAR when omitted)
// @Tags api
// @Produce json
// @Param base query string false "Base currency" default(ZAR)
// @Success 200 {object} formatters.RatesResponse "Rates snapshot"
// @Failure 502 {object} formatters.RatesResponse "Upstream failure"
// @Router /rates [get]
func NewGetRatesHandler(dispatcher IntentDispatcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("base")))
		if base == "" {
			base = models.DefaultBase
		}

		reply := dispatcher.Dispatch(r.Context(), models.ChannelAPI, models.RatesIntent(base))

		w.Header().Set("Content-Type", "application/json")
		if reply.Rates == nil || !reply.Rates.Success {
			w.WriteHeader(http.StatusBadGateway)
		} else {
			w.WriteHeader(http.StatusOK)
		}
		_ = json.NewEncoder(w).Encode(formatters.JSON(reply))
	}
}
