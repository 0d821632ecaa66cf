package handlers

import (
	"net/http"

	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/logging"
	"github.com/vyper/fermybot/internal/models"
)

// SpyderbatText is the fixed /slack/spyderbat reply
const SpyderbatText = "🎶 🕷️ 🦇, 🕷️ 🦇 🎶"

// HandleSpyderbat answers /spyderbat with a fixed in-channel reply. The request body is never read.
func HandleSpyderbat(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	if err := WriteReply(w, http.StatusOK, models.InChannel(SpyderbatText)); err != nil {
		writeError(w, logging.FromContext(r.Context(), cfg.Logger), err)
	}
}
