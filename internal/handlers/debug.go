package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/logging"
	"github.com/vyper/fermybot/internal/services"
)

// HandleDebug logs the decoded slash command, if any, and acknowledges with an empty 200.
// A body that is not valid form encoding is rejected with 400.
func HandleDebug(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	logger := logging.FromContext(r.Context(), cfg.Logger)

	body, err := readBody(w, r)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	if len(body) == 0 {
		logger.Info("Debug command", zap.Bool("present", false))
		w.WriteHeader(http.StatusOK)
		return
	}

	cmd, err := services.DecodeSlashCommand(body)
	if err != nil {
		writeError(w, logger, err)
		return
	}

	logger.Info("Debug command",
		zap.Bool("present", true),
		zap.String("command", cmd.Command),
		zap.String("text", cmd.Text),
		zap.String("user_id", cmd.UserID),
		zap.String("user_name", cmd.UserName),
		zap.String("team_id", cmd.TeamID),
		zap.String("team_domain", cmd.TeamDomain),
		zap.String("channel_id", cmd.ChannelID),
		zap.String("channel_name", cmd.ChannelName),
		zap.String("api_app_id", cmd.APIAppID),
		zap.String("trigger_id", cmd.TriggerID),
		zap.String("response_url", cmd.ResponseURL))

	w.WriteHeader(http.StatusOK)
}
