package handlers

import (
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/logging"
	"github.com/vyper/fermybot/internal/metrics"
	"github.com/vyper/fermybot/internal/models"
	"github.com/vyper/fermybot/internal/services"
)

// EmptySubjectText is the prompt returned when /incr has nothing to count
const EmptySubjectText = "incr what?"

// maxBodyBytes caps a slash command payload; Slack sends a few KB at most
const maxBodyBytes = 64 << 10

// HandleIncr processes the /incr slash command: it bumps the counter named
// by the command text and reports the new value to the channel.
func HandleIncr(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	logger := logging.FromContext(r.Context(), cfg.Logger)

	body, err := readBody(w, r)
	if err != nil {
		cfg.Metrics.IncrementResult(metrics.IncrementError)
		writeError(w, logger, err)
		return
	}
	if len(body) == 0 {
		cfg.Metrics.IncrementResult(metrics.IncrementError)
		writeError(w, logger, ErrMissingBody)
		return
	}

	cmd, err := services.DecodeSlashCommand(body)
	if err != nil {
		cfg.Metrics.IncrementResult(metrics.IncrementError)
		writeError(w, logger, err)
		return
	}

	subject := services.NormalizeSubject(cmd.Text)
	if subject == "" {
		cfg.Metrics.IncrementResult(metrics.IncrementEmpty)
		WriteText(w, http.StatusOK, EmptySubjectText)
		return
	}

	count, err := services.IncrementSubject(r.Context(), subject, cfg)
	if err != nil {
		cfg.Metrics.IncrementResult(metrics.IncrementError)
		writeError(w, logger, err)
		return
	}
	cfg.Metrics.IncrementResult(metrics.IncrementOK)

	logger.Info("Counter incremented",
		zap.String("key", services.CounterKey(subject)),
		zap.Int64("count", count),
		zap.String("user_id", cmd.UserID),
		zap.String("channel_id", cmd.ChannelID))

	if err := WriteReply(w, http.StatusOK, models.InChannel(services.FormatCount(subject, count))); err != nil {
		writeError(w, logger, err)
	}
}

// readBody returns the full request body, or nil when there is none.
// Bodies over maxBodyBytes are rejected.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", services.ErrPayloadDecode, err)
	}
	return body, nil
}
