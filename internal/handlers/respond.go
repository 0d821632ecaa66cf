package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vyper/fermybot/internal/models"
)

// The plain-text bodies ("nope", "incr what?") are also labelled
// application/json. Slack accepts this and existing callers rely on it.
const contentTypeJSON = "application/json"

// WriteReply encodes reply as JSON and writes it with status
func WriteReply(w http.ResponseWriter, status int, reply models.SlashReply) error {
	body, err := encodeReply(reply)
	if err != nil {
		return err
	}
	writeBody(w, status, body)
	return nil
}

// encodeReply serializes reply without HTML escaping, so "&" and "<" reach
// Slack as written
func encodeReply(reply models.SlashReply) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(reply); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteText writes a literal body with status
func WriteText(w http.ResponseWriter, status int, text string) {
	writeBody(w, status, []byte(text))
}

func writeBody(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
