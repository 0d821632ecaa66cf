package function

import (
	"net/http"

	"github.com/vyper/fermybot/functions/fermybot"
)

// Fermybot is the Cloud Function entry point
func Fermybot(w http.ResponseWriter, r *http.Request) {
	fermybot.HandleFermybot(w, r)
}
