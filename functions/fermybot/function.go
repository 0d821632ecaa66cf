package fermybot

import (
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/vyper/fermybot/internal/config"
	"github.com/vyper/fermybot/internal/handlers"
)

var (
	router     http.Handler
	routerErr  error
	loadRouter sync.Once
)

func init() {
	functions.HTTP("Fermybot", handleFermybot)
}

// setupRouter loads configuration from the environment on the first request
func setupRouter() {
	cfg, err := config.LoadConfig(os.Getenv)
	if err != nil {
		routerErr = err
		return
	}
	router = handlers.NewRouter(cfg)
}

func handleFermybot(w http.ResponseWriter, r *http.Request) {
	loadRouter.Do(setupRouter)
	if routerErr != nil {
		log.Printf("Invalid configuration: %v", routerErr)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	router.ServeHTTP(w, r)
}

// HandleFermybot is the exported function for the Cloud Function entry point
func HandleFermybot(w http.ResponseWriter, r *http.Request) {
	handleFermybot(w, r)
}
