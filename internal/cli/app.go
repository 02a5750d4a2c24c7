package cli

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"sync"

	"github.com/vahagnvardanyan1/falcore-backend-test/internal/api"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/config"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/harness"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/hub"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/logging"
	"github.com/vahagnvardanyan1/falcore-backend-test/internal/toast"
)

// App owns the console's backend client, toast pipeline, and hub
// subscription. Incoming hub notifications are prepended to a local list so
// the newest ones are shown first.
type App struct {
	config *config.Config
	client *api.Client
	toasts *toast.Manager
	hub    *hub.Subscriber
	runner *harness.Runner
	log    logging.Logger

	mu            sync.Mutex
	notifications []api.Notification
}

func NewApp(c *config.Config, log logging.Logger) *App {
	app := &App{
		config: c,
		client: api.New(c.BaseURL, c.RequestTimeout, log),
		toasts: toast.NewManager(toast.DefaultTTL, log),
		runner: harness.NewRunner(log),
		log:    log,
	}
	hubURL := c.HubURL
	if hubURL == "" {
		hubURL = hub.URLFor(c.BaseURL)
	}
	app.hub = hub.New(hubURL, app.prepend, log)
	return app
}

// Run starts the hub subscription and blocks in the REPL until the user
// exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.hub.Start()
	defer a.close()

	printlnFn("Vehicle tracking console (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

func (a *App) close() {
	a.hub.Close()
	a.toasts.Close()
}

func (a *App) prepend(n api.Notification) {
	a.mu.Lock()
	a.notifications = append([]api.Notification{n}, a.notifications...)
	a.mu.Unlock()
	a.log.Info(context.Background(), "notification received", "vehicleId", n.VehicleID, "title", n.Title)
}

// status feeds the prompt: hub connectivity plus the active toast count.
func (a *App) status() string {
	s := "hub:down"
	if a.hub.Connected() {
		s = "hub:up"
	}
	if n := len(a.toasts.Active()); n > 0 {
		s += " !" + strconv.Itoa(n)
	}
	return s
}
