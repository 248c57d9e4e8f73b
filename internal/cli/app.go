package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/katlegop/baacafe-kiosk/internal/config"
	"github.com/katlegop/baacafe-kiosk/internal/logging"
	"github.com/katlegop/baacafe-kiosk/internal/notify"
	"github.com/katlegop/baacafe-kiosk/internal/services"
	"github.com/katlegop/baacafe-kiosk/internal/session"
	"github.com/katlegop/baacafe-kiosk/internal/storage"
	"github.com/katlegop/baacafe-kiosk/internal/ui"
)

// App wires the kiosk together: config, the two storage scopes, the auth
// service, the notification scheduler, the renderer and the navigator.
type App struct {
	config    *config.Config
	auth      services.AuthService
	scheduler *notify.Scheduler
	navigator Navigator
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer

	durableDB   *sql.DB
	ephemeralDB *sql.DB

	mu    sync.Mutex
	state ui.State
	view  ui.View
}

// NewApp opens the durable store at cfg.StorePath and an in-memory
// ephemeral scope, then assembles the application.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	durableDB, err := storage.InitDatabase(ctx, cfg.StorePath)
	if err != nil {
		log.Error(ctx, "error initializing durable store", "error", err)
		return nil, err
	}

	ephemeralDB, err := storage.InitDatabase(ctx, ":memory:")
	if err != nil {
		durableDB.Close()
		return nil, err
	}

	store := session.NewStore(
		storage.NewSQLiteRepository(durableDB),
		storage.NewSQLiteRepository(ephemeralDB),
		log,
	)

	app := &App{
		config:      cfg,
		auth:        services.NewAuthService(store, log),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		durableDB:   durableDB,
		ephemeralDB: ephemeralDB,
	}

	timings := notify.DefaultTimings()
	timings.Display = cfg.NotificationDisplay
	app.scheduler = notify.NewScheduler(timings, app.render)
	app.navigator = &PrintNavigator{Out: app.out}

	return app, nil
}

// Run seeds the UI state from any persisted session and enters the
// command loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	restored := a.auth.Restore(ctx)
	a.mu.Lock()
	a.state = ui.NewState(restored)
	a.mu.Unlock()
	if restored != nil {
		a.log.Info(ctx, "session restored", "email", restored.Email)
	}

	a.render()
	runLoop(ctx, a, bufio.NewScanner(os.Stdin), a.out)
}

// Close releases both storage scopes.
func (a *App) Close() {
	if a.durableDB != nil {
		a.durableDB.Close()
	}
	if a.ephemeralDB != nil {
		a.ephemeralDB.Close()
	}
}

// CurrentView returns the most recently rendered view. The loop uses its
// control list to decide what the user may do next.
func (a *App) CurrentView() ui.View {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.view
}

// setState applies a transition and re-renders.
func (a *App) setState(transition func(ui.State) ui.State) {
	a.mu.Lock()
	a.state = transition(a.state)
	a.mu.Unlock()
	a.render()
}

// render rebuilds the view from the current state plus the visible
// notification and prints it whole. The previous view is discarded; its
// control bindings die with it.
func (a *App) render() {
	a.mu.Lock()
	st := a.state
	if n, visible := a.scheduler.Current(); visible {
		st = st.WithNotification(n)
	}
	v := ui.Render(st)
	a.view = v
	a.mu.Unlock()

	a.printView(v)
}

func (a *App) printView(v ui.View) {
	fmt.Fprintf(a.out, "\n=== %s ===\n", v.Title)
	for _, line := range v.Lines {
		fmt.Fprintln(a.out, line)
	}
	for _, c := range v.Controls {
		fmt.Fprintf(a.out, "  %-10s %s\n", c.Token, c.Label)
	}
}
