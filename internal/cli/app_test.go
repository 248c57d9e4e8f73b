package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/katlegop/baacafe-kiosk/internal/config"
	"github.com/katlegop/baacafe-kiosk/internal/logging"
	"github.com/katlegop/baacafe-kiosk/internal/models"
	"github.com/katlegop/baacafe-kiosk/internal/notify"
	"github.com/katlegop/baacafe-kiosk/internal/ui"
)

// fakeAuth is a scripted services.AuthService.
type fakeAuth struct {
	signupName    string
	signupEmail   string
	signupAcc     models.Account
	signupErr     error
	loginEmail    string
	loginPassword string
	loginRemember bool
	loginAcc      models.Account
	loginErr      error
	restoreAcc    *models.Account
	logoutCalled  bool
	logoutErr     error
}

func (f *fakeAuth) Signup(_ context.Context, name, email, password, confirm string) (models.Account, error) {
	f.signupName, f.signupEmail = name, email
	return f.signupAcc, f.signupErr
}

func (f *fakeAuth) Login(_ context.Context, email, password string, remember bool) (models.Account, error) {
	f.loginEmail, f.loginPassword, f.loginRemember = email, password, remember
	return f.loginAcc, f.loginErr
}

func (f *fakeAuth) Restore(context.Context) *models.Account { return f.restoreAcc }

func (f *fakeAuth) Logout(context.Context) error {
	f.logoutCalled = true
	return f.logoutErr
}

// recordNavigator captures navigation requests.
type recordNavigator struct {
	targets chan string
}

func newRecordNavigator() *recordNavigator {
	return &recordNavigator{targets: make(chan string, 1)}
}

func (n *recordNavigator) Navigate(target string) { n.targets <- target }

func fastTimings() notify.Timings {
	return notify.Timings{
		ShowTick: time.Millisecond,
		Display:  10 * time.Millisecond,
		Fade:     time.Millisecond,
	}
}

// newTestApp assembles an App around a fake auth service, with the
// scheduler detached from rendering so tests stay single-threaded.
func newTestApp(t *testing.T, f *fakeAuth) (*App, *recordNavigator, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	nav := newRecordNavigator()
	cfg := &config.Config{
		StorePath:           "unused.db",
		LandingPage:         "index.html",
		NotificationDisplay: 10 * time.Millisecond,
	}

	a := &App{
		config:    cfg,
		auth:      f,
		scheduler: notify.NewScheduler(fastTimings(), nil),
		navigator: nav,
		log:       logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		reader:    bufio.NewReader(strings.NewReader("")),
		out:       out,
		state:     ui.NewState(nil),
	}
	a.render()
	return a, nav, out
}

// stubInputs replaces the interactive helpers with scripted answers.
func stubInputs(t *testing.T, texts []string, passwords []string, yes bool) {
	t.Helper()
	origST, origGP, origYN := getSimpleText, getPassword, getYesNo
	t.Cleanup(func() {
		getSimpleText, getPassword, getYesNo = origST, origGP, origYN
	})

	ti, pi := 0, 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) (string, error) {
		v := passwords[pi]
		pi++
		return v, nil
	}
	getYesNo = func(_ *bufio.Reader, _ string, _ io.Writer) (bool, error) {
		return yes, nil
	}
}

func (a *App) currentState() ui.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

func (a *App) pendingNotification() *models.Notification {
	n, _ := a.scheduler.Current()
	return n
}
