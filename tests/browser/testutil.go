// Package browser contains the storefront scenario suite. All scenario files
// use SuiteEnv via SetupSuiteEnv(t). Every scenario is independent: it gets a
// fresh page (an isolated browser session), establishes its own login state,
// and never depends on state left by another scenario.
package browser

import (
	"log/slog"
	"os"
	"sync"
	"testing"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/artifacts"
	"github.com/kuitang/storefront-e2e/internal/config"
	"github.com/kuitang/storefront-e2e/internal/obs"
	"github.com/kuitang/storefront-e2e/internal/pages"
	"github.com/kuitang/storefront-e2e/internal/testdata"
)

// Scenario tag vocabulary. Selection happens via STOREFRONT_TAGS; the test
// runner itself stays out of scope.
const (
	TagSmoke      = "smoke"
	TagRegression = "regression"
	TagSlow       = "slow"
)

var suiteFixtureMu sync.Mutex
var suiteSharedFixture *SuiteEnv

// SuiteEnv is the shared environment for all scenarios: configuration, the
// seeded data factory, the per-run artifact sink, and the browser process.
// Scenarios hold no shared mutable state beyond these read-only handles.
type SuiteEnv struct {
	Cfg     *config.Config
	Factory *testdata.Factory
	Sink    *artifacts.Sink

	log *slog.Logger

	pw        *playwright.Playwright
	browser   playwright.Browser
	browserMu sync.Mutex
}

// SetupSuiteEnv returns the shared suite environment, creating it on first use.
func SetupSuiteEnv(t *testing.T) *SuiteEnv {
	t.Helper()

	suiteFixtureMu.Lock()
	defer suiteFixtureMu.Unlock()

	if suiteSharedFixture != nil {
		return suiteSharedFixture
	}

	obs.Init()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load suite configuration: %v", err)
	}

	sink, err := artifacts.NewSink(cfg.ArtifactDir)
	if err != nil {
		// Artifact capture is best effort; a broken sink must not block the
		// suite. Scenarios run with capture disabled.
		obs.Pkg("browser").Warn("artifact sink unavailable", "error", err.Error())
		sink = nil
	}

	suiteSharedFixture = &SuiteEnv{
		Cfg:     cfg,
		Factory: testdata.New(cfg.Seed, cfg.FixturePassword),
		Sink:    sink,
		log:     obs.Pkg("browser"),
	}
	return suiteSharedFixture
}

// RequireTag skips the test unless at least one of its tags is enabled by
// the configured filter. Call it first in every scenario.
func (env *SuiteEnv) RequireTag(t *testing.T, tags ...string) {
	t.Helper()
	if !env.Cfg.TagEnabled(tags...) {
		t.Skipf("skipping: tags %v not selected by STOREFRONT_TAGS", tags)
	}
}

// InitBrowser starts the automation driver and launches the browser once.
// Skips the test when the browser toolchain is not installed.
func (env *SuiteEnv) InitBrowser(t *testing.T) {
	t.Helper()

	env.browserMu.Lock()
	defer env.browserMu.Unlock()

	if env.browser != nil {
		return
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Skip("Playwright not available:", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(env.Cfg.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		t.Skip("Could not launch browser:", err)
	}
	env.pw = pw
	env.browser = browser
	env.log.Info("browser launched",
		"headless", env.Cfg.Headless,
		"base_url", env.Cfg.BaseURL,
		"artifact_dir", env.Sink.Dir(),
	)
}

// NewPage creates an isolated browser session with the default timeout
// applied. Each scenario gets its own; pages are never reused across tests.
func (env *SuiteEnv) NewPage(t *testing.T) playwright.Page {
	t.Helper()

	env.browserMu.Lock()
	defer env.browserMu.Unlock()

	page, err := env.browser.NewPage()
	if err != nil {
		t.Fatalf("could not create page: %v", err)
	}
	timeoutMS := float64(env.Cfg.DefaultTimeout.Milliseconds())
	page.SetDefaultTimeout(timeoutMS)
	page.SetDefaultNavigationTimeout(timeoutMS)
	return page
}

// SnapshotOnFailure captures the page's final rendered state if the test
// ends up failing. Capture is best effort and never affects the outcome.
func (env *SuiteEnv) SnapshotOnFailure(t *testing.T, page playwright.Page, label string) {
	t.Helper()
	t.Cleanup(func() {
		if t.Failed() {
			env.Sink.CaptureOnFailure(page, label)
		}
	})
}

// Login drives the standard entry path for a fixture role: load the login
// screen, submit, and wait for the inventory to render.
func (env *SuiteEnv) Login(t *testing.T, page playwright.Page, role testdata.Role) {
	t.Helper()

	creds, err := env.Factory.User(role)
	if err != nil {
		t.Fatalf("Failed to resolve fixture role %q: %v", role, err)
	}

	login := pages.NewLogin(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
	if err := login.Navigate(); err != nil {
		t.Fatalf("Failed to open login screen: %v", err)
	}
	if err := login.VerifyLoaded(); err != nil {
		t.Fatalf("Login screen did not render: %v", err)
	}
	if err := login.Login(creds); err != nil {
		t.Fatalf("Failed to submit credentials for %q: %v", role, err)
	}
	if err := login.WaitForInventory(0); err != nil {
		t.Fatalf("Inventory did not appear after login as %q: %v", role, err)
	}
	obs.Scenario(t.Name()).Debug("logged in", "role", string(role))
}

// Page object constructors bound to the suite's configuration. Scenarios
// construct fresh instances per test; page objects cache nothing.

func (env *SuiteEnv) LoginPage(page playwright.Page) *pages.LoginPage {
	return pages.NewLogin(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func (env *SuiteEnv) Inventory(page playwright.Page) *pages.InventoryPage {
	return pages.NewInventory(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func (env *SuiteEnv) ProductDetail(page playwright.Page) *pages.ProductDetailPage {
	return pages.NewProductDetail(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func (env *SuiteEnv) Cart(page playwright.Page) *pages.CartPage {
	return pages.NewCart(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func (env *SuiteEnv) CheckoutInfo(page playwright.Page) *pages.CheckoutInfoPage {
	return pages.NewCheckoutInfo(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func (env *SuiteEnv) CheckoutOverview(page playwright.Page) *pages.CheckoutOverviewPage {
	return pages.NewCheckoutOverview(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func (env *SuiteEnv) CheckoutComplete(page playwright.Page) *pages.CheckoutCompletePage {
	return pages.NewCheckoutComplete(page, env.Cfg.BaseURL, env.Cfg.DefaultTimeout)
}

func cleanupSharedSuiteEnv() {
	suiteFixtureMu.Lock()
	defer suiteFixtureMu.Unlock()

	if suiteSharedFixture == nil {
		return
	}
	if suiteSharedFixture.browser != nil {
		_ = suiteSharedFixture.browser.Close()
	}
	if suiteSharedFixture.pw != nil {
		_ = suiteSharedFixture.pw.Stop()
	}
	suiteSharedFixture = nil
}

func TestMain(m *testing.M) {
	code := m.Run()
	cleanupSharedSuiteEnv()
	os.Exit(code)
}
