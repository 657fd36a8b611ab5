package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kuitang/storefront-e2e/internal/errs"
	"github.com/kuitang/storefront-e2e/internal/testdata"
)

func TestBrowser_Login_StandardUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSuiteEnv(t)
	env.RequireTag(t, TagSmoke)
	env.InitBrowser(t)

	page := env.NewPage(t)
	defer page.Close()
	env.SnapshotOnFailure(t, page, "login-standard")

	env.Login(t, page, testdata.RoleStandard)

	inv := env.Inventory(page)
	require.NoError(t, inv.VerifyLoaded())
	require.NoError(t, inv.VerifyCatalog())
	require.NoError(t, inv.VerifyBadge(0), "a fresh session starts with an empty cart")

	env.Sink.CaptureOnSuccess(page, "login-standard")
}

func TestBrowser_Login_LockedOutUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSuiteEnv(t)
	env.RequireTag(t, TagSmoke, TagRegression)
	env.InitBrowser(t)

	page := env.NewPage(t)
	defer page.Close()
	env.SnapshotOnFailure(t, page, "login-locked-out")

	creds, err := env.Factory.User(testdata.RoleLockedOut)
	require.NoError(t, err)

	login := env.LoginPage(page)
	require.NoError(t, login.Navigate())
	require.NoError(t, login.VerifyLoaded())
	require.NoError(t, login.Login(creds))

	require.NoError(t, login.VerifyLockedOut())

	// Verification is idempotent: re-checking without an intervening action
	// yields the same outcome.
	require.NoError(t, login.VerifyLockedOut())

	// A deliberately wrong expectation surfaces as an assertion mismatch,
	// not a timeout or a generic failure.
	err = login.VerifyError("your subscription has expired")
	require.Error(t, err)
	assert.True(t, errs.HasCode(err, errs.AssertionMismatch), "code = %q", errs.CodeOf(err))
}

func TestBrowser_Login_UnknownUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSuiteEnv(t)
	env.RequireTag(t, TagRegression)
	env.InitBrowser(t)

	page := env.NewPage(t)
	defer page.Close()
	env.SnapshotOnFailure(t, page, "login-unknown-user")

	login := env.LoginPage(page)
	require.NoError(t, login.Navigate())
	require.NoError(t, login.Login(env.Factory.RandomUser()))
	require.NoError(t, login.VerifyUnknownUser())
}

func TestBrowser_Login_EmptyFields(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSuiteEnv(t)
	env.RequireTag(t, TagRegression)
	env.InitBrowser(t)

	t.Run("username required", func(t *testing.T) {
		page := env.NewPage(t)
		defer page.Close()

		login := env.LoginPage(page)
		require.NoError(t, login.Navigate())
		require.NoError(t, login.Login(env.Factory.RandomUser(testdata.WithUsername(""))))
		require.NoError(t, login.VerifyError("Username is required"))
	})

	t.Run("password required", func(t *testing.T) {
		page := env.NewPage(t)
		defer page.Close()

		login := env.LoginPage(page)
		require.NoError(t, login.Navigate())
		require.NoError(t, login.Login(env.Factory.RandomUser(testdata.WithPassword(""))))
		require.NoError(t, login.VerifyError("Password is required"))
	})
}

func TestBrowser_Login_PerformanceGlitchUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSuiteEnv(t)
	env.RequireTag(t, TagSlow, TagRegression)
	env.InitBrowser(t)

	page := env.NewPage(t)
	defer page.Close()
	env.SnapshotOnFailure(t, page, "login-performance-glitch")

	creds, err := env.Factory.User(testdata.RolePerformanceGlitch)
	require.NoError(t, err)

	login := env.LoginPage(page)
	require.NoError(t, login.Navigate())
	require.NoError(t, login.Login(creds))

	// This account renders the inventory well after the default window;
	// the extended wait is the suite's single per-call timeout override.
	require.NoError(t, login.WaitForInventory(env.Cfg.SlowLoginTimeout))
	require.NoError(t, env.Inventory(page).VerifyLoaded())
}

func TestBrowser_Logout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}

	env := SetupSuiteEnv(t)
	env.RequireTag(t, TagSmoke, TagRegression)
	env.InitBrowser(t)

	page := env.NewPage(t)
	defer page.Close()
	env.SnapshotOnFailure(t, page, "logout")

	env.Login(t, page, testdata.RoleStandard)

	inv := env.Inventory(page)
	require.NoError(t, inv.AddToCart(firstCatalogProduct(t).ID))
	require.NoError(t, inv.Logout())

	login := env.LoginPage(page)
	require.NoError(t, login.VerifyLoaded())

	// Protected routes bounce back to login after logout.
	require.NoError(t, inv.Navigate())
	require.NoError(t, login.VerifyError("when you are logged in"))
}
