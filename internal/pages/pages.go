// Package pages wraps each storefront screen in a page object. Page objects
// are stateless: they own nothing beyond the page handle assigned at
// construction, live for one test, and are never shared across scenarios.
//
// Locators are built from the storefront's stable data-test identifiers
// (plus the two menu element IDs it exposes), never from structural or
// XPath queries.
//
// Action methods mutate application state; verification methods assert on
// currently rendered state and fail immediately on the first mismatch with
// an assertion_mismatch coded error. Operations that exceed their bounded
// wait surface a timeout coded error instead, so flaky infrastructure
// triages separately. Transient tolerance belongs entirely to the automation
// library's built-in waits; this layer adds no retries.
package pages

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/kuitang/storefront-e2e/internal/errs"
)

// dataTest builds an attribute selector for a stable test identifier.
func dataTest(id string) string {
	return fmt.Sprintf(`[data-test="%s"]`, id)
}

// site is the shared half of every page object: the injected page handle,
// the target base URL, and the default bounded wait.
type site struct {
	page      playwright.Page
	baseURL   string
	timeoutMS float64
}

func newSite(page playwright.Page, baseURL string, timeout time.Duration) site {
	return site{
		page:      page,
		baseURL:   baseURL,
		timeoutMS: float64(timeout.Milliseconds()),
	}
}

// classify wraps an automation error, separating timeouts from everything else.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, playwright.ErrTimeout) {
		return errs.Wrap(errs.Timeout, op+" timed out", err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s site) goto_(path string) error {
	_, err := s.page.Goto(s.baseURL+path, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(s.timeoutMS),
	})
	return classify("navigate to "+path, err)
}

func (s site) waitForPath(glob string, timeoutMS float64) error {
	err := s.page.WaitForURL("**"+glob, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(timeoutMS),
	})
	return classify("wait for "+glob, err)
}

func (s site) waitVisible(selector, what string) error {
	err := s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(s.timeoutMS),
	})
	return classify("wait for "+what, err)
}

func (s site) click(selector, what string) error {
	err := s.page.Locator(selector).Click(playwright.LocatorClickOptions{
		Timeout: playwright.Float(s.timeoutMS),
	})
	return classify("click "+what, err)
}

func (s site) fill(selector, what, value string) error {
	err := s.page.Locator(selector).Fill(value, playwright.LocatorFillOptions{
		Timeout: playwright.Float(s.timeoutMS),
	})
	return classify("fill "+what, err)
}

func (s site) textOf(selector, what string) (string, error) {
	text, err := s.page.Locator(selector).First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(s.timeoutMS),
	})
	if err != nil {
		return "", classify("read "+what, err)
	}
	return text, nil
}

func (s site) allTexts(selector, what string) ([]string, error) {
	texts, err := s.page.Locator(selector).AllTextContents()
	if err != nil {
		return nil, classify("read "+what, err)
	}
	return texts, nil
}

func (s site) countOf(selector, what string) (int, error) {
	n, err := s.page.Locator(selector).Count()
	if err != nil {
		return 0, classify("count "+what, err)
	}
	return n, nil
}

// badgeCount reads the cart badge rendered in the primary header of every
// in-shop screen. An absent badge is zero, not an error.
func (s site) badgeCount() (int, error) {
	badge := dataTest("shopping-cart-badge")
	n, err := s.countOf(badge, "cart badge")
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	text, err := s.textOf(badge, "cart badge")
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, errs.Mismatch("cart badge", "a numeric count", fmt.Sprintf("%q", text))
	}
	return count, nil
}

// verifyBadge asserts the badge shows the expected count; zero means the
// badge must be absent entirely.
func (s site) verifyBadge(want int) error {
	got, err := s.badgeCount()
	if err != nil {
		return err
	}
	if got != want {
		if want == 0 {
			return errs.Mismatch("cart badge", "no badge", fmt.Sprintf("count %d", got))
		}
		return errs.Mismatch("cart badge", fmt.Sprintf("count %d", want), fmt.Sprintf("count %d", got))
	}
	return nil
}

// verifyHeader checks the secondary header title every in-shop screen renders.
func (s site) verifyHeader(want string) error {
	if err := s.waitVisible(dataTest("title"), "screen header"); err != nil {
		return err
	}
	got, err := s.textOf(dataTest("title"), "screen header")
	if err != nil {
		return err
	}
	if got != want {
		return errs.Mismatch("screen header", fmt.Sprintf("%q", want), fmt.Sprintf("%q", got))
	}
	return nil
}
