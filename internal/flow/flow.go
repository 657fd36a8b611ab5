// Package flow models the storefront's screen graph explicitly. Scenario
// tests follow hand-picked paths through it; property tests walk it at random
// and assert the suite's invariants hold after every reachable transition.
package flow

// Screen is one logical application screen.
type Screen string

const (
	ScreenLogin            Screen = "login"
	ScreenInventory        Screen = "inventory"
	ScreenProductDetail    Screen = "product-detail"
	ScreenCart             Screen = "cart"
	ScreenCheckoutInfo     Screen = "checkout-info"
	ScreenCheckoutOverview Screen = "checkout-overview"
	ScreenCheckoutComplete Screen = "checkout-complete"
)

// Action is one edge label in the screen graph.
type Action string

const (
	ActionLoginValid   Action = "login-valid"
	ActionLoginInvalid Action = "login-invalid"

	// Inventory self-loops: state changes without leaving the screen.
	ActionAddToCart      Action = "add-to-cart"
	ActionRemoveFromCart Action = "remove-from-cart"
	ActionSort           Action = "sort"

	ActionOpenProduct     Action = "open-product"
	ActionBackToInventory Action = "back-to-inventory"
	ActionOpenCart        Action = "open-cart"
	ActionLogout          Action = "logout"

	ActionBeginCheckout    Action = "begin-checkout"
	ActionContinueShopping Action = "continue-shopping"
	ActionRemoveCartItem   Action = "remove-cart-item"

	ActionContinueValid        Action = "continue-valid"
	ActionContinueMissingField Action = "continue-missing-field"
	ActionCancelCheckout       Action = "cancel-checkout"

	ActionFinish         Action = "finish"
	ActionCancelOverview Action = "cancel-overview"

	ActionBackHome Action = "back-home"
)

// Transition is one labeled edge out of a screen.
type Transition struct {
	Action Action
	To     Screen
}

// transitions is the complete navigation graph. Initial state is an
// unauthenticated Login; the graph has no hard terminal state since Logout
// cycles back.
var transitions = map[Screen][]Transition{
	ScreenLogin: {
		{ActionLoginValid, ScreenInventory},
		{ActionLoginInvalid, ScreenLogin},
	},
	ScreenInventory: {
		{ActionAddToCart, ScreenInventory},
		{ActionRemoveFromCart, ScreenInventory},
		{ActionSort, ScreenInventory},
		{ActionOpenProduct, ScreenProductDetail},
		{ActionOpenCart, ScreenCart},
		{ActionLogout, ScreenLogin},
	},
	ScreenProductDetail: {
		{ActionAddToCart, ScreenProductDetail},
		{ActionRemoveFromCart, ScreenProductDetail},
		{ActionBackToInventory, ScreenInventory},
		{ActionOpenCart, ScreenCart},
	},
	ScreenCart: {
		{ActionRemoveCartItem, ScreenCart},
		{ActionBeginCheckout, ScreenCheckoutInfo},
		{ActionContinueShopping, ScreenInventory},
	},
	ScreenCheckoutInfo: {
		{ActionContinueValid, ScreenCheckoutOverview},
		{ActionContinueMissingField, ScreenCheckoutInfo},
		{ActionCancelCheckout, ScreenInventory},
	},
	ScreenCheckoutOverview: {
		{ActionFinish, ScreenCheckoutComplete},
		{ActionCancelOverview, ScreenInventory},
	},
	ScreenCheckoutComplete: {
		{ActionBackHome, ScreenInventory},
	},
}

// routes maps each screen to its fixed URL route. The product-detail route
// additionally takes an id query parameter.
var routes = map[Screen]string{
	ScreenLogin:            "/",
	ScreenInventory:        "/inventory.html",
	ScreenProductDetail:    "/inventory-item.html",
	ScreenCart:             "/cart.html",
	ScreenCheckoutInfo:     "/checkout-step-one.html",
	ScreenCheckoutOverview: "/checkout-step-two.html",
	ScreenCheckoutComplete: "/checkout-complete.html",
}

// Screens returns every screen in the graph, Login first.
func Screens() []Screen {
	return []Screen{
		ScreenLogin,
		ScreenInventory,
		ScreenProductDetail,
		ScreenCart,
		ScreenCheckoutInfo,
		ScreenCheckoutOverview,
		ScreenCheckoutComplete,
	}
}

// Transitions returns the outgoing edges of a screen in declaration order.
func Transitions(from Screen) []Transition {
	edges := transitions[from]
	out := make([]Transition, len(edges))
	copy(out, edges)
	return out
}

// Next resolves one step. The second return is false when the action is not
// available on the given screen.
func Next(from Screen, action Action) (Screen, bool) {
	for _, tr := range transitions[from] {
		if tr.Action == action {
			return tr.To, true
		}
	}
	return "", false
}

// Route returns a screen's fixed URL route.
func Route(s Screen) string {
	return routes[s]
}

// ClearsCart reports whether an action resets cart state as a side effect.
// Finish empties the cart on successful checkout; Logout abandons the session.
func ClearsCart(action Action) bool {
	return action == ActionFinish || action == ActionLogout
}
