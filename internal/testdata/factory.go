// Package testdata produces the typed records scenarios feed into page
// objects: fixture credentials, randomized users, and checkout forms.
// All randomness flows through an explicitly seeded generator so a failing
// run can be replayed bit for bit.
package testdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/kuitang/storefront-e2e/internal/errs"
)

// Role names a fixture account on the storefront.
type Role string

const (
	RoleStandard          Role = "standard"
	RoleLockedOut         Role = "locked-out"
	RoleProblem           Role = "problem"
	RolePerformanceGlitch Role = "performance-glitch"
)

// fixtureUsernames are pinned to the storefront's seeded accounts.
var fixtureUsernames = map[Role]string{
	RoleStandard:          "standard_user",
	RoleLockedOut:         "locked_out_user",
	RoleProblem:           "problem_user",
	RolePerformanceGlitch: "performance_glitch_user",
}

// Credentials is an immutable username/password pair.
type Credentials struct {
	Username string
	Password string
}

// CheckoutInfo is the three-field checkout form. Partial records are valid
// inputs; they exist to provoke the storefront's validation errors.
type CheckoutInfo struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// CheckoutKind selects which checkout record the factory produces.
type CheckoutKind string

const (
	CheckoutValid        CheckoutKind = "valid"
	CheckoutRandom       CheckoutKind = "random"
	CheckoutSpecialChars CheckoutKind = "special-chars"
	CheckoutEmpty        CheckoutKind = "empty"
)

var (
	firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Radia", "Ken"}
	lastNames  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Perlman", "Thompson"}
)

// Factory produces test-data records. One factory per run; page objects and
// scenarios share it through the suite environment.
type Factory struct {
	rng      *rand.Rand
	password string
}

// New creates a factory seeded for reproducibility. A zero seed derives one
// from the clock, matching ad-hoc local runs.
func New(seed int64, fixturePassword string) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)),
		password: fixturePassword,
	}
}

// User returns the fixed credential pair for a named fixture role. Unknown
// roles fail fast, before any browser interaction happens.
func (f *Factory) User(role Role) (Credentials, error) {
	username, ok := fixtureUsernames[role]
	if !ok {
		return Credentials{}, errs.New(errs.UnknownRole, fmt.Sprintf("unknown fixture role %q", role))
	}
	return Credentials{Username: username, Password: f.password}, nil
}

// UserOverride adjusts a single field of a randomized user.
type UserOverride func(*Credentials)

// WithUsername pins the username of a randomized user.
func WithUsername(username string) UserOverride {
	return func(c *Credentials) { c.Username = username }
}

// WithPassword pins the password of a randomized user.
func WithPassword(password string) UserOverride {
	return func(c *Credentials) { c.Password = password }
}

// RandomUser returns a credential pair that matches no fixture account.
func (f *Factory) RandomUser(overrides ...UserOverride) Credentials {
	creds := Credentials{
		Username: fmt.Sprintf("user_%08x", f.rng.Uint32()),
		Password: fmt.Sprintf("pw_%08x", f.rng.Uint32()),
	}
	for _, override := range overrides {
		override(&creds)
	}
	return creds
}

// Checkout returns a checkout form record of the requested kind.
func (f *Factory) Checkout(kind CheckoutKind) (CheckoutInfo, error) {
	switch kind {
	case CheckoutValid:
		return CheckoutInfo{FirstName: "Jane", LastName: "Doe", PostalCode: "94105"}, nil
	case CheckoutRandom:
		return CheckoutInfo{
			FirstName:  firstNames[f.rng.IntN(len(firstNames))],
			LastName:   lastNames[f.rng.IntN(len(lastNames))],
			PostalCode: fmt.Sprintf("%05d", f.rng.IntN(100000)),
		}, nil
	case CheckoutSpecialChars:
		return CheckoutInfo{
			FirstName:  "Ann-Marie",
			LastName:   "O'Neil-Søren",
			PostalCode: "EC1A 1BB",
		}, nil
	case CheckoutEmpty:
		return CheckoutInfo{}, nil
	default:
		return CheckoutInfo{}, errs.New(errs.Internal, fmt.Sprintf("unknown checkout kind %q", kind))
	}
}
