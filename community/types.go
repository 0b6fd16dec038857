// SPDX-License-Identifier: MIT
// Package: commodel/community
//
// types.go - descriptors, build state, options and sentinel errors.
//
// Errors:
//
//	ErrValidation          - base for malformed input, raised before mutation.
//	  ErrTooFewModels        - fewer than 2 SingleModels.
//	  ErrNilModel            - SingleModel or its network is nil.
//	  ErrSeparatorInSpecies  - species tag empty or containing "_".
//	  ErrDuplicateSpecies    - two SingleModels share a species tag.
//	  ErrAlreadyNamespaced   - SingleModel network was already namespaced.
//	  ErrExchangeIDSuffix    - exchange id already ends in "_<compartment>".
//	  ErrFractionMismatch    - fraction map does not match the species set.
//	  ErrNonPositiveGrowth   - growth rate ≤ 0 or not finite.
//	  ErrSharedModel         - two SingleModels point at one network (in-place builds only).
//	ErrLookup              - base for missing references.
//	  ErrMappingNotFound     - declared input/output without exchange id mapping.
//	  ErrObjectiveNotFound   - objective reaction missing from the network.
//	  ErrMetaboliteNotDeclared - declared input/output missing from the network.

package community

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/klamt-lab/commodel/fluxnet"
)

// Naming conventions shared with downstream tools. Changing any of them breaks
// model files produced earlier.
const (
	// Separator joins an id and its species tag.
	Separator = "_"

	// OrganismExchangePrefix starts every organism ↔ exchange compartment reaction.
	OrganismExchangePrefix = "EXCHG_"

	// CommunityBiomassID names both the shared biomass pseudo-metabolite and
	// its drain in balanced-growth models.
	CommunityBiomassID = "COMMUNITY_BIOMASS"

	// RedComBiomassMetaboliteID is the biomass pool of RedCom community models.
	RedComBiomassMetaboliteID = "community_biomass"

	// RedComGrowthReactionID drains RedComBiomassMetaboliteID.
	RedComGrowthReactionID = "COMMUNITY_GROWTH"

	// MsnakeUpperPrefix and friends name the bound-embedding pseudo entities.
	MsnakeUpperPrefix = "Msnake_UPPER_"
	MsnakeLowerPrefix = "Msnake_LOWER_"
	RsnakeUpperPrefix = "Rsnake_UPPER_"
	RsnakeLowerPrefix = "Rsnake_LOWER_"

	// DefaultBoundMagnitude is the finite stand-in for ±∞ used by RedCom models.
	DefaultBoundMagnitude = 1000.0
)

// Sentinel errors. Specific errors wrap ErrValidation or ErrLookup so callers
// can test for the class or the exact cause.
var (
	ErrValidation = errors.New("community: validation failed")
	ErrLookup     = errors.New("community: lookup failed")

	ErrTooFewModels       = fmt.Errorf("%w: fewer than 2 single models", ErrValidation)
	ErrNilModel           = fmt.Errorf("%w: nil single model", ErrValidation)
	ErrSeparatorInSpecies = fmt.Errorf("%w: species tag empty or contains %q", ErrValidation, Separator)
	ErrDuplicateSpecies   = fmt.Errorf("%w: duplicate species tag", ErrValidation)
	ErrAlreadyNamespaced  = fmt.Errorf("%w: model already namespaced", ErrValidation)
	ErrExchangeIDSuffix   = fmt.Errorf("%w: exchange id carries the compartment suffix", ErrValidation)
	ErrFractionMismatch   = fmt.Errorf("%w: fractions do not match single models", ErrValidation)
	ErrNonPositiveGrowth  = fmt.Errorf("%w: growth rate must be positive and finite", ErrValidation)
	ErrSharedModel        = fmt.Errorf("%w: network shared by two single models", ErrValidation)

	ErrMappingNotFound       = fmt.Errorf("%w: exchange id mapping missing", ErrLookup)
	ErrObjectiveNotFound     = fmt.Errorf("%w: objective reaction missing", ErrLookup)
	ErrMetaboliteNotDeclared = fmt.Errorf("%w: declared metabolite missing", ErrLookup)
)

// SingleModel wraps one organism network with its community metadata.
//
// ExchangeIDs maps an internal metabolite id to its exchange-compartment id,
// written without the compartment suffix.
type SingleModel struct {
	Model               *fluxnet.Model
	Species             string
	ObjectiveReactionID string
	ExchangePrefix      string // native boundary reactions, e.g. "EX_"
	Inputs              []string
	Outputs             []string
	ExchangeIDs         map[string]string

	namespaced bool
}

// Namespaced reports whether the network has already been renamed for a
// community.
func (sm *SingleModel) Namespaced() bool { return sm.namespaced }

// Community is an ordered set of SingleModels sharing one exchange compartment.
//
// Inputs and Outputs list exchange ids (without the compartment suffix) the
// community may take up from or release to the environment.
type Community struct {
	Models         []*SingleModel
	Compartment    string // e.g. "exchg"
	ExchangePrefix string // community boundary reactions, e.g. "EX_C_"
	Inputs         []string
	Outputs        []string
}

// Species returns the species tags in model order.
func (c *Community) Species() []string {
	out := make([]string, 0, len(c.Models))
	for _, sm := range c.Models {
		if sm != nil {
			out = append(out, sm.Species)
		}
	}
	return out
}

// SplitPair records one reversible reaction split into two irreversible ones.
type SplitPair struct {
	Original string
	Forward  string
	Reverse  string
}

// BuildContext is the state threaded through the build steps.
type BuildContext struct {
	// Species lists species tags in community order.
	Species []string
	// Biomass maps species to its namespaced biomass reaction id.
	Biomass map[string]string
	// ExchangeMetabolites holds every exchange-compartment metabolite id created or reused.
	ExchangeMetabolites map[string]struct{}
	// Pseudo lists pseudo-metabolite and pseudo-reaction ids in creation order.
	Pseudo []string
	// Splits maps an original reaction id to its split pair.
	Splits map[string]SplitPair
}

// NewBuildContext returns a context for the given species and biomass
// reactions. It is how solvers that start from a finished model (RedCom) reuse
// the build steps.
func NewBuildContext(species []string, biomass map[string]string) *BuildContext {
	b := &BuildContext{
		Species:             append([]string(nil), species...),
		Biomass:             make(map[string]string, len(biomass)),
		ExchangeMetabolites: make(map[string]struct{}),
		Splits:              make(map[string]SplitPair),
	}
	for k, v := range biomass {
		b.Biomass[k] = v
	}
	return b
}

// IsSpecies reports whether sp is a known species tag.
func (b *BuildContext) IsSpecies(sp string) bool {
	_, ok := b.Biomass[sp]
	return ok
}

// IsBiomass reports whether id is the biomass reaction of some species.
func (b *BuildContext) IsBiomass(id string) bool {
	for _, bio := range b.Biomass {
		if bio == id {
			return true
		}
	}
	return false
}

// ExchangeMetaboliteIDs returns the exchange-compartment metabolites in lexical order.
func (b *BuildContext) ExchangeMetaboliteIDs() []string {
	out := make([]string, 0, len(b.ExchangeMetabolites))
	for id := range b.ExchangeMetabolites {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// NetFlux returns the flux of reaction id in the pre-split network: forward
// minus reverse for split reactions, the plain flux otherwise.
func (b *BuildContext) NetFlux(fluxes map[string]float64, id string) float64 {
	if pair, ok := b.Splits[id]; ok {
		return fluxes[pair.Forward] - fluxes[pair.Reverse]
	}
	return fluxes[id]
}

// BuildOption configures Merge and the builders on top of it.
type BuildOption func(*buildConfig)

type buildConfig struct {
	copy   bool
	logger *slog.Logger
}

// WithCopy deep-copies every SingleModel network before renaming, leaving the
// caller's descriptors untouched. Without it the networks are transferred to
// the merged model and must not be reused.
func WithCopy() BuildOption {
	return func(c *buildConfig) { c.copy = true }
}

// WithLogger sets the debug logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func newBuildConfig(opts []BuildOption) *buildConfig {
	cfg := &buildConfig{logger: slog.Default()}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}
