// SPDX-License-Identifier: MIT
// Package: commodel/fluxnet
//
// scope.go - network expansion from seed metabolites.
//
// Breadth-first over metabolites: a reaction fires, in every direction its
// bounds allow, once all of its substrates are available, and its products
// join the queue one level deeper. Reactions without substrates in an allowed
// direction (uptakes) fire before the walk starts.

package fluxnet

import (
	"context"
	"fmt"
	"sort"
)

// ScopeOptions tune Model.Scope. The zero value walks the whole network.
type ScopeOptions struct {
	Ctx context.Context
	// MaxDepth stops expansion after that many reaction steps; 0 means no limit.
	MaxDepth int
}

// Scope is the result of a network expansion.
type Scope struct {
	// Order lists available metabolites in discovery order.
	Order []string
	// Depth is the number of reaction steps from the seeds.
	Depth map[string]int
	// Producer names the reaction that first made a metabolite available;
	// seeds have none.
	Producer map[string]string
	// Fired holds every reaction that could carry flux in some direction.
	Fired map[string]bool
}

// Available reports whether metabolite id is in the scope.
func (s *Scope) Available(id string) bool {
	_, ok := s.Depth[id]
	return ok
}

type scopeItem struct {
	id    string
	depth int
}

type expander struct {
	m     *Model
	opts  ScopeOptions
	index map[string][]string // metabolite -> reactions
	queue []scopeItem
	res   *Scope
}

// Scope expands the network from seeds. Unknown seeds fail with
// ErrMetaboliteNotFound.
func (m *Model) Scope(seeds []string, opts *ScopeOptions) (*Scope, error) {
	o := ScopeOptions{}
	if opts != nil {
		o = *opts
	}
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	for _, id := range seeds {
		if _, ok := m.metabolites[id]; !ok {
			return nil, fmt.Errorf("Scope(%s): %w", id, ErrMetaboliteNotFound)
		}
	}

	e := &expander{
		m:     m,
		opts:  o,
		index: make(map[string][]string, len(m.metabolites)),
		res: &Scope{
			Depth:    make(map[string]int, len(m.metabolites)),
			Producer: make(map[string]string),
			Fired:    make(map[string]bool),
		},
	}
	for _, rid := range m.Reactions() {
		for met := range m.reactions[rid].Stoichiometry {
			e.index[met] = append(e.index[met], rid)
		}
	}

	for _, id := range seeds {
		if !e.res.Available(id) {
			e.enqueue(id, 0, "")
		}
	}
	for _, rid := range m.Reactions() {
		e.tryFire(rid, 0, true)
	}
	return e.res, e.loop()
}

func (e *expander) enqueue(id string, depth int, producer string) {
	e.res.Depth[id] = depth
	if producer != "" {
		e.res.Producer[id] = producer
	}
	e.res.Order = append(e.res.Order, id)
	e.queue = append(e.queue, scopeItem{id: id, depth: depth})
}

func (e *expander) loop() error {
	for len(e.queue) > 0 {
		select {
		case <-e.opts.Ctx.Done():
			return e.opts.Ctx.Err()
		default:
		}
		item := e.queue[0]
		e.queue = e.queue[1:]
		for _, rid := range e.index[item.id] {
			e.tryFire(rid, item.depth, false)
		}
	}
	return nil
}

// tryFire fires rid in each allowed direction whose substrates are all
// available; depth is that of the metabolite that triggered the check. With
// uptakes set only substrate-free directions are considered.
func (e *expander) tryFire(rid string, depth int, uptakes bool) {
	r := e.m.reactions[rid]
	next := depth + 1
	if e.opts.MaxDepth > 0 && next > e.opts.MaxDepth {
		return
	}
	for _, sign := range []float64{1, -1} {
		if (sign > 0 && !(r.UpperBound > 0)) || (sign < 0 && !(r.LowerBound < 0)) {
			continue
		}
		ready := true
		for met, coef := range r.Stoichiometry {
			if coef*sign < 0 && (uptakes || !e.res.Available(met)) {
				ready = false
				break
			}
		}
		if !ready {
			continue
		}
		e.res.Fired[rid] = true
		products := make([]string, 0, len(r.Stoichiometry))
		for met, coef := range r.Stoichiometry {
			if coef*sign > 0 && !e.res.Available(met) {
				products = append(products, met)
			}
		}
		sort.Strings(products)
		for _, met := range products {
			e.enqueue(met, next, rid)
		}
	}
}

// Blocked lists the reactions of m that never fired, sorted.
func (s *Scope) Blocked(m *Model) []string {
	return m.ReactionsWhere(func(r Reaction) bool { return !s.Fired[r.ID] })
}
