// Package tutorial keeps the catalogue of runnable lessons, keyed by their
// chapter number ("1.1", "4.11", ...).
package tutorial

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/paperboard/learnopengl/internal/config"
)

// ErrUnknown is returned by Lookup for ids that were never registered.
var ErrUnknown = errors.New("unknown tutorial")

// Env is what a lesson gets to run with.
type Env struct {
	Config config.Config
	Log    *zap.Logger
}

// Tutorial is a runnable lesson.
type Tutorial struct {
	ID    string
	Title string
	Run   func(Env) error
}

// Registry maps ids to tutorials.
type Registry struct {
	mu        sync.RWMutex
	tutorials map[string]Tutorial
}

func NewRegistry() *Registry {
	return &Registry{tutorials: make(map[string]Tutorial)}
}

// Register adds t. It panics on an empty or duplicate id, both of which are
// programming errors in a lesson's init function.
func (r *Registry) Register(t Tutorial) {

	if t.ID == "" {
		panic("tutorial: empty id")
	}
	if t.Run == nil {
		panic("tutorial: nil Run for " + t.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.tutorials[t.ID]; dup {
		panic("tutorial: duplicate id " + t.ID)
	}
	r.tutorials[t.ID] = t

}

// Lookup returns the tutorial registered under id.
func (r *Registry) Lookup(id string) (Tutorial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tutorials[id]
	if !ok {
		return Tutorial{}, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return t, nil
}

// All returns every tutorial in chapter order. Ids that are not dotted
// numbers sort last, alphabetically.
func (r *Registry) All() []Tutorial {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Tutorial, 0, len(r.tutorials))
	for _, t := range r.tutorials {
		all = append(all, t)
	}
	slices.SortFunc(all, func(a, b Tutorial) int { return CompareIDs(a.ID, b.ID) })
	return all
}

// CompareIDs orders chapter ids numerically part by part, so 1.2 < 1.10.
func CompareIDs(a, b string) int {

	pa, aok := chapter(a)
	pb, bok := chapter(b)

	switch {
	case aok && bok:
		if c := slices.Compare(pa, pb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(a, b)

}

func chapter(id string) ([]int, bool) {
	fields := strings.Split(id, ".")
	parts := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, false
		}
		parts[i] = n
	}
	return parts, true
}

// Default is the registry lessons add themselves to.
var Default = NewRegistry()

func Register(t Tutorial)                { Default.Register(t) }
func Lookup(id string) (Tutorial, error) { return Default.Lookup(id) }
func All() []Tutorial                    { return Default.All() }
