package core

import (
	"sync"
	"sync/atomic"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
	initMu      sync.Mutex
	initHooks   []func()
)

// RegisterInit adds a one-time setup step (for example building a dispatch
// table). It is meant to be called from package init functions.
func RegisterInit(fn func()) {
	initMu.Lock()
	defer initMu.Unlock()
	initHooks = append(initHooks, fn)
}

// EnsureInitialized runs every registered setup step exactly once per
// process. It is safe to call from any number of goroutines; after the first
// call it costs a single atomic load.
func EnsureInitialized() {
	initOnce.Do(func() {
		initMu.Lock()
		hooks := append([]func(){}, initHooks...)
		initMu.Unlock()
		for _, fn := range hooks {
			fn()
		}
		initialized.Store(true)
	})
}

// Initialized reports whether EnsureInitialized has completed.
func Initialized() bool {
	return initialized.Load()
}
