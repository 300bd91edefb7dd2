package handle

import "sync"

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide Handle Registry, constructing it on
// first use (teacher analogue: core/global.go's GetGlobal via sync.Once).
// The façade is the only production caller. This package's own tests
// construct their own Registry with New; the façade tests use this
// singleton and reset it with ResetGlobal.
func Global() *Registry {
	globalOnce.Do(func() {
		global = New()
	})
	return global
}

// ResetGlobal discards the process-wide Registry. Tests only.
func ResetGlobal() {
	globalOnce = sync.Once{}
	global = nil
}
