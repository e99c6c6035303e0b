// Package hooking lets observers attach to simulated components without the
// components knowing who is listening.
package hooking

// HookPos names a place in a component's logic where hooks fire.
type HookPos struct {
	Name string
}

// HookCtx carries the information about the site that triggered a hook.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   any
}

// Hookable is an object that accepts hooks.
type Hookable interface {
	// AcceptHook registers a hook.
	AcceptHook(hook Hook)

	// Hooks returns all the hooks registered.
	Hooks() []Hook
}

// A Hook is a piece of program invoked by a hookable object.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase provides the hook registry for types that implement Hookable.
type HookableBase struct {
	hooks []Hook
}

// Hooks returns all the hooks registered.
func (h *HookableBase) Hooks() []Hook {
	return h.hooks
}

// AcceptHook registers a hook. Registering the same hook twice is a
// programmer error.
func (h *HookableBase) AcceptHook(hook Hook) {
	for _, registered := range h.hooks {
		if registered == hook {
			panic("duplicated hook")
		}
	}

	h.hooks = append(h.hooks, hook)
}

// InvokeHook triggers all registered hooks.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
