package vdom

import "sync/atomic"

// Hook observes nodes as they are created.
//
// VNodeCreated runs synchronously once per node, after all fields are set
// and before the builder returns. It may read or modify the node, and it may
// build further nodes.
type Hook interface {
	VNodeCreated(node *VNode)
}

// HookFunc adapts a function to the Hook interface.
type HookFunc func(node *VNode)

// VNodeCreated implements Hook.
func (f HookFunc) VNodeCreated(node *VNode) {
	f(node)
}

// Hooks runs several hooks in order. Nil entries are skipped.
type Hooks []Hook

// VNodeCreated implements Hook.
func (hs Hooks) VNodeCreated(node *VNode) {
	for _, h := range hs {
		if h != nil {
			h.VNodeCreated(node)
		}
	}
}

// hookSlot boxes a Hook so it can live in an atomic.Pointer.
type hookSlot struct {
	hook Hook
}

// globalHook is the process-wide hook slot read by H and CreateElement.
var globalHook atomic.Pointer[hookSlot]

// InstallHook sets the process-wide hook and returns a function that restores
// whatever was installed before. Installing nil clears the slot.
//
// The slot is read once per build, so a hook installed while a build is in
// progress takes effect from the next node on.
func InstallHook(h Hook) (restore func()) {
	var next *hookSlot
	if h != nil {
		next = &hookSlot{hook: h}
	}
	prev := globalHook.Swap(next)
	return func() {
		globalHook.Store(prev)
	}
}

// ClearHook removes the process-wide hook.
func ClearHook() {
	globalHook.Store(nil)
}

// CurrentHook returns the process-wide hook, or nil if none is installed.
func CurrentHook() Hook {
	if slot := globalHook.Load(); slot != nil {
		return slot.hook
	}
	return nil
}
