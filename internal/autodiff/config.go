package autodiff

// enableBackprop is the process-wide graph-building flag. While it is set,
// Apply records the metadata a later backward pass needs (creator links,
// generations, input/output bookkeeping); while it is clear, forward values
// are still computed but no graph is retained.
//
// The engine is single-threaded by design, so scoped overrides are plain
// save/restore with no synchronization.
var enableBackprop = true

// IsBackpropEnabled reports whether forward evaluation currently records
// graph-building metadata.
func IsBackpropEnabled() bool {
	return enableBackprop
}

// SetBackprop sets the graph-building flag and returns a function that
// restores the previous value. Meant for defer:
//
//	defer autodiff.SetBackprop(false)()
func SetBackprop(enabled bool) (restore func()) {
	prev := enableBackprop
	enableBackprop = enabled
	return func() { enableBackprop = prev }
}

// UsingBackprop runs fn with the graph-building flag overridden. The prior
// value is restored on every exit path, including a panic inside fn.
func UsingBackprop(enabled bool, fn func()) {
	defer SetBackprop(enabled)()
	fn()
}

// NoGrad runs fn with graph building disabled. Use it for inference-only
// evaluation: no creator links are recorded, so no graph memory is retained.
func NoGrad(fn func()) {
	UsingBackprop(false, fn)
}
