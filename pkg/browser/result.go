package browser

// Status tells how a browse ended.
type Status int

const (
	// StatusCancelled means the user dismissed the picker or selected nothing.
	StatusCancelled Status = iota
	// StatusInvalid means the selection did not resolve to a directory.
	StatusInvalid
	// StatusResolved means the selection resolved to an existing directory.
	StatusResolved
)

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusInvalid:
		return "invalid"
	case StatusResolved:
		return "resolved"
	default:
		return "cancelled"
	}
}

// Result is the outcome of a browse.
type Result struct {
	Status Status
	// Selected is the raw path returned by the picker, empty when cancelled.
	Selected string
	// Path is the resolved absolute directory, set only when Status is StatusResolved.
	Path string
}

// Ok reports whether a directory was resolved.
func (r Result) Ok() bool {
	return r.Status == StatusResolved
}
