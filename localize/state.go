package localize

// State is a stage of a localization run.
type State int

// Run states, in the order a cache miss visits them. A cache hit goes from
// StateCacheLookup directly to StateDone.
const (
	StateCacheLookup State = iota
	StateFetching
	StateExtracting
	StateDownloading
	StateSynthesizing
	StateRewriting
	StateCaching
	StateDone
	StateFailed
)

var stateNames = [...]string{
	StateCacheLookup:  "cache-lookup",
	StateFetching:     "fetching",
	StateExtracting:   "extracting",
	StateDownloading:  "downloading",
	StateSynthesizing: "synthesizing",
	StateRewriting:    "rewriting",
	StateCaching:      "caching",
	StateDone:         "done",
	StateFailed:       "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// ProgressFunc is called on every state transition.
type ProgressFunc func(State)
