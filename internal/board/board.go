package board

// Clip is one board entry: a single-character trigger key, a display label,
// and the raw bytes of the audio clip it plays. Clips are built once at
// startup and never mutated; their Data is shared read-only across the
// layout, render, and playback paths.
type Clip struct {
	Trigger string
	Label   string
	Data    []byte
}

// Registry is the fixed, ordered set of clips on the board. It is immutable
// after construction: the TUI, the layout engine, and the command-line
// surface all read the same registry for the process lifetime.
type Registry struct {
	clips []Clip
}

func NewRegistry(clips []Clip) *Registry {
	return &Registry{clips: append([]Clip(nil), clips...)}
}

func (r *Registry) Len() int {
	return len(r.clips)
}

// At returns the clip at position i in board order.
func (r *Registry) At(i int) Clip {
	return r.clips[i]
}

// Match returns every clip whose trigger equals key, in board order.
// Triggers are not required to be unique; callers fire all matches.
func (r *Registry) Match(key string) []Clip {
	var out []Clip
	for _, c := range r.clips {
		if c.Trigger == key {
			out = append(out, c)
		}
	}
	return out
}

// Find returns the first clip bound to trigger, if any.
func (r *Registry) Find(trigger string) (Clip, bool) {
	for _, c := range r.clips {
		if c.Trigger == trigger {
			return c, true
		}
	}
	return Clip{}, false
}
