package logging

import "sync"

// Call is one emitted debug log invocation.
type Call struct {
	Level string
	Args  []any
}

// Recorder observes emitted calls.
type Recorder interface {
	Record(call Call)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(call Call)

func (f RecorderFunc) Record(call Call) {
	f(call)
}

// LastCallRecorder keeps the most recent emitted call.
type LastCallRecorder struct {
	mu   sync.Mutex
	last Call
	seen bool
}

func (r *LastCallRecorder) Record(call Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = call
	r.seen = true
}

// Last returns the latest call and whether any call was recorded.
func (r *LastCallRecorder) Last() (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last, r.seen
}
