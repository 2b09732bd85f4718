package graphs

import "github.com/sirupsen/logrus"

// Event kinds emitted after committed mutations.
const (
	EventVertexAdded      = "vertex_added"
	EventVertexRemoved    = "vertex_removed"
	EventEdgeAdded        = "edge_added"
	EventEdgeRemoved      = "edge_removed"
	EventHyperedgeAdded   = "hyperedge_added"
	EventHyperedgeRemoved = "hyperedge_removed"
)

// Event describes one committed mutation. Vertex is set for vertex events,
// Source/Target for edge events, EdgeID for hyperedge events.
type Event struct {
	Kind   string
	Vertex string
	Source string
	Target string
	EdgeID string
	Weight float64
}

// Observer receives mutation events. Notify runs synchronously on the
// mutating goroutine after the mutation commits; rejected mutations fire
// nothing. Observers must not mutate the graph from Notify.
type Observer interface {
	Notify(Event)
}

// Attach registers an observer for all future mutations.
func (b *base) Attach(o Observer) {
	b.observers = append(b.observers, o)
}

// Detach removes a previously attached observer; unknown observers are a
// no-op.
func (b *base) Detach(o Observer) {
	for i, existing := range b.observers {
		if existing == o {
			b.observers = append(b.observers[:i], b.observers[i+1:]...)

			return
		}
	}
}

func (b *base) notify(ev Event) {
	for _, o := range b.observers {
		o.Notify(ev)
	}
}

// Recorder is an Observer keeping a bounded in-memory history of events,
// oldest dropped first. The zero limit means unbounded.
type Recorder struct {
	limit  int
	events []Event
}

// NewRecorder returns a Recorder retaining at most limit events
// (0 = unbounded).
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Notify appends the event, evicting the oldest entry past the limit.
func (r *Recorder) Notify(ev Event) {
	r.events = append(r.events, ev)
	if r.limit > 0 && len(r.events) > r.limit {
		r.events = r.events[1:]
	}
}

// Events returns a copy of the recorded history, oldest first.
func (r *Recorder) Events() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)

	return out
}

// Reset clears the history.
func (r *Recorder) Reset() { r.events = nil }

// LogObserver emits one structured logrus entry per committed mutation.
// The graph core itself never logs; attach this observer to opt in.
type LogObserver struct {
	logger *logrus.Logger
}

// NewLogObserver returns a LogObserver writing to logger
// (logrus.StandardLogger() when nil).
func NewLogObserver(logger *logrus.Logger) *LogObserver {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &LogObserver{logger: logger}
}

// Notify logs the event at info level with one field per populated slot.
func (l *LogObserver) Notify(ev Event) {
	fields := logrus.Fields{"event": ev.Kind}
	if ev.Vertex != "" {
		fields["vertex"] = ev.Vertex
	}
	if ev.Source != "" {
		fields["source"] = ev.Source
		fields["target"] = ev.Target
		fields["weight"] = ev.Weight
	}
	if ev.EdgeID != "" {
		fields["edge_id"] = ev.EdgeID
	}
	l.logger.WithFields(fields).Info("graph mutated")
}
