package types

// Roster is the complete set of activities as last fetched from the backend,
// keyed by activity name. Iteration order is the server's response order,
// which is the display order. A roster is only ever replaced wholesale; there
// are no partial updates.
type Roster struct {
	order  []string
	byName map[string]Activity
}

// NewRoster creates an empty roster.
func NewRoster() Roster {
	return Roster{byName: make(map[string]Activity)}
}

// Add inserts an activity, keeping first-insertion order. Adding a name that
// already exists overwrites the entry without changing its position.
func (r *Roster) Add(a Activity) {
	if r.byName == nil {
		r.byName = make(map[string]Activity)
	}
	if _, exists := r.byName[a.Name]; !exists {
		r.order = append(r.order, a.Name)
	}
	r.byName[a.Name] = a
}

// Get returns the activity with the given name.
func (r Roster) Get(name string) (Activity, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// Names returns activity names in display order.
func (r Roster) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Activities returns all activities in display order.
func (r Roster) Activities() []Activity {
	out := make([]Activity, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// Len returns the number of activities.
func (r Roster) Len() int {
	return len(r.order)
}

// Clone returns a deep copy, so callers can hold a snapshot while the owning
// store replaces the cached roster.
func (r Roster) Clone() Roster {
	out := Roster{
		order:  make([]string, len(r.order)),
		byName: make(map[string]Activity, len(r.byName)),
	}
	copy(out.order, r.order)
	for name, a := range r.byName {
		participants := make([]string, len(a.Participants))
		copy(participants, a.Participants)
		a.Participants = participants
		out.byName[name] = a
	}
	return out
}
