package shape

// Registry is the insertion-ordered list of drawables rendered on every draw event.
// Duplicates are allowed and render once per occurrence.
type Registry struct {
	items []Drawable
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add appends a drawable to the end of the draw order.
func (r *Registry) Add(d Drawable) {
	if d == nil {
		return
	}
	r.items = append(r.items, d)
}

// Len returns the number of registered drawables.
func (r *Registry) Len() int {
	return len(r.items)
}

// Each calls fn for every drawable in insertion order.
func (r *Registry) Each(fn func(Drawable)) {
	for _, d := range r.items {
		fn(d)
	}
}
