package property

// Resolver maps authored reference ids to live objects.
type Resolver interface {
	GetReferenceValue(id string) (any, bool)
}

// Reference is an authored, weak link to a live object of type T. It is stored
// by id and looked up per playback instance.
type Reference[T any] struct {
	ID string `yaml:"id"`
}

// Resolve looks the reference up. A missing id, or an object of the wrong
// type, is reported as not found.
func (r Reference[T]) Resolve(res Resolver) (T, bool) {
	var zero T
	if r.ID == "" || res == nil {
		return zero, false
	}
	v, ok := res.GetReferenceValue(r.ID)
	if !ok || v == nil {
		return zero, false
	}
	t, ok := v.(T)
	return t, ok
}
