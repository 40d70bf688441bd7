package responding

// Data is the set of variables passed to a template engine for rendering.
type Data map[string]interface{}

// Clone returns a shallow copy of the data, so overlays won't mutate the
// caller's map.
func (d Data) Clone() Data {
	cloned := make(Data, len(d))
	for key, value := range d {
		cloned[key] = value
	}
	return cloned
}

// MergeReserved overlays reserved keys onto a copy of the data. Reserved keys
// win over caller-supplied keys of the same name; collisions are not reported.
func (d Data) MergeReserved(reserved Data) Data {
	merged := d.Clone()
	for key, value := range reserved {
		merged[key] = value
	}
	return merged
}
