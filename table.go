package knobs

import "sort"

// Definitions maps each live annotation site to its editor descriptor.
// It is rebuilt from scratch every pass by merging per-site emissions; it is
// never updated incrementally.
type Definitions struct {
	m          map[SiteKey]Descriptor
	collisions int
}

// NewDefinitions returns an empty definition table. The empty table is the
// identity element of Merge.
func NewDefinitions() *Definitions {
	return &Definitions{m: make(map[SiteKey]Descriptor)}
}

// Add records one site emission. When a key is emitted twice within a pass
// the last writer wins; the collision is counted for debug reporting.
func (d *Definitions) Add(key SiteKey, desc Descriptor) {
	if _, exists := d.m[key]; exists {
		d.collisions++
	}
	d.m[key] = desc
}

// Merge folds other into d, with other's entries winning on collision.
// Merge is associative, so the result is independent of how a tree happens to
// be chunked into subtrees.
func (d *Definitions) Merge(other *Definitions) {
	if other == nil {
		return
	}
	for k, v := range other.m {
		d.Add(k, v)
	}
	d.collisions += other.collisions
}

// Get returns the descriptor for key, if present.
func (d *Definitions) Get(key SiteKey) (Descriptor, bool) {
	desc, ok := d.m[key]
	return desc, ok
}

// Len returns the number of distinct sites.
func (d *Definitions) Len() int {
	return len(d.m)
}

// Keys returns the sites in display order: ascending (file, line, column).
func (d *Definitions) Keys() []SiteKey {
	keys := make([]SiteKey, 0, len(d.m))
	for k := range d.m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
	return keys
}

// Collisions returns how many emissions overwrote an existing entry. Expected
// to be zero; a nonzero count usually points at two annotations with
// accidentally shared identity.
func (d *Definitions) Collisions() int {
	return d.collisions
}

// Values is a panel's table of current values, one type-erased entry per live
// site. The zero value is an empty table. It is owned and mutated exclusively
// by the Panel; descendants only ever see a snapshot for the duration of one
// pass.
type Values struct {
	m map[SiteKey]any
}

// Get returns the stored value for key, if present.
func (v Values) Get(key SiteKey) (any, bool) {
	val, ok := v.m[key]
	return val, ok
}

// Len returns the number of stored values.
func (v Values) Len() int {
	return len(v.m)
}

// deriveValues computes the next value table from the previous one and the
// freshly merged definitions: the prior value is retained when one exists,
// otherwise the descriptor's default is used. Sites absent from defs are
// dropped: a site that unmounts loses its stored value.
func deriveValues(prior Values, defs *Definitions) Values {
	next := Values{m: make(map[SiteKey]any, defs.Len())}
	for k, desc := range defs.m {
		if old, ok := prior.m[k]; ok {
			next.m[k] = old
		} else {
			next.m[k] = desc.Default
		}
	}
	return next
}
