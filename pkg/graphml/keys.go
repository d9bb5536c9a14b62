package graphml

// keyDef is one accumulated <key> declaration: the attribute id plus the
// scope and type it was first seen with.
type keyDef struct {
	id    string
	scope Scope
	typ   Type
}

// keySet accumulates the <key> declarations for one export pass. Each
// attribute id is declared at most once, with the scope and type of its
// first occurrence; the insertion order is preserved so the declarations
// appear in the document in first-seen order.
//
// A keySet is local to a single export call and never shared, so it needs
// no locking.
type keySet struct {
	defs  map[string]keyDef
	order []string // attribute ids in first-seen order
}

func newKeySet() *keySet {
	return &keySet{defs: make(map[string]keyDef)}
}

// register records the scope and type for an attribute id the first time it
// is seen. Later registrations of the same id are ignored, even when they
// carry a different scope or type (first-write-wins).
func (ks *keySet) register(id string, scope Scope, typ Type) {
	if _, seen := ks.defs[id]; seen {
		return
	}
	ks.defs[id] = keyDef{id: id, scope: scope, typ: typ}
	ks.order = append(ks.order, id)
}

// all returns the accumulated definitions in first-seen order.
func (ks *keySet) all() []keyDef {
	defs := make([]keyDef, len(ks.order))
	for i, id := range ks.order {
		defs[i] = ks.defs[id]
	}
	return defs
}
