package symbols

// Index is the immutable symbol graph. Maps are keyed by SymbolID; the
// order slices record the order in which each collection was declared in the
// source document and are used wherever a declaration order is needed.
type Index struct {
	Namespaces map[SymbolID]*Namespace
	Records    map[SymbolID]*Record
	Enums      map[SymbolID]*Enum
	Functions  map[SymbolID]*Function
	Aliases    map[SymbolID]*Alias
	Groups     map[GroupKey]*FunctionGroup

	// declaration order of each collection
	namespaceOrder []SymbolID
	recordOrder    []SymbolID
	enumOrder      []SymbolID
	functionOrder  []SymbolID
	aliasOrder     []SymbolID
	groupOrder     []GroupKey
}

// NewIndex returns an empty index ready to be populated with the Add methods.
// The Add methods exist for the loader and for tests; an Index must not be
// modified once rendering has started.
func NewIndex() *Index {
	return &Index{
		Namespaces: make(map[SymbolID]*Namespace),
		Records:    make(map[SymbolID]*Record),
		Enums:      make(map[SymbolID]*Enum),
		Functions:  make(map[SymbolID]*Function),
		Aliases:    make(map[SymbolID]*Alias),
		Groups:     make(map[GroupKey]*FunctionGroup),
	}
}

func (ix *Index) AddNamespace(n *Namespace) {
	if _, ok := ix.Namespaces[n.ID]; !ok {
		ix.namespaceOrder = append(ix.namespaceOrder, n.ID)
	}
	ix.Namespaces[n.ID] = n
}

func (ix *Index) AddRecord(r *Record) {
	if _, ok := ix.Records[r.ID]; !ok {
		ix.recordOrder = append(ix.recordOrder, r.ID)
	}
	ix.Records[r.ID] = r
}

func (ix *Index) AddEnum(e *Enum) {
	if _, ok := ix.Enums[e.ID]; !ok {
		ix.enumOrder = append(ix.enumOrder, e.ID)
	}
	ix.Enums[e.ID] = e
}

func (ix *Index) AddFunction(f *Function) {
	if _, ok := ix.Functions[f.ID]; !ok {
		ix.functionOrder = append(ix.functionOrder, f.ID)
	}
	ix.Functions[f.ID] = f
}

func (ix *Index) AddAlias(a *Alias) {
	if _, ok := ix.Aliases[a.ID]; !ok {
		ix.aliasOrder = append(ix.aliasOrder, a.ID)
	}
	ix.Aliases[a.ID] = a
}

// AddGroup registers a function group and marks its members as grouped.
// Members must already be present; unknown members are dropped from the
// group. A group left without members is not registered.
func (ix *Index) AddGroup(g *FunctionGroup) {
	members := make([]SymbolID, 0, len(g.Functions))
	for _, id := range g.Functions {
		f, ok := ix.Functions[id]
		if !ok {
			continue
		}
		f.Group = g.Key
		members = append(members, id)
	}
	if len(members) == 0 {
		return
	}
	g.Functions = members
	if _, ok := ix.Groups[g.Key]; !ok {
		ix.groupOrder = append(ix.groupOrder, g.Key)
	}
	ix.Groups[g.Key] = g
}

// Namespace returns the namespace with the given id. NoID is never found.
func (ix *Index) Namespace(id SymbolID) (*Namespace, bool) {
	if !id.IsValid() {
		return nil, false
	}
	n, ok := ix.Namespaces[id]
	return n, ok
}

// Record returns the record with the given id. NoID is never found.
func (ix *Index) Record(id SymbolID) (*Record, bool) {
	if !id.IsValid() {
		return nil, false
	}
	r, ok := ix.Records[id]
	return r, ok
}

// Enum returns the enum with the given id. NoID is never found.
func (ix *Index) Enum(id SymbolID) (*Enum, bool) {
	if !id.IsValid() {
		return nil, false
	}
	e, ok := ix.Enums[id]
	return e, ok
}

// Function returns the function with the given id. NoID is never found.
func (ix *Index) Function(id SymbolID) (*Function, bool) {
	if !id.IsValid() {
		return nil, false
	}
	f, ok := ix.Functions[id]
	return f, ok
}

// Alias returns the alias with the given id. NoID is never found.
func (ix *Index) Alias(id SymbolID) (*Alias, bool) {
	if !id.IsValid() {
		return nil, false
	}
	a, ok := ix.Aliases[id]
	return a, ok
}

// Group returns the function group with the given key.
func (ix *Index) Group(k GroupKey) (*FunctionGroup, bool) {
	if k.IsZero() {
		return nil, false
	}
	g, ok := ix.Groups[k]
	return g, ok
}

// KindOf classifies a bare identifier. Collections are consulted in the fixed
// order record, enum, alias, function, namespace.
func (ix *Index) KindOf(id SymbolID) Kind {
	if !id.IsValid() {
		return KindUnknown
	}
	if _, ok := ix.Records[id]; ok {
		return KindRecord
	}
	if _, ok := ix.Enums[id]; ok {
		return KindEnum
	}
	if _, ok := ix.Aliases[id]; ok {
		return KindAlias
	}
	if _, ok := ix.Functions[id]; ok {
		return KindFunction
	}
	if _, ok := ix.Namespaces[id]; ok {
		return KindNamespace
	}
	return KindUnknown
}

// NamespaceIDs returns namespace ids in declaration order.
func (ix *Index) NamespaceIDs() []SymbolID { return cloneIDs(ix.namespaceOrder) }

// RecordIDs returns record ids in declaration order.
func (ix *Index) RecordIDs() []SymbolID { return cloneIDs(ix.recordOrder) }

// EnumIDs returns enum ids in declaration order.
func (ix *Index) EnumIDs() []SymbolID { return cloneIDs(ix.enumOrder) }

// FunctionIDs returns function ids in declaration order.
func (ix *Index) FunctionIDs() []SymbolID { return cloneIDs(ix.functionOrder) }

// AliasIDs returns alias ids in declaration order.
func (ix *Index) AliasIDs() []SymbolID { return cloneIDs(ix.aliasOrder) }

// GroupKeys returns group keys in declaration order.
func (ix *Index) GroupKeys() []GroupKey {
	out := make([]GroupKey, len(ix.groupOrder))
	copy(out, ix.groupOrder)
	return out
}

func cloneIDs(ids []SymbolID) []SymbolID {
	out := make([]SymbolID, len(ids))
	copy(out, ids)
	return out
}
