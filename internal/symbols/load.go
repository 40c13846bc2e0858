package symbols

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// document is the on-disk layout of a symbol index.
type document struct {
	Namespaces     []*Namespace    `json:"namespaces"`
	Records        []*Record       `json:"records"`
	Enums          []*Enum         `json:"enums"`
	Functions      []*Function     `json:"functions"`
	Aliases        []*Alias        `json:"aliases"`
	FunctionGroups []groupDocument `json:"function_groups"`
}

type groupDocument struct {
	Namespace SymbolID   `json:"namespace"`
	Name      string     `json:"name"`
	Functions []SymbolID `json:"functions"`
	IsDetail  *bool      `json:"is_detail,omitempty"`
}

// LoadIndexFile reads a symbol index from a JSON file.
func LoadIndexFile(path string) (*Index, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return LoadIndex(f)
}

// LoadIndex decodes a symbol index. Entries with a zero id are rejected
// because the zero id means "absent" everywhere else.
//
// When the document carries no function_groups, groups are derived from the
// free functions: every function that is neither a record member nor a hidden
// friend joins the group keyed by its parent namespace and name, in
// declaration order.
func LoadIndex(r io.Reader) (*Index, error) {
	var doc document
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode index: %w", err)
	}

	ix := NewIndex()
	for i, n := range doc.Namespaces {
		if n == nil || !n.ID.IsValid() {
			return nil, fmt.Errorf("namespace #%d: missing id", i)
		}
		ix.AddNamespace(n)
	}
	for i, rec := range doc.Records {
		if rec == nil || !rec.ID.IsValid() {
			return nil, fmt.Errorf("record #%d: missing id", i)
		}
		ix.AddRecord(rec)
	}
	for i, e := range doc.Enums {
		if e == nil || !e.ID.IsValid() {
			return nil, fmt.Errorf("enum #%d: missing id", i)
		}
		ix.AddEnum(e)
	}
	for i, fn := range doc.Functions {
		if fn == nil || !fn.ID.IsValid() {
			return nil, fmt.Errorf("function #%d: missing id", i)
		}
		ix.AddFunction(fn)
	}
	for i, a := range doc.Aliases {
		if a == nil || !a.ID.IsValid() {
			return nil, fmt.Errorf("alias #%d: missing id", i)
		}
		ix.AddAlias(a)
	}

	if len(doc.FunctionGroups) > 0 {
		for _, gd := range doc.FunctionGroups {
			if gd.Name == "" {
				return nil, fmt.Errorf("function group in namespace %s: missing name", gd.Namespace)
			}
			g := &FunctionGroup{Key: GroupKey{Namespace: gd.Namespace, Name: gd.Name}, Functions: gd.Functions}
			ix.AddGroup(g)
			if gd.IsDetail != nil {
				g.IsDetail = *gd.IsDetail
			} else {
				g.IsDetail = ix.allDetail(g.Functions)
			}
		}
		return ix, nil
	}

	DeriveGroups(ix)
	return ix, nil
}

// DeriveGroups builds function groups from the free functions of ix.
// A group is a detail group only when every member is a detail.
func DeriveGroups(ix *Index) {
	pending := make(map[GroupKey]*FunctionGroup)
	var order []GroupKey
	for _, id := range ix.functionOrder {
		f := ix.Functions[id]
		if f.IsRecordMember || f.IsHiddenFriend || f.Name == "" {
			continue
		}
		key := GroupKey{Namespace: f.ParentID, Name: f.Name}
		g, ok := pending[key]
		if !ok {
			g = &FunctionGroup{Key: key}
			pending[key] = g
			order = append(order, key)
		}
		g.Functions = append(g.Functions, id)
	}
	for _, key := range order {
		g := pending[key]
		ix.AddGroup(g)
		g.IsDetail = ix.allDetail(g.Functions)
	}
}

func (ix *Index) allDetail(ids []SymbolID) bool {
	if len(ids) == 0 {
		return false
	}
	for _, id := range ids {
		if f, ok := ix.Functions[id]; ok && !f.IsDetail {
			return false
		}
	}
	return true
}
