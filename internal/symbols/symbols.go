package symbols

// Kind discriminates the symbol collections.
type Kind int

const (
	KindUnknown Kind = iota
	KindNamespace
	KindRecord
	KindEnum
	KindFunction
	KindAlias
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindFunction:
		return "function"
	case KindAlias:
		return "alias"
	default:
		return "unknown"
	}
}

// Symbol holds the attributes shared by every documentable entity.
type Symbol struct {
	ID           SymbolID `json:"id"`
	Name         string   `json:"name"`
	File         string   `json:"file,omitempty"`
	Line         int      `json:"line,omitempty"`
	BriefComment string   `json:"brief_comment,omitempty"`
	DocComment   string   `json:"doc_comment,omitempty"`
	// ParentID is the enclosing namespace or record, NoID at the root.
	ParentID SymbolID `json:"parent_id,omitempty"`
	// IsDetail marks implementation details. They are de-emphasised, not hidden.
	IsDetail bool `json:"is_detail,omitempty"`
}

// Base returns the shared attributes. Every kind embeds Symbol, so every kind
// satisfies Documented through promotion.
func (s *Symbol) Base() *Symbol { return s }

// Documented is implemented by all symbol kinds.
type Documented interface {
	Base() *Symbol
}

// TypeRef names a type and, when the type is part of the index, its symbol.
type TypeRef struct {
	Name string   `json:"name"`
	ID   SymbolID `json:"id,omitempty"`
}

// TemplateParam is a single template parameter.
type TemplateParam struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultValue string `json:"default_value,omitempty"`
	DocComment   string `json:"doc_comment,omitempty"`
}

// Namespace groups child symbols. Namespaces have no page of their own; they
// are rendered as anchors on the namespace tree page.
type Namespace struct {
	Symbol
	Namespaces []SymbolID `json:"namespaces,omitempty"`
	Records    []SymbolID `json:"records,omitempty"`
	Enums      []SymbolID `json:"enums,omitempty"`
	Aliases    []SymbolID `json:"aliases,omitempty"`
	Functions  []SymbolID `json:"functions,omitempty"`
}

// BaseRecord is one edge of a record's inheritance list.
type BaseRecord struct {
	ID     SymbolID `json:"id,omitempty"`
	Name   string   `json:"name"`
	Access Access   `json:"access"`
}

// MemberVariable is a data member of a record.
type MemberVariable struct {
	Name         string  `json:"name"`
	Type         TypeRef `json:"type"`
	Access       Access  `json:"access"`
	IsStatic     bool    `json:"is_static,omitempty"`
	DefaultValue string  `json:"default_value,omitempty"`
	DocComment   string  `json:"doc_comment,omitempty"`
}

// Record is a struct, class or union.
type Record struct {
	Symbol
	// Type is the record keyword: "struct", "class" or "union".
	Type           string           `json:"type"`
	Proto          string           `json:"proto"`
	Bases          []BaseRecord     `json:"bases,omitempty"`
	Vars           []MemberVariable `json:"vars,omitempty"`
	Methods        []SymbolID       `json:"methods,omitempty"`
	Aliases        []SymbolID       `json:"aliases,omitempty"`
	HiddenFriends  []SymbolID       `json:"hidden_friends,omitempty"`
	TemplateParams []TemplateParam  `json:"template_params,omitempty"`
}

// EnumMember is a single enumerator.
type EnumMember struct {
	Name       string `json:"name"`
	Value      int64  `json:"value"`
	DocComment string `json:"doc_comment,omitempty"`
}

// Enum is an enumeration.
type Enum struct {
	Symbol
	// Type is "enum" or "enum class".
	Type    string       `json:"type"`
	Members []EnumMember `json:"members,omitempty"`
}

// FunctionParam is one function parameter.
type FunctionParam struct {
	Name         string  `json:"name"`
	Type         TypeRef `json:"type"`
	DefaultValue string  `json:"default_value,omitempty"`
	DocComment   string  `json:"doc_comment,omitempty"`
}

// Function is a free function, method or hidden friend.
type Function struct {
	Symbol
	// Proto is the full declaration. PostTemplate is the offset just past the
	// template clause and NameStart the offset of the name, so the prototype
	// splits as Proto[:PostTemplate], Proto[PostTemplate:NameStart],
	// Name, Proto[NameStart+len(Name):].
	Proto                string          `json:"proto"`
	PostTemplate         int             `json:"post_template,omitempty"`
	NameStart            int             `json:"name_start,omitempty"`
	ReturnType           TypeRef         `json:"return_type"`
	ReturnTypeDocComment string          `json:"return_type_doc_comment,omitempty"`
	Params               []FunctionParam `json:"params,omitempty"`
	TemplateParams       []TemplateParam `json:"template_params,omitempty"`
	Access               Access          `json:"access"`
	IsCtorOrDtor         bool            `json:"is_ctor_or_dtor,omitempty"`
	IsRecordMember       bool            `json:"is_record_member,omitempty"`
	IsHiddenFriend       bool            `json:"is_hidden_friend,omitempty"`
	// Group is NotGrouped unless the function is rendered on a group page.
	Group GroupKey `json:"-"`
}

// IsFreestanding reports whether the function belongs to a function group.
func (f *Function) IsFreestanding() bool { return !f.Group.IsZero() }

// Alias is a type alias or using-declaration.
type Alias struct {
	Symbol
	Proto          string          `json:"proto"`
	Target         TypeRef         `json:"target"`
	TemplateParams []TemplateParam `json:"template_params,omitempty"`
	Access         Access          `json:"access"`
	IsRecordMember bool            `json:"is_record_member,omitempty"`
}

// FunctionGroup collects the overloads of one free function name in one
// namespace. Functions is in declaration order and never empty.
type FunctionGroup struct {
	Key       GroupKey
	Functions []SymbolID
	IsDetail  bool
}
