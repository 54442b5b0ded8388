package ir

// Package ir defines the minimal intermediate representation produced by
// schema compilation. This package is internal and not part of the public
// API.

// NodeKind identifies an IR node type.
type NodeKind int

const (
	NodePrimitive NodeKind = iota
	NodeArray
	NodeObject
	NodeOneOf
)

// Node is the root IR node interface.
type Node interface {
	Kind() NodeKind
}

// Primitive represents a scalar leaf. Name uses JSON-compatible names plus
// the two temporal refinements ("string"|"number"|"boolean"|"date"|"datetime").
type Primitive struct {
	Name string
}

func (p *Primitive) Kind() NodeKind { return NodePrimitive }

// Array represents a homogeneous sequence.
type Array struct {
	Item Node
}

func (a *Array) Kind() NodeKind { return NodeArray }

// Object represents a mapping with declared fields. An Object with no
// fields is open: any mapping conforms.
type Object struct {
	Fields      []Field
	Title       string
	Description string
}

func (o *Object) Kind() NodeKind { return NodeObject }

// Field binds one declared name to its node plus validation metadata.
// Default and Examples hold caller-domain values; the compiler layer owns
// their concrete type.
type Field struct {
	Name        string
	Node        Node
	Required    bool
	Default     any
	HasDefault  bool
	Description string
	Examples    []any
	UI          map[string]any
}

// OneOf represents the card union, discriminated by the variant name each
// card block declares.
type OneOf struct {
	Discriminator string
	Mapping       map[string]*Object // variant name -> variant schema
}

func (u *OneOf) Kind() NodeKind { return NodeOneOf }
