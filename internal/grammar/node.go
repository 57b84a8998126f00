// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node and Document types produced by the grammar engine.
// Nodes are purely structural: scalars carry their raw text and a resolved
// (or non-specific) tag; no implicit typing is performed here.

package grammar

// Kind identifies the type of a node.
type Kind int8

const (
	ScalarNode Kind = 1 << iota
	SequenceNode
	MappingNode
	AliasNode
)

func (k Kind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case SequenceNode:
		return "sequence"
	case MappingNode:
		return "mapping"
	case AliasNode:
		return "alias"
	}
	return "<unknown kind>"
}

// Style records the presentation style a node was written in.
type Style int8

const (
	// PlainStyle is the zero style: an unquoted scalar or a block collection.
	PlainStyle Style = 0

	SingleQuotedStyle Style = 1 << iota
	DoubleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
)

func (s Style) String() string {
	switch s {
	case PlainStyle:
		return "plain"
	case SingleQuotedStyle:
		return "single-quoted"
	case DoubleQuotedStyle:
		return "double-quoted"
	case LiteralStyle:
		return "literal"
	case FoldedStyle:
		return "folded"
	case FlowStyle:
		return "flow"
	}
	return "<unknown style>"
}

// Non-specific tags. Untagged plain scalars carry NonSpecificTag ("?"):
// the caller may resolve them to any type. Untagged non-plain scalars and
// nodes tagged with a lone "!" carry StrTag semantics via LocalTag ("!").
const (
	NonSpecificTag = "?"
	LocalTag       = "!"
)

// Node is one vertex of a parsed document tree.
//
// For MappingNode, Content holds alternating key and value nodes; insertion
// order is preserved and keys need not be unique; duplicate-key policy is a
// caller concern. For SequenceNode, Content holds the items in source order.
// For AliasNode, Value holds the anchor name and Alias the node it resolved
// to; the target is shared, never owned, so alias resolution cannot create a
// second exclusive owner of a subtree.
type Node struct {
	Kind  Kind
	Style Style

	// Tag is the resolved tag of the node: a full tag URI (from a shorthand
	// expanded against the active tag-prefix table, or a verbatim !<...>
	// tag), or one of the non-specific tags "?" and "!". The engine never
	// narrows a non-specific tag to a concrete scalar type.
	Tag string

	// Value is the raw scalar text (for ScalarNode) or the anchor name
	// referenced (for AliasNode).
	Value string

	// Anchor is the anchor name defined on this node, if any.
	Anchor string

	// Alias is the anchored node an AliasNode resolved to.
	Alias *Node

	// Content holds sequence items or alternating mapping keys and values.
	Content []*Node

	// Line and Column record where the node's content begins.
	// Line is 1-indexed and Column is 0-indexed.
	Line   int
	Column int
}

// IsNull reports whether the node is an absent or empty plain scalar, the
// structural stand-in for null. The engine does not resolve "null"/"~"
// spellings; that is scalar typing, a caller concern.
func (n *Node) IsNull() bool {
	return n != nil && n.Kind == ScalarNode && n.Tag == NonSpecificTag && n.Value == ""
}

// VersionDirective holds a %YAML directive's version numbers.
type VersionDirective struct {
	Major int
	Minor int
}

// TagDirective holds one %TAG handle registration.
type TagDirective struct {
	Handle string
	Prefix string
}

// Document is one parsed unit of the stream: a root node plus the directive
// state that was in effect while it was parsed. Directive state does not
// outlive the document; the table and version reset at every document start.
type Document struct {
	// Root is the document's content. An empty document gets an empty
	// plain scalar as its root.
	Root *Node

	// Version is the negotiated %YAML version, or nil when the document
	// carried no version directive.
	Version *VersionDirective

	// TagDirectives lists the %TAG registrations that were in scope,
	// excluding the built-in "!" and "!!" handles.
	TagDirectives []TagDirective

	// Explicit reports whether the document began with a "---" marker.
	Explicit bool

	// StartMark and EndMark delimit the document in the input.
	StartMark Mark
	EndMark   Mark
}
