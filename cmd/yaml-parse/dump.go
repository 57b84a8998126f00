// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/parser"
)

// writeOutline renders a node tree as an indented outline, one node per
// line, with kind, style, tag and value.
func writeOutline(out io.Writer, n *parser.Node, depth int, positions bool) {
	indent := strings.Repeat("  ", depth)
	pos := ""
	if positions {
		pos = fmt.Sprintf(" @%d:%d", n.Line, n.Column+1)
	}
	switch n.Kind {
	case parser.AliasNode:
		fmt.Fprintf(out, "%salias *%s%s\n", indent, n.Value, pos)
	case parser.ScalarNode:
		anchor := ""
		if n.Anchor != "" {
			anchor = " &" + n.Anchor
		}
		fmt.Fprintf(out, "%s%s%s <%s> %q%s\n", indent, styleName(n.Style), anchor, n.Tag, n.Value, pos)
	case parser.SequenceNode, parser.MappingNode:
		anchor := ""
		if n.Anchor != "" {
			anchor = " &" + n.Anchor
		}
		fmt.Fprintf(out, "%s%s%s <%s>%s\n", indent, n.Kind, anchor, n.Tag, pos)
		if n.Kind == parser.MappingNode {
			for i := 0; i+1 < len(n.Content); i += 2 {
				fmt.Fprintf(out, "%s  key:\n", indent)
				writeOutline(out, n.Content[i], depth+2, positions)
				fmt.Fprintf(out, "%s  value:\n", indent)
				writeOutline(out, n.Content[i+1], depth+2, positions)
			}
			return
		}
		for _, c := range n.Content {
			writeOutline(out, c, depth+1, positions)
		}
	}
}

func styleName(s parser.Style) string {
	switch s {
	case parser.SingleQuotedStyle:
		return "single-quoted"
	case parser.DoubleQuotedStyle:
		return "double-quoted"
	case parser.LiteralStyle:
		return "literal"
	case parser.FoldedStyle:
		return "folded"
	}
	return "plain"
}

// writeJSON renders a node tree as JSON. Mappings become objects keyed by
// the scalar value of each key, sequences become arrays, scalars become
// strings, and aliases are replaced by their targets.
func writeJSON(out io.Writer, n *parser.Node) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonValue(n, 0))
}

// jsonValue converts a node to a JSON-encodable value. Aliased subtrees
// are expanded in place, with a depth cap so that repeated expansion of
// deeply shared structure stays bounded.
func jsonValue(n *parser.Node, depth int) any {
	if n == nil || depth > 100 {
		return nil
	}
	switch n.Kind {
	case parser.AliasNode:
		return jsonValue(n.Alias, depth+1)
	case parser.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			arr = append(arr, jsonValue(c, depth+1))
		}
		return arr
	case parser.MappingNode:
		obj := make(map[string]any, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			key := n.Content[i].Value
			if n.Content[i].Kind != parser.ScalarNode {
				key = fmt.Sprintf("%s@%d:%d", n.Content[i].Kind, n.Content[i].Line, n.Content[i].Column+1)
			}
			obj[key] = jsonValue(n.Content[i+1], depth+1)
		}
		return obj
	default:
		if n.IsNull() {
			return nil
		}
		return n.Value
	}
}
