// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package grammar

import (
	"testing"

	"go.yaml.in/parser/internal/testutil/assert"
)

func TestContextPredicates(t *testing.T) {
	assert.True(t, FlowIn.inFlow())
	assert.False(t, FlowOut.inFlow())
	assert.False(t, BlockIn.inFlow())

	assert.True(t, BlockKey.singleLine())
	assert.False(t, BlockIn.singleLine())
	assert.False(t, FlowIn.singleLine())
}

func TestContextString(t *testing.T) {
	assert.Equal(t, "block-out", BlockOut.String())
	assert.Equal(t, "block-in", BlockIn.String())
	assert.Equal(t, "block-key", BlockKey.String())
	assert.Equal(t, "flow-out", FlowOut.String())
	assert.Equal(t, "flow-in", FlowIn.String())
}

func TestContextStackRoot(t *testing.T) {
	s := newContextStack()
	assert.Equal(t, BlockOut, s.context())
	assert.Equal(t, -1, s.indent())
	assert.Equal(t, 0, s.depth())
}

func TestContextStackPushPop(t *testing.T) {
	s := newContextStack()
	tok1 := s.push(BlockIn, 0)
	tok2 := s.push(FlowIn, 2)
	assert.Equal(t, FlowIn, s.context())
	assert.Equal(t, 2, s.indent())
	assert.Equal(t, 2, s.depth())

	s.pop(tok2)
	assert.Equal(t, BlockIn, s.context())
	assert.Equal(t, 0, s.indent())

	s.pop(tok1)
	assert.Equal(t, BlockOut, s.context())
	assert.Equal(t, -1, s.indent())
}

func TestContextStackPopUnwindsSeveralFrames(t *testing.T) {
	s := newContextStack()
	tok := s.push(BlockIn, 0)
	s.push(FlowIn, 2)
	s.push(FlowIn, 4)
	s.pop(tok)
	assert.Equal(t, 0, s.depth())
}

// The scalar scanners take their line and indentation rules from the
// innermost frame, not from arguments.
func TestContextStackDrivesScanning(t *testing.T) {
	p := testParser(t, "'a\nb'")
	node, err := p.parseQuoted(false)
	assert.Truef(t, err == nil, "unexpected error: %v", err)
	assert.Equal(t, "a b", node.Value)

	p = testParser(t, "'a\nb'")
	tok := p.ctx.push(BlockKey, 0)
	defer p.ctx.pop(tok)
	_, err = p.parseQuoted(false)
	assert.Truef(t, err != nil, "expected a single-line violation")
	assert.Equal(t, ErrExpectedCloseDelimiter, err.Kind)
}

func TestContextStackDrivesPlainFolding(t *testing.T) {
	p := testParser(t, "a\nb")
	node := p.parsePlain()
	assert.Equal(t, "a b", node.Value)

	p = testParser(t, "a\nb")
	tok := p.ctx.push(BlockKey, 0)
	defer p.ctx.pop(tok)
	node = p.parsePlain()
	assert.Equal(t, "a", node.Value)
}

func TestContextStackPopOutOfOrder(t *testing.T) {
	s := newContextStack()
	tok := s.push(BlockIn, 0)
	s.pop(tok)
	assert.PanicMatches(t, "context stack pop out of order", func() {
		s.pop(tok + 1)
	})

	assert.PanicMatches(t, "context stack pop out of order", func() {
		s.pop(0) // the root frame may never be popped
	})
}
