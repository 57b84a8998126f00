// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Parametric context: the (indentation, context) pair that parameterizes
// every grammar production, kept as a stack so each parse frame restores its
// caller's parameters on every exit path.

package grammar

// Context selects which sub-grammar and indentation rules apply.
type Context int8

const (
	BlockOut Context = iota // Outside block sequence.
	BlockIn                 // Inside block sequence.
	BlockKey                // Implicit block key: single line, restricted set.
	FlowOut                 // Outside flow collection.
	FlowIn                  // Inside flow collection.
)

func (c Context) String() string {
	switch c {
	case BlockOut:
		return "block-out"
	case BlockIn:
		return "block-in"
	case BlockKey:
		return "block-key"
	case FlowOut:
		return "flow-out"
	case FlowIn:
		return "flow-in"
	}
	return "<unknown context>"
}

// inFlow reports whether the context is inside a flow collection, where
// ",", "[", "]", "{" and "}" terminate plain scalars.
func (c Context) inFlow() bool {
	return c == FlowIn
}

// singleLine reports whether the context restricts a node to one line.
func (c Context) singleLine() bool {
	return c == BlockKey
}

// contextFrame is one (context, indentation) pair.
type contextFrame struct {
	context Context
	indent  int
}

// contextStack threads the grammar parameters n and c through the recursive
// descent without passing them by value at every call site. Frames are
// immutable once pushed; a production that needs different parameters pushes
// a new frame and pops it on return.
//
// Not safe for sharing across goroutines; one stack belongs to exactly one
// in-progress parse.
type contextStack struct {
	frames []contextFrame
}

func newContextStack() *contextStack {
	// The stream root parses in block-out at indentation -1 so that
	// top-level content at column 0 satisfies indent > n.
	return &contextStack{frames: []contextFrame{{context: BlockOut, indent: -1}}}
}

// push enters a new parse frame and returns a token for the matching pop.
// The token is the depth to restore to, so an error path may pop several
// frames at once via a single deferred popTo.
func (s *contextStack) push(c Context, indent int) int {
	token := len(s.frames)
	s.frames = append(s.frames, contextFrame{context: c, indent: indent})
	return token
}

// pop restores the stack to the depth captured by push.
func (s *contextStack) pop(token int) {
	if token < 1 || token > len(s.frames) {
		panic("grammar: context stack pop out of order")
	}
	s.frames = s.frames[:token]
}

// indent returns the current indentation parameter n.
func (s *contextStack) indent() int {
	return s.frames[len(s.frames)-1].indent
}

// context returns the current context parameter c.
func (s *contextStack) context() Context {
	return s.frames[len(s.frames)-1].context
}

// depth returns the number of pushed frames, excluding the root frame.
func (s *contextStack) depth() int {
	return len(s.frames) - 1
}
