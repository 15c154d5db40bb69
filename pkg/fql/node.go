/*
 * Copyright 2024 FQL Authors
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package fql

// Op identifies one of the six operators recognized by the engine.
type Op int

const (
	OpRoot Op = iota
	OpNot
	OpAnd
	OpOr
	OpPipe
	OpSubtract
)

func (op Op) String() string {
	switch op {
	case OpRoot:
		return "root"
	case OpNot:
		return "not"
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	case OpPipe:
		return "|"
	case OpSubtract:
		return "-"
	default:
		return "unknown op"
	}
}

// arity returns the number of children a fulfilled node of this Op must
// have: Root and Not are unary, the rest binary.
func arity(op Op) int {
	switch op {
	case OpRoot, OpNot:
		return 1
	default:
		return 2
	}
}

var opFromSymbol = map[string]Op{
	"not": OpNot,
	"-":   OpSubtract,
	"and": OpAnd,
	"or":  OpOr,
	"|":   OpPipe,
}

// opPriority implements the table in spec.md §3: a new operator climbs
// past every ancestor whose priority is not greater than its own, so
// higher numbers climb further during tree construction. Real operators
// (all priority 1) always climb past each other to the top of the tree
// under construction, while "not" (priority 0) stops at the first real
// operator above it and so binds to only the node directly beneath it.
var opPriority = map[Op]int{
	OpNot:      0,
	OpSubtract: 1,
	OpAnd:      1,
	OpOr:       1,
	OpPipe:     1,
	OpRoot:     1000,
}

// NodeKind distinguishes the two tagged variants of a tree Node.
type NodeKind int

const (
	NodeAtom NodeKind = iota
	NodeOperator
)

// Node is a node of a parsed, normalized expression tree. It is a
// tagged union over its Kind, mirroring the Kind-tagged *yaml.Node
// struct this engine's demo universe already depends on: a leaf
// carries Key/Value, an operator node carries Op and Children.
//
// Normalize rewrites a tree in place; apart from that, nothing in this
// package mutates a Node once Parse/Build has returned it.
type Node struct {
	Kind NodeKind

	// valid when Kind == NodeAtom
	Key   string
	Value string

	// valid when Kind == NodeOperator
	Op       Op
	Children []*Node
}

func (n *Node) isFulfilled() bool {
	if n.Kind == NodeAtom {
		return true
	}
	return len(n.Children) == arity(n.Op)
}

// Build constructs a rooted expression tree from an annotated token
// stream, wrapping it in an implicit Root node. It implements the
// priority-driven attach-point algorithm described in spec.md §4.3.
func Build(tokens []Token) (*Node, error) {
	bn, _, err := parseParenTree(tokens, 0, false)
	if err != nil {
		return nil, err
	}

	root := &Node{Kind: NodeOperator, Op: OpRoot, Children: []*Node{convertNode(bn)}}
	if err := checkFulfilled(root); err != nil {
		return nil, err
	}
	return root, nil
}

// buildNode is the mutable, parent-linked node used only during tree
// construction (spec.md §9's option (a): an arena of parent-linked
// nodes during the build phase, converted to a parent-free Node
// afterward). Parent pointers never escape this file.
type buildNode struct {
	isAtom bool
	key    string
	value  string

	op       Op
	children []*buildNode

	parent *buildNode
}

func isFulfilledBuild(n *buildNode) bool {
	if n.isAtom {
		return true
	}
	return len(n.children) == arity(n.op)
}

func addChild(parent, child *buildNode) {
	parent.children = append(parent.children, child)
	child.parent = parent
}

func replaceChild(parent, old, replacement *buildNode) {
	for i, c := range parent.children {
		if c == old {
			parent.children[i] = replacement
			replacement.parent = parent
			return
		}
	}
}

// parseParenTree scans tokens[start:] building a tree, recursing into
// a fresh call for every "(" and returning when it sees a matching ")"
// (if allowClosingParen) or runs out of tokens (if not). It returns the
// root of the subtree built and the index just past what it consumed.
func parseParenTree(tokens []Token, start int, allowClosingParen bool) (*buildNode, int, error) {
	var lastNode *buildNode

	i := start
	for i < len(tokens) {
		tok := tokens[i]
		i++

		switch tok.Kind {
		case TokenOp:
			switch tok.Sym {
			case ")":
				if !allowClosingParen {
					return nil, 0, syntaxErrorf("extra closing parenthesis")
				}
				return finishParen(lastNode, i)

			case "(":
				thisNode, ni, err := parseParenTree(tokens, i, true)
				if err != nil {
					return nil, 0, err
				}
				i = ni
				if lastNode == nil {
					lastNode = thisNode
				} else {
					addChild(lastNode, thisNode)
				}

			default:
				op, ok := opFromSymbol[tok.Sym]
				if !ok {
					return nil, 0, syntaxErrorf("unknown operator %q", tok.Sym)
				}
				thisNode := &buildNode{op: op}

				if lastNode == nil {
					lastNode = thisNode
					break
				}

				node := lastNode
				for {
					stop := node.parent == nil
					if !node.isAtom && opPriority[node.op] > opPriority[op] {
						stop = true
					}
					if stop {
						break
					}
					node = node.parent
				}
				attachPoint := node

				switch {
				case attachPoint.isAtom:
					addChild(thisNode, attachPoint)
					lastNode = thisNode

				case isFulfilledBuild(attachPoint):
					if attachPoint.parent == nil {
						addChild(thisNode, attachPoint)
					} else {
						replaceChild(attachPoint.parent, attachPoint, thisNode)
						addChild(thisNode, attachPoint)
					}
					lastNode = thisNode

				default:
					addChild(attachPoint, thisNode)
					lastNode = thisNode
				}
			}

		case TokenAtom:
			thisNode := &buildNode{isAtom: true, key: tok.Key, value: tok.Value}
			if lastNode == nil {
				lastNode = thisNode
			} else {
				if lastNode.isAtom {
					return nil, 0, syntaxErrorf("unexpected atom %q", tok.Key)
				}
				addChild(lastNode, thisNode)
			}
		}
	}

	if allowClosingParen {
		return nil, 0, syntaxErrorf("missing closing parenthesis")
	}
	return finishParen(lastNode, i)
}

func finishParen(lastNode *buildNode, i int) (*buildNode, int, error) {
	if lastNode == nil {
		return nil, 0, syntaxErrorf("empty expression")
	}
	root := lastNode
	for root.parent != nil {
		// corrected from the source's `rootNode = lastNode.parent` bug,
		// which reassigned from the same (constant) lastNode forever;
		// see SPEC_FULL.md §5 and DESIGN.md.
		root = root.parent
	}
	return root, i, nil
}

func convertNode(n *buildNode) *Node {
	if n.isAtom {
		return &Node{Kind: NodeAtom, Key: n.key, Value: n.value}
	}
	children := make([]*Node, len(n.children))
	for i, c := range n.children {
		children[i] = convertNode(c)
	}
	return &Node{Kind: NodeOperator, Op: n.op, Children: children}
}

func checkFulfilled(n *Node) error {
	if n.Kind == NodeAtom {
		return nil
	}
	if len(n.Children) != arity(n.Op) {
		return syntaxErrorf("operator not fulfilled")
	}
	for _, c := range n.Children {
		if err := checkFulfilled(c); err != nil {
			return err
		}
	}
	return nil
}
