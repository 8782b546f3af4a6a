// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package canvas

import "strconv"

type attr struct {
	key   string
	value string
}

// Node is a single SVG element. Attributes keep their insertion order.
type Node struct {
	id       int64
	Name     string
	attrs    []attr
	text     string
	marker   string
	parent   *Node
	children []*Node
	attached bool
}

func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Set adds or replaces an attribute.
func (n *Node) Set(key, value string) *Node {
	for i := range n.attrs {
		if n.attrs[i].key == key {
			n.attrs[i].value = value
			return n
		}
	}
	n.attrs = append(n.attrs, attr{key: key, value: value})
	return n
}

func (n *Node) SetFloat(key string, v float64) *Node {
	return n.Set(key, FormatFloat(v))
}

func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.key == key {
			return a.value, true
		}
	}
	return "", false
}

func (n *Node) AttrFloat(key string) (float64, bool) {
	s, ok := n.Attr(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}

func (n *Node) SetText(s string) *Node {
	n.text = s
	return n
}

func (n *Node) Text() string {
	return n.text
}

// Mark tags the node with a marker name. It is also written as class attribute.
func (n *Node) Mark(marker string) *Node {
	n.marker = marker
	return n.Set("class", marker)
}

func (n *Node) Marker() string {
	return n.marker
}

func (n *Node) Parent() *Node {
	return n.parent
}

func (n *Node) Children() []*Node {
	return n.children
}

// Attached reports whether the node is part of a canvas tree.
func (n *Node) Attached() bool {
	return n.attached
}

// Add appends child to a node which is not yet attached to a canvas, e.g. to build a group.
// Use Canvas.Append for attached nodes.
func (n *Node) Add(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

func (n *Node) removeChild(child *Node) bool {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
