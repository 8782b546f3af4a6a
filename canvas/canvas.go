// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package canvas is an in-memory SVG drawing surface.
// It is not safe for concurrent use, events are expected to be delivered serially.
package canvas

import (
	"errors"
	"fmt"
	"math"

	"github.com/zhangyunhao116/skipmap"
)

const Namespace = "http://www.w3.org/2000/svg"

// ErrDetached is returned when removing a node which is not (or no longer) part of the canvas.
var ErrDetached = errors.New("node is not attached")

type Canvas struct {
	width  float64
	height float64
	root   *Node
	// All attached nodes by id, ids are increasing in attach order.
	nodes     *skipmap.Int64Map[*Node]
	nextId    int64
	listeners []*Subscription
}

func New(width, height float64) *Canvas {
	c := &Canvas{
		width:  width,
		height: height,
		nodes:  skipmap.NewInt64[*Node](),
	}
	c.root = NewNode("svg").
		Set("xmlns", Namespace).
		SetFloat("width", math.Floor(width)).
		SetFloat("height", math.Floor(height))
	c.register(c.root)
	return c
}

func (c *Canvas) Width() float64 {
	return c.width
}

func (c *Canvas) Height() float64 {
	return c.height
}

func (c *Canvas) Root() *Node {
	return c.root
}

// Append attaches child including all of its children as last child of parent.
func (c *Canvas) Append(parent, child *Node) error {
	if parent == nil || !parent.attached {
		return fmt.Errorf("cannot append %s: parent %w", child.Name, ErrDetached)
	}
	if child.attached {
		return fmt.Errorf("%s is already attached", child.Name)
	}
	parent.Add(child)
	c.register(child)
	return nil
}

func (c *Canvas) register(n *Node) {
	c.nextId++
	n.id = c.nextId
	n.attached = true
	c.nodes.Store(n.id, n)
	for _, child := range n.children {
		c.register(child)
	}
}

func (c *Canvas) unregister(n *Node) {
	n.attached = false
	c.nodes.Delete(n.id)
	for _, child := range n.children {
		c.unregister(child)
	}
}

// Remove detaches n and all of its children.
func (c *Canvas) Remove(n *Node) error {
	if n == nil || !n.attached || n == c.root {
		return ErrDetached
	}
	if _, ok := c.nodes.Load(n.id); !ok {
		return ErrDetached
	}
	if n.parent == nil || !n.parent.removeChild(n) {
		return ErrDetached
	}
	c.unregister(n)
	return nil
}

// FindMarked returns all attached nodes with the given marker in attach order.
func (c *Canvas) FindMarked(marker string) []*Node {
	var found []*Node
	c.nodes.Range(func(_ int64, n *Node) bool {
		if n.marker == marker {
			found = append(found, n)
		}
		return true
	})
	return found
}

// RemoveMarked removes all nodes with the given marker and returns the number of removed nodes.
func (c *Canvas) RemoveMarked(marker string) int {
	var removed int
	for _, n := range c.FindMarked(marker) {
		// Marked nodes may be nested, the inner ones are already gone with their parent.
		if n.attached && c.Remove(n) == nil {
			removed++
		}
	}
	return removed
}

// NumNodes returns the number of attached nodes including the root.
func (c *Canvas) NumNodes() int {
	return c.nodes.Len()
}
