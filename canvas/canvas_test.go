// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package canvas

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendAndRemove(t *testing.T) {
	c := New(500.7, 300)
	group := NewNode("g").Add(NewNode("rect")).Add(NewNode("text").SetText("a"))
	assert.NoError(t, c.Append(c.Root(), group))
	assert.Equal(t, 4, c.NumNodes())
	assert.True(t, group.Children()[0].Attached())

	assert.NoError(t, c.Remove(group))
	assert.Equal(t, 1, c.NumNodes())
	assert.False(t, group.Attached())
	assert.False(t, group.Children()[1].Attached())
	assert.Empty(t, c.Root().Children())

	// Removing twice fails.
	assert.ErrorIs(t, c.Remove(group), ErrDetached)
	assert.ErrorIs(t, c.Remove(c.Root()), ErrDetached)
	assert.ErrorIs(t, c.Remove(nil), ErrDetached)
}

func TestAppendToDetachedParent(t *testing.T) {
	c := New(100, 100)
	err := c.Append(NewNode("g"), NewNode("rect"))
	assert.ErrorIs(t, err, ErrDetached)

	n := NewNode("rect")
	assert.NoError(t, c.Append(c.Root(), n))
	assert.Error(t, c.Append(c.Root(), n))
}

func TestRemoveMarked(t *testing.T) {
	c := New(100, 100)
	for i := 0; i < 3; i++ {
		g := NewNode("g").Mark("highlight")
		g.Add(NewNode("rect").Mark("highlight"))
		assert.NoError(t, c.Append(c.Root(), g))
	}
	assert.NoError(t, c.Append(c.Root(), NewNode("polyline").Mark("candle")))
	assert.Len(t, c.FindMarked("highlight"), 6)

	assert.Equal(t, 3, c.RemoveMarked("highlight"))
	assert.Empty(t, c.FindMarked("highlight"))
	assert.Len(t, c.FindMarked("candle"), 1)
	assert.Equal(t, 0, c.RemoveMarked("highlight"))
}

func TestFindMarkedKeepsOrder(t *testing.T) {
	c := New(100, 100)
	for _, s := range []string{"a", "b", "c"} {
		assert.NoError(t, c.Append(c.Root(), NewNode("text").Mark("row").SetText(s)))
	}
	var texts []string
	for _, n := range c.FindMarked("row") {
		texts = append(texts, n.Text())
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}

func TestListenAndClose(t *testing.T) {
	c := New(100, 100)
	var received []Event
	s := c.Listen(func(e Event) { received = append(received, e) })
	c.Dispatch(Event{Type: PointerMove, X: 1, Y: 2})
	assert.Equal(t, []Event{{Type: PointerMove, X: 1, Y: 2}}, received)

	s.Close()
	s.Close()
	assert.False(t, s.Active())
	assert.Equal(t, 0, c.NumListeners())
	c.Dispatch(Event{Type: PointerDown})
	assert.Len(t, received, 1)
}

func TestWriteTo(t *testing.T) {
	c := New(200.5, 100)
	c.Root().Set("style", "background-color: white")
	assert.NoError(t, c.Append(c.Root(), NewNode("polyline").Set("points", "1,2 3,4 ")))
	assert.NoError(t, c.Append(c.Root(), NewNode("text").SetText("a < b & \"c\"")))
	var b bytes.Buffer
	_, err := c.WriteTo(&b)
	assert.NoError(t, err)
	assert.Equal(t,
		`<svg xmlns="http://www.w3.org/2000/svg" width="200" height="100" style="background-color: white">`+
			`<polyline points="1,2 3,4 "/><text>a &lt; b &amp; &#34;c&#34;</text></svg>`,
		b.String())
	assert.Equal(t, b.String(), c.String())
}

func TestNodeAttributes(t *testing.T) {
	n := NewNode("rect").SetFloat("x", 1.5).Set("y", "2")
	n.SetFloat("x", 3)
	v, ok := n.AttrFloat("x")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	_, ok = n.Attr("width")
	assert.False(t, ok)
	n.Mark("box")
	class, _ := n.Attr("class")
	assert.Equal(t, "box", class)
	assert.Equal(t, "box", n.Marker())
}
