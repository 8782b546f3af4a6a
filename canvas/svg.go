// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package canvas

import (
	"bytes"
	"encoding/xml"
	"io"
)

// WriteTo writes the canvas as standalone SVG document.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	writeNode(&b, c.root)
	return b.WriteTo(w)
}

func (c *Canvas) String() string {
	var b bytes.Buffer
	writeNode(&b, c.root)
	return b.String()
}

func writeNode(b *bytes.Buffer, n *Node) {
	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a.key)
		b.WriteString(`="`)
		_ = xml.EscapeText(b, []byte(a.value))
		b.WriteByte('"')
	}
	if len(n.children) == 0 && n.text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	_ = xml.EscapeText(b, []byte(n.text))
	for _, child := range n.children {
		writeNode(b, child)
	}
	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}
