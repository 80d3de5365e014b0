// SPDX-License-Identifier: MIT
package notation

import "strings"

// itemBuilder accumulates Items, holding the tail Text's content in a strings.Builder while
// it is being extended so merging stays linear.
type itemBuilder struct {
	items Items
	text  strings.Builder

	// open is set while the tail Text's content lives in text.
	open bool
}

// push an Item, closing any open Text.
func (b *itemBuilder) push(item Item) {
	b.flush()
	b.items = append(b.items, item)
}

// pushText starts a new Text run.
func (b *itemBuilder) pushText(s string) {
	b.push(Text(""))
	b.open = true
	b.text.WriteString(s)
}

// appendText extends the tail Text; the tail must be an ItemText.
func (b *itemBuilder) appendText(s string) {
	if !b.open {
		tail := b.tail()
		b.text.WriteString(tail.Text)
		tail.Text = ""
		b.open = true
	}
	b.text.WriteString(s)
}

// openCode reports whether the tail is inside a code region, starting the region's Text
// when the code Notation was the last Item.
func (b *itemBuilder) openCode() bool {
	n := len(b.items)
	switch {
	case n > 0 && isCode(b.items[n-1]):
		b.pushText("")
		return true
	case n > 1 && b.items[n-1].Kind == ItemText && isCode(b.items[n-2]):
		return true
	}

	return false
}

// tail returns the last Item, nil if there is none.
//
// An open Text's content is not visible through the returned Item.
func (b *itemBuilder) tail() *Item { return b.items.tail() }

// flush moves an open Text's content into its Item.
func (b *itemBuilder) flush() {
	if !b.open {
		return
	}

	b.items[len(b.items)-1].Text = b.text.String()
	b.text.Reset()
	b.open = false
}

// result returns the built Items.
func (b *itemBuilder) result() Items {
	b.flush()
	return b.items
}

func isCode(item Item) bool { return item.Kind == ItemNotation && item.Tag == TagCode }
