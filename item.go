// SPDX-License-Identifier: MIT
package notation

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

type (
	// ItemKind int holding an identifier for the grammar Item types.
	ItemKind int

	// Direction flags the data flow of a documented parameter.
	Direction string

	// Item is a single grammar item produced by the Parser.
	//
	// Meta, Params & Tag are only set for ItemNotation, Text only for ItemText.
	Item struct {
		Meta   []Direction
		Params []string
		Tag    string
		Text   string
		Kind   ItemKind
	}

	// Items is a type wrapper for []Item.
	Items []Item
)

const (
	_              ItemKind = iota // Consume 0 to start actual numbering at 1.
	ItemNotation                   // `@tag` with optional direction & argument.
	ItemText                       // A run of literal content.
	ItemGroupStart                 // `@{`.
	ItemGroupEnd                   // `@}`.
)

// Parameter directions.
const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

var itemKindNames = [...]string{
	ItemNotation:   "Notation",
	ItemText:       "Text",
	ItemGroupStart: "GroupStart",
	ItemGroupEnd:   "GroupEnd",
}

// String is the fmt.Stringer implementation for ItemKind.
func (k ItemKind) String() string {
	if k > 0 && int(k) < len(itemKindNames) {
		return itemKindNames[k]
	}

	return fmt.Sprintf("ItemKind(%d)", int(k))
}

// Notation builds an ItemNotation.
func Notation(tag string, meta []Direction, params ...string) Item {
	return Item{Kind: ItemNotation, Tag: tag, Meta: meta, Params: params}
}

// Text builds an ItemText.
func Text(text string) Item { return Item{Kind: ItemText, Text: text} }

// GroupStart builds an ItemGroupStart.
func GroupStart() Item { return Item{Kind: ItemGroupStart} }

// GroupEnd builds an ItemGroupEnd.
func GroupEnd() Item { return Item{Kind: ItemGroupEnd} }

// Param returns the Notation's argument, if one was captured.
func (i Item) Param() (param string, ok bool) {
	if len(i.Params) < 1 {
		return
	}

	return i.Params[0], true
}

// HasDirection reports whether a Notation carries the direction flag.
func (i Item) HasDirection(d Direction) bool {
	return slices.Contains(i.Meta, d)
}

// String is the fmt.Stringer implementation for Item.
func (i Item) String() string {
	switch i.Kind {
	case ItemNotation:
		var buffer strings.Builder
		buffer.WriteString("@")
		buffer.WriteString(i.Tag)
		if len(i.Meta) > 0 {
			fmt.Fprintf(&buffer, "[%s]", joinDirections(i.Meta))
		}
		for _, p := range i.Params {
			fmt.Fprintf(&buffer, " <%s>", p)
		}

		return buffer.String()
	case ItemText:
		return fmt.Sprintf("%q", i.Text)
	case ItemGroupStart:
		return "@{"
	case ItemGroupEnd:
		return "@}"
	default:
		return i.Kind.String()
	}
}

// Notations filters the Notation Items.
func (is Items) Notations() (notations Items) {
	for index := range is {
		if is[index].Kind == ItemNotation {
			notations = append(notations, is[index])
		}
	}

	return
}

// tail returns the last Item, nil if there is none.
func (is Items) tail() *Item {
	if len(is) < 1 {
		return nil
	}

	return &is[len(is)-1]
}

func joinDirections(ds []Direction) string {
	parts := make([]string, len(ds))
	for index := range ds {
		parts[index] = string(ds[index])
	}

	return strings.Join(parts, ",")
}
