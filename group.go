// SPDX-License-Identifier: MIT
package notation

import (
	"context"
	"errors"
	"fmt"
)

type (
	// Group is a node in the tree formed by GroupStart & GroupEnd Items.
	//
	// Synchronization is unnecessary, the type is designed for single write multiple read.
	Group struct {
		// parent contains a reference to the enclosing Group.
		parent *Group

		// children holds the nested Groups in input order.
		children []*Group

		// items holds the Items directly within the Group, without the group markers.
		items Items

		// start is the index of the opening GroupStart, -1 for the root.
		start int
		depth int
	}

	// WalkFunc is called for every Group visited by Walk.
	WalkFunc func(*Group) error
)

// Group structure errors.
var (
	ErrUnclosedGroup      = errors.New("group is not closed")
	ErrUnexpectedGroupEnd = errors.New("group end without a matching start")
)

// BuildGroups nests items by their group markers.
//
// The returned root Group holds the top-level Items. Unbalanced markers fail the build; the
// Parser itself never enforces balance.
func BuildGroups(items Items) (root *Group, err error) {
	root = &Group{start: -1}

	current := root
	for index := range items {
		switch items[index].Kind {
		case ItemGroupStart:
			child := &Group{parent: current, start: index, depth: current.depth + 1}
			current.children = append(current.children, child)
			current = child
		case ItemGroupEnd:
			if current == root {
				return nil, fmt.Errorf("%w: item %d", ErrUnexpectedGroupEnd, index)
			}
			current = current.parent
		default:
			current.items = append(current.items, items[index])
		}
	}

	if current != root {
		return nil, fmt.Errorf("%w: started at item %d", ErrUnclosedGroup, current.start)
	}

	return
}

// Parent retrieves the Group's parent reference, nil for the root.
func (g *Group) Parent() *Group { return g.parent }

// Children lists the immediately nested Groups.
func (g *Group) Children() []*Group { return g.children }

// Items lists the Items directly within the Group.
func (g *Group) Items() Items { return g.items }

// Depth is the nesting level, 0 for the root.
func (g *Group) Depth() int { return g.depth }

// Start is the index of the Group's GroupStart in the built Items, -1 for the root.
func (g *Group) Start() int { return g.start }

// Walk performs level-order traversal on a Group, calling fn for every Group.
//
// A context.Context is used to terminate the walk operation; an error from fn stops it too.
func (g *Group) Walk(ctx context.Context, fn WalkFunc) (err error) {
	if g == nil {
		return
	}

	queue := []*Group{g}
	for len(queue) > 0 {
		select {
		case <-ctx.Done():
			// Received context cancelation.
			return ctx.Err()
		default:
		}

		// Pop from queue.
		var front *Group
		front, queue = queue[0], queue[1:]

		if err = fn(front); err != nil {
			return
		}
		queue = append(queue, front.children...)
	}

	return
}

// AllNotations lists the Notations within the Group & every nested Group, level by level.
func (g *Group) AllNotations(ctx context.Context) (notations Items, err error) {
	err = g.Walk(ctx, func(group *Group) error {
		notations = append(notations, group.items.Notations()...)
		return nil
	})

	return
}
