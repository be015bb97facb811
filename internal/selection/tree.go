package selection

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"reelsort/internal/classify"
	"reelsort/internal/plan"
)

// Kind identifies a node's level in the hierarchy.
type Kind int

const (
	Category Kind = iota
	Show
	Season
	File
)

// State is the tri-state checkbox value. File nodes never hold Partial.
type State int

const (
	Unchecked State = iota
	Checked
	Partial
)

func (s State) String() string {
	switch s {
	case Checked:
		return "checked"
	case Partial:
		return "partial"
	default:
		return "unchecked"
	}
}

// Node is one tree entity. Children are exclusively owned by their parent.
type Node struct {
	Kind  Kind
	Label string
	// Item is bound on File nodes only.
	Item *plan.Item

	parent   *Node
	children []*Node
	state    State
}

// State returns the node's current selection state.
func (n *Node) State() State { return n.state }

// Children returns the ordered child nodes.
func (n *Node) Children() []*Node { return n.children }

// Toggle flips the node: Checked becomes Unchecked, Unchecked and Partial
// become Checked. The new state propagates to every descendant and ancestor
// aggregates are recomputed.
func (n *Node) Toggle() {
	n.Set(n.state != Checked)
}

// Set forces the node and all its descendants to the given boolean state,
// then recomputes every ancestor's aggregate.
func (n *Node) Set(checked bool) {
	state := Unchecked
	if checked {
		state = Checked
	}
	n.setDescendants(state)
	n.recalcAncestors()
}

func (n *Node) setDescendants(state State) {
	n.state = state
	for _, child := range n.children {
		child.setDescendants(state)
	}
}

func (n *Node) recalcAncestors() {
	for parent := n.parent; parent != nil; parent = parent.parent {
		parent.state = aggregate(parent.children)
	}
}

func aggregate(children []*Node) State {
	allChecked := true
	allUnchecked := true
	for _, child := range children {
		switch child.state {
		case Checked:
			allUnchecked = false
		case Unchecked:
			allChecked = false
		default:
			allChecked = false
			allUnchecked = false
		}
	}
	switch {
	case allChecked:
		return Checked
	case allUnchecked:
		return Unchecked
	default:
		return Partial
	}
}

// Tree groups a plan into selectable categories.
type Tree struct {
	categories []*Node
}

// Categories returns the top-level nodes in display order.
func (t *Tree) Categories() []*Node { return t.categories }

// SelectedItems returns the items bound to checked File leaves, in tree
// order. Ancestor states never gate inclusion.
func (t *Tree) SelectedItems() []plan.Item {
	var out []plan.Item
	for _, category := range t.categories {
		category.walk(func(n *Node) {
			if n.Kind == File && n.state == Checked && n.Item != nil {
				out = append(out, *n.Item)
			}
		})
	}
	return out
}

// LeafCount returns the number of File leaves in the tree.
func (t *Tree) LeafCount() int {
	count := 0
	for _, category := range t.categories {
		category.walk(func(n *Node) {
			if n.Kind == File {
				count++
			}
		})
	}
	return count
}

func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.children {
		child.walk(visit)
	}
}

// Build groups planned items by content type, show, and season. Every leaf
// starts Checked.
func Build(items []plan.Item) *Tree {
	coll := collate.New(language.Und, collate.IgnoreCase)

	var movies []*plan.Item
	shows := map[string]map[int][]*plan.Item{}
	for i := range items {
		item := &items[i]
		if item.Type == classify.Series {
			seasons, ok := shows[item.ShowTitle]
			if !ok {
				seasons = map[int][]*plan.Item{}
				shows[item.ShowTitle] = seasons
			}
			seasons[item.Season] = append(seasons[item.Season], item)
		} else {
			movies = append(movies, item)
		}
	}

	tree := &Tree{}

	if len(movies) > 0 {
		category := &Node{Kind: Category, Label: "Movies", state: Checked}
		sort.SliceStable(movies, func(i, j int) bool {
			return coll.CompareString(movies[i].DestFileName, movies[j].DestFileName) < 0
		})
		for _, item := range movies {
			attach(category, &Node{Kind: File, Label: item.DestFileName, Item: item, state: Checked})
		}
		tree.categories = append(tree.categories, category)
	}

	if len(shows) > 0 {
		category := &Node{Kind: Category, Label: "Series", state: Checked}
		names := make([]string, 0, len(shows))
		for name := range shows {
			names = append(names, name)
		}
		sort.SliceStable(names, func(i, j int) bool {
			return coll.CompareString(names[i], names[j]) < 0
		})
		for _, name := range names {
			showNode := &Node{Kind: Show, Label: name, state: Checked}
			seasons := shows[name]
			numbers := make([]int, 0, len(seasons))
			for number := range seasons {
				numbers = append(numbers, number)
			}
			sort.Ints(numbers)
			for _, number := range numbers {
				seasonNode := &Node{Kind: Season, Label: fmt.Sprintf("Season %02d", number), state: Checked}
				episodes := seasons[number]
				sort.SliceStable(episodes, func(i, j int) bool {
					return coll.CompareString(episodes[i].DestFileName, episodes[j].DestFileName) < 0
				})
				for _, item := range episodes {
					attach(seasonNode, &Node{Kind: File, Label: item.DestFileName, Item: item, state: Checked})
				}
				attach(showNode, seasonNode)
			}
			attach(category, showNode)
		}
		tree.categories = append(tree.categories, category)
	}

	return tree
}

func attach(parent, child *Node) {
	child.parent = parent
	parent.children = append(parent.children, child)
}
