package scope

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BTechSCALE/blockly/block"
)

// Ascent selects the parent relation a Walker climbs.
type Ascent int

const (
	// AscentEnclosing climbs surrounding parents: statements chained before a block are not in
	// its scope.
	AscentEnclosing Ascent = iota
	// AscentLexical climbs plain parents, so every statement earlier in the same chain is in scope.
	AscentLexical
)

var ascentNames = [...]string{
	AscentEnclosing: "enclosing",
	AscentLexical:   "lexical",
}

func (a Ascent) String() string { return ascentNames[a] }

func ParseAscent(s string) (Ascent, error) {
	for a, name := range ascentNames {
		if strings.EqualFold(s, name) {
			return Ascent(a), nil
		}
	}
	return AscentEnclosing, fmt.Errorf("unknown ascent %q", s)
}

// Walker computes the blocks in scope of a block. The zero value uses AscentEnclosing.
type Walker struct {
	ascent Ascent
}

type Option func(*Walker)

func WithAscent(a Ascent) Option {
	return func(w *Walker) { w.ascent = a }
}

func NewWalker(opts ...Option) *Walker {
	w := &Walker{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

func (w *Walker) Ascent() Ascent { return w.ascent }

func (w *Walker) parent(b *block.Block) *block.Block {
	if w.ascent == AscentLexical {
		return b.Parent()
	}
	return b.SurroundParent()
}

// Walk returns the blocks able to introduce declarations visible to b, closest first.
//
// A block inside a for loop, other than the loop's INIT statement and the statement after the
// loop, also sees the INIT statement. An expression in a function's RETURN slot sees the whole
// function body, last statement first.
func (w *Walker) Walk(b *block.Block, includeSelf bool) []*block.Block {
	if b == nil {
		return nil
	}
	var blocks []*block.Block
	if includeSelf {
		blocks = append(blocks, b)
	}
	seen := map[*block.Block]struct{}{b: {}}
	add := func(n *block.Block) {
		if n == nil {
			return
		}
		if _, dup := seen[n]; dup {
			return
		}
		seen[n] = struct{}{}
		blocks = append(blocks, n)
	}

	for cur := b; ; {
		parent := w.parent(cur)
		if parent == nil {
			break
		}
		if _, visited := seen[parent]; visited {
			// The model is cyclic.
			break
		}
		switch {
		case parent.Kind() == block.ControlsFor &&
			parent.Next() != cur && parent.SlotChild(block.SlotInit) != cur:
			add(parent.SlotChild(block.SlotInit))
		case parent.Kind() == block.ProceduresDefReturn && parent.SlotChild(block.SlotReturn) == cur:
			if body := parent.SlotChild(block.SlotStack); body != nil {
				for s := body.LastInChain(); s != nil; s = s.Previous() {
					add(s)
				}
			}
		}
		add(parent)
		cur = parent
	}
	return blocks
}

// Query returns the declarations in scope of b that match, closest first. Nil criteria match
// every declaration.
func (w *Walker) Query(b *block.Block, match Criteria) []block.Declaration {
	var decls []block.Declaration
	for _, n := range w.Walk(b, false) {
		switch r := n.Role().(type) {
		case block.OwnsParameters:
			decls = append(decls, r.Parameters...)
		case block.Declares:
			decls = append(decls, r.Declaration)
		case block.Plain:
		}
	}
	if len(match) == 0 {
		return decls
	}
	return slices.DeleteFunc(decls, func(d block.Declaration) bool {
		return !match.Matches(d)
	})
}

// Default walks with AscentEnclosing.
var Default = NewWalker()

// Walk is Default.Walk.
func Walk(b *block.Block, includeSelf bool) []*block.Block {
	return Default.Walk(b, includeSelf)
}

// Query is Default.Query.
func Query(b *block.Block, match Criteria) []block.Declaration {
	return Default.Query(b, match)
}
