package binding

import (
	"slices"

	"github.com/BTechSCALE/blockly/block"
)

// Usages indexes the references of a workspace by the block declaring what they are bound to.
// It is a snapshot: later rebinds are not reflected.
type Usages struct {
	refs        map[*block.Block][]*block.Block
	declarators []*block.Block
}

// CollectUsages snapshots the current bindings of ws. Every declaration and procedure block is
// listed even when nothing uses it.
func CollectUsages(ws *block.Workspace) *Usages {
	u := &Usages{refs: make(map[*block.Block][]*block.Block)}
	for _, b := range ws.AllBlocks() {
		switch b.Role().(type) {
		case block.Declares, block.OwnsParameters:
			u.declarators = append(u.declarators, b)
		}
		if !b.IsReference() {
			continue
		}
		if decl := b.Declarator(); decl != nil && !decl.Disposed() {
			u.refs[decl] = append(u.refs[decl], b)
		}
	}
	return u
}

// References returns the reference blocks bound to decl, in tree order.
func (u *Usages) References(decl *block.Block) []*block.Block {
	return slices.Clone(u.refs[decl])
}

// Declarators returns the declaration and procedure blocks, in tree order.
func (u *Usages) Declarators() []*block.Block {
	return slices.Clone(u.declarators)
}

// Unused returns the declarators no reference is bound to.
func (u *Usages) Unused() []*block.Block {
	var out []*block.Block
	for _, n := range u.declarators {
		if len(u.refs[n]) == 0 {
			out = append(out, n)
		}
	}
	return out
}
