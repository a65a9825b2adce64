package binding

import (
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/logger"
)

// Guard adjusts the next-statement connector of statements placed in a for loop's INIT or INC
// slot. Those slots hold a single statement, so chaining is disabled there and restored elsewhere.
type Guard struct {
	log logger.Logger
}

func NewGuard(log logger.Logger) *Guard {
	if log == nil {
		log = logger.Nop()
	}
	return &Guard{log: log}
}

// Enforce applies the placement rule to b. Disposed blocks are left alone.
func (g *Guard) Enforce(b *block.Block) {
	if b.Disposed() {
		return
	}
	if inLoopHeader(b) {
		if orphan := b.UnplugNext(); orphan != nil {
			g.log.Debug("%v: detached %v from loop header", b, orphan)
		}
		if b.HasNext() {
			// Cannot fail: the connector is empty now.
			_ = b.SetNextStatement(false, nil)
		}
		return
	}
	if !b.HasNext() {
		g.log.Debug("%v: chaining restored", b)
		_ = b.SetNextStatement(true, b.PreviousCheck())
	}
}

func inLoopHeader(b *block.Block) bool {
	p := b.SurroundParent()
	if p == nil || p.Kind() != block.ControlsFor {
		return false
	}
	return p.SlotChild(block.SlotInit) == b || p.SlotChild(block.SlotInc) == b
}

// guarded reports whether placement applies to b: declaration and assignment statements.
func guarded(b *block.Block) bool {
	if !b.HasPrevious() {
		return false
	}
	if b.IsReference() {
		return true
	}
	_, ok := b.Role().(block.Declares)
	return ok
}
