package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTechSCALE/blockly/binding"
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/block/blocktest"
)

func TestGuardIncSlot(t *testing.T) {
	ws := block.NewWorkspace()
	loop := blocktest.For(t, ws, "for")
	inc := blocktest.Set(t, ws, "inc", "i")
	sibling := blocktest.Set(t, ws, "sibling", "j")
	blocktest.Chain(t, inc, sibling)
	blocktest.Plug(t, loop, block.SlotInc, inc)
	require.Same(t, sibling, inc.Next())

	g := binding.NewGuard(nil)
	g.Enforce(inc)

	assert.Nil(t, inc.Next())
	assert.False(t, inc.HasNext())
	assert.Nil(t, sibling.Parent())
	assert.False(t, sibling.Disposed())
	assert.Contains(t, ws.TopBlocks(), sibling)

	err := ws.ConnectNext(inc, sibling)
	assert.ErrorIs(t, err, block.ErrNoNextConnection)

	ws.Unplug(inc, false)
	blocktest.Plug(t, loop, block.SlotDo, inc)
	g.Enforce(inc)

	assert.True(t, inc.HasNext())
	assert.Equal(t, inc.PreviousCheck(), inc.NextCheck())
	blocktest.Chain(t, inc, sibling)
}

func TestGuardInitSlot(t *testing.T) {
	ws := block.NewWorkspace()
	loop := blocktest.For(t, ws, "for")
	decl := blocktest.Declare(t, ws, "init", "int", "i")
	blocktest.Plug(t, loop, block.SlotInit, decl)

	binding.NewGuard(nil).Enforce(decl)
	assert.False(t, decl.HasNext())
}

func TestGuardLeavesBodyAlone(t *testing.T) {
	ws := block.NewWorkspace()
	loop := blocktest.For(t, ws, "for")
	body := blocktest.Set(t, ws, "body", "i")
	after := blocktest.Set(t, ws, "after", "i")
	blocktest.Plug(t, loop, block.SlotDo, body)
	blocktest.Chain(t, body, after)

	binding.NewGuard(nil).Enforce(body)
	assert.True(t, body.HasNext())
	assert.Same(t, after, body.Next())
}

func TestGuardIgnoresDisposed(t *testing.T) {
	ws := block.NewWorkspace()
	loop := blocktest.For(t, ws, "for")
	inc := blocktest.Set(t, ws, "inc", "i")
	blocktest.Plug(t, loop, block.SlotInc, inc)
	ws.Dispose(loop, false)
	require.True(t, inc.Disposed())

	binding.NewGuard(nil).Enforce(inc)
	assert.True(t, inc.HasNext())
}
