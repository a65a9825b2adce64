package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTechSCALE/blockly/binding"
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/block/blocktest"
	"github.com/BTechSCALE/blockly/logger"
	"github.com/BTechSCALE/blockly/scope"
)

// for (int i; ; ) { set i = get i }, built on an attached dispatcher.
func newAttachedLoop(t *testing.T, opts ...binding.DispatcherOption) (d *binding.Dispatcher, decl, s, g *block.Block) {
	t.Helper()
	ws := block.NewWorkspace()
	d = binding.NewDispatcher(ws, opts...)
	d.Attach()

	loop := blocktest.For(t, ws, "for")
	decl = blocktest.Declare(t, ws, "decl", "int", "i")
	s = blocktest.Set(t, ws, "s", "i")
	g = blocktest.Get(t, ws, "g", "i")
	blocktest.Plug(t, loop, block.SlotInit, decl)
	blocktest.Plug(t, loop, block.SlotDo, s)
	blocktest.Plug(t, s, block.SlotValue, g)
	return d, decl, s, g
}

func TestDispatcherBindsOnEvents(t *testing.T) {
	_, decl, s, g := newAttachedLoop(t)

	assert.Same(t, decl, s.Declarator())
	assert.Same(t, decl, g.Declarator())
	assert.True(t, g.Field(block.FieldVar).Valid())

	ws := decl.Workspace()
	ws.Unplug(s, false)
	assert.Nil(t, s.Declarator())
	assert.Nil(t, g.Declarator())
	assert.False(t, g.Field(block.FieldVar).Valid())
}

func TestDispatcherEnforcesPlacement(t *testing.T) {
	ws := block.NewWorkspace()
	d := binding.NewDispatcher(ws)
	d.Attach()

	loop := blocktest.For(t, ws, "for")
	inc := blocktest.Set(t, ws, "inc", "i")
	sibling := blocktest.Set(t, ws, "sibling", "i")
	blocktest.Chain(t, inc, sibling)
	blocktest.Plug(t, loop, block.SlotInc, inc)

	assert.False(t, inc.HasNext())
	assert.Nil(t, sibling.Parent())

	ws.Unplug(inc, false)
	assert.True(t, inc.HasNext())
}

func TestDispatcherNestedEvents(t *testing.T) {
	ws := block.NewWorkspace()
	d := binding.NewDispatcher(ws)

	var order []string
	ws.AddListener(func(ev block.Event) {
		order = append(order, ev.Type.String()+":"+ev.BlockID)
		d.Notify(ev)
	})

	loop := blocktest.For(t, ws, "for")
	inc := blocktest.Set(t, ws, "inc", "i")
	sibling := blocktest.Set(t, ws, "sibling", "i")
	blocktest.Chain(t, inc, sibling)
	order = nil
	blocktest.Plug(t, loop, block.SlotInc, inc)

	// The guard unplugs sibling while the move of inc is being handled.
	assert.Equal(t, []string{"move:inc", "move:sibling"}, order)
	assert.Nil(t, sibling.Parent())
	assert.False(t, inc.HasNext())
	assert.True(t, sibling.HasNext())
}

func TestDispatcherRenamePropagates(t *testing.T) {
	_, decl, s, g := newAttachedLoop(t)
	stray := blocktest.Get(t, decl.Workspace(), "stray", "i")

	require.NoError(t, decl.SetFieldValue(block.FieldVar, "n"))

	assert.Equal(t, "n", s.FieldValue(block.FieldVar))
	assert.Equal(t, "n", g.FieldValue(block.FieldVar))
	assert.Same(t, decl, s.Declarator())
	assert.Same(t, decl, g.Declarator())
	assert.Equal(t, "i", stray.FieldValue(block.FieldVar))
	assert.Nil(t, stray.Declarator())
}

func TestDispatcherRenameDisabled(t *testing.T) {
	_, decl, s, g := newAttachedLoop(t, binding.WithFollowRenames(false))

	require.NoError(t, decl.SetFieldValue(block.FieldVar, "n"))

	assert.Equal(t, "i", s.FieldValue(block.FieldVar))
	assert.Nil(t, s.Declarator())
	assert.False(t, g.Field(block.FieldVar).Valid())
}

func TestDispatcherOnTreeChanged(t *testing.T) {
	ws := block.NewWorkspace()
	d := blocktest.Declare(t, ws, "d", "int", "x")
	g1 := blocktest.Get(t, ws, "g1", "x")
	g2 := blocktest.Get(t, ws, "g2", "x")
	blocktest.Plug(t, d, block.SlotValue, g1)

	disp := binding.NewDispatcher(ws)
	disp.OnTreeChanged(g1, block.Event{Type: block.EventMove, BlockID: g1.ID()})
	disp.OnTreeChanged(nil, block.Event{})

	assert.Same(t, d, g1.Declarator())
	_, touched := g2.Binding()
	assert.False(t, touched)
	assert.True(t, g2.Field(block.FieldVar).Valid())
}

func TestDispatcherSettleAfterSilentBuild(t *testing.T) {
	ws := block.NewWorkspace()
	disp := binding.NewDispatcher(ws, binding.WithWalker(scope.NewWalker(scope.WithAscent(scope.AscentLexical))))
	disp.Attach()

	ws.SetEventsEnabled(false)
	proc := blocktest.Proc(t, ws, "p", false)
	d := blocktest.Declare(t, ws, "d", "int", "x")
	s := blocktest.Set(t, ws, "s", "x")
	blocktest.Plug(t, proc, block.SlotStack, d)
	blocktest.Chain(t, d, s)
	ws.SetEventsEnabled(true)
	require.Nil(t, s.Declarator())

	disp.Settle()
	assert.Same(t, d, s.Declarator())
}

func TestDispatcherDetach(t *testing.T) {
	ws := block.NewWorkspace()
	disp := binding.NewDispatcher(ws, binding.WithLogger(logger.Nop()))
	detach := disp.Attach()
	d := blocktest.Declare(t, ws, "d", "int", "x")
	g := blocktest.Get(t, ws, "g", "x")
	detach()

	blocktest.Plug(t, d, block.SlotValue, g)
	assert.Nil(t, g.Declarator())
}

func TestDispatcherSkipsDisposed(t *testing.T) {
	ws := block.NewWorkspace()
	disp := binding.NewDispatcher(ws)
	d := blocktest.Declare(t, ws, "d", "int", "x")
	g := blocktest.Get(t, ws, "g", "x")
	blocktest.Plug(t, d, block.SlotValue, g)
	ws.Dispose(d, false)

	disp.OnTreeChanged(g, block.Event{Type: block.EventDelete, BlockID: d.ID()})
	assert.Nil(t, g.Declarator())
	assert.True(t, g.Field(block.FieldVar).Valid())
}
