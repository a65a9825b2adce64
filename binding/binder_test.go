package binding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BTechSCALE/blockly/binding"
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/block/blocktest"
	"github.com/BTechSCALE/blockly/scope"
)

func TestRebindResolves(t *testing.T) {
	ws := block.NewWorkspace()
	d := blocktest.Declare(t, ws, "d", "double", "x")
	g := blocktest.Get(t, ws, "g", "x")
	blocktest.Plug(t, d, block.SlotValue, g)

	bd := binding.NewBinder(nil, nil)
	assert.Equal(t, binding.Bound, bd.Rebind(g))
	assert.Same(t, d, g.Declarator())
	typ, ok := g.VarType()
	require.True(t, ok)
	assert.Equal(t, "double", typ)
	assert.True(t, g.Field(block.FieldVar).Valid())
}

func TestRebindUnresolved(t *testing.T) {
	ws := block.NewWorkspace()
	d := blocktest.Declare(t, ws, "d", "int", "x")
	g := blocktest.Get(t, ws, "g", "y")
	blocktest.Plug(t, d, block.SlotValue, g)

	bd := binding.NewBinder(nil, nil)
	assert.Equal(t, binding.Unbound, bd.Rebind(g))
	assert.Nil(t, g.Declarator())
	f := g.Field(block.FieldVar)
	assert.False(t, f.Valid())
	assert.Equal(t, "y", f.Value())
}

func TestRebindIdempotent(t *testing.T) {
	ws := block.NewWorkspace()
	d := blocktest.Declare(t, ws, "d", "int", "x")
	g := blocktest.Get(t, ws, "g", "x")
	blocktest.Plug(t, d, block.SlotValue, g)

	bd := binding.NewBinder(nil, nil)
	first := bd.Rebind(g)
	firstBinding, _ := g.Binding()
	second := bd.Rebind(g)
	secondBinding, _ := g.Binding()

	assert.Equal(t, first, second)
	assert.Equal(t, firstBinding, secondBinding)
	assert.Equal(t, "x", g.FieldValue(block.FieldVar))
	assert.True(t, g.Field(block.FieldVar).Valid())
}

func TestRebindPicksClosest(t *testing.T) {
	ws := block.NewWorkspace()
	proc := blocktest.Proc(t, ws, "p", false, block.Param{Name: "x", Type: "char"})
	loop := blocktest.For(t, ws, "for")
	x := blocktest.Declare(t, ws, "x", "int", "x")
	s := blocktest.Set(t, ws, "s", "x")
	blocktest.Plug(t, proc, block.SlotStack, loop)
	blocktest.Plug(t, loop, block.SlotInit, x)
	blocktest.Plug(t, loop, block.SlotDo, s)

	bd := binding.NewBinder(nil, nil)
	require.Equal(t, binding.Bound, bd.Rebind(s))
	assert.Same(t, x, s.Declarator())

	ws.Unplug(s, false)
	blocktest.Chain(t, loop, s)
	require.Equal(t, binding.Bound, bd.Rebind(s))
	assert.Same(t, proc, s.Declarator())
	typ, _ := s.VarType()
	assert.Equal(t, "char", typ)
}

func TestRebindAfterMoveOutOfScope(t *testing.T) {
	ws := block.NewWorkspace()
	d := blocktest.Declare(t, ws, "d", "int", "x")
	g := blocktest.Get(t, ws, "g", "x")
	blocktest.Plug(t, d, block.SlotValue, g)

	bd := binding.NewBinder(nil, nil)
	require.Equal(t, binding.Bound, bd.Rebind(g))

	ws.Unplug(g, false)
	assert.Equal(t, binding.Unbound, bd.Rebind(g))
	_, bound := g.Binding()
	assert.False(t, bound)
	assert.False(t, g.Field(block.FieldVar).Valid())
}

func TestRebindWithLexicalWalker(t *testing.T) {
	ws := block.NewWorkspace()
	proc := blocktest.Proc(t, ws, "p", false)
	d := blocktest.Declare(t, ws, "d", "int", "x")
	s := blocktest.Set(t, ws, "s", "x")
	blocktest.Plug(t, proc, block.SlotStack, d)
	blocktest.Chain(t, d, s)

	assert.Equal(t, binding.Unbound, binding.NewBinder(nil, nil).Rebind(s))

	lexical := binding.NewBinder(scope.NewWalker(scope.WithAscent(scope.AscentLexical)), nil)
	assert.Equal(t, binding.Bound, lexical.Rebind(s))
	assert.Same(t, d, s.Declarator())
	assert.Equal(t, scope.AscentLexical, lexical.Walker().Ascent())
}

func TestRebindWithoutNameField(t *testing.T) {
	ws := block.NewWorkspace()
	ws.Define("bare_ref", block.Definition{Output: true, Reference: true, Dist: block.DistVariable})
	r := blocktest.New(t, ws, "bare_ref", "r")

	assert.Equal(t, binding.Unbound, binding.NewBinder(nil, nil).Rebind(r))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "bound", binding.Bound.String())
	assert.Equal(t, "unbound", binding.Unbound.String())
}
