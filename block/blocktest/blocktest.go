// Package blocktest builds block trees for tests.
package blocktest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BTechSCALE/blockly/block"
)

// New creates a block or fails the test.
func New(t testing.TB, ws *block.Workspace, kind block.Kind, id string) *block.Block {
	t.Helper()
	b, err := ws.NewBlock(kind, id)
	require.NoError(t, err)
	return b
}

// Declare creates a variables_declare block for name of type typ.
func Declare(t testing.TB, ws *block.Workspace, id, typ, name string) *block.Block {
	t.Helper()
	b := New(t, ws, block.VariablesDeclare, id)
	require.NoError(t, b.SetFieldValue(block.FieldType, typ))
	require.NoError(t, b.SetFieldValue(block.FieldVar, name))
	return b
}

// Get creates a variables_get block naming name.
func Get(t testing.TB, ws *block.Workspace, id, name string) *block.Block {
	t.Helper()
	b := New(t, ws, block.VariablesGet, id)
	require.NoError(t, b.SetFieldValue(block.FieldVar, name))
	return b
}

// Set creates a variables_set block naming name.
func Set(t testing.TB, ws *block.Workspace, id, name string) *block.Block {
	t.Helper()
	b := New(t, ws, block.VariablesSet, id)
	require.NoError(t, b.SetFieldValue(block.FieldVar, name))
	return b
}

// For creates an empty controls_for block.
func For(t testing.TB, ws *block.Workspace, id string) *block.Block {
	t.Helper()
	return New(t, ws, block.ControlsFor, id)
}

// Proc creates a procedure block, with a RETURN slot when withReturn is set.
func Proc(t testing.TB, ws *block.Workspace, id string, withReturn bool, params ...block.Param) *block.Block {
	t.Helper()
	kind := block.ProceduresDefNoReturn
	if withReturn {
		kind = block.ProceduresDefReturn
	}
	b := New(t, ws, kind, id)
	if len(params) > 0 {
		b.SetParams(params)
	}
	return b
}

// Plug connects child into the named slot of parent.
func Plug(t testing.TB, parent *block.Block, slot string, child *block.Block) {
	t.Helper()
	require.NoError(t, parent.Workspace().Connect(parent, slot, child))
}

// Chain links the blocks as consecutive statements.
func Chain(t testing.TB, blocks ...*block.Block) {
	t.Helper()
	for i := 1; i < len(blocks); i++ {
		require.NoError(t, blocks[i-1].Workspace().ConnectNext(blocks[i-1], blocks[i]))
	}
}

// IDs maps blocks to their ids, keeping order.
func IDs(blocks []*block.Block) []string {
	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.ID())
	}
	return ids
}
