// Package binding keeps reference blocks bound to the declarations they name as a workspace is
// edited.
package binding

import (
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/logger"
	"github.com/BTechSCALE/blockly/scope"
)

// State is the binding state of a reference block.
type State int

const (
	Unbound State = iota
	Bound
)

var stateNames = [...]string{
	Unbound: "unbound",
	Bound:   "bound",
}

func (s State) String() string { return stateNames[s] }

// Binder resolves reference blocks against the declarations in their scope.
type Binder struct {
	walker *scope.Walker
	log    logger.Logger
}

func NewBinder(w *scope.Walker, log logger.Logger) *Binder {
	if w == nil {
		w = scope.Default
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Binder{walker: w, log: log}
}

func (bd *Binder) Walker() *scope.Walker { return bd.walker }

// Rebind binds ref to the closest declaration named by its VAR field and marks the field valid,
// or clears the binding and marks the field invalid. Calling it twice in a row changes nothing.
func (bd *Binder) Rebind(ref *block.Block) State {
	f := ref.Field(block.FieldVar)
	if f == nil {
		ref.Unbind()
		return Unbound
	}
	name := f.Value()
	decls := bd.walker.Query(ref, scope.Criteria{scope.AttrName: scope.Is(name)})
	if len(decls) == 0 {
		if _, was := ref.Binding(); was {
			bd.log.Debug("%v: %q no longer resolves", ref, name)
		}
		ref.Unbind()
		f.CommitInvalid(name)
		return Unbound
	}
	if prev := ref.Declarator(); prev != decls[0].Block {
		bd.log.Debug("%v: %q bound to %v", ref, name, decls[0].Block)
	}
	ref.Bind(decls[0])
	f.CommitValid(name)
	return Bound
}
