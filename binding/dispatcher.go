package binding

import (
	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/logger"
	"github.com/BTechSCALE/blockly/scope"
)

type notification struct {
	b  *block.Block // nil fans ev out to every live block
	ev block.Event
}

// Dispatcher is the ingress for tree changes. It runs the Binder on reference blocks and the
// Guard on declaration and assignment statements, one notification at a time: events fired by
// its own handlers are queued behind the one being handled.
type Dispatcher struct {
	ws     *block.Workspace
	binder *Binder
	guard  *Guard
	log    logger.Logger

	followRenames bool

	queue    []notification
	draining bool
}

type DispatcherOption func(*Dispatcher)

func WithWalker(w *scope.Walker) DispatcherOption {
	return func(d *Dispatcher) { d.binder.walker = w }
}

func WithLogger(log logger.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.log = log
		d.binder.log = log
		d.guard.log = log
	}
}

// WithFollowRenames controls whether renaming a declaration renames the references bound to it.
func WithFollowRenames(follow bool) DispatcherOption {
	return func(d *Dispatcher) { d.followRenames = follow }
}

func NewDispatcher(ws *block.Workspace, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		ws:            ws,
		binder:        NewBinder(nil, nil),
		guard:         NewGuard(nil),
		log:           logger.Nop(),
		followRenames: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Binder() *Binder { return d.binder }
func (d *Dispatcher) Guard() *Guard   { return d.guard }

// Attach subscribes the dispatcher to its workspace and returns a function detaching it.
func (d *Dispatcher) Attach() func() {
	return d.ws.AddListener(d.Notify)
}

// OnTreeChanged handles ev for a single block.
func (d *Dispatcher) OnTreeChanged(b *block.Block, ev block.Event) {
	if b == nil {
		return
	}
	d.enqueue(notification{b: b, ev: ev})
}

// Notify handles ev for every live block of the workspace.
func (d *Dispatcher) Notify(ev block.Event) {
	d.enqueue(notification{ev: ev})
}

// Settle rebinds every reference and re-applies placement everywhere, e.g. after the workspace
// was built with events disabled.
func (d *Dispatcher) Settle() {
	d.enqueue(notification{ev: block.Event{Type: block.EventFinishedLoading}})
}

func (d *Dispatcher) enqueue(n notification) {
	d.queue = append(d.queue, n)
	if d.draining {
		return
	}
	d.draining = true
	defer func() { d.draining = false }()
	for len(d.queue) > 0 {
		n := d.queue[0]
		d.queue = d.queue[1:]
		d.dispatch(n)
	}
}

func (d *Dispatcher) dispatch(n notification) {
	if d.followRenames {
		d.propagateRename(n.ev)
	}
	if n.b != nil {
		d.handle(n.b)
		return
	}
	for _, b := range d.ws.AllBlocks() {
		d.handle(b)
	}
}

func (d *Dispatcher) handle(b *block.Block) {
	if b.Disposed() {
		return
	}
	if b.IsReference() {
		d.binder.Rebind(b)
	}
	if guarded(b) {
		d.guard.Enforce(b)
	}
}

// propagateRename renames the references still bound to a declaration whose VAR field changed.
// Their bindings predate the change, so they identify exactly the references that used the old
// name.
func (d *Dispatcher) propagateRename(ev block.Event) {
	if ev.Type != block.EventChange || ev.Name != block.FieldVar {
		return
	}
	decl := d.ws.Block(ev.BlockID)
	if decl == nil {
		return
	}
	if _, ok := decl.Role().(block.Declares); !ok {
		return
	}
	usages := CollectUsages(d.ws)
	for _, ref := range usages.References(decl) {
		if ref.FieldValue(block.FieldVar) != ev.OldValue {
			continue
		}
		d.log.Debug("%v: renaming %q to %q after %v", ref, ev.OldValue, ev.NewValue, decl)
		if err := ref.SetFieldValue(block.FieldVar, ev.NewValue); err != nil {
			d.log.Warn("%v: rename failed: %v", ref, err)
		}
	}
}
