package block

import (
	"slices"
	"strconv"
)

// Workspace owns a forest of blocks and notifies listeners of every mutation.
type Workspace struct {
	defs      map[Kind]Definition
	blocks    map[string]*Block
	top       []*Block
	listeners []Listener

	eventsDisabled bool
	nextID         int
}

func NewWorkspace() *Workspace {
	return &Workspace{
		defs:   builtinDefinitions(),
		blocks: make(map[string]*Block),
	}
}

// Define registers or replaces the definition of a kind.
func (ws *Workspace) Define(kind Kind, def Definition) {
	ws.defs[kind] = def
}

// Definition returns the definition of a kind. Unknown kinds are plain statements.
func (ws *Workspace) Definition(kind Kind) (Definition, bool) {
	def, ok := ws.defs[kind]
	if !ok {
		return plainDefinition, false
	}
	return def, true
}

// NewBlock creates a top-level block. An empty id is replaced by a generated one.
func (ws *Workspace) NewBlock(kind Kind, id string) (*Block, error) {
	if id == "" {
		id = ws.generateID()
	} else if _, exists := ws.blocks[id]; exists {
		return nil, ErrDuplicateID
	}
	def, _ := ws.Definition(kind)
	b := newBlock(ws, id, kind, def)
	ws.blocks[id] = b
	ws.top = append(ws.top, b)
	ws.Fire(Event{Type: EventCreate, BlockID: id})
	return b, nil
}

func (ws *Workspace) generateID() string {
	for {
		ws.nextID++
		id := "b" + strconv.Itoa(ws.nextID)
		if _, taken := ws.blocks[id]; !taken {
			return id
		}
	}
}

// Block looks a block up by id.
func (ws *Workspace) Block(id string) *Block {
	return ws.blocks[id]
}

// TopBlocks returns the top-level blocks in creation order.
func (ws *Workspace) TopBlocks() []*Block {
	return slices.Clone(ws.top)
}

// AllBlocks returns every block in tree order: each top-level tree depth first, slots before the
// next statement.
func (ws *Workspace) AllBlocks() []*Block {
	c := &collector{}
	c.V = c
	ws.VisitWith(c)
	return c.found
}

// Len returns the number of live blocks.
func (ws *Workspace) Len() int { return len(ws.blocks) }

// AddListener subscribes l to events and returns a function removing it.
func (ws *Workspace) AddListener(l Listener) func() {
	ws.listeners = append(ws.listeners, l)
	idx := len(ws.listeners) - 1
	return func() {
		if idx < len(ws.listeners) {
			ws.listeners[idx] = nil
		}
	}
}

// SetEventsEnabled turns event delivery on or off, e.g. around a bulk load.
func (ws *Workspace) SetEventsEnabled(enabled bool) {
	ws.eventsDisabled = !enabled
}

func (ws *Workspace) EventsEnabled() bool { return !ws.eventsDisabled }

// Fire delivers ev to every listener.
func (ws *Workspace) Fire(ev Event) {
	if ws.eventsDisabled {
		return
	}
	for _, l := range ws.listeners {
		if l != nil {
			l(ev)
		}
	}
}

func (ws *Workspace) owns(b *Block) bool {
	return b != nil && b.ws == ws && ws.blocks[b.id] == b
}

// isAncestor reports whether a is b or one of b's parents.
func isAncestor(a, b *Block) bool {
	for p := b; p != nil; p = p.Parent() {
		if p == a {
			return true
		}
	}
	return false
}

// Connect plugs child, together with the statements chained after it, into the named slot of
// parent.
func (ws *Workspace) Connect(parent *Block, slot string, child *Block) error {
	if !ws.owns(parent) || !ws.owns(child) {
		return slotError(ErrForeignBlock, parent, slot, child)
	}
	in := parent.Input(slot)
	if in == nil {
		return slotError(ErrNoSuchSlot, parent, slot, child)
	}
	if in.target == child {
		return nil
	}
	if in.target != nil {
		return slotError(ErrSlotOccupied, parent, slot, child)
	}
	switch in.kind {
	case StatementInput:
		if !child.hasPrevious || !compatible(in.check, child.previousCheck) {
			return slotError(ErrIncompatible, parent, slot, child)
		}
	case ValueInput:
		if !child.output || !compatible(in.check, child.outputCheck) {
			return slotError(ErrIncompatible, parent, slot, child)
		}
	}
	if isAncestor(child, parent) {
		return slotError(ErrCycle, parent, slot, child)
	}

	ev := ws.moveEvent(child)
	ws.detach(child)
	in.target = child
	child.parentInput = in
	ev.NewParentID, ev.NewSlot = parent.id, slot
	ws.Fire(ev)
	return nil
}

// ConnectNext chains next, together with the statements after it, below prev. A statement
// already below prev is re-attached at the end of the inserted chain when possible and becomes
// top-level otherwise.
func (ws *Workspace) ConnectNext(prev, next *Block) error {
	if !ws.owns(prev) || !ws.owns(next) {
		return connectError(ErrForeignBlock, prev, next)
	}
	if prev.next == next {
		return nil
	}
	if !prev.hasNext {
		return connectError(ErrNoNextConnection, prev, next)
	}
	if !next.hasPrevious {
		return connectError(ErrNoPreviousConnection, prev, next)
	}
	if !compatible(prev.nextCheck, next.previousCheck) {
		return connectError(ErrIncompatible, prev, next)
	}
	if isAncestor(next, prev) {
		return connectError(ErrCycle, prev, next)
	}

	ev := ws.moveEvent(next)
	ws.detach(next)
	displaced := prev.next
	if displaced != nil {
		prev.next = nil
		displaced.previous = nil
	}
	prev.next = next
	next.previous = prev
	ev.NewParentID = prev.id
	ws.Fire(ev)

	if displaced != nil {
		dev := Event{Type: EventMove, BlockID: displaced.id, OldParentID: prev.id}
		end := next.LastInChain()
		if end.hasNext && compatible(end.nextCheck, displaced.previousCheck) {
			end.next = displaced
			displaced.previous = end
			dev.NewParentID = end.id
		} else {
			ws.top = append(ws.top, displaced)
		}
		ws.Fire(dev)
	}
	return nil
}

// Unplug disconnects b from its parent and makes it top-level. With healStack the statement
// after b takes its place; otherwise the chain below b moves with it.
func (ws *Workspace) Unplug(b *Block, healStack bool) {
	if !ws.owns(b) || b.Parent() == nil {
		return
	}
	ev := ws.moveEvent(b)
	in, prev := b.parentInput, b.previous
	ws.detach(b)

	if healStack && b.next != nil {
		heir := b.next
		b.next = nil
		heir.previous = nil
		if in != nil {
			in.target = heir
			heir.parentInput = in
		} else {
			prev.next = heir
			heir.previous = prev
		}
	}
	ws.top = append(ws.top, b)
	ws.Fire(ev)
}

// Dispose removes b, everything in its slots and, unless healStack is set, the statements
// chained after it.
func (ws *Workspace) Dispose(b *Block, healStack bool) {
	if !ws.owns(b) {
		return
	}
	if healStack {
		ws.Unplug(b, true)
	}
	ws.detach(b)

	c := &collector{}
	c.V = c
	b.VisitWith(c)

	ids := make([]string, 0, len(c.found))
	for _, d := range c.found {
		delete(ws.blocks, d.id)
		d.ws = nil
		ids = append(ids, d.id)
	}
	ws.Fire(Event{Type: EventDelete, BlockID: b.id, IDs: ids})
}

// detach cuts the link holding b, leaving b unattached and absent from the top-level list.
func (ws *Workspace) detach(b *Block) {
	switch {
	case b.parentInput != nil:
		b.parentInput.target = nil
		b.parentInput = nil
	case b.previous != nil:
		b.previous.next = nil
		b.previous = nil
	default:
		if i := slices.Index(ws.top, b); i >= 0 {
			ws.top = slices.Delete(ws.top, i, i+1)
		}
	}
}

func (ws *Workspace) moveEvent(b *Block) Event {
	ev := Event{Type: EventMove, BlockID: b.id}
	if p := b.Parent(); p != nil {
		ev.OldParentID = p.id
		ev.OldSlot = b.Slot()
	}
	return ev
}
