package block

import "slices"

// Position is where a block was declared in a source document, if it came from one.
type Position struct {
	Line   int
	Column int
}

// Input is a named slot on a block holding at most one child.
type Input struct {
	name   string
	kind   InputKind
	check  []string
	owner  *Block
	target *Block
}

func (in *Input) Name() string    { return in.name }
func (in *Input) Kind() InputKind { return in.kind }
func (in *Input) Check() []string { return in.check }
func (in *Input) Block() *Block   { return in.owner }
func (in *Input) Target() *Block  { return in.target }

// Block is a node of a workspace tree.
type Block struct {
	id   string
	kind Kind
	ws   *Workspace
	pos  Position

	fields []*Field
	inputs []*Input
	params []Param

	parentInput *Input
	previous    *Block
	next        *Block

	hasPrevious   bool
	hasNext       bool
	output        bool
	previousCheck []string
	nextCheck     []string
	outputCheck   []string

	role      RoleKind
	reference bool
	dist      string

	binding Declaration
	bound   bool
}

func newBlock(ws *Workspace, id string, kind Kind, def Definition) *Block {
	b := &Block{
		id:        id,
		kind:      kind,
		ws:        ws,
		role:      def.Role,
		reference: def.Reference,
		dist:      def.Dist,
	}
	if def.Statement {
		b.hasPrevious, b.hasNext = true, true
		b.previousCheck = slices.Clone(def.Check)
		b.nextCheck = slices.Clone(def.Check)
	}
	if def.Output {
		b.output = true
		b.outputCheck = slices.Clone(def.Check)
	}
	for _, fd := range def.Fields {
		b.fields = append(b.fields, &Field{name: fd.Name, value: fd.Default, valid: true, owner: b})
	}
	for _, in := range def.Inputs {
		b.AppendInput(in.Name, in.Kind, in.Check...)
	}
	return b
}

func (b *Block) ID() string              { return b.id }
func (b *Block) Kind() Kind              { return b.kind }
func (b *Block) Workspace() *Workspace   { return b.ws }
func (b *Block) Pos() Position           { return b.pos }
func (b *Block) SetPos(p Position)       { b.pos = p }
func (b *Block) Dist() string            { return b.dist }
func (b *Block) IsReference() bool       { return b.reference }
func (b *Block) Inputs() []*Input        { return b.inputs }
func (b *Block) Fields() []*Field        { return b.fields }
func (b *Block) Params() []Param         { return b.params }
func (b *Block) Next() *Block            { return b.next }
func (b *Block) Previous() *Block        { return b.previous }
func (b *Block) HasPrevious() bool       { return b.hasPrevious }
func (b *Block) HasNext() bool           { return b.hasNext }
func (b *Block) HasOutput() bool         { return b.output }
func (b *Block) PreviousCheck() []string { return b.previousCheck }
func (b *Block) NextCheck() []string     { return b.nextCheck }

// Disposed reports whether the block was removed from its workspace.
func (b *Block) Disposed() bool { return b.ws == nil }

// Parent returns the block this block is connected to: the owner of the slot it occupies, or
// the statement it is chained after.
func (b *Block) Parent() *Block {
	if b.parentInput != nil {
		return b.parentInput.owner
	}
	return b.previous
}

// SurroundParent returns the nearest enclosing container, skipping next-statement links.
func (b *Block) SurroundParent() *Block {
	cur := b
	for {
		parent := cur.Parent()
		if parent == nil {
			return nil
		}
		if parent.next != cur {
			return parent
		}
		cur = parent
	}
}

// Root returns the top-level block of the tree holding b.
func (b *Block) Root() *Block {
	root := b
	for p := root.Parent(); p != nil; p = root.Parent() {
		root = p
	}
	return root
}

// LastInChain follows next-statement links to the end of the chain starting at b.
func (b *Block) LastInChain() *Block {
	last := b
	for last.next != nil {
		last = last.next
	}
	return last
}

// Slot returns the name of the slot b occupies, or "" when b is chained or top-level.
func (b *Block) Slot() string {
	if b.parentInput == nil {
		return ""
	}
	return b.parentInput.name
}

// Input returns the named slot, or nil.
func (b *Block) Input(name string) *Input {
	for _, in := range b.inputs {
		if in.name == name {
			return in
		}
	}
	return nil
}

// SlotChild returns the block in the named slot. Unknown and empty slots yield nil.
func (b *Block) SlotChild(name string) *Block {
	if in := b.Input(name); in != nil {
		return in.target
	}
	return nil
}

// AppendInput adds a slot to the block. An existing slot with the same name is returned unchanged.
func (b *Block) AppendInput(name string, kind InputKind, check ...string) *Input {
	if in := b.Input(name); in != nil {
		return in
	}
	in := &Input{name: name, kind: kind, owner: b}
	if len(check) > 0 {
		in.check = slices.Clone(check)
	}
	b.inputs = append(b.inputs, in)
	return in
}

// Field returns the named field, or nil.
func (b *Block) Field(name string) *Field {
	for _, f := range b.fields {
		if f.name == name {
			return f
		}
	}
	return nil
}

// AppendField adds a field to the block. An existing field with the same name is returned
// unchanged.
func (b *Block) AppendField(name, value string) *Field {
	if f := b.Field(name); f != nil {
		return f
	}
	f := &Field{name: name, value: value, valid: true, owner: b}
	b.fields = append(b.fields, f)
	return f
}

// FieldValue returns the value of the named field, or "" if there is no such field.
func (b *Block) FieldValue(name string) string {
	if f := b.Field(name); f != nil {
		return f.value
	}
	return ""
}

// SetFieldValue edits a field and fires a change event.
func (b *Block) SetFieldValue(name, value string) error {
	f := b.Field(name)
	if f == nil {
		return fieldError(b, name)
	}
	old := f.value
	if old == value {
		return nil
	}
	f.value = value
	b.fire(Event{Type: EventChange, BlockID: b.id, Name: name, OldValue: old, NewValue: value})
	return nil
}

// SetParams replaces the parameter list of a procedure block.
func (b *Block) SetParams(params []Param) {
	b.params = slices.Clone(params)
	b.fire(Event{Type: EventChange, BlockID: b.id, Name: ParamsChange})
}

// SetNextStatement enables or disables the next-statement connector. A connector holding a
// block cannot be disabled.
func (b *Block) SetNextStatement(enabled bool, check []string) error {
	if !enabled {
		if b.next != nil {
			return connectError(ErrNextConnected, b, b.next)
		}
		b.hasNext = false
		b.nextCheck = nil
		return nil
	}
	b.hasNext = true
	b.nextCheck = slices.Clone(check)
	return nil
}

// UnplugNext detaches the statement chained after b. The orphan stays in the workspace as a
// top-level block.
func (b *Block) UnplugNext() *Block {
	next := b.next
	if next == nil || b.ws == nil {
		return nil
	}
	b.ws.Unplug(next, false)
	return next
}

// Binding returns the declaration a reference block currently resolves to.
func (b *Block) Binding() (Declaration, bool) { return b.binding, b.bound }

// Declarator returns the block of the current binding, or nil.
func (b *Block) Declarator() *Block {
	if !b.bound {
		return nil
	}
	return b.binding.Block
}

// VarType returns the type of the bound declaration.
func (b *Block) VarType() (string, bool) {
	if !b.bound {
		return "", false
	}
	return b.binding.Type, true
}

func (b *Block) Bind(d Declaration) {
	b.binding = d
	b.bound = true
}

func (b *Block) Unbind() {
	b.binding = Declaration{}
	b.bound = false
}

func (b *Block) fire(ev Event) {
	if b.ws != nil {
		b.ws.Fire(ev)
	}
}

func (b *Block) String() string {
	return string(b.kind) + "#" + b.id
}
