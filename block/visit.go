package block

type Visitor interface {
	VisitWorkspace(node *Workspace)
	VisitBlock(node *Block)
	VisitInput(node *Input)
}

// NoopVisitor walks the whole tree. Embed it and set V to the embedding visitor so overridden
// methods are reached from the default traversal.
type NoopVisitor struct {
	V Visitor
}

func (nv *NoopVisitor) VisitWorkspace(node *Workspace) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitBlock(node *Block) {
	node.VisitChildrenWith(nv.V)
}

func (nv *NoopVisitor) VisitInput(node *Input) {
	node.VisitChildrenWith(nv.V)
}

func (n *Workspace) VisitWith(v Visitor) {
	v.VisitWorkspace(n)
}

func (n *Workspace) VisitChildrenWith(v Visitor) {
	for _, b := range n.TopBlocks() {
		b.VisitWith(v)
	}
}

func (n *Block) VisitWith(v Visitor) {
	v.VisitBlock(n)
}

// VisitChildrenWith visits the slots in declaration order, then the next statement.
func (n *Block) VisitChildrenWith(v Visitor) {
	for _, in := range n.inputs {
		in.VisitWith(v)
	}
	if n.next != nil {
		n.next.VisitWith(v)
	}
}

func (n *Input) VisitWith(v Visitor) {
	v.VisitInput(n)
}

func (n *Input) VisitChildrenWith(v Visitor) {
	if n.target != nil {
		n.target.VisitWith(v)
	}
}

type collector struct {
	NoopVisitor

	found []*Block
}

func (c *collector) VisitBlock(n *Block) {
	c.found = append(c.found, n)
	n.VisitChildrenWith(c.V)
}
