package block

// Distinguishing categories of declarations.
const (
	DistVariable  = "v"
	DistReference = "r"
)

type (
	// Declaration is a variable visible in some scope. Records are built on demand from live
	// block state and are never stored on the tree.
	Declaration struct {
		Name string
		Type string
		Dist string
		Spec string

		// Block is the declaration or procedure block the record came from.
		Block *Block
	}

	// Param is one parameter of a procedure block.
	Param struct {
		Name string
		Type string
		Dist string
	}
)

// Role is the part a block plays in scope resolution. It is one of Declares, OwnsParameters or Plain.
type Role interface {
	_role()
}

type (
	Declares struct {
		Declaration Declaration
	}

	OwnsParameters struct {
		Parameters []Declaration
	}

	Plain struct{}
)

func (Declares) _role()       {}
func (OwnsParameters) _role() {}
func (Plain) _role()          {}

// Role computes the block's role from its kind and current field values.
func (b *Block) Role() Role {
	switch b.role {
	case RoleDeclaration:
		return Declares{Declaration: Declaration{
			Name:  b.FieldValue(FieldVar),
			Type:  b.FieldValue(FieldType),
			Dist:  b.dist,
			Block: b,
		}}
	case RoleParameters:
		params := make([]Declaration, 0, len(b.params))
		for _, p := range b.params {
			dist := p.Dist
			if dist == "" {
				dist = DistVariable
			}
			params = append(params, Declaration{Name: p.Name, Type: p.Type, Dist: dist, Block: b})
		}
		return OwnsParameters{Parameters: params}
	}
	return Plain{}
}
