package block

// Field is a named, editable value displayed on a block.
type Field struct {
	name  string
	value string
	valid bool
	owner *Block
}

func (f *Field) Name() string  { return f.name }
func (f *Field) Value() string { return f.value }
func (f *Field) Block() *Block { return f.owner }

// Valid reports whether the last committed value was confirmed.
func (f *Field) Valid() bool { return f.valid }

// CommitValid re-commits v and marks it confirmed.
func (f *Field) CommitValid(v string) {
	f.value = v
	f.valid = true
}

// CommitInvalid keeps v as the displayed text but marks it unresolved.
func (f *Field) CommitInvalid(v string) {
	f.value = v
	f.valid = false
}
