package scope

import (
	"slices"

	"github.com/BTechSCALE/blockly/block"
)

// VariableOptions lists the names a reference block's dropdown offers: declarations in scope
// sharing the reference's category or passed by reference, closest first. The current name is
// appended when no declaration provides it; otherwise an empty entry is.
func (w *Walker) VariableOptions(ref *block.Block) []string {
	var names []string
	for _, d := range w.Query(ref, Criteria{AttrDist: OneOf(ref.Dist(), block.DistReference)}) {
		if !slices.Contains(names, d.Name) {
			names = append(names, d.Name)
		}
	}
	if name := ref.FieldValue(block.FieldVar); name != "" && !slices.Contains(names, name) {
		names = append(names, name)
	} else {
		names = append(names, "")
	}
	return names
}
