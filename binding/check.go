package binding

import (
	"github.com/lyraproj/issue/issue"
	"golang.org/x/text/unicode/norm"

	"github.com/BTechSCALE/blockly/block"
	"github.com/BTechSCALE/blockly/scope"
)

// Check rebinds every reference in ws and reports unresolved references, declarations shadowing
// a declaration visible from them and declarations nothing refers to. An unresolved name that
// equals a visible one once both are NFC normalized gets an extra report. file locates the
// issues.
func (bd *Binder) Check(ws *block.Workspace, file string) []issue.Reported {
	var reported []issue.Reported
	all := ws.AllBlocks()

	for _, b := range all {
		if !b.IsReference() {
			continue
		}
		if bd.Rebind(b) != Unbound {
			continue
		}
		name := b.FieldValue(block.FieldVar)
		reported = append(reported, report(UnresolvedReference, file, b, issue.H{
			`block`: b.String(),
			`name`:  name,
		}))
		if d, ok := bd.lookalike(b, name); ok {
			reported = append(reported, report(UnnormalizedName, file, b, issue.H{
				`block`:      b.String(),
				`name`:       name,
				`declared`:   d.Name,
				`declarator`: d.Block.String(),
			}))
		}
	}

	for _, b := range all {
		r, ok := b.Role().(block.Declares)
		if !ok {
			continue
		}
		visible := bd.walker.Query(b, scope.Criteria{scope.AttrName: scope.Is(r.Declaration.Name)})
		if len(visible) > 0 {
			reported = append(reported, report(ShadowedDeclaration, file, b, issue.H{
				`block`:    b.String(),
				`name`:     r.Declaration.Name,
				`shadowed`: visible[0].Block.String(),
			}))
		}
	}

	for _, b := range CollectUsages(ws).Unused() {
		r, ok := b.Role().(block.Declares)
		if !ok {
			continue
		}
		reported = append(reported, report(UnusedDeclaration, file, b, issue.H{
			`block`: b.String(),
			`name`:  r.Declaration.Name,
		}))
	}
	return reported
}

// lookalike finds a declaration visible from ref whose name differs from name only in its
// Unicode normalization form.
func (bd *Binder) lookalike(ref *block.Block, name string) (block.Declaration, bool) {
	if name == "" {
		return block.Declaration{}, false
	}
	want := norm.NFC.String(name)
	for _, d := range bd.walker.Query(ref, nil) {
		if d.Name != name && norm.NFC.String(d.Name) == want {
			return d, true
		}
	}
	return block.Declaration{}, false
}

func report(code issue.Code, file string, b *block.Block, args issue.H) issue.Reported {
	pos := b.Pos()
	return issue.NewReported(code, issue.SEVERITY_WARNING, args, issue.NewLocation(file, pos.Line, pos.Column))
}

// Unresolved filters the reports down to unresolved references.
func Unresolved(reported []issue.Reported) []issue.Reported {
	var out []issue.Reported
	for _, r := range reported {
		if r.Code() == UnresolvedReference {
			out = append(out, r)
		}
	}
	return out
}
