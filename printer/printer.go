// Package printer renders workspaces as indented text.
//
// Each block is printed as kind#id followed by its fields and, for procedures, its parameters.
// Slots are labelled and indented below their owner; chained statements follow one another at
// the same depth. References end with the id of their declarator or with "unresolved".
package printer

import (
	"strings"

	"github.com/BTechSCALE/blockly/block"
)

const unresolved = "unresolved"

// Print renders every top-level tree of ws.
func Print(ws *block.Workspace) string {
	s := &state{out: &strings.Builder{}}
	for _, b := range ws.TopBlocks() {
		genChain(s, b)
	}
	return finish(s)
}

// PrintBlock renders b, its slots and the statements chained after it.
func PrintBlock(b *block.Block) string {
	s := &state{out: &strings.Builder{}}
	genChain(s, b)
	return finish(s)
}

func finish(s *state) string {
	out := strings.TrimPrefix(s.out.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func genChain(s *state, first *block.Block) {
	for b := first; b != nil; b = b.Next() {
		s.lineAndPad()
		gen(s.wrap(b))
	}
}

func gen(s *state) {
	b := s.node
	s.out.WriteString(b.String())

	for _, f := range b.Fields() {
		s.out.WriteString(" " + f.Name() + "=" + quote(f.Value()))
	}

	if _, ok := b.Role().(block.OwnsParameters); ok {
		s.out.WriteString(" (")
		for i, p := range b.Params() {
			if i > 0 {
				s.out.WriteString(", ")
			}
			s.out.WriteString(p.Name + " " + p.Type)
			if p.Dist != "" && p.Dist != block.DistVariable {
				s.out.WriteString(" &" + p.Dist)
			}
		}
		s.out.WriteString(")")
	}

	if b.IsReference() {
		if d := b.Declarator(); d != nil {
			s.out.WriteString(" -> " + d.ID())
		} else {
			s.out.WriteString(" " + unresolved)
		}
	}

	s.indent++
	for _, in := range b.Inputs() {
		if in.Target() == nil {
			continue
		}
		s.lineAndPad()
		s.out.WriteString(in.Name() + ":")
		s.indent++
		genChain(s, in.Target())
		s.indent--
	}
	s.indent--
}

func quote(v string) string {
	if v == "" || strings.ContainsAny(v, " \t\n\"=") {
		return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
	}
	return v
}
