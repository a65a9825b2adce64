package printer

import (
	"strings"

	"github.com/BTechSCALE/blockly/block"
)

type state struct {
	out    *strings.Builder
	node   *block.Block
	indent int
}

func (s *state) wrap(node *block.Block) *state {
	return &state{
		out:    s.out,
		node:   node,
		indent: s.indent,
	}
}

func (s *state) line() {
	s.out.WriteString("\n")
}

func (s *state) lineAndPad() {
	s.line()
	s.out.WriteString(strings.Repeat("    ", s.indent))
}
