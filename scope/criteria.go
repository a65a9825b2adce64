package scope

import (
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/BTechSCALE/blockly/block"
)

// Attr names a declaration attribute criteria can constrain.
type Attr string

const (
	AttrName Attr = "name"
	AttrType Attr = "type"
	AttrDist Attr = "dist"
	AttrSpec Attr = "spec"
)

// Criterion is either a single expected value or a set of acceptable values.
type Criterion struct {
	values []string
	set    bool
}

// Is accepts exactly v.
func Is(v string) Criterion {
	return Criterion{values: []string{v}}
}

// OneOf accepts any of vs.
func OneOf(vs ...string) Criterion {
	return Criterion{values: slices.Clone(vs), set: true}
}

func (c Criterion) accepts(v string) bool {
	return slices.Contains(c.values, v)
}

func (c Criterion) String() string {
	if c.set {
		return "[" + strings.Join(c.values, " ") + "]"
	}
	if len(c.values) == 0 {
		return ""
	}
	return c.values[0]
}

// Criteria constrain declarations attribute by attribute. Attributes without a criterion are
// unconstrained.
type Criteria map[Attr]Criterion

// Matches reports whether d satisfies every criterion.
func (c Criteria) Matches(d block.Declaration) bool {
	for attr, want := range c {
		got, ok := attribute(d, attr)
		if !ok || !want.accepts(got) {
			return false
		}
	}
	return true
}

func (c Criteria) String() string {
	attrs := maps.Keys(c)
	slices.Sort(attrs)
	parts := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		parts = append(parts, string(attr)+": "+c[attr].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func attribute(d block.Declaration, attr Attr) (string, bool) {
	switch attr {
	case AttrName:
		return d.Name, true
	case AttrType:
		return d.Type, true
	case AttrDist:
		return d.Dist, true
	case AttrSpec:
		return d.Spec, true
	}
	return "", false
}
