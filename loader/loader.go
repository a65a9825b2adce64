// Package loader reads workspaces from YAML documents.
//
// A document names its format version and lists top-level block trees:
//
//	format: 1.0.0
//	blocks:
//	  - kind: procedures_defreturn
//	    id: f
//	    params:
//	      - {name: n, type: int}
//	    slots:
//	      STACK:
//	        kind: variables_declare
//	        fields: {TYPE: int, VAR: total}
//	        next:
//	          kind: variables_set
//	          fields: {VAR: total}
//	      RETURN:
//	        kind: variables_get
//	        fields: {VAR: total}
package loader

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/BTechSCALE/blockly/block"
)

// SupportedFormats is the range of format versions the loader reads.
const SupportedFormats = `>=1.0.0 <2.0.0`

type (
	document struct {
		Format string      `yaml:"format"`
		Blocks []yaml.Node `yaml:"blocks"`
	}

	blockSpec struct {
		ID     string               `yaml:"id"`
		Kind   string               `yaml:"kind"`
		Fields map[string]string    `yaml:"fields"`
		Params []paramSpec          `yaml:"params"`
		Slots  map[string]yaml.Node `yaml:"slots"`
		Next   *yaml.Node           `yaml:"next"`
	}

	paramSpec struct {
		Name string `yaml:"name"`
		Type string `yaml:"type"`
		Dist string `yaml:"dist"`
	}
)

var (
	blockKeys = []string{"id", "kind", "fields", "params", "slots", "next"}
	paramKeys = []string{"name", "type", "dist"}
)

type loader struct {
	ErrorCollector

	file    string
	ws      *block.Workspace
	created []*block.Block
}

// LoadFile reads the workspace stored at path.
func LoadFile(path string) (*block.Workspace, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data, path)
}

// Load builds a new workspace from data. file is only used to locate errors.
func Load(data []byte, file string) (*block.Workspace, error) {
	ws := block.NewWorkspace()
	if err := LoadInto(ws, data, file); err != nil {
		return nil, err
	}
	return ws, nil
}

// LoadInto adds the blocks described by data to ws. Events are suppressed while building and a
// single FinishedLoading event is fired at the end. Every problem found is reported as an
// issue.Reported; several are joined. On failure the blocks built so far are disposed, leaving
// ws as it was.
func LoadInto(ws *block.Workspace, data []byte, file string) error {
	l := &loader{file: file, ws: ws}

	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return l.parseError(err)
	}
	if err := l.checkFormat(doc.Format); err != nil {
		return err
	}

	enabled := ws.EventsEnabled()
	ws.SetEventsEnabled(false)
	for i := range doc.Blocks {
		l.build(&doc.Blocks[i])
	}
	if l.HasErrors() {
		l.rollback()
		ws.SetEventsEnabled(enabled)
		return l.Err()
	}
	ws.SetEventsEnabled(enabled)
	ws.Fire(block.Event{Type: block.EventFinishedLoading})
	return nil
}

func (l *loader) checkFormat(format string) error {
	r, err := semver.ParseVersionRange(SupportedFormats)
	if err != nil {
		panic(err)
	}
	v, err := semver.ParseVersion(format)
	if err != nil || !r.Includes(v) {
		return l.error(UnsupportedFormat, nil, issue.H{`format`: format, `expected`: SupportedFormats})
	}
	return nil
}

// build creates the block described by n together with its slots and the statements chained
// after it. It returns nil when the block itself could not be created.
func (l *loader) build(n *yaml.Node) *block.Block {
	l.checkKeys(n, blockKeys)
	if params := mappingValue(n, "params"); params != nil && params.Kind == yaml.SequenceNode {
		for _, p := range params.Content {
			l.checkKeys(p, paramKeys)
		}
	}
	var def blockSpec
	if err := n.Decode(&def); err != nil {
		l.AddErrors(l.parseError(err))
		return nil
	}
	if def.Kind == "" {
		l.AddErrors(l.error(MissingKind, n, nil))
		return nil
	}
	b, err := l.ws.NewBlock(block.Kind(def.Kind), def.ID)
	if err != nil {
		l.AddErrors(l.error(DuplicateID, n, issue.H{`id`: def.ID}))
		return nil
	}
	l.created = append(l.created, b)
	b.SetPos(block.Position{Line: n.Line, Column: n.Column})

	names := maps.Keys(def.Fields)
	slices.Sort(names)
	for _, name := range names {
		if b.Field(name) == nil {
			// Kept so plain blocks can carry data for other tools.
			b.AppendField(name, def.Fields[name])
			continue
		}
		// Cannot fail: the field exists.
		_ = b.SetFieldValue(name, def.Fields[name])
	}

	if len(def.Params) > 0 {
		params := make([]block.Param, 0, len(def.Params))
		for _, p := range def.Params {
			params = append(params, block.Param(p))
		}
		b.SetParams(params)
	}

	slots := maps.Keys(def.Slots)
	slices.Sort(slots)
	for _, slot := range slots {
		sn := def.Slots[slot]
		child := l.build(&sn)
		if child == nil {
			continue
		}
		if b.Input(slot) == nil {
			b.AppendInput(slot, inputKind(child))
		}
		if err := l.ws.Connect(b, slot, child); err != nil {
			l.AddErrors(l.error(ConnectFailed, &sn, issue.H{`block`: child.String(), `detail`: err.Error()}))
		}
	}

	if def.Next != nil {
		if next := l.build(def.Next); next != nil {
			if err := l.ws.ConnectNext(b, next); err != nil {
				l.AddErrors(l.error(ConnectFailed, def.Next, issue.H{`block`: next.String(), `detail`: err.Error()}))
			}
		}
	}
	return b
}

// checkKeys reports the keys of mapping n that are not in known. yaml.v3 only enforces known
// fields on the document it decodes directly, not on nodes decoded later.
func (l *loader) checkKeys(n *yaml.Node, known []string) {
	if n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !slices.Contains(known, key.Value) {
			l.AddErrors(l.error(ParseError, key, issue.H{`detail`: fmt.Sprintf("unknown key %q", key.Value)}))
		}
	}
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// rollback disposes every block built by a failed load, last first.
func (l *loader) rollback() {
	for _, b := range slices.Backward(l.created) {
		if !b.Disposed() {
			l.ws.Dispose(b, false)
		}
	}
	l.created = nil
}

// inputKind picks the slot kind for a slot the block's definition lacks.
func inputKind(child *block.Block) block.InputKind {
	if child.HasOutput() {
		return block.ValueInput
	}
	return block.StatementInput
}

func (l *loader) error(code issue.Code, n *yaml.Node, args issue.H) issue.Reported {
	line, col := 0, 0
	if n != nil {
		line, col = n.Line, n.Column
	}
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, issue.NewLocation(l.file, line, col))
}

func (l *loader) parseError(err error) issue.Reported {
	return l.error(ParseError, nil, issue.H{`detail`: fmt.Sprint(err)})
}
