package block

// Kind identifies the definition a block was created from.
type Kind string

const (
	VariablesDeclare      Kind = "variables_declare"
	VariablesGet          Kind = "variables_get"
	VariablesSet          Kind = "variables_set"
	ControlsFor           Kind = "controls_for"
	ControlsIf            Kind = "controls_if"
	ControlsWhileUntil    Kind = "controls_whileUntil"
	ProceduresDefReturn   Kind = "procedures_defreturn"
	ProceduresDefNoReturn Kind = "procedures_defnoreturn"
)

// Slot names used by the built-in kinds.
const (
	SlotInit   = "INIT"
	SlotCond   = "COND"
	SlotInc    = "INC"
	SlotDo     = "DO"
	SlotValue  = "VALUE"
	SlotStack  = "STACK"
	SlotReturn = "RETURN"
	SlotIf     = "IF0"
	SlotDoIf   = "DO0"
	SlotBool   = "BOOL"
)

// Field names used by the built-in kinds.
const (
	FieldVar  = "VAR"
	FieldType = "TYPE"
	FieldName = "NAME"
)

// Connector compatibility checks.
const (
	CheckStatement = "STATEMENT"
	CheckDec       = "DEC"
	CheckSet       = "SET"
	CheckVar       = "VAR"
)

// VariableTypes lists the primitive types a declaration can carry.
var VariableTypes = []string{"int", "double", "char"}

type InputKind int

const (
	ValueInput InputKind = iota
	StatementInput
)

var inputKindNames = [...]string{
	ValueInput:     "value",
	StatementInput: "statement",
}

func (k InputKind) String() string { return inputKindNames[k] }

// RoleKind selects how a kind contributes declarations to a scope.
type RoleKind int

const (
	RolePlain RoleKind = iota
	RoleDeclaration
	RoleParameters
)

type (
	InputDef struct {
		Name  string
		Kind  InputKind
		Check []string
	}

	FieldDef struct {
		Name    string
		Default string
	}

	// Definition describes the shape of a block kind: its slots, fields and connectors.
	Definition struct {
		Inputs []InputDef
		Fields []FieldDef

		// Statement blocks have previous and next connectors sharing Check.
		Statement bool
		Output    bool
		Check     []string

		Role      RoleKind
		Reference bool
		Dist      string
	}
)

// plainDefinition is used for kinds nobody defined.
var plainDefinition = Definition{
	Statement: true,
	Check:     []string{CheckStatement},
}

func builtinDefinitions() map[Kind]Definition {
	return map[Kind]Definition{
		VariablesDeclare: {
			Inputs: []InputDef{{Name: SlotValue, Kind: ValueInput}},
			Fields: []FieldDef{
				{Name: FieldType, Default: VariableTypes[0]},
				{Name: FieldVar, Default: "var"},
			},
			Statement: true,
			Check:     []string{CheckStatement, CheckDec},
			Role:      RoleDeclaration,
			Dist:      DistVariable,
		},
		VariablesGet: {
			Fields:    []FieldDef{{Name: FieldVar}},
			Output:    true,
			Check:     []string{CheckVar},
			Reference: true,
			Dist:      DistVariable,
		},
		VariablesSet: {
			Inputs:    []InputDef{{Name: SlotValue, Kind: ValueInput}},
			Fields:    []FieldDef{{Name: FieldVar}},
			Statement: true,
			Check:     []string{CheckStatement, CheckSet},
			Reference: true,
			Dist:      DistVariable,
		},
		ControlsFor: {
			Inputs: []InputDef{
				{Name: SlotInit, Kind: StatementInput, Check: []string{CheckDec, CheckSet}},
				{Name: SlotCond, Kind: ValueInput},
				{Name: SlotInc, Kind: StatementInput, Check: []string{CheckSet}},
				{Name: SlotDo, Kind: StatementInput, Check: []string{CheckStatement}},
			},
			Statement: true,
			Check:     []string{CheckStatement},
		},
		ControlsIf: {
			Inputs: []InputDef{
				{Name: SlotIf, Kind: ValueInput},
				{Name: SlotDoIf, Kind: StatementInput, Check: []string{CheckStatement}},
			},
			Statement: true,
			Check:     []string{CheckStatement},
		},
		ControlsWhileUntil: {
			Inputs: []InputDef{
				{Name: SlotBool, Kind: ValueInput},
				{Name: SlotDo, Kind: StatementInput, Check: []string{CheckStatement}},
			},
			Statement: true,
			Check:     []string{CheckStatement},
		},
		ProceduresDefReturn: {
			Fields: []FieldDef{{Name: FieldName, Default: "do something"}},
			Inputs: []InputDef{
				{Name: SlotStack, Kind: StatementInput, Check: []string{CheckStatement}},
				{Name: SlotReturn, Kind: ValueInput},
			},
			Role: RoleParameters,
		},
		ProceduresDefNoReturn: {
			Fields: []FieldDef{{Name: FieldName, Default: "do something"}},
			Inputs: []InputDef{
				{Name: SlotStack, Kind: StatementInput, Check: []string{CheckStatement}},
			},
			Role: RoleParameters,
		},
	}
}

// compatible reports whether two connector checks accept each other. A nil check accepts anything.
func compatible(a, b []string) bool {
	if a == nil || b == nil {
		return true
	}
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
