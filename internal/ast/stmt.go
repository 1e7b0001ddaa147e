package ast

// ConcurrentKind discriminates ConcurrentStatement payloads.
type ConcurrentKind uint8

const (
	ConcBlock ConcurrentKind = iota
	ConcProcess
	ConcInstantiation
	ConcForGenerate
	ConcIfGenerate
	ConcCaseGenerate
	// ConcOther marks statement kinds the analysis does not look into yet
	// (concurrent assignments, assertions, procedure calls). They contribute
	// no references.
	ConcOther
)

func (k ConcurrentKind) String() string {
	switch k {
	case ConcBlock:
		return "block"
	case ConcProcess:
		return "process"
	case ConcInstantiation:
		return "instantiation"
	case ConcForGenerate:
		return "for-generate"
	case ConcIfGenerate:
		return "if-generate"
	case ConcCaseGenerate:
		return "case-generate"
	case ConcOther:
		return "other"
	}
	return "invalid"
}

// ConcurrentStatement is a labeled concurrent statement. The label, when
// present, is a declaration in its own right and resolves to itself. The
// payload pointer matching Kind is non-nil; ConcOther has no payload.
type ConcurrentStatement struct {
	Label         *Ref
	Kind          ConcurrentKind
	Block         *BlockStatement
	Process       *ProcessStatement
	Instantiation *InstantiationStatement
	ForGenerate   *ForGenerateStatement
	IfGenerate    *IfGenerateStatement
	CaseGenerate  *CaseGenerateStatement
}

// SequentialStatement is a labeled sequential statement. Statement interiors
// (expressions, targets, waveforms) are not analyzed yet and contribute no
// references.
type SequentialStatement struct {
	Label *Ref
}

// BlockStatement owns a declarative region and nested concurrent statements.
type BlockStatement struct {
	Decls []Declaration
	Stmts []ConcurrentStatement
}

// ProcessStatement owns a declarative region and a sequential body.
type ProcessStatement struct {
	Decls []Declaration
	Stmts []SequentialStatement
}

// GenerateBody is the declarative region plus statement part shared by all
// generate forms.
type GenerateBody struct {
	Decls []Declaration
	Stmts []ConcurrentStatement
}

type ForGenerateStatement struct {
	Body GenerateBody
}

// IfGenerateStatement keeps one body per condition plus an optional else.
type IfGenerateStatement struct {
	Conditionals []GenerateBody
	Else         *GenerateBody
}

// CaseGenerateStatement keeps one body per alternative.
type CaseGenerateStatement struct {
	Alternatives []GenerateBody
}

// InstantiatedUnitKind discriminates the three instantiation forms.
type InstantiatedUnitKind uint8

const (
	InstEntity InstantiatedUnitKind = iota
	InstComponent
	InstConfiguration
)

func (k InstantiatedUnitKind) String() string {
	switch k {
	case InstEntity:
		return "entity"
	case InstComponent:
		return "component"
	case InstConfiguration:
		return "configuration"
	}
	return "invalid"
}

// InstantiationStatement instantiates an entity, component or configuration
// by (optionally library-qualified) name.
type InstantiationStatement struct {
	Unit InstantiatedUnitKind
	Name SelectedName
}

// Instantiation wraps an instantiation into a labeled concurrent statement.
func Instantiation(label *Ref, stmt *InstantiationStatement) ConcurrentStatement {
	return ConcurrentStatement{Label: label, Kind: ConcInstantiation, Instantiation: stmt}
}
