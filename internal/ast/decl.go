package ast

// DeclKind discriminates Declaration payloads.
type DeclKind uint8

const (
	DeclObject DeclKind = iota
	DeclComponent
	DeclType
	DeclSubprogram
)

func (k DeclKind) String() string {
	switch k {
	case DeclObject:
		return "object"
	case DeclComponent:
		return "component"
	case DeclType:
		return "type"
	case DeclSubprogram:
		return "subprogram"
	}
	return "invalid"
}

// Declaration is a tagged variant over the declaration payloads. Exactly the
// pointer matching Kind is non-nil.
type Declaration struct {
	Kind       DeclKind
	Object     *ObjectDecl
	Component  *ComponentDecl
	Type       *TypeDecl
	Subprogram *SubprogramDecl
}

// SubtypeIndication names the type of an object or interface object.
type SubtypeIndication struct {
	TypeMark Ref
}

// ObjectDecl covers signal, variable and constant declarations.
type ObjectDecl struct {
	Ident   Ident
	Subtype SubtypeIndication
}

// ComponentDecl declares a component inside a declarative region. Its
// identifier is a Ref: the declaration registers itself so that component
// instantiations and cursor queries both land here.
type ComponentDecl struct {
	Ident    Ref
	Generics []InterfaceDecl
	Ports    []InterfaceDecl
}

// TypeDecl is a type declaration. Only its identifier matters to cross-unit
// analysis; the definition body contributes no references yet.
type TypeDecl struct {
	Ident Ident
}

// SubprogramDecl covers function and procedure declarations and bodies.
type SubprogramDecl struct {
	Ident  Ident
	Params []InterfaceDecl
	Decls  []Declaration
}

// InterfaceDecl is a generic or port interface object.
type InterfaceDecl struct {
	Ident   Ident
	Subtype SubtypeIndication
}

// ObjectDeclaration wraps an ObjectDecl into a Declaration.
func ObjectDeclaration(d *ObjectDecl) Declaration {
	return Declaration{Kind: DeclObject, Object: d}
}

// ComponentDeclaration wraps a ComponentDecl into a Declaration.
func ComponentDeclaration(d *ComponentDecl) Declaration {
	return Declaration{Kind: DeclComponent, Component: d}
}

// TypeDeclaration wraps a TypeDecl into a Declaration.
func TypeDeclaration(d *TypeDecl) Declaration {
	return Declaration{Kind: DeclType, Type: d}
}

// SubprogramDeclaration wraps a SubprogramDecl into a Declaration.
func SubprogramDeclaration(d *SubprogramDecl) Declaration {
	return Declaration{Kind: DeclSubprogram, Subprogram: d}
}
