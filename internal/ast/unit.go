package ast

import (
	"govhdl/internal/source"
)

// UnitKind classifies design units. Primary units are addressable by name
// within a library; secondary units extend a named primary unit.
type UnitKind uint8

const (
	UnitEntity UnitKind = iota
	UnitConfiguration
	UnitPackage
	UnitPackageInstance
	UnitArchitecture
	UnitPackageBody
)

func (k UnitKind) String() string {
	switch k {
	case UnitEntity:
		return "entity"
	case UnitConfiguration:
		return "configuration"
	case UnitPackage:
		return "package"
	case UnitPackageInstance:
		return "package instance"
	case UnitArchitecture:
		return "architecture"
	case UnitPackageBody:
		return "package body"
	}
	return "invalid"
}

// IsPrimary reports whether units of this kind are primary.
func (k UnitKind) IsPrimary() bool {
	switch k {
	case UnitEntity, UnitConfiguration, UnitPackage, UnitPackageInstance:
		return true
	}
	return false
}

// EntityDecl is an entity declaration with its interface and optional
// statement part.
type EntityDecl struct {
	Ident    Ref
	Generics []InterfaceDecl
	Ports    []InterfaceDecl
	Decls    []Declaration
	Stmts    []ConcurrentStatement
}

// ArchitectureBody is a secondary unit extending the entity named by
// EntityName, which always lives in the same library.
type ArchitectureBody struct {
	Ident      Ref
	EntityName Ref
	Decls      []Declaration
	Stmts      []ConcurrentStatement
}

// ConfigurationDecl configures an entity, possibly through a
// library-qualified name.
type ConfigurationDecl struct {
	Ident      Ref
	EntityName SelectedName
}

// PackageDecl is a package declaration.
type PackageDecl struct {
	Ident    Ref
	Generics []InterfaceDecl
	Decls    []Declaration
}

// PackageBody is a secondary unit; its identifier is the name of the package
// it extends, so resolving binds Ident to the package declaration.
type PackageBody struct {
	Ident Ref
	Decls []Declaration
}

// PackageInstance instantiates an uninstantiated package by name.
type PackageInstance struct {
	Ident       Ref
	PackageName SelectedName
}

// DesignUnit is the tagged variant over all unit payloads. File records the
// source identity the unit was parsed from; Library is the owning library
// symbol, assigned when the unit is added to a library.
type DesignUnit struct {
	Kind    UnitKind
	File    source.FileID
	Library source.StringID

	Entity   *EntityDecl
	Arch     *ArchitectureBody
	Config   *ConfigurationDecl
	Pkg      *PackageDecl
	PkgBody  *PackageBody
	PkgInst  *PackageInstance
}

// NewEntity wraps an entity declaration into a design unit.
func NewEntity(file source.FileID, e *EntityDecl) *DesignUnit {
	return &DesignUnit{Kind: UnitEntity, File: file, Entity: e}
}

// NewArchitecture wraps an architecture body into a design unit.
func NewArchitecture(file source.FileID, a *ArchitectureBody) *DesignUnit {
	return &DesignUnit{Kind: UnitArchitecture, File: file, Arch: a}
}

// NewConfiguration wraps a configuration declaration into a design unit.
func NewConfiguration(file source.FileID, c *ConfigurationDecl) *DesignUnit {
	return &DesignUnit{Kind: UnitConfiguration, File: file, Config: c}
}

// NewPackage wraps a package declaration into a design unit.
func NewPackage(file source.FileID, p *PackageDecl) *DesignUnit {
	return &DesignUnit{Kind: UnitPackage, File: file, Pkg: p}
}

// NewPackageBody wraps a package body into a design unit.
func NewPackageBody(file source.FileID, p *PackageBody) *DesignUnit {
	return &DesignUnit{Kind: UnitPackageBody, File: file, PkgBody: p}
}

// NewPackageInstance wraps a package instance into a design unit.
func NewPackageInstance(file source.FileID, p *PackageInstance) *DesignUnit {
	return &DesignUnit{Kind: UnitPackageInstance, File: file, PkgInst: p}
}

// Ident returns the unit's own identifier occurrence.
func (u *DesignUnit) Ident() *Ref {
	switch u.Kind {
	case UnitEntity:
		return &u.Entity.Ident
	case UnitConfiguration:
		return &u.Config.Ident
	case UnitPackage:
		return &u.Pkg.Ident
	case UnitPackageInstance:
		return &u.PkgInst.Ident
	case UnitArchitecture:
		return &u.Arch.Ident
	case UnitPackageBody:
		return &u.PkgBody.Ident
	}
	return nil
}

// Sym returns the unit's identifier symbol.
func (u *DesignUnit) Sym() source.StringID {
	return u.Ident().Sym
}

// Name returns the unit's identifier spelling.
func (u *DesignUnit) Name() string {
	return u.Ident().Name
}

// PrimarySym returns, for a secondary unit, the symbol of the primary unit
// it extends; for primary units it returns the unit's own symbol.
func (u *DesignUnit) PrimarySym() source.StringID {
	switch u.Kind {
	case UnitArchitecture:
		return u.Arch.EntityName.Sym
	case UnitPackageBody:
		return u.PkgBody.Ident.Sym
	}
	return u.Sym()
}
