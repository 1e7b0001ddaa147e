package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value and must not be emitted by passes.
	UnknownCode Code = 0

	// Library indexing
	SemDuplicatePrimaryUnit  Code = 3001
	SemDuplicateArchitecture Code = 3002

	// Cross-unit resolution
	SemNoPrimaryUnit        Code = 3101
	SemNoDeclaration        Code = 3102
	SemConfigBeforeEntity   Code = 3103
	SemConfigOutsideLibrary Code = 3104
)

func (c Code) String() string {
	switch c {
	case SemDuplicatePrimaryUnit:
		return "SEM3001"
	case SemDuplicateArchitecture:
		return "SEM3002"
	case SemNoPrimaryUnit:
		return "SEM3101"
	case SemNoDeclaration:
		return "SEM3102"
	case SemConfigBeforeEntity:
		return "SEM3103"
	case SemConfigOutsideLibrary:
		return "SEM3104"
	case UnknownCode:
		return "UNKNOWN"
	}
	return fmt.Sprintf("SEM%04d", uint16(c))
}
