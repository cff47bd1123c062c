package types

import (
	"fmt"
	"strconv"
	"strings"
)

// RetvalIndex is the ArgSpec index used for a function's return value.
// Arguments are numbered from 1.
const RetvalIndex = 0

// DefaultSize is the size in bytes of an argument without an explicit size.
const DefaultSize = 8

// ArgFormat tells the decoder how to display a raw value
type ArgFormat int

const (
	// FormatAuto lets the decoder pick a representation (the default)
	FormatAuto ArgFormat = iota
	// FormatSInt is a signed integer (/i or /d)
	FormatSInt
	// FormatUInt is an unsigned integer (/u)
	FormatUInt
	// FormatHex is a hexadecimal integer (/x)
	FormatHex
	// FormatString is a C string pointer (/s)
	FormatString
	// FormatChar is a single character (/c)
	FormatChar
	// FormatFloat is a floating point value (/f or fparg)
	FormatFloat
	// FormatStdString is a C++ std::string (/S)
	FormatStdString
	// FormatPtr is a raw pointer (/p)
	FormatPtr
	// FormatEnum is an enum value resolved by name (/e:name)
	FormatEnum
)

// String returns the format letter used in the trigger language
func (f ArgFormat) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatSInt:
		return "i"
	case FormatUInt:
		return "u"
	case FormatHex:
		return "x"
	case FormatString:
		return "s"
	case FormatChar:
		return "c"
	case FormatFloat:
		return "f"
	case FormatStdString:
		return "S"
	case FormatPtr:
		return "p"
	case FormatEnum:
		return "e"
	default:
		return "unknown"
	}
}

// Sized reports whether the format accepts a size suffix such as /x64
func (f ArgFormat) Sized() bool {
	switch f {
	case FormatSInt, FormatUInt, FormatHex, FormatFloat:
		return true
	}
	return false
}

// ArgType tells the decoder where the value lives
type ArgType int

const (
	// TypeIndex follows the calling convention for the argument index
	TypeIndex ArgType = iota
	// TypeReg reads the value from a named register
	TypeReg
	// TypeStack reads the value from a stack slot
	TypeStack
)

// String returns a human-readable name for the location type
func (t ArgType) String() string {
	switch t {
	case TypeIndex:
		return "index"
	case TypeReg:
		return "reg"
	case TypeStack:
		return "stack"
	default:
		return "unknown"
	}
}

// ArgSpec describes how to interpret one argument or the return value of a
// traced function. It is a value type; copies are independent.
type ArgSpec struct {
	Index       int       // 1-based argument index, or RetvalIndex
	Format      ArgFormat // display format
	Type        ArgType   // location override
	Size        int       // size in bytes
	RegName     string    // register name when Type == TypeReg
	StackOffset int       // stack slot when Type == TypeStack
	EnumName    string    // enum name when Format == FormatEnum
	FloatArg    bool      // written as fpargN rather than argN/f
}

// IsRetval reports whether the spec describes a return value
func (a ArgSpec) IsRetval() bool {
	return a.Index == RetvalIndex
}

// String renders the spec back into a trigger action token.
// The output parses to an equal ArgSpec.
func (a ArgSpec) String() string {
	var sb strings.Builder

	switch {
	case a.IsRetval():
		sb.WriteString("retval")
	case a.FloatArg:
		sb.WriteString("fparg")
		sb.WriteString(strconv.Itoa(a.Index))
	default:
		sb.WriteString("arg")
		sb.WriteString(strconv.Itoa(a.Index))
	}

	if a.FloatArg {
		if a.Size != DefaultSize {
			fmt.Fprintf(&sb, "/%d", a.Size*8)
		}
	} else if suffix := a.formatSuffix(); suffix != "" {
		sb.WriteString("/")
		sb.WriteString(suffix)
	}

	switch a.Type {
	case TypeReg:
		sb.WriteString("%")
		sb.WriteString(a.RegName)
	case TypeStack:
		fmt.Fprintf(&sb, "%%stack+%d", a.StackOffset)
	}

	return sb.String()
}

func (a ArgSpec) formatSuffix() string {
	switch a.Format {
	case FormatAuto:
		return ""
	case FormatEnum:
		return "e:" + a.EnumName
	case FormatChar, FormatString, FormatStdString, FormatPtr:
		return a.Format.String()
	}

	if a.Size != DefaultSize {
		return fmt.Sprintf("%s%d", a.Format, a.Size*8)
	}
	return a.Format.String()
}
