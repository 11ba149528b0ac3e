package schema

import "fmt"

// Kind identifies the value type of a parameter.
type Kind int

const (
	Int Kind = iota + 1
	Float
	Bool
	IntList
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case IntList:
		return "[]int"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
