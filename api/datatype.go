package api

import (
	"fmt"
	"strings"
)

// DataType declares how an attribute's text value should be interpreted.
type DataType string

const (
	String    DataType = "string"
	Number    DataType = "number"
	Timestamp DataType = "timestamp"
	Boolean   DataType = "boolean"
)

// ParseDataType normalizes a stored type name, case-insensitively.
func ParseDataType(name string) (DataType, error) {
	switch DataType(strings.ToLower(name)) {
	case String, Number, Timestamp, Boolean:
		return DataType(strings.ToLower(name)), nil
	}
	return "", fmt.Errorf("unknown data type %q", name)
}

func (d DataType) String() string { return string(d) }
