package wire

// Operation is a property operation.
type Operation uint8

const (
	// OpGet reads a property.
	OpGet Operation = 1

	// OpSet writes a property.
	OpSet Operation = 2
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpGet:
		return "Get"
	case OpSet:
		return "Set"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the operation is defined.
func (o Operation) IsValid() bool {
	return o == OpGet || o == OpSet
}
