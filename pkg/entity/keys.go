// pkg/entity/keys.go
package entity

// Key identifies an abstract input action recognized by the carrier.
// The set is closed; values outside [0, KeyCount) are a caller bug.
type Key int

const (
	KeyForward Key = iota
	KeyBackward
	KeyLeft
	KeyRight
	KeyCount
)

// Valid reports whether the key is a member of the input identifier space.
func (k Key) Valid() bool {
	return k >= 0 && k < KeyCount
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyForward:
		return "forward"
	case KeyBackward:
		return "backward"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}
