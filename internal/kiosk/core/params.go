package core

// WaitTime is the per-request timeout in seconds.
const WaitTime = 10

const (
	DefaultTokenStart = 101

	MinItemQuantity = 1
	MaxItemQuantity = 50

	MinItemNameLen = 1
	MaxItemNameLen = 100

	MaxNotesLen = 200
)

// KioskParams carries runtime limits resolved from config. The token start
// goes straight to the state store instead.
type KioskParams struct {
	MaxQuantity int
	MaxNotesLen int
}
