package enum

// RegisterStatus represents the state of a POS cash register session.
// A register transitions OPEN -> CLOSED exactly once.
type RegisterStatus string

const (
	RegisterStatusOpen   RegisterStatus = "OPEN"
	RegisterStatusClosed RegisterStatus = "CLOSED"
)

// Valid reports whether the status is one of the known values.
func (s RegisterStatus) Valid() bool {
	return s == RegisterStatusOpen || s == RegisterStatusClosed
}
