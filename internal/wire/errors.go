package wire

import "fmt"

// errInvalidHeaderLength reports a header buffer of the wrong size
// passed to Header.UnmarshalBinary. This can only happen on a
// programmer error (a hand-built buffer), never from data this package
// itself produced.
func errInvalidHeaderLength(got int) error {
	return fmt.Errorf("wire: header must be %d bytes, got %d", HeaderSize, got)
}
