package envelope

import "github.com/dcbor-go/dcbor/dcbor"

// newErr builds a dcbor.Error of the given kind for envelope-layer failures.
// Envelope operations reuse the core error taxonomy (§7) rather than
// inventing a parallel one, since NotWrapped/NotAssertion/AmbiguousType/
// InvalidType are already part of it.
func newErr(kind dcbor.ErrorKind, msg string) error {
	return &dcbor.Error{Kind: kind, Offset: -1, Message: msg}
}
