package envelope

import "github.com/dcbor-go/dcbor/dcbor"

// Encrypted and Compressed are minimal constructors for the two extension
// cases of §3.2/§6.2. The core never produces these itself — external
// collaborators (§6.4: crypto and compression extensions) compute plaintextDigest/
// uncompressedDigest and the opaque payload outside this package and hand
// back a finished Envelope that still digests to the original content's
// digest, so the envelope's identity survives encryption or compression.

// Encrypted wraps an opaque encrypted blob that stands in for the envelope
// whose plaintext digest is plaintextDigest.
func Encrypted(plaintextDigest Digest, payload dcbor.Value) *Envelope {
	return &Envelope{
		kind:   CaseEncrypted,
		opaque: opaqueBlob{digest: plaintextDigest, payload: payload},
		digest: plaintextDigest,
	}
}

// Compressed wraps an opaque compressed blob that stands in for the
// envelope whose uncompressed digest is uncompressedDigest.
func Compressed(uncompressedDigest Digest, payload dcbor.Value) *Envelope {
	return &Envelope{
		kind:   CaseCompressed,
		opaque: opaqueBlob{digest: uncompressedDigest, payload: payload},
		digest: uncompressedDigest,
	}
}

// OpaquePayload returns the transport payload of an Encrypted or Compressed
// envelope, failing with InvalidType otherwise.
func OpaquePayload(e *Envelope) (dcbor.Value, error) {
	if e.kind != CaseEncrypted && e.kind != CaseCompressed {
		return dcbor.Value{}, newErr(dcbor.ErrInvalidType, "expected an Encrypted or Compressed envelope, got "+e.kind.String())
	}
	return e.opaque.payload, nil
}
