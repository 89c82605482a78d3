package dcbor

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// NormalizeNFC returns s normalised to Unicode NFC. It is applied by the
// Text constructor so every Value built in-process already satisfies §4.2.
func NormalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// ValidateNFC checks that b is valid UTF-8 and already in NFC, as the
// decoder must on every text string it parses (§4.2). It returns the decoded
// string on success.
func ValidateNFC(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", newErr(ErrInvalidString, -1, "text is not valid UTF-8")
	}
	s := string(b)
	if !norm.NFC.IsNormalString(s) {
		return "", newErr(ErrNonCanonicalString, -1, "text is not in Unicode NFC")
	}
	return s, nil
}

// ValidatedText constructs a Text value only if s is already NFC, returning
// NonCanonicalString otherwise. Use Text for the normalise-on-construct
// convenience the encoder contract (§4.4) allows.
func ValidatedText(s string) (Value, error) {
	if !norm.NFC.IsNormalString(s) {
		return Value{}, newErr(ErrNonCanonicalString, -1, "text is not in Unicode NFC")
	}
	return Value{kind: KindText, text: s}, nil
}
