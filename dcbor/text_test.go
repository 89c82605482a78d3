package dcbor

import "testing"

func TestTextConstructorNormalizesToNFC(t *testing.T) {
	// "e" + combining acute accent (U+0301), i.e. NFD, must normalise to
	// the precomposed NFC form (U+00E9) when built through Text.
	nfd := "é"
	nfc := "é"
	v := Text(nfd)
	s, err := v.TextValue()
	if err != nil {
		t.Fatalf("TextValue: %v", err)
	}
	if s != nfc {
		t.Fatalf("Text(%q) = %q, want NFC form %q", nfd, s, nfc)
	}
}

func TestValidatedTextRejectsNFD(t *testing.T) {
	nfd := "é"
	_, err := ValidatedText(nfd)
	if err == nil {
		t.Fatalf("expected NonCanonicalString error")
	}
	if kind, _ := Kind(err); kind != ErrNonCanonicalString {
		t.Fatalf("got kind %v, want NonCanonicalString", kind)
	}
}

func TestValidatedTextAcceptsNFC(t *testing.T) {
	v, err := ValidatedText("café")
	if err != nil {
		t.Fatalf("ValidatedText: %v", err)
	}
	if s, _ := v.TextValue(); s != "café" {
		t.Fatalf("got %q", s)
	}
}

func TestValidateNFCRejectsInvalidUTF8(t *testing.T) {
	_, err := ValidateNFC([]byte{0xff, 0xfe})
	if err == nil {
		t.Fatalf("expected InvalidString error")
	}
	if kind, _ := Kind(err); kind != ErrInvalidString {
		t.Fatalf("got kind %v, want InvalidString", kind)
	}
}
