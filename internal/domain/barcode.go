package domain

import "strings"

// Barcode is the raw decoded text of a scanned symbol (UPC-A, EAN-13, UPC-E, ...).
// No checksum validation happens here; malformed codes are passed through and
// rejected by the upstream provider.
type Barcode string

// Trim returns the barcode with surrounding whitespace removed.
func (b Barcode) Trim() Barcode {
	return Barcode(strings.TrimSpace(string(b)))
}

// IsEmpty reports whether the barcode is empty after trimming.
func (b Barcode) IsEmpty() bool {
	return b.Trim() == ""
}

// PadTo13 zero-pads the barcode to 13 digits for providers that require
// fixed-width EAN-13 identifiers. Barcodes already 13 digits or longer are
// returned unchanged.
func (b Barcode) PadTo13() Barcode {
	s := string(b.Trim())
	for len(s) < 13 {
		s = "0" + s
	}
	return Barcode(s)
}

func (b Barcode) String() string {
	return string(b)
}
