package card

import (
	"errors"
	"strings"
)

var (
	ErrEmptyBarcode    = errors.New("barcode must not be empty")
	ErrBarcodeTooLong  = errors.New("barcode exceeds maximum length")
	ErrEmptyRegistrant = errors.New("registrant must not be empty")
	ErrInvalidStatus   = errors.New("invalid card status")
)

const MaxBarcodeLength = 512

const barcodeQueryParam = "?barcode="

type Barcode string

// NewBarcode accepts either a bare token or a full scanned URL of the form
// https://host/path?barcode=TOKEN and keeps only the token.
func NewBarcode(raw string) (Barcode, error) {
	raw = strings.TrimSpace(raw)
	if s := strings.Index(raw, barcodeQueryParam); s != -1 {
		raw = raw[s+len(barcodeQueryParam):]
	}
	if raw == "" {
		return Barcode(""), ErrEmptyBarcode
	}
	if len(raw) > MaxBarcodeLength {
		return Barcode(""), ErrBarcodeTooLong
	}
	return Barcode(raw), nil
}

func (b Barcode) String() string {
	return string(b)
}

// Status ranks how urgently a card should be used. Higher values are
// preferred by the selector.
type Status int16

const (
	StatusNone Status = iota
	StatusMild
	StatusMedium
	StatusHot
)

func NewStatus(v int16) (Status, error) {
	s := Status(v)
	if !s.IsValid() {
		return StatusNone, ErrInvalidStatus
	}
	return s, nil
}

func (s Status) IsValid() bool {
	return s >= StatusNone && s <= StatusHot
}

func (s Status) String() string {
	switch s {
	case StatusNone:
		return "none"
	case StatusMild:
		return "mild"
	case StatusMedium:
		return "medium"
	case StatusHot:
		return "hot"
	default:
		return "unknown"
	}
}
