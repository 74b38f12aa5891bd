package primitives

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"nimiq/crypto"
)

const (
	AddressSize   = 20
	PublicKeySize = 32

	countryCode    = "NQ"
	friendlyLength = 36
)

var (
	ErrInvalidAddress  = errors.New("invalid address")
	ErrAddressChecksum = errors.New("address checksum mismatch")

	nimiqBase32 = base32.NewEncoding("0123456789ABCDEFGHJKLMNPQRSTUVXY").WithPadding(base32.NoPadding)
)

// Address is the 20-byte identifier of a Nimiq account. It renders either as
// 40 hex characters or as the user friendly NQ-address.
type Address [AddressSize]byte

var ZeroAddress Address

func ParseHexAddress(s string) (Address, error) {
	var a Address
	b, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
	if err != nil {
		return a, errors.Wrapf(ErrInvalidAddress, "%q is not hex", s)
	}
	if len(b) != AddressSize {
		return a, errors.Wrapf(ErrInvalidAddress, "%q has %d bytes", s, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// ParseFriendlyAddress parses an NQ-address. Spaces are optional and the
// check digits are verified.
func ParseFriendlyAddress(s string) (Address, error) {
	var a Address
	compact := strings.ToUpper(strings.Replace(s, " ", "", -1))
	if len(compact) != friendlyLength || !strings.HasPrefix(compact, countryCode) {
		return a, errors.Wrapf(ErrInvalidAddress, "%q is not an NQ-address", s)
	}
	b, err := nimiqBase32.DecodeString(compact[4:])
	if err != nil || len(b) != AddressSize {
		return a, errors.Wrapf(ErrInvalidAddress, "%q has an invalid body", s)
	}
	copy(a[:], b)
	if a.checkDigits() != compact[2:4] {
		return a, errors.Wrapf(ErrAddressChecksum, "%q", s)
	}
	return a, nil
}

// ParseAddress accepts both the hex and the NQ form.
func ParseAddress(s string) (Address, error) {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(s)), countryCode) {
		return ParseFriendlyAddress(s)
	}
	return ParseHexAddress(s)
}

// AddressFromPublicKey derives the account address of an Ed25519 public key:
// the first 20 bytes of its Blake2b-256 hash.
func AddressFromPublicKey(pub []byte) (Address, error) {
	var a Address
	if len(pub) != PublicKeySize {
		return a, errors.Errorf("public key must be %d bytes, got %d", PublicKeySize, len(pub))
	}
	h := crypto.Blake2B256(pub)
	copy(a[:], h[:AddressSize])
	return a, nil
}

func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// Friendly returns the NQ-address in groups of four characters.
func (a Address) Friendly() string {
	compact := countryCode + a.checkDigits() + nimiqBase32.EncodeToString(a[:])
	var sb strings.Builder
	for i := 0; i < len(compact); i += 4 {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(compact[i : i+4])
	}
	return sb.String()
}

func (a Address) String() string {
	return a.Friendly()
}

func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) Equal(other Address) bool {
	return bytes.Equal(a[:], other[:])
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Friendly()), nil
}

func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) checkDigits() string {
	check := 98 - ibanMod97(nimiqBase32.EncodeToString(a[:])+countryCode+"00")
	if check < 10 {
		return "0" + strconv.Itoa(check)
	}
	return strconv.Itoa(check)
}

// ibanMod97 maps letters to 10..35 and reduces the resulting decimal string
// modulo 97 one digit at a time.
func ibanMod97(s string) int {
	rem := 0
	for _, c := range s {
		var digits string
		switch {
		case c >= '0' && c <= '9':
			digits = string(c)
		default:
			digits = strconv.Itoa(int(c-'A') + 10)
		}
		for _, d := range digits {
			rem = (rem*10 + int(d-'0')) % 97
		}
	}
	return rem
}

// resolveAddress decodes the raw/friendly pair in which the node reports
// every address. One form is derived from the other when only one is
// present; when both are present they must agree.
func resolveAddress(field string, rawID string, friendly string) (Address, error) {
	var fromID, fromFriendly Address
	var err error
	if rawID != "" {
		if fromID, err = ParseHexAddress(rawID); err != nil {
			return ZeroAddress, &FieldError{Field: field, Err: err}
		}
	}
	if friendly != "" {
		if fromFriendly, err = ParseFriendlyAddress(friendly); err != nil {
			return ZeroAddress, &FieldError{Field: field + "Address", Err: err}
		}
	}
	switch {
	case rawID != "" && friendly != "":
		if fromID != fromFriendly {
			return ZeroAddress, &FieldError{
				Field: field,
				Err:   errors.Errorf("id %s does not match address %s", rawID, friendly),
			}
		}
		return fromID, nil
	case rawID != "":
		return fromID, nil
	default:
		return fromFriendly, nil
	}
}
