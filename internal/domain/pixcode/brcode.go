package pixcode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	pixGUI       = "br.gov.bcb.pix"
	currencyBRL  = "986"
	countryBR    = "BR"
	maxNameLen   = 25
	maxCityLen   = 15
	maxTxIDLen   = 25
	crcTagLength = "6304"
)

var ErrMissingKey = errors.New("pix key is required")

// StaticCode describes a static Pix charge.
type StaticCode struct {
	Key          string
	MerchantName string
	MerchantCity string
	AmountCents  int64
	TxID         string
}

// Build renders the EMV payload, CRC included. Name, city and txid are
// truncated to their field limits.
func (c StaticCode) Build() (string, error) {
	if strings.TrimSpace(c.Key) == "" {
		return "", ErrMissingKey
	}

	account := tlv("00", pixGUI) + tlv("01", c.Key)

	var b strings.Builder
	b.WriteString(tlv("00", "01"))
	b.WriteString(tlv("26", account))
	b.WriteString(tlv("52", "0000"))
	b.WriteString(tlv("53", currencyBRL))
	if c.AmountCents > 0 {
		b.WriteString(tlv("54", decimal.New(c.AmountCents, -2).StringFixed(2)))
	}
	b.WriteString(tlv("58", countryBR))
	b.WriteString(tlv("59", truncate(orDefault(c.MerchantName, "CHECKOUT"), maxNameLen)))
	b.WriteString(tlv("60", truncate(orDefault(c.MerchantCity, "SAO PAULO"), maxCityLen)))
	b.WriteString(tlv("62", tlv("05", truncate(alnum(orDefault(c.TxID, "***")), maxTxIDLen))))
	b.WriteString(crcTagLength)

	payload := b.String()
	return payload + fmt.Sprintf("%04X", CRC16(payload)), nil
}

// ValidCRC reports whether the trailing CRC field matches the payload.
func ValidCRC(code string) bool {
	if len(code) < len(crcTagLength)+4 {
		return false
	}
	body, sum := code[:len(code)-4], code[len(code)-4:]
	if !strings.HasSuffix(body, crcTagLength) {
		return false
	}
	return strings.EqualFold(sum, fmt.Sprintf("%04X", CRC16(body)))
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF).
func CRC16(data string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(data); i++ {
		crc ^= uint16(data[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

// alnum keeps the characters a txid may carry.
func alnum(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '*':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "***"
	}
	return b.String()
}
