// Package pixcode locates the Pix BR Code inside the gateway's loosely shaped
// pix object and builds static BR Codes for the mock gateway.
package pixcode

import "strings"

// BRCodePrefix opens every dynamic Pix BR Code (payload format 01 followed by
// merchant account tag 26).
const BRCodePrefix = "00020126"

const minCodeLength = 50

// QRCodeKeys are probed in order before any heuristic runs.
var QRCodeKeys = []string{
	"qrCode", "qr_code", "brCode", "br_code", "QRCode", "QR_CODE", "qrcode", "BRCode",
}

// CopyAndPasteKeys are probed in order for the copy-and-paste form.
var CopyAndPasteKeys = []string{
	"copyAndPaste", "copy_and_paste", "copiaECola", "copia_e_cola", "copiaecola", "copyPaste",
}

// Result is the extracted pair plus the name of the strategy that found the QR value.
type Result struct {
	QRCode       string
	CopyAndPaste string
	Strategy     string
}

type strategy struct {
	name string
	find func(Object) (string, bool)
}

var strategies = []strategy{
	{name: "known_key", find: byKnownKeys(QRCodeKeys)},
	{name: "brcode_prefix", find: byPrefix(BRCodePrefix)},
	{name: "min_length", find: byMinLength(minCodeLength)},
}

// Extract runs the strategies in order and returns the first match. The copy
// value falls back to the QR value. ok is false when no strategy matched.
func Extract(obj Object) (Result, bool) {
	for _, s := range strategies {
		qr, found := s.find(obj)
		if !found {
			continue
		}
		copyValue, ok := byKnownKeys(CopyAndPasteKeys)(obj)
		if !ok {
			copyValue = qr
		}
		return Result{QRCode: qr, CopyAndPaste: copyValue, Strategy: s.name}, true
	}
	return Result{}, false
}

func byKnownKeys(keys []string) func(Object) (string, bool) {
	return func(obj Object) (string, bool) {
		for _, k := range keys {
			if f, ok := obj.Get(k); ok {
				if s, ok := f.String(); ok {
					return s, true
				}
			}
		}
		return "", false
	}
}

func byPrefix(prefix string) func(Object) (string, bool) {
	return func(obj Object) (string, bool) {
		for _, f := range obj.Fields {
			if s, ok := f.String(); ok && strings.HasPrefix(s, prefix) {
				return s, true
			}
		}
		return "", false
	}
}

func byMinLength(n int) func(Object) (string, bool) {
	return func(obj Object) (string, bool) {
		for _, f := range obj.Fields {
			if s, ok := f.String(); ok && len(s) > n {
				return s, true
			}
		}
		return "", false
	}
}
