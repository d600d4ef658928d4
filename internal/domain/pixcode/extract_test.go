package pixcode

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

const sampleCode = "00020126580014br.gov.bcb.pix0136123e4567-e12b-12d1-a456-4266554400005204000053039865802BR5913Fulano de Tal6008BRASILIA62070503***63041D3D"

func mustParse(t *testing.T, raw string) Object {
	t.Helper()
	obj, err := ParseObject(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return obj
}

func TestExtract(t *testing.T) {
	long := strings.Repeat("x", 51)

	t.Run("known qr key without copy key", func(t *testing.T) {
		res, ok := Extract(mustParse(t, `{"qrCode":"ABC"}`))
		if !ok {
			t.Fatalf("expected match")
		}
		if res.QRCode != "ABC" || res.CopyAndPaste != "ABC" {
			t.Fatalf("expected ABC/ABC, got %+v", res)
		}
		if res.Strategy != "known_key" {
			t.Fatalf("expected known_key, got %s", res.Strategy)
		}
	})

	t.Run("known keys follow table order", func(t *testing.T) {
		res, ok := Extract(mustParse(t, `{"qrcode":"LOW","br_code":"BR","copiaECola":"COPY"}`))
		if !ok {
			t.Fatalf("expected match")
		}
		if res.QRCode != "BR" {
			t.Fatalf("expected br_code to win over qrcode, got %s", res.QRCode)
		}
		if res.CopyAndPaste != "COPY" {
			t.Fatalf("expected COPY, got %s", res.CopyAndPaste)
		}
	})

	t.Run("prefix heuristic", func(t *testing.T) {
		res, ok := Extract(mustParse(t, `{"foo":"bar","payload":"`+sampleCode+`"}`))
		if !ok {
			t.Fatalf("expected match")
		}
		if res.QRCode != sampleCode || res.CopyAndPaste != sampleCode {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.Strategy != "brcode_prefix" {
			t.Fatalf("expected brcode_prefix, got %s", res.Strategy)
		}
	})

	t.Run("prefix beats earlier long string", func(t *testing.T) {
		res, ok := Extract(mustParse(t, `{"a":"`+long+`","b":"00020126xyz"}`))
		if !ok || res.QRCode != "00020126xyz" {
			t.Fatalf("expected prefix value, got %+v ok=%v", res, ok)
		}
	})

	t.Run("length heuristic uses document order", func(t *testing.T) {
		second := strings.Repeat("y", 60)
		res, ok := Extract(mustParse(t, `{"short":"abc","first":"`+long+`","second":"`+second+`"}`))
		if !ok || res.QRCode != long {
			t.Fatalf("expected first long string, got %+v ok=%v", res, ok)
		}
		if res.Strategy != "min_length" {
			t.Fatalf("expected min_length, got %s", res.Strategy)
		}
	})

	t.Run("exactly fifty chars does not qualify", func(t *testing.T) {
		if _, ok := Extract(mustParse(t, `{"a":"`+strings.Repeat("z", 50)+`"}`)); ok {
			t.Fatalf("expected no match")
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		if _, ok := Extract(mustParse(t, `{"foo":"bar"}`)); ok {
			t.Fatalf("expected no match")
		}
	})

	t.Run("non string values are skipped", func(t *testing.T) {
		if _, ok := Extract(mustParse(t, `{"qrCode":123,"nested":{"qrCode":"X"},"list":["`+long+`"]}`)); ok {
			t.Fatalf("expected no match")
		}
	})

	t.Run("empty known key falls through", func(t *testing.T) {
		res, ok := Extract(mustParse(t, `{"qrCode":"","brCode":"B"}`))
		if !ok || res.QRCode != "B" {
			t.Fatalf("expected B, got %+v ok=%v", res, ok)
		}
	})

	t.Run("key match is case sensitive", func(t *testing.T) {
		if _, ok := Extract(mustParse(t, `{"QrCode":"X"}`)); ok {
			t.Fatalf("expected no match")
		}
	})
}

func TestParseObject(t *testing.T) {
	t.Run("keeps document order", func(t *testing.T) {
		obj := mustParse(t, `{"z":"1","a":"2","m":"3"}`)
		got := []string{obj.Fields[0].Key, obj.Fields[1].Key, obj.Fields[2].Key}
		if strings.Join(got, ",") != "z,a,m" {
			t.Fatalf("expected z,a,m got %v", got)
		}
	})

	t.Run("duplicate key keeps last value", func(t *testing.T) {
		obj := mustParse(t, `{"qrCode":"A","x":"1","qrCode":"B"}`)
		if len(obj.Fields) != 2 {
			t.Fatalf("expected 2 fields, got %d", len(obj.Fields))
		}
		f, _ := obj.Get("qrCode")
		if s, _ := f.String(); s != "B" {
			t.Fatalf("expected B, got %s", s)
		}
	})

	for _, raw := range []string{``, `null`, `"str"`, `[1,2]`} {
		if _, err := ParseObject(json.RawMessage(raw)); !errors.Is(err, ErrNotObject) {
			t.Fatalf("expected ErrNotObject for %q, got %v", raw, err)
		}
	}

	if _, err := ParseObject(json.RawMessage(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated object")
	}
}

func TestPixObject(t *testing.T) {
	obj, err := PixObject(json.RawMessage(`{"id":"tx1","pix":{"qrcode":"Q"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res, ok := Extract(obj); !ok || res.QRCode != "Q" {
		t.Fatalf("expected Q, got %+v", res)
	}

	if _, err := PixObject(json.RawMessage(`{"id":"tx1"}`)); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject, got %v", err)
	}
	if _, err := PixObject(json.RawMessage(`{"pix":null}`)); !errors.Is(err, ErrNotObject) {
		t.Fatalf("expected ErrNotObject for null pix, got %v", err)
	}
}
