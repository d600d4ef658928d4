package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"pix_checkout/internal/domain/pixcode"
)

func TestExtractCmd(t *testing.T) {
	code, err := pixcode.StaticCode{Key: "checkout@pix.example.com", AmountCents: 4367}.Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw, _ := json.Marshal(map[string]any{"id": "tx1", "pix": map[string]any{"qrcode": code}})

	path := filepath.Join(t.TempDir(), "response.json")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd := extractCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("invalid output %q: %v", out.String(), err)
	}
	if got["qrcode"] != code || got["strategy"] != "known_key" || got["validCRC"] != true {
		t.Fatalf("unexpected output %v", got)
	}
}

func TestExtractCmd_NoCode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "response.json")
	_ = os.WriteFile(path, []byte(`{"pix":{"status":"x"}}`), 0o600)

	cmd := extractCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error when no code is present")
	}
}

func TestQRCodeCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qr.png")

	cmd := qrcodeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"00020126test", "-o", path})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil || !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Fatalf("expected png file, err=%v", err)
	}
}
