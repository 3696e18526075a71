package gpg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
)

// testKey generates a signing entity and writes its armored public key to dir
func testKey(t *testing.T, dir, name string) (*openpgp.Entity, string) {
	t.Helper()

	entity, err := openpgp.NewEntity(name, "test", name+"@example.com", nil)
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatalf("Failed to create armor encoder: %v", err)
	}
	if err := entity.Serialize(w); err != nil {
		t.Fatalf("Failed to serialize key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close armor encoder: %v", err)
	}

	keyPath := filepath.Join(dir, name+".asc")
	if err := os.WriteFile(keyPath, buf.Bytes(), 0600); err != nil {
		t.Fatalf("Failed to write key: %v", err)
	}
	return entity, keyPath
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestVerifier_VerifySignatureFromFile_Armored(t *testing.T) {
	dir := t.TempDir()
	signer, keyPath := testKey(t, dir, "release")

	binary := filepath.Join(dir, "cx")
	content := []byte("#!/bin/sh\necho cx\n")
	writeFile(t, binary, content)

	var sig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sig, signer, bytes.NewReader(content), nil); err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	sigPath := filepath.Join(dir, "cx.asc")
	writeFile(t, sigPath, sig.Bytes())

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}
	if v.GetKeyringSize() != 1 {
		t.Errorf("GetKeyringSize() = %d, want 1", v.GetKeyringSize())
	}
	if err := v.VerifySignatureFromFile(binary, sigPath); err != nil {
		t.Errorf("VerifySignatureFromFile() error = %v", err)
	}

	// Tampered content must fail
	writeFile(t, binary, []byte("#!/bin/sh\necho evil\n"))
	if err := v.VerifySignatureFromFile(binary, sigPath); err == nil {
		t.Error("VerifySignatureFromFile() should fail for modified file")
	}
}

func TestVerifier_VerifySignatureFromFile_Binary(t *testing.T) {
	dir := t.TempDir()
	signer, keyPath := testKey(t, dir, "release")

	binary := filepath.Join(dir, "cx")
	content := []byte("binary payload")
	writeFile(t, binary, content)

	var sig bytes.Buffer
	if err := openpgp.DetachSign(&sig, signer, bytes.NewReader(content), nil); err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	sigPath := filepath.Join(dir, "cx.sig")
	writeFile(t, sigPath, sig.Bytes())

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}
	if err := v.VerifySignatureFromFile(binary, sigPath); err != nil {
		t.Errorf("VerifySignatureFromFile() error = %v", err)
	}
}

func TestVerifier_VerifySignatureFromFile_WrongKey(t *testing.T) {
	dir := t.TempDir()
	signer, _ := testKey(t, dir, "attacker")
	_, trustedKey := testKey(t, dir, "release")

	binary := filepath.Join(dir, "cx")
	content := []byte("payload")
	writeFile(t, binary, content)

	var sig bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&sig, signer, bytes.NewReader(content), nil); err != nil {
		t.Fatalf("Failed to sign: %v", err)
	}
	sigPath := filepath.Join(dir, "cx.asc")
	writeFile(t, sigPath, sig.Bytes())

	v := NewVerifier()
	if err := v.ImportKeyFromFile(trustedKey); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}
	err := v.VerifySignatureFromFile(binary, sigPath)
	if err == nil || !strings.Contains(err.Error(), "signature verification failed") {
		t.Errorf("VerifySignatureFromFile() error = %v, want verification failure", err)
	}
}

func TestVerifier_ImportKeyFromFile_Errors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.asc")
	writeFile(t, garbage, []byte("-----BEGIN PGP PUBLIC KEY BLOCK-----\n\nnot a key\n-----END PGP PUBLIC KEY BLOCK-----\n"))
	empty := filepath.Join(dir, "empty.asc")
	writeFile(t, empty, nil)

	for _, path := range []string{filepath.Join(dir, "missing.asc"), garbage, empty} {
		v := NewVerifier()
		if err := v.ImportKeyFromFile(path); err == nil {
			t.Errorf("ImportKeyFromFile(%s) should fail", filepath.Base(path))
		}
		if v.GetKeyringSize() != 0 {
			t.Errorf("keyring size = %d after failed import", v.GetKeyringSize())
		}
	}
}

func TestVerifier_VerifySignatureFromFile_Preconditions(t *testing.T) {
	dir := t.TempDir()
	_, keyPath := testKey(t, dir, "release")
	binary := filepath.Join(dir, "cx")
	writeFile(t, binary, []byte("payload"))
	tiny := filepath.Join(dir, "tiny.sig")
	writeFile(t, tiny, []byte("abc"))

	if err := NewVerifier().VerifySignatureFromFile(binary, tiny); err == nil ||
		!strings.Contains(err.Error(), "no GPG keys imported") {
		t.Errorf("empty keyring error = %v", err)
	}

	v := NewVerifier()
	if err := v.ImportKeyFromFile(keyPath); err != nil {
		t.Fatalf("ImportKeyFromFile() error = %v", err)
	}
	if err := v.VerifySignatureFromFile(binary, filepath.Join(dir, "missing.sig")); err == nil {
		t.Error("missing signature should fail")
	}
	if err := v.VerifySignatureFromFile(binary, tiny); err == nil || !strings.Contains(err.Error(), "too small") {
		t.Errorf("tiny signature error = %v", err)
	}

	v.ClearKeyring()
	if v.GetKeyringSize() != 0 {
		t.Errorf("GetKeyringSize() after clear = %d, want 0", v.GetKeyringSize())
	}
}
