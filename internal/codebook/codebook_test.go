package codebook_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"enigma/internal/codebook"
	"enigma/internal/domain"
)

const fixtureYAML = `settings:
  - date: "1942-03-01"
    rotors: [I, II, III]
    indicator: WXC
    plugs: [AE, BQ]
    reflector: UKW-B
  - date: "1942-03-02"
    rotors: [II, IV, V]
    indicator: BLA
    reflector: UKW-C
  - date: "1942-03-03"
    rotors: [I, II, III]
    indicator: AAA
    reflector: UKW-B
  - date: "1942-03-03"
    rotors: [III, II, I]
    indicator: ZZZ
    reflector: UKW-B
`

// writeCodebook drops the fixture YAML into a temp dir and returns its path.
func writeCodebook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codebook.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestSetting(t *testing.T) {
	store := codebook.NewFile(writeCodebook(t), "")

	ds, err := store.Setting(date(t, "1942-03-01"))
	if err != nil {
		t.Fatalf("Setting: %v", err)
	}
	if len(ds.Rotors) != 3 || ds.Rotors[0] != "I" {
		t.Errorf("rotors = %v, want [I II III]", ds.Rotors)
	}
	if ds.Indicator != "WXC" || ds.Reflector != "UKW-B" {
		t.Errorf("indicator/reflector = %q/%q", ds.Indicator, ds.Reflector)
	}
	if len(ds.Plugs) != 2 {
		t.Errorf("plugs = %v, want two pairs", ds.Plugs)
	}
}

func TestSettingWithoutPlugs(t *testing.T) {
	store := codebook.NewFile(writeCodebook(t), "")
	ds, err := store.Setting(date(t, "1942-03-02"))
	if err != nil {
		t.Fatalf("Setting: %v", err)
	}
	if len(ds.Plugs) != 0 {
		t.Errorf("plugs = %v, want none", ds.Plugs)
	}
}

func TestSettingNotFound(t *testing.T) {
	store := codebook.NewFile(writeCodebook(t), "")
	if _, err := store.Setting(date(t, "1999-01-01")); !errors.Is(err, codebook.ErrSettingNotFound) {
		t.Errorf("err = %v, want ErrSettingNotFound", err)
	}
}

func TestSettingDuplicateDate(t *testing.T) {
	store := codebook.NewFile(writeCodebook(t), "")
	if _, err := store.Setting(date(t, "1942-03-03")); !errors.Is(err, codebook.ErrDuplicateSetting) {
		t.Errorf("err = %v, want ErrDuplicateSetting", err)
	}
}

func TestSettingMissingFile(t *testing.T) {
	store := codebook.NewFile(filepath.Join(t.TempDir(), "nope.yaml"), "")
	if _, err := store.Setting(date(t, "1942-03-01")); err == nil {
		t.Error("Setting on a missing file should fail")
	}
}

func TestSealedCodebook(t *testing.T) {
	sealed, err := codebook.Seal("swordfish", []byte(fixtureYAML))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "codebook.yaml"+codebook.SealedExtension)
	if err := os.WriteFile(path, sealed, 0o600); err != nil {
		t.Fatalf("write sealed fixture: %v", err)
	}

	store := codebook.NewFile(path, "swordfish")
	ds, err := store.Setting(date(t, "1942-03-01"))
	if err != nil {
		t.Fatalf("Setting (sealed): %v", err)
	}
	if ds.Indicator != "WXC" {
		t.Errorf("indicator = %q, want WXC", ds.Indicator)
	}
}

func TestSealedCodebookWrongPassphrase(t *testing.T) {
	sealed, err := codebook.Seal("swordfish", []byte(fixtureYAML))
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	path := filepath.Join(t.TempDir(), "codebook.yaml"+codebook.SealedExtension)
	if err := os.WriteFile(path, sealed, 0o600); err != nil {
		t.Fatalf("write sealed fixture: %v", err)
	}

	store := codebook.NewFile(path, "marlin")
	if _, err := store.Setting(date(t, "1942-03-01")); !errors.Is(err, codebook.ErrWrongPassphrase) {
		t.Errorf("err = %v, want ErrWrongPassphrase", err)
	}
}

func TestSealRoundTrip(t *testing.T) {
	raw := []byte("settings: []\n")
	sealed, err := codebook.Seal("pass", raw)
	if err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if bytes.Contains(sealed, []byte("settings")) {
		t.Error("sealed blob leaks plaintext")
	}
	opened, err := codebook.Open("pass", sealed)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if !bytes.Equal(opened, raw) {
		t.Errorf("Open = %q, want %q", opened, raw)
	}
}
