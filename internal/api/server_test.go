package api_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"enigma/internal/api"
	"enigma/internal/catalog"
	"enigma/internal/codebook"
	"enigma/internal/domain"
	"enigma/internal/services/cipher"
	"enigma/internal/services/setting"
)

type codebookStub map[string]domain.DaySetting

func (c codebookStub) Setting(date time.Time) (domain.DaySetting, error) {
	ds, ok := c[date.Format(domain.DateLayout)]
	if !ok {
		return domain.DaySetting{}, codebook.ErrSettingNotFound
	}
	return ds, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat := catalog.Builtin()
	cb := codebookStub{
		"1942-03-01": {
			Date:      "1942-03-01",
			Rotors:    []string{"I", "II", "III"},
			Indicator: "WXC",
			Plugs:     []string{"AV", "BS"},
			Reflector: "UKW-B",
		},
	}
	ciph := cipher.New(setting.New(cat, cb), zerolog.Nop())
	srv := api.NewServer(cat, cb, ciph, zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestListRotors(t *testing.T) {
	ts := newTestServer(t)
	status, body := get(t, ts.URL+"/api/v1/rotors")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var rotors []domain.RotorInfo
	if err := json.Unmarshal([]byte(body), &rotors); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rotors) != 8 {
		t.Errorf("rotor count = %d, want 8", len(rotors))
	}
}

func TestGetRotor(t *testing.T) {
	ts := newTestServer(t)
	status, body := get(t, ts.URL+"/api/v1/rotors/I")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var info domain.RotorInfo
	if err := json.Unmarshal([]byte(body), &info); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if info.Wiring != "EKMFLGDQVZNTOWYHXUSPAIBRCJ" {
		t.Errorf("wiring = %q", info.Wiring)
	}

	if status, _ := get(t, ts.URL+"/api/v1/rotors/IX"); status != http.StatusNotFound {
		t.Errorf("unknown rotor status = %d, want 404", status)
	}
}

func TestGetCode(t *testing.T) {
	ts := newTestServer(t)
	status, body := get(t, ts.URL+"/api/v1/codes/1942-03-01")
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	var ds domain.DaySetting
	if err := json.Unmarshal([]byte(body), &ds); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ds.Indicator != "WXC" {
		t.Errorf("indicator = %q, want WXC", ds.Indicator)
	}

	if status, _ := get(t, ts.URL+"/api/v1/codes/1942-03-09"); status != http.StatusNotFound {
		t.Errorf("missing day status = %d, want 404", status)
	}
	if status, _ := get(t, ts.URL+"/api/v1/codes/yesterday"); status != http.StatusBadRequest {
		t.Errorf("bad date status = %d, want 400", status)
	}
}

func TestEncodeDecodeOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	status, frame := get(t, ts.URL+"/api/v1/encode/1942-03-01/KCH/BLA/ATTACKATDAWN")
	if status != http.StatusOK {
		t.Fatalf("encode status = %d, body %q", status, frame)
	}
	if len(frame) != 18 {
		t.Fatalf("frame length = %d, want 18", len(frame))
	}

	status, plaintext := get(t, ts.URL+"/api/v1/decode/1942-03-01/"+frame)
	if status != http.StatusOK {
		t.Fatalf("decode status = %d, body %q", status, plaintext)
	}
	if plaintext != "ATTACKATDAWN" {
		t.Errorf("plaintext = %q, want ATTACKATDAWN", plaintext)
	}
}

func TestEncodeErrors(t *testing.T) {
	ts := newTestServer(t)

	if status, _ := get(t, ts.URL+"/api/v1/encode/1942-03-01/KC/BLA/HELLO"); status != http.StatusBadRequest {
		t.Errorf("short indicator status = %d, want 400", status)
	}
	if status, _ := get(t, ts.URL+"/api/v1/encode/1942-03-01/KCH/BLA/HELLO9"); status != http.StatusBadRequest {
		t.Errorf("digit in body status = %d, want 400", status)
	}
	if status, _ := get(t, ts.URL+"/api/v1/decode/1942-03-01/ABCDEF"); status != http.StatusBadRequest {
		t.Errorf("bodyless frame status = %d, want 400", status)
	}
	if status, _ := get(t, ts.URL+"/api/v1/encode/1942-03-09/KCH/BLA/HELLO"); status != http.StatusNotFound {
		t.Errorf("missing day status = %d, want 404", status)
	}
}

func TestClientAgainstServer(t *testing.T) {
	ts := newTestServer(t)
	client := api.NewClient(ts.URL)

	info, err := client.Rotor("II")
	if err != nil {
		t.Fatalf("Rotor: %v", err)
	}
	if info.Wiring != "AJDKSIRUXBLHWTMCQGZNPYFVOE" {
		t.Errorf("wiring = %q", info.Wiring)
	}

	if _, err := client.Rotor("IX"); !errors.Is(err, catalog.ErrRotorNotFound) {
		t.Errorf("unknown rotor err = %v, want ErrRotorNotFound", err)
	}

	rotors, err := client.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rotors) != 8 {
		t.Errorf("rotor count = %d, want 8", len(rotors))
	}

	date, _ := time.Parse(domain.DateLayout, "1942-03-01")
	ds, err := client.Setting(date)
	if err != nil {
		t.Fatalf("Setting: %v", err)
	}
	if ds.Reflector != "UKW-B" {
		t.Errorf("reflector = %q, want UKW-B", ds.Reflector)
	}

	missing, _ := time.Parse(domain.DateLayout, "1942-03-09")
	if _, err := client.Setting(missing); !errors.Is(err, codebook.ErrSettingNotFound) {
		t.Errorf("missing day err = %v, want ErrSettingNotFound", err)
	}
}

func TestClientDrivesCipherStack(t *testing.T) {
	ts := newTestServer(t)
	client := api.NewClient(ts.URL)

	// The remote catalog and codebook slot straight into the local services.
	ciph := cipher.New(setting.New(client, client), zerolog.Nop())
	date, _ := time.Parse(domain.DateLayout, "1942-03-01")

	frame, err := ciph.EncodeForDate(date, "KCH", "BLA", "WEATHERREPORT")
	if err != nil {
		t.Fatalf("EncodeForDate: %v", err)
	}
	got, err := ciph.DecodeForDate(date, frame)
	if err != nil {
		t.Fatalf("DecodeForDate: %v", err)
	}
	if got != "WEATHERREPORT" {
		t.Errorf("decoded = %q, want WEATHERREPORT", got)
	}
}
