package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"enigma/internal/catalog"
	"enigma/internal/codebook"
	"enigma/internal/domain"
)

// Client talks to a remote Server. It satisfies the catalog and codebook
// interfaces so the rest of the stack cannot tell remote from local.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a Client rooted at base, e.g. "http://localhost:8080".
func NewClient(base string) *Client {
	return &Client{Base: base, HTTP: http.DefaultClient}
}

// Rotor fetches one rotor definition by name.
func (c *Client) Rotor(name string) (domain.RotorInfo, error) {
	var out domain.RotorInfo
	if err := c.getJSON("/api/v1/rotors/"+url.PathEscape(name), &out); err != nil {
		if isNotFound(err) {
			return domain.RotorInfo{}, fmt.Errorf("%q: %w", name, catalog.ErrRotorNotFound)
		}
		return domain.RotorInfo{}, err
	}
	return out, nil
}

// List fetches every rotor definition the server knows.
func (c *Client) List() ([]domain.RotorInfo, error) {
	var out []domain.RotorInfo
	if err := c.getJSON("/api/v1/rotors", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Setting fetches the codebook entry for the given day.
func (c *Client) Setting(date time.Time) (domain.DaySetting, error) {
	var out domain.DaySetting
	path := "/api/v1/codes/" + date.Format(domain.DateLayout)
	if err := c.getJSON(path, &out); err != nil {
		if isNotFound(err) {
			return domain.DaySetting{}, fmt.Errorf("%s: %w", date.Format(domain.DateLayout), codebook.ErrSettingNotFound)
		}
		return domain.DaySetting{}, err
	}
	return out, nil
}

type statusError struct {
	code   int
	status string
	path   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("api get %s: %s", e.path, e.status)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

func (c *Client) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return &statusError{code: resp.StatusCode, status: resp.Status, path: path}
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var (
	_ domain.RotorCatalog  = (*Client)(nil)
	_ domain.CodebookStore = (*Client)(nil)
)
