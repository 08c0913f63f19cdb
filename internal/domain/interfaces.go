package domain

import "time"

// RotorCatalog resolves wheel definitions by name.
type RotorCatalog interface {
	// Rotor returns the catalog entry for name, or an error satisfying
	// errors.Is(err, catalog.ErrRotorNotFound) when absent.
	Rotor(name string) (RotorInfo, error)
	List() ([]RotorInfo, error)
}

// CodebookStore resolves the shared daily key for a date.
type CodebookStore interface {
	Setting(date time.Time) (DaySetting, error)
}

// SettingService turns a dated codebook entry into a ready machine setting.
type SettingService interface {
	ForDate(date time.Time) (EnigmaSetting, error)
}

// CipherService runs the indicator protocol under the daily key of a date.
type CipherService interface {
	// EncodeForDate produces the transmitted frame: the encrypted
	// indicator-indicator, the encrypted message indicator, then the body.
	EncodeForDate(date time.Time, indicatorIndicator, messageIndicator, plaintext string) (string, error)
	// DecodeForDate consumes such a frame and returns the plaintext body.
	DecodeForDate(date time.Time, frame string) (string, error)
}
