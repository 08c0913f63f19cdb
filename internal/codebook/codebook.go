package codebook

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"enigma/internal/domain"
)

var (
	// ErrSettingNotFound is returned when the codebook has no entry for a date.
	ErrSettingNotFound = errors.New("no codebook setting for date")

	// ErrDuplicateSetting is returned when a codebook carries more than one
	// entry for the same date; the day key would be ambiguous.
	ErrDuplicateSetting = errors.New("multiple codebook settings for date")
)

// SealedExtension marks passphrase-protected codebook files.
const SealedExtension = ".enc"

// File reads daily settings from a YAML codebook, sealed or plain. The file
// is re-read on every lookup so a replaced codebook takes effect immediately.
type File struct {
	path       string
	passphrase string
}

var _ domain.CodebookStore = (*File)(nil)

// NewFile returns a store over path. The passphrase is only used when the
// file is sealed.
func NewFile(path, passphrase string) *File {
	return &File{path: path, passphrase: passphrase}
}

// Setting returns the entry for date.
func (f *File) Setting(date time.Time) (domain.DaySetting, error) {
	entries, err := f.load()
	if err != nil {
		return domain.DaySetting{}, err
	}

	day := date.Format(domain.DateLayout)
	var found []domain.DaySetting
	for _, e := range entries {
		if e.Date == day {
			found = append(found, e)
		}
	}
	switch len(found) {
	case 0:
		return domain.DaySetting{}, fmt.Errorf("%s: %w", day, ErrSettingNotFound)
	case 1:
		return found[0], nil
	default:
		return domain.DaySetting{}, fmt.Errorf("%s: %w", day, ErrDuplicateSetting)
	}
}

func (f *File) load() ([]domain.DaySetting, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read codebook %s: %w", f.path, err)
	}
	if strings.HasSuffix(f.path, SealedExtension) {
		raw, err = Open(f.passphrase, raw)
		if err != nil {
			return nil, fmt.Errorf("unseal codebook %s: %w", f.path, err)
		}
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("parse codebook %s: %w", f.path, err)
	}
	var entries []domain.DaySetting
	if err := v.UnmarshalKey("settings", &entries); err != nil {
		return nil, fmt.Errorf("parse codebook %s: %w", f.path, err)
	}
	return entries, nil
}
