package cipher

import (
	"time"

	"github.com/rs/zerolog"

	"enigma/internal/domain"
	"enigma/internal/protocol/indicator"
)

// Service runs the indicator protocol under daily keys.
//
// Plaintext, indicators and frames are never logged; only dates, rotor counts
// and message lengths appear in the log stream.
type Service struct {
	settings domain.SettingService
	log      zerolog.Logger
}

// New constructs a Cipher Service. Pass zerolog.Nop() to silence it.
func New(settings domain.SettingService, log zerolog.Logger) *Service {
	return &Service{settings: settings, log: log}
}

// EncodeForDate frames plaintext under the day key of date using the
// operator-chosen indicator pair.
func (s *Service) EncodeForDate(date time.Time, indicatorIndicator, messageIndicator, plaintext string) (string, error) {
	day, err := s.settings.ForDate(date)
	if err != nil {
		return "", err
	}

	frame, err := indicator.EncodeFramed(plaintext, indicatorIndicator, messageIndicator, day)
	if err != nil {
		s.log.Debug().
			Str("date", date.Format(domain.DateLayout)).
			Err(err).
			Msg("encode failed")
		return "", err
	}
	s.log.Info().
		Str("date", date.Format(domain.DateLayout)).
		Int("rotors", len(day.Rotors)).
		Int("frame_len", len(frame)).
		Msg("message framed")
	return frame, nil
}

// DecodeForDate unframes a received message under the day key of date.
func (s *Service) DecodeForDate(date time.Time, frame string) (string, error) {
	day, err := s.settings.ForDate(date)
	if err != nil {
		return "", err
	}

	plaintext, err := indicator.DecodeFramed(frame, day)
	if err != nil {
		s.log.Debug().
			Str("date", date.Format(domain.DateLayout)).
			Err(err).
			Msg("decode failed")
		return "", err
	}
	s.log.Info().
		Str("date", date.Format(domain.DateLayout)).
		Int("rotors", len(day.Rotors)).
		Int("body_len", len(plaintext)).
		Msg("message unframed")
	return plaintext, nil
}

// Compile-time assertion that Service implements domain.CipherService.
var _ domain.CipherService = (*Service)(nil)
