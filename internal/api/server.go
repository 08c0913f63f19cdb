package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"enigma/internal/catalog"
	"enigma/internal/codebook"
	"enigma/internal/domain"
	"enigma/internal/protocol/indicator"
	"enigma/internal/protocol/machine"
)

// Server exposes the rotor catalog, the codebook and the cipher over HTTP.
//
// Routes live under /api/v1. Rotor and codebook lookups answer JSON; encode
// and decode answer plain text so operators can pipe frames around.
type Server struct {
	echo     *echo.Echo
	catalog  domain.RotorCatalog
	codebook domain.CodebookStore
	cipher   domain.CipherService
	log      zerolog.Logger
}

// NewServer wires the handlers onto a fresh echo instance.
func NewServer(cat domain.RotorCatalog, cb domain.CodebookStore, ciph domain.CipherService, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, catalog: cat, codebook: cb, cipher: ciph, log: log}
	e.Use(s.requestLog)

	v1 := e.Group("/api/v1")
	v1.GET("/rotors", s.listRotors)
	v1.GET("/rotors/:name", s.getRotor)
	v1.GET("/codes/:date", s.getCode)
	v1.GET("/decode/:date/:frame", s.decode)
	v1.GET("/encode/:date/:ii/:mi/:message", s.encode)
	return s
}

// Start blocks serving on addr until the listener fails.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("api listening")
	return s.echo.Start(addr)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.echo }

func (s *Server) requestLog(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.log.Info().
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Int("status", c.Response().Status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return nil
	}
}

func (s *Server) listRotors(c echo.Context) error {
	rotors, err := s.catalog.List()
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, rotors)
}

func (s *Server) getRotor(c echo.Context) error {
	info, err := s.catalog.Rotor(c.Param("name"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, info)
}

func (s *Server) getCode(c echo.Context) error {
	date, err := time.Parse(domain.DateLayout, c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad date")
	}
	ds, err := s.codebook.Setting(date)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, ds)
}

func (s *Server) decode(c echo.Context) error {
	date, err := time.Parse(domain.DateLayout, c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad date")
	}
	plaintext, err := s.cipher.DecodeForDate(date, c.Param("frame"))
	if err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, plaintext)
}

func (s *Server) encode(c echo.Context) error {
	date, err := time.Parse(domain.DateLayout, c.Param("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "bad date")
	}
	frame, err := s.cipher.EncodeForDate(date, c.Param("ii"), c.Param("mi"), c.Param("message"))
	if err != nil {
		return httpError(err)
	}
	return c.String(http.StatusOK, frame)
}

// httpError maps domain sentinels onto HTTP status codes. Lookup misses are
// 404, operator input problems are 400, everything else is 500.
func httpError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrRotorNotFound),
		errors.Is(err, codebook.ErrSettingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, machine.ErrUnencodableMessage),
		errors.Is(err, machine.ErrIndicatorLength),
		errors.Is(err, indicator.ErrShortFrame),
		errors.Is(err, codebook.ErrDuplicateSetting):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
