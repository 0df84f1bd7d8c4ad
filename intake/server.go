package intake

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/gomtb/validator/engine"
	"github.com/gomtb/validator/mtb"
)

// Server exposes the intake API over HTTP.
type Server struct {
	checker   *engine.Checker
	store     *Store
	forwarder Forwarder
	log       zerolog.Logger
	echo      *echo.Echo
}

// NewServer wires the intake routes over the given collaborators.
func NewServer(checker *engine.Checker, store *Store, forwarder Forwarder, log zerolog.Logger) *Server {
	s := &Server{
		checker:   checker,
		store:     store,
		forwarder: forwarder,
		log:       log,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())

	e.GET("/healthz", s.handleHealth)
	e.POST("/mtbfile", s.handleUpload)
	e.GET("/mtbfile/:patient/report", s.handleGetReport)
	e.DELETE("/mtbfile/:patient", s.handleDelete)

	s.echo = e
	return s
}

// Start runs the server until Shutdown is called.
func (s *Server) Start(addr string) error {
	err := s.echo.Start(addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Handler exposes the route tree, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpload checks a submitted case file and applies the severity
// contract: fatal issues reject the upload, informational-only outcomes
// accept it silently, anything else is accepted with the report stored
// alongside. Files without errors are forwarded downstream.
func (s *Server) handleUpload(c echo.Context) error {
	file := &mtb.File{}
	if err := c.Bind(file); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid MTB file payload"})
	}

	ctx := c.Request().Context()
	_, report := s.checker.Check(file)

	if report != nil && report.HasFatal() {
		s.log.Warn().
			Str("patient", report.PatientID).
			Int("issues", len(report.Issues)).
			Msg("rejected MTB file upload")
		return c.JSON(http.StatusUnprocessableEntity, report)
	}

	if err := s.store.SaveFile(ctx, file); err != nil {
		s.log.Error().Err(err).Msg("storing MTB file failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage failure"})
	}

	if report == nil || report.HasOnlyInfos() {
		if err := s.forwarder.Forward(ctx, file); err != nil {
			s.log.Error().Err(err).Str("patient", file.Patient.ID).Msg("forwarding MTB file failed")
		}
		// An accepted resubmission supersedes any earlier report.
		if err := s.store.DeleteReport(ctx, file.Patient.ID); err != nil {
			s.log.Error().Err(err).Msg("clearing stale report failed")
		}
		s.log.Info().Str("patient", file.Patient.ID).Msg("accepted MTB file")
		if report != nil {
			return c.JSON(http.StatusOK, report)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "accepted"})
	}

	if err := s.store.SaveReport(ctx, report); err != nil {
		s.log.Error().Err(err).Msg("storing report failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage failure"})
	}

	if !report.HasErrors() {
		if err := s.forwarder.Forward(ctx, file); err != nil {
			s.log.Error().Err(err).Str("patient", file.Patient.ID).Msg("forwarding MTB file failed")
		}
	}

	s.log.Info().
		Str("patient", report.PatientID).
		Int("issues", len(report.Issues)).
		Str("maxSeverity", string(report.MaxSeverity())).
		Msg("accepted MTB file with data-quality report")
	return c.JSON(http.StatusCreated, report)
}

func (s *Server) handleGetReport(c echo.Context) error {
	report, err := s.store.Report(c.Request().Context(), c.Param("patient"))
	if errors.Is(err, ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no report for patient"})
	}
	if err != nil {
		s.log.Error().Err(err).Msg("loading report failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage failure"})
	}
	return c.JSON(http.StatusOK, report)
}

func (s *Server) handleDelete(c echo.Context) error {
	patientID := c.Param("patient")
	ctx := c.Request().Context()

	if err := s.store.Delete(ctx, patientID); err != nil {
		s.log.Error().Err(err).Msg("deleting patient data failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "storage failure"})
	}
	if err := s.forwarder.Delete(ctx, patientID); err != nil {
		s.log.Error().Err(err).Str("patient", patientID).Msg("downstream delete failed")
	}

	s.log.Info().Str("patient", patientID).Msg("deleted patient data")
	return c.NoContent(http.StatusNoContent)
}
