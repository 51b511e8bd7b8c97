package tracker

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ftracker/internal/domain"
	"ftracker/internal/message"
	"ftracker/internal/observability"
)

// Policy decides what happens after a package fails.
type Policy int

const (
	// FailFast aborts the run on the first failing package.
	FailFast Policy = iota
	// ContinueOnError skips failing packages and reports them at the end.
	ContinueOnError
)

// String returns the policy name used in logs.
func (p Policy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case ContinueOnError:
		return "continue-on-error"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Report summarises a run.
type Report struct {
	RunID     string
	Processed int
	Failed    int
}

// Service runs packages through the reader and formatter.
type Service struct {
	reader  domain.TrainingReader
	logger  zerolog.Logger
	metrics *observability.Metrics
	policy  Policy
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the diagnostics logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithMetrics records every workout and failure on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithPolicy sets the failure policy.
func WithPolicy(p Policy) Option {
	return func(s *Service) { s.policy = p }
}

// New returns a tracker reading packages with r.
func New(r domain.TrainingReader, opts ...Option) *Service {
	s := &Service{reader: r, logger: zerolog.Nop(), policy: FailFast}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Summarize reads one package and returns its summary.
func (s *Service) Summarize(p domain.Package) (domain.Summary, error) {
	t, err := s.reader.Read(p.Code, p.Values)
	if err != nil {
		return domain.Summary{}, err
	}
	return t.Info()
}

// Process reads one package and returns its report line.
func (s *Service) Process(p domain.Package) (string, error) {
	summary, err := s.Summarize(p)
	if err != nil {
		return "", err
	}
	return message.Format(summary), nil
}

// Run processes packages in order and writes one line per workout to w.
func (s *Service) Run(w io.Writer, packages []domain.Package) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	log := s.logger.With().Str("run_id", report.RunID).Logger()
	log.Debug().Int("packages", len(packages)).Stringer("policy", s.policy).Msg("run started")

	var errs []error
	for i, p := range packages {
		summary, err := s.Summarize(p)
		if err != nil {
			err = fmt.Errorf("package %d (%s): %w", i, p.Code, err)
			report.Failed++
			if s.metrics != nil {
				s.metrics.RecordFailure(p.Code, err)
			}
			if s.policy == FailFast {
				log.Error().Err(err).Int("index", i).Msg("aborting run")
				return report, err
			}
			log.Warn().Err(err).Int("index", i).Msg("skipping package")
			errs = append(errs, err)
			continue
		}

		if _, err := fmt.Fprintln(w, message.Format(summary)); err != nil {
			return report, fmt.Errorf("write summary %d: %w", i, err)
		}
		report.Processed++
		if s.metrics != nil {
			s.metrics.RecordWorkout(summary)
		}
		log.Debug().
			Int("index", i).
			Str("kind", summary.Kind).
			Float64("calories", summary.Calories).
			Msg("workout summarised")
	}

	log.Info().Int("processed", report.Processed).Int("failed", report.Failed).Msg("run finished")
	return report, errors.Join(errs...)
}
