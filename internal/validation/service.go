// Package validation wraps the pure nid engine with the observability the
// service needs: spans, metrics, and bounded concurrent batch validation.
// It consumes the engine only through Decode and IsValid.
package validation

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	contracts "nidx/contracts/nid"
	"nidx/internal/platform/metrics"
	"nidx/pkg/nid"
)

const (
	outcomeOK          = "ok"
	outcomeUnsupported = "unsupported"
)

// Service exposes the engine to transport layers.
type Service struct {
	logger       *slog.Logger
	metrics      *metrics.Metrics
	tracer       trace.Tracer
	batchWorkers int
}

// Option configures the Service.
type Option func(*Service)

// WithTracer injects a custom tracer. Useful for testing or when a
// pre-configured tracer provider is available.
func WithTracer(t trace.Tracer) Option {
	return func(s *Service) { s.tracer = t }
}

// WithBatchWorkers bounds how many codes a batch validates concurrently.
func WithBatchWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchWorkers = n
		}
	}
}

func New(logger *slog.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		logger:       logger,
		metrics:      m,
		batchWorkers: 8,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("nidx/validation")
	}
	return s
}

// Decode resolves the country selector and decodes the code into the wire
// DTO. The error is nid.ErrUnknownCountry, nid.ErrDecodeNotSupported, or
// a *nid.Error carrying the validation kind.
func (s *Service) Decode(ctx context.Context, country, code string) (*contracts.DecodeResult, error) {
	_, span := s.tracer.Start(ctx, "nid.decode",
		trace.WithAttributes(attribute.String("nid.country", country)))
	defer span.End()

	mod, ok := nid.Lookup(country)
	if !ok {
		s.logger.WarnContext(ctx, "decode for unknown country", "country", country)
		s.metrics.DecodesTotal.WithLabelValues("unknown", "unknown_country").Inc()
		span.SetStatus(codes.Error, "unknown country")
		return nil, decodeCountryErr(country)
	}

	info, err := mod.Decode(code)
	if err != nil {
		outcome := outcomeUnsupported
		if kind := nid.KindOf(err); kind != "" {
			outcome = string(kind)
		}
		s.metrics.DecodesTotal.WithLabelValues(country, outcome).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	s.metrics.DecodesTotal.WithLabelValues(country, outcomeOK).Inc()
	span.SetAttributes(attribute.Bool("nid.is_national", info.IsNational()))
	return toDecodeResult(info), nil
}

// Validate reports a bare validity verdict with no error detail.
func (s *Service) Validate(ctx context.Context, country, code string) bool {
	_, span := s.tracer.Start(ctx, "nid.validate",
		trace.WithAttributes(attribute.String("nid.country", country)))
	defer span.End()

	mod, ok := nid.Lookup(country)
	valid := ok && mod.IsValid(code)

	verdict := "invalid"
	if valid {
		verdict = "valid"
	}
	s.metrics.ValidationsTotal.WithLabelValues(country, verdict).Inc()
	span.SetAttributes(attribute.Bool("nid.valid", valid))
	return valid
}

// ValidateBatch validates codes concurrently, preserving input order.
// One bad code never fails the batch; the only errors are an unknown
// country selector or context cancellation.
func (s *Service) ValidateBatch(ctx context.Context, country string, codesIn []string) ([]contracts.BatchItem, error) {
	ctx, span := s.tracer.Start(ctx, "nid.validate_batch",
		trace.WithAttributes(
			attribute.String("nid.country", country),
			attribute.Int("nid.batch_size", len(codesIn)),
		))
	defer span.End()

	mod, ok := nid.Lookup(country)
	if !ok {
		span.SetStatus(codes.Error, "unknown country")
		return nil, decodeCountryErr(country)
	}

	s.metrics.BatchSize.Observe(float64(len(codesIn)))

	// Each goroutine writes to its own slot, so assembly after Wait is
	// race-free and order-preserving.
	items := make([]contracts.BatchItem, len(codesIn))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchWorkers)

	for i, code := range codesIn {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = s.validateOne(mod, country, code)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return items, nil
}

// validateOne produces the per-code verdict. Countries with a decodable
// payload also report the error kind; validate-only countries expose just
// the boolean.
func (s *Service) validateOne(mod *nid.Module, country, code string) contracts.BatchItem {
	item := contracts.BatchItem{Code: code}
	if mod.CanDecode() {
		_, err := mod.Decode(code)
		item.Valid = err == nil
		if err != nil {
			item.ErrorKind = string(nid.KindOf(err))
		}
	} else {
		item.Valid = mod.IsValid(code)
	}

	verdict := "invalid"
	if item.Valid {
		verdict = "valid"
	}
	s.metrics.ValidationsTotal.WithLabelValues(country, verdict).Inc()
	return item
}

func toDecodeResult(info nid.Info) *contracts.DecodeResult {
	return &contracts.DecodeResult{
		Country:    string(info.Country()),
		Year:       info.Year(),
		Month:      info.Month(),
		Day:        info.Day(),
		Birthday:   info.Birthday(),
		Sex:        string(info.Sex()),
		IsNational: info.IsNational(),
	}
}

func decodeCountryErr(country string) error {
	return fmt.Errorf("%q: %w", country, nid.ErrUnknownCountry)
}
