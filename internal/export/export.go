// Package export produces point-in-time snapshots of the profile and career entries
// and delivers them to a file, a writer or an S3 bucket.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/career-journal/internal/logging"
	"github.com/jonathan/career-journal/internal/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Format selects the encoding of an export
type Format string

// Supported formats
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// DefaultPrefix starts every export file name
const DefaultPrefix = "journalize"

// exportDateLayout is an ISO-8601 UTC timestamp with milliseconds
const exportDateLayout = "2006-01-02T15:04:05.000Z07:00"

// ParseFormat maps a format name to a Format; an empty name means json
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Snapshot builds an export document from copies of profile and entries, stamped with now
func Snapshot(profile types.ProfileData, entries []types.CareerEntry, now time.Time) types.ExportDocument {
	return types.ExportDocument{
		Profile:       profile,
		CareerEntries: types.CloneEntries(entries),
		ExportDate:    now.UTC().Format(exportDateLayout),
	}
}

// Encode serializes doc. JSON is indented by two spaces and keeps &, < and > literal.
func Encode(doc types.ExportDocument, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal export: %w", err)
		}
		return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to marshal export: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to marshal export: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// FileName returns "<prefix>-career-data-YYYY-MM-DD.<format>" using the UTC date of now
func FileName(prefix string, now time.Time, format Format) string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return fmt.Sprintf("%s-career-data-%s.%s", prefix, now.UTC().Format(types.DateLayout), format)
}

// Source is the read side of the record store
type Source interface {
	Profile() types.ProfileData
	Entries() []types.CareerEntry
}

// Result describes a delivered export
type Result struct {
	Name     string
	Location string
	Size     int
	Document types.ExportDocument
}

// Exporter snapshots a Source and hands the encoded bytes to a Sink
type Exporter struct {
	sink   Sink
	format Format
	prefix string
	now    func() time.Time
	logger *zap.Logger
}

// Option configures an Exporter
type Option func(*Exporter)

// WithFormat sets the encoding
func WithFormat(f Format) Option {
	return func(e *Exporter) { e.format = f }
}

// WithPrefix sets the file name prefix
func WithPrefix(prefix string) Option {
	return func(e *Exporter) { e.prefix = prefix }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) { e.now = now }
}

// NewExporter creates an exporter writing JSON to sink
func NewExporter(sink Sink, logger *zap.Logger, opts ...Option) *Exporter {
	e := &Exporter{
		sink:   sink,
		format: FormatJSON,
		prefix: DefaultPrefix,
		now:    time.Now,
		logger: logging.OrNop(logger),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export snapshots src and delivers it. src is only read.
func (e *Exporter) Export(ctx context.Context, src Source) (Result, error) {
	now := e.now()
	doc := Snapshot(src.Profile(), src.Entries(), now)

	data, err := Encode(doc, e.format)
	if err != nil {
		return Result{}, err
	}

	name := FileName(e.prefix, now, e.format)
	location, err := e.sink.Write(ctx, name, data)
	if err != nil {
		return Result{}, &SinkError{Name: name, Cause: err}
	}

	e.logger.Info("Exported career data",
		zap.String("location", location),
		zap.Int("entries", len(doc.CareerEntries)),
		zap.Int("bytes", len(data)))

	return Result{Name: name, Location: location, Size: len(data), Document: doc}, nil
}
