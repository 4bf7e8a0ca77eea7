package metrics

import (
	"context"
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export in Prometheus format
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	registry      *prom.Registry
	collector     Collector

	meter        metric.Meter
	booksGauge   metric.Int64ObservableGauge
	readGauge    metric.Int64ObservableGauge
	percentGauge metric.Float64ObservableGauge
	genresGauge  metric.Int64ObservableGauge
	registration metric.Registration
}

// NewOTelExporter creates an exporter with its own Prometheus registry
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	registry := prom.NewRegistry()

	exporter, err := prometheus.New(prometheus.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	meter := meterProvider.Meter(
		"bookshelf",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		registry:      registry,
		collector:     collector,
		meter:         meter,
	}

	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates the gauges and one callback that observes them all,
// so a scrape loads the library once
func (oe *OTelExporter) registerInstruments() error {
	var err error

	oe.booksGauge, err = oe.meter.Int64ObservableGauge(
		"library.books",
		metric.WithDescription("Number of books in the library"),
		metric.WithUnit("{books}"),
	)
	if err != nil {
		return fmt.Errorf("creating books gauge: %w", err)
	}

	oe.readGauge, err = oe.meter.Int64ObservableGauge(
		"library.books.read",
		metric.WithDescription("Number of books marked as read"),
		metric.WithUnit("{books}"),
	)
	if err != nil {
		return fmt.Errorf("creating read gauge: %w", err)
	}

	oe.percentGauge, err = oe.meter.Float64ObservableGauge(
		"library.read.percentage",
		metric.WithDescription("Share of books marked as read"),
		metric.WithUnit("%"),
	)
	if err != nil {
		return fmt.Errorf("creating percentage gauge: %w", err)
	}

	oe.genresGauge, err = oe.meter.Int64ObservableGauge(
		"library.genre.books",
		metric.WithDescription("Number of books per genre"),
		metric.WithUnit("{books}"),
	)
	if err != nil {
		return fmt.Errorf("creating genre gauge: %w", err)
	}

	oe.registration, err = oe.meter.RegisterCallback(oe.observe,
		oe.booksGauge, oe.readGauge, oe.percentGauge, oe.genresGauge)
	if err != nil {
		return fmt.Errorf("registering callback: %w", err)
	}

	return nil
}

// observe is the callback that reports every library gauge
func (oe *OTelExporter) observe(ctx context.Context, observer metric.Observer) error {
	m, err := oe.collector.Collect(ctx)
	if err != nil {
		return err
	}

	observer.ObserveInt64(oe.booksGauge, m.Total)
	observer.ObserveInt64(oe.readGauge, m.Read)
	observer.ObserveFloat64(oe.percentGauge, m.PercentRead)
	for genre, count := range m.Genres {
		observer.ObserveInt64(oe.genresGauge, count, metric.WithAttributes(
			attribute.String("book.genre", genre),
		))
	}

	return nil
}

// ServeHTTP returns the handler serving Prometheus-formatted metrics
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.HandlerFor(oe.registry, promhttp.HandlerOpts{})
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.registration != nil {
		if err := oe.registration.Unregister(); err != nil {
			return fmt.Errorf("unregistering callback: %w", err)
		}
	}
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
