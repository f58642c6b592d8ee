package exporters

import (
	"github.com/prometheus/otlptranslator"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricSdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// Prometheus builds the meter every Manager instrument hangs off. Metric
// names pass through untranslated so the dashboards see exactly the names
// registered in the dependency container. Returns nil when the exporter
// cannot be constructed; the caller treats that as a startup failure.
func Prometheus(appName, appVersion string) metric.Meter {
	exporter, err := prometheus.New(
		prometheus.WithoutTargetInfo(),
		prometheus.WithTranslationStrategy(otlptranslator.NoTranslation))
	if err != nil {
		return nil
	}

	provider := metricSdk.NewMeterProvider(
		metricSdk.WithReader(exporter),
		metricSdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(appName),
			semconv.ServiceVersionKey.String(appVersion),
		)))

	return provider.Meter(appName, metric.WithInstrumentationVersion(appVersion))
}
