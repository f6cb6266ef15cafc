// Package telemetry groups Gantry's observability packages. The metrics
// subpackage provides the Prometheus collector and exposition handler.
package telemetry
