// Package metrics records every REST call a run performs.
//
// *Metrics implements observability.Observer. Each observed operation is
// counted in <namespace>_requests_total{operation,status}, timed in
// <namespace>_request_duration_seconds{operation}, and kept in a
// LatencyRecorder that backs the summary table printed at the end of a run.
//
// When Config.Address is set, FXModule serves the isolated registry at
// /metrics for the lifetime of the run, which lets a Prometheus instance
// scrape long ingest or query phases:
//
//	app := fx.New(
//		metrics.FXModule,
//		fx.Supply(metrics.Config{Address: ":9090", Namespace: "hammer"}),
//	)
package metrics
