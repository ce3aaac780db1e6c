package cli

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/Aleph-Alpha/knn-hammer/pkg/config"
)

// flagValues holds the command-line overrides. Only flags the user actually
// set are applied, so profile and environment values survive otherwise.
type flagValues struct {
	profile string

	port               int
	secure             bool
	username           string
	password           string
	insecureSkipVerify bool
	requestTimeout     time.Duration
	retries            int

	modelFeatures bool
	bulkSize      int
	searchTimeout string
	rate          float64
	seed          int64
	wait          bool
	waitTimeout   time.Duration

	logLevel       string
	logEncoding    string
	metricsAddress string
	traceExport    string

	reportFile   string
	reportBucket string
}

func (f *flagValues) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.profile, "profile", "", "YAML profile with index settings, training parameters and defaults")

	fs.IntVar(&f.port, "port", 0, "cluster port (default 80, or 443 when secure)")
	fs.BoolVar(&f.secure, "secure", false, "use https with basic auth")
	fs.StringVar(&f.username, "username", "", "basic auth user (default admin when secure)")
	fs.StringVar(&f.password, "password", "", "basic auth password (default admin when secure)")
	fs.BoolVar(&f.insecureSkipVerify, "insecure-skip-verify", true, "skip TLS certificate verification")
	fs.DurationVar(&f.requestTimeout, "request-timeout", 30*time.Second, "timeout of a single REST call")
	fs.IntVar(&f.retries, "retries", 0, "extra attempts for failed REST calls")

	fs.BoolVar(&f.modelFeatures, "model-features", true, "enable the model training and management cases")
	fs.IntVar(&f.bulkSize, "bulk-size", 300, "documents per bulk request")
	fs.StringVar(&f.searchTimeout, "search-timeout", "90s", "server-side timeout sent with every query")
	fs.Float64Var(&f.rate, "rate", 0, "max REST calls per second in the ingest and query loops (0 is unlimited)")
	fs.Int64Var(&f.seed, "seed", 0, "vector generator seed (0 seeds from the clock)")
	fs.BoolVar(&f.wait, "wait", false, "after train, poll the model until training finishes")
	fs.DurationVar(&f.waitTimeout, "wait-timeout", 10*time.Minute, "upper bound for --wait")

	fs.StringVar(&f.logLevel, "log-level", "info", "debug, info, warning or error")
	fs.StringVar(&f.logEncoding, "log-encoding", "console", "console or json")
	fs.StringVar(&f.metricsAddress, "metrics-address", "", "serve Prometheus metrics on this address, e.g. :9090")
	fs.StringVar(&f.traceExport, "trace-export", "", "export spans to this OTLP/HTTP endpoint, e.g. http://localhost:4318")

	fs.StringVar(&f.reportFile, "report-file", "", "write a JSON run report to this file")
	fs.StringVar(&f.reportBucket, "report-bucket", "", "upload the JSON run report to this bucket")
}

// apply copies every changed flag onto cfg.
func (f *flagValues) apply(fs *pflag.FlagSet, cfg *config.Config) {
	conn := &cfg.Opensearch.Connection
	h := &cfg.Hammer

	set := func(name string, fn func()) {
		if fs.Changed(name) {
			fn()
		}
	}

	set("port", func() { conn.Port = f.port })
	set("secure", func() { h.Capabilities.Security = f.secure; conn.UseSSL = f.secure })
	set("username", func() { conn.Username = f.username })
	set("password", func() { conn.Password = f.password })
	set("insecure-skip-verify", func() { conn.InsecureSkipVerify = f.insecureSkipVerify })
	set("request-timeout", func() { conn.RequestTimeout = f.requestTimeout })
	set("retries", func() { conn.Retries = f.retries })

	set("model-features", func() { h.Capabilities.ModelFeatures = f.modelFeatures })
	set("bulk-size", func() { h.BulkSize = f.bulkSize })
	set("search-timeout", func() { h.SearchTimeout = f.searchTimeout })
	set("rate", func() { h.Rate = f.rate })
	set("seed", func() { h.Seed = f.seed })
	set("wait", func() { h.WaitForModel = f.wait })
	set("wait-timeout", func() { h.WaitTimeout = f.waitTimeout })

	set("log-level", func() { cfg.Logger.Level = f.logLevel })
	set("log-encoding", func() { cfg.Logger.Encoding = f.logEncoding })
	set("metrics-address", func() { cfg.Metrics.Address = f.metricsAddress })
	set("trace-export", func() {
		cfg.Tracer.Endpoint = f.traceExport
		cfg.Tracer.EnableExport = f.traceExport != ""
	})

	set("report-file", func() { cfg.Report.File = f.reportFile })
	set("report-bucket", func() { cfg.Report.Bucket.Connection.BucketName = f.reportBucket })
}

// applyTarget puts the positional host, its port and the security literal on
// cfg. The literal wins over --secure; --port wins over a port in the host.
func applyTarget(t Target, fs *pflag.FlagSet, cfg *config.Config) {
	cfg.Opensearch.Connection.Host = t.Host
	if t.Port != 0 && !fs.Changed("port") {
		cfg.Opensearch.Connection.Port = t.Port
	}
	if t.Security != nil {
		cfg.Hammer.Capabilities.Security = *t.Security
		cfg.Opensearch.Connection.UseSSL = *t.Security
	}
}
