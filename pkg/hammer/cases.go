package hammer

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/trace"
)

// Case names accepted by Run.
const (
	CaseIngest           = "ingest"
	CaseAddData          = "add_data"
	CaseAddTrainData     = "add_train_data"
	CaseTrain            = "train"
	CaseCreateModelIndex = "create_model_index"
	CaseSearch           = "search"
	CaseStats            = "stats"
	CaseNodes            = "nodes"
	CaseIndices          = "indices"
	CaseGetModel         = "get_model"
	CaseDeleteModel      = "delete_model"
)

// Invocation is one parsed command line: a case name and its positional
// arguments.
type Invocation struct {
	Case string
	Args []string
}

type caseDef struct {
	usage   string
	minArgs int
	maxArgs int
	model   bool
	load    bool
	run     func(d *Driver, ctx context.Context, args []string) error
}

var cases = map[string]caseDef{
	CaseIngest: {
		usage: "<index> <field> <dimension> <doc_count>", minArgs: 4, maxArgs: 4, load: true,
		run: runIngest,
	},
	CaseAddData: {
		usage: "<index> <field> <dimension> <doc_count>", minArgs: 4, maxArgs: 4, load: true,
		run: runIngest,
	},
	CaseAddTrainData: {
		usage: "<index> <field> <dimension> <doc_count>", minArgs: 4, maxArgs: 4, model: true, load: true,
		run: runAddTrainData,
	},
	CaseTrain: {
		usage: "<training_index> <training_field> <dimension> <model_id> [description]", minArgs: 4, maxArgs: 5, model: true,
		run: runTrain,
	},
	CaseCreateModelIndex: {
		usage: "<index> <field> <dimension> <doc_count> <model_id>", minArgs: 5, maxArgs: 5, model: true, load: true,
		run: runCreateModelIndex,
	},
	CaseSearch: {
		usage: "<index> <field> <dimension> <k> <size> <num_queries>", minArgs: 6, maxArgs: 6, load: true,
		run: runSearch,
	},
	CaseStats: {
		run: func(d *Driver, ctx context.Context, _ []string) error { return d.Stats(ctx) },
	},
	CaseNodes: {
		run: func(d *Driver, ctx context.Context, _ []string) error { return d.Nodes(ctx) },
	},
	CaseIndices: {
		run: func(d *Driver, ctx context.Context, _ []string) error { return d.Indices(ctx) },
	},
	CaseGetModel: {
		usage: "<model_id>", minArgs: 1, maxArgs: 1, model: true,
		run: func(d *Driver, ctx context.Context, args []string) error { return d.GetModel(ctx, args[0]) },
	},
	CaseDeleteModel: {
		usage: "<model_id>", minArgs: 1, maxArgs: 1, model: true,
		run: func(d *Driver, ctx context.Context, args []string) error { return d.DeleteModel(ctx, args[0]) },
	},
}

// Cases lists the known case names in sorted order.
func Cases() []string {
	names := make([]string, 0, len(cases))
	for name := range cases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Usage returns the argument synopsis of a case.
func Usage(name string) (string, bool) {
	def, ok := cases[name]
	return def.usage, ok
}

// IsLoadCase reports whether a case generates enough traffic to warrant a
// latency summary.
func IsLoadCase(name string) bool {
	return cases[name].load
}

// Run executes one invocation.
func (d *Driver) Run(ctx context.Context, inv Invocation) (err error) {
	def, ok := cases[inv.Case]
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownCase, inv.Case, strings.Join(Cases(), ", "))
	}
	if def.model && !d.cfg.Capabilities.ModelFeatures {
		return fmt.Errorf("%w: %s", ErrModelFeaturesDisabled, inv.Case)
	}
	if len(inv.Args) < def.minArgs || len(inv.Args) > def.maxArgs {
		return fmt.Errorf("%w: %s expects %s, got %d argument(s)", ErrUsage, inv.Case, synopsis(def), len(inv.Args))
	}

	if d.tracer != nil {
		var span trace.Span
		ctx, span = d.tracer.StartSpan(ctx, "hammer."+inv.Case)
		d.tracer.SetAttributes(span, map[string]interface{}{
			"hammer.case":      inv.Case,
			"hammer.args":      strings.Join(inv.Args, " "),
			"hammer.bulk_size": d.cfg.BulkSize,
		})
		defer func() {
			if err != nil {
				d.tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}()
	}

	d.logger.Debug("Running case", nil, map[string]interface{}{
		"case": inv.Case,
		"args": inv.Args,
	})
	return def.run(d, ctx, inv.Args)
}

func synopsis(def caseDef) string {
	if def.usage == "" {
		return "no arguments"
	}
	return def.usage
}

func runIngest(d *Driver, ctx context.Context, args []string) error {
	req, err := parseIngest(args)
	if err != nil {
		return err
	}
	_, err = d.IngestRandomData(ctx, req)
	return err
}

func runAddTrainData(d *Driver, ctx context.Context, args []string) error {
	req, err := parseIngest(args)
	if err != nil {
		return err
	}
	_, err = d.AddTrainData(ctx, req)
	return err
}

func runTrain(d *Driver, ctx context.Context, args []string) error {
	dim, err := positiveInt("dimension", args[2])
	if err != nil {
		return err
	}
	req := TrainRequestArgs{
		TrainingIndex: args[0],
		TrainingField: args[1],
		Dimension:     dim,
		ModelID:       args[3],
	}
	if len(args) > 4 {
		req.Description = args[4]
	}
	return d.Train(ctx, req)
}

func runCreateModelIndex(d *Driver, ctx context.Context, args []string) error {
	req, err := parseIngest(args[:4])
	if err != nil {
		return err
	}
	_, err = d.CreateModelIndex(ctx, ModelIndexRequest{IngestRequest: req, ModelID: args[4]})
	return err
}

func runSearch(d *Driver, ctx context.Context, args []string) error {
	dim, err := positiveInt("dimension", args[2])
	if err != nil {
		return err
	}
	k, err := positiveInt("k", args[3])
	if err != nil {
		return err
	}
	size, err := nonNegativeInt("size", args[4])
	if err != nil {
		return err
	}
	n, err := nonNegativeInt("num_queries", args[5])
	if err != nil {
		return err
	}
	_, err = d.RunQueries(ctx, QueryRequest{
		Index:      args[0],
		Field:      args[1],
		Dimension:  dim,
		K:          k,
		Size:       size,
		NumQueries: n,
	})
	return err
}

func parseIngest(args []string) (IngestRequest, error) {
	dim, err := positiveInt("dimension", args[2])
	if err != nil {
		return IngestRequest{}, err
	}
	count, err := nonNegativeInt("doc_count", args[3])
	if err != nil {
		return IngestRequest{}, err
	}
	return IngestRequest{Index: args[0], Field: args[1], Dimension: dim, DocCount: count}, nil
}

func positiveInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrUsage, name, raw)
	}
	return v, nil
}

func nonNegativeInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer, got %q", ErrUsage, name, raw)
	}
	return v, nil
}
