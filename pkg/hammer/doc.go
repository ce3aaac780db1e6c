// Package hammer drives load against a k-NN search cluster.
//
// A Driver maps one Invocation (a case name and its positional arguments)
// to a fixed sequence of REST calls on an Engine:
//
//	ingest, add_data     <index> <field> <dimension> <doc_count>
//	add_train_data       <index> <field> <dimension> <doc_count>
//	train                <training_index> <training_field> <dimension> <model_id> [description]
//	create_model_index   <index> <field> <dimension> <doc_count> <model_id>
//	search               <index> <field> <dimension> <k> <size> <num_queries>
//	stats, nodes, indices
//	get_model, delete_model <model_id>
//
// The model cases require Capabilities.ModelFeatures.
//
// Ingest generates random vectors with ids "0".."N-1" and sends them in
// batches of Config.BulkSize. Full batches are flushed immediately and the
// last partial batch only when it holds documents, so N documents cost
// ceil(N/BulkSize) bulk requests followed by one refresh.
//
// Basic Usage:
//
//	driver, err := hammer.NewDriver(hammer.DefaultConfig(), client, log, os.Stdout)
//	if err != nil {
//		return err
//	}
//	err = driver.Run(ctx, hammer.Invocation{
//		Case: hammer.CaseIngest,
//		Args: []string{"target_index", "target_field", "128", "10000"},
//	})
//
// Errors:
//
// Argument problems wrap ErrUsage, unknown cases ErrUnknownCase and gated
// cases ErrModelFeaturesDisabled. Engine errors are wrapped and returned
// unchanged otherwise; the first failure aborts the case.
package hammer
