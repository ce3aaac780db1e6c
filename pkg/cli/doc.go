// Package cli is the command-line surface of knn-hammer.
//
//	knn-hammer <host> [<security_flag>] <case> [<case-args>...] [flags]
//
// It parses the positional arguments, layers flags over the configuration
// loaded by the config package and runs the case inside an fx application
// that wires the logger, metrics, tracer, cluster client, driver and report
// writer together.
package cli
