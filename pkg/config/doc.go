// Package config assembles the configuration of a knn-hammer run.
//
// Values are layered: built-in defaults, then an optional YAML profile, then
// HAMMER_* environment variables, then command-line flags (applied by the
// cli package). Index settings and training hyper-parameters are only
// available through the profile:
//
//	opensearch:
//	  connection:
//	    host: search.internal
//	    port: 9200
//	hammer:
//	  bulk_size: 500
//	  index:
//	    number_of_shards: 3
//	    number_of_replicas: 1
//	  training:
//	    nlist: 256
//	    code_size: 8
//	    m: 16
//	report:
//	  file: run.json
package config
