package hammer

import (
	"fmt"
	"time"
)

const (
	// DefaultBulkSize is the number of documents per bulk request.
	DefaultBulkSize = 300

	// DefaultSearchTimeout is the server-side timeout sent with every query.
	DefaultSearchTimeout = "90s"

	// DefaultQueryProgressEvery controls how often the query loop logs progress.
	DefaultQueryProgressEvery = 100
)

// Capabilities enumerates the optional feature sets of the driver.
type Capabilities struct {
	// Security selects an https connection with basic auth.
	Security bool `yaml:"security" envconfig:"HAMMER_SECURITY"`

	// ModelFeatures enables the model training and management cases
	// (add_train_data, train, create_model_index, get_model, delete_model).
	ModelFeatures bool `yaml:"model_features" envconfig:"HAMMER_MODEL_FEATURES"`
}

// IndexSettings replaces the settings and mappings literals used when the
// driver creates an index.
type IndexSettings struct {
	Shards     int    `yaml:"number_of_shards"`
	Replicas   int    `yaml:"number_of_replicas"`
	KNN        bool   `yaml:"knn"`
	VectorType string `yaml:"vector_type"`
}

// TrainingParams holds the IVF/PQ hyper-parameters of a training request.
type TrainingParams struct {
	Method    string `yaml:"method"`
	Engine    string `yaml:"engine"`
	SpaceType string `yaml:"space_type"`
	NList     int    `yaml:"nlist"`
	Encoder   string `yaml:"encoder"`
	CodeSize  int    `yaml:"code_size"`
	M         int    `yaml:"m"`

	// MaxTrainingVectorCount and SearchSize are omitted when zero.
	MaxTrainingVectorCount int `yaml:"max_training_vector_count"`
	SearchSize             int `yaml:"search_size"`

	// Description is used when the train case gets none on the command line.
	Description string `yaml:"description"`
}

// Config drives every case of a run.
type Config struct {
	Capabilities Capabilities `yaml:"capabilities" ignored:"true"`

	BulkSize           int    `yaml:"bulk_size" envconfig:"HAMMER_BULK_SIZE"`
	SearchTimeout      string `yaml:"search_timeout" envconfig:"HAMMER_SEARCH_TIMEOUT"`
	QueryProgressEvery int    `yaml:"query_progress_every" envconfig:"HAMMER_QUERY_PROGRESS_EVERY"`

	// Rate caps REST calls per second in the ingest and query loops. 0 is unlimited.
	Rate float64 `yaml:"rate" envconfig:"HAMMER_RATE"`

	// Seed for the vector generator; 0 seeds from the clock.
	Seed int64 `yaml:"seed" envconfig:"HAMMER_SEED"`

	// WaitForModel makes the train case poll until training finishes.
	WaitForModel bool          `yaml:"wait_for_model" envconfig:"HAMMER_WAIT"`
	WaitTimeout  time.Duration `yaml:"wait_timeout" envconfig:"HAMMER_WAIT_TIMEOUT"`
	WaitInterval time.Duration `yaml:"wait_interval" envconfig:"HAMMER_WAIT_INTERVAL"`

	Index    IndexSettings  `yaml:"index" ignored:"true"`
	Training TrainingParams `yaml:"training" ignored:"true"`
}

// DefaultConfig returns the values the historical scripts hard-coded.
func DefaultConfig() Config {
	return Config{
		Capabilities: Capabilities{
			ModelFeatures: true,
		},
		BulkSize:           DefaultBulkSize,
		SearchTimeout:      DefaultSearchTimeout,
		QueryProgressEvery: DefaultQueryProgressEvery,
		WaitTimeout:        10 * time.Minute,
		WaitInterval:       2 * time.Second,
		Index: IndexSettings{
			Shards:     1,
			Replicas:   0,
			KNN:        true,
			VectorType: "knn_vector",
		},
		Training: TrainingParams{
			Method:      "ivf",
			Engine:      "faiss",
			SpaceType:   "l2",
			NList:       128,
			Encoder:     "pq",
			CodeSize:    8,
			M:           8,
			Description: "knn-hammer model",
		},
	}
}

// Validate rejects configurations the loops cannot run with.
func (c Config) Validate() error {
	if c.BulkSize <= 0 {
		return fmt.Errorf("hammer: bulk size must be positive, got %d", c.BulkSize)
	}
	if c.Rate < 0 {
		return fmt.Errorf("hammer: rate must not be negative")
	}
	if c.WaitForModel && c.WaitInterval <= 0 {
		return fmt.Errorf("hammer: wait interval must be positive")
	}
	if c.Index.Shards <= 0 {
		return fmt.Errorf("hammer: number_of_shards must be positive")
	}
	if c.Index.Replicas < 0 {
		return fmt.Errorf("hammer: number_of_replicas must not be negative")
	}
	return nil
}
