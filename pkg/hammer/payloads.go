package hammer

// KNNQuery is the body of a k-NN search:
//
//	{"size":N,"query":{"knn":{<field>:{"vector":[...],"k":K}}}}
type KNNQuery struct {
	Size  int         `json:"size"`
	Query KNNQueryDSL `json:"query"`
}

// KNNQueryDSL wraps the per-field knn clause.
type KNNQueryDSL struct {
	KNN map[string]KNNClause `json:"knn"`
}

// KNNClause is the query vector and neighbor count for one field.
type KNNClause struct {
	Vector []float32 `json:"vector"`
	K      int       `json:"k"`
}

// NewKNNQuery builds the query for field.
func NewKNNQuery(field string, vector []float32, k, size int) KNNQuery {
	return KNNQuery{
		Size: size,
		Query: KNNQueryDSL{
			KNN: map[string]KNNClause{
				field: {Vector: vector, K: k},
			},
		},
	}
}

// TrainRequest is the body of POST /_plugins/_knn/models/{id}/_train.
type TrainRequest struct {
	TrainingIndex          string     `json:"training_index"`
	TrainingField          string     `json:"training_field"`
	Dimension              int        `json:"dimension"`
	Description            string     `json:"description"`
	MaxTrainingVectorCount int        `json:"max_training_vector_count,omitempty"`
	SearchSize             int        `json:"search_size,omitempty"`
	Method                 MethodSpec `json:"method"`
}

// MethodSpec describes the ANN method to train.
type MethodSpec struct {
	Name       string           `json:"name"`
	Engine     string           `json:"engine"`
	SpaceType  string           `json:"space_type"`
	Parameters MethodParameters `json:"parameters"`
}

// MethodParameters holds the IVF parameters.
type MethodParameters struct {
	NList   int         `json:"nlist"`
	Encoder EncoderSpec `json:"encoder"`
}

// EncoderSpec holds the PQ encoder.
type EncoderSpec struct {
	Name       string            `json:"name"`
	Parameters EncoderParameters `json:"parameters"`
}

// EncoderParameters holds the PQ parameters.
type EncoderParameters struct {
	CodeSize int `json:"code_size"`
	M        int `json:"m"`
}

// NewTrainRequest builds the fixed-shape training body. Only the arguments
// vary between invocations; everything else comes from params.
func NewTrainRequest(params TrainingParams, trainingIndex, trainingField string, dimension int, description string) TrainRequest {
	return TrainRequest{
		TrainingIndex:          trainingIndex,
		TrainingField:          trainingField,
		Dimension:              dimension,
		Description:            description,
		MaxTrainingVectorCount: params.MaxTrainingVectorCount,
		SearchSize:             params.SearchSize,
		Method: MethodSpec{
			Name:      params.Method,
			Engine:    params.Engine,
			SpaceType: params.SpaceType,
			Parameters: MethodParameters{
				NList: params.NList,
				Encoder: EncoderSpec{
					Name: params.Encoder,
					Parameters: EncoderParameters{
						CodeSize: params.CodeSize,
						M:        params.M,
					},
				},
			},
		},
	}
}

// indexSettingsBody renders the "settings" section shared by every index the
// driver creates.
func indexSettingsBody(s IndexSettings) map[string]interface{} {
	return map[string]interface{}{
		"index": map[string]interface{}{
			"knn":                s.KNN,
			"number_of_shards":   s.Shards,
			"number_of_replicas": s.Replicas,
		},
	}
}

// NewVectorIndexBody builds an index whose field is a plain vector field of
// the given dimension. It backs add_train_data.
func NewVectorIndexBody(s IndexSettings, field string, dimension int) map[string]interface{} {
	return map[string]interface{}{
		"settings": indexSettingsBody(s),
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				field: map[string]interface{}{
					"type":      s.VectorType,
					"dimension": dimension,
				},
			},
		},
	}
}

// NewModelIndexBody builds an index whose field references a trained model.
func NewModelIndexBody(s IndexSettings, field, modelID string) map[string]interface{} {
	return map[string]interface{}{
		"settings": indexSettingsBody(s),
		"mappings": map[string]interface{}{
			"properties": map[string]interface{}{
				field: map[string]interface{}{
					"type":     s.VectorType,
					"model_id": modelID,
				},
			},
		},
	}
}
