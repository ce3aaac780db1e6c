package hammer

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/Aleph-Alpha/knn-hammer/pkg/opensearch"
)

// Model states reported by GET /_plugins/_knn/models/{id}.
const (
	ModelStateTraining = "training"
	ModelStateCreated  = "created"
	ModelStateFailed   = "failed"
)

// TrainRequestArgs are the variable parts of a training request.
type TrainRequestArgs struct {
	TrainingIndex string
	TrainingField string
	Dimension     int
	ModelID       string
	Description   string
}

// ModelIndexRequest describes a create_model_index run.
type ModelIndexRequest struct {
	IngestRequest
	ModelID string
}

// AddTrainData creates a plain vector index and fills it with random
// training vectors.
func (d *Driver) AddTrainData(ctx context.Context, req IngestRequest) (IngestResult, error) {
	body := NewVectorIndexBody(d.cfg.Index, req.Field, req.Dimension)
	if _, err := d.engine.CreateIndex(ctx, req.Index, body); err != nil {
		return IngestResult{}, fmt.Errorf("create training index %s: %w", req.Index, err)
	}
	d.logger.Info("Created training index", nil, map[string]interface{}{
		"index":     req.Index,
		"dimension": req.Dimension,
	})
	return d.IngestRandomData(ctx, req)
}

// Train submits a training request and prints the response. With
// WaitForModel set it then polls the model until training finishes.
func (d *Driver) Train(ctx context.Context, args TrainRequestArgs) error {
	if args.Description == "" {
		args.Description = d.cfg.Training.Description
	}
	body := NewTrainRequest(d.cfg.Training, args.TrainingIndex, args.TrainingField, args.Dimension, args.Description)

	resp, err := d.engine.TrainModel(ctx, args.ModelID, body)
	if err != nil {
		return fmt.Errorf("train model %s: %w", args.ModelID, err)
	}
	if err := d.print(resp); err != nil {
		return err
	}

	if !d.cfg.WaitForModel {
		return nil
	}
	return d.WaitForModel(ctx, args.ModelID)
}

// WaitForModel polls the model until its state leaves "training". It returns
// ErrModelTrainingFailed for the failed state and a timeout error once
// WaitTimeout elapses.
func (d *Driver) WaitForModel(ctx context.Context, modelID string) error {
	if d.cfg.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.WaitTimeout)
		defer cancel()
	}

	ticker := time.NewTicker(d.cfg.WaitInterval)
	defer ticker.Stop()

	for {
		resp, err := d.engine.GetModel(ctx, modelID)
		if err != nil {
			return fmt.Errorf("poll model %s: %w", modelID, err)
		}

		state := gjson.GetBytes(resp, "state").String()
		switch state {
		case ModelStateCreated:
			d.logger.Info("Model is ready", nil, map[string]interface{}{"model_id": modelID})
			return nil
		case ModelStateFailed:
			reason := gjson.GetBytes(resp, "error").String()
			return fmt.Errorf("%w: model %s: %s", ErrModelTrainingFailed, modelID, reason)
		}

		d.logger.Debug("Waiting for model", nil, map[string]interface{}{
			"model_id": modelID,
			"state":    state,
		})

		select {
		case <-ctx.Done():
			return fmt.Errorf("wait for model %s: %w", modelID, ctx.Err())
		case <-ticker.C:
		}
	}
}

// CreateModelIndex recreates req.Index with its vector field bound to
// req.ModelID and ingests random data into it. A missing index is not an
// error during the delete step.
func (d *Driver) CreateModelIndex(ctx context.Context, req ModelIndexRequest) (IngestResult, error) {
	if _, err := d.engine.DeleteIndex(ctx, req.Index); err != nil {
		if !opensearch.IsNotFound(err) {
			return IngestResult{}, fmt.Errorf("delete index %s: %w", req.Index, err)
		}
		d.logger.Debug("Index did not exist", nil, map[string]interface{}{"index": req.Index})
	}

	body := NewModelIndexBody(d.cfg.Index, req.Field, req.ModelID)
	if _, err := d.engine.CreateIndex(ctx, req.Index, body); err != nil {
		return IngestResult{}, fmt.Errorf("create model index %s: %w", req.Index, err)
	}
	d.logger.Info("Created model index", nil, map[string]interface{}{
		"index":    req.Index,
		"model_id": req.ModelID,
	})
	return d.IngestRandomData(ctx, req.IngestRequest)
}
