package hammer

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Stats prints the k-NN plugin statistics.
func (d *Driver) Stats(ctx context.Context) error {
	return d.passThrough("stats", func() ([]byte, error) { return d.engine.KNNStats(ctx) })
}

// Nodes prints the cat nodes table.
func (d *Driver) Nodes(ctx context.Context) error {
	return d.passThrough("nodes", func() ([]byte, error) { return d.engine.CatNodes(ctx) })
}

// Indices prints the cat indices table.
func (d *Driver) Indices(ctx context.Context) error {
	return d.passThrough("indices", func() ([]byte, error) { return d.engine.CatIndices(ctx) })
}

// GetModel prints the model document.
func (d *Driver) GetModel(ctx context.Context, modelID string) error {
	return d.passThrough("get model "+modelID, func() ([]byte, error) { return d.engine.GetModel(ctx, modelID) })
}

// DeleteModel deletes the model and prints the response.
func (d *Driver) DeleteModel(ctx context.Context, modelID string) error {
	return d.passThrough("delete model "+modelID, func() ([]byte, error) { return d.engine.DeleteModel(ctx, modelID) })
}

func (d *Driver) passThrough(what string, fn func() ([]byte, error)) error {
	resp, err := fn()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	return d.print(resp)
}

// print writes a response body to the driver output. JSON is
// pretty-printed, anything else (cat tables) is written as returned.
func (d *Driver) print(body []byte) error {
	if d.out == nil {
		return nil
	}
	out := body
	if gjson.ValidBytes(body) && len(bytes.TrimSpace(body)) > 0 {
		out = pretty.Pretty(body)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	_, err := d.out.Write(out)
	return err
}
