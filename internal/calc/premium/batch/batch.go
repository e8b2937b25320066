// Package batch runs many beam or column designs in one request.
package batch

import (
	"fmt"

	"Nirman/internal/calc/beam"
	"Nirman/internal/calc/column"
	"Nirman/internal/calc/is456"
)

// MaxItems bounds a single batch.
const MaxItems = 200

type BeamBatchInput struct {
	Items []beam.Input `json:"items"`
}

type BeamBatchResult struct {
	Results []beam.Result `json:"results"`
	Failed  []int         `json:"failed"`
	Status  is456.Status  `json:"status"`
}

type ColumnBatchInput struct {
	Items []column.Input `json:"items"`
}

type ColumnBatchResult struct {
	Results []column.Result `json:"results"`
	Failed  []int           `json:"failed"`
	Status  is456.Status    `json:"status"`
}

func checkSize(n int) error {
	if n == 0 {
		return is456.Invalid("no items")
	}
	if n > MaxItems {
		return is456.Invalid("%d items exceeds the batch limit of %d", n, MaxItems)
	}
	return nil
}

// CalculateBeam designs every item. The first invalid item aborts the batch
// with its index; FAIL designs are listed in Failed.
func CalculateBeam(in BeamBatchInput) (BeamBatchResult, error) {
	if err := checkSize(len(in.Items)); err != nil {
		return BeamBatchResult{}, err
	}
	out := BeamBatchResult{
		Results: make([]beam.Result, 0, len(in.Items)),
		Failed:  []int{},
		Status:  is456.StatusOK,
	}
	for i, item := range in.Items {
		res, err := beam.Calculate(item)
		if err != nil {
			return BeamBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		if res.Summary.Status == is456.StatusFail {
			out.Failed = append(out.Failed, i)
		}
		out.Status = is456.Worst(out.Status, res.Summary.Status)
		out.Results = append(out.Results, res)
	}
	return out, nil
}

// CalculateColumn is CalculateBeam for columns.
func CalculateColumn(in ColumnBatchInput) (ColumnBatchResult, error) {
	if err := checkSize(len(in.Items)); err != nil {
		return ColumnBatchResult{}, err
	}
	out := ColumnBatchResult{
		Results: make([]column.Result, 0, len(in.Items)),
		Failed:  []int{},
		Status:  is456.StatusOK,
	}
	for i, item := range in.Items {
		res, err := column.Calculate(item)
		if err != nil {
			return ColumnBatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		if res.Summary.Status == is456.StatusFail {
			out.Failed = append(out.Failed, i)
		}
		out.Status = is456.Worst(out.Status, res.Summary.Status)
		out.Results = append(out.Results, res)
	}
	return out, nil
}
