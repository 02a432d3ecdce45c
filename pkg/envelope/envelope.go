// Package envelope decodes the marketplace backend's inconsistent response
// wrappers into a single result shape.
//
// The backend answers with a bare array on some endpoints, with
// {isSuccess, result, errorMessage} on others, and with {data} or
// {data: {result}} on the rest. Unwrap applies a closed, ordered rule set so
// every caller resolves a response the same way.
package envelope

import (
	"encoding/json"

	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Shape identifies which rule resolved a response.
type Shape int

// Shapes in rule order. The first matching rule wins.
const (
	ShapeNil Shape = iota + 1
	ShapeFailure
	ShapeSuccessResult
	ShapeResult
	ShapeDataResult
	ShapeData
	ShapeArray
	ShapeUnknown
)

var shapeNames = map[Shape]string{
	ShapeNil:           "nil",
	ShapeFailure:       "failure",
	ShapeSuccessResult: "success_result",
	ShapeResult:        "result",
	ShapeDataResult:    "data_result",
	ShapeData:          "data",
	ShapeArray:         "array",
	ShapeUnknown:       "unknown",
}

// String returns the metric-friendly name of the shape.
func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return "invalid"
}

// Default error messages.
const (
	MsgNoResponse    = "no response"
	MsgRequestFailed = "request failed"
	MsgNoRecord      = "no record"
)

// Result is the outcome of unwrapping a response. Items is never nil.
// HasErr distinguishes "no error" from an error with an empty message.
type Result struct {
	Items  []any
	Err    string
	HasErr bool
	Shape  Shape
}

// Records returns the object items of the result as raw records. Non-object
// items are dropped.
func (r Result) Records() []domain.RawRecord {
	return Records(r.Items)
}

// Unwrap resolves a decoded JSON response. It never panics: unrecognized
// input yields an empty result with an optional error message.
func Unwrap(response any) Result {
	if response == nil {
		return failed(nil, MsgNoResponse, ShapeNil)
	}

	if arr, ok := response.([]any); ok {
		return Result{Items: arr, Shape: ShapeArray}
	}

	obj, ok := response.(map[string]any)
	if !ok {
		return Result{Items: []any{}, Shape: ShapeUnknown}
	}

	if success, present := obj["isSuccess"].(bool); present {
		if !success {
			items, _ := obj["result"].([]any)
			msg := MsgRequestFailed
			if m, ok := obj["errorMessage"].(string); ok {
				msg = m
			}
			return failed(items, msg, ShapeFailure)
		}
		if arr, ok := obj["result"].([]any); ok {
			return Result{Items: arr, Shape: ShapeSuccessResult}
		}
	}

	if arr, ok := obj["result"].([]any); ok {
		return Result{Items: arr, Shape: ShapeResult}
	}

	if data, ok := obj["data"].(map[string]any); ok {
		if arr, ok := data["result"].([]any); ok {
			return Result{Items: arr, Shape: ShapeDataResult}
		}
	}

	if arr, ok := obj["data"].([]any); ok {
		return Result{Items: arr, Shape: ShapeData}
	}

	return unknown(obj)
}

// UnwrapJSON decodes body and unwraps it. Bodies that are not valid JSON
// resolve as ShapeUnknown with a decode message.
func UnwrapJSON(body []byte) Result {
	if len(body) == 0 {
		return failed(nil, MsgNoResponse, ShapeNil)
	}
	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return failed(nil, "decoding response: "+err.Error(), ShapeUnknown)
	}
	return Unwrap(v)
}

// RecordResult is the outcome of unwrapping a single-record response.
type RecordResult struct {
	Record domain.RawRecord
	Err    string
	HasErr bool
}

// UnwrapRecord resolves a response from a by-id endpoint. Resolution order:
// explicit failure, result object, data.result object, data object, the
// response object itself. An envelope (isSuccess, result or data present)
// that holds no record object reports MsgNoRecord instead of being taken as
// the record.
func UnwrapRecord(response any) RecordResult {
	obj, ok := response.(map[string]any)
	if !ok {
		if response == nil {
			return RecordResult{Err: MsgNoResponse, HasErr: true}
		}
		return RecordResult{Err: "unexpected response shape", HasErr: true}
	}

	if msg, failed := Failure(obj); failed {
		return RecordResult{Err: msg, HasErr: true}
	}

	if rec, ok := obj["result"].(map[string]any); ok {
		return RecordResult{Record: rec}
	}

	if data, ok := obj["data"].(map[string]any); ok {
		if rec, ok := data["result"].(map[string]any); ok {
			return RecordResult{Record: rec}
		}
		if _, wrapped := data["result"]; wrapped {
			return RecordResult{Err: MsgNoRecord, HasErr: true}
		}
		return RecordResult{Record: data}
	}

	for _, key := range []string{"isSuccess", "result", "data"} {
		if _, wrapped := obj[key]; wrapped {
			return RecordResult{Err: MsgNoRecord, HasErr: true}
		}
	}

	return RecordResult{Record: obj}
}

// Failure reports whether response is an explicit failure envelope
// (isSuccess false) and returns its message.
func Failure(response any) (string, bool) {
	obj, ok := response.(map[string]any)
	if !ok {
		return "", false
	}
	if success, present := obj["isSuccess"].(bool); !present || success {
		return "", false
	}
	if m, ok := obj["errorMessage"].(string); ok {
		return m, true
	}
	return MsgRequestFailed, true
}

// Records keeps the object items of a collection.
func Records(items []any) []domain.RawRecord {
	out := make([]domain.RawRecord, 0, len(items))
	for _, it := range items {
		if rec, ok := it.(map[string]any); ok {
			out = append(out, rec)
		}
	}
	return out
}

func failed(items []any, msg string, shape Shape) Result {
	if items == nil {
		items = []any{}
	}
	return Result{Items: items, Err: msg, HasErr: true, Shape: shape}
}

func unknown(obj map[string]any) Result {
	res := Result{Items: []any{}, Shape: ShapeUnknown}
	if m, ok := obj["errorMessage"].(string); ok {
		res.Err, res.HasErr = m, true
		return res
	}
	if m, ok := obj["message"].(string); ok {
		res.Err, res.HasErr = m, true
	}
	return res
}
