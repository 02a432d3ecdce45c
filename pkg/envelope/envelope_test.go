package envelope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/voltmarket/pkg/envelope"
)

func TestUnwrap(t *testing.T) {
	t.Parallel()

	items := []any{
		map[string]any{"id": "b1"},
		map[string]any{"id": "b2"},
	}

	tests := []struct {
		name      string
		response  any
		wantItems []any
		wantErr   string
		wantHas   bool
		wantShape envelope.Shape
	}{
		{
			name:      "nil response",
			response:  nil,
			wantItems: []any{},
			wantErr:   "no response",
			wantHas:   true,
			wantShape: envelope.ShapeNil,
		},
		{
			name: "explicit failure keeps result and message",
			response: map[string]any{
				"isSuccess":    false,
				"result":       items,
				"errorMessage": "token expired",
			},
			wantItems: items,
			wantErr:   "token expired",
			wantHas:   true,
			wantShape: envelope.ShapeFailure,
		},
		{
			name: "explicit failure without message or result",
			response: map[string]any{
				"isSuccess":    false,
				"errorMessage": nil,
			},
			wantItems: []any{},
			wantErr:   "request failed",
			wantHas:   true,
			wantShape: envelope.ShapeFailure,
		},
		{
			name: "success with result array",
			response: map[string]any{
				"isSuccess": true,
				"result":    items,
			},
			wantItems: items,
			wantShape: envelope.ShapeSuccessResult,
		},
		{
			name:      "result array without isSuccess",
			response:  map[string]any{"result": items},
			wantItems: items,
			wantShape: envelope.ShapeResult,
		},
		{
			name: "success with non-array result falls through to data",
			response: map[string]any{
				"isSuccess": true,
				"result":    map[string]any{"id": "x"},
				"data":      items,
			},
			wantItems: items,
			wantShape: envelope.ShapeData,
		},
		{
			name: "nested data result",
			response: map[string]any{
				"data": map[string]any{"result": items},
			},
			wantItems: items,
			wantShape: envelope.ShapeDataResult,
		},
		{
			name:      "data array",
			response:  map[string]any{"data": items},
			wantItems: items,
			wantShape: envelope.ShapeData,
		},
		{
			name:      "bare array",
			response:  items,
			wantItems: items,
			wantShape: envelope.ShapeArray,
		},
		{
			name:      "unknown object with errorMessage",
			response:  map[string]any{"errorMessage": "boom", "message": "ignored"},
			wantItems: []any{},
			wantErr:   "boom",
			wantHas:   true,
			wantShape: envelope.ShapeUnknown,
		},
		{
			name:      "unknown object with message",
			response:  map[string]any{"message": "not found"},
			wantItems: []any{},
			wantErr:   "not found",
			wantHas:   true,
			wantShape: envelope.ShapeUnknown,
		},
		{
			name:      "empty object",
			response:  map[string]any{},
			wantItems: []any{},
			wantShape: envelope.ShapeUnknown,
		},
		{
			name:      "string response",
			response:  "<html>gateway timeout</html>",
			wantItems: []any{},
			wantShape: envelope.ShapeUnknown,
		},
		{
			name:      "number response",
			response:  42.0,
			wantItems: []any{},
			wantShape: envelope.ShapeUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got envelope.Result
			require.NotPanics(t, func() { got = envelope.Unwrap(tt.response) })

			assert.Equal(t, tt.wantItems, got.Items)
			assert.NotNil(t, got.Items)
			assert.Equal(t, tt.wantErr, got.Err)
			assert.Equal(t, tt.wantHas, got.HasErr)
			assert.Equal(t, tt.wantShape, got.Shape)
		})
	}
}

func TestUnwrapJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantHas   bool
		wantShape envelope.Shape
	}{
		{name: "empty body", body: "", wantHas: true, wantShape: envelope.ShapeNil},
		{name: "json null", body: "null", wantHas: true, wantShape: envelope.ShapeNil},
		{name: "invalid json", body: "{not json", wantHas: true, wantShape: envelope.ShapeUnknown},
		{
			name:      "success envelope",
			body:      `{"statusCode":200,"isSuccess":true,"errorMessage":null,"result":[{"id":1},{"id":2}]}`,
			wantLen:   2,
			wantShape: envelope.ShapeSuccessResult,
		},
		{name: "bare array", body: `[{"id":1}]`, wantLen: 1, wantShape: envelope.ShapeArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := envelope.UnwrapJSON([]byte(tt.body))
			assert.Len(t, got.Items, tt.wantLen)
			assert.Equal(t, tt.wantHas, got.HasErr)
			assert.Equal(t, tt.wantShape, got.Shape)
		})
	}
}

func TestResult_Records(t *testing.T) {
	t.Parallel()

	res := envelope.Unwrap([]any{
		map[string]any{"id": "a"},
		"stray string",
		nil,
		map[string]any{"id": "b"},
	})

	recs := res.Records()
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0]["id"])
	assert.Equal(t, "b", recs[1]["id"])
}

func TestUnwrapRecord(t *testing.T) {
	t.Parallel()

	rec := map[string]any{"id": "v1", "brand": "Kia"}

	tests := []struct {
		name     string
		response any
		wantRec  map[string]any
		wantErr  string
	}{
		{name: "nil", response: nil, wantErr: "no response"},
		{name: "array", response: []any{rec}, wantErr: "unexpected response shape"},
		{
			name:     "failure",
			response: map[string]any{"isSuccess": false, "errorMessage": "missing"},
			wantErr:  "missing",
		},
		{
			name:     "result object",
			response: map[string]any{"isSuccess": true, "result": rec},
			wantRec:  rec,
		},
		{
			name:     "data result object",
			response: map[string]any{"data": map[string]any{"result": rec}},
			wantRec:  rec,
		},
		{name: "data object", response: map[string]any{"data": rec}, wantRec: rec},
		{name: "bare object", response: rec, wantRec: rec},
		{
			name:     "success with null result",
			response: map[string]any{"isSuccess": true, "result": nil},
			wantErr:  "no record",
		},
		{
			name:     "success without result",
			response: map[string]any{"isSuccess": true},
			wantErr:  "no record",
		},
		{
			name:     "result array",
			response: map[string]any{"result": []any{rec}},
			wantErr:  "no record",
		},
		{
			name:     "data with null result",
			response: map[string]any{"data": map[string]any{"result": nil}},
			wantErr:  "no record",
		},
		{name: "null data", response: map[string]any{"data": nil}, wantErr: "no record"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := envelope.UnwrapRecord(tt.response)
			if tt.wantErr != "" {
				assert.True(t, got.HasErr)
				assert.Equal(t, tt.wantErr, got.Err)
				assert.Nil(t, got.Record)
				return
			}
			assert.False(t, got.HasErr)
			assert.Equal(t, tt.wantRec, got.Record)
		})
	}
}

func TestFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response any
		wantMsg  string
		wantFail bool
	}{
		{name: "nil", response: nil},
		{name: "success", response: map[string]any{"isSuccess": true}},
		{name: "no flag", response: map[string]any{"message": "created"}},
		{
			name:     "failure with message",
			response: map[string]any{"isSuccess": false, "errorMessage": "duplicate listing"},
			wantMsg:  "duplicate listing",
			wantFail: true,
		},
		{
			name:     "failure without message",
			response: map[string]any{"isSuccess": false},
			wantMsg:  "request failed",
			wantFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg, failed := envelope.Failure(tt.response)
			assert.Equal(t, tt.wantFail, failed)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "data_result", envelope.ShapeDataResult.String())
	assert.Equal(t, "invalid", envelope.Shape(0).String())
}
