package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/voltmarket/pkg/feed"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// CompareHandler builds side-by-side comparison tables.
type CompareHandler struct {
	agg Aggregator
}

// NewCompareHandler creates a new CompareHandler.
func NewCompareHandler(a Aggregator) *CompareHandler {
	return &CompareHandler{agg: a}
}

// CompareInput names the entities to compare.
type CompareInput struct {
	Body struct {
		Kind string   `json:"kind,omitempty" doc:"Entity kind; narrows the lookup to one collection" example:"battery"`
		IDs  []string `json:"ids"            doc:"Entity IDs in column order"`
	}
}

// CompareOutput is the comparison table.
type CompareOutput struct {
	Body feed.Table
}

// Compare looks up the selected entities and returns one row per tracked
// field with a formatted cell per entity.
func (h *CompareHandler) Compare(ctx context.Context, input *CompareInput) (*CompareOutput, error) {
	var items []domain.Entity
	if input.Body.Kind != "" {
		kind, ok := domain.ParseKind(input.Body.Kind)
		if !ok {
			return nil, huma.Error422UnprocessableEntity("unknown kind " + input.Body.Kind)
		}
		var srcErr error
		if items, srcErr = h.available(ctx, kind); srcErr != nil {
			return nil, huma.Error502BadGateway(srcErr.Error())
		}
	} else {
		items = h.agg.Feed(ctx).Items
	}

	selection, err := feed.Select(items, input.Body.IDs)
	if err != nil {
		if errors.Is(err, feed.ErrAmbiguousEntity) {
			return nil, huma.Error422UnprocessableEntity(err.Error() + "; set kind")
		}
		return nil, huma.Error404NotFound(err.Error())
	}

	table, err := feed.Compare(selection)
	if err != nil {
		if errors.Is(err, feed.ErrInsufficientSelection) || errors.Is(err, feed.ErrMixedKinds) {
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("comparing entities: " + err.Error())
	}

	return &CompareOutput{Body: table}, nil
}

func (h *CompareHandler) available(ctx context.Context, kind domain.Kind) ([]domain.Entity, error) {
	items, srcErr := h.agg.Available(ctx, kind)
	if srcErr != nil && len(items) == 0 {
		return nil, srcErr
	}
	return items, nil
}

// RegisterCompareRoutes registers the compare endpoint with the Huma API.
func RegisterCompareRoutes(api huma.API, h *CompareHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "compare-entities",
		Method:      http.MethodPost,
		Path:        "/api/v1/compare",
		Summary:     "Compare entities",
		Description: "Returns a comparison table for two or more entities of the same kind.",
		Tags:        []string{"compare"},
		Errors:      []int{http.StatusNotFound, http.StatusUnprocessableEntity, http.StatusBadGateway},
	}, h.Compare)
}
