package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/voltmarket/internal/marketplace"
	"github.com/donaldgifford/voltmarket/internal/metrics"
	"github.com/donaldgifford/voltmarket/pkg/catalog"
	"github.com/donaldgifford/voltmarket/pkg/compose"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

const opApprove = "approve"

// CatalogWriter sends battery and vehicle catalog edits to the marketplace
// backend.
type CatalogWriter interface {
	CreateEntity(ctx context.Context, kind marketplace.Resource, payload any) (any, error)
	UpdateEntity(ctx context.Context, kind marketplace.Resource, id string, payload any) (any, error)
	DeleteEntity(ctx context.Context, kind marketplace.Resource, id string) (any, error)
	ApproveEntity(ctx context.Context, kind marketplace.Resource, id string) (any, error)
}

// CatalogHandler validates and submits catalog edits.
type CatalogHandler struct {
	agg    Aggregator
	writer CatalogWriter
	log    *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(a Aggregator, w CatalogWriter, log *slog.Logger) *CatalogHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CatalogHandler{agg: a, writer: w, log: log}
}

// --- Input/Output types ---

// CatalogKindInput addresses a catalog collection.
type CatalogKindInput struct {
	Kind string `path:"kind" enum:"battery,vehicle" doc:"Catalog collection"`
}

// CatalogEntityInput addresses a single catalog entity.
type CatalogEntityInput struct {
	Kind string `path:"kind" enum:"battery,vehicle" doc:"Catalog collection"`
	ID   string `path:"id"   doc:"Entity ID"`
}

// CreateCatalogInput is a new battery or vehicle.
type CreateCatalogInput struct {
	Kind string           `path:"kind" enum:"battery,vehicle" doc:"Catalog collection"`
	Body domain.RawRecord `doc:"Battery (brand, model, capacity, voltage, imgs) or vehicle (brand, model, startYear, endYear, compatibleBatteryIds, imgs) form"`
}

// UpdateCatalogInput replaces catalog entity ID.
type UpdateCatalogInput struct {
	Kind string           `path:"kind" enum:"battery,vehicle" doc:"Catalog collection"`
	ID   string           `path:"id"   doc:"Entity ID"`
	Body domain.RawRecord `doc:"Replacement form"`
}

// CatalogOutput is the validated payload plus the backend's answer.
type CatalogOutput struct {
	Body struct {
		Payload any `json:"payload"`
		Result  any `json:"result,omitempty"`
	}
}

// ApproveOutput is the backend's answer to an approval.
type ApproveOutput struct {
	Body struct {
		Result any `json:"result,omitempty"`
	}
}

// --- Handlers ---

// Create validates a form and adds it to the catalog.
func (h *CatalogHandler) Create(ctx context.Context, input *CreateCatalogInput) (*CatalogOutput, error) {
	payload, err := h.validate(ctx, input.Kind, opCreate, input.Body)
	if err != nil {
		return nil, err
	}

	result, err := h.writer.CreateEntity(ctx, marketplace.Resource(input.Kind), payload)
	if err = h.settle(input.Kind, opCreate, result, err); err != nil {
		return nil, err
	}

	resp := &CatalogOutput{}
	resp.Body.Payload = payload
	resp.Body.Result = result
	return resp, nil
}

// Update validates a form and replaces catalog entity ID with it.
func (h *CatalogHandler) Update(ctx context.Context, input *UpdateCatalogInput) (*CatalogOutput, error) {
	payload, err := h.validate(ctx, input.Kind, opUpdate, input.Body)
	if err != nil {
		return nil, err
	}

	result, err := h.writer.UpdateEntity(ctx, marketplace.Resource(input.Kind), input.ID, payload)
	if err = h.settle(input.Kind, opUpdate, result, err); err != nil {
		return nil, err
	}

	resp := &CatalogOutput{}
	resp.Body.Payload = payload
	resp.Body.Result = result
	return resp, nil
}

// Delete removes catalog entity ID.
func (h *CatalogHandler) Delete(ctx context.Context, input *CatalogEntityInput) (*struct{}, error) {
	result, err := h.writer.DeleteEntity(ctx, marketplace.Resource(input.Kind), input.ID)
	if err = h.settle(input.Kind, opDelete, result, err); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

// Approve marks catalog entity ID as approved.
func (h *CatalogHandler) Approve(ctx context.Context, input *CatalogEntityInput) (*ApproveOutput, error) {
	result, err := h.writer.ApproveEntity(ctx, marketplace.Resource(input.Kind), input.ID)
	if err = h.settle(input.Kind, opApprove, result, err); err != nil {
		return nil, err
	}

	resp := &ApproveOutput{}
	resp.Body.Result = result
	return resp, nil
}

// validate checks a form against its kind's rules. Vehicle forms are
// checked against the batteries currently in the catalog.
func (h *CatalogHandler) validate(ctx context.Context, kind, op string, form domain.RawRecord) (any, error) {
	var (
		payload any
		err     error
	)
	switch domain.Kind(kind) {
	case domain.KindBattery:
		payload, err = catalog.Battery(form)
	case domain.KindVehicle:
		batteries, srcErr := h.agg.Available(ctx, domain.KindBattery)
		if srcErr != nil && len(batteries) == 0 {
			return nil, huma.Error502BadGateway("loading available battery entities: " + srcErr.Message)
		}
		ids := make([]string, 0, len(batteries))
		for _, b := range batteries {
			ids = append(ids, b.ID)
		}
		payload, err = catalog.Vehicle(form, ids)
	default:
		return nil, huma.Error422UnprocessableEntity("unknown catalog kind " + kind)
	}
	if err == nil {
		return payload, nil
	}

	metrics.CatalogMutationsTotal.WithLabelValues(kind, op, "invalid").Inc()
	var ve *compose.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationErrorsTotal.WithLabelValues(ve.Field).Inc()
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}
	return nil, huma.Error500InternalServerError("validating " + kind + ": " + err.Error())
}

func (h *CatalogHandler) settle(kind, op string, body any, err error) error {
	msg, herr := mutationError(body, err)
	if herr == nil {
		metrics.CatalogMutationsTotal.WithLabelValues(kind, op, "success").Inc()
		return nil
	}

	metrics.CatalogMutationsTotal.WithLabelValues(kind, op, "failure").Inc()
	h.log.Warn("catalog mutation failed", "kind", kind, "operation", op, "error", msg)
	return herr
}

// RegisterCatalogRoutes registers battery and vehicle catalog endpoints with
// the Huma API.
func RegisterCatalogRoutes(api huma.API, h *CatalogHandler) {
	mutationErrors := []int{http.StatusUnprocessableEntity, http.StatusBadGateway}

	huma.Register(api, huma.Operation{
		OperationID:   "create-catalog-entity",
		Method:        http.MethodPost,
		Path:          "/api/v1/catalog/{kind}",
		Summary:       "Add a battery or vehicle",
		Description:   "Validates a battery or vehicle form and adds it to the marketplace catalog.",
		Tags:          []string{"catalog"},
		DefaultStatus: http.StatusCreated,
		Errors:        mutationErrors,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-catalog-entity",
		Method:      http.MethodPut,
		Path:        "/api/v1/catalog/{kind}/{id}",
		Summary:     "Update a battery or vehicle",
		Description: "Validates a battery or vehicle form and replaces the catalog entry with it.",
		Tags:        []string{"catalog"},
		Errors:      mutationErrors,
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-catalog-entity",
		Method:        http.MethodDelete,
		Path:          "/api/v1/catalog/{kind}/{id}",
		Summary:       "Delete a battery or vehicle",
		Description:   "Removes a battery or vehicle from the marketplace catalog.",
		Tags:          []string{"catalog"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Delete)

	huma.Register(api, huma.Operation{
		OperationID: "approve-catalog-entity",
		Method:      http.MethodPut,
		Path:        "/api/v1/catalog/{kind}/{id}/approve",
		Summary:     "Approve a battery or vehicle",
		Description: "Marks a pending battery or vehicle as approved.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Approve)
}
