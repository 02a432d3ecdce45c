package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/voltmarket/internal/marketplace"
	"github.com/donaldgifford/voltmarket/internal/metrics"
	"github.com/donaldgifford/voltmarket/pkg/compose"
	"github.com/donaldgifford/voltmarket/pkg/envelope"
	domain "github.com/donaldgifford/voltmarket/pkg/types"
)

// Listing mutation operations, used as metric labels.
const (
	opCompose = "compose"
	opCreate  = "create"
	opUpdate  = "update"
	opDelete  = "delete"
)

// ListingWriter sends listing mutations to the marketplace backend.
type ListingWriter interface {
	SubmitListing(ctx context.Context, payload any) (any, error)
	UpdateListing(ctx context.Context, id string, payload any) (any, error)
	DeleteListing(ctx context.Context, id string) (any, error)
}

// ComposeHandler validates listing drafts and submits them.
type ComposeHandler struct {
	agg    Aggregator
	writer ListingWriter
	log    *slog.Logger
}

// NewComposeHandler creates a new ComposeHandler.
func NewComposeHandler(a Aggregator, w ListingWriter, log *slog.Logger) *ComposeHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ComposeHandler{agg: a, writer: w, log: log}
}

// --- Input/Output types ---

// ListingForm is a complete listing draft. Each line item carries its
// entity ID under batteryId or vehicleId next to its condition fields.
type ListingForm struct {
	Title            string             `json:"title"                      required:"false" doc:"Listing title"`
	Description      string             `json:"description,omitempty"      doc:"Free-form description"`
	Address          string             `json:"address,omitempty"          doc:"Pickup address"`
	ItemType         string             `json:"itemType,omitempty"         doc:"Battery, Vehicle or FullSet (default Battery)" example:"Battery"`
	ListingBatteries []domain.RawRecord `json:"listingBatteries,omitempty" doc:"Battery line items"`
	ListingVehicles  []domain.RawRecord `json:"listingVehicles,omitempty"  doc:"Vehicle line items"`
}

func (f *ListingForm) form() compose.Form {
	return compose.Form{
		Title:            f.Title,
		Description:      f.Description,
		Address:          f.Address,
		ItemType:         f.ItemType,
		ListingBatteries: f.ListingBatteries,
		ListingVehicles:  f.ListingVehicles,
	}
}

// ComposeInput is a listing draft to validate or submit.
type ComposeInput struct {
	Body ListingForm
}

// UpdateListingInput is a listing draft replacing listing ID.
type UpdateListingInput struct {
	ID   string `path:"id" doc:"Listing ID"`
	Body ListingForm
}

// ComposeOutput is the validated wire payload.
type ComposeOutput struct {
	Body struct {
		Payload []compose.Payload `json:"payload"`
	}
}

// SubmitOutput is the validated payload plus the backend's answer.
type SubmitOutput struct {
	Body struct {
		Payload []compose.Payload `json:"payload"`
		Result  any               `json:"result,omitempty"`
	}
}

// --- Handlers ---

// Compose validates a draft and returns the payload that would be submitted.
func (h *ComposeHandler) Compose(ctx context.Context, input *ComposeInput) (*ComposeOutput, error) {
	payload, err := h.compose(ctx, opCompose, &input.Body)
	if err != nil {
		return nil, err
	}
	metrics.ListingSubmissionsTotal.WithLabelValues(opCompose, "success").Inc()

	resp := &ComposeOutput{}
	resp.Body.Payload = payload
	return resp, nil
}

// Create validates a draft and submits it as a new listing.
func (h *ComposeHandler) Create(ctx context.Context, input *ComposeInput) (*SubmitOutput, error) {
	payload, err := h.compose(ctx, opCreate, &input.Body)
	if err != nil {
		return nil, err
	}

	result, err := h.writer.SubmitListing(ctx, payload)
	if err = h.settle(opCreate, result, err); err != nil {
		return nil, err
	}

	resp := &SubmitOutput{}
	resp.Body.Payload = payload
	resp.Body.Result = result
	return resp, nil
}

// Update validates a draft and replaces listing ID with it.
func (h *ComposeHandler) Update(ctx context.Context, input *UpdateListingInput) (*SubmitOutput, error) {
	payload, err := h.compose(ctx, opUpdate, &input.Body)
	if err != nil {
		return nil, err
	}

	result, err := h.writer.UpdateListing(ctx, input.ID, payload)
	if err = h.settle(opUpdate, result, err); err != nil {
		return nil, err
	}

	resp := &SubmitOutput{}
	resp.Body.Payload = payload
	resp.Body.Result = result
	return resp, nil
}

// Delete removes listing ID.
func (h *ComposeHandler) Delete(ctx context.Context, input *ListingIDInput) (*struct{}, error) {
	result, err := h.writer.DeleteListing(ctx, input.ID)
	if err = h.settle(opDelete, result, err); err != nil {
		return nil, err
	}
	return &struct{}{}, nil
}

// compose replays the form onto a fresh draft whose selectable line items
// are the marketplace's current batteries and vehicles.
func (h *ComposeHandler) compose(ctx context.Context, op string, f *ListingForm) ([]compose.Payload, error) {
	d := compose.NewDraft()

	if len(f.ListingBatteries) > 0 {
		if err := h.seed(ctx, d, domain.KindBattery); err != nil {
			return nil, err
		}
	}
	if len(f.ListingVehicles) > 0 {
		if err := h.seed(ctx, d, domain.KindVehicle); err != nil {
			return nil, err
		}
	}

	if err := d.Apply(f.form()); err != nil {
		return nil, h.rejected(op, err)
	}
	payload, err := d.ToPayload()
	if err != nil {
		return nil, h.rejected(op, err)
	}
	return payload, nil
}

func (h *ComposeHandler) seed(ctx context.Context, d *compose.Draft, kind domain.Kind) error {
	entities, srcErr := h.agg.Available(ctx, kind)
	if srcErr != nil && len(entities) == 0 {
		return huma.Error502BadGateway("loading available " + string(kind) + " entities: " + srcErr.Message)
	}
	d.SetAvailable(kind, entities)
	return nil
}

func (h *ComposeHandler) rejected(op string, err error) error {
	metrics.ListingSubmissionsTotal.WithLabelValues(op, "invalid").Inc()

	var ve *compose.ValidationError
	if errors.As(err, &ve) {
		metrics.ValidationErrorsTotal.WithLabelValues(ve.Field).Inc()
		return huma.Error422UnprocessableEntity(err.Error())
	}
	return huma.Error500InternalServerError("composing listing: " + err.Error())
}

// settle records the outcome of a listing mutation and maps a failed answer
// to an HTTP error.
func (h *ComposeHandler) settle(op string, body any, err error) error {
	msg, herr := mutationError(body, err)
	if herr == nil {
		metrics.ListingSubmissionsTotal.WithLabelValues(op, "success").Inc()
		return nil
	}

	metrics.ListingSubmissionsTotal.WithLabelValues(op, "failure").Inc()
	h.log.Warn("listing mutation failed", "operation", op, "error", msg)
	return herr
}

// mutationError maps a backend mutation answer to an HTTP error, or nil on
// success. A failure envelope wins over the transport error; a 4xx from the
// backend keeps its status.
func mutationError(body any, err error) (string, error) {
	msg, failed := envelope.Failure(body)
	if failed && msg == "" {
		msg = envelope.MsgRequestFailed
	}
	if msg == "" && err != nil {
		msg = err.Error()
	}
	if msg == "" {
		return "", nil
	}

	var apiErr *marketplace.APIError
	if errors.As(err, &apiErr) && apiErr.Status < http.StatusInternalServerError {
		return msg, huma.NewError(apiErr.Status, msg)
	}
	if err == nil {
		return msg, huma.Error422UnprocessableEntity(msg)
	}
	return msg, huma.Error502BadGateway(msg)
}

// RegisterComposeRoutes registers listing mutation endpoints with the Huma API.
func RegisterComposeRoutes(api huma.API, h *ComposeHandler) {
	mutationErrors := []int{http.StatusUnprocessableEntity, http.StatusBadGateway}

	huma.Register(api, huma.Operation{
		OperationID: "compose-listing",
		Method:      http.MethodPost,
		Path:        "/api/v1/listings/compose",
		Summary:     "Validate a listing draft",
		Description: "Validates a listing draft and returns the payload that would be submitted.",
		Tags:        []string{"listings"},
		Errors:      mutationErrors,
	}, h.Compose)

	huma.Register(api, huma.Operation{
		OperationID:   "create-listing",
		Method:        http.MethodPost,
		Path:          "/api/v1/listings",
		Summary:       "Create a listing",
		Description:   "Validates a listing draft and submits it to the marketplace.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusCreated,
		Errors:        mutationErrors,
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "update-listing",
		Method:      http.MethodPut,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Update a listing",
		Description: "Validates a listing draft and replaces the stored listing with it.",
		Tags:        []string{"listings"},
		Errors:      mutationErrors,
	}, h.Update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-listing",
		Method:        http.MethodDelete,
		Path:          "/api/v1/listings/{id}",
		Summary:       "Delete a listing",
		Description:   "Deletes a listing from the marketplace.",
		Tags:          []string{"listings"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.Delete)
}
