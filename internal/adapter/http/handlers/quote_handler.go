package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	request "freightdesk/internal/adapter/http/dto/request"
	response "freightdesk/internal/adapter/http/dto/response"
	"freightdesk/internal/domain/entities"
	"freightdesk/internal/domain/pricing"
	"freightdesk/internal/infrastructure/catalog"
	"freightdesk/internal/usecase"
	"freightdesk/internal/usecase/interfaces"
	"freightdesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler exposes the quote wizard: session lifecycle, per-step commits,
// pricing preview, draft saves and option comparison.

type QuoteHandler struct {
	store   *usecase.SessionStore
	catalog interfaces.ICatalogGateway
}

func NewQuoteHandler(store *usecase.SessionStore, catalogGw interfaces.ICatalogGateway) *QuoteHandler {
	return &QuoteHandler{store: store, catalog: catalogGw}
}

// OpenSession starts a wizard session: blank, from a source request, or by
// loading a persisted draft.
func (h *QuoteHandler) OpenSession(c *gin.Context) {
	var payload request.OpenSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	sessionID, session, err := h.store.Open(c.Request.Context(), payload.ResolveRequestID(), payload.ResolveDraftID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draft := session.Snapshot()
	c.JSON(http.StatusCreated, response.SessionOpenedResponse{
		SessionID: sessionID,
		DraftID:   draft.ID,
		RequestID: draft.RequestID,
	})
}

// GetSession returns the aggregate with freshly recomputed totals.
func (h *QuoteHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSession(c.Param("session_id"), session.Snapshot(), session.Totals()))
}

func (h *QuoteHandler) UpdateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	h.commitStep(c, &payload, func(d *entities.DraftQuote) {
		d.Customer = entities.Customer{
			ContactID:   payload.ContactID,
			Name:        payload.Name,
			Email:       payload.Email,
			CompanyName: payload.CompanyName,
		}
	})
}

func (h *QuoteHandler) UpdateShipment(c *gin.Context) {
	var payload request.ShipmentRequest
	h.commitStep(c, &payload, func(d *entities.DraftQuote) {
		d.Shipment = entities.Shipment{
			Origin:      payload.Origin,
			Destination: payload.Destination,
			Incoterm:    payload.Incoterm,
			Commodity:   payload.Commodity,
		}
	})
}

// SelectHaulage resolves the chosen offer through the catalog and commits it
// as the single haulage selection.
func (h *QuoteHandler) SelectHaulage(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var payload request.HaulageSelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	offer, err := h.catalog.GetHaulageByID(c.Request.Context(), payload.OfferID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sel := &entities.HaulageSelection{
		OfferID:  offer.ID,
		Tariff:   offer.UnitTariff,
		Quantity: payload.Quantity,
	}
	if payload.WithOvertime {
		sel.OvertimeTariff = offer.OvertimeTariff
	}
	if payload.WithMultiStop {
		sel.MultiStop = offer.MultiStop
	}

	h.commit(c, session, func(d *entities.DraftQuote) {
		d.Selection.Haulage = sel
	})
}

// SelectSeafreights resolves every chosen container offer and commits the
// ocean leg in one step, together with the operator's quantity overrides.
func (h *QuoteHandler) SelectSeafreights(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var payload request.SeafreightListRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	selections := make([]entities.SeafreightSelection, 0, len(payload.Containers))
	containerQty := make(map[string]int)
	surchargeQty := make(map[string]int)
	for _, cr := range payload.Containers {
		offer, err := h.catalog.GetSeafreightByID(c.Request.Context(), cr.OfferID)
		if err != nil {
			appErr := mapQuoteError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		selections = append(selections, entities.SeafreightSelection{
			OfferID:         offer.ID,
			Carrier:         offer.Carrier,
			ContainerType:   offer.ContainerType,
			TEU:             offer.TEU,
			BasePrice:       offer.BasePrice,
			DefaultQuantity: cr.Quantity,
			Surcharges:      offer.Surcharges,
		})
		if cr.Quantity > 0 {
			containerQty[offer.ID] = cr.Quantity
		}
		for name, q := range cr.SurchargeQuantities {
			surchargeQty[entities.SurchargeQuantityKey(offer.ID, name)] = q
		}
	}

	h.commit(c, session, func(d *entities.DraftQuote) {
		d.Selection.Seafreights = selections
		d.Selection.ContainerQuantities = containerQty
		d.Selection.SurchargeQuantities = surchargeQty
	})
}

func (h *QuoteHandler) SelectMiscellaneous(c *gin.Context) {
	var payload request.MiscellaneousRequest
	h.commitStep(c, &payload, func(d *entities.DraftQuote) {
		services := make([]entities.ServiceSelection, 0, len(payload.Services))
		quantities := make(map[string]int)
		for i, svc := range payload.Services {
			sel := entities.ServiceSelection{
				ServiceID:       svc.ServiceID,
				ServiceName:     svc.ServiceName,
				Price:           svc.Price,
				DefaultQuantity: svc.Quantity,
			}
			services = append(services, sel)
			if svc.Quantity > 0 {
				key := svc.ServiceID
				if key == "" {
					key = svc.ServiceName
				}
				if key == "" {
					key = pricing.ServiceFallbackKey(sel, i)
				}
				quantities[key] = svc.Quantity
			}
		}
		d.Selection.Miscellaneous = services
		d.Selection.ServiceQuantities = quantities
	})
}

func (h *QuoteHandler) SetMargin(c *gin.Context) {
	var payload request.MarginRequest
	h.commitStep(c, &payload, func(d *entities.DraftQuote) {
		d.Selection.MarginType = entities.MarginType(payload.MarginType)
		d.Selection.MarginValue = payload.MarginValue
	})
}

// SaveDraft triggers a manual save: create on first success, update after.
func (h *QuoteHandler) SaveDraft(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	if err := session.Save(c.Request.Context()); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draft := session.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"draft_id": draft.ID,
		"status":   response.FromSyncStatus(session.Status()),
	})
}

func (h *QuoteHandler) GetStatus(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSyncStatus(session.Status()))
}

// AddOption freezes the current selection as one of up to three options.
func (h *QuoteHandler) AddOption(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	opt, err := session.AddOption()
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOption(opt))
}

// SaveOptions persists every option; a partial failure reports the failed
// options without rolling back the saved ones.
func (h *QuoteHandler) SaveOptions(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	err := session.SaveOptions(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, response.OptionSaveResultResponse{Saved: len(session.Snapshot().Options)})
		return
	}

	var partial *usecase.PartialOptionSaveError
	if errors.As(err, &partial) {
		failures := make(map[string]string, len(partial.Failures))
		for _, f := range partial.Failures {
			failures[fmt.Sprintf("option_%d", f.Index+1)] = f.Err.Error()
		}
		c.JSON(http.StatusMultiStatus, response.OptionSaveResultResponse{Saved: partial.Saved, Failures: failures})
		return
	}

	appErr := mapQuoteError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// GetComparison ranks the stored options per dimension for the side-by-side
// view.
func (h *QuoteHandler) GetComparison(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	opts := session.Snapshot().Options
	c.JSON(http.StatusOK, response.FromComparison(pricing.Compare(opts), opts))
}

// Finalize promotes one option to the final offer; the draft becomes
// read-only.
func (h *QuoteHandler) Finalize(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	if err := session.PromoteOption(*payload.OptionIndex); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(c.Param("session_id"), session.Snapshot(), session.Totals()))
}

func (h *QuoteHandler) CloseSession(c *gin.Context) {
	if err := h.store.Close(c.Param("session_id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// session resolves the path's session id; replies 404 and returns false when
// it is unknown.
func (h *QuoteHandler) session(c *gin.Context) (*usecase.DraftSession, bool) {
	session, err := h.store.Get(c.Param("session_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return nil, false
	}
	return session, true
}

// commitStep binds the payload then commits the mutator. The mutator closes
// over the payload, so binding must happen before Commit runs.
func (h *QuoteHandler) commitStep(c *gin.Context, payload any, mutate func(*entities.DraftQuote)) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}
	h.commit(c, session, mutate)
}

func (h *QuoteHandler) commit(c *gin.Context, session *usecase.DraftSession, mutate func(*entities.DraftQuote)) {
	if err := session.Commit(mutate); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(c.Param("session_id"), session.Snapshot(), session.Totals()))
}

func mapQuoteError(err error) *pkg.AppError {
	var validation *usecase.ValidationError
	var persistence *usecase.PersistenceError
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("DRAFT_VALIDATION_FAILED", "Draft is missing required fields", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDraftNotFound):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_FOUND", "Draft not found", http.StatusNotFound)
	case errors.Is(err, catalog.ErrOfferNotFound):
		return pkg.NewDomainErrorSimple("OFFER_NOT_FOUND", "Catalog offer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaveInFlight):
		return pkg.NewDomainErrorSimple("SAVE_IN_FLIGHT", "A save is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftFinalized):
		return pkg.NewDomainErrorSimple("DRAFT_FINALIZED", "Draft is finalized and read-only", http.StatusConflict)
	case errors.Is(err, usecase.ErrTooManyOptions), errors.Is(err, interfaces.ErrOptionLimitReached):
		return pkg.NewDomainErrorSimple("TOO_MANY_OPTIONS", "Draft already carries the maximum number of options", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftNotPersisted):
		return pkg.NewDomainErrorSimple("DRAFT_NOT_PERSISTED", "Save the draft before saving options", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidOption):
		return pkg.NewDomainErrorSimple("INVALID_OPTION", "Invalid option index", http.StatusBadRequest)
	case errors.As(err, &persistence):
		return pkg.NewDomainError("PERSISTENCE_FAILED", "Draft persistence failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
