package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Emerchan23/sisvendas1-sub004/models"
	"github.com/Emerchan23/sisvendas1-sub004/saleslines"
)

// SalesLineHandler serves the linhas de venda endpoints.
type SalesLineHandler struct {
	store *saleslines.Store
}

func NewSalesLineHandler(store *saleslines.Store) *SalesLineHandler {
	return &SalesLineHandler{store: store}
}

// List lists sales lines
// @Summary      List sales lines
// @Description  Get sales lines, newest order date first.
// @Tags         sales-lines
// @Produce      json
// @Param        client            query     string  false  "Filter by client name (partial match)"
// @Param        paymentStatus     query     string  false  "Filter by payment status (Pendente, Pago)"
// @Param        settlementStatus  query     string  false  "Filter by settlement status (Pendente, Settled)"
// @Param        settlementId      query     string  false  "Filter by owning settlement"
// @Param        unsettled         query     bool    false  "Only lines not yet settled"
// @Param        from              query     string  false  "Order date from (YYYY-MM-DD)"
// @Param        to                query     string  false  "Order date to (YYYY-MM-DD)"
// @Success      200               {object}  Response{data=[]models.SalesLine}
// @Router       /sales-lines [get]
// @Security     BearerAuth
func (h *SalesLineHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	unsettled, _ := strconv.ParseBool(q.Get("unsettled"))
	lines, err := h.store.List(r.Context(), models.SalesLineFilter{
		Client:           q.Get("client"),
		PaymentStatus:    q.Get("paymentStatus"),
		SettlementStatus: q.Get("settlementStatus"),
		SettlementID:     q.Get("settlementId"),
		Unsettled:        unsettled,
		From:             q.Get("from"),
		To:               q.Get("to"),
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lines)
}

// Get retrieves a sales line
// @Summary      Get sales line
// @Tags         sales-lines
// @Produce      json
// @Param        id   path      string  true  "Sales line ID"
// @Success      200  {object}  Response{data=models.SalesLine}
// @Failure      404  {object}  Response{error=string}
// @Router       /sales-lines/{id} [get]
// @Security     BearerAuth
func (h *SalesLineHandler) Get(w http.ResponseWriter, r *http.Request) {
	l, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Create creates a sales line
// @Summary      Create sales line
// @Description  Create an unsettled sales line. Fee values, final cost and profit are derived when finalCost is omitted.
// @Tags         sales-lines
// @Accept       json
// @Produce      json
// @Param        line  body      models.SalesLineInput  true  "Sales line contents"
// @Success      201   {object}  Response{data=models.SalesLine}
// @Failure      400   {object}  Response{error=string}
// @Router       /sales-lines [post]
// @Security     BearerAuth
func (h *SalesLineHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SalesLineInput
	if !decodeJSON(w, r, &input) {
		return
	}
	l, err := h.store.Create(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// Patch updates fields of a sales line
// @Summary      Patch sales line
// @Description  Write only the fields present. settlementId only changes together with settlementStatus, and a line held by an existing settlement cannot be released.
// @Tags         sales-lines
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Sales line ID"
// @Param        line  body      models.SalesLinePatch  true  "Fields to change"
// @Success      200   {object}  Response{data=models.SalesLine}
// @Failure      400   {object}  Response{error=string}
// @Failure      404   {object}  Response{error=string}
// @Router       /sales-lines/{id} [patch]
// @Security     BearerAuth
func (h *SalesLineHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch models.SalesLinePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	l, err := h.store.Patch(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

// Delete deletes a sales line
// @Summary      Delete sales line
// @Description  Remove a sales line. Lines held by a settlement are rejected.
// @Tags         sales-lines
// @Produce      json
// @Param        id   path      string  true  "Sales line ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /sales-lines/{id} [delete]
// @Security     BearerAuth
func (h *SalesLineHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
