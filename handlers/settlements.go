package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Emerchan23/sisvendas1-sub004/models"
	"github.com/Emerchan23/sisvendas1-sub004/settlement"
)

// SettlementHandler serves the acerto endpoints.
type SettlementHandler struct {
	engine *settlement.Engine
}

func NewSettlementHandler(engine *settlement.Engine) *SettlementHandler {
	return &SettlementHandler{engine: engine}
}

// CreatedID is returned by create endpoints that answer with the new id only.
type CreatedID struct {
	ID string `json:"id"`
}

// List lists all settlements
// @Summary      List settlements
// @Description  Get all settlements (acertos), newest date first.
// @Tags         settlements
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Settlement}
// @Router       /settlements [get]
// @Security     BearerAuth
func (h *SettlementHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.engine.List(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get retrieves a single settlement by ID
// @Summary      Get settlement
// @Description  Get a settlement with its line ids, distributions and expenses decoded.
// @Tags         settlements
// @Produce      json
// @Param        id   path      string  true  "Settlement ID"
// @Success      200  {object}  Response{data=models.Settlement}
// @Failure      404  {object}  Response{error=string}
// @Router       /settlements/{id} [get]
// @Security     BearerAuth
func (h *SettlementHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.engine.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Create creates a new settlement
// @Summary      Create settlement
// @Description  Persist a settlement with its frozen totals. Sales lines and expenses are not changed.
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        settlement  body      models.SettlementInput  true  "Settlement contents"
// @Success      201         {object}  Response{data=CreatedID}
// @Failure      400         {object}  Response{error=string}
// @Router       /settlements [post]
// @Security     BearerAuth
func (h *SettlementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.SettlementInput
	if !decodeJSON(w, r, &input) {
		return
	}
	id, err := h.engine.Create(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedID{ID: id})
}

// Update partially updates a settlement
// @Summary      Update settlement
// @Description  Write only the fields present in the body. An empty body is rejected.
// @Tags         settlements
// @Accept       json
// @Produce      json
// @Param        id          path      string                  true  "Settlement ID"
// @Param        settlement  body      models.SettlementPatch  true  "Fields to change"
// @Success      200         {object}  Response{data=models.Settlement}
// @Failure      400         {object}  Response{error=string}
// @Failure      404         {object}  Response{error=string}
// @Router       /settlements/{id} [patch]
// @Security     BearerAuth
func (h *SettlementHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch models.SettlementPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	s, err := h.engine.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// Cancel cancels a settlement
// @Summary      Cancel settlement
// @Description  Return the settlement's sales lines and expenses to pending and delete it, atomically.
// @Tags         settlements
// @Produce      json
// @Param        id   path      string  true  "Settlement ID"
// @Success      200  {object}  Response{data=models.CancelResult}
// @Failure      404  {object}  Response{error=string}
// @Failure      500  {object}  Response{error=string}
// @Router       /settlements/{id}/cancel [post]
// @Security     BearerAuth
func (h *SettlementHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	res, err := h.engine.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Delete deletes a settlement
// @Summary      Delete settlement
// @Description  Remove a settlement without reverting its sales lines or expenses. Use cancel to revert them.
// @Tags         settlements
// @Produce      json
// @Param        id   path      string  true  "Settlement ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /settlements/{id} [delete]
// @Security     BearerAuth
func (h *SettlementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

// Summary aggregates settlements
// @Summary      Settlement summary
// @Description  Count of settlements, open settlements and summed totals.
// @Tags         settlements
// @Produce      json
// @Success      200  {object}  Response{data=models.SettlementSummary}
// @Router       /settlements/summary [get]
// @Security     BearerAuth
func (h *SettlementHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.engine.Summary(r.Context())
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}
