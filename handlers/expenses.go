package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Emerchan23/sisvendas1-sub004/expenses"
	"github.com/Emerchan23/sisvendas1-sub004/models"
)

// ExpenseHandler serves the despesas pendentes endpoints.
type ExpenseHandler struct {
	store *expenses.Store
}

func NewExpenseHandler(store *expenses.Store) *ExpenseHandler {
	return &ExpenseHandler{store: store}
}

// List lists pending expenses
// @Summary      List expenses
// @Description  Get pending expenses, earliest due date first.
// @Tags         expenses
// @Produce      json
// @Param        status          query     string  false  "Filter by status (pendente, pago, cancelado, usada)"
// @Param        kind            query     string  false  "Filter by kind (individual, rateio)"
// @Param        participantId   query     string  false  "Filter by participant"
// @Param        usedInAcertoId  query     string  false  "Filter by absorbing settlement"
// @Success      200             {object}  Response{data=[]models.PendingExpense}
// @Router       /expenses [get]
// @Security     BearerAuth
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	list, err := h.store.List(r.Context(), models.PendingExpenseFilter{
		Status:         q.Get("status"),
		Kind:           q.Get("kind"),
		ParticipantID:  q.Get("participantId"),
		UsedInAcertoID: q.Get("usedInAcertoId"),
	})
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get retrieves a pending expense
// @Summary      Get expense
// @Tags         expenses
// @Produce      json
// @Param        id   path      string  true  "Expense ID"
// @Success      200  {object}  Response{data=models.PendingExpense}
// @Failure      404  {object}  Response{error=string}
// @Router       /expenses/{id} [get]
// @Security     BearerAuth
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	e, err := h.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Create creates a pending expense
// @Summary      Create expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        expense  body      models.PendingExpenseInput  true  "Expense contents"
// @Success      201      {object}  Response{data=models.PendingExpense}
// @Failure      400      {object}  Response{error=string}
// @Router       /expenses [post]
// @Security     BearerAuth
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.PendingExpenseInput
	if !decodeJSON(w, r, &input) {
		return
	}
	e, err := h.store.Create(r.Context(), input)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// Patch updates fields of a pending expense
// @Summary      Patch expense
// @Description  Write only the fields present. usedInAcertoId only changes together with status, and an expense held by an existing settlement cannot be released.
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Expense ID"
// @Param        expense  body      models.PendingExpensePatch  true  "Fields to change"
// @Success      200      {object}  Response{data=models.PendingExpense}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /expenses/{id} [patch]
// @Security     BearerAuth
func (h *ExpenseHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var patch models.PendingExpensePatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	e, err := h.store.Patch(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

// Delete deletes a pending expense
// @Summary      Delete expense
// @Description  Remove an expense. Expenses absorbed by a settlement are rejected.
// @Tags         expenses
// @Produce      json
// @Param        id   path      string  true  "Expense ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      400  {object}  Response{error=string}
// @Failure      404  {object}  Response{error=string}
// @Router       /expenses/{id} [delete]
// @Security     BearerAuth
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
