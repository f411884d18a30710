package fakeapi

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-biz-admin/internal/app"
	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/models"
)

func (h *Handler) listBonuses(w http.ResponseWriter, r *http.Request) {
	var employeeID int64
	if raw := r.URL.Query().Get("employeeId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 0 {
			utils.WriteError(w, app.MsgInvalidDataProvided, app.CodeBadRequest, http.StatusBadRequest)
			return
		}
		employeeID = id
	}

	utils.WriteContent(w, h.store.Bonuses(employeeID), http.StatusOK)
}

func (h *Handler) createBonus(w http.ResponseWriter, r *http.Request) {
	var b models.Bonus
	if !decodeJSON(w, r, &b) {
		return
	}
	b.ID = 0
	h.saveBonus(w, r, b, http.StatusCreated)
}

func (h *Handler) updateBonus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var b models.Bonus
	if !decodeJSON(w, r, &b) {
		return
	}
	b.ID = id
	h.saveBonus(w, r, b, http.StatusOK)
}

func (h *Handler) saveBonus(w http.ResponseWriter, r *http.Request, b models.Bonus, status int) {
	if err := h.validator.Validate(r.Context(), b); err != nil {
		writeStoreError(w, r, err)
		return
	}

	saved, err := h.store.SaveBonus(b)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, saved, status)
}

func (h *Handler) deleteBonus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteBonus(id); err != nil {
		writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
