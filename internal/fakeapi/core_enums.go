package fakeapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/internal/validators"
	"github.com/MKhiriev/go-biz-admin/models"
)

func (h *Handler) listEnums(w http.ResponseWriter, r *http.Request) {
	utils.WriteContent(w, h.store.Enums(""), http.StatusOK)
}

// enumsByType answers {"content": null} for a type without values.
func (h *Handler) enumsByType(w http.ResponseWriter, r *http.Request) {
	enumType := chi.URLParam(r, "type")
	if err := validators.ValidateEnumType(enumType); err != nil {
		writeStoreError(w, r, err)
		return
	}

	values := h.store.Enums(enumType)
	if len(values) == 0 {
		utils.WriteJSON(w, models.Envelope[[]models.CoreEnum]{}, http.StatusOK)
		return
	}
	utils.WriteContent(w, values, http.StatusOK)
}

func (h *Handler) createEnum(w http.ResponseWriter, r *http.Request) {
	var e models.CoreEnum
	if !decodeJSON(w, r, &e) {
		return
	}
	e.ID = 0
	h.saveEnum(w, r, e, http.StatusCreated)
}

func (h *Handler) updateEnum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var e models.CoreEnum
	if !decodeJSON(w, r, &e) {
		return
	}
	e.ID = id
	h.saveEnum(w, r, e, http.StatusOK)
}

func (h *Handler) saveEnum(w http.ResponseWriter, r *http.Request, e models.CoreEnum, status int) {
	if err := h.validator.Validate(r.Context(), e); err != nil {
		writeStoreError(w, r, err)
		return
	}

	saved, err := h.store.SaveEnum(e)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, saved, status)
}

func (h *Handler) deleteEnum(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteEnum(id); err != nil {
		writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
