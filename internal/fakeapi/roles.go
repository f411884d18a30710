package fakeapi

import (
	"net/http"

	"github.com/MKhiriev/go-biz-admin/internal/utils"
	"github.com/MKhiriev/go-biz-admin/models"
)

// listRoles answers with a bare array, without the content envelope.
func (h *Handler) listRoles(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.store.Roles(), http.StatusOK)
}

func (h *Handler) getRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	role, err := h.store.Role(id)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, role, http.StatusOK)
}

func (h *Handler) createRole(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if !decodeJSON(w, r, &role) {
		return
	}
	role.ID = 0
	h.saveRole(w, r, role, http.StatusCreated)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var role models.Role
	if !decodeJSON(w, r, &role) {
		return
	}
	role.ID = id
	h.saveRole(w, r, role, http.StatusOK)
}

func (h *Handler) saveRole(w http.ResponseWriter, r *http.Request, role models.Role, status int) {
	if err := h.validator.Validate(r.Context(), role); err != nil {
		writeStoreError(w, r, err)
		return
	}

	saved, err := h.store.SaveRole(role)
	if err != nil {
		writeStoreError(w, r, err)
		return
	}
	utils.WriteContent(w, saved, status)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.store.DeleteRole(id); err != nil {
		writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
