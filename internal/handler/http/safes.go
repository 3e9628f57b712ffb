// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-safe-keeper/internal/logger"
	"github.com/MKhiriev/go-safe-keeper/internal/service"
	"github.com/MKhiriev/go-safe-keeper/internal/utils"
	"github.com/MKhiriev/go-safe-keeper/models"
)

// withSafeScope tags the request logger with the safe id from the URL so
// that service-level logs of this request carry it.
func withSafeScope(r *http.Request) (*http.Request, string) {
	safeID := chi.URLParam(r, "safeID")
	log := logger.FromRequest(r).WithSafeID(safeID)
	return r.WithContext(log.WithContext(r.Context())), safeID
}

func (h *Handler) getOrCreateSafe(w http.ResponseWriter, r *http.Request) {
	r, safeID := withSafeScope(r)

	safe, err := h.services.SafeRegistry.GetOrCreateSafe(r.Context(), safeID)
	if err != nil {
		writeError(w, r, "*Handler.getOrCreateSafe", err)
		return
	}

	record := safe.Record()
	utils.WriteJSON(w, models.SafeInfo{ID: record.ID, CreatedAt: record.CreatedAt}, http.StatusOK)
}

func (h *Handler) encrypt(w http.ResponseWriter, r *http.Request) {
	h.transformObject(w, r, "*Handler.encrypt", h.services.FieldCodec.EncryptObjectValues)
}

func (h *Handler) decrypt(w http.ResponseWriter, r *http.Request) {
	h.transformObject(w, r, "*Handler.decrypt", h.services.FieldCodec.DecryptObjectValues)
}

type objectTransform func(ctx context.Context, safeID string, obj map[string]any, keys ...string) (map[string]any, error)

func (h *Handler) transformObject(w http.ResponseWriter, r *http.Request, funcName string, transform objectTransform) {
	r, safeID := withSafeScope(r)

	var req models.ObjectRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, funcName, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.Object == nil {
		writeError(w, r, funcName, fmt.Errorf("%w: object is required", service.ErrInvalidArgument))
		return
	}

	obj, err := transform(r.Context(), safeID, req.Object, req.Keys...)
	if err != nil {
		writeError(w, r, funcName, err)
		return
	}

	utils.WriteJSON(w, models.ObjectResponse{Object: obj}, http.StatusOK)
}

func (h *Handler) encryptValues(w http.ResponseWriter, r *http.Request) {
	r, safeID := withSafeScope(r)

	var req models.ValuesPayload
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.encryptValues", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.Values == nil {
		writeError(w, r, "*Handler.encryptValues", fmt.Errorf("%w: values are required", service.ErrInvalidArgument))
		return
	}

	tokens, err := h.services.FieldCodec.EncryptValues(r.Context(), safeID, req.Values)
	if err != nil {
		writeError(w, r, "*Handler.encryptValues", err)
		return
	}

	utils.WriteJSON(w, models.TokensPayload{Tokens: tokens}, http.StatusOK)
}

func (h *Handler) decryptValues(w http.ResponseWriter, r *http.Request) {
	r, safeID := withSafeScope(r)

	var req models.TokensPayload
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.decryptValues", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.Tokens == nil {
		writeError(w, r, "*Handler.decryptValues", fmt.Errorf("%w: tokens are required", service.ErrInvalidArgument))
		return
	}

	values, err := h.services.FieldCodec.DecryptValues(r.Context(), safeID, req.Tokens)
	if err != nil {
		writeError(w, r, "*Handler.decryptValues", err)
		return
	}

	utils.WriteJSON(w, models.ValuesPayload{Values: values}, http.StatusOK)
}

func (h *Handler) mask(w http.ResponseWriter, r *http.Request) {
	var req models.MaskRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		writeError(w, r, "*Handler.mask", fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if req.Object == nil {
		writeError(w, r, "*Handler.mask", fmt.Errorf("%w: object is required", service.ErrInvalidArgument))
		return
	}

	mask := req.Mask
	if mask == "" {
		mask = service.DefaultMask
	}

	utils.WriteJSON(w, models.ObjectResponse{Object: service.ReplaceEncryptedValuesWith(req.Object, mask, req.Keys...)}, http.StatusOK)
}
