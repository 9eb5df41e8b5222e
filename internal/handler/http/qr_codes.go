// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-redirect/internal/app"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
	"github.com/MKhiriev/go-qr-redirect/internal/utils"
	"github.com/MKhiriev/go-qr-redirect/models"
)

const (
	paramQRCodeID = "qrCodeId"
	paramUserID   = "userId"
)

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.generate").Msg(app.MsgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	qrCode, err := h.services.QRCodeService.Create(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.generate", app.MsgGenerateFailed)
		return
	}

	utils.WriteJSON(w, models.QRCodeResponse{
		Success: true,
		Message: app.MsgQRCodeCreated,
		QRCode:  qrCode,
	}, http.StatusOK)
}

func (h *Handler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, paramUserID)

	qrCodes, err := h.services.QRCodeService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listByUser", app.MsgFetchFailed)
		return
	}

	utils.WriteJSON(w, qrCodes, http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg(app.MsgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}
	req.QRCodeID = chi.URLParam(r, paramQRCodeID)

	qrCode, err := h.services.QRCodeService.Update(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.update", app.MsgUpdateFailed)
		return
	}

	utils.WriteJSON(w, models.QRCodeResponse{
		Success: true,
		Message: app.MsgQRCodeUpdated,
		QRCode:  qrCode,
	}, http.StatusOK)
}

// delete accepts the caller's userId either in the JSON body or as the
// userId query parameter. The body wins when both are present.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.delete").Msg(app.MsgInvalidJSON)
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}
	if req.UserID == "" {
		req.UserID = r.URL.Query().Get(paramUserID)
	}
	req.QRCodeID = chi.URLParam(r, paramQRCodeID)

	if err := h.services.QRCodeService.Delete(r.Context(), req); err != nil {
		writeServiceError(w, r, err, "*Handler.delete", app.MsgDeleteFailed)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgQRCodeDeleted}, http.StatusOK)
}
