package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qr-redirect/internal/app"
	"github.com/MKhiriev/go-qr-redirect/internal/logger"
)

// redirect answers a scan with 301 to the mapping's current data.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	qrCodeID := chi.URLParam(r, paramQRCodeID)

	target, err := h.services.RedirectService.Resolve(r.Context(), qrCodeID)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusNotFound {
			log.Warn().Err(err).Str("func", "*Handler.redirect").Str("qr_code_id", qrCodeID).Send()
			http.Error(w, app.MsgQRCodeNotFound, http.StatusNotFound)
			return
		}
		if status == http.StatusBadRequest {
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		log.Err(err).Str("func", "*Handler.redirect").Str("qr_code_id", qrCodeID).Msg(app.MsgRedirectFailed)
		http.Error(w, app.MsgRedirectFailed, http.StatusInternalServerError)
		return
	}

	// http.Redirect would clean relative targets; the stored value is sent as is.
	w.Header().Set("Location", target)
	w.WriteHeader(http.StatusMovedPermanently)
}

func (h *Handler) image(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	qrCodeID := chi.URLParam(r, paramQRCodeID)

	png, err := h.services.RedirectService.Image(r.Context(), qrCodeID)
	if err != nil {
		switch statusFromError(err) {
		case http.StatusNotFound:
			http.Error(w, app.MsgQRCodeNotFound, http.StatusNotFound)
		case http.StatusBadRequest:
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		default:
			log.Err(err).Str("func", "*Handler.image").Str("qr_code_id", qrCodeID).Msg(app.MsgImageFailed)
			http.Error(w, app.MsgImageFailed, http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
