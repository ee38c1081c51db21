package v1

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// MsgGenericError is shown when an error has no message fit for users
const MsgGenericError = "エラーが発生しました"

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 16

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError writes err with its mapped status. Cancelled requests get no
// response at all since nobody is listening.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.IsCanceled(err) {
		h.logger.Debug("request cancelled", zap.String("path", r.URL.Path))
		return
	}

	code := errors.GetCode(err)
	status := code.HTTPStatus()

	message := errors.GetMessage(err)
	if code == errors.CodeInternal || message == "" {
		message = MsgGenericError
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("path", r.URL.Path),
			zap.String("code", code.String()),
			zap.Error(err))
	}

	respondJSON(w, status, &ErrorResponse{Error: message, Code: code.String()})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.InvalidArgument("invalid request body")
	}
	return nil
}
