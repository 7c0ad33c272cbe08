package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlexZinkM/chainkit"
	"github.com/AlexZinkM/chainkit/internal/logging"
	"github.com/AlexZinkM/chainkit/internal/model"

	"github.com/sirupsen/logrus"
)

// StatusClientClosedRequest is returned when the caller went away before the operation finished
const StatusClientClosedRequest = 499

// maxBodyBytes bounds request bodies; signed transactions and typed data stay well below it
const maxBodyBytes = 1 << 20

// Handler serves the engine over HTTP
type Handler struct {
	engine *chainkit.Engine
	log    *logrus.Entry
}

// New creates a Handler for engine
func New(engine *chainkit.Engine, log *logrus.Entry) *Handler {
	if log == nil {
		log = logging.Component("http")
	}
	return &Handler{engine: engine, log: log}
}

// decodePost checks the method and decodes the JSON body into req.
// It writes the error response itself and reports whether the handler should go on.
func decodePost(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed. Should be POST", http.StatusMethodNotAllowed)
		return false
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "invalid request body: " + err.Error(),
			Code:  string(model.KindMissingParameters),
		})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps err to its status and writes it as model.ErrorResponse
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	resp := model.ErrorResponse{Error: err.Error(), Code: string(model.KindOf(err))}
	entry := h.log.WithFields(logrus.Fields{"path": r.URL.Path, "status": status})
	if status >= http.StatusInternalServerError && status != http.StatusNotImplemented {
		var classified *model.Error
		if !errors.As(err, &classified) {
			resp.Error = "internal error"
		}
		entry.WithError(err).Error("request failed")
	} else {
		entry.WithField("kind", resp.Code).Debug("request rejected")
	}
	writeJSON(w, status, resp)
}

// StatusFor returns the HTTP status for an engine error
func StatusFor(err error) int {
	switch model.KindOf(err) {
	case model.KindInvalidMnemonic,
		model.KindInvalidLength,
		model.KindInvalidSeedLength,
		model.KindUnsupportedDerivation,
		model.KindInvalidKey,
		model.KindInvalidAddress,
		model.KindMalformedTransaction,
		model.KindUnsupportedParameter,
		model.KindUnsupportedToken,
		model.KindEmptySignerSet,
		model.KindUnsupportedChain,
		model.KindMultipleSigners,
		model.KindInvalidAmount,
		model.KindMissingParameters:
		return http.StatusBadRequest
	case model.KindAuthenticationFailed:
		return http.StatusUnauthorized
	case model.KindSignerNotFound:
		return http.StatusNotFound
	case model.KindUnsupportedOperation:
		return http.StatusNotImplemented
	case model.KindCancelled:
		return StatusClientClosedRequest
	case model.KindNoValidAddress:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// requireChain resolves chain aliases such as "sol" or "eth".
// Names that are not built in pass through for strategies registered by the caller.
func requireChain(chain model.Chain) (model.Chain, error) {
	if chain == "" {
		return "", model.NewError(model.KindMissingParameters, "chain is required")
	}
	if parsed, err := model.ParseChain(string(chain)); err == nil {
		return parsed, nil
	}
	return chain, nil
}
