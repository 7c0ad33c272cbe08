package handler

import (
	"net/http"

	"github.com/AlexZinkM/chainkit/internal/model"
)

// SignMessage handles POST /v1/message/sign
// @Summary      Sign message
// @Description  Signs a free-form message with the chain's message scheme
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignMessageRequest  true  "Message and signer"
// @Success      200      {object}  model.SignatureResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/message/sign [post]
func (h *Handler) SignMessage(w http.ResponseWriter, r *http.Request) {
	var req model.SignMessageRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	sig, err := h.engine.SignMessage(r.Context(), chain, req.Message, req.Signers)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignatureResponse{Signature: sig})
}

// VerifyMessage handles POST /v1/message/verify
// @Summary      Verify message
// @Description  Checks a signature produced by /v1/message/sign against an address
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.VerifyMessageRequest  true  "Address, message and signature"
// @Success      200      {object}  model.VerificationResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/message/verify [post]
func (h *Handler) VerifyMessage(w http.ResponseWriter, r *http.Request) {
	var req model.VerifyMessageRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ok, err := h.engine.VerifyMessage(r.Context(), chain, req.Address, req.Message, req.Signature)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.VerificationResponse{Valid: ok})
}

// SignTypedData handles POST /v1/typed-data/sign
// @Summary      Sign typed data
// @Description  Signs a structured payload through the chain's typed-data digest
// @Tags         signing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignTypedDataRequest  true  "Typed data JSON and signer"
// @Success      200      {object}  model.SignatureResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/typed-data/sign [post]
func (h *Handler) SignTypedData(w http.ResponseWriter, r *http.Request) {
	var req model.SignTypedDataRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	sig, err := h.engine.SignTypedData(r.Context(), chain, req.TypedData, req.Signers)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SignatureResponse{Signature: sig})
}

// Encrypt handles POST /v1/cipher/encrypt
// @Summary      Encrypt payload
// @Description  Seals plaintext under a password with scrypt and AES-256-GCM
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request  body      model.EncryptRequest  true  "Plaintext and password"
// @Success      200      {object}  model.EncryptResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/cipher/encrypt [post]
func (h *Handler) Encrypt(w http.ResponseWriter, r *http.Request) {
	var req model.EncryptRequest
	if !decodePost(w, r, &req) {
		return
	}
	if req.Password == "" {
		h.writeError(w, r, model.NewError(model.KindMissingParameters, "password is required"))
		return
	}

	password := []byte(req.Password)
	defer clear(password)
	plaintext := []byte(req.Plaintext)
	defer clear(plaintext)

	ciphertext, err := h.engine.EncryptPlaintext(r.Context(), plaintext, password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles POST /v1/cipher/decrypt
// @Summary      Decrypt payload
// @Description  Opens a payload sealed by /v1/cipher/encrypt
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request  body      model.DecryptRequest  true  "Ciphertext and password"
// @Success      200      {object}  model.DecryptResponse
// @Failure      401      {object}  model.ErrorResponse
// @Router       /v1/cipher/decrypt [post]
func (h *Handler) Decrypt(w http.ResponseWriter, r *http.Request) {
	var req model.DecryptRequest
	if !decodePost(w, r, &req) {
		return
	}

	password := []byte(req.Password)
	defer clear(password)

	plaintext, err := h.engine.DecryptCiphertext(r.Context(), req.Ciphertext, password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer clear(plaintext)
	writeJSON(w, http.StatusOK, model.DecryptResponse{Plaintext: string(plaintext)})
}
