package handler

import (
	"net/http"

	"github.com/AlexZinkM/chainkit/internal/model"
)

// SendTransaction handles POST /v1/tx/send
// @Summary      Build native transfer
// @Description  Builds an unsigned transfer of the chain's native coin
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.SendRequest  true  "Sender, receiver and amount"
// @Success      200      {object}  model.TransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/tx/send [post]
func (h *Handler) SendTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.SendRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tx, err := h.engine.SendTransaction(r.Context(), chain, req.Sender, req.Receiver, req.Amount, req.Params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransactionResponse{Tx: tx})
}

// TokenTransaction handles POST /v1/tx/token
// @Summary      Build token transfer
// @Description  Builds an unsigned fungible or non-fungible token transfer
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.TokenRequest  true  "Destination, owner, token and kind"
// @Success      200      {object}  model.TransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/tx/token [post]
func (h *Handler) TokenTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.TokenRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tx, err := h.engine.TokenTransaction(r.Context(), chain, req.Destination, req.Owner, req.Token, req.Kind, req.Params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransactionResponse{Tx: tx})
}

// ParseTransaction handles POST /v1/tx/parse
// @Summary      Parse transaction
// @Description  Decodes an encoded transaction into its chain-neutral form
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransactionRequest  true  "Encoded transaction"
// @Success      200      {object}  model.ParsedTransaction
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/tx/parse [post]
func (h *Handler) ParseTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	parsed, err := h.engine.ParseTransaction(r.Context(), chain, req.Tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, parsed)
}

// GetMessage handles POST /v1/tx/message
// @Summary      Transaction message
// @Description  Returns the signable payload of a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransactionRequest  true  "Encoded transaction"
// @Success      200      {object}  model.MessageResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/tx/message [post]
func (h *Handler) GetMessage(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	message, err := h.engine.GetMessage(r.Context(), chain, req.Tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MessageResponse{Message: message})
}

// GetTransaction handles POST /v1/tx/wrap
// @Summary      Wrap message
// @Description  Wraps a bare message into an unsigned transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.WrapMessageRequest  true  "Encoded message"
// @Success      200      {object}  model.TransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/tx/wrap [post]
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.WrapMessageRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tx, err := h.engine.GetTransaction(r.Context(), chain, req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransactionResponse{Tx: tx})
}

// ModifyTransaction handles POST /v1/tx/modify
// @Summary      Modify transaction
// @Description  Applies named overrides to a transaction and returns it unsigned
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.ModifyRequest  true  "Transaction, owner and overrides"
// @Success      200      {object}  model.TransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /v1/tx/modify [post]
func (h *Handler) ModifyTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.ModifyRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tx, err := h.engine.ModifyTransaction(r.Context(), chain, req.Tx, req.Owner, req.Params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransactionResponse{Tx: tx})
}

// SignTransaction handles POST /v1/tx/sign
// @Summary      Sign transaction
// @Description  Signs a transaction with every given key that is a required signer
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.SignTransactionRequest  true  "Transaction and signers"
// @Success      200      {object}  model.ChainTransaction
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /v1/tx/sign [post]
func (h *Handler) SignTransaction(w http.ResponseWriter, r *http.Request) {
	var req model.SignTransactionRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	signed, err := h.engine.SignTransaction(r.Context(), chain, req.Tx, req.Signers, req.Params)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, signed)
}

// AppendSignature handles POST /v1/tx/append-signature
// @Summary      Append signature
// @Description  Places an externally produced signature into a transaction
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.AppendSignatureRequest  true  "Signer, signature and transaction"
// @Success      200      {object}  model.TransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      404      {object}  model.ErrorResponse
// @Router       /v1/tx/append-signature [post]
func (h *Handler) AppendSignature(w http.ResponseWriter, r *http.Request) {
	var req model.AppendSignatureRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	tx, err := h.engine.AppendSignature(r.Context(), chain, req.Signer, req.Signature, req.Tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.TransactionResponse{Tx: tx})
}

// Submit handles POST /v1/tx/submit
// @Summary      Submit transaction
// @Description  Broadcasts a signed transaction through the chain's configured RPC endpoint
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransactionRequest  true  "Signed transaction"
// @Success      200      {object}  model.SubmitResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/tx/submit [post]
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.TransactionRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	txID, err := h.engine.Submit(r.Context(), chain, req.Tx)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.SubmitResponse{TxID: txID})
}
