package handler

import (
	"net/http"
	"strings"

	"github.com/AlexZinkM/chainkit/internal/crypto"
	"github.com/AlexZinkM/chainkit/internal/model"
)

const defaultMnemonicLength = 12

// Mnemonic handles POST /v1/mnemonic
// @Summary      Generate mnemonic
// @Description  Generates a random BIP-39 mnemonic of 12, 15, 18, 21 or 24 words
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.MnemonicRequest  true  "Word count, 12 when omitted"
// @Success      200      {object}  model.MnemonicWords
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/mnemonic [post]
func (h *Handler) Mnemonic(w http.ResponseWriter, r *http.Request) {
	var req model.MnemonicRequest
	if !decodePost(w, r, &req) {
		return
	}
	if req.Length == 0 {
		req.Length = defaultMnemonicLength
	}

	words, err := h.engine.GenerateMnemonic(r.Context(), req.Length)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, words)
}

// Derive handles POST /v1/derive
// @Summary      Derive keys
// @Description  Derives a range of keys from a mnemonic along one of the chain's path templates or a custom path
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.DeriveRequest  true  "Mnemonic and derivation"
// @Success      200      {object}  model.DeriveResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/derive [post]
func (h *Handler) Derive(w http.ResponseWriter, r *http.Request) {
	var req model.DeriveRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	keys, err := h.engine.Derive(r.Context(), chain, req.Mnemonic, req.Passphrase, req.Derivation)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.DeriveResponse{Keys: keys})
}

// DeriveFromData handles POST /v1/derive/data
// @Summary      Derive key from data
// @Description  Derives a single key from arbitrary seed material
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.DeriveFromDataRequest  true  "Chain and base64 data"
// @Success      200      {object}  model.ChainPrivateKey
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/derive/data [post]
func (h *Handler) DeriveFromData(w http.ResponseWriter, r *http.Request) {
	var req model.DeriveFromDataRequest
	if !decodePost(w, r, &req) {
		return
	}
	defer clear(req.Data)
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key, err := h.engine.DeriveFromData(r.Context(), chain, req.Data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, key)
}

// RawPrivateKey handles POST /v1/keys/raw
// @Summary      Import private key
// @Description  Imports a private key in one of the chain's accepted encodings
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.RawKeyRequest  true  "Chain and key"
// @Success      200      {object}  model.ChainPrivateKey
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/keys/raw [post]
func (h *Handler) RawPrivateKey(w http.ResponseWriter, r *http.Request) {
	var req model.RawKeyRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	key, err := h.engine.RawPrivateKey(r.Context(), chain, req.Key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, key)
}

// ParsePrivateKey handles POST /v1/keys/parse
// @Summary      Detect and import private key
// @Description  Imports a private key with the first chain that accepts it
// @Tags         keys
// @Accept       json
// @Produce      json
// @Param        request  body      model.RawKeyRequest  true  "Key, chain is ignored"
// @Success      200      {object}  model.ChainPrivateKey
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/keys/parse [post]
func (h *Handler) ParsePrivateKey(w http.ResponseWriter, r *http.Request) {
	var req model.RawKeyRequest
	if !decodePost(w, r, &req) {
		return
	}

	key, err := h.engine.ParsePrivateKey(r.Context(), req.Key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, key)
}

// ValidateAddress handles POST /v1/address/validate
// @Summary      Validate address
// @Description  Checks an address against one chain, or detects its chain when none is given
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request  body      model.AddressRequest  true  "Address and optional chain"
// @Success      200      {object}  model.AddressValidation
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/address/validate [post]
func (h *Handler) ValidateAddress(w http.ResponseWriter, r *http.Request) {
	var req model.AddressRequest
	if !decodePost(w, r, &req) {
		return
	}

	if req.Chain == "" {
		key, err := h.engine.ParsePublicKey(req.Address)
		if err != nil {
			writeJSON(w, http.StatusOK, model.AddressValidation{Valid: false})
			return
		}
		writeJSON(w, http.StatusOK, model.AddressValidation{Valid: true, Chain: key.Chain})
		return
	}

	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.engine.Strategy(chain); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AddressValidation{
		Valid: h.engine.IsValid(chain, strings.TrimSpace(req.Address)),
		Chain: chain,
	})
}

// ProgramAddress handles POST /v1/address/program
// @Summary      Find program address
// @Description  Finds the program-derived address of seeds under a program
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request  body      model.ProgramAddressRequest  true  "Seeds and program"
// @Success      200      {object}  model.AddressResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/address/program [post]
func (h *Handler) ProgramAddress(w http.ResponseWriter, r *http.Request) {
	var req model.ProgramAddressRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	address, err := h.engine.ProgramAddress(r.Context(), chain, req.Seeds, req.Program)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AddressResponse{Address: address})
}

// AssociatedTokenAddress handles POST /v1/address/associated
// @Summary      Find associated token address
// @Description  Returns the token account of a wallet for a mint
// @Tags         address
// @Accept       json
// @Produce      json
// @Param        request  body      model.AssociatedAddressRequest  true  "Wallet, owner program and mint"
// @Success      200      {object}  model.AddressResponse
// @Failure      400      {object}  model.ErrorResponse
// @Failure      501      {object}  model.ErrorResponse
// @Router       /v1/address/associated [post]
func (h *Handler) AssociatedTokenAddress(w http.ResponseWriter, r *http.Request) {
	var req model.AssociatedAddressRequest
	if !decodePost(w, r, &req) {
		return
	}
	chain, err := requireChain(req.Chain)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	address, err := h.engine.AssociatedTokenAddress(r.Context(), chain, req.Wallet, req.OwnerProgram, req.Mint)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AddressResponse{Address: address})
}

// AddressQR handles GET /v1/address/qr
// @Summary      Address QR code
// @Description  Renders a valid address of any registered chain as a PNG QR code
// @Tags         address
// @Produce      png
// @Param        address  query     string  true  "Address"
// @Success      200      {file}    binary
// @Failure      400      {object}  model.ErrorResponse
// @Router       /v1/address/qr [get]
func (h *Handler) AddressQR(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed. Should be GET", http.StatusMethodNotAllowed)
		return
	}

	key, err := h.engine.ParsePublicKey(r.URL.Query().Get("address"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	png, err := crypto.QRCodePNG(key.Contents, 256)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
