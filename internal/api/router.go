package api

import (
	"net/http"

	"github.com/AlexZinkM/chainkit"
	_ "github.com/AlexZinkM/chainkit/docs"
	"github.com/AlexZinkM/chainkit/internal/handler"

	"github.com/sirupsen/logrus"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter sets up router with handlers.
// Browser requests are only allowed from corsOrigins; none are allowed when it is empty.
func SetupRouter(engine *chainkit.Engine, log *logrus.Entry, corsOrigins []string) http.Handler {
	h := handler.New(engine, log)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Keys
	mux.HandleFunc("/v1/mnemonic", h.Mnemonic)
	mux.HandleFunc("/v1/derive", h.Derive)
	mux.HandleFunc("/v1/derive/data", h.DeriveFromData)
	mux.HandleFunc("/v1/keys/raw", h.RawPrivateKey)
	mux.HandleFunc("/v1/keys/parse", h.ParsePrivateKey)

	// Addresses
	mux.HandleFunc("/v1/address/validate", h.ValidateAddress)
	mux.HandleFunc("/v1/address/program", h.ProgramAddress)
	mux.HandleFunc("/v1/address/associated", h.AssociatedTokenAddress)
	mux.HandleFunc("/v1/address/qr", h.AddressQR)

	// Transactions
	mux.HandleFunc("/v1/tx/send", h.SendTransaction)
	mux.HandleFunc("/v1/tx/token", h.TokenTransaction)
	mux.HandleFunc("/v1/tx/parse", h.ParseTransaction)
	mux.HandleFunc("/v1/tx/message", h.GetMessage)
	mux.HandleFunc("/v1/tx/wrap", h.GetTransaction)
	mux.HandleFunc("/v1/tx/modify", h.ModifyTransaction)
	mux.HandleFunc("/v1/tx/sign", h.SignTransaction)
	mux.HandleFunc("/v1/tx/append-signature", h.AppendSignature)
	mux.HandleFunc("/v1/tx/submit", h.Submit)

	// Signing and cipher
	mux.HandleFunc("/v1/message/sign", h.SignMessage)
	mux.HandleFunc("/v1/message/verify", h.VerifyMessage)
	mux.HandleFunc("/v1/typed-data/sign", h.SignTypedData)
	mux.HandleFunc("/v1/cipher/encrypt", h.Encrypt)
	mux.HandleFunc("/v1/cipher/decrypt", h.Decrypt)

	return logRequests(allowOrigins(mux, corsOrigins), log)
}
