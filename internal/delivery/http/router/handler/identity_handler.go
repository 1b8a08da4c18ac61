package handler

import (
	"net/http"

	"sentinel/internal/delivery/http/response"
	"sentinel/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// IdentityHandlerParams holds dependencies for IdentityHandler, injected by Fx.
type IdentityHandlerParams struct {
	fx.In

	Signer    service.Signer
	QRCodeSvc service.QRCodeService
}

// IdentityHandler publishes the agent's public identity so that followers
// can add it.
type IdentityHandler struct {
	signer    service.Signer
	qrCodeSvc service.QRCodeService
}

// NewIdentityHandler is the constructor for IdentityHandler
func NewIdentityHandler(params IdentityHandlerParams) *IdentityHandler {
	return &IdentityHandler{
		signer:    params.Signer,
		qrCodeSvc: params.QRCodeSvc,
	}
}

// IdentityResponse is the body of GET /v1/identity.
type IdentityResponse struct {
	PublicKey string `json:"pubkey"`
	NPub      string `json:"npub"`
}

// GetIdentity returns the public key events are signed with.
func (h *IdentityHandler) GetIdentity(c echo.Context) error {
	return response.Success(c, http.StatusOK, IdentityResponse{
		PublicKey: h.signer.PublicKey(),
		NPub:      h.signer.NPub(),
	})
}

// GetIdentityQR returns a PNG QR code of the nostr: URI of the identity.
func (h *IdentityHandler) GetIdentityQR(c echo.Context) error {
	png, err := h.qrCodeSvc.GenerateIdentityQR(h.signer.NPub())
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
