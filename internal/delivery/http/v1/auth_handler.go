package v1

import (
	"net/http"

	"local-jobs-backend/internal/delivery/http/response"
	"local-jobs-backend/internal/domain"
	"local-jobs-backend/pkg/apperror"
	"local-jobs-backend/pkg/logger"
	"local-jobs-backend/pkg/otp"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves the stub OTP endpoint kept for front-end
// compatibility. The code is logged and echoed back to the caller; this
// is not an authentication mechanism.
type AuthHandler struct{}

func NewAuthHandler(rg *gin.RouterGroup) {
	handler := &AuthHandler{}

	auth := rg.Group("/auth")
	{
		auth.POST("/send-otp", handler.SendOTP)
	}
}

type SendOTPRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

// SendOTP godoc
// @Summary      Send a one-time code (stub)
// @Description  Generates a six-digit code for a 12-digit identifier; the code is returned in the response
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      SendOTPRequest  true  "Identifier JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Identifier is required"))
		return
	}

	normalized := domain.NormalizeIdentifier(req.Identifier)
	if len(normalized) != 12 {
		c.Error(apperror.BadRequest("Identifier must be a 12-digit number"))
		return
	}

	code, err := otp.Generate()
	if err != nil {
		c.Error(err)
		return
	}

	logger.Log.Info("Generated OTP", "identifier", normalized, "otp", code)
	response.Success(c, http.StatusOK, "OTP generated", gin.H{"otp": code})
}
