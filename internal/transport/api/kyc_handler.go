package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/gin-gonic/gin"
)

type KYCHandler struct {
	svs KYCServicer
}

func NewKYCHandler(svs KYCServicer) *KYCHandler {
	return &KYCHandler{svs: svs}
}

type KYCParams struct {
	FullName    string `binding:"required,max=150"         json:"full_name"`
	DateOfBirth string `binding:"required"                 json:"date_of_birth"`
	NICNumber   string `binding:"required,max=12"          json:"nic_number"`
	Address     string `binding:"required"                 json:"address"`
	Phone       string `binding:"required,max=10,digits"   json:"phone"`
}

// Submit POST RouteGroup + KYCRoute. Подача или повторная подача анкеты.
func (h *KYCHandler) Submit(c *gin.Context) {
	var params KYCParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	kyc, err := h.svs.Submit(ctx, service.KYCArgs{
		UserID:      getUserIDFromContext(c),
		FullName:    params.FullName,
		DateOfBirth: params.DateOfBirth,
		NICNumber:   params.NICNumber,
		Address:     params.Address,
		Phone:       params.Phone,
	})
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newKYCResponse(*kyc, ""))
}

// Show GET RouteGroup + KYCRoute. 404, если анкета еще не подавалась.
func (h *KYCHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	kyc, err := h.svs.Status(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newKYCResponse(*kyc, ""))
}

func (h *KYCHandler) StaffIndex(c *gin.Context) {
	args, ok := listArgs(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.svs.List(ctx, args)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	res := make([]KYCResponse, len(views))
	for i, v := range views {
		res[i] = newKYCResponse(v.KYC, v.Username)
	}
	c.JSON(http.StatusOK, res)
}

func (h *KYCHandler) Approve(c *gin.Context) {
	h.decide(c, h.svs.Approve)
}

func (h *KYCHandler) Reject(c *gin.Context) {
	h.decide(c, h.svs.Reject)
}

func (h *KYCHandler) decide(
	c *gin.Context,
	fn func(ctx context.Context, userID, staffID int64) (*domain.KYC, error),
) {
	userID, ok := paramID(c, "userID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	kyc, err := fn(ctx, userID, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newKYCResponse(*kyc, ""))
}
