package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultStaffListLimit uint = 200

type DepositHandler struct {
	svs DepositServicer
}

func NewDepositHandler(svs DepositServicer) *DepositHandler {
	return &DepositHandler{svs: svs}
}

type DepositParams struct {
	Amount      decimal.Decimal `json:"amount"`
	ReferenceNo string          `binding:"required,max_bytes=100" json:"reference_no"`
	Proof       string          `binding:"required,max_bytes=255" json:"proof"`
}

// Create POST RouteGroup + DepositsRoute. Заявка на пополнение реального кошелька.
func (h *DepositHandler) Create(c *gin.Context) {
	var params DepositParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := h.svs.Submit(ctx, service.DepositArgs{
		UserID:      getUserIDFromContext(c),
		Amount:      params.Amount,
		ReferenceNo: params.ReferenceNo,
		Proof:       params.Proof,
	})
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, newDepositResponse(*deposit, ""))
}

// Index GET RouteGroup + DepositsRoute. Заявки текущего пользователя.
func (h *DepositHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.svs.My(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositsResponse(views))
}

// StaffIndex GET RouteGroup + StaffDepositsRoute?status=&q=.
func (h *DepositHandler) StaffIndex(c *gin.Context) {
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
	c.JSON(http.StatusOK, newDepositsResponse(views))
}

// Approve POST RouteGroup + StaffDepositApproveRoute.
func (h *DepositHandler) Approve(c *gin.Context) {
	h.decide(c, h.svs.Approve)
}

// Reject POST RouteGroup + StaffDepositRejectRoute.
func (h *DepositHandler) Reject(c *gin.Context) {
	h.decide(c, h.svs.Reject)
}

func (h *DepositHandler) decide(
	c *gin.Context,
	fn func(ctx context.Context, depositID, staffID int64) (*domain.BankDeposit, error),
) {
	depositID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	deposit, err := fn(ctx, depositID, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newDepositResponse(*deposit, ""))
}

func newDepositsResponse(views []domain.DepositView) []DepositResponse {
	res := make([]DepositResponse, len(views))
	for i, v := range views {
		res[i] = newDepositResponse(v.BankDeposit, v.Username)
	}
	return res
}

// listArgs фильтры списков персонала: status (pending|approved|rejected) и q (поиск по юзернейму).
func listArgs(c *gin.Context) (service.ListArgs, bool) {
	status, err := domain.ParseStatus(strings.ToLower(c.Query("status")))
	if err != nil {
		abortWithDomainErr(c, err)
		return service.ListArgs{}, false
	}
	return service.ListArgs{
		Status: status,
		Search: c.Query("q"),
		Limit:  defaultStaffListLimit,
	}, true
}
