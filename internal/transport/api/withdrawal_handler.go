package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WithdrawalHandler struct {
	svs WithdrawalServicer
}

func NewWithdrawalHandler(svs WithdrawalServicer) *WithdrawalHandler {
	return &WithdrawalHandler{svs: svs}
}

type WithdrawalParams struct {
	Amount        decimal.Decimal `json:"amount"`
	BankName      string          `binding:"required,max=100"        json:"bank_name"`
	AccountName   string          `binding:"required,max=100"        json:"account_name"`
	AccountNumber string          `binding:"required,max=34,digits"  json:"account_number"`
	Branch        string          `binding:"required,max=100"        json:"branch"`
}

// Create POST RouteGroup + WithdrawalsRoute. Заявка на вывод с реального кошелька. Деньги списываются
// только после одобрения персоналом.
func (h *WithdrawalHandler) Create(c *gin.Context) {
	var params WithdrawalParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := h.svs.Request(ctx, service.WithdrawalArgs{
		UserID:        getUserIDFromContext(c),
		Amount:        params.Amount,
		BankName:      params.BankName,
		AccountName:   params.AccountName,
		AccountNumber: params.AccountNumber,
		Branch:        params.Branch,
	})
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, newTransactionResponse(*tx))
}

// Index GET RouteGroup + WithdrawalsRoute.
func (h *WithdrawalHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	views, err := h.svs.My(ctx, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalsResponse(views))
}

// Show GET RouteGroup + WithdrawalRoute. Чужие заявки отдаются как 404.
func (h *WithdrawalHandler) Show(c *gin.Context) {
	txID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	view, err := h.svs.Get(ctx, getUserIDFromContext(c), txID)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newWithdrawalResponse(*view))
}

// StaffIndex GET RouteGroup + StaffWithdrawalsRoute?status=&q=.
func (h *WithdrawalHandler) StaffIndex(c *gin.Context) {
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
	c.JSON(http.StatusOK, newWithdrawalsResponse(views))
}

func (h *WithdrawalHandler) Approve(c *gin.Context) {
	h.decide(c, h.svs.Approve)
}

func (h *WithdrawalHandler) Reject(c *gin.Context) {
	h.decide(c, h.svs.Reject)
}

func (h *WithdrawalHandler) decide(
	c *gin.Context,
	fn func(ctx context.Context, txID, staffID int64) (*domain.Transaction, error),
) {
	txID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	tx, err := fn(ctx, txID, getUserIDFromContext(c))
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionResponse(*tx))
}

func newWithdrawalsResponse(views []domain.WithdrawalView) []WithdrawalResponse {
	res := make([]WithdrawalResponse, len(views))
	for i, v := range views {
		res[i] = newWithdrawalResponse(v)
	}
	return res
}
