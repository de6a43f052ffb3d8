package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TradeHandler struct {
	svs   TradeServicer
	rates RateServicer
}

func NewTradeHandler(svs TradeServicer, rates RateServicer) *TradeHandler {
	return &TradeHandler{svs: svs, rates: rates}
}

type BuyParams struct {
	Amount decimal.Decimal `json:"amount"`
}

type SellParams struct {
	Grams decimal.Decimal `json:"grams"`
}

type TradeResponse struct {
	Wallet      WalletResponse      `json:"wallet"`
	Transaction TransactionResponse `json:"transaction"`
}

// Buy POST RouteGroup + TradeBuyRoute?mode=. Покупка золота на сумму по текущему курсу продажи.
func (h *TradeHandler) Buy(c *gin.Context) {
	var params BuyParams
	if !bindJSON(c, &params) {
		return
	}
	mode, modeErr := walletMode(c)
	if modeErr != nil {
		abortWithDomainErr(c, modeErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.rates.CurrentRate(ctx)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}

	res, err := h.svs.Buy(ctx, service.BuyArgs{
		UserID: getUserIDFromContext(c),
		Mode:   mode,
		Amount: params.Amount,
		Rate:   rate,
	})
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newTradeResponse(res))
}

// Sell POST RouteGroup + TradeSellRoute?mode=. Продажа граммов золота по текущему курсу покупки.
func (h *TradeHandler) Sell(c *gin.Context) {
	var params SellParams
	if !bindJSON(c, &params) {
		return
	}
	mode, modeErr := walletMode(c)
	if modeErr != nil {
		abortWithDomainErr(c, modeErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.rates.CurrentRate(ctx)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}

	res, err := h.svs.Sell(ctx, service.SellArgs{
		UserID: getUserIDFromContext(c),
		Mode:   mode,
		Grams:  params.Grams,
		Rate:   rate,
	})
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newTradeResponse(res))
}

func newTradeResponse(res *service.TradeResult) TradeResponse {
	return TradeResponse{
		Wallet:      newWalletResponse(res.Wallet),
		Transaction: newTransactionResponse(res.Transaction),
	}
}
