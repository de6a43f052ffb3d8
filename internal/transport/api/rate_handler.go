package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryDays = 30
	maxHistoryDays     = 365
)

type RateHandler struct {
	svs RateServicer
}

func NewRateHandler(svs RateServicer) *RateHandler {
	return &RateHandler{svs: svs}
}

// Current GET RouteGroup + RatesCurrentRoute. Если котировок еще нет, отдает 204.
func (h *RateHandler) Current(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.svs.CurrentRate(ctx)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	if !rate.Tradable() {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newRateResponse(rate))
}

// History GET RouteGroup + RatesHistoryRoute?days=N. Котировки за последние N дней по возрастанию времени.
func (h *RateHandler) History(c *gin.Context) {
	days := defaultHistoryDays
	if v := c.Query("days"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > maxHistoryDays {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": "days must be between 1 and 365"})
			return
		}
		days = parsed
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res := make([]RateResponse, 0)
	for rate, err := range h.svs.History(ctx, time.Duration(days)*24*time.Hour) {
		if err != nil {
			abortWithDomainErr(c, err)
			return
		}
		res = append(res, newRateResponse(rate))
	}
	c.JSON(http.StatusOK, res)
}

type RecordRateParams struct {
	BuyRate  decimal.Decimal `json:"buy_rate"`
	SellRate decimal.Decimal `json:"sell_rate"`
}

// Record POST RouteGroup + StaffRatesRoute. Публикует новую котировку.
func (h *RateHandler) Record(c *gin.Context) {
	var params RecordRateParams
	if !bindJSON(c, &params) {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rate, err := h.svs.RecordRate(ctx, params.BuyRate, params.SellRate)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, newRateResponse(*rate))
}
