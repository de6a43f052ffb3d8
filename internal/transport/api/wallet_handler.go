package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type WalletHandler struct {
	svs   WalletServicer
	rates RateServicer
}

func NewWalletHandler(svs WalletServicer, rates RateServicer) *WalletHandler {
	return &WalletHandler{svs: svs, rates: rates}
}

type WalletOverviewResponse struct {
	Mode             string                `json:"mode"`
	Wallet           WalletResponse        `json:"wallet"`
	Real             WalletResponse        `json:"real"`
	Demo             WalletResponse        `json:"demo"`
	RealTransactions []TransactionResponse `json:"real_transactions"`
	DemoTransactions []TransactionResponse `json:"demo_transactions"`
	Rate             *RateResponse         `json:"rate"`
}

// Index GET RouteGroup + WalletRoute?mode=. Дашборд: оба кошелька, выбранный кошелек, последние транзакции
// и текущая котировка (null, если котировок нет).
func (h *WalletHandler) Index(c *gin.Context) {
	mode, modeErr := walletMode(c)
	if modeErr != nil {
		abortWithDomainErr(c, modeErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	overview, err := h.svs.Overview(ctx, getUserIDFromContext(c), mode)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	rate, err := h.rates.CurrentRate(ctx)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}

	res := WalletOverviewResponse{
		Mode:             string(overview.Mode),
		Wallet:           newWalletResponse(overview.Selected()),
		Real:             newWalletResponse(overview.Real),
		Demo:             newWalletResponse(overview.Demo),
		RealTransactions: newTransactionsResponse(overview.RealTransactions),
		DemoTransactions: newTransactionsResponse(overview.DemoTransactions),
	}
	if rate.Tradable() {
		r := newRateResponse(rate)
		res.Rate = &r
	}
	c.JSON(http.StatusOK, res)
}

// Transactions GET RouteGroup + WalletTransactionsRoute?mode=. Вся история кошелька, новые сверху.
func (h *WalletHandler) Transactions(c *gin.Context) {
	mode, modeErr := walletMode(c)
	if modeErr != nil {
		abortWithDomainErr(c, modeErr)
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	txs, err := h.svs.Transactions(ctx, getUserIDFromContext(c), mode)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, newTransactionsResponse(txs))
}

type ReconcileResponse struct {
	Wallet          WalletResponse `json:"wallet"`
	LedgerCash      string         `json:"ledger_cash"`
	LedgerCommodity string         `json:"ledger_commodity"`
	Balanced        bool           `json:"balanced"`
}

// Reconcile GET RouteGroup + StaffReconcileRoute. Сверка балансов кошелька с журналом транзакций.
func (h *WalletHandler) Reconcile(c *gin.Context) {
	walletID, ok := paramID(c, "id")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	rec, err := h.svs.Reconcile(ctx, walletID)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, ReconcileResponse{
		Wallet:          newWalletResponse(rec.Wallet),
		LedgerCash:      money(rec.LedgerCash),
		LedgerCommodity: grams(rec.LedgerCommodity),
		Balanced:        rec.Balanced(),
	})
}
