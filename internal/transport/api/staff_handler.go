package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	svs StaffServicer
}

func NewStaffHandler(svs StaffServicer) *StaffHandler {
	return &StaffHandler{svs: svs}
}

type PendingCountsResponse struct {
	Deposits    int64 `json:"deposits"`
	Withdrawals int64 `json:"withdrawals"`
	KYC         int64 `json:"kyc"`
	Total       int64 `json:"total"`
}

// Notifications GET RouteGroup + StaffNotificationsRoute. Счетчики заявок, ожидающих решения.
func (h *StaffHandler) Notifications(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	counts, err := h.svs.PendingCounts(ctx)
	if err != nil {
		abortWithDomainErr(c, err)
		return
	}
	c.JSON(http.StatusOK, PendingCountsResponse{
		Deposits:    counts.Deposits,
		Withdrawals: counts.Withdrawals,
		KYC:         counts.KYC,
		Total:       counts.Deposits + counts.Withdrawals + counts.KYC,
	})
}
