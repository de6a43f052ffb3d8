package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	WalletModeQuery  = "mode"
	WalletModeHeader = "X-Wallet-Mode"

	retryAfterSeconds = "1"
)

func getUserIDFromContext(c *gin.Context) int64 {
	userID, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	id, ok := userID.(int64)
	if !ok {
		return 0
	}
	return id
}

// walletMode режим кошелька из параметра запроса или заголовка X-Wallet-Mode. По умолчанию real.
func walletMode(c *gin.Context) (domain.WalletMode, error) {
	mode := c.Query(WalletModeQuery)
	if mode == "" {
		mode = c.GetHeader(WalletModeHeader)
	}
	return domain.ParseWalletMode(strings.ToLower(strings.TrimSpace(mode))) //nolint:wrapcheck
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusNotFound, errors.New("not found")).SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// bindJSON разбирает тело запроса. Ошибки валидации полей отдаются с 422, ошибки формата с 400.
func bindJSON(c *gin.Context, params any) bool {
	bindErr := c.ShouldBindJSON(params)
	if bindErr == nil {
		return true
	}
	var valErrs validator.ValidationErrors
	if errors.As(bindErr, &valErrs) {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, gin.H{"error": valErrs.Error()})
		return false
	}
	_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
	return false
}

// abortWithDomainErr переводит ошибку сервисного слоя в HTTP статус. Ошибки домена публичные, остальные нет.
func abortWithDomainErr(c *gin.Context, err error) {
	var (
		status = http.StatusInternalServerError
		public error
	)
	switch {
	case errors.Is(err, domain.ErrTransient):
		c.Header("Retry-After", retryAfterSeconds)
		_ = c.AbortWithError(http.StatusServiceUnavailable, err).SetType(gin.ErrorTypePrivate)
		return
	case errors.Is(err, domain.ErrValidation):
		status, public = http.StatusUnprocessableEntity, err
	case errors.Is(err, domain.ErrInsufficientFunds):
		status, public = http.StatusPaymentRequired, domain.ErrInsufficientFunds
	case errors.Is(err, domain.ErrKYCRequired):
		status, public = http.StatusForbidden, domain.ErrKYCRequired
	case errors.Is(err, domain.ErrForbidden):
		status, public = http.StatusForbidden, domain.ErrForbidden
	case errors.Is(err, domain.ErrRateUnavailable):
		status, public = http.StatusConflict, domain.ErrRateUnavailable
	case errors.Is(err, domain.ErrAlreadyProcessed):
		status, public = http.StatusConflict, domain.ErrAlreadyProcessed
	case errors.Is(err, domain.ErrPendingWithdrawalExists):
		status, public = http.StatusConflict, domain.ErrPendingWithdrawalExists
	case errors.Is(err, domain.ErrDuplicateKey):
		status, public = http.StatusConflict, domain.ErrDuplicateKey
	case errors.Is(err, domain.ErrRecordNotFound):
		status, public = http.StatusNotFound, domain.ErrRecordNotFound
	}

	if public == nil {
		_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePrivate)
		return
	}
	// исходная ошибка остается в контексте для логгера.
	_ = c.Error(err).SetType(gin.ErrorTypePublic)
	c.AbortWithStatusJSON(status, gin.H{"error": publicMessage(err, public)})
}

// publicMessage для ошибок валидации отдает полный текст с деталями, для остальных только текст sentinel.
func publicMessage(err, public error) string {
	if errors.Is(public, domain.ErrValidation) {
		if _, detail, found := strings.Cut(err.Error(), domain.ErrValidation.Error()+": "); found {
			return detail
		}
		return domain.ErrValidation.Error()
	}
	return public.Error()
}
