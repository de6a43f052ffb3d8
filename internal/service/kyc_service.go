package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/pkg/uow"
)

const (
	kycFullNameMaxLen  = 150
	kycNICMaxLen       = 12
	kycPhoneMaxLen     = 10
	kycDateOfBirthForm = "2006-01-02"
)

type KYCService struct {
	uow      uow.UOW
	kycRepo  KYCRepository
	notifier recipientNotifier
}

func NewKYCService(u uow.UOW, notifier Notifier) (*KYCService, error) {
	kycRepo, err := repoFrom[KYCRepository](u, repoargs.KYCRepoName)
	if err != nil {
		return nil, err
	}
	recipients, err := newRecipientNotifier(u, notifier)
	if err != nil {
		return nil, err
	}
	return &KYCService{uow: u, kycRepo: kycRepo, notifier: recipients}, nil
}

type KYCArgs struct {
	UserID      int64
	FullName    string
	DateOfBirth string
	NICNumber   string
	Address     string
	Phone       string
}

func (a KYCArgs) parse() (repoargs.SubmitKYC, error) {
	res := repoargs.SubmitKYC{
		UserID:    a.UserID,
		FullName:  strings.TrimSpace(a.FullName),
		NICNumber: strings.TrimSpace(a.NICNumber),
		Address:   strings.TrimSpace(a.Address),
		Phone:     strings.TrimSpace(a.Phone),
	}
	if res.FullName == "" || res.NICNumber == "" || res.Address == "" || res.Phone == "" {
		return res, fmt.Errorf("%w: all kyc fields are required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(res.FullName) > kycFullNameMaxLen ||
		utf8.RuneCountInString(res.NICNumber) > kycNICMaxLen {
		return res, fmt.Errorf("%w: full name or nic number is too long", domain.ErrValidation)
	}
	if len(res.Phone) > kycPhoneMaxLen || strings.IndexFunc(res.Phone, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
		return res, fmt.Errorf("%w: phone must contain up to %d digits", domain.ErrValidation, kycPhoneMaxLen)
	}
	dob, err := time.Parse(kycDateOfBirthForm, strings.TrimSpace(a.DateOfBirth))
	if err != nil {
		return res, fmt.Errorf("%w: date of birth must be in YYYY-MM-DD format", domain.ErrValidation)
	}
	if dob.After(time.Now()) {
		return res, fmt.Errorf("%w: date of birth is in the future", domain.ErrValidation)
	}
	res.DateOfBirth = dob
	return res, nil
}

// Submit сохраняет анкету. Повторная подача, в том числе после отказа, возвращает анкету в pending.
func (k *KYCService) Submit(ctx context.Context, args KYCArgs) (*domain.KYC, error) {
	submit, err := args.parse()
	if err != nil {
		return nil, fmt.Errorf("submitting kyc: %w", err)
	}
	kyc, err := k.kycRepo.Upsert(ctx, submit)
	if err != nil {
		return nil, normalizeErr("submitting kyc", err)
	}
	return kyc, nil
}

// Status анкета пользователя или domain.ErrRecordNotFound, если он ее еще не подавал.
func (k *KYCService) Status(ctx context.Context, userID int64) (*domain.KYC, error) {
	kyc, err := k.kycRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, normalizeErr("kyc status", err)
	}
	return kyc, nil
}

func (k *KYCService) Approve(ctx context.Context, userID, staffID int64) (*domain.KYC, error) {
	return k.decide(ctx, userID, staffID, domain.StatusApproved, tplKYCApproved)
}

func (k *KYCService) Reject(ctx context.Context, userID, staffID int64) (*domain.KYC, error) {
	return k.decide(ctx, userID, staffID, domain.StatusRejected, tplKYCRejected)
}

// decide переводит анкету в статус status. Повторное решение с тем же статусом возвращает
// domain.ErrAlreadyProcessed.
func (k *KYCService) decide(
	ctx context.Context,
	userID, staffID int64,
	status domain.StatusType,
	tpl string,
) (*domain.KYC, error) {
	var res *domain.KYC
	err := runScope(ctx, k.uow, "kyc "+string(status), func(c context.Context, tx uow.TX) error {
		kycs, err := txRepo[KYCRepository](tx, repoargs.KYCRepoName)
		if err != nil {
			return err
		}
		kyc, err := kycs.LockByUserID(c, userID)
		if err != nil {
			return err //nolint:wrapcheck
		}
		if kyc.Status == status {
			return fmt.Errorf("%w: kyc of user %d is already %s", domain.ErrAlreadyProcessed, userID, status)
		}
		res, err = kycs.UpdateStatus(c, repoargs.UpdateStatus{ID: userID, Status: status, ProcessedBy: staffID})
		return err //nolint:wrapcheck
	})
	if err != nil {
		return nil, err
	}
	k.notifier.send(ctx, userID, tpl, notificationData{Date: res.UpdatedAt})
	return res, nil
}

func (k *KYCService) List(ctx context.Context, args ListArgs) ([]domain.KYCView, error) {
	views, err := k.kycRepo.List(ctx, args.filter())
	if err != nil {
		return nil, normalizeErr("listing kyc", err)
	}
	return views, nil
}
