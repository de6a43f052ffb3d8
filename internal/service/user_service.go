package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-gold/internal/domain"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/internal/service/tokens"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/shopspring/decimal"
)

const (
	JWTTokenExpire = 24 * time.Hour

	demoOpeningRemarks = "Demo opening balance"
)

type UserService struct {
	uow            uow.UOW
	userRepo       UserRepository
	jwtTokenSecret []byte
	psswd          PasswordHasher
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, psswd PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := repoFrom[UserRepository](u, repoargs.UserRepoName)
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		jwtTokenSecret: jwtTokenSecret,
		psswd:          psswd,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Email    string
	Password string
	IsStaff  bool
}

// Register создает юзера и оба его кошелька в одной транзакции: реальный с нулевым балансом и демо
// со стартовым балансом domain.DemoOpeningBalance. Стартовый баланс демо-кошелька записывается в журнал
// одобренной транзакцией DEPOSIT. После успешного создания генерирует jwt token.
// Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	username := strings.TrimSpace(args.Username)
	if username == "" || args.Password == "" {
		return nil, "", fmt.Errorf("registering user: %w: username and password are required", domain.ErrValidation)
	}

	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", hashErr)
	}

	var user *domain.User
	txErr := runScope(ctx, s.uow, "registering user", func(c context.Context, tx uow.TX) error {
		userRepo, err := txRepo[UserRepository](tx, repoargs.UserRepoName)
		if err != nil {
			return err
		}
		user, err = userRepo.CreateUser(c, repoargs.CreateUser{
			Username: username,
			Email:    strings.TrimSpace(args.Email),
			Password: password,
			IsStaff:  args.IsStaff,
		})
		if err != nil {
			return err //nolint:wrapcheck
		}
		return s.createWallets(c, tx, user.ID)
	})
	if txErr != nil {
		return nil, "", txErr
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.IsStaff, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", tokenErr)
	}
	return user, token, nil
}

func (s *UserService) createWallets(ctx context.Context, tx uow.TX, userID int64) error {
	wallets, err := txRepo[WalletRepository](tx, repoargs.WalletRepoName)
	if err != nil {
		return err
	}
	txs, err := txRepo[TransactionRepository](tx, repoargs.TransactionRepoName)
	if err != nil {
		return err
	}

	if _, err = wallets.Create(ctx, repoargs.CreateWallet{
		UserID:      userID,
		Mode:        domain.WalletModeReal,
		CashBalance: decimal.Zero,
	}); err != nil {
		return err //nolint:wrapcheck
	}

	demo, err := wallets.Create(ctx, repoargs.CreateWallet{
		UserID:      userID,
		Mode:        domain.WalletModeDemo,
		CashBalance: domain.DemoOpeningBalance,
	})
	if err != nil {
		return err //nolint:wrapcheck
	}

	_, err = txs.Create(ctx, repoargs.CreateTransaction{
		WalletID:    demo.ID,
		Type:        domain.TransactionTypeDeposit,
		TotalAmount: domain.DemoOpeningBalance,
		Status:      domain.StatusApproved,
		Remarks:     demoOpeningRemarks,
	})
	return err //nolint:wrapcheck
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет учетные данные и выдает jwt token. Возвращает domain.ErrRecordNotFound для неизвестного
// юзернейма и domain.ErrPasswordMissMatch для неверного пароля.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, "", normalizeErr("login", err)
	}
	if !s.psswd.ComparePassword(args.Password, user.EncryptedPassword) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.IsStaff, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w", tokenErr)
	}
	return user, token, nil
}

// EnsureStaff создает сотрудника с указанными данными, если юзера с таким юзернеймом еще нет.
func (s *UserService) EnsureStaff(ctx context.Context, args RegisterUserArgs) error {
	_, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return normalizeErr("ensuring staff", err)
	}
	args.IsStaff = true
	if _, _, regErr := s.Register(ctx, args); regErr != nil && !errors.Is(regErr, domain.ErrDuplicateKey) {
		return fmt.Errorf("ensuring staff: %w", regErr)
	}
	return nil
}
