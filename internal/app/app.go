package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-gold/internal/config"
	"github.com/fsdevblog/groph-gold/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-gold/internal/repository/redisrepo"
	"github.com/fsdevblog/groph-gold/internal/repository/repoargs"
	"github.com/fsdevblog/groph-gold/internal/service"
	"github.com/fsdevblog/groph-gold/internal/transport/api"
	"github.com/fsdevblog/groph-gold/internal/transport/notify"
	"github.com/fsdevblog/groph-gold/pkg/uow"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// Run поднимает зависимости, HTTP сервер и диспетчер уведомлений и блокируется до отмены ctx
// или падения одного из них. При отмене ctx сервер завершает активные запросы в пределах ShutdownTimeout.
func (a *App) Run(ctx context.Context) error {
	a.Logger.WithFields(logrus.Fields{
		"address":   a.Config.RunAddress,
		"smtp":      a.Config.SMTP.Enabled(),
		"redis":     a.Config.Redis.Enabled(),
		"kafka":     a.Config.Kafka.Enabled(),
		"bootstrap": a.Config.Staff.Enabled(),
	}).Info("Starting app")

	conn, connErr := pgrepo.Connect(ctx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn, a.Config)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	rateCache, closeCache, cacheErr := a.initRateCache(ctx)
	if cacheErr != nil {
		return fmt.Errorf("app run: %s", cacheErr.Error())
	}
	defer closeCache()

	sender, closeSender := a.initSender()
	defer closeSender()

	dispatcher := notify.New(sender, a.Logger).
		SetWorkers(a.Config.Notify.Workers).
		SetQueueSize(a.Config.Notify.QueueSize)

	services, sErr := service.Factory(unitOfWork, service.FactoryArgs{
		JWTSecret:    []byte(a.Config.JWTSecret),
		Notifier:     dispatcher,
		RateCache:    rateCache,
		Logger:       a.Logger,
		PasswordCost: a.Config.PasswordCost,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if a.Config.Staff.Enabled() {
		if err := services.UserService.EnsureStaff(ctx, service.RegisterUserArgs{
			Username: a.Config.Staff.Username,
			Email:    a.Config.Staff.Email,
			Password: a.Config.Staff.Password,
		}); err != nil {
			return fmt.Errorf("app run: %s", err.Error())
		}
	}

	router, rErr := api.New(api.RouterArgs{
		Logger:            a.Logger,
		UserService:       services.UserService,
		WalletService:     services.WalletService,
		RateService:       services.RateService,
		TradeService:      services.TradeService,
		DepositService:    services.DepositService,
		WithdrawalService: services.WithdrawalService,
		KYCService:        services.KYCService,
		StaffService:      services.StaffService,
		JWTSecretKey:      []byte(a.Config.JWTSecret),
	})
	if rErr != nil {
		return fmt.Errorf("app run: %s", rErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: api.DefaultServiceTimeout,
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		dispatcher.Run(gCtx)
		return nil
	})
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		a.Logger.Info("Shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gCtx), a.Config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err //nolint:wrapcheck
	}
	return ctx.Err() //nolint:wrapcheck
}

// initRateCache возвращает nil кеш, если redis не настроен. Сервис котировок в этом случае читает из базы.
func (a *App) initRateCache(ctx context.Context) (service.RateCache, func(), error) {
	if !a.Config.Redis.Enabled() {
		return nil, func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.Config.Redis.Addr,
		Password: a.Config.Redis.Password,
		DB:       a.Config.Redis.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("init redis: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			a.Logger.WithError(err).Warn("close redis")
		}
	}
	return redisrepo.NewRateCache(client, a.Config.Redis.RateCacheTTL), closeFn, nil
}

// initSender собирает каналы доставки уведомлений. Без настроенных каналов уведомления пишутся в лог.
func (a *App) initSender() (notify.Sender, func()) {
	var (
		senders notify.Fanout
		closers []func()
	)

	if a.Config.SMTP.Enabled() {
		senders = append(senders, notify.NewSMTPSender(notify.SMTPConfig{
			Host:     a.Config.SMTP.Host,
			Port:     a.Config.SMTP.Port,
			Username: a.Config.SMTP.Username,
			Password: a.Config.SMTP.Password,
			From:     a.Config.SMTP.From,
		}))
	}

	if a.Config.Kafka.Enabled() {
		writer := notify.NewKafkaWriter(a.Config.Kafka.Brokers, a.Config.Kafka.NotifyTopic)
		senders = append(senders, notify.NewKafkaSender(writer))
		closers = append(closers, func() {
			if err := writer.Close(); err != nil {
				a.Logger.WithError(err).Warn("close kafka writer")
			}
		})
	}

	closeFn := func() {
		for _, c := range closers {
			c()
		}
	}

	switch len(senders) {
	case 0:
		return notify.NewLogSender(a.Logger), closeFn
	case 1:
		return senders[0], closeFn
	default:
		return senders, closeFn
	}
}

func initUOW(conn *pgxpool.Pool, conf *config.Config) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn, uow.WithLockTimeout(conf.DBLockTimeout))

	repos := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.WalletRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewWalletRepository(dbtx)
		},
		repoargs.TransactionRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewTransactionRepository(dbtx)
		},
		repoargs.DepositRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewDepositRepository(dbtx)
		},
		repoargs.RateRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewRateRepository(dbtx)
		},
		repoargs.KYCRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewKYCRepository(dbtx)
		},
	}

	for name, factory := range repos {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}
	return unitOfWork, nil
}
