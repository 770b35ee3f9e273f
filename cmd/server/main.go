package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/api-sage/bank-back-office/internal/adapter/http/controller"
	"github.com/api-sage/bank-back-office/internal/adapter/http/middleware"
	"github.com/api-sage/bank-back-office/internal/adapter/http/router"
	"github.com/api-sage/bank-back-office/internal/adapter/repository/memory"
	"github.com/api-sage/bank-back-office/internal/adapter/repository/postgres"
	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/config"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/api-sage/bank-back-office/internal/notifier"
	"github.com/api-sage/bank-back-office/internal/usecase/services"
)

type repositories struct {
	customers     repo_interfaces.CustomerRepository
	documentTypes repo_interfaces.DocumentTypeRepository
	accounts      repo_interfaces.AccountRepository
	accountTypes  repo_interfaces.AccountTypeRepository
	transfers     repo_interfaces.TransferRepository
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	changeNotifier := notifier.New(cfg.NotifierBuffer)

	repos, err := buildRepositories(ctx, cfg, changeNotifier)
	if err != nil {
		log.Fatalf("build repositories: %v", err)
	}

	guard := services.NewDeletionGuard(repos.accounts)
	customerService := services.NewCustomerService(repos.customers, repos.documentTypes, guard)
	accountService := services.NewAccountService(repos.accounts, repos.accountTypes, repos.customers, guard)
	transferService := services.NewTransferService(repos.transfers, repos.accounts, guard)
	securityService := services.NewSecurityService(customerService, accountService, cfg.JWTSigningKey, cfg.JWTTokenTTL)

	handler := router.New(
		middleware.JWTAuth(securityService),
		controller.NewCustomerController(customerService),
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
		controller.NewSecurityController(securityService),
	)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("http server starting", logger.Fields{
			"addr":          cfg.Addr,
			"storageDriver": cfg.StorageDriver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		if err := changeNotifier.Run(groupCtx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
	logger.Info("server stopped", nil)
}

func buildRepositories(ctx context.Context, cfg config.Config, changeNotifier *notifier.ChangeNotifier) (repositories, error) {
	if cfg.StorageDriver == "postgres" {
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return repositories{}, err
		}
		if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			return repositories{}, err
		}
		return repositories{
			customers:     postgres.NewCustomerRepository(db, changeNotifier),
			documentTypes: postgres.NewDocumentTypeRepository(db, changeNotifier),
			accounts:      postgres.NewAccountRepository(db, changeNotifier),
			accountTypes:  postgres.NewAccountTypeRepository(db, changeNotifier),
			transfers:     postgres.NewTransferRepository(db, changeNotifier),
		}, nil
	}

	return repositories{
		customers:     memory.NewCustomerRepository(changeNotifier),
		documentTypes: memory.NewDocumentTypeRepository(changeNotifier),
		accounts:      memory.NewAccountRepository(changeNotifier),
		accountTypes:  memory.NewAccountTypeRepository(changeNotifier),
		transfers:     memory.NewTransferRepository(changeNotifier),
	}, nil
}
