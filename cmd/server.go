package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"coinledger/internal/config"
	"coinledger/internal/daemon"
	"coinledger/internal/db"
	"coinledger/internal/http/handler"
	"coinledger/internal/http/handler/middleware"
	"coinledger/internal/http/payload"
	"coinledger/internal/http/server"
	"coinledger/internal/ledger"
	"coinledger/internal/metrics"
	"coinledger/internal/mutex"
	"coinledger/internal/notify"
	"coinledger/internal/repository"
	"coinledger/internal/settings"
	"coinledger/internal/worker"
	"coinledger/pkg/jwt"
	"coinledger/pkg/log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const notifyTimeout = 10 * time.Second

type flags struct {
	issueToken bool
	subject    string
	scope      string
	ttl        time.Duration
}

func parseFlags(args []string) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("coinledger", flag.ContinueOnError)
	fs.BoolVar(&f.issueToken, "issue-token", false, "print a signed API token and exit")
	fs.StringVar(&f.subject, "subject", "", "token subject (owner id)")
	fs.StringVar(&f.scope, "scope", "", "token scope, \"admin\" for operator routes")
	fs.DurationVar(&f.ttl, "ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	return f, nil
}

func Start() error {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}

	cfg, err := config.NewApp()
	if err != nil {
		log.NewZapLogger("coinledger", log.ParseLevel("info")).Errorw("failed to create config", "error", err)
		return err
	}

	logger := log.NewZapLogger("coinledger", log.ParseLevel(cfg.LogLevel))

	// jwt service
	jwtService := jwt.NewJWTService([]byte(cfg.JWTSecret))

	if f.issueToken {
		return issueToken(jwtService, f)
	}

	dbConn, err := db.NewPostgresDB(cfg.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}
	defer dbConn.Close()

	// repository
	repo := repository.NewRepository(dbConn)

	ctx := context.Background()
	if err = repo.MigrateAndSeed(ctx, settings.Defaults(cfg.Defaults)); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	daemonCfg := daemon.Config{
		URL:           cfg.Daemon.URL,
		User:          cfg.Daemon.User,
		Password:      cfg.Daemon.Password,
		AddressPrefix: cfg.Daemon.AddressPrefix,
		RPS:           cfg.Daemon.RPS,
		Timeout:       cfg.Daemon.Timeout,
		FallbackFee:   cfg.Daemon.FallbackFee,
	}
	rpcClient, err := daemon.Dial(ctx, daemonCfg)
	if err != nil {
		logger.Errorw("wallet daemon connection failed", "error", err)
		return err
	}
	defer rpcClient.Close()

	daemonClient := daemon.NewClient(logger, rpcClient, daemonCfg)
	locker := mutex.NewKeyed()
	store := settings.New(repo)

	// ledger
	addresses := ledger.NewAddressLedger(logger, repo, daemonClient, locker)
	transactions := ledger.NewTransactionLedger(
		logger,
		repo,
		addresses,
		daemonClient,
		locker,
		store,
		cfg.FeeSafetyFactor)

	// workers
	m := metrics.New(prometheus.DefaultRegisterer)
	notifier := notify.New(logger, notifyTimeout)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Warnw("failed to close notifier", "error", err)
		}
	}()

	observer := worker.NewRunner(logger, "observer",
		worker.NewObserver(logger, daemonClient, transactions, store, m),
		cfg.Workers.ObserverInterval, m)
	pool := worker.NewRunner(logger, "pool",
		worker.NewPoolMaintainer(logger, daemonClient, addresses, store, m),
		cfg.Workers.PoolInterval, m)
	dispatcher := worker.NewRunner(logger, "dispatcher",
		worker.NewDispatcher(logger, transactions, notifier, store, m),
		cfg.Workers.DispatcherInterval, m)

	workerCtx, stopWorkers := context.WithCancel(ctx)
	var wg sync.WaitGroup
	for _, r := range []*worker.Runner{observer, pool, dispatcher} {
		wg.Add(1)
		go func(r *worker.Runner) {
			defer wg.Done()
			r.Start(workerCtx)
		}(r)
	}
	defer func() {
		stopWorkers()
		wg.Wait()
	}()

	// handler
	walletHlr := handler.NewWalletHandler(
		logger,
		payload.DecodeValidator{},
		addresses,
		transactions,
		pool)

	auth := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	api := http.NewServeMux()
	api.HandleFunc(handler.ListAddresses, walletHlr.HandleListAddresses)
	api.HandleFunc(handler.GetAddress, walletHlr.HandleGetAddress)
	api.HandleFunc(handler.GetAddressBalance, walletHlr.HandleGetAddressBalance)
	api.HandleFunc(handler.CreateOwnerAddress, walletHlr.HandleCreateOwnerAddress)
	api.HandleFunc(handler.ListOwnerAddresses, walletHlr.HandleListOwnerAddresses)
	api.HandleFunc(handler.GetOwnerAddress, walletHlr.HandleGetAddress)
	api.HandleFunc(handler.GetOwnerAddressBalance, walletHlr.HandleGetAddressBalance)
	api.HandleFunc(handler.DisableOwnerAddress, walletHlr.HandleDisableOwnerAddress)
	api.HandleFunc(handler.CreateOwnerTransaction, walletHlr.HandleCreateOwnerTransaction)
	api.HandleFunc(handler.ListOwnerTransactions, walletHlr.HandleListOwnerTransactions)
	api.HandleFunc(handler.ListTransactionRequests, walletHlr.HandleListTransactionRequests)
	api.Handle(handler.ReconcileTransaction,
		auth.RequireScope(middleware.ScopeAdmin, http.HandlerFunc(walletHlr.HandleReconcileTransaction)))

	// middleware
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/", auth.Authenticate(api))
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func issueToken(service *jwt.JWTService, f flags) error {
	if f.subject == "" {
		return errors.New("issue token: -subject is required")
	}

	token, err := service.Issue(jwt.TokenInfo{
		Subject:    f.subject,
		Scope:      f.scope,
		Expiration: f.ttl,
	})
	if err != nil {
		return fmt.Errorf("issue token: %w", err)
	}

	fmt.Println(token)
	return nil
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}
