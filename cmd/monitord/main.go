package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/jakejarvis/domainstack.io-sub006/internal/blob"
	"github.com/jakejarvis/domainstack.io-sub006/internal/config"
	"github.com/jakejarvis/domainstack.io-sub006/internal/doh"
	"github.com/jakejarvis/domainstack.io-sub006/internal/lookup"
	"github.com/jakejarvis/domainstack.io-sub006/internal/metrics"
	"github.com/jakejarvis/domainstack.io-sub006/internal/netguard"
	"github.com/jakejarvis/domainstack.io-sub006/internal/notify"
	"github.com/jakejarvis/domainstack.io-sub006/internal/providers"
	"github.com/jakejarvis/domainstack.io-sub006/internal/scheduler"
	"github.com/jakejarvis/domainstack.io-sub006/internal/storage/postgres"
	"github.com/jakejarvis/domainstack.io-sub006/internal/workflow"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	broker, err := notify.NewBroker(notify.BrokerConfig{
		URL:        cfg.RabbitMQ.URL,
		Exchange:   cfg.RabbitMQ.Exchange,
		RoutingKey: cfg.RabbitMQ.RoutingKey,
		QueueName:  cfg.RabbitMQ.QueueName,
	}, logger)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", "error", err)
		os.Exit(1)
	}
	defer broker.Close()

	blobs, err := blob.NewStore(blob.Config{
		Endpoint:      cfg.Blob.Endpoint,
		AccessKey:     cfg.Blob.AccessKey,
		SecretKey:     cfg.Blob.SecretKey,
		Bucket:        cfg.Blob.Bucket,
		UseSSL:        cfg.Blob.UseSSL,
		PublicBaseURL: cfg.Blob.PublicBaseURL,
	}, logger)
	if err != nil {
		logger.Error("failed to create blob store", "error", err)
		os.Exit(1)
	}
	if err := blobs.EnsureBucket(context.Background()); err != nil {
		logger.Error("failed to ensure blob bucket", "error", err)
		os.Exit(1)
	}

	// Stores
	tm := postgres.NewTransactionManager(db)
	domainStore := postgres.NewDomainStore(db)
	providerStore := postgres.NewProviderStore(db, logger)
	registrationStore := postgres.NewRegistrationStore(db)
	dnsStore := postgres.NewDNSStore(db, tm)
	certStore := postgres.NewCertificateStore(db, tm)
	headerStore := postgres.NewHeaderStore(db)
	seoStore := postgres.NewSEOStore(db)
	faviconStore := postgres.NewFaviconStore(db)
	trackedStore := postgres.NewTrackedStore(db)
	snapshotStore := postgres.NewSnapshotStore(db)
	notificationStore := postgres.NewNotificationStore(db)

	// Resolution and fetching
	dohProviders := make([]doh.Provider, 0, len(cfg.DoH.Providers))
	for _, p := range cfg.DoH.Providers {
		dohProviders = append(dohProviders, doh.Provider{Name: p.Name, URL: p.URL})
	}
	resolver := doh.New(dohProviders, cfg.DoH.Timeout, logger)
	fetch := netguard.NewClient(resolver, logger)

	// Provider attribution
	catalog := providers.NewRedisCatalog(redisClient, cfg.Catalog.CacheTTL, logger)
	detector := providers.NewDetector(catalog, providerStore, logger)

	// Lookup steps
	registrationLookup := lookup.NewRegistrationClient(fetch, detector, cfg.Lookup.RegistrationTimeout, logger)
	dnsLookup := lookup.NewDNSClient(resolver)
	certLookup := lookup.NewCertificateClient(resolver, cfg.Lookup.CertificateTimeout)
	headersLookup := lookup.NewHeadersClient(fetch, cfg.Lookup.HeadersTimeout)
	seoLookup := lookup.NewSEOClient(fetch, cfg.Lookup.SEOTimeout, logger)
	faviconLookup := lookup.NewFaviconClient(fetch, cfg.Lookup.FaviconTimeout)

	m := metrics.NewMetrics()

	runner := workflow.NewRunner(workflow.RetryPolicy{
		MaxAttempts:    cfg.Lookup.Retry.MaxAttempts,
		InitialBackoff: cfg.Lookup.Retry.InitialBackoff,
		MaxBackoff:     cfg.Lookup.Retry.MaxBackoff,
	}, logger)

	reportService := workflow.NewReportService(workflow.ReportDeps{
		Domains:       domainStore,
		Registrations: registrationStore,
		DNS:           dnsStore,
		Certificates:  certStore,
		Headers:       headerStore,
		SEO:           seoStore,
		Favicons:      faviconStore,

		RegistrationLookup: registrationLookup,
		DNSLookup:          dnsLookup,
		CertLookup:         certLookup,
		HeadersLookup:      headersLookup,
		SEOLookup:          seoLookup,
		FaviconLookup:      faviconLookup,

		Detector: detector,
		Fetch:    fetch,
		Blobs:    blobs,
	}, runner, m, logger)

	mailer := notify.NewMailer(notify.MailerConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		FromName: cfg.SMTP.FromName,
	}, logger)

	notifyService := notify.NewService(
		notificationStore,
		broker,
		mailer,
		notify.StaticAddressBook(cfg.SMTP.Recipients),
		logger,
	)

	monitor := workflow.NewMonitorService(
		trackedStore,
		snapshotStore,
		reportService,
		notifyService,
		m,
		logger,
		workflow.MonitorConfig{
			Interval:    cfg.Monitor.Interval,
			BatchSize:   cfg.Monitor.BatchSize,
			Concurrency: cfg.Monitor.Concurrency,
		},
	)

	sched := scheduler.NewScheduler(monitor, cfg.Monitor.Tick, cfg.Monitor.PassTimeout, logger)

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		logger.Info("metrics listening", "addr", cfg.Metrics.Addr)
		if err := http.ListenAndServe(cfg.Metrics.Addr, mux); err != nil {
			logger.Error("metrics server error", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting domain monitor",
		"monitor_interval", cfg.Monitor.Interval,
		"tick", cfg.Monitor.Tick,
		"batch_size", cfg.Monitor.BatchSize,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
