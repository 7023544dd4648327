package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/basispoort/basispoort-sync-client/hostedlika"
	"github.com/basispoort/basispoort-sync-client/institutions"
	"github.com/basispoort/basispoort-sync-client/internal/config"
	"github.com/basispoort/basispoort-sync-client/internal/logger"
	"github.com/basispoort/basispoort-sync-client/rest"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("bpsync", zerolog.InfoLevel).Fatal().Err(err).Msg("error getting configs")
	}
	log := logger.NewLogger("bpsync", cfg.LogLevel)

	client, err := rest.NewClientBuilder(cfg.IdentityCertFile, cfg.Environment).
		ConnectTimeout(cfg.ConnectTimeout).
		Timeout(cfg.RequestTimeout).
		Logger(log.Logger).
		Build()
	if err != nil {
		log.Fatal().Err(err).Msg("error building Basispoort client")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, client, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("bpsync run error")
	}
}

// run walks the institutions directory and, when a license provider identity
// is configured, the Hosted Lika catalog.
func run(ctx context.Context, client *rest.Client, cfg *config.Config, log *logger.Logger) error {
	directory := institutions.NewClient(client)

	ids, err := directory.InstitutionIDs(ctx)
	if err != nil {
		return fmt.Errorf("list institutions: %w", err)
	}
	log.Info().Int("count", len(ids)).Msg("institutions visible to this identity")

	for _, id := range ids {
		details, err := directory.Details(ctx, id)
		if err != nil {
			return fmt.Errorf("institution %d details: %w", id, err)
		}
		log.Info().
			Int64("id", id).
			Str("name", details.Name).
			Str("brin_code", details.BrinCode).
			Bool("active", details.Active).
			Msg("institution")
	}

	if err := reportPermissionMutations(ctx, directory, log); err != nil {
		return err
	}

	if cfg.HostedLikaIdentityCode != "" {
		if err := reportHostedMethods(ctx, client, cfg.HostedLikaIdentityCode, log); err != nil {
			return err
		}
	}
	return nil
}

func reportPermissionMutations(ctx context.Context, directory *institutions.Client, log *logger.Logger) error {
	today := time.Now()

	granted, err := directory.SynchronizationPermissionsGranted(ctx, today)
	if err != nil {
		return fmt.Errorf("permissions granted today: %w", err)
	}
	revoked, err := directory.SynchronizationPermissionsRevoked(ctx, today)
	if err != nil {
		return fmt.Errorf("permissions revoked today: %w", err)
	}

	log.Info().
		Ints64("granted", granted).
		Ints64("revoked", revoked).
		Msg("synchronization permission mutations today")
	return nil
}

func reportHostedMethods(ctx context.Context, client *rest.Client, identityCode string, log *logger.Logger) error {
	lika := hostedlika.NewClient(client, identityCode)

	methods, err := lika.Methods(ctx)
	if err != nil {
		return fmt.Errorf("list hosted methods: %w", err)
	}
	for _, method := range methods {
		log.Info().
			Str("method_id", method.ID).
			Str("name", method.Name).
			Msg("hosted method")
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
