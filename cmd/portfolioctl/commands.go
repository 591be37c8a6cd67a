package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/personalweb/portfolio-backend/config"
	"github.com/personalweb/portfolio-backend/internal/backup"
	"github.com/personalweb/portfolio-backend/internal/bootstrap"
	"github.com/personalweb/portfolio-backend/internal/logging"
	"github.com/personalweb/portfolio-backend/internal/portfolio/codec"
)

var errRemoteSource = errors.New("command needs PORTFOLIO_SOURCE=local")

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Replace every collection with a seed",
	Long: `Replace all five collections and write them to the backing store.
Without --file the built-in defaults are used.`,
	RunE: runSeed,
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a YAML snapshot of every collection",
	RunE:  runExport,
}

var flushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Rewrite every readable collection to the backing store",
	RunE:  runFlush,
}

func init() {
	seedCmd.Flags().StringP("file", "f", "", "YAML seed file")
	exportCmd.Flags().StringP("out", "o", "", "output file (default stdout)")
}

// openApp loads config and wires the store without flushing on exit.
func openApp(ctx context.Context) (*bootstrap.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cfg.Store.FlushOnShutdown = false

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg, logger.Named("portfolioctl"))
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path, _ := cmd.Flags().GetString("file")

	seed := codec.DefaultSeed()
	if path != "" {
		s, err := codec.LoadSeedFile(path)
		if err != nil {
			return err
		}
		seed = s
	}

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())

	if app.Store == nil {
		return errRemoteSource
	}
	if err := app.Store.ReplaceAll(ctx, seed); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	app.Logger.Info("collections seeded",
		zap.Int("projects", len(seed.Projects)),
		zap.Int("skills", len(seed.Skills)),
		zap.Int("experiences", len(seed.Experiences)),
		zap.Int("messages", len(seed.Messages)),
		zap.Int("categories", len(seed.Categories)),
	)
	return nil
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out, _ := cmd.Flags().GetString("out")

	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())

	seed, err := backup.FacadeSnapshot(app.Facade)(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	var w io.Writer = cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return codec.WriteSeed(w, seed)
}

func runFlush(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	app, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer app.Shutdown(context.Background())

	if app.Store == nil {
		return errRemoteSource
	}
	return app.Store.Rewrite(ctx)
}
