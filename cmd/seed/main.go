package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Dosada05/championship/brackets"
	"github.com/Dosada05/championship/config"
	"github.com/Dosada05/championship/db"
	"github.com/Dosada05/championship/repositories"
	"github.com/Dosada05/championship/services"
	"github.com/Dosada05/championship/utils"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const (
	formatRoundRobin = "round-robin"
	formatKnockout   = "knockout"
)

func main() {
	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var databaseURL string
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Championship database maintenance",
	}
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "Postgres connection string")

	var rosterPath string
	playersCmd := &cobra.Command{
		Use:          "players",
		Short:        "Register the players from a roster file, or the built-in sample roster",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(rosterPath)
			if err != nil {
				return err
			}
			return withRepository(ctx, databaseURL, func(repo repositories.PlayerRepository) error {
				return runPlayers(ctx, cmd.OutOrStdout(), repo, inputs, logger)
			})
		},
	}
	playersCmd.Flags().StringVarP(&rosterPath, "file", "f", "", "YAML roster file (default: built-in sample)")

	clearCmd := &cobra.Command{
		Use:          "clear",
		Short:        "Delete every registered player",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRepository(ctx, databaseURL, func(repo repositories.PlayerRepository) error {
				deleted, err := repo.DeleteAll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d players\n", deleted)
				return nil
			})
		},
	}

	var (
		format     string
		outputPath string
		legs       int
		seed       int64
	)
	scheduleCmd := &cobra.Command{
		Use:          "schedule",
		Short:        "Export the current schedule to an Excel workbook",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatRoundRobin && format != formatKnockout {
				return fmt.Errorf("unknown format %q, expected %s or %s", format, formatRoundRobin, formatKnockout)
			}
			if legs != 1 && legs != 2 {
				return fmt.Errorf("legs must be 1 or 2, got %d", legs)
			}
			var seedPtr *uint64
			if cmd.Flags().Changed("seed") {
				if seed < 0 {
					return fmt.Errorf("seed must be non-negative, got %d", seed)
				}
				v := uint64(seed)
				seedPtr = &v
			}
			return withRepository(ctx, databaseURL, func(repo repositories.PlayerRepository) error {
				return runSchedule(ctx, repo, format, legs, seedPtr, outputPath, logger)
			})
		},
	}
	scheduleCmd.Flags().StringVar(&format, "format", formatRoundRobin, "round-robin or knockout")
	scheduleCmd.Flags().StringVarP(&outputPath, "output", "o", "schedule.xlsx", "Output Excel file path")
	scheduleCmd.Flags().IntVar(&legs, "legs", 1, "Round-robin legs (1 or 2)")
	scheduleCmd.Flags().Int64Var(&seed, "seed", 0, "Knockout shuffle seed")

	hashCmd := &cobra.Command{
		Use:          "hash-password <password>",
		Short:        "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.HashPassword(args[0])
			if err != nil {
				return fmt.Errorf("hashing password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	rootCmd.AddCommand(playersCmd, clearCmd, scheduleCmd, hashCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func readInputs(path string) ([]services.RegisterPlayerInput, error) {
	if path == "" {
		return sampleInputs(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close()
	return loadRoster(f)
}

func withRepository(ctx context.Context, databaseURL string, fn func(repositories.PlayerRepository) error) error {
	if strings.TrimSpace(databaseURL) == "" {
		return errors.New("DATABASE_URL is not set; pass --database-url")
	}
	conn, err := db.Connect(databaseURL, 5*time.Second)
	if err != nil {
		return err
	}
	defer func(conn *sql.DB) { _ = conn.Close() }(conn)

	if err := db.EnsureSchema(ctx, conn); err != nil {
		return err
	}
	return fn(repositories.NewPostgresPlayerRepository(conn))
}

// runPlayers registers inputs through the regular registration path. Welcome
// emails are only logged. Already registered addresses are skipped.
func runPlayers(ctx context.Context, out io.Writer, repo repositories.PlayerRepository, inputs []services.RegisterPlayerInput, logger *slog.Logger) error {
	svc := services.NewPlayerService(
		repo,
		services.NewCodeGenerator(repo.ExistsByCode),
		services.NewMailer(config.SMTPConfig{}, "", logger),
		brackets.NewHub(logger),
		logger,
	)
	defer svc.Wait()

	inserted, skipped := 0, 0
	for _, input := range inputs {
		player, err := svc.Register(ctx, input)
		switch {
		case errors.Is(err, services.ErrPlayerEmailConflict):
			fmt.Fprintf(out, "Player with email %s already exists, skipping\n", input.Email)
			skipped++
			continue
		case err != nil:
			return fmt.Errorf("registering %s: %w", input.Email, err)
		}
		fmt.Fprintf(out, "Inserted: %s - %s (%s)\n", player.FullName(), player.Club, player.League)
		inserted++
	}

	all, err := repo.ListAll(ctx)
	if err != nil {
		return err
	}
	clubs := make(map[string]bool)
	for _, p := range all {
		clubs[p.Club] = true
	}
	fmt.Fprintf(out, "Inserted %d, skipped %d. Total players: %d, unique clubs: %d\n", inserted, skipped, len(all), len(clubs))
	return nil
}

func runSchedule(ctx context.Context, repo repositories.PlayerRepository, format string, legs int, seed *uint64, outputPath string, logger *slog.Logger) (err error) {
	svc := services.NewScheduleService(repo, nil, brackets.NewHub(logger), logger)

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	switch format {
	case formatKnockout:
		err = svc.ExportKnockout(ctx, seed, f)
	default:
		err = svc.ExportPairings(ctx, services.PairingsOptions{Legs: legs}, f)
	}
	if err != nil {
		return err
	}
	logger.Info("schedule exported", slog.String("format", format), slog.String("path", outputPath))
	return nil
}
