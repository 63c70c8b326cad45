// cmd/marchctl/main.go
package main

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/marchkeep/marchkeep/internal/billing"
	"github.com/marchkeep/marchkeep/internal/config"
	"github.com/marchkeep/marchkeep/internal/repository"
	"github.com/marchkeep/marchkeep/internal/service"
)

var (
	verbose bool

	inviteCode    string
	inviteSchool  string
	inviteEmail   string
	inviteTTLDays int

	resyncBatchSize int
	resyncDryRun    bool
	resyncTimeout   time.Duration
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	inviteCreateCmd.Flags().StringVar(&inviteCode, "code", "", "Invite code (generated when empty)")
	inviteCreateCmd.Flags().StringVar(&inviteSchool, "school", "", "School name the invite is for")
	inviteCreateCmd.Flags().StringVar(&inviteEmail, "email", "", "Director email the invite is for")
	inviteCreateCmd.Flags().IntVar(&inviteTTLDays, "ttl-days", 30, "Days until the code expires")
	inviteCreateCmd.MarkFlagRequired("school")
	inviteCreateCmd.MarkFlagRequired("email")

	resyncCmd.Flags().IntVar(&resyncBatchSize, "batch-size", 100, "Number of snapshots to refresh in a batch")
	resyncCmd.Flags().BoolVar(&resyncDryRun, "dry-run", false, "Print what would be synced without syncing")
	resyncCmd.Flags().DurationVar(&resyncTimeout, "timeout", 30*time.Minute, "Maximum time to run the resync")

	inviteCmd.AddCommand(inviteCreateCmd)
	inviteCmd.AddCommand(inviteListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(inviteCmd)
	rootCmd.AddCommand(resyncCmd)
}

var rootCmd = &cobra.Command{
	Use:   "marchctl",
	Short: "marchctl is the MarchKeep operations CLI",
	Long:  `marchctl runs schema migrations, manages school invite codes, and resyncs payment snapshots.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Long:  `Run GORM auto-migration for all application tables.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		if err := repository.Migrate(db); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		fmt.Println("Schema migrated successfully")
	},
}

var inviteCmd = &cobra.Command{
	Use:   "invite",
	Short: "Manage school invite codes",
}

var inviteCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Issue a new invite code",
	Long:  `Issue a single-use invite code a prospective school needs to create its site.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		inviteRepo := repository.NewInviteCodeRepository(db)
		svc := service.NewTenantService(
			repository.NewTenantRepository(db),
			repository.NewMembershipRepository(db),
			inviteRepo,
			nil, nil, nil,
			slog.Default(),
		)

		code := inviteCode
		if code == "" {
			code = generateInviteCode()
		}

		ttl := time.Duration(inviteTTLDays) * 24 * time.Hour
		invite, err := svc.CreateInviteCode(context.Background(), code, inviteSchool, inviteEmail, ttl)
		if err != nil {
			log.Fatalf("Failed to create invite code: %v", err)
		}

		fmt.Printf("Created invite code %s for %s (%s), expires %s\n",
			invite.Code, invite.SchoolName, invite.DirectorEmail,
			invite.ExpiresAt.Format(time.RFC3339))
	},
}

var inviteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invite codes",
	Run: func(cmd *cobra.Command, args []string) {
		db := mustOpenDB()
		inviteRepo := repository.NewInviteCodeRepository(db)

		invites, err := inviteRepo.FindAll(context.Background())
		if err != nil {
			log.Fatalf("Failed to list invite codes: %v", err)
		}

		for _, invite := range invites {
			state := "unused"
			if invite.Used {
				state = "used"
			} else if invite.Expired(time.Now()) {
				state = "expired"
			}
			fmt.Printf("%-20s %-30s %-30s %-8s expires %s\n",
				invite.Code, invite.SchoolName, invite.DirectorEmail, state,
				invite.ExpiresAt.Format("2006-01-02"))
		}
		fmt.Printf("%d invite codes\n", len(invites))
	},
}

var resyncCmd = &cobra.Command{
	Use:   "resync",
	Short: "Re-sync stale payment snapshots",
	Long:  `Run a one-time reconciliation pass over stale payment snapshots.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := mustOpenDB()

		slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))

		userRepo := repository.NewUserRepository(db)
		enrollmentRepo := repository.NewEnrollmentRepository(db)
		studentRepo := repository.NewStudentRepository(db)
		cacheRepo := repository.NewStripeCacheRepository(db)

		billingClient := billing.NewClient(cfg.Stripe.SecretKey)
		syncService := service.NewSyncService(userRepo, enrollmentRepo, studentRepo, cacheRepo, billingClient, slogger)

		reconciler := service.NewReconciliationService(userRepo, cacheRepo, syncService, 0, slogger)
		reconciler.SetBatchSize(resyncBatchSize)
		reconciler.SetDryRun(resyncDryRun)

		ctx, cancel := context.WithTimeout(context.Background(), resyncTimeout)
		defer cancel()

		if err := reconciler.ReconcileAll(ctx); err != nil {
			log.Fatalf("Resync failed: %v", err)
		}
		fmt.Println("Resync completed")
	},
}

// generateInviteCode builds a human-readable code like BAND-2026-7KQ3 using
// an alphabet without ambiguous characters.
func generateInviteCode() string {
	const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("Failed to generate invite code: %v", err)
	}
	suffix := make([]byte, 4)
	for i, b := range buf {
		suffix[i] = alphabet[int(b)%len(alphabet)]
	}
	return fmt.Sprintf("BAND-%d-%s", time.Now().Year(), suffix)
}

func mustOpenDB() *gorm.DB {
	cfg := config.Load()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	logLevel := logger.Warn
	if verbose {
		logLevel = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
