package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"

	"github.com/godilite/catalyst360/internal/config"
	"github.com/godilite/catalyst360/internal/framework"
	"github.com/godilite/catalyst360/internal/repository"
	"github.com/godilite/catalyst360/internal/repository/models"
	"github.com/godilite/catalyst360/internal/service"
	dbbuilder "github.com/godilite/catalyst360/pkg/database"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// demoPanel is one leader's nominated raters. Peers and Others stay below the
// anonymity threshold so the demo shows folding.
var demoPanel = []struct {
	relationship string
	count        int
}{
	{"Self", 1},
	{"Boss", 1},
	{"Peers", 2},
	{"DRs", 4},
	{"Others", 1},
}

var demoComments = map[string][]string{
	"strengths":   {"Keeps the team focused when things get busy", "Always makes time to listen", "Clear about priorities"},
	"development": {"Could delegate more of the day-to-day", "Share decisions earlier", "More regular one-to-ones"},
}

func main() {
	_ = godotenv.Load(".env")

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	dsn := cfg.DBPath
	if cfg.DBDriver == "sqlite3" {
		dsn = dbbuilder.SQLiteDSN(dsn)
	}
	db, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(dsn),
		dbbuilder.WithInit(repository.Migrate),
	)
	if err != nil {
		logger.Fatal("Database init failed", zap.Error(err))
	}
	defer db.Close()

	repo := repository.NewFeedbackRepository(db)
	feedback := service.NewFeedbackService(repo, framework.Default(), cfg.Policy(), logger)

	if err := seed(context.Background(), repo, feedback, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}
}

func seed(ctx context.Context, repo *repository.FeedbackRepository, feedback *service.FeedbackService, logger *zap.Logger) error {
	leaders, err := repo.ListLeaders(ctx)
	if err != nil {
		return err
	}
	if len(leaders) > 0 {
		logger.Info("database already has leaders, skipping seed", zap.Int("leaders", len(leaders)))
		return nil
	}

	leaderID, err := repo.AddLeader(ctx, models.Leader{
		Name:       "Demo Leader",
		Email:      "demo.leader@example.com",
		Dealership: "Demo Dealership",
		Cohort:     "Demo Cohort",
	})
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(42))
	fw := feedback.Framework()
	submitted := 0

	for _, group := range demoPanel {
		for i := 0; i < group.count; i++ {
			_, token, err := repo.AddRater(ctx, models.Rater{
				LeaderID:     leaderID,
				Name:         fmt.Sprintf("%s %d", group.relationship, i+1),
				Relationship: group.relationship,
			})
			if err != nil {
				return err
			}

			sub := service.RawSubmission{
				Token:    token,
				Ratings:  make(map[int]string, len(fw.Items())),
				Comments: make(map[string]string),
			}
			for _, item := range fw.Items() {
				if rng.Intn(20) == 0 {
					sub.Ratings[item] = "NO"
					continue
				}
				sub.Ratings[item] = strconv.Itoa(2 + rng.Intn(4))
			}
			for section, texts := range demoComments {
				sub.Comments[section] = texts[rng.Intn(len(texts))]
			}

			if _, err := feedback.SubmitFeedback(ctx, sub); err != nil {
				return fmt.Errorf("submit %s rater: %w", group.relationship, err)
			}
			submitted++
		}
	}

	logger.Info("demo data loaded", zap.Int64("leader_id", leaderID), zap.Int("submissions", submitted))
	return nil
}
