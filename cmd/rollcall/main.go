package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yourusername/rollcall/internal/repository"
	"github.com/yourusername/rollcall/internal/service"
	"github.com/yourusername/rollcall/pkg/utils"
)

// Developer harness: opens the local store, runs migrations and dumps
// today's resolved schedule plus per-subject percentages. The app itself
// consumes the service in-process.
func main() {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.TimeKey = "timestamp"

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Errorf("init logger: %w", err))
	}
	defer logger.Sync()

	zap.ReplaceGlobals(logger)

	if err := godotenv.Load(); err != nil {
		zap.S().Debug("load .env file", zap.Error(err))
	}

	dbPath := os.Getenv("ROLLCALL_DB_PATH")
	if dbPath == "" {
		dbPath = "rollcall.db"
	}

	repo, err := repository.NewDB(dbPath)
	if err != nil {
		zap.S().Error("open store", zap.Error(err), zap.String("path", dbPath))
		os.Exit(1)
	}
	defer repo.Close()

	if err = repo.Migrate(); err != nil {
		zap.S().Error("run migrations", zap.Error(err))
		os.Exit(1)
	}

	zap.S().Info("store ready", zap.String("path", dbPath))

	ctx := context.Background()
	svc := service.NewService(repo)

	user, err := svc.GetUser(ctx)
	if err != nil {
		zap.S().Error("get user", zap.Error(err))
		os.Exit(1)
	}
	if user == nil {
		zap.S().Info("no profile yet; nothing to report")
		return
	}

	zap.S().Infow("profile",
		"name", user.Name,
		"min_attendance", user.MinAttendance,
		"created_at", utils.DayString(user.CreatedAt),
	)

	today := utils.Today()
	instances, err := svc.ResolveDay(ctx, today)
	if err != nil {
		zap.S().Error("resolve day", zap.Error(err), zap.String("date", today))
		os.Exit(1)
	}
	for _, inst := range instances {
		zap.S().Infow("class today",
			"key", inst.Key(),
			"subject_id", inst.SubjectID,
			"start", inst.StartTime,
			"end", inst.EndTime,
		)
	}

	subjects, err := svc.GetSubjects(ctx)
	if err != nil {
		zap.S().Error("get subjects", zap.Error(err))
		os.Exit(1)
	}
	for _, subject := range subjects {
		zap.S().Infow("subject",
			"name", subject.Name,
			"attended", subject.AttendedClasses,
			"total", subject.TotalClasses,
			"percentage", service.ComputePercentage(subject),
		)
	}
}
