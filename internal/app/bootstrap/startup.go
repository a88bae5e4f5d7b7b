// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	collegestore "github.com/dalemusser/campushub/internal/app/store/colleges"
	"github.com/dalemusser/campushub/internal/app/system/csvutil"
	"github.com/dalemusser/campushub/internal/app/system/timeouts"
)

// Startup runs app-specific initialization after the database is
// connected and the schema is ensured.
//
// If colleges_csv_path is configured, the referenced CSV is imported
// before the server starts accepting requests. The import is idempotent
// (upsert by name), so re-running it against a seeded database is safe.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if n := timeouts.ConfigureFromEnv(); n > 0 {
		logger.Info("operation timeouts overridden from environment", zap.Int("overrides", n))
	}

	if appCfg.CollegesCSVPath == "" {
		return nil
	}
	return importColleges(ctx, appCfg.CollegesCSVPath, collegestore.New(deps.MongoDatabase), logger)
}

func importColleges(ctx context.Context, path string, colleges *collegestore.Store, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	rows, rowErrs, err := csvutil.PreScanCollegesCSV(f)
	if err != nil {
		return err
	}
	for _, re := range rowErrs {
		logger.Warn("skipping college CSV row",
			zap.String("path", path),
			zap.Int("line", re.Line),
			zap.String("reason", re.Reason))
	}

	batchCtx, cancel := context.WithTimeout(ctx, timeouts.Batch())
	defer cancel()

	imported := 0
	for _, row := range rows {
		if err := colleges.UpsertByName(batchCtx, row.Name, row.Location); err != nil {
			logger.Warn("failed to import college",
				zap.String("name", row.Name),
				zap.Error(err))
			continue
		}
		imported++
	}

	logger.Info("imported colleges from CSV",
		zap.String("path", path),
		zap.Int("imported", imported),
		zap.Int("skipped", len(rowErrs)))
	return nil
}
