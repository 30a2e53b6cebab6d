package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/gw-job-board/internal/logger"
)

//go:embed sql/*.sql
var FS embed.FS

// Dir is the directory inside FS holding the migration files.
const Dir = "sql"

// gooseLogger routes goose output to the global zap logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) { logger.Log.Infof(format, v...) }
func (gooseLogger) Fatalf(format string, v ...interface{}) { logger.Log.Fatalf(format, v...) }

// Up applies every pending migration to db.
func Up(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(FS)
	goose.SetLogger(gooseLogger{})

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, Dir)
}
