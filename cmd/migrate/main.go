package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"hotel-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Applies migrations/ with the atlas CLI found on PATH.
func main() {
	dir := flag.String("dir", "migrations", "migration directory")
	atlasBin := flag.String("atlas", "atlas", "atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*dir, *atlasBin, *timeout); err != nil {
		slog.Error("migration failed", "error", err.Error())
		os.Exit(1)
	}
}

func run(dir, atlasBin string, timeout time.Duration) error {
	dbCfg, err := config.LoadDBConfig()
	if err != nil {
		return err
	}

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return err
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), atlasBin)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL: dbCfg.BuildDSN(),
	})
	if err != nil {
		return err
	}

	slog.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
