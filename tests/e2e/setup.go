//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"hotel-reservation/cmd/bootstrap"
	"hotel-reservation/cmd/bootstrap/components"
	"hotel-reservation/internal/infra/db"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// pgServer is one postgres container shared by every suite in the process.
type pgServer struct {
	host string
	port string
}

func (p pgServer) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, p.host, p.port, dbName)
}

var (
	serverOnce sync.Once
	server     pgServer
	serverErr  error
)

func sharedServer(t *testing.T) pgServer {
	serverOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Name:         "postgres-hotel-e2e",
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				Labels: map[string]string{"purpose": "e2e-tests"},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgServer{host: host, port: port.Port()}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
			},
		})
		if err != nil {
			serverErr = fmt.Errorf("start postgres container: %w", err)
			return
		}
		t.Cleanup(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := c.Terminate(ctx); err != nil {
				slog.Warn("failed to terminate postgres container", "error", err)
			}
		})

		host, err := c.Host(ctx)
		if err != nil {
			serverErr = err
			return
		}
		port, err := c.MappedPort(ctx, pgPort)
		if err != nil {
			serverErr = err
			return
		}
		server = pgServer{host: host, port: port.Port()}
	})
	require.NoError(t, serverErr)
	return server
}

// createDatabase gives each suite its own database so packages can run in parallel.
func createDatabase(t *testing.T, srv pgServer) config.DBConfig {
	name := "hotel_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin := func(stmt string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, srv.dsn("postgres"))
		if err != nil {
			return err
		}
		defer pool.Close()
		_, err = pool.Exec(ctx, stmt)
		return err
	}

	var err error
	for attempt := range 5 {
		if err = admin("CREATE DATABASE " + name); err == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempt+1, "error", err)
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		if err := admin("DROP DATABASE IF EXISTS " + name + " WITH (FORCE)"); err != nil {
			slog.Warn("failed to drop test database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:        srv.host,
		Port:        srv.port,
		User:        pgUser,
		Password:    pgPassword,
		DBName:      name,
		SSLMode:     "disable",
		TimeZone:    "UTC",
		MaxConns:    10,
		LockTimeout: 5 * time.Second,
		TxRetries:   3,
	}
}

// migrationFiles walks up from the package directory to the module root.
func migrationFiles(t *testing.T) []string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "module root not found")
		dir = parent
	}

	files, err := filepath.Glob(filepath.Join(dir, "migrations", "*.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, files, "no migrations found")
	sort.Strings(files)
	return files
}

func migrate(t *testing.T, pool *pgxpool.Pool) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, f := range migrationFiles(t) {
		sql, err := os.ReadFile(f)
		require.NoError(t, err)
		_, err = pool.Exec(ctx, string(sql))
		require.NoError(t, err, "apply %s", filepath.Base(f))
	}
}

type environment struct {
	pool     *pgxpool.Pool
	router   *gin.Engine
	cfg      config.Config
	archival commands.ArchivalCommands
}

// newEnvironment runs the production fx graph against a fresh database.
// Redis and AMQP are left unconfigured, so the archival lock is process-local
// and events are dropped. The cron schedule is off; suites call Archival.Run.
func newEnvironment(t *testing.T) environment {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, sharedServer(t))

	pool, _, err := db.Connect(cfg.DB)
	require.NoError(t, err, "connect test database")
	t.Cleanup(pool.Close)
	migrate(t, pool)

	env := environment{pool: pool}
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.BrokerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SchedulerModule,
		fx.Populate(&env.router, &env.cfg, &env.archival),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err)
		}
	})
	return env
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	DB       *pgxpool.Pool
	Config   config.Config
	Archival commands.ArchivalCommands
}

func (s *SharedSuite) SetupSuite() {
	env := newEnvironment(s.T())
	s.DB = env.pool
	s.Router = env.router
	s.Config = env.cfg
	s.Archival = env.archival
	s.Require().NotNil(s.Archival)
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset database")
}
