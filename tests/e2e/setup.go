//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"course-cart/cmd/bootstrap"
	"course-cart/cmd/bootstrap/components"
	"course-cart/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container

	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// storage backends
// ------------------------------------------------------------

// startBackend starts (once per process) the container for backend and
// returns a storage config pointing at it. Each call gets its own key
// prefix so suites never see each other's profiles.
func startBackend(t *testing.T, backend string) config.StorageConfig {
	t.Helper()
	gin.SetMode(gin.TestMode)

	storage := config.NewTestConfig().Storage
	storage.Backend = backend
	storage.KeyPrefix = "e2e-" + uuid.NewString()
	storage.Timeout = 5 * time.Second

	switch backend {
	case config.BackendRedis:
		startRedisContainerOnce(t)
		info, err := getContainerHostPort(redisTestContainer, "6379/tcp")
		require.NoError(t, err, "failed to resolve redis container address")
		storage.RedisAddr = fmt.Sprintf("%s:%s", info.Host, info.Port.Port())
	case config.BackendPostgres:
		startPostgreSQLContainerOnce(t)
		info, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
		require.NoError(t, err, "failed to resolve postgres container address")
		storage.PostgresDSN = postgresDSN(info.Host, info.Port)
	}
	return storage
}

func postgresDSN(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, host, port.Port())
}

func startRedisContainerOnce(t *testing.T) {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
			Labels:       map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")
	})
	require.NotNil(t, redisTestContainer, "redis container is not running")
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", postgresDSN).WithStartupTimeout(60 * time.Second),
			Labels:     map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start postgres container")
	})
	require.NotNil(t, postgresTestContainer, "postgres container is not running")
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	// ryuk removes the containers when the test process exits
	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// application
// ------------------------------------------------------------

// BuildApp starts the full fx graph against storage and stops it when the
// test ends. Calling it twice with the same storage config simulates a
// restart over the same durable data.
func BuildApp(t *testing.T, storage config.StorageConfig) *gin.Engine {
	t.Helper()

	cfg := config.NewTestConfig()
	cfg.Storage = storage

	var router *gin.Engine
	app := fx.New(
		fx.Provide(func() config.Config { return cfg }),
		bootstrap.ConfigSections,
		bootstrap.LoggerModule,
		bootstrap.StorageModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")
	require.NotNil(t, router, "router was not built")

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})
	return router
}

// ------------------------------------------------------------
// shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Backend string
	Storage config.StorageConfig
	Router  *gin.Engine
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	if s.Backend == "" {
		s.Backend = config.BackendRedis
	}
	s.Storage = startBackend(t, s.Backend)
	s.Router = BuildApp(t, s.Storage)
}

// Restart builds a second app over the same storage; sessions are loaded
// afresh from the backend.
func (s *SharedSuite) Restart() *gin.Engine {
	return BuildApp(s.T(), s.Storage)
}

// NewProfile returns a profile id unused by any other subtest.
func (s *SharedSuite) NewProfile() string {
	return "p-" + uuid.NewString()[:8]
}
