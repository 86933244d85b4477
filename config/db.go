package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"musabaqa/domain"
	"musabaqa/services/registration/repository"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

var ErrMissingDatabaseURL = errors.New("please define the DATABASE_URL (or MONGODB_URI) environment variable")

// Store is the process-wide handle to the registration store.
type Store struct {
	Driver string
	Repo   domain.RegistrationRepo
	close  func(ctx context.Context) error
}

var (
	storeMu sync.Mutex
	store   *Store
)

// GetDatabaseURL returns the store connection string. DATABASE_URL wins over
// the older MONGODB_URI.
func GetDatabaseURL() (string, error) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		return v, nil
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		return v, nil
	}
	return "", ErrMissingDatabaseURL
}

func GetDatabaseName() string {
	v := os.Getenv("DATABASE_NAME")
	if v == "" {
		return "musabaqa"
	}
	return v
}

// DriverFromURL picks the store implementation from the URL scheme.
func DriverFromURL(url string) (string, error) {
	switch {
	case strings.HasPrefix(url, "mongodb://"), strings.HasPrefix(url, "mongodb+srv://"):
		return DriverMongo, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return DriverPostgres, nil
	case strings.HasPrefix(url, "memory://"):
		return DriverMemory, nil
	}
	return "", fmt.Errorf("unsupported database url scheme in %q", redact(url))
}

// BootStore opens the store once per process and hands the same handle to
// every later caller. A failed attempt is not cached, so the next call
// retries.
func BootStore(ctx context.Context) (*Store, error) {
	storeMu.Lock()
	defer storeMu.Unlock()

	if store != nil {
		return store, nil
	}

	url, err := GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	driver, err := DriverFromURL(url)
	if err != nil {
		return nil, err
	}

	var s *Store
	switch driver {
	case DriverMongo:
		s, err = bootMongo(ctx, url)
	case DriverPostgres:
		s, err = bootPostgres(url)
	case DriverMemory:
		s = &Store{Driver: DriverMemory, Repo: repository.NewMemoryRepository()}
	}
	if err != nil {
		GetLogrusInstance().WithError(err).WithField("driver", driver).Error("store connection error")
		return nil, err
	}

	GetLogrusInstance().WithField("driver", driver).Info("connected to registration store")
	store = s
	return store, nil
}

// CloseStore releases the cached handle. BootStore may be called again
// afterwards.
func CloseStore(ctx context.Context) error {
	storeMu.Lock()
	defer storeMu.Unlock()

	if store == nil {
		return nil
	}
	s := store
	store = nil
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

func bootMongo(ctx context.Context, url string) (*Store, error) {
	opts := options.Client().
		ApplyURI(url).
		SetMaxPoolSize(10).
		SetMaxConnecting(10).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.Majority())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(GetDatabaseName())
	if err := repository.EnsureMongoIndexes(ctx, database); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &Store{
		Driver: DriverMongo,
		Repo:   repository.NewMongoRepository(database),
		close:  client.Disconnect,
	}, nil
}

func bootPostgres(url string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(url), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)

	return &Store{
		Driver: DriverPostgres,
		Repo:   repository.NewPostgresRepository(db),
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

// redact hides credentials in a connection string before it is logged.
func redact(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at < 0 || scheme < 0 || at < scheme {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}
