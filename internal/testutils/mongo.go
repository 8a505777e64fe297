package testutils

import (
	"context"
	"fmt"
	"log"
	"sync"
	"testing"
	"time"

	"yelpcamp/internal/database"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	mongoOnce     sync.Once
	mongoInitErr  error
	mongoPool     *dockertest.Pool
	mongoResource *dockertest.Resource
	mongoStore    *database.MongoStore
)

// MongoTestSuite gives a suite a MongoDB store backed by a shared container
type MongoTestSuite struct {
	suite.Suite
	Store *database.MongoStore
}

// SetupMongoTestSuite initializes (once) the shared MongoDB container
func SetupMongoTestSuite(t *testing.T) *MongoTestSuite {
	mongoOnce.Do(func() { mongoInitErr = initSharedMongoContainer() })
	if mongoInitErr != nil {
		t.Fatalf("failed to initialize shared mongo container: %v", mongoInitErr)
	}
	return &MongoTestSuite{Store: mongoStore}
}

func (s *MongoTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *MongoTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB empties the collections used by the app
func (s *MongoTestSuite) CleanTestDB() {
	if s.Store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, name := range []string{database.CampgroundsCollection, database.ReviewsCollection} {
		_, _ = s.Store.DB.Collection(name).DeleteMany(ctx, bson.M{})
	}
}

func initSharedMongoContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	mongoPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mongo",
		Tag:        "7",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start mongo: %w", err)
	}
	mongoResource = resource

	uri := fmt.Sprintf("mongodb://127.0.0.1:%s", resource.GetPort("27017/tcp"))

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		store, err := database.ConnectMongo(ctx, uri, "yelp_camp_test", 5*time.Second)
		if err != nil {
			return err
		}
		if err := store.Ping(ctx); err != nil {
			_ = store.Close(ctx)
			return err
		}
		mongoStore = store
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker mongo: %w", err)
	}

	log.Printf("Shared MongoDB ready at %s", uri)
	return nil
}

func cleanupMongoContainer() {
	if mongoStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		_ = mongoStore.Close(ctx)
		cancel()
		mongoStore = nil
	}
	if mongoPool != nil && mongoResource != nil {
		log.Printf("Purging Docker container: %s", mongoResource.Container.Name)
		if err := mongoPool.Purge(mongoResource); err != nil {
			log.Printf("WARN: could not purge mongo resource: %v", err)
		}
		mongoResource = nil
		mongoPool = nil
	}
}
