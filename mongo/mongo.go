package mongo

import (
	"context"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	mongolock "github.com/ONSdigital/dp-mongodb/v3/dplock"
	mongohealth "github.com/ONSdigital/dp-mongodb/v3/health"
	mongodriver "github.com/ONSdigital/dp-mongodb/v3/mongodb"

	"github.com/edulink/internship-api/config"
)

// Mongo represents a simplistic MongoDB configuration, with session, health and lock clients
type Mongo struct {
	config.MongoConfig

	Connection   *mongodriver.MongoConnection
	healthClient *mongohealth.CheckMongoClient
	lockClient   *mongolock.Lock
}

// Init creates a new mongodb connection with a strong consistency and a write mode of "majority",
// and initialises the mongo health client and the applications lock client
func (m *Mongo) Init(ctx context.Context) (err error) {
	m.Connection, err = mongodriver.Open(&m.MongoDriverConfig)
	if err != nil {
		return err
	}

	databaseCollectionBuilder := map[mongohealth.Database][]mongohealth.Collection{
		mongohealth.Database(m.Database): {
			mongohealth.Collection(m.ActualCollectionName(config.InternshipsCollection)),
			mongohealth.Collection(m.ActualCollectionName(config.ApplicationsCollection)),
			mongohealth.Collection(m.ActualCollectionName(config.LogbookEntriesCollection)),
			mongohealth.Collection(m.ActualCollectionName(config.CertificatesCollection)),
			mongohealth.Collection(m.ActualCollectionName(config.InternshipEventsCollection)),
		},
	}

	m.healthClient = mongohealth.NewClientWithCollections(m.Connection, databaseCollectionBuilder)

	// Create MongoDB lock client, which also starts the purger loop
	m.lockClient = mongolock.New(ctx, m.Connection, m.ActualCollectionName(config.ApplicationsCollection))

	return nil
}

// AcquireApplicationLock tries to lock the provided applicationID.
// If the resource is already locked, this function will block until it is released or
// the context is cancelled.
func (m *Mongo) AcquireApplicationLock(ctx context.Context, applicationID string) (lockID string, err error) {
	return m.lockClient.Acquire(ctx, applicationID)
}

// UnlockApplication releases an exclusive mongoDB lock for the provided lockID (if it exists)
func (m *Mongo) UnlockApplication(ctx context.Context, lockID string) {
	m.lockClient.Unlock(ctx, lockID)
}

// Close closes the mongo session and returns any error
func (m *Mongo) Close(ctx context.Context) error {
	m.lockClient.Close(ctx)
	return m.Connection.Close(ctx)
}

// Checker is called by the healthcheck library to check the health state of this mongoDB instance
func (m *Mongo) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	return m.healthClient.Checker(ctx, state)
}
