package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"go.mongodb.org/mongo-driver/bson"

	assistdog "github.com/ONSdigital/dp-assistdog"

	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/notifications"
	"github.com/edulink/internship-api/schema"
)

var WellKnownTestTime time.Time

func init() {
	WellKnownTestTime, _ = time.Parse("2006-01-02T15:04:05Z", "2026-01-01T00:00:00Z")
}

func (c *InternshipComponent) RegisterSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^private endpoints are enabled$`, c.privateEndpointsAreEnabled)
	ctx.Step(`^the internship in the database for id "([^"]*)" should be:$`, c.theInternshipInTheDatabaseForIdShouldBe)
	ctx.Step(`^there are no internships$`, c.thereAreNoInternships)
	ctx.Step(`^I have these internships:$`, c.iHaveTheseInternships)
	ctx.Step(`^I have these applications:$`, c.iHaveTheseApplications)
	ctx.Step(`^I have these logbook entries:$`, c.iHaveTheseLogbookEntries)
	ctx.Step(`^these application status changed events are produced:$`, c.theseStatusChangedEventsAreProduced)
}

func (c *InternshipComponent) thereAreNoInternships() error {
	return c.MongoClient.Connection.DropDatabase(context.Background())
}

func (c *InternshipComponent) privateEndpointsAreEnabled() error {
	c.Config.EnablePrivateEndpoints = true
	return nil
}

func (c *InternshipComponent) theInternshipInTheDatabaseForIdShouldBe(documentID string, documentJSON *godog.DocString) error {
	var expected models.Internship

	if err := json.Unmarshal([]byte(documentJSON.Content), &expected); err != nil {
		return err
	}

	collectionName := c.MongoClient.ActualCollectionName(config.InternshipsCollection)

	var document models.Internship
	if err := c.MongoClient.Connection.Collection(collectionName).FindOne(context.Background(), bson.M{"_id": documentID}, &document); err != nil {
		return err
	}

	assert.Equal(&c.ErrorFeature, documentID, document.ID)
	assert.Equal(&c.ErrorFeature, expected.Title, document.Title)
	assert.Equal(&c.ErrorFeature, expected.State, document.State)

	return c.ErrorFeature.StepError()
}

// theseStatusChangedEventsAreProduced reads the messages placed on the producer output channel
// by the service under test and validates that they match the expected values in the test
func (c *InternshipComponent) theseStatusChangedEventsAreProduced(events *godog.Table) error {
	raw, err := assistdog.NewDefault().CreateSlice(new(notifications.StatusChangedEvent), events)
	if err != nil {
		return fmt.Errorf("failed to create slice from godog table: %w", err)
	}
	expected := raw.([]*notifications.StatusChangedEvent)

	var got []*notifications.StatusChangedEvent
	listen := true

	for listen {
		select {
		case <-time.After(time.Second * 15):
			listen = false
		case msg, ok := <-c.producerOutput:
			if !ok {
				return fmt.Errorf("output channel closed")
			}

			var e notifications.StatusChangedEvent
			if err := schema.ApplicationStatusChangedEvent.Unmarshal(msg.Value, &e); err != nil {
				return fmt.Errorf("error unmarshalling message: %w", err)
			}

			got = append(got, &e)
			if len(got) == len(expected) {
				listen = false
			}
		}
	}
	if diff := cmp.Diff(got, expected); diff != "" {
		return fmt.Errorf("-got +expected)\n%s\n", diff)
	}

	return nil
}

func (c *InternshipComponent) iHaveTheseInternships(internshipsJSON *godog.DocString) error {
	internships := []models.Internship{}

	if err := json.Unmarshal([]byte(internshipsJSON.Content), &internships); err != nil {
		return err
	}

	for timeOffset := range internships {
		internship := &internships[timeOffset]

		if err := c.putDocumentInDatabase(internship, internship.ID, config.InternshipsCollection, timeOffset); err != nil {
			return err
		}
	}

	return nil
}

func (c *InternshipComponent) iHaveTheseApplications(applicationsJSON *godog.DocString) error {
	applications := []models.Application{}

	if err := json.Unmarshal([]byte(applicationsJSON.Content), &applications); err != nil {
		return err
	}

	for timeOffset := range applications {
		application := &applications[timeOffset]

		if err := c.putDocumentInDatabase(application, application.ID, config.ApplicationsCollection, timeOffset); err != nil {
			return err
		}
	}

	return nil
}

func (c *InternshipComponent) iHaveTheseLogbookEntries(entriesJSON *godog.DocString) error {
	entries := []models.LogbookEntry{}

	if err := json.Unmarshal([]byte(entriesJSON.Content), &entries); err != nil {
		return err
	}

	for timeOffset := range entries {
		entry := &entries[timeOffset]

		if err := c.putDocumentInDatabase(entry, entry.ID, config.LogbookEntriesCollection, timeOffset); err != nil {
			return err
		}
	}

	return nil
}

func (c *InternshipComponent) putDocumentInDatabase(document interface{}, id, collection string, timeOffset int) error {
	update := bson.M{
		"$set": document,
		"$setOnInsert": bson.M{
			"last_updated": WellKnownTestTime.Add(time.Second * time.Duration(timeOffset)),
		},
	}

	collectionName := c.MongoClient.ActualCollectionName(collection)

	_, err := c.MongoClient.Connection.Collection(collectionName).UpsertById(context.Background(), id, update)
	if err != nil {
		return err
	}
	return nil
}
