package notifications

import (
	"context"
	"fmt"

	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/pkg/errors"
)

//go:generate moq -out mocks/generator_mocks.go -pkg mocks . KafkaProducer Marshaller

var (
	applicationIDEmptyErr = newGeneratorError(nil, "failed to generate status changed event as application id was empty")
	internshipIDEmptyErr  = newGeneratorError(nil, "failed to generate status changed event as internship id was empty")
	statusEmptyErr        = newGeneratorError(nil, "failed to generate status changed event as status was empty")
	avroMarshalErr        = "error while attempting to marshal status changed event to avro: application id: %s"
)

// KafkaProducer sends an outbound kafka message
type KafkaProducer interface {
	Output() chan kafka.BytesMessage
}

// Marshaller marshals the event into the wire format
type Marshaller interface {
	Marshal(s interface{}) ([]byte, error)
}

// Generator publishes application status changed events to kafka
type Generator struct {
	Producer   KafkaProducer
	Marshaller Marshaller
}

// GeneratorError wraps the underlying cause of a failed event generation
type GeneratorError struct {
	originalErr error
	message     string
	args        []interface{}
}

func newGeneratorError(err error, message string, args ...interface{}) GeneratorError {
	return GeneratorError{
		originalErr: err,
		message:     message,
		args:        args,
	}
}

func (genErr GeneratorError) Error() string {
	if genErr.originalErr == nil {
		return errors.Errorf(genErr.message, genErr.args...).Error()
	}
	return errors.Wrap(genErr.originalErr, fmt.Sprintf(genErr.message, genErr.args...)).Error()
}

// StatusChanged validates the event and places it onto the producer's output channel
func (g *Generator) StatusChanged(ctx context.Context, event StatusChangedEvent) error {
	if err := g.validate(event); err != nil {
		return err
	}

	avroBytes, err := g.Marshaller.Marshal(event)
	if err != nil {
		return newGeneratorError(err, avroMarshalErr, event.ApplicationID)
	}

	g.Producer.Output() <- kafka.BytesMessage{Value: avroBytes, Context: ctx}

	return nil
}

func (g *Generator) validate(event StatusChangedEvent) error {
	if event.ApplicationID == "" {
		return applicationIDEmptyErr
	}
	if event.InternshipID == "" {
		return internshipIDEmptyErr
	}
	if event.Status == "" {
		return statusEmptyErr
	}
	return nil
}
