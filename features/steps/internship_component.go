package steps

import (
	"context"
	"net/http"

	componenttest "github.com/ONSdigital/dp-component-test"
	"github.com/ONSdigital/dp-component-test/utils"
	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	"github.com/ONSdigital/dp-kafka/v4/kafkatest"
	"github.com/ONSdigital/log.go/v2/log"

	"github.com/edulink/internship-api/config"
	"github.com/edulink/internship-api/mongo"
	"github.com/edulink/internship-api/service"
	serviceMock "github.com/edulink/internship-api/service/mock"
	"github.com/edulink/internship-api/store"
)

type InternshipComponent struct {
	ErrorFeature   componenttest.ErrorFeature
	svc            *service.Service
	errorChan      chan error
	producerOutput chan kafka.BytesMessage
	MongoClient    *mongo.Mongo
	Config         *config.Configuration
	HTTPServer     *http.Server
	ServiceRunning bool
	initialiser    *serviceMock.InitialiserMock
}

func NewInternshipComponent(mongoFeature *componenttest.MongoFeature, zebedeeURL string) (*InternshipComponent, error) {
	c := &InternshipComponent{
		HTTPServer:     &http.Server{},
		errorChan:      make(chan error),
		producerOutput: make(chan kafka.BytesMessage, 10),
		ServiceRunning: false,
	}

	var err error

	c.Config, err = config.Get()
	if err != nil {
		return nil, err
	}

	c.Config.ZebedeeURL = zebedeeURL

	c.Config.EnablePermissionsAuth = false

	c.Config.ClusterEndpoint = mongoFeature.Server.URI()
	c.Config.Database = utils.RandomDatabase()

	mongodb := &mongo.Mongo{MongoConfig: c.Config.MongoConfig}
	if err := mongodb.Init(context.Background()); err != nil {
		return nil, err
	}

	c.MongoClient = mongodb

	c.initialiser = &serviceMock.InitialiserMock{
		DoGetMongoDBFunc:       c.DoGetMongoDB,
		DoGetKafkaProducerFunc: c.DoGetKafkaProducerOk,
		DoGetHealthCheckFunc:   c.DoGetHealthcheckOk,
		DoGetHTTPServerFunc:    c.DoGetHTTPServer,
	}

	return c, nil
}

func (c *InternshipComponent) Reset() *InternshipComponent {
	ctx := context.Background()
	c.Config.Database = utils.RandomDatabase()
	c.MongoClient.Database = c.Config.Database
	if err := c.MongoClient.Init(ctx); err != nil {
		log.Warn(ctx, "error initialising MongoClient during Reset", log.Data{"err": err.Error()})
	}
	c.Config.EnablePrivateEndpoints = false
	return c
}

func (c *InternshipComponent) Close() error {
	if c.svc != nil && c.ServiceRunning {
		if err := c.svc.Close(context.Background()); err != nil {
			return err
		}
		c.ServiceRunning = false
	}
	return nil
}

func (c *InternshipComponent) InitialiseService() (http.Handler, error) {
	var err error
	c.svc, err = service.Run(context.Background(), c.Config, service.NewServiceList(c.initialiser), "1", "", "", c.errorChan)
	if err != nil {
		return nil, err
	}
	c.ServiceRunning = true
	return c.HTTPServer.Handler, nil
}

func funcClose(ctx context.Context) error {
	return nil
}

func (c *InternshipComponent) DoGetHealthcheckOk(cfg *config.Configuration, buildTime, gitCommit, version string) (service.HealthChecker, error) {
	return &serviceMock.HealthCheckerMock{
		AddCheckFunc: func(name string, checker healthcheck.Checker) error { return nil },
		StartFunc:    func(ctx context.Context) {},
		StopFunc:     func() {},
	}, nil
}

func (c *InternshipComponent) DoGetHTTPServer(bindAddr string, router http.Handler) service.HTTPServer {
	c.HTTPServer.Addr = bindAddr
	c.HTTPServer.Handler = router
	return c.HTTPServer
}

// DoGetMongoDB returns a MongoDB
func (c *InternshipComponent) DoGetMongoDB(ctx context.Context, cfg *config.Configuration) (store.MongoDB, error) {
	return c.MongoClient, nil
}

func (c *InternshipComponent) DoGetKafkaProducerOk(ctx context.Context, cfg *config.Configuration, topic string) (kafka.IProducer, error) {
	return &kafkatest.IProducerMock{
		ChannelsFunc: func() *kafka.ProducerChannels {
			return &kafka.ProducerChannels{Output: c.producerOutput}
		},
		CloseFunc: funcClose,
	}, nil
}
