package service

import (
	"context"
	"net/http"
	neturl "net/url"

	clientsidentity "github.com/ONSdigital/dp-api-clients-go/v2/identity"
	"github.com/ONSdigital/dp-authorisation/auth"
	kafka "github.com/ONSdigital/dp-kafka/v4"
	dphandlers "github.com/ONSdigital/dp-net/v2/handlers"
	dphttp "github.com/ONSdigital/dp-net/v2/http"
	dpotelgo "github.com/ONSdigital/dp-otel-go"
	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/edulink/internship-api/api"
	"github.com/edulink/internship-api/certificates"
	"github.com/edulink/internship-api/config"
	adapter "github.com/edulink/internship-api/kafka"
	"github.com/edulink/internship-api/notifications"
	"github.com/edulink/internship-api/schema"
	"github.com/edulink/internship-api/store"
	"github.com/edulink/internship-api/url"
	"github.com/edulink/internship-api/workflow"
)

// Service contains all the configs, server and clients to run the Internship API
type Service struct {
	Config                *config.Configuration
	ServiceList           *ExternalServiceList
	MongoDB               store.MongoDB
	StatusChangedProducer kafka.IProducer
	identityClient        *clientsidentity.Client
	Server                HTTPServer
	HealthCheck           HealthChecker
	API                   *api.InternshipAPI
	otelShutdown          func(context.Context) error
}

// Run the service
func Run(ctx context.Context, cfg *config.Configuration, serviceList *ExternalServiceList, buildTime, gitCommit, version string, svcErrors chan error) (svc *Service, err error) {
	svc = &Service{
		Config:      cfg,
		ServiceList: serviceList,
	}

	// Get MongoDB connection
	svc.MongoDB, err = serviceList.GetMongoDB(ctx, cfg)
	if err != nil {
		log.Error(ctx, "could not obtain mongo session", err)
		return nil, err
	}
	dataStore := store.DataStore{Backend: svc.MongoDB}

	// Get StatusChanged Kafka Producer
	svc.StatusChangedProducer, err = serviceList.GetKafkaProducer(ctx, cfg, cfg.StatusChangedTopic)
	if err != nil {
		log.Error(ctx, "could not obtain status changed kafka producer", err)
		return nil, err
	}

	notifier := &notifications.Generator{
		Producer:   adapter.NewProducerAdapter(svc.StatusChangedProducer),
		Marshaller: schema.ApplicationStatusChangedEvent,
	}

	auditService := workflow.NewAuditService(dataStore)
	stateMachine := workflow.NewStateMachine(workflow.States, workflow.Transitions, dataStore)
	stateMachineWorkflow := workflow.Setup(dataStore, stateMachine, notifier, auditService)

	websiteURL, err := neturl.Parse(cfg.WebsiteURL)
	if err != nil {
		log.Error(ctx, "failed to parse website url", err, log.Data{"url": cfg.WebsiteURL})
		return nil, err
	}
	apiURL, err := neturl.Parse(cfg.InternshipAPIURL)
	if err != nil {
		log.Error(ctx, "failed to parse internship api url", err, log.Data{"url": cfg.InternshipAPIURL})
		return nil, err
	}
	urlBuilder := url.NewBuilder(websiteURL, apiURL)

	certificateIssuer := certificates.NewIssuer(svc.MongoDB, urlBuilder, []byte(cfg.CertificateSigningKey), cfg.CertificateTokenTTL)

	// Get Identity Client (only if private endpoints are enabled)
	if cfg.EnablePrivateEndpoints {
		svc.identityClient = clientsidentity.New(cfg.ZebedeeURL)
	}

	// Get HealthCheck
	svc.HealthCheck, err = serviceList.GetHealthCheck(cfg, buildTime, gitCommit, version)
	if err != nil {
		log.Error(ctx, "could not instantiate healthcheck", err)
		return nil, err
	}
	if err := svc.registerCheckers(ctx); err != nil {
		return nil, errors.Wrap(err, "unable to register checkers")
	}

	// Get HTTP router and server with middleware
	r := mux.NewRouter()
	m := svc.createMiddleware(cfg)

	var handler http.Handler = m.Then(r)
	if cfg.OtelEnabled {
		svc.otelShutdown, err = dpotelgo.SetupOTelSDK(ctx, dpotelgo.Config{
			OtelServiceName:          cfg.OTServiceName,
			OtelExporterOtlpEndpoint: cfg.OTExporterOTLPEndpoint,
			OtelBatchTimeout:         cfg.OTBatchTimeout,
		})
		if err != nil {
			log.Error(ctx, "error setting up OpenTelemetry - hint: ensure OTEL_EXPORTER_OTLP_ENDPOINT is set", err)
			return nil, err
		}
		r.Use(otelmux.Middleware(cfg.OTServiceName))
		handler = otelhttp.NewHandler(handler, "/")
	}
	svc.Server = serviceList.GetHTTPServer(cfg.BindAddr, handler)

	// Create Internship API
	internshipPermissions, permissions := getAuthorisationHandlers(ctx, cfg)
	svc.API = api.Setup(ctx, cfg, r, dataStore, urlBuilder, stateMachineWorkflow, certificateIssuer, auditService, internshipPermissions, permissions)

	svc.HealthCheck.Start(ctx)

	// Run the http server in a new go-routine
	go func() {
		if err := svc.Server.ListenAndServe(); err != nil {
			svcErrors <- errors.Wrap(err, "failure in http listen and serve")
		}
	}()

	return svc, nil
}

func getAuthorisationHandlers(ctx context.Context, cfg *config.Configuration) (api.AuthHandler, api.AuthHandler) {
	if !cfg.EnablePermissionsAuth {
		log.Info(ctx, "feature flag not enabled defaulting to nop auth impl", log.Data{"feature": "ENABLE_PERMISSIONS_AUTH"})
		return &auth.NopHandler{}, &auth.NopHandler{}
	}

	log.Info(ctx, "feature flag enabled", log.Data{"feature": "ENABLE_PERMISSIONS_AUTH"})
	auth.LoggerNamespace("internship-api-auth")

	authClient := auth.NewPermissionsClient(dphttp.NewClient())
	authVerifier := auth.DefaultPermissionsVerifier()

	// for checking caller permissions when we have an internship ID and user/service token
	internshipPermissions := auth.NewHandler(
		auth.NewDatasetPermissionsRequestBuilder(cfg.ZebedeeURL, "internship_id", mux.Vars),
		authClient,
		authVerifier,
	)

	// for checking caller permissions when we only have a user/service token
	permissions := auth.NewHandler(
		auth.NewPermissionsRequestBuilder(cfg.ZebedeeURL),
		authClient,
		authVerifier,
	)

	return internshipPermissions, permissions
}

// createMiddleware creates an Alice middleware chain of handlers
func (svc *Service) createMiddleware(cfg *config.Configuration) alice.Chain {
	// healthcheck
	healthcheckHandler := newMiddleware(svc.HealthCheck.Handler, "/health")
	middleware := alice.New(healthcheckHandler)

	// Only add the identity middleware when running in private mode.
	if cfg.EnablePrivateEndpoints {
		middleware = middleware.Append(dphandlers.IdentityWithHTTPClient(svc.identityClient))
	}

	return middleware
}

// newMiddleware creates a new http.Handler to intercept /health requests.
func newMiddleware(healthcheckHandler func(http.ResponseWriter, *http.Request), path string) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.Method == "GET" && req.URL.Path == path {
				healthcheckHandler(w, req)
				return
			}

			h.ServeHTTP(w, req)
		})
	}
}

// Close gracefully shuts the service down in the required order, with timeout
func (svc *Service) Close(ctx context.Context) error {
	timeout := svc.Config.GracefulShutdownTimeout
	log.Info(ctx, "commencing graceful shutdown", log.Data{"graceful_shutdown_timeout": timeout})
	shutdownContext, cancel := context.WithTimeout(ctx, timeout)
	hasShutdownError := false

	// Gracefully shutdown the application closing any open resources.
	go func() {
		defer cancel()

		// stop healthcheck, as it depends on everything else
		if svc.ServiceList.HealthCheck {
			svc.HealthCheck.Stop()
		}

		// stop any incoming requests
		if err := svc.Server.Shutdown(shutdownContext); err != nil {
			log.Error(shutdownContext, "failed to shutdown http server", err)
			hasShutdownError = true
		}

		// Close MongoDB (if it exists)
		if svc.ServiceList.MongoDB {
			if err := svc.MongoDB.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close mongo db session", err)
				hasShutdownError = true
			}
		}

		// Close StatusChangedProducer (if it exists)
		if svc.ServiceList.StatusChangedProducer {
			log.Info(shutdownContext, "closing status changed kafka producer")
			if err := svc.StatusChangedProducer.Close(shutdownContext); err != nil {
				log.Error(shutdownContext, "failed to close status changed kafka producer", err)
				hasShutdownError = true
			}
		}

		if svc.otelShutdown != nil {
			if err := svc.otelShutdown(shutdownContext); err != nil {
				log.Error(shutdownContext, "error shutting down OpenTelemetry", err)
				hasShutdownError = true
			}
		}
	}()

	// wait for shutdown success (via cancel) or failure (timeout)
	<-shutdownContext.Done()

	// timeout expired
	if shutdownContext.Err() == context.DeadlineExceeded {
		log.Error(shutdownContext, "shutdown timed out", shutdownContext.Err())
		return shutdownContext.Err()
	}

	// other error
	if hasShutdownError {
		err := errors.New("failed to shutdown gracefully")
		log.Error(shutdownContext, "failed to shutdown gracefully ", err)
		return err
	}

	log.Info(shutdownContext, "graceful shutdown was successful")
	return nil
}

// registerCheckers adds the checkers for the provided clients to the health check object
func (svc *Service) registerCheckers(ctx context.Context) (err error) {
	hasErrors := false

	if svc.Config.EnablePrivateEndpoints {
		if err = svc.HealthCheck.AddCheck("Zebedee", svc.identityClient.Checker); err != nil {
			hasErrors = true
			log.Error(ctx, "error adding check for zebedee", err)
		}
	}

	if err = svc.HealthCheck.AddCheck("Kafka Status Changed Producer", svc.StatusChangedProducer.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for kafka status changed producer", err)
	}

	if err = svc.HealthCheck.AddCheck("Mongo DB", svc.MongoDB.Checker); err != nil {
		hasErrors = true
		log.Error(ctx, "error adding check for mongo db", err)
	}

	if hasErrors {
		return errors.New("Error(s) registering checkers for healthcheck")
	}
	return nil
}
