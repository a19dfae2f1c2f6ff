package workflow

import (
	"context"
	"fmt"

	"github.com/edulink/internship-api/models"
	"github.com/edulink/internship-api/store"
)

// AuditService defines the interface for audit logging
//
//go:generate moq -out mock/audit_service.go -pkg mock . AuditService
type AuditService interface {
	RecordInternshipAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, internship *models.Internship) error
	RecordApplicationAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, application *models.Application) error
	RecordLogbookAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, entry *models.LogbookEntry) error
	RecordCertificateAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, certificate *models.Certificate) error
}

// auditService provides methods for audit logging
type auditService struct {
	DataStore store.DataStore
}

// NewAuditService creates a new instance of AuditService
func NewAuditService(dataStore store.DataStore) AuditService {
	return &auditService{
		DataStore: dataStore,
	}
}

// recordAuditEvent validates and records an audit event for an internship, application,
// logbook entry or certificate
func (a *auditService) recordAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, internship *models.Internship, application *models.Application, entry *models.LogbookEntry, certificate *models.Certificate) error {
	event, err := models.NewAuditEvent(requestedBy, action, resource, internship, application, entry, certificate)
	if err != nil {
		return fmt.Errorf("recordAuditEvent: failed to create audit event model: %w", err)
	}

	if err := a.DataStore.Backend.CreateAuditEvent(ctx, event); err != nil {
		return fmt.Errorf("recordAuditEvent: failed to create audit event in store: %w", err)
	}

	return nil
}

// RecordInternshipAuditEvent records an audit event for an internship action
func (a *auditService) RecordInternshipAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, internship *models.Internship) error {
	return a.recordAuditEvent(ctx, requestedBy, action, resource, internship, nil, nil, nil)
}

// RecordApplicationAuditEvent records an audit event for an application action
func (a *auditService) RecordApplicationAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, application *models.Application) error {
	return a.recordAuditEvent(ctx, requestedBy, action, resource, nil, application, nil, nil)
}

// RecordLogbookAuditEvent records an audit event for a logbook entry action
func (a *auditService) RecordLogbookAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, entry *models.LogbookEntry) error {
	return a.recordAuditEvent(ctx, requestedBy, action, resource, nil, nil, entry, nil)
}

// RecordCertificateAuditEvent records an audit event for a certificate action
func (a *auditService) RecordCertificateAuditEvent(ctx context.Context, requestedBy models.RequestedBy, action models.Action, resource string, certificate *models.Certificate) error {
	return a.recordAuditEvent(ctx, requestedBy, action, resource, nil, nil, nil, certificate)
}
