package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ONSdigital/log.go/v2/log"
	"github.com/gorilla/mux"

	errs "github.com/edulink/internship-api/apierrors"
	"github.com/edulink/internship-api/models"
)

// addCertificate issues a completion certificate for an application
func (api *InternshipAPI) addCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	applicationID := vars["application_id"]
	logData := log.Data{"application_id": applicationID}

	certificate, err := api.certificateIssuer.Issue(ctx, applicationID)
	if err != nil {
		log.Error(ctx, "addCertificate endpoint: failed to issue certificate", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	logData["certificate_id"] = certificate.ID

	api.recordCertificateAudit(r, models.ActionCreate, certificate, logData)

	b, err := json.Marshal(certificate)
	if err != nil {
		log.Error(ctx, "addCertificate endpoint: failed to marshal certificate into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	w.WriteHeader(http.StatusCreated)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "addCertificate endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "addCertificate endpoint: request completed successfully", logData)
}

func (api *InternshipAPI) getCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	certificateID := vars["certificate_id"]
	logData := log.Data{"certificate_id": certificateID}

	certificate, err := api.dataStore.Backend.GetCertificate(ctx, certificateID)
	if err != nil {
		log.Error(ctx, "getCertificate endpoint: failed to find certificate", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	b, err := json.Marshal(certificate)
	if err != nil {
		log.Error(ctx, "getCertificate endpoint: failed to marshal certificate into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "getCertificate endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "getCertificate endpoint: request successful", logData)
}

// verifyCertificate checks the provided token belongs to the certificate
func (api *InternshipAPI) verifyCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vars := mux.Vars(r)
	certificateID := vars["certificate_id"]
	logData := log.Data{"certificate_id": certificateID}

	token := r.URL.Query().Get("token")
	if token == "" {
		log.Error(ctx, "verifyCertificate endpoint: no token provided", errs.ErrInvalidQueryParameter, logData)
		handleAPIErr(ctx, errs.ErrInvalidQueryParameter, w, logData)
		return
	}

	certificate, err := api.certificateIssuer.Verify(ctx, certificateID, token)
	if err != nil {
		log.Error(ctx, "verifyCertificate endpoint: verification failed", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	b, err := json.Marshal(certificate)
	if err != nil {
		log.Error(ctx, "verifyCertificate endpoint: failed to marshal certificate into bytes", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}

	setJSONContentType(w)
	if _, err = w.Write(b); err != nil {
		log.Error(ctx, "verifyCertificate endpoint: error writing bytes to response", err, logData)
		handleAPIErr(ctx, err, w, logData)
		return
	}
	log.Info(ctx, "verifyCertificate endpoint: request successful", logData)
}

func (api *InternshipAPI) recordCertificateAudit(r *http.Request, action models.Action, certificate *models.Certificate, logData log.Data) {
	ctx := r.Context()
	resource := fmt.Sprintf("/certificates/%s", certificate.ID)
	if err := api.auditService.RecordCertificateAuditEvent(ctx, requestedBy(r), action, resource, certificate); err != nil {
		// the action itself has succeeded, so only log the audit failure
		log.Error(ctx, "failed to record certificate audit event", err, logData)
	}
}
