package models

import "time"

// Certificate represents a completion certificate issued against an application
type Certificate struct {
	ID                string            `bson:"_id"                     json:"id"`
	Serial            string            `bson:"serial"                  json:"serial"`
	ApplicationID     string            `bson:"application_id"          json:"application_id"`
	StudentID         string            `bson:"student_id"              json:"student_id"`
	InternshipID      string            `bson:"internship_id"           json:"internship_id"`
	IssuedAt          time.Time         `bson:"issued_at"               json:"issued_at"`
	VerificationToken string            `bson:"verification_token"      json:"verification_token"`
	Links             *CertificateLinks `bson:"links,omitempty"         json:"links,omitempty"`
}

// CertificateLinks represents a list of link objects related to a certificate
type CertificateLinks struct {
	Application *LinkObject `bson:"application,omitempty" json:"application,omitempty"`
	Self        *LinkObject `bson:"self,omitempty"        json:"self,omitempty"`
	Verify      *LinkObject `bson:"verify,omitempty"      json:"verify,omitempty"`
}
