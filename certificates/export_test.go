package certificates

import (
	"time"

	"github.com/edulink/internship-api/models"
)

// SignToken exposes signToken to the external test package.
func (i *Issuer) SignToken(serial string, application *models.Application, issuedAt time.Time) (string, error) {
	return i.signToken(serial, application, issuedAt)
}
