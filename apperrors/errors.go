// Package apperrors defines the failure taxonomy shared by the tenant
// resolution, authorization and ownership layers. Every failure is a typed
// sentinel carried as a value; the HTTP layer maps each one to a status code
// and a stable error_code string.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	ErrMissingIdentifiers        = errors.New("missing required tenant identifiers")
	ErrMalformedIdentifier       = errors.New("identifier is not a valid id")
	ErrTenantEntityNotFound      = errors.New("organization or member not found")
	ErrMembershipMismatch        = errors.New("member does not belong to this organization")
	ErrRoleNotPermitted          = errors.New("role not permitted for this action")
	ErrCrossTenantAccess         = errors.New("resource does not belong to this organization")
	ErrOrganizationAlreadyExists = errors.New("organization already exists")
	ErrMemberAlreadyExists       = errors.New("member with this email already exists in the organization")
	ErrNoteNotFound              = errors.New("note not found")
	ErrOrganizationNotFound      = errors.New("organization not found")
)

type mapping struct {
	status int
	code   string
}

// Cross-tenant access maps to 403: the actor is authenticated, the failure
// is authorization. Malformed identifiers map to 404 like any other
// not-found.
var statusByErr = map[error]mapping{
	ErrMissingIdentifiers:        {http.StatusBadRequest, "missing_identifiers"},
	ErrMalformedIdentifier:       {http.StatusNotFound, "malformed_identifier"},
	ErrTenantEntityNotFound:      {http.StatusNotFound, "org_or_member_not_found"},
	ErrMembershipMismatch:        {http.StatusForbidden, "invalid_org"},
	ErrRoleNotPermitted:          {http.StatusForbidden, "invalid_role"},
	ErrCrossTenantAccess:         {http.StatusForbidden, "cross_tenant_access"},
	ErrOrganizationAlreadyExists: {http.StatusConflict, "org_exists"},
	ErrMemberAlreadyExists:       {http.StatusConflict, "member_exists"},
	ErrNoteNotFound:              {http.StatusNotFound, "note_not_found"},
	ErrOrganizationNotFound:      {http.StatusNotFound, "org_not_found"},
}

// Status returns the HTTP status and error_code for a taxonomy error, or
// (0, "") when err is not part of the taxonomy.
func Status(err error) (int, string) {
	for sentinel, m := range statusByErr {
		if errors.Is(err, sentinel) {
			return m.status, m.code
		}
	}
	return 0, ""
}
