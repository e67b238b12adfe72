package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_TaxonomyMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrMissingIdentifiers, http.StatusBadRequest, "missing_identifiers"},
		{ErrMalformedIdentifier, http.StatusNotFound, "malformed_identifier"},
		{ErrTenantEntityNotFound, http.StatusNotFound, "org_or_member_not_found"},
		{ErrMembershipMismatch, http.StatusForbidden, "invalid_org"},
		{ErrRoleNotPermitted, http.StatusForbidden, "invalid_role"},
		{ErrCrossTenantAccess, http.StatusForbidden, "cross_tenant_access"},
		{ErrOrganizationAlreadyExists, http.StatusConflict, "org_exists"},
		{ErrMemberAlreadyExists, http.StatusConflict, "member_exists"},
		{ErrNoteNotFound, http.StatusNotFound, "note_not_found"},
		{ErrOrganizationNotFound, http.StatusNotFound, "org_not_found"},
	}

	for _, tc := range cases {
		status, code := Status(tc.err)
		assert.Equal(t, tc.status, status, tc.code)
		assert.Equal(t, tc.code, code)
	}
}

func TestStatus_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("creating organization: %w", ErrOrganizationAlreadyExists)
	status, code := Status(wrapped)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "org_exists", code)
}

func TestStatus_UnknownError(t *testing.T) {
	status, code := Status(errors.New("disk on fire"))
	assert.Equal(t, 0, status)
	assert.Equal(t, "", code)
}
