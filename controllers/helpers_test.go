package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes-server/controllers"
	middleware "notes-server/middlewares"
	"notes-server/mocks"
	"notes-server/models"
	"notes-server/routes"
	service "notes-server/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type testEnv struct {
	app        *fiber.App
	orgRepo    *mocks.MockOrganizationRepository
	memberRepo *mocks.MockMemberRepository
	noteRepo   *mocks.MockNoteRepository
}

func passthrough(c *fiber.Ctx) error {
	return c.Next()
}

func setupApp() *testEnv {
	orgRepo := mocks.NewMockOrganizationRepository()
	memberRepo := mocks.NewMockMemberRepository()
	noteRepo := mocks.NewMockNoteRepository()

	tenantService := service.NewTenantService(orgRepo, memberRepo)
	orgService := service.NewOrganizationService(orgRepo)
	memberService := service.NewMemberService(orgRepo, memberRepo)
	noteService := service.NewNoteService(orgRepo, noteRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})
	routes.OrganizationRoutes(app, controllers.NewOrganizationController(orgService), passthrough)
	routes.MemberRoutes(app, controllers.NewMemberController(memberService), passthrough)
	routes.NoteRoutes(app, controllers.NewNoteController(noteService), tenantService, passthrough)

	return &testEnv{app: app, orgRepo: orgRepo, memberRepo: memberRepo, noteRepo: noteRepo}
}

func (e *testEnv) request(t *testing.T, method, path string, body interface{}, headers map[string]string) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func tenantHeaders(org *models.Organization, member *models.Member) map[string]string {
	return map[string]string{
		middleware.HeaderOrgID:    org.ID.Hex(),
		middleware.HeaderMemberID: member.ID.Hex(),
	}
}

// seedOrgWithMember inserts an organization and one member directly through
// the mock repositories.
func (e *testEnv) seedOrgWithMember(t *testing.T, orgName, email string, role models.Role) (*models.Organization, *models.Member) {
	t.Helper()

	orgID, err := e.orgRepo.Insert(models.Organization{Name: orgName})
	assert.NoError(t, err)
	org, err := e.orgRepo.FindByID(orgID)
	assert.NoError(t, err)

	memberID, err := e.memberRepo.Insert(models.Member{
		Email:    email,
		FullName: "Seeded Member",
		Role:     role,
		Org:      models.UnresolvedRef[models.Organization](org.ID),
	})
	assert.NoError(t, err)
	member, err := e.memberRepo.FindByID(memberID)
	assert.NoError(t, err)

	return org, member
}
