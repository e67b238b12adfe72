package service

import (
	"testing"

	"notes-server/apperrors"
	"notes-server/mocks"
	"notes-server/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type noteFixture struct {
	orgRepo  *mocks.MockOrganizationRepository
	noteRepo *mocks.MockNoteRepository
	svc      *NoteService
	orgA     *models.Organization
	orgB     *models.Organization
	writerA  *models.Member
	adminB   *models.Member
}

func newNoteFixture(t *testing.T) *noteFixture {
	t.Helper()
	orgRepo := mocks.NewMockOrganizationRepository()
	memberRepo := mocks.NewMockMemberRepository()
	noteRepo := mocks.NewMockNoteRepository()

	orgAID, err := orgRepo.Insert(models.Organization{Name: "OrgA"})
	assert.NoError(t, err)
	orgBID, err := orgRepo.Insert(models.Organization{Name: "OrgB"})
	assert.NoError(t, err)
	orgA, _ := orgRepo.FindByID(orgAID)
	orgB, _ := orgRepo.FindByID(orgBID)

	writerAID, err := memberRepo.Insert(models.Member{
		Email: "w@a.com", Role: models.RoleWriter,
		Org: models.UnresolvedRef[models.Organization](orgA.ID),
	})
	assert.NoError(t, err)
	adminBID, err := memberRepo.Insert(models.Member{
		Email: "admin@b.com", Role: models.RoleAdmin,
		Org: models.UnresolvedRef[models.Organization](orgB.ID),
	})
	assert.NoError(t, err)
	writerA, _ := memberRepo.FindByID(writerAID)
	adminB, _ := memberRepo.FindByID(adminBID)

	return &noteFixture{
		orgRepo:  orgRepo,
		noteRepo: noteRepo,
		svc:      NewNoteService(orgRepo, noteRepo),
		orgA:     orgA,
		orgB:     orgB,
		writerA:  writerA,
		adminB:   adminB,
	}
}

func (f *noteFixture) ctxA() *models.TenantContext {
	return &models.TenantContext{Org: f.orgA, Member: f.writerA}
}

func (f *noteFixture) ctxB() *models.TenantContext {
	return &models.TenantContext{Org: f.orgB, Member: f.adminB}
}

func TestCreateAndGetNote(t *testing.T) {
	f := newNoteFixture(t)

	note, err := f.svc.CreateNote(f.ctxA(), "hello", "world")
	assert.NoError(t, err)
	assert.Equal(t, f.orgA.ID, note.Org.ID())
	assert.Equal(t, f.writerA.ID, note.Author.ID())
	assert.False(t, note.CreatedAt.IsZero())

	got, err := f.svc.GetNote(f.ctxA(), note.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, note.ID, got.ID)
	assert.Equal(t, "hello", got.Title)
}

func TestGetNote_NotFound(t *testing.T) {
	f := newNoteFixture(t)

	_, err := f.svc.GetNote(f.ctxA(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)

	// A malformed note id is indistinguishable from a missing note.
	_, err = f.svc.GetNote(f.ctxA(), "not-an-id")
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}

func TestGetNote_CrossTenant(t *testing.T) {
	f := newNoteFixture(t)

	note, err := f.svc.CreateNote(f.ctxA(), "private", "belongs to A")
	assert.NoError(t, err)

	// A fully valid context for org B still cannot read org A's note,
	// regardless of role.
	_, err = f.svc.GetNote(f.ctxB(), note.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrCrossTenantAccess)
}

func TestCheckNoteOwnership_ForgedContext(t *testing.T) {
	f := newNoteFixture(t)

	note, err := f.svc.CreateNote(f.ctxA(), "n", "c")
	assert.NoError(t, err)
	stored, err := f.noteRepo.FindByID(note.ID)
	assert.NoError(t, err)

	// A context claiming org A but carrying a member of org B fails the
	// membership re-check even though the note belongs to org A.
	forged := &models.TenantContext{Org: f.orgA, Member: f.adminB}
	err = f.svc.CheckNoteOwnership(forged, stored)
	assert.ErrorIs(t, err, apperrors.ErrCrossTenantAccess)
}

func TestCheckNoteOwnership_DanglingOrg(t *testing.T) {
	f := newNoteFixture(t)

	note, err := f.svc.CreateNote(f.ctxA(), "orphan", "soon")
	assert.NoError(t, err)

	// The owning organization vanishes; the note becomes inaccessible to
	// everyone, not a distinct error.
	f.orgRepo.Delete(f.orgA.ID)
	stored, err := f.noteRepo.FindByID(note.ID)
	assert.NoError(t, err)

	err = f.svc.CheckNoteOwnership(f.ctxA(), stored)
	assert.ErrorIs(t, err, apperrors.ErrCrossTenantAccess)
}

func TestListNotes_FilteredByOrg(t *testing.T) {
	f := newNoteFixture(t)

	_, err := f.svc.CreateNote(f.ctxA(), "a1", "")
	assert.NoError(t, err)
	_, err = f.svc.CreateNote(f.ctxA(), "a2", "")
	assert.NoError(t, err)
	_, err = f.svc.CreateNote(f.ctxB(), "b1", "")
	assert.NoError(t, err)

	notesA, err := f.svc.ListNotes(f.ctxA())
	assert.NoError(t, err)
	assert.Len(t, notesA, 2)

	notesB, err := f.svc.ListNotes(f.ctxB())
	assert.NoError(t, err)
	assert.Len(t, notesB, 1)
}

func TestDeleteNote(t *testing.T) {
	f := newNoteFixture(t)

	note, err := f.svc.CreateNote(f.ctxA(), "doomed", "")
	assert.NoError(t, err)

	// Cross-tenant delete is rejected before anything is removed.
	err = f.svc.DeleteNote(f.ctxB(), note.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrCrossTenantAccess)

	err = f.svc.DeleteNote(f.ctxA(), note.ID.Hex())
	assert.NoError(t, err)

	_, err = f.svc.GetNote(f.ctxA(), note.ID.Hex())
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}
