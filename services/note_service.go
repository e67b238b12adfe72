package service

import (
	"notes-server/apperrors"
	"notes-server/models"
	"notes-server/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteService struct {
	orgRepo  repository.OrganizationRepositoryInterface
	noteRepo repository.NoteRepositoryInterface
}

func NewNoteService(orgRepo repository.OrganizationRepositoryInterface, noteRepo repository.NoteRepositoryInterface) *NoteService {
	return &NoteService{orgRepo: orgRepo, noteRepo: noteRepo}
}

func (s *NoteService) findNote(noteIDRaw string) (*models.Note, error) {
	noteID, err := primitive.ObjectIDFromHex(noteIDRaw)
	if err != nil {
		return nil, apperrors.ErrNoteNotFound
	}
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, apperrors.ErrNoteNotFound
	}
	return note, nil
}

// CheckNoteOwnership enforces that the note belongs to the context's
// organization AND that the acting member belongs to it too. The second
// comparison re-derives membership even though context resolution already
// established it, so a context built outside the normal path still cannot
// cross tenants. A dangling organization reference on either side is an
// ownership failure: a note whose organization vanished is inaccessible to
// everyone.
func (s *NoteService) CheckNoteOwnership(tc *models.TenantContext, note *models.Note) error {
	noteOrg, err := models.ResolveRef(note.Org, s.orgRepo.FindByID)
	if err != nil {
		return err
	}
	memberOrg, err := models.ResolveRef(tc.Member.Org, s.orgRepo.FindByID)
	if err != nil {
		return err
	}
	if noteOrg == nil || memberOrg == nil {
		return apperrors.ErrCrossTenantAccess
	}
	if noteOrg.ID != tc.Org.ID || memberOrg.ID != tc.Org.ID {
		return apperrors.ErrCrossTenantAccess
	}
	return nil
}

func (s *NoteService) CreateNote(tc *models.TenantContext, title, content string) (*models.Note, error) {
	note := models.Note{
		Title:   title,
		Content: content,
		Org:     models.LoadedRef(tc.Org.ID, tc.Org),
		Author:  models.LoadedRef(tc.Member.ID, tc.Member),
	}
	id, err := s.noteRepo.Insert(note)
	if err != nil {
		return nil, err
	}
	return s.noteRepo.FindByID(id)
}

// ListNotes returns the context organization's notes only; the filter is the
// ownership check for listing.
func (s *NoteService) ListNotes(tc *models.TenantContext) ([]models.Note, error) {
	return s.noteRepo.FindByOrgID(tc.Org.ID)
}

func (s *NoteService) GetNote(tc *models.TenantContext, noteIDRaw string) (*models.Note, error) {
	note, err := s.findNote(noteIDRaw)
	if err != nil {
		return nil, err
	}
	if err := s.CheckNoteOwnership(tc, note); err != nil {
		return nil, err
	}
	return note, nil
}

// DeleteNote removes a note after the ownership check. Authorship is not
// consulted: any admin of the owning organization may delete any of its
// notes.
func (s *NoteService) DeleteNote(tc *models.TenantContext, noteIDRaw string) error {
	note, err := s.findNote(noteIDRaw)
	if err != nil {
		return err
	}
	if err := s.CheckNoteOwnership(tc, note); err != nil {
		return err
	}
	return s.noteRepo.DeleteByID(note.ID)
}
