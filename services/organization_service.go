package service

import (
	"notes-server/apperrors"
	"notes-server/models"
	"notes-server/repository"
)

type OrganizationService struct {
	orgRepo repository.OrganizationRepositoryInterface
}

func NewOrganizationService(orgRepo repository.OrganizationRepositoryInterface) *OrganizationService {
	return &OrganizationService{orgRepo: orgRepo}
}

// CreateOrganization inserts a new organization. The name lookup is an
// advisory pre-check; a concurrent creation slipping past it is caught by
// the unique index, which the repository reports as the same error.
func (s *OrganizationService) CreateOrganization(name, description string) (*models.Organization, error) {
	existing, err := s.orgRepo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationAlreadyExists
	}

	org := models.Organization{Name: name, Description: description}
	id, err := s.orgRepo.Insert(org)
	if err != nil {
		return nil, err
	}
	return s.orgRepo.FindByID(id)
}

func (s *OrganizationService) ListOrganizations() ([]models.Organization, error) {
	return s.orgRepo.FindAll()
}
