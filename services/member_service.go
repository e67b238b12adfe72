package service

import (
	"notes-server/apperrors"
	"notes-server/models"
	"notes-server/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MemberService struct {
	orgRepo    repository.OrganizationRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
}

func NewMemberService(orgRepo repository.OrganizationRepositoryInterface, memberRepo repository.MemberRepositoryInterface) *MemberService {
	return &MemberService{orgRepo: orgRepo, memberRepo: memberRepo}
}

// findOrganization resolves the path-supplied org id. A malformed id is
// indistinguishable from a missing organization to the caller.
func (s *MemberService) findOrganization(orgIDRaw string) (*models.Organization, error) {
	orgID, err := primitive.ObjectIDFromHex(orgIDRaw)
	if err != nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, apperrors.ErrOrganizationNotFound
	}
	return org, nil
}

// CreateMember creates a member inside the given organization. Email must be
// unique within that organization only; the same address may exist in any
// number of other organizations. The organization reference is set once here
// and never changes.
func (s *MemberService) CreateMember(orgIDRaw, email, fullName string, role models.Role) (*models.Member, error) {
	org, err := s.findOrganization(orgIDRaw)
	if err != nil {
		return nil, err
	}

	existing, err := s.memberRepo.FindByEmail(org.ID, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrMemberAlreadyExists
	}

	member := models.Member{
		Email:    email,
		FullName: fullName,
		Role:     role,
		Org:      models.LoadedRef(org.ID, org),
	}
	id, err := s.memberRepo.Insert(member)
	if err != nil {
		return nil, err
	}
	return s.memberRepo.FindByID(id)
}

func (s *MemberService) ListMembers(orgIDRaw string) ([]models.Member, error) {
	org, err := s.findOrganization(orgIDRaw)
	if err != nil {
		return nil, err
	}
	return s.memberRepo.FindByOrgID(org.ID)
}
