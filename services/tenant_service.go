package service

import (
	"notes-server/apperrors"
	"notes-server/models"
	"notes-server/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TenantService turns the two request-supplied identifiers into a verified
// tenant context. This is the trust boundary: everything downstream assumes
// a context returned here has already passed membership verification.
type TenantService struct {
	orgRepo    repository.OrganizationRepositoryInterface
	memberRepo repository.MemberRepositoryInterface
}

func NewTenantService(orgRepo repository.OrganizationRepositoryInterface, memberRepo repository.MemberRepositoryInterface) *TenantService {
	return &TenantService{orgRepo: orgRepo, memberRepo: memberRepo}
}

// ResolveContext validates and resolves the raw org and member identifiers.
// Each step is terminal: missing identifiers, malformed identifiers, absent
// entities and membership mismatch all short-circuit, never returning a
// partial context.
func (s *TenantService) ResolveContext(orgIDRaw, memberIDRaw string) (*models.TenantContext, error) {
	if orgIDRaw == "" || memberIDRaw == "" {
		return nil, apperrors.ErrMissingIdentifiers
	}

	orgID, err := primitive.ObjectIDFromHex(orgIDRaw)
	if err != nil {
		return nil, apperrors.ErrMalformedIdentifier
	}
	memberID, err := primitive.ObjectIDFromHex(memberIDRaw)
	if err != nil {
		return nil, apperrors.ErrMalformedIdentifier
	}

	org, err := s.orgRepo.FindByID(orgID)
	if err != nil {
		return nil, err
	}
	member, err := s.memberRepo.FindByID(memberID)
	if err != nil {
		return nil, err
	}
	if org == nil || member == nil {
		return nil, apperrors.ErrTenantEntityNotFound
	}

	memberOrg, err := models.ResolveRef(member.Org, s.orgRepo.FindByID)
	if err != nil {
		return nil, err
	}
	// A member whose org reference dangles cannot be proven to belong to the
	// claimed organization.
	if memberOrg == nil || memberOrg.ID != org.ID {
		return nil, apperrors.ErrMembershipMismatch
	}

	return &models.TenantContext{Org: org, Member: member}, nil
}
