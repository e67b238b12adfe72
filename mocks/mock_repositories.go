// Package mocks provides map-backed in-memory repositories for tests. They
// enforce the same uniqueness rules as the Mongo unique indexes so services
// can be exercised without a database.
package mocks

import (
	"sync"
	"time"

	"notes-server/apperrors"
	"notes-server/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockOrganizationRepository struct {
	data map[primitive.ObjectID]models.Organization
	mu   sync.RWMutex
}

func NewMockOrganizationRepository() *MockOrganizationRepository {
	return &MockOrganizationRepository{
		data: make(map[primitive.ObjectID]models.Organization),
	}
}

func (m *MockOrganizationRepository) Insert(org models.Organization) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.data {
		if existing.Name == org.Name {
			return primitive.NilObjectID, apperrors.ErrOrganizationAlreadyExists
		}
	}
	if org.ID.IsZero() {
		org.ID = primitive.NewObjectID()
	}
	if org.CreatedAt.IsZero() {
		org.CreatedAt = time.Now().UTC()
	}
	m.data[org.ID] = org
	return org.ID, nil
}

func (m *MockOrganizationRepository) FindByID(id primitive.ObjectID) (*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	org, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	return &org, nil
}

func (m *MockOrganizationRepository) FindByName(name string) (*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, org := range m.data {
		if org.Name == name {
			o := org
			return &o, nil
		}
	}
	return nil, nil
}

func (m *MockOrganizationRepository) FindAll() ([]models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orgs := []models.Organization{}
	for _, org := range m.data {
		orgs = append(orgs, org)
	}
	return orgs, nil
}

func (m *MockOrganizationRepository) Delete(id primitive.ObjectID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
}

type MockMemberRepository struct {
	data map[primitive.ObjectID]models.Member
	mu   sync.RWMutex
}

func NewMockMemberRepository() *MockMemberRepository {
	return &MockMemberRepository{
		data: make(map[primitive.ObjectID]models.Member),
	}
}

func (m *MockMemberRepository) Insert(member models.Member) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.data {
		if existing.Email == member.Email && existing.Org.ID() == member.Org.ID() {
			return primitive.NilObjectID, apperrors.ErrMemberAlreadyExists
		}
	}
	if member.ID.IsZero() {
		member.ID = primitive.NewObjectID()
	}
	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
	}
	m.data[member.ID] = member
	return member.ID, nil
}

func (m *MockMemberRepository) FindByID(id primitive.ObjectID) (*models.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	member, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	return &member, nil
}

func (m *MockMemberRepository) FindByEmail(orgID primitive.ObjectID, email string) (*models.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, member := range m.data {
		if member.Email == email && member.Org.ID() == orgID {
			mm := member
			return &mm, nil
		}
	}
	return nil, nil
}

func (m *MockMemberRepository) FindByOrgID(orgID primitive.ObjectID) ([]models.Member, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	members := []models.Member{}
	for _, member := range m.data {
		if member.Org.ID() == orgID {
			members = append(members, member)
		}
	}
	return members, nil
}

type MockNoteRepository struct {
	data map[primitive.ObjectID]models.Note
	mu   sync.RWMutex
}

func NewMockNoteRepository() *MockNoteRepository {
	return &MockNoteRepository{
		data: make(map[primitive.ObjectID]models.Note),
	}
}

func (m *MockNoteRepository) Insert(note models.Note) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if note.ID.IsZero() {
		note.ID = primitive.NewObjectID()
	}
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}
	m.data[note.ID] = note
	return note.ID, nil
}

func (m *MockNoteRepository) FindByID(id primitive.ObjectID) (*models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	note, ok := m.data[id]
	if !ok {
		return nil, nil
	}
	return &note, nil
}

func (m *MockNoteRepository) FindByOrgID(orgID primitive.ObjectID) ([]models.Note, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := []models.Note{}
	for _, note := range m.data {
		if note.Org.ID() == orgID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

func (m *MockNoteRepository) DeleteByID(id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}
