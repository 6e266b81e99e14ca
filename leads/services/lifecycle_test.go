package services

import (
	"os"
	"testing"

	"dealership-backend/apperrors"
	"dealership-backend/config"
	"dealership-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Mock repositories
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) CreateLead(lead *models.Lead) (*models.Lead, error) {
	args := m.Called(lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetLeadByID(id string) (*models.Lead, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) UpdateLead(lead *models.Lead) (*models.Lead, error) {
	args := m.Called(lead)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Lead), args.Error(1)
}

func (m *MockLeadRepository) GetFilteredLeads(pageSize int, offset int, filters map[string]string) ([]models.Lead, int64, error) {
	args := m.Called(pageSize, offset, filters)
	return args.Get(0).([]models.Lead), args.Get(1).(int64), args.Error(2)
}

func (m *MockLeadRepository) GetAllLeadsFiltered(filters map[string]string) ([]models.Lead, error) {
	args := m.Called(filters)
	return args.Get(0).([]models.Lead), args.Error(1)
}

func (m *MockLeadRepository) CountByStage() (map[models.LeadStage]int64, error) {
	args := m.Called()
	return args.Get(0).(map[models.LeadStage]int64), args.Error(1)
}

func (m *MockLeadRepository) LeadIDsStuckAtC2() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByPhoneNumber(phone string) (*models.User, error) {
	args := m.Called(phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(user *models.User) (*models.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) DeleteUser(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) GetAllUsers() ([]models.User, error) {
	args := m.Called()
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserRepository) GetFilteredUsers(pageSize int, offset int, filters map[string]string) ([]models.User, int64, error) {
	args := m.Called(pageSize, offset, filters)
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) VerifyPassword(user *models.User, password string) error {
	args := m.Called(user, password)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyAssignment(lead *models.Lead) {
	m.Called(lead)
}

func (m *MockNotifier) NotifyStatusChange(lead *models.Lead) {
	m.Called(lead)
}

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

func newLead(status models.LeadStage) *models.Lead {
	return &models.Lead{
		ID:           uuid.New(),
		CustomerName: "Ravi Deshmukh",
		Phone:        "9822001122",
		ModelName:    "Altura ZX",
		Status:       status,
	}
}

func TestCreateLead_RequiresIdentity(t *testing.T) {
	svc := NewLifecycleService(new(MockLeadRepository), new(MockUserRepository), nil)

	_, err := svc.CreateLead(&models.Lead{Phone: "9822001122", ModelName: "Altura ZX"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	_, err = svc.CreateLead(&models.Lead{CustomerName: "Ravi", Phone: "9822001122"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCreateLead_ForcesC0(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead("C3") // client-supplied status must be discarded
	leads.On("CreateLead", lead).Return(lead, nil)

	created, err := svc.CreateLead(lead)
	assert.NoError(t, err)
	assert.Equal(t, models.StageC0, created.Status)
}

func TestAssignLead_RejectsNonDSE(t *testing.T) {
	leads := new(MockLeadRepository)
	users := new(MockUserRepository)
	svc := NewLifecycleService(leads, users, nil)

	lead := newLead(models.StageC0)
	manager := &models.User{ID: uuid.New(), FirstName: "Meera", Role: models.DSMRole}

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	users.On("GetUserByID", manager.ID.String()).Return(manager, nil)

	_, err := svc.AssignLead(lead.ID.String(), manager.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	assert.Nil(t, lead.AssigneeID)
	assert.Equal(t, models.StageC0, lead.Status)
	leads.AssertNotCalled(t, "UpdateLead", mock.Anything)
}

func TestAssignLead_MovesC0ToC1AndNotifies(t *testing.T) {
	leads := new(MockLeadRepository)
	users := new(MockUserRepository)
	notifier := new(MockNotifier)
	svc := NewLifecycleService(leads, users, notifier)

	lead := newLead(models.StageC0)
	dse := &models.User{
		ID:        uuid.New(),
		FirstName: "Arjun",
		LastName:  "Pawar",
		Email:     "arjun@dealership.example",
		Role:      models.DSERole,
	}

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	users.On("GetUserByID", dse.ID.String()).Return(dse, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)
	notifier.On("NotifyAssignment", lead).Return()

	updated, err := svc.AssignLead(lead.ID.String(), dse.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, models.StageC1, updated.Status)
	assert.Equal(t, dse.ID, *updated.AssigneeID)
	assert.Equal(t, "Arjun Pawar", *updated.AssigneeName)
	assert.Equal(t, dse.Email, *updated.AssigneeEmail)
	// Assignment never writes an audit entry.
	assert.Empty(t, updated.DseUpdates)
	notifier.AssertCalled(t, "NotifyAssignment", lead)
}

func TestAssignLead_KeepsLaterStage(t *testing.T) {
	leads := new(MockLeadRepository)
	users := new(MockUserRepository)
	svc := NewLifecycleService(leads, users, nil)

	lead := newLead(models.StageC2)
	dse := &models.User{ID: uuid.New(), FirstName: "Arjun", Role: models.DSERole}

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	users.On("GetUserByID", dse.ID.String()).Return(dse, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	updated, err := svc.AssignLead(lead.ID.String(), dse.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, models.StageC2, updated.Status)
}

func TestApplyDseUpdate_ForbiddenForStranger(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC1)
	assigneeID := uuid.New()
	lead.AssigneeID = &assigneeID

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)

	actor := Actor{ID: uuid.New().String(), Name: "Someone Else", Role: models.DSERole}
	status := models.StageC2
	_, err := svc.ApplyDseUpdate(lead.ID.String(), actor, &status, "customer visited")

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Empty(t, lead.DseUpdates)
	leads.AssertNotCalled(t, "UpdateLead", mock.Anything)
}

func TestApplyDseUpdate_ElevatedRoleBypassesAssignment(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC1)
	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	actor := Actor{ID: uuid.New().String(), Name: "Meera", Role: models.DSMRole}
	status := models.StageC2
	updated, err := svc.ApplyDseUpdate(lead.ID.String(), actor, &status, "price negotiated")

	assert.NoError(t, err)
	assert.Equal(t, models.StageC2, updated.Status)
}

func TestApplyDseUpdate_RejectsInvalidStage(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC1)
	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)

	actor := Actor{ID: "x", Name: "Admin", Role: models.AdminRole}
	bad := models.LeadStage("C9")
	_, err := svc.ApplyDseUpdate(lead.ID.String(), actor, &bad, "typo")

	assert.ErrorIs(t, err, apperrors.ErrInvalidStatus)
	leads.AssertNotCalled(t, "UpdateLead", mock.Anything)
}

func TestApplyDseUpdate_AppendsAuditEntry(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC1)
	assigneeID := uuid.New()
	lead.AssigneeID = &assigneeID

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	actor := Actor{ID: assigneeID.String(), Name: "Arjun Pawar", Role: models.DSERole}
	status := models.StageC2
	updated, err := svc.ApplyDseUpdate(lead.ID.String(), actor, &status, "test drive done")

	assert.NoError(t, err)
	assert.Len(t, updated.DseUpdates, 1)
	entry := updated.DseUpdates[0]
	assert.Equal(t, actor.ID, entry.ActorID)
	assert.Equal(t, "test drive done", entry.Message)
	assert.Equal(t, models.StageC1, entry.StatusFrom)
	assert.Equal(t, models.StageC2, entry.StatusTo)
	assert.Equal(t, models.StageC2, updated.Status)
}

func TestApplyDseUpdate_NoteWithoutStatusChange(t *testing.T) {
	leads := new(MockLeadRepository)
	notifier := new(MockNotifier)
	svc := NewLifecycleService(leads, new(MockUserRepository), notifier)

	lead := newLead(models.StageC2)
	assigneeID := uuid.New()
	lead.AssigneeID = &assigneeID

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	actor := Actor{ID: assigneeID.String(), Name: "Arjun", Role: models.DSERole}
	updated, err := svc.ApplyDseUpdate(lead.ID.String(), actor, nil, "called, no answer")

	assert.NoError(t, err)
	assert.Equal(t, models.StageC2, updated.Status)
	// The note is logged even though the status held.
	assert.Len(t, updated.DseUpdates, 1)
	assert.Equal(t, models.StageC2, updated.DseUpdates[0].StatusFrom)
	assert.Equal(t, models.StageC2, updated.DseUpdates[0].StatusTo)
	// No status movement, no push.
	notifier.AssertNotCalled(t, "NotifyStatusChange", mock.Anything)
}

func TestApplyDseUpdate_NotifiesOnStatusMove(t *testing.T) {
	leads := new(MockLeadRepository)
	notifier := new(MockNotifier)
	svc := NewLifecycleService(leads, new(MockUserRepository), notifier)

	lead := newLead(models.StageC1)
	assigneeID := uuid.New()
	lead.AssigneeID = &assigneeID

	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)
	notifier.On("NotifyStatusChange", lead).Return()

	actor := Actor{ID: assigneeID.String(), Name: "Arjun", Role: models.DSERole}
	status := models.StageC2
	_, err := svc.ApplyDseUpdate(lead.ID.String(), actor, &status, "deal agreed")

	assert.NoError(t, err)
	notifier.AssertCalled(t, "NotifyStatusChange", lead)
}

func TestFinalizeCosting_MovesC2ToC3(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC2)
	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	err := svc.FinalizeCosting(lead.ID.String())
	assert.NoError(t, err)
	assert.Equal(t, models.StageC3, lead.Status)
	assert.Len(t, lead.DseUpdates, 1)
	assert.Equal(t, "system", lead.DseUpdates[0].ActorID)
}

func TestFinalizeCosting_NoOpOffC2(t *testing.T) {
	for _, stage := range []models.LeadStage{models.StageC0, models.StageC1, models.StageC3, models.StageQuotation} {
		leads := new(MockLeadRepository)
		svc := NewLifecycleService(leads, new(MockUserRepository), nil)

		lead := newLead(stage)
		leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)

		err := svc.FinalizeCosting(lead.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, stage, lead.Status)
		assert.Empty(t, lead.DseUpdates)
		leads.AssertNotCalled(t, "UpdateLead", mock.Anything)
	}
}

func TestFinalizeCosting_Idempotent(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC2)
	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	// First delivery transitions, redelivery finds C3 and does nothing.
	assert.NoError(t, svc.FinalizeCosting(lead.ID.String()))
	assert.NoError(t, svc.FinalizeCosting(lead.ID.String()))

	assert.Equal(t, models.StageC3, lead.Status)
	assert.Len(t, lead.DseUpdates, 1)
	leads.AssertNumberOfCalls(t, "UpdateLead", 1)
}

func TestMarkQuoted_SetsQuotationStatus(t *testing.T) {
	leads := new(MockLeadRepository)
	svc := NewLifecycleService(leads, new(MockUserRepository), nil)

	lead := newLead(models.StageC3)
	leads.On("GetLeadByID", lead.ID.String()).Return(lead, nil)
	leads.On("UpdateLead", lead).Return(lead, nil)

	actor := Actor{ID: "u1", Name: "Meera", Role: models.DSMRole}
	updated, err := svc.MarkQuoted(lead.ID.String(), actor)

	assert.NoError(t, err)
	assert.Equal(t, models.StageQuotation, updated.Status)
	assert.Len(t, updated.DseUpdates, 1)
	assert.Equal(t, models.StageC3, updated.DseUpdates[0].StatusFrom)
	assert.Equal(t, models.StageQuotation, updated.DseUpdates[0].StatusTo)
}
