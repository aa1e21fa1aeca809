package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

// --- Test Suite ---
type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	dob := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	req := dto.CreateClientRequest{
		FirstName:   "Ana",
		LastName:    "Pop",
		Email:       "ana.pop@example.com",
		DateOfBirth: dob,
		Subscribed:  true,
	}

	suite.mockRepo.On("SaveClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.FirstName == req.FirstName &&
			c.LastName == req.LastName &&
			c.Email == req.Email &&
			c.DateOfBirth.Equal(dob) &&
			c.Subscribed &&
			c.ClientID != "" &&
			c.CreatedBy == creatorID
	})).Return(nil).Once()

	client, err := suite.service.CreateClient(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal(req.Email, client.Email)
	suite.Equal("Ana Pop", client.FullName())
	suite.True(client.Subscribed)
	suite.NotEmpty(client.ClientID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_DuplicateEmail() {
	ctx := context.Background()
	req := dto.CreateClientRequest{
		FirstName:   "Ana",
		LastName:    "Pop",
		Email:       "ana.pop@example.com",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("domain.Client")).Return(apperrors.ErrDuplicate).Once()

	client, err := suite.service.CreateClient(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	expectedClient := &domain.Client{ClientID: clientID, FirstName: "Ana", LastName: "Pop"}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(expectedClient, nil).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().NoError(err)
	suite.Equal(expectedClient, client)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClientByID_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.GetClientByID(ctx, clientID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_Success() {
	ctx := context.Background()
	expectedClients := []domain.Client{{FirstName: "Ana"}, {FirstName: "Dan"}}

	suite.mockRepo.On("ListClients", ctx).Return(expectedClients, nil).Once()

	clients, err := suite.service.ListClients(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedClients, clients)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_EmptyRegistry() {
	ctx := context.Background()
	var expectedClients []domain.Client

	suite.mockRepo.On("ListClients", ctx).Return(expectedClients, nil).Once()

	clients, err := suite.service.ListClients(ctx)

	suite.Require().NoError(err)
	suite.NotNil(clients)
	suite.Empty(clients)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestFilterClientsByLastName() {
	ctx := context.Background()
	registry := []domain.Client{
		{FirstName: "Ana", LastName: "Popescu"},
		{FirstName: "Dan", LastName: "Pop"},
		{FirstName: "Popa", LastName: "Marin"},
	}

	suite.mockRepo.On("ListClients", ctx).Return(registry, nil).Once()

	clients, err := suite.service.FilterClientsByLastName(ctx, "Pop")

	suite.Require().NoError(err)
	// Only last names are matched; the first name "Popa" does not count.
	suite.Len(clients, 2)
	suite.Equal("Ana Popescu", clients[0].FullName())
	suite.Equal("Dan Pop", clients[1].FullName())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Client{
		ClientID:  clientID,
		FirstName: "Ana",
		LastName:  "Pop",
		Email:     "ana.pop@example.com",
	}
	req := dto.UpdateClientRequest{
		FirstName:   "Ana",
		LastName:    "Popescu",
		Email:       "ana.popescu@example.com",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Subscribed:  true,
	}

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateClient", ctx, mock.MatchedBy(func(c domain.Client) bool {
		return c.ClientID == clientID &&
			c.LastName == req.LastName &&
			c.Email == req.Email &&
			c.Subscribed &&
			c.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	client, err := suite.service.UpdateClient(ctx, clientID, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(client)
	suite.Equal(req.Email, client.Email)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestUpdateClient_NotFound() {
	ctx := context.Background()
	clientID := uuid.NewString()

	suite.mockRepo.On("FindClientByID", ctx, clientID).Return(nil, apperrors.ErrNotFound).Once()

	client, err := suite.service.UpdateClient(ctx, clientID, dto.UpdateClientRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateClient", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_Success() {
	ctx := context.Background()
	clientID := uuid.NewString()
	removed := &domain.Client{ClientID: clientID, FirstName: "Ana"}

	suite.mockRepo.On("DeleteClient", ctx, clientID).Return(removed, nil).Once()

	client, err := suite.service.DeleteClient(ctx, clientID)

	suite.Require().NoError(err)
	suite.Equal(removed, client)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestDeleteClient_RepoError() {
	ctx := context.Background()
	clientID := uuid.NewString()
	expectedErr := assert.AnError

	suite.mockRepo.On("DeleteClient", ctx, clientID).Return(nil, expectedErr).Once()

	client, err := suite.service.DeleteClient(ctx, clientID)

	suite.Require().Error(err)
	suite.Nil(client)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
