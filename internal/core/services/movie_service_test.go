package services_test

import (
	"context"
	"testing"

	"github.com/MihaiS-git/MovieRentalsSystem/internal/apperrors"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/domain"
	portssvc "github.com/MihaiS-git/MovieRentalsSystem/internal/core/ports/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/core/services"
	"github.com/MihaiS-git/MovieRentalsSystem/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock MovieRepository ---
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) SaveMovie(ctx context.Context, movie domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) FindMovieByID(ctx context.Context, movieID string) (*domain.Movie, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}

func (m *MockMovieRepository) UpdateMovie(ctx context.Context, movie domain.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *MockMovieRepository) DeleteMovie(ctx context.Context, movieID string) (*domain.Movie, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movie), args.Error(1)
}

// --- Test Suite ---
type MovieServiceTestSuite struct {
	suite.Suite
	mockRepo *MockMovieRepository
	service  portssvc.MovieSvcFacade
}

func (suite *MovieServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockMovieRepository)
	suite.service = services.NewMovieService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *MovieServiceTestSuite) TestCreateMovie_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateMovieRequest{
		Title:       "Heat",
		ReleaseYear: 1995,
		Genre:       string(domain.GenreAction),
		Rating:      string(domain.RatingR),
		RentalPrice: decimal.NewFromFloat(4.50),
		Available:   true,
	}

	suite.mockRepo.On("SaveMovie", ctx, mock.MatchedBy(func(m domain.Movie) bool {
		return m.Title == req.Title &&
			m.ReleaseYear == req.ReleaseYear &&
			m.Genre == domain.GenreAction &&
			m.Rating == domain.RatingR &&
			m.RentalPrice.Equal(req.RentalPrice) &&
			m.Available &&
			m.MovieID != "" &&
			m.CreatedBy == creatorID &&
			m.LastUpdatedBy == creatorID
	})).Return(nil).Once()

	movie, err := suite.service.CreateMovie(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(movie)
	suite.Equal(req.Title, movie.Title)
	suite.True(movie.RentalPrice.Equal(req.RentalPrice))
	suite.True(movie.Available)
	suite.Equal(creatorID, movie.CreatedBy)
	suite.NotEmpty(movie.MovieID)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestCreateMovie_SaveError() {
	ctx := context.Background()
	req := dto.CreateMovieRequest{
		Title:       "Broken",
		ReleaseYear: 2001,
		Genre:       string(domain.GenreDrama),
		Rating:      string(domain.RatingPG13),
		RentalPrice: decimal.NewFromFloat(3.00),
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveMovie", ctx, mock.AnythingOfType("domain.Movie")).Return(expectedErr).Once()

	movie, err := suite.service.CreateMovie(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movie)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestGetMovieByID_Success() {
	ctx := context.Background()
	movieID := uuid.NewString()
	expectedMovie := &domain.Movie{MovieID: movieID, Title: "Alien"}

	suite.mockRepo.On("FindMovieByID", ctx, movieID).Return(expectedMovie, nil).Once()

	movie, err := suite.service.GetMovieByID(ctx, movieID)

	suite.Require().NoError(err)
	suite.Equal(expectedMovie, movie)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestGetMovieByID_NotFound() {
	ctx := context.Background()
	movieID := uuid.NewString()

	suite.mockRepo.On("FindMovieByID", ctx, movieID).Return(nil, apperrors.ErrNotFound).Once()

	movie, err := suite.service.GetMovieByID(ctx, movieID)

	suite.Require().Error(err)
	suite.Nil(movie)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestListMovies_Success() {
	ctx := context.Background()
	expectedMovies := []domain.Movie{{Title: "Heat"}, {Title: "Alien"}}

	suite.mockRepo.On("ListMovies", ctx).Return(expectedMovies, nil).Once()

	movies, err := suite.service.ListMovies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedMovies, movies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestListMovies_EmptyCatalogue() {
	ctx := context.Background()
	var expectedMovies []domain.Movie

	suite.mockRepo.On("ListMovies", ctx).Return(expectedMovies, nil).Once()

	movies, err := suite.service.ListMovies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(movies)
	suite.Empty(movies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestFilterMoviesByTitle() {
	ctx := context.Background()
	catalogue := []domain.Movie{
		{Title: "The Godfather"},
		{Title: "The Godfather Part II"},
		{Title: "Alien"},
	}

	suite.mockRepo.On("ListMovies", ctx).Return(catalogue, nil).Once()

	movies, err := suite.service.FilterMoviesByTitle(ctx, "Godfather")

	suite.Require().NoError(err)
	suite.Len(movies, 2)
	suite.Equal("The Godfather", movies[0].Title)
	suite.Equal("The Godfather Part II", movies[1].Title)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestFilterMoviesByTitle_NoMatch() {
	ctx := context.Background()
	catalogue := []domain.Movie{{Title: "Heat"}}

	suite.mockRepo.On("ListMovies", ctx).Return(catalogue, nil).Once()

	movies, err := suite.service.FilterMoviesByTitle(ctx, "Godfather")

	suite.Require().NoError(err)
	suite.NotNil(movies)
	suite.Empty(movies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestUpdateMovie_Success() {
	ctx := context.Background()
	movieID := uuid.NewString()
	updaterID := uuid.NewString()
	existing := &domain.Movie{
		MovieID:     movieID,
		Title:       "Heat",
		ReleaseYear: 1995,
		Genre:       domain.GenreAction,
		Rating:      domain.RatingR,
		RentalPrice: decimal.NewFromFloat(4.50),
		Available:   true,
	}
	req := dto.UpdateMovieRequest{
		Title:       "Heat (Remastered)",
		ReleaseYear: 1995,
		Genre:       string(domain.GenreThriller),
		Rating:      string(domain.RatingR),
		RentalPrice: decimal.NewFromFloat(5.00),
		Available:   false,
	}

	suite.mockRepo.On("FindMovieByID", ctx, movieID).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateMovie", ctx, mock.MatchedBy(func(m domain.Movie) bool {
		return m.MovieID == movieID &&
			m.Title == req.Title &&
			m.Genre == domain.GenreThriller &&
			m.RentalPrice.Equal(req.RentalPrice) &&
			!m.Available &&
			m.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	movie, err := suite.service.UpdateMovie(ctx, movieID, req, updaterID)

	suite.Require().NoError(err)
	suite.Require().NotNil(movie)
	suite.Equal(req.Title, movie.Title)
	suite.Equal(updaterID, movie.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestUpdateMovie_NotFound() {
	ctx := context.Background()
	movieID := uuid.NewString()

	suite.mockRepo.On("FindMovieByID", ctx, movieID).Return(nil, apperrors.ErrNotFound).Once()

	movie, err := suite.service.UpdateMovie(ctx, movieID, dto.UpdateMovieRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(movie)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateMovie", mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestDeleteMovie_Success() {
	ctx := context.Background()
	movieID := uuid.NewString()
	removed := &domain.Movie{MovieID: movieID, Title: "Heat"}

	suite.mockRepo.On("DeleteMovie", ctx, movieID).Return(removed, nil).Once()

	movie, err := suite.service.DeleteMovie(ctx, movieID)

	suite.Require().NoError(err)
	suite.Equal(removed, movie)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *MovieServiceTestSuite) TestDeleteMovie_NotFound() {
	ctx := context.Background()
	movieID := uuid.NewString()

	suite.mockRepo.On("DeleteMovie", ctx, movieID).Return(nil, apperrors.ErrNotFound).Once()

	movie, err := suite.service.DeleteMovie(ctx, movieID)

	suite.Require().Error(err)
	suite.Nil(movie)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestMovieServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MovieServiceTestSuite))
}
