package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"moview-api/internal/data/catalog"
	"moview-api/internal/data/entity"
	"moview-api/internal/data/repository"

	"github.com/google/uuid"
)

// ==================== REPOSITORY FAKES ====================

type fakeUserRepo struct {
	users   map[uuid.UUID]*entity.User
	failAll bool
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.failAll {
		return errors.New("user repo down")
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("user repo down")
	}
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("user repo down")
	}
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if f.failAll {
		return nil, errors.New("user repo down")
	}
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type fakeReviewRepo struct {
	reviews    []*entity.Review
	failCreate bool
	failRead   bool
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	if f.failCreate {
		return errors.New("review repo down")
	}
	stored := *review
	f.reviews = append(f.reviews, &stored)
	return nil
}

func (f *fakeReviewRepo) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Review, error) {
	if f.failRead {
		return nil, errors.New("review repo down")
	}
	var result []*entity.Review
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			result = append(result, r)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (f *fakeReviewRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	if f.failRead {
		return nil, errors.New("review repo down")
	}
	var result []*entity.Review
	for _, r := range f.reviews {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	sortNewestFirst(result)
	return result, nil
}

func (f *fakeReviewRepo) FindByUserAndMovie(ctx context.Context, userID uuid.UUID, movieID int64) (*entity.Review, error) {
	if f.failRead {
		return nil, errors.New("review repo down")
	}
	for _, r := range f.reviews {
		if r.UserID == userID && r.MovieID == movieID {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) GetMovieReviewStats(ctx context.Context, movieID int64) (float64, int64, error) {
	if f.failRead {
		return 0, 0, errors.New("review repo down")
	}
	var sum, count int64
	for _, r := range f.reviews {
		if r.MovieID == movieID {
			sum += int64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}

func sortNewestFirst(reviews []*entity.Review) {
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].CreatedAt.After(reviews[j].CreatedAt)
	})
}

func newFakeRepository(userRepo repository.UserRepository, reviewRepo repository.ReviewRepository) *repository.Repository {
	return &repository.Repository{
		User:   userRepo,
		Review: reviewRepo,
	}
}

// ==================== CATALOG FAKE ====================

type fakeCatalog struct {
	details     map[int64]*catalog.Movie
	popular     map[int][]catalog.Movie
	totalPages  int
	failPopular bool
	failDetails bool
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		details:    make(map[int64]*catalog.Movie),
		popular:    make(map[int][]catalog.Movie),
		totalPages: 1,
	}
}

func (f *fakeCatalog) Popular(ctx context.Context, page int) (*catalog.Page, error) {
	if f.failPopular {
		return nil, errors.New("tmdb down")
	}
	return &catalog.Page{
		Page:       page,
		Results:    f.popular[page],
		TotalPages: f.totalPages,
	}, nil
}

func (f *fakeCatalog) Search(ctx context.Context, query string, page int) (*catalog.Page, error) {
	if f.failPopular {
		return nil, errors.New("tmdb down")
	}
	var results []catalog.Movie
	for _, movies := range f.popular {
		results = append(results, movies...)
	}
	return &catalog.Page{Page: page, Results: results, TotalPages: 1}, nil
}

func (f *fakeCatalog) Details(ctx context.Context, movieID int64) (*catalog.Movie, error) {
	if f.failDetails {
		return nil, errors.New("tmdb down")
	}
	movie, ok := f.details[movieID]
	if !ok {
		return nil, fmt.Errorf("fetch movie %d details: %w", movieID, catalog.ErrMovieNotFound)
	}
	return movie, nil
}

// ==================== SENTIMENT FAKE ====================

type failingAnalyzer struct{}

func (failingAnalyzer) Classify(text string) (entity.Sentiment, float64, error) {
	return "", 0, errors.New("labeler unreachable")
}
