// Package service contains the business rules sitting between the HTTP
// handlers and the repositories.
package service

import (
	"context"
	"strings"

	"mediafeed/internal/cache"
	"mediafeed/internal/media"
	"mediafeed/internal/models"
	"mediafeed/internal/repository"
)

type PostService struct {
	postRepo repository.PostRepository
}

type CreatePostInput struct {
	UserID   uint
	Title    string
	MediaURL string
}

type UpdatePostInput struct {
	UserID   uint
	PostID   uint
	Title    string
	MediaURL string
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

const maxTitleLen = 300

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if len(in.Title) > maxTitleLen {
		return nil, models.NewValidationError("Title too long (max 300 characters)")
	}
	if strings.TrimSpace(in.MediaURL) == "" {
		return nil, models.NewValidationError("Post media URL is required")
	}

	post := &models.Post{
		Title:    in.Title,
		MediaURL: in.MediaURL,
		UserID:   in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	annotateMediaType(post)
	return post, nil
}

// ListFeed returns the public feed, cache-aside on the feed key.
func (s *PostService) ListFeed(ctx context.Context) ([]*models.Post, error) {
	posts := []*models.Post{}
	err := cache.Aside(ctx, cache.FeedKey(), &posts, cache.FeedTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.List(ctx)
		return fetchErr
	})
	if err != nil {
		return nil, err
	}

	for _, p := range posts {
		annotateMediaType(p)
	}
	return posts, nil
}

func (s *PostService) ListByOwner(ctx context.Context, ownerID uint) ([]*models.Post, error) {
	posts, err := s.postRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		annotateMediaType(p)
	}
	return posts, nil
}

// UpdatePost applies the patch after the existence and ownership checks.
// The read-then-check-then-write sequence carries no CAS guard; two racing
// owner mutations can lose an update, which is accepted.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You are not authorized to update this post")
	}

	if in.Title != "" {
		if len(in.Title) > maxTitleLen {
			return nil, models.NewValidationError("Title too long (max 300 characters)")
		}
		post.Title = in.Title
	}
	if in.MediaURL != "" {
		post.MediaURL = in.MediaURL
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	annotateMediaType(post)
	return post, nil
}

// DeletePost removes the post after the same checks as update and returns
// the deleted record.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.UserID != in.UserID {
		return nil, models.NewForbiddenError("You are not authorized to delete this post")
	}

	if err := s.postRepo.Delete(ctx, in.PostID); err != nil {
		return nil, err
	}

	annotateMediaType(post)
	return post, nil
}

// annotateMediaType derives the render type from the stored URL. The store
// keeps only the raw reference; classification happens on every read.
func annotateMediaType(p *models.Post) {
	p.MediaType = string(media.Classify(p.MediaURL))
}
