package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/repository"
	"context"
	"errors"
	"io"
	log "log/slog"
)

type PostService struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	postDTO := &dto.PostDTO{
		ID:          post.ID,
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		Slug:        post.Slug,
		Poster:      post.Poster,
		Status:      post.Status,
		Author: dto.PostAuthorDTO{
			ID:       post.AuthorID,
			Nickname: post.Author.Nickname,
		},
		Tags:      make([]dto.TagDTO, 0, len(post.Tags)),
		Images:    make([]dto.ImageDTO, 0, len(post.Images)),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
	for _, tag := range post.Tags {
		postDTO.Tags = append(postDTO.Tags, dto.TagDTO{ID: tag.ID, Name: tag.Name})
	}
	for _, image := range post.Images {
		postDTO.Images = append(postDTO.Images, dto.ImageDTO{ID: image.ID, Filename: image.Filename})
	}
	return postDTO
}

func toPostListDTO(posts []*model.Post, count int64) *dto.PostListDTO {
	data := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		data = append(data, toPostDTO(post))
	}
	return &dto.PostListDTO{Data: data, Count: count}
}

// canView reports whether the viewer may read the post. Drafts are visible
// to their author and to superusers only.
func canView(post *model.Post, viewerID uint64, viewerIsSuper bool) bool {
	if post.Status == consts.PostStatusPublished {
		return true
	}
	return viewerIsSuper || post.AuthorID == viewerID
}

// ListPosts scopes the listing to the viewer: superusers see everything,
// authenticated users their own posts, anonymous visitors published posts.
func (s *PostService) ListPosts(ctx context.Context, viewerID uint64, viewerIsSuper bool, skip, limit int) (*dto.PostListDTO, error) {
	var (
		posts []*model.Post
		count int64
		err   error
	)
	switch {
	case viewerIsSuper:
		posts, count, err = s.postRepo.ListAllPosts(ctx, skip, limit)
	case viewerID > 0:
		posts, count, err = s.postRepo.ListPostsByAuthor(ctx, viewerID, true, skip, limit)
	default:
		posts, count, err = s.postRepo.ListPublishedPosts(ctx, skip, limit)
	}
	if err != nil {
		log.ErrorContext(ctx, "list posts failed", "err", err)
		return nil, UnExpectedError
	}
	return toPostListDTO(posts, count), nil
}

func (s *PostService) GetPost(ctx context.Context, viewerID uint64, viewerIsSuper bool, id uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "get post failed", "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !canView(post, viewerID, viewerIsSuper) {
		return nil, ErrNotPermitted
	}
	return toPostDTO(post), nil
}

func (s *PostService) GetPostBySlug(ctx context.Context, viewerID uint64, viewerIsSuper bool, slug string) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		log.ErrorContext(ctx, "get post by slug failed", "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !canView(post, viewerID, viewerIsSuper) {
		return nil, ErrNotPermitted
	}
	return toPostDTO(post), nil
}

// GetPostsByAuthor lists an author's posts by nickname; drafts are included
// only for the author themselves and for superusers.
func (s *PostService) GetPostsByAuthor(ctx context.Context, viewerID uint64, viewerIsSuper bool, nickname string, skip, limit int) (*dto.PostListDTO, error) {
	author, err := s.userRepo.GetUserByNickname(ctx, nickname)
	if err != nil {
		log.ErrorContext(ctx, "author query failed", "err", err)
		return nil, UnExpectedError
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	includeDrafts := viewerIsSuper || author.ID == viewerID
	posts, count, err := s.postRepo.ListPostsByAuthor(ctx, author.ID, includeDrafts, skip, limit)
	if err != nil {
		log.ErrorContext(ctx, "list posts by author failed", "err", err)
		return nil, UnExpectedError
	}
	return toPostListDTO(posts, count), nil
}

func (s *PostService) GetPostsByTag(ctx context.Context, viewerID uint64, viewerIsSuper bool, tag string, skip, limit int) (*dto.PostListDTO, error) {
	posts, count, err := s.postRepo.ListPostsByTag(ctx, tag, viewerID, viewerIsSuper, skip, limit)
	if err != nil {
		log.ErrorContext(ctx, "list posts by tag failed", "err", err)
		return nil, UnExpectedError
	}
	return toPostListDTO(posts, count), nil
}

// CreatePost stores the thumbnail first and only then writes any rows, so a
// broken upload leaves no post behind.
func (s *PostService) CreatePost(ctx context.Context, authorID uint64, form *dto.CreatePostForm, file io.Reader) (*dto.PostDTO, error) {
	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		log.ErrorContext(ctx, "create post author query failed", "err", err)
		return nil, UnExpectedError
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	existing, err := s.postRepo.GetPostByTitle(ctx, form.Title)
	if err != nil {
		log.ErrorContext(ctx, "create post title query failed", "err", err)
		return nil, UnExpectedError
	}
	if existing != nil {
		return nil, ErrTitleExists
	}

	filename, err := util.SaveThumbnail(file, author.Email)
	if err != nil {
		if errors.Is(err, util.ErrNotAnImage) {
			return nil, ErrInvalidImage
		}
		log.ErrorContext(ctx, "save thumbnail failed", "err", err)
		return nil, UnExpectedError
	}

	status := form.Status
	if status == "" {
		status = consts.PostStatusDraft
	}

	post := &model.Post{
		AuthorID:    authorID,
		Title:       form.Title,
		Description: form.Description,
		Content:     form.Content,
		Slug:        util.Slugify(form.Title),
		Poster:      filename,
		Status:      status,
	}
	tags := util.NormalizeTags(form.Tags)
	image := &model.Image{Filename: filename}

	if err := s.postRepo.CreatePost(ctx, post, tags, image); err != nil {
		log.ErrorContext(ctx, "create post failed", "err", err)
		return nil, UnExpectedError
	}

	created, err := s.postRepo.GetPostByID(ctx, post.ID)
	if err != nil || created == nil {
		log.ErrorContext(ctx, "create post reload failed", "err", err)
		return nil, UnExpectedError
	}
	return toPostDTO(created), nil
}

// UpdatePost applies a partial edit. The slug keeps its original value even
// when the title changes, and retitling to any existing title, including the
// post's own, is rejected.
func (s *PostService) UpdatePost(ctx context.Context, actorID uint64, actorIsSuper bool, id uint64, updateDTO *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "update post query failed", "err", err)
		return nil, UnExpectedError
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.AuthorID != actorID && !actorIsSuper {
		return nil, ErrNotPermitted
	}

	if updateDTO.Title != nil {
		other, err := s.postRepo.GetPostByTitle(ctx, *updateDTO.Title)
		if err != nil {
			log.ErrorContext(ctx, "update post title query failed", "err", err)
			return nil, UnExpectedError
		}
		if other != nil {
			return nil, ErrTitleExists
		}
		post.Title = *updateDTO.Title
	}
	if updateDTO.Description != nil {
		post.Description = *updateDTO.Description
	}
	if updateDTO.Content != nil {
		post.Content = *updateDTO.Content
	}
	if updateDTO.Status != nil {
		post.Status = *updateDTO.Status
	}

	var tags []string
	if updateDTO.Tags != nil {
		tags = util.NormalizeTags(*updateDTO.Tags)
		if tags == nil {
			tags = []string{}
		}
	}

	if err := s.postRepo.UpdatePost(ctx, post, tags); err != nil {
		log.ErrorContext(ctx, "update post failed", "err", err)
		return nil, UnExpectedError
	}

	updated, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil || updated == nil {
		log.ErrorContext(ctx, "update post reload failed", "err", err)
		return nil, UnExpectedError
	}
	return toPostDTO(updated), nil
}

// DeletePost removes a post with its tags and image records. Missing post
// wins over missing permission.
func (s *PostService) DeletePost(ctx context.Context, actorID uint64, actorIsSuper bool, id uint64) error {
	post, err := s.postRepo.GetPostByID(ctx, id)
	if err != nil {
		log.ErrorContext(ctx, "delete post query failed", "err", err)
		return UnExpectedError
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != actorID && !actorIsSuper {
		return ErrNotPermitted
	}

	if err := s.postRepo.DeletePost(ctx, id); err != nil {
		log.ErrorContext(ctx, "delete post failed", "err", err)
		return UnExpectedError
	}
	return nil
}
