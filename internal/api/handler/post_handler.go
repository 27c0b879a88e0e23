package handler

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/pkg/response"
	"Inkstone/internal/pkg/util"
	"Inkstone/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc *service.PostService
}

func NewPostHandler(postSvc *service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// ListPosts handles GET /post.
func (s *PostHandler) ListPosts(c *gin.Context) {
	skip, limit := pagination(c)

	posts, err := s.postSvc.ListPosts(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPost handles GET /post/:id.
func (s *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	post, err := s.postSvc.GetPost(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPostBySlug handles GET /post/slug/:slug.
func (s *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := s.postSvc.GetPostBySlug(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), c.Param("slug"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// GetPostsByAuthor handles GET /post/author/:nickname.
func (s *PostHandler) GetPostsByAuthor(c *gin.Context) {
	skip, limit := pagination(c)

	posts, err := s.postSvc.GetPostsByAuthor(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), c.Param("nickname"), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// GetPostsByTag handles GET /post/tag/:tag.
func (s *PostHandler) GetPostsByTag(c *gin.Context) {
	skip, limit := pagination(c)

	posts, err := s.postSvc.GetPostsByTag(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), c.Param("tag"), skip, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

// CreatePost handles POST /post. The body is a multipart form with the post
// fields plus the thumbnail under "file".
func (s *PostHandler) CreatePost(c *gin.Context) {
	var form dto.CreatePostForm
	if err := c.ShouldBind(&form); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&form); err != nil {
		response.Error(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Fail(c, response.BadRequest, "thumbnail file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	post, err := s.postSvc.CreatePost(c.Request.Context(), c.GetUint64("user_id"), &form, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// UpdatePost handles PUT /post/:id.
func (s *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	var updateDTO dto.UpdatePostDTO
	if err := c.ShouldBind(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), id, &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// DeletePost handles DELETE /post/:id.
func (s *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, service.ErrParamInvalid.Error())
		return
	}

	if err := s.postSvc.DeletePost(c.Request.Context(), c.GetUint64("user_id"), c.GetBool("is_superuser"), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"msg": "post deleted successfully"})
}
