package service

import (
	"Inkstone/internal/api/config"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"context"
	"sort"
	"testing"
	"time"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Cfg = &config.Config{
		Server: config.ServerConfig{
			Port:    8080,
			AppName: "Inkstone",
			AppHost: "http://localhost:8080",
		},
		JWT: config.JWTConfig{
			Secret:               "test-secret",
			Algorithm:            "HS256",
			AccessExpireMinutes:  30,
			RefreshExpireMinutes: 10080,
			ResetExpireHours:     48,
		},
		Upload: config.UploadConfig{
			Dir:             t.TempDir(),
			ThumbnailWidth:  280,
			ThumbnailHeight: 280,
		},
	}
}

// fakeStore is an in-memory stand-in for the gorm repositories. It keeps the
// same contract: lookups return (nil, nil) when nothing matches, deletes
// cascade to owned rows.
type fakeStore struct {
	users  map[uint64]*model.User
	posts  map[uint64]*model.Post
	tags   map[uint64]*model.Tag
	images map[uint64]*model.Image
	roles  map[uint64]*model.Role
	nextID uint64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:  make(map[uint64]*model.User),
		posts:  make(map[uint64]*model.Post),
		tags:   make(map[uint64]*model.Tag),
		images: make(map[uint64]*model.Image),
		roles:  make(map[uint64]*model.Role),
	}
}

func (s *fakeStore) id() uint64 {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addRole(name string) *model.Role {
	role := &model.Role{ID: s.id(), Name: name}
	s.roles[role.ID] = role
	return role
}

func (s *fakeStore) addUser(user *model.User) *model.User {
	user.ID = s.id()
	if user.Role.ID == 0 {
		if role, ok := s.roles[user.RoleID]; ok {
			user.Role = *role
		}
	}
	s.users[user.ID] = user
	return user
}

func (s *fakeStore) addPost(post *model.Post) *model.Post {
	post.ID = s.id()
	s.posts[post.ID] = post
	return post
}

// hydrate fills the associations the real repository preloads.
func (s *fakeStore) hydrate(post *model.Post) *model.Post {
	out := *post
	if author, ok := s.users[post.AuthorID]; ok {
		out.Author = *author
	}
	out.Tags = nil
	out.Images = nil
	var tagIDs []uint64
	for id, tag := range s.tags {
		if tag.PostID == post.ID {
			tagIDs = append(tagIDs, id)
		}
	}
	sort.Slice(tagIDs, func(i, j int) bool { return tagIDs[i] < tagIDs[j] })
	for _, id := range tagIDs {
		out.Tags = append(out.Tags, *s.tags[id])
	}
	for _, image := range s.images {
		if image.PostID == post.ID {
			out.Images = append(out.Images, *image)
		}
	}
	return &out
}

func (s *fakeStore) sortedPostIDs() []uint64 {
	ids := make([]uint64, 0, len(s.posts))
	for id := range s.posts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] > ids[j] })
	return ids
}

// UserRepo

func (s *fakeStore) GetUserByID(_ context.Context, id uint64) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (s *fakeStore) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetUserByNickname(_ context.Context, nickname string) (*model.User, error) {
	for _, user := range s.users {
		if user.Nickname == nickname {
			out := *user
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) ListUsers(_ context.Context, skip, limit int) ([]*model.User, int64, error) {
	ids := make([]uint64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*model.User, 0)
	for i, id := range ids {
		if i < skip || len(users) >= limit {
			continue
		}
		out := *s.users[id]
		users = append(users, &out)
	}
	return users, int64(len(ids)), nil
}

func (s *fakeStore) CreateUser(_ context.Context, user *model.User) error {
	user.ID = s.id()
	if role, ok := s.roles[user.RoleID]; ok {
		user.Role = *role
	}
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *fakeStore) UpdateUser(_ context.Context, user *model.User) error {
	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *fakeStore) DeleteUser(_ context.Context, id uint64) error {
	for postID, post := range s.posts {
		if post.AuthorID != id {
			continue
		}
		for tagID, tag := range s.tags {
			if tag.PostID == postID {
				delete(s.tags, tagID)
			}
		}
		for imageID, image := range s.images {
			if image.PostID == postID {
				delete(s.images, imageID)
			}
		}
		delete(s.posts, postID)
	}
	delete(s.users, id)
	return nil
}

// PostRepo

func (s *fakeStore) GetPostByID(_ context.Context, id uint64) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	return s.hydrate(post), nil
}

func (s *fakeStore) GetPostByTitle(_ context.Context, title string) (*model.Post, error) {
	for _, post := range s.posts {
		if post.Title == title {
			return s.hydrate(post), nil
		}
	}
	return nil, nil
}

func (s *fakeStore) GetPostBySlug(_ context.Context, slug string) (*model.Post, error) {
	ids := s.sortedPostIDs()
	for i := len(ids) - 1; i >= 0; i-- {
		if s.posts[ids[i]].Slug == slug {
			return s.hydrate(s.posts[ids[i]]), nil
		}
	}
	return nil, nil
}

func (s *fakeStore) listWhere(match func(*model.Post) bool, skip, limit int) ([]*model.Post, int64, error) {
	var matched []*model.Post
	for _, id := range s.sortedPostIDs() {
		if match(s.posts[id]) {
			matched = append(matched, s.posts[id])
		}
	}

	posts := make([]*model.Post, 0)
	for i, post := range matched {
		if i < skip || len(posts) >= limit {
			continue
		}
		posts = append(posts, s.hydrate(post))
	}
	return posts, int64(len(matched)), nil
}

func (s *fakeStore) ListAllPosts(ctx context.Context, skip, limit int) ([]*model.Post, int64, error) {
	return s.listWhere(func(*model.Post) bool { return true }, skip, limit)
}

func (s *fakeStore) ListPublishedPosts(ctx context.Context, skip, limit int) ([]*model.Post, int64, error) {
	return s.listWhere(func(p *model.Post) bool { return p.Status == consts.PostStatusPublished }, skip, limit)
}

func (s *fakeStore) ListPostsByAuthor(ctx context.Context, authorID uint64, includeDrafts bool, skip, limit int) ([]*model.Post, int64, error) {
	return s.listWhere(func(p *model.Post) bool {
		if p.AuthorID != authorID {
			return false
		}
		return includeDrafts || p.Status == consts.PostStatusPublished
	}, skip, limit)
}

func (s *fakeStore) ListPostsByTag(ctx context.Context, tag string, viewerID uint64, includeAll bool, skip, limit int) ([]*model.Post, int64, error) {
	tagged := make(map[uint64]bool)
	for _, t := range s.tags {
		if t.Name == tag {
			tagged[t.PostID] = true
		}
	}
	return s.listWhere(func(p *model.Post) bool {
		if !tagged[p.ID] {
			return false
		}
		if includeAll {
			return true
		}
		return p.Status == consts.PostStatusPublished || (viewerID > 0 && p.AuthorID == viewerID)
	}, skip, limit)
}

func (s *fakeStore) CreatePost(_ context.Context, post *model.Post, tags []string, image *model.Image) error {
	post.ID = s.id()
	post.CreatedAt = time.Now()
	post.UpdatedAt = post.CreatedAt
	stored := *post
	s.posts[post.ID] = &stored

	for _, name := range tags {
		tag := &model.Tag{ID: s.id(), Name: name, PostID: post.ID}
		s.tags[tag.ID] = tag
	}
	if image != nil {
		image.ID = s.id()
		image.PostID = post.ID
		stored := *image
		s.images[image.ID] = &stored
	}
	return nil
}

func (s *fakeStore) UpdatePost(_ context.Context, post *model.Post, tags []string) error {
	stored := *post
	stored.Author = model.User{}
	stored.Tags = nil
	stored.Images = nil
	s.posts[post.ID] = &stored

	if tags == nil {
		return nil
	}
	for tagID, tag := range s.tags {
		if tag.PostID == post.ID {
			delete(s.tags, tagID)
		}
	}
	for _, name := range tags {
		tag := &model.Tag{ID: s.id(), Name: name, PostID: post.ID}
		s.tags[tag.ID] = tag
	}
	return nil
}

func (s *fakeStore) DeletePost(_ context.Context, id uint64) error {
	for tagID, tag := range s.tags {
		if tag.PostID == id {
			delete(s.tags, tagID)
		}
	}
	for imageID, image := range s.images {
		if image.PostID == id {
			delete(s.images, imageID)
		}
	}
	delete(s.posts, id)
	return nil
}

func (s *fakeStore) ListImageFilenames(_ context.Context) ([]string, error) {
	var filenames []string
	for _, image := range s.images {
		filenames = append(filenames, image.Filename)
	}
	return filenames, nil
}

// RoleRepo

func (s *fakeStore) GetRoleByName(_ context.Context, name string) (*model.Role, error) {
	for _, role := range s.roles {
		if role.Name == name {
			out := *role
			return &out, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) ListRoles(_ context.Context, skip, limit int) ([]*model.Role, int64, error) {
	ids := make([]uint64, 0, len(s.roles))
	for id := range s.roles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	roles := make([]*model.Role, 0)
	for i, id := range ids {
		if i < skip || len(roles) >= limit {
			continue
		}
		out := *s.roles[id]
		roles = append(roles, &out)
	}
	return roles, int64(len(ids)), nil
}

func (s *fakeStore) CreateRole(_ context.Context, role *model.Role) error {
	role.ID = s.id()
	stored := *role
	s.roles[role.ID] = &stored
	return nil
}
