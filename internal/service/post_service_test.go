package service

import (
	"Inkstone/internal/api/dto"
	"Inkstone/internal/model"
	"Inkstone/internal/pkg/consts"
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostServiceFixture(t *testing.T) (*PostService, *fakeStore) {
	setTestConfig(t)
	store := newFakeStore()
	store.addRole(consts.RoleUser)
	return NewPostService(store, store), store
}

func pngReader(t *testing.T) *bytes.Reader {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for x := 0; x < 640; x += 8 {
		for y := 0; y < 480; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return bytes.NewReader(buf.Bytes())
}

func TestCreatePost(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})

	created, err := svc.CreatePost(ctx, alice.ID, &dto.CreatePostForm{
		Title:       "My First Go Adventure",
		Description: "learning notes",
		Content:     "body",
		Tags:        "Go, Web-Dev, Go ",
	}, pngReader(t))
	require.NoError(t, err)

	assert.Equal(t, "my_first_go_adventure", created.Slug)
	assert.Equal(t, consts.PostStatusDraft, created.Status)
	assert.Equal(t, "alice", created.Author.Nickname)

	// tags are lowercased, stripped to letters and digits, duplicates kept
	names := make([]string, 0, len(created.Tags))
	for _, tag := range created.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"go", "webdev", "go"}, names)

	// thumbnail lands on disk and the poster points at it
	require.NotEmpty(t, created.Poster)
	assert.Contains(t, created.Poster, "alice@example.com")
	_, err = os.Stat(created.Poster)
	require.NoError(t, err)

	require.Len(t, created.Images, 1)
	assert.Equal(t, created.Poster, created.Images[0].Filename)
}

func TestCreatePostDuplicateTitle(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})
	store.addPost(&model.Post{AuthorID: alice.ID, Title: "My First Go Adventure"})

	_, err := svc.CreatePost(ctx, alice.ID, &dto.CreatePostForm{
		Title:       "My First Go Adventure",
		Description: "d",
		Content:     "c",
	}, pngReader(t))
	assert.ErrorIs(t, err, ErrTitleExists)
}

func TestCreatePostInvalidImage(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})

	_, err := svc.CreatePost(ctx, alice.ID, &dto.CreatePostForm{
		Title:       "A Post With A Broken File",
		Description: "d",
		Content:     "c",
	}, strings.NewReader("this is not an image"))
	assert.ErrorIs(t, err, ErrInvalidImage)

	// nothing was written
	assert.Empty(t, store.posts)
	assert.Empty(t, store.images)
}

func TestGetPostVisibility(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})
	bob := store.addUser(&model.User{Email: "bob@example.com", Nickname: "bob", IsActive: true})

	published := store.addPost(&model.Post{AuthorID: alice.ID, Title: "a published story here", Status: consts.PostStatusPublished})
	draft := store.addPost(&model.Post{AuthorID: alice.ID, Title: "a hidden draft of mine", Status: consts.PostStatusDraft, Slug: "a_hidden_draft_of_mine"})

	// anyone reads published posts
	got, err := svc.GetPost(ctx, 0, false, published.ID)
	require.NoError(t, err)
	assert.Equal(t, published.ID, got.ID)

	// drafts are for the author and superusers
	_, err = svc.GetPost(ctx, 0, false, draft.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)
	_, err = svc.GetPost(ctx, bob.ID, false, draft.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)

	_, err = svc.GetPost(ctx, alice.ID, false, draft.ID)
	require.NoError(t, err)
	_, err = svc.GetPost(ctx, bob.ID, true, draft.ID)
	require.NoError(t, err)

	// slug reads follow the same rule
	_, err = svc.GetPostBySlug(ctx, 0, false, "a_hidden_draft_of_mine")
	assert.ErrorIs(t, err, ErrNotPermitted)
	got, err = svc.GetPostBySlug(ctx, alice.ID, false, "a_hidden_draft_of_mine")
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.ID)

	_, err = svc.GetPost(ctx, 0, false, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)
	_, err = svc.GetPostBySlug(ctx, 0, false, "no_such_slug")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPostsScoping(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})
	bob := store.addUser(&model.User{Email: "bob@example.com", Nickname: "bob", IsActive: true})

	store.addPost(&model.Post{AuthorID: alice.ID, Title: "published post by alice", Status: consts.PostStatusPublished})
	store.addPost(&model.Post{AuthorID: alice.ID, Title: "draft post kept by alice", Status: consts.PostStatusDraft})
	store.addPost(&model.Post{AuthorID: bob.ID, Title: "published post from bob", Status: consts.PostStatusPublished})

	// anonymous visitors see published posts only
	list, err := svc.ListPosts(ctx, 0, false, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Count)

	// an authenticated user sees their own posts, drafts included
	list, err = svc.ListPosts(ctx, alice.ID, false, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Count)
	for _, post := range list.Data {
		assert.Equal(t, alice.ID, post.Author.ID)
	}

	// superusers see everything
	list, err = svc.ListPosts(ctx, bob.ID, true, 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 3, list.Count)
}

func TestGetPostsByAuthor(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})
	bob := store.addUser(&model.User{Email: "bob@example.com", Nickname: "bob", IsActive: true})

	store.addPost(&model.Post{AuthorID: alice.ID, Title: "published post by alice", Status: consts.PostStatusPublished})
	store.addPost(&model.Post{AuthorID: alice.ID, Title: "draft post kept by alice", Status: consts.PostStatusDraft})

	_, err := svc.GetPostsByAuthor(ctx, 0, false, "nobody", 0, 100)
	assert.ErrorIs(t, err, ErrUserNotFound)

	list, err := svc.GetPostsByAuthor(ctx, 0, false, "alice", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Count)

	list, err = svc.GetPostsByAuthor(ctx, bob.ID, false, "alice", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Count)

	list, err = svc.GetPostsByAuthor(ctx, alice.ID, false, "alice", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Count)

	list, err = svc.GetPostsByAuthor(ctx, bob.ID, true, "alice", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Count)
}

func TestGetPostsByTag(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})

	require.NoError(t, store.CreatePost(ctx, &model.Post{AuthorID: alice.ID, Title: "published go post here", Status: consts.PostStatusPublished}, []string{"go"}, nil))
	require.NoError(t, store.CreatePost(ctx, &model.Post{AuthorID: alice.ID, Title: "draft go post over there", Status: consts.PostStatusDraft}, []string{"go"}, nil))
	require.NoError(t, store.CreatePost(ctx, &model.Post{AuthorID: alice.ID, Title: "published rust post here", Status: consts.PostStatusPublished}, []string{"rust"}, nil))

	list, err := svc.GetPostsByTag(ctx, 0, false, "go", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 1, list.Count)

	list, err = svc.GetPostsByTag(ctx, alice.ID, false, "go", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Count)

	list, err = svc.GetPostsByTag(ctx, 0, true, "go", 0, 100)
	require.NoError(t, err)
	assert.EqualValues(t, 2, list.Count)
}

func TestUpdatePost(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})
	bob := store.addUser(&model.User{Email: "bob@example.com", Nickname: "bob", IsActive: true})

	post := store.addPost(&model.Post{
		AuthorID: alice.ID,
		Title:    "the original post title",
		Slug:     "the_original_post_title",
		Status:   consts.PostStatusDraft,
	})

	newTitle := "a different post title"

	// missing post is reported before permissions
	_, err := svc.UpdatePost(ctx, bob.ID, false, 9999, &dto.UpdatePostDTO{Title: &newTitle})
	assert.ErrorIs(t, err, ErrPostNotFound)

	// only the author or a superuser may edit
	_, err = svc.UpdatePost(ctx, bob.ID, false, post.ID, &dto.UpdatePostDTO{Title: &newTitle})
	assert.ErrorIs(t, err, ErrNotPermitted)

	// retitling to any existing title is rejected, the post's own included
	ownTitle := "the original post title"
	_, err = svc.UpdatePost(ctx, alice.ID, false, post.ID, &dto.UpdatePostDTO{Title: &ownTitle})
	assert.ErrorIs(t, err, ErrTitleExists)

	published := consts.PostStatusPublished
	tags := "Go, Testing"
	updated, err := svc.UpdatePost(ctx, alice.ID, false, post.ID, &dto.UpdatePostDTO{
		Title:  &newTitle,
		Status: &published,
		Tags:   &tags,
	})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, consts.PostStatusPublished, updated.Status)
	// the slug stays what it was at creation time
	assert.Equal(t, "the_original_post_title", updated.Slug)
	require.Len(t, updated.Tags, 2)
	assert.Equal(t, "go", updated.Tags[0].Name)
	assert.Equal(t, "testing", updated.Tags[1].Name)

	// a superuser may edit someone else's post
	desc := "edited by an admin"
	updated, err = svc.UpdatePost(ctx, bob.ID, true, post.ID, &dto.UpdatePostDTO{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	// tags survive edits that do not touch them
	assert.Len(t, updated.Tags, 2)
}

func TestDeletePost(t *testing.T) {
	svc, store := newPostServiceFixture(t)
	ctx := context.Background()

	alice := store.addUser(&model.User{Email: "alice@example.com", Nickname: "alice", IsActive: true})
	bob := store.addUser(&model.User{Email: "bob@example.com", Nickname: "bob", IsActive: true})

	post := &model.Post{AuthorID: alice.ID, Title: "a post headed for deletion", Status: consts.PostStatusPublished}
	require.NoError(t, store.CreatePost(ctx, post, []string{"go"}, &model.Image{Filename: "x.png"}))

	err := svc.DeletePost(ctx, bob.ID, false, 9999)
	assert.ErrorIs(t, err, ErrPostNotFound)

	err = svc.DeletePost(ctx, bob.ID, false, post.ID)
	assert.ErrorIs(t, err, ErrNotPermitted)

	err = svc.DeletePost(ctx, alice.ID, false, post.ID)
	require.NoError(t, err)
	assert.Empty(t, store.posts)
	assert.Empty(t, store.tags)
	assert.Empty(t, store.images)
}
