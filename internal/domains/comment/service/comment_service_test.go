package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scentpress-backend/internal/domains/blog"
	"scentpress-backend/internal/domains/comment"
)

type fakeRepo struct {
	records map[uuid.UUID]*comment.Comment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: map[uuid.UUID]*comment.Comment{}}
}

func (r *fakeRepo) Create(_ context.Context, c *comment.Comment) (*comment.Comment, error) {
	stored := *c
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.records[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeRepo) GetAll(_ context.Context) ([]comment.Comment, error) {
	var all []comment.Comment
	for _, c := range r.records {
		all = append(all, *c)
	}
	return all, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*comment.Comment, error) {
	if c, ok := r.records[id]; ok {
		out := *c
		return &out, nil
	}
	return nil, comment.ErrNotFound
}

func (r *fakeRepo) SetApproved(_ context.Context, id uuid.UUID, approved bool) (*comment.Comment, error) {
	c, ok := r.records[id]
	if !ok {
		return nil, comment.ErrNotFound
	}
	c.Approved = approved
	out := *c
	return &out, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.records[id]; !ok {
		return comment.ErrNotFound
	}
	delete(r.records, id)
	return nil
}

type fakeBlogReader struct{ byID map[uuid.UUID]blog.Blog }

func (f *fakeBlogReader) GetByIDs(_ context.Context, ids []uuid.UUID) ([]blog.Blog, error) {
	var out []blog.Blog
	for _, id := range ids {
		if b, ok := f.byID[id]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func TestCreateStoresBlogReferenceAsIs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo, &fakeBlogReader{byID: map[uuid.UUID]blog.Blog{}})

	danglingID := uuid.New()
	created, err := svc.Create(context.Background(), &comment.CommentRequest{
		Name:    "Alex",
		Comment: "great review",
		Blog:    danglingID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, danglingID, created.BlogID, "reference kept even though the blog does not exist")
	assert.False(t, created.Approved, "new comments start unapproved")
}

func TestGetAllExpandsBlogTitleAndSlug(t *testing.T) {
	repo := newFakeRepo()
	b := blog.Blog{ID: uuid.New(), Title: "Aventus", Slug: "aventus"}
	svc := NewCommentService(repo, &fakeBlogReader{byID: map[uuid.UUID]blog.Blog{b.ID: b}})

	_, err := svc.Create(context.Background(), &comment.CommentRequest{
		Name: "Sam", Comment: "love it", Blog: b.ID.String(),
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), &comment.CommentRequest{
		Name: "Kim", Comment: "skanky", Blog: uuid.NewString(),
	})
	require.NoError(t, err)

	all, err := svc.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, all, 2)
	var expanded, dangling int
	for _, r := range all {
		if r.Blog != nil {
			expanded++
			assert.Equal(t, "aventus", r.Blog.Slug)
		} else {
			dangling++
		}
	}
	assert.Equal(t, 1, expanded)
	assert.Equal(t, 1, dangling)
}

func TestApproveFlipsFlag(t *testing.T) {
	repo := newFakeRepo()
	svc := NewCommentService(repo, &fakeBlogReader{byID: map[uuid.UUID]blog.Blog{}})

	created, err := svc.Create(context.Background(), &comment.CommentRequest{
		Name: "Pat", Comment: "agreed",
	})
	require.NoError(t, err)

	approved, err := svc.Approve(context.Background(), created.ID)

	require.NoError(t, err)
	assert.True(t, approved.Approved)
}

func TestCreateRequiresNameAndComment(t *testing.T) {
	svc := NewCommentService(newFakeRepo(), &fakeBlogReader{byID: map[uuid.UUID]blog.Blog{}})

	_, err := svc.Create(context.Background(), &comment.CommentRequest{Name: "Alex"})
	require.ErrorIs(t, err, comment.ErrValidation)
}
