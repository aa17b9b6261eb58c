package gallery

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/safe/backend/internal/domain/shared"
)

func TestNewPost_Success(t *testing.T) {
	authorID := uuid.New()

	post, err := NewPost(authorID, "https://cdn.example.com/a.jpg", "헬멧 쓰고 자전거 타기")

	assert.NoError(t, err)
	assert.Equal(t, authorID, post.AuthorID)
	assert.Equal(t, PostStatusPending, post.Status)
	assert.True(t, post.IsPending())
	assert.Nil(t, post.ReadAt)
}

func TestNewPost_Validation(t *testing.T) {
	_, err := NewPost(uuid.Nil, "https://cdn.example.com/a.jpg", "")
	assert.Error(t, err)

	_, err = NewPost(uuid.New(), "   ", "")
	assert.Error(t, err)
}

func TestPost_Approve(t *testing.T) {
	post, _ := NewPost(uuid.New(), "https://cdn.example.com/a.jpg", "")

	err := post.Approve("잘했어요", 2)

	assert.NoError(t, err)
	assert.Equal(t, PostStatusApproved, post.Status)
	assert.Equal(t, "잘했어요", post.Feedback)
	assert.Equal(t, 2, post.AwardedPoints)
}

func TestPost_Approve_PointBounds(t *testing.T) {
	for _, points := range []int{0, -1, 4, 100} {
		post, _ := NewPost(uuid.New(), "https://cdn.example.com/a.jpg", "")

		err := post.Approve("", points)

		assert.Error(t, err, "points=%d", points)
		assert.Equal(t, PostStatusPending, post.Status)
	}
}

func TestPost_Approve_OnlyOnce(t *testing.T) {
	post, _ := NewPost(uuid.New(), "https://cdn.example.com/a.jpg", "")
	assert.NoError(t, post.Approve("good", 1))

	err := post.Approve("again", 3)

	assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
	assert.Equal(t, 1, post.AwardedPoints)
}

func TestPost_Reject(t *testing.T) {
	post, _ := NewPost(uuid.New(), "https://cdn.example.com/a.jpg", "")

	err := post.Reject("사진이 흐려요")

	assert.NoError(t, err)
	assert.Equal(t, PostStatusRejected, post.Status)
	assert.Equal(t, 0, post.AwardedPoints)
}

func TestPost_Reject_AfterApprove(t *testing.T) {
	post, _ := NewPost(uuid.New(), "https://cdn.example.com/a.jpg", "")
	assert.NoError(t, post.Approve("good", 1))

	err := post.Reject("no")

	assert.ErrorIs(t, err, shared.ErrAlreadyProcessed)
	assert.Equal(t, PostStatusApproved, post.Status)
}

func TestPost_MarkRead_Idempotent(t *testing.T) {
	post, _ := NewPost(uuid.New(), "https://cdn.example.com/a.jpg", "")

	post.MarkRead()
	assert.NotNil(t, post.ReadAt)
	first := *post.ReadAt

	post.MarkRead()
	assert.Equal(t, first, *post.ReadAt)
}
