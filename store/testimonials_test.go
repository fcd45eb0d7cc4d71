package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhayat/nutrigo"
	"github.com/omarkhayat/nutrigo/kv"
)

func TestAddTestimonial(t *testing.T) {
	reviews := NewTestimonials(kv.NewMemory(), nil)

	got, err := reviews.Add(7, "sara", "changed my mornings", 5)
	require.NoError(t, err)
	assert.NotZero(t, got.ID)
	assert.Equal(t, "https://i.pravatar.cc/150?u=7", got.Avatar)

	all := reviews.ListAll()
	require.Len(t, all, 1)
	assert.Equal(t, got, all[0])
}

func TestAddTestimonialOncePerUser(t *testing.T) {
	reviews := NewTestimonials(kv.NewMemory(), nil)

	_, err := reviews.Add(7, "sara", "great", 5)
	require.NoError(t, err)

	_, err = reviews.Add(7, "sara", "still great", 4)
	assert.ErrorIs(t, err, nutrigo.ErrDuplicateReview)
	assert.Len(t, reviews.ListAll(), 1)
}

func TestListAllInsertionOrder(t *testing.T) {
	reviews := NewTestimonials(kv.NewMemory(), nil)

	_, err := reviews.Add(1, "a", "first", 4)
	require.NoError(t, err)
	_, err = reviews.Add(2, "b", "second", 3)
	require.NoError(t, err)

	all := reviews.ListAll()
	require.Len(t, all, 2)
	assert.Equal(t, "first", all[0].Quote)
	assert.Equal(t, "second", all[1].Quote)
}
