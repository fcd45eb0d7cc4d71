package store

import (
	"fmt"

	"github.com/omarkhayat/nutrigo"
)

// Testimonials is the global review list. One review per user, immutable
// once created.
type Testimonials struct {
	kv nutrigo.KeyValueStore
	l  nutrigo.Logger
}

func NewTestimonials(kv nutrigo.KeyValueStore, logger nutrigo.Logger) *Testimonials {
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	return &Testimonials{kv: kv, l: logger}
}

// ListAll returns every testimonial in insertion order.
func (s *Testimonials) ListAll() []nutrigo.Testimonial {
	var all []nutrigo.Testimonial
	load(s.kv, nutrigo.KeyTestimonials, &all, s.l)
	return all
}

// Add stores a review. Rating is stored as given; the producing form keeps
// it in 1–5.
func (s *Testimonials) Add(userID int64, username, quote string, rating int) (nutrigo.Testimonial, error) {
	all := s.ListAll()
	for _, t := range all {
		if t.UserID == userID {
			return nutrigo.Testimonial{}, nutrigo.ErrDuplicateReview
		}
	}

	t := nutrigo.Testimonial{
		ID:       nutrigo.NewID(),
		UserID:   userID,
		Username: username,
		Quote:    quote,
		Rating:   rating,
		Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%d", userID),
	}

	all = append(all, t)
	if err := save(s.kv, nutrigo.KeyTestimonials, all, s.l); err != nil {
		return nutrigo.Testimonial{}, err
	}
	return t, nil
}
