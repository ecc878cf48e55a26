package accounting

import (
	"time"
)

// Service answers structured queries over the immutable business record set and
// renders them as short Turkish text blocks suitable for WhatsApp. All query
// methods return a string and never an error: absence of matching records is
// rendered as a descriptive empty-result message so the tool dispatcher always
// has something to feed back to the model.
type Service struct {
	data *Dataset
	now  func() time.Time
}

type Option func(*Service)

// WithClock overrides the wall clock used by date-relative queries.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(opts ...Option) (*Service, error) {
	data, err := loadDataset()
	if err != nil {
		return nil, err
	}

	s := &Service{
		data: data,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}
