package service

import (
	"errors"
	"fmt"
	"time"

	"coachsite/internal/model"
	"coachsite/internal/repository"
)

var ErrAlreadySubscribed = errors.New("email already subscribed")

type SubscriberService struct {
	subscriberRepository repository.SubscriberRepository
}

func NewSubscriberService(subscriberRepository repository.SubscriberRepository) *SubscriberService {
	return &SubscriberService{
		subscriberRepository: subscriberRepository,
	}
}

// Subscribe records a mailing-list signup. Uniqueness is enforced by
// the storage layer, so a repeated email never creates a second row.
func (s *SubscriberService) Subscribe(email string) (*model.Subscriber, error) {
	subscriber := &model.Subscriber{
		Email:     email,
		CreatedAt: time.Now(),
	}

	err := s.subscriberRepository.Create(subscriber)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrAlreadySubscribed
		}
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return subscriber, nil
}
