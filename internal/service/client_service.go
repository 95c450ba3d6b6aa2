package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"garage/internal/cache"
	apperrors "garage/internal/errors"
	"garage/internal/model"
	"garage/internal/repository"
	"garage/internal/validation"
)

const clientCacheTTL = 5 * time.Minute

// ClientService manages shop clients with a read cache over lookups by id.
type ClientService interface {
	Create(ctx context.Context, payload *validation.ClientCreate) (*model.Client, error)
	Get(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context, skip, limit int) ([]model.Client, error)
	Update(ctx context.Context, id uint, payload *validation.ClientUpdate) (*model.Client, error)
	Delete(ctx context.Context, id uint) error
}

type clientService struct {
	clients repository.ClientRepository
	cache   *cache.Client
}

// NewClientService builds a ClientService with repository and cache.
func NewClientService(clients repository.ClientRepository, cache *cache.Client) ClientService {
	return &clientService{clients: clients, cache: cache}
}

func (s *clientService) cacheKey(id uint) string {
	return fmt.Sprintf("client:%d", id)
}

func (s *clientService) Create(ctx context.Context, payload *validation.ClientCreate) (*model.Client, error) {
	client := &model.Client{
		Name:        payload.Name,
		PhoneNumber: payload.PhoneNumber,
		Email:       payload.Email,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) Get(ctx context.Context, id uint) (*model.Client, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Client
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(client); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, clientCacheTTL)
	}
	return client, nil
}

func (s *clientService) List(ctx context.Context, skip, limit int) ([]model.Client, error) {
	return s.clients.List(ctx, skip, limit)
}

func (s *clientService) Update(ctx context.Context, id uint, payload *validation.ClientUpdate) (*model.Client, error) {
	client, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload.Name != nil {
		client.Name = *payload.Name
	}
	if payload.PhoneNumber != nil {
		client.PhoneNumber = *payload.PhoneNumber
	}
	if payload.Email != nil {
		client.Email = payload.Email
	}

	if err := s.clients.Update(ctx, client); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return client, nil
}

func (s *clientService) Delete(ctx context.Context, id uint) error {
	if _, err := s.lookup(ctx, id); err != nil {
		return err
	}
	if err := s.clients.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// lookup bypasses the cache so mutations always see the stored row.
func (s *clientService) lookup(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.clients.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}
