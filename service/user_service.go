package service

import (
	"context"

	"foodmarket/pkg/logger"
	"foodmarket/pkg/models"
	"foodmarket/storage"
)

type UserService interface {
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}

type userService struct {
	stg storage.IUserStorage
	log logger.ILogger
}

func NewUserService(stg storage.IStorage, log logger.ILogger) UserService {
	return &userService{
		stg: stg.User(),
		log: log,
	}
}

func (s *userService) GetProfile(ctx context.Context, id string) (*models.Profile, error) {
	return s.stg.GetProfile(ctx, id)
}
