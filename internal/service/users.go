package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/partnersinbahamas/airport-api/internal/auth"
	"github.com/partnersinbahamas/airport-api/internal/database"
	"github.com/partnersinbahamas/airport-api/internal/models"
)

func (s *serviceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		Password:  auth.HashPassword(req.Password),
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *serviceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenPair, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(req.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	access, refresh, err := s.tokens.IssuePair(user.ID, user.Email, user.IsStaff)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{Access: access, Refresh: refresh}, nil
}

func (s *serviceImpl) Refresh(req *models.RefreshRequest) (*models.TokenPair, error) {
	access, err := s.tokens.RefreshAccess(req.Refresh)
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{Access: access, Refresh: req.Refresh}, nil
}

func (s *serviceImpl) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.store.GetUser(ctx, id)
}
