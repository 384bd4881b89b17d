package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thiagomes07/inovacamp/internal/adapter/http/models"
	"github.com/thiagomes07/inovacamp/internal/adapter/repository/repo_interfaces"
	"github.com/thiagomes07/inovacamp/internal/commons"
	"github.com/thiagomes07/inovacamp/internal/domain"
	"github.com/thiagomes07/inovacamp/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type ProfileService struct {
	stores repo_interfaces.Stores
	uow    repo_interfaces.UnitOfWork
}

func NewProfileService(stores repo_interfaces.Stores, uow repo_interfaces.UnitOfWork) *ProfileService {
	return &ProfileService{stores: stores, uow: uow}
}

func (s *ProfileService) Register(ctx context.Context, req models.RegisterProfileRequest) (commons.Response[models.ProfileResponse], error) {
	logger.Info("profile service register request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.ProfileResponse]("validation failed", err.Error()), err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("profile service password hash failed", err, nil)
		return commons.ErrorResponse[models.ProfileResponse]("failed to register", "Unable to register right now"), err
	}

	kind, _ := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	now := time.Now().UTC()
	profile := domain.Profile{
		ID:           uuid.NewString(),
		Kind:         kind,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		FullName:     strings.TrimSpace(req.FullName),
		PasswordHash: string(hash),
		Document:     strings.TrimSpace(req.Document),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.uow.RunAtomic(ctx, func(ctx context.Context, st repo_interfaces.Stores) error {
		if _, err := st.Profiles.Create(ctx, profile); err != nil {
			return err
		}
		// Default wallet opens with registration; other currencies are
		// created lazily on first movement.
		_, err := getOrCreateWallet(ctx, st.Wallets, profile.Ref(), string(domain.DefaultCurrency))
		return err
	})
	if err != nil {
		if errors.Is(err, commons.ErrDuplicateRecord) {
			return commons.ErrorResponse[models.ProfileResponse]("failed to register", "Email already registered"), err
		}
		logger.Error("profile service register failed", err, logger.Fields{
			"email": profile.Email,
		})
		return commons.ErrorResponse[models.ProfileResponse]("failed to register", "Unable to register right now"), err
	}

	logger.Info("profile service register success", logger.Fields{
		"profileId": profile.ID,
		"kind":      profile.Kind,
	})

	return commons.SuccessResponse("profile registered successfully", toProfileResponse(profile)), nil
}

func (s *ProfileService) GetProfile(ctx context.Context, kind string, id string) (commons.Response[models.ProfileResponse], error) {
	parsedKind, err := domain.ParseOwnerKind(strings.ToLower(strings.TrimSpace(kind)))
	if err != nil {
		return commons.ErrorResponse[models.ProfileResponse]("validation failed", err.Error()), err
	}

	profile, err := s.stores.Profiles.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return commons.ErrorResponse[models.ProfileResponse]("failed to get profile", "Profile not found"), err
	}
	if profile.Kind != parsedKind {
		err := commons.ErrRecordNotFound
		return commons.ErrorResponse[models.ProfileResponse]("failed to get profile", "Profile not found"), err
	}

	return commons.SuccessResponse("profile retrieved successfully", toProfileResponse(profile)), nil
}
