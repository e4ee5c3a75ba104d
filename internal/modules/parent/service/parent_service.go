package service

import (
	"context"
	"crypto/subtle"
	"fmt"

	hclog "github.com/hashicorp/go-hclog"

	"brightbuddy/internal/modules/parent/domain"
	parentout "brightbuddy/internal/modules/parent/port/out"
	apperrors "brightbuddy/internal/platform/errors"
	"brightbuddy/internal/platform/logging"
)

type ParentService struct {
	pins     parentout.PINStore
	profiles parentout.ProfileStore
	hasher   parentout.PINHasher
	logger   hclog.Logger
}

func NewParentService(pins parentout.PINStore, profiles parentout.ProfileStore, hasher parentout.PINHasher, logger hclog.Logger) *ParentService {
	return &ParentService{pins: pins, profiles: profiles, hasher: hasher, logger: logging.OrNull(logger)}
}

func (s *ParentService) HasPIN(ctx context.Context) (bool, error) {
	_, ok, err := s.pins.Load(ctx)
	return ok, err
}

func (s *ParentService) SetupPIN(ctx context.Context, pin, confirm string) error {
	if err := domain.ValidatePIN(pin); err != nil {
		return err
	}
	if pin != confirm {
		return apperrors.ErrPINMismatch
	}
	hashed, err := s.hasher.Hash(pin)
	if err != nil {
		return fmt.Errorf("hash pin: %w", err)
	}
	if err := s.pins.Save(ctx, hashed); err != nil {
		s.logger.Error("save pin", "error", err)
		return fmt.Errorf("save pin: %w: %w", apperrors.ErrStorageWrite, err)
	}
	return nil
}

// VerifyPIN also upgrades a plain stored PIN to a hash once it matches.
func (s *ParentService) VerifyPIN(ctx context.Context, pin string) error {
	stored, ok, err := s.pins.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNoPIN
	}
	if domain.IsLegacyPIN(stored) {
		if subtle.ConstantTimeCompare([]byte(stored), []byte(pin)) != 1 {
			return apperrors.ErrIncorrectPIN
		}
		if hashed, err := s.hasher.Hash(pin); err == nil {
			if err := s.pins.Save(ctx, hashed); err != nil {
				s.logger.Warn("upgrade legacy pin", "error", err)
			}
		}
		return nil
	}
	match, err := s.hasher.Compare(stored, pin)
	if err != nil {
		s.logger.Warn("compare pin", "error", err)
		return apperrors.ErrIncorrectPIN
	}
	if !match {
		return apperrors.ErrIncorrectPIN
	}
	return nil
}

// LoadProfile never fails on missing or unreadable data; it returns an empty neutral profile.
func (s *ParentService) LoadProfile(ctx context.Context) domain.Profile {
	profile, ok, err := s.profiles.Load(ctx)
	if err != nil {
		s.logger.Warn("load profile", "error", err)
	}
	if err != nil || !ok {
		return domain.Profile{}.Normalized()
	}
	return profile.Normalized()
}

func (s *ParentService) SaveProfile(ctx context.Context, profile domain.Profile) (domain.Profile, error) {
	profile = profile.Normalized()
	if err := profile.Validate(); err != nil {
		return domain.Profile{}, err
	}
	if err := s.profiles.Save(ctx, profile); err != nil {
		s.logger.Error("save profile", "error", err)
		return profile, fmt.Errorf("save profile: %w: %w", apperrors.ErrStorageWrite, err)
	}
	return profile, nil
}
