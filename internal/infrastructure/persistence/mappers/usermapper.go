package mappers

import (
	"encoding/json"
	"fmt"

	"github.com/merojugx/mero/internal/domain/user"
	"github.com/merojugx/mero/internal/infrastructure/persistence/models"
	"github.com/merojugx/mero/internal/shared/authorization"
)

// UserMapper handles the conversion between user aggregates and persistence models.
type UserMapper interface {
	ToModel(u *user.User) (*models.UserModel, error)
	ToDomain(m *models.UserModel) (*user.User, error)
	SessionToModel(s *user.Session) *models.SessionModel
	SessionToDomain(m *models.SessionModel) *user.Session
	ActionTokenToModel(t *user.ActionToken) *models.ActionTokenModel
	ActionTokenToDomain(m *models.ActionTokenModel) *user.ActionToken
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (UserMapperImpl) ToModel(u *user.User) (*models.UserModel, error) {
	m := &models.UserModel{
		ID:                  u.ID(),
		Email:               u.Email(),
		PasswordHash:        u.PasswordHash(),
		FirstName:           u.FirstName(),
		LastName:            u.LastName(),
		Status:              string(u.Status()),
		EmailVerified:       u.EmailVerified(),
		MFAEnabled:          u.MFAEnabled(),
		MFASecret:           u.MFASecret(),
		MFASetupCompletedAt: u.MFASetupCompletedAt(),
		IsSystemAdmin:       u.IsSystemAdmin(),
		LastLoginAt:         u.LastLoginAt(),
		CreatedAt:           u.CreatedAt(),
		UpdatedAt:           u.UpdatedAt(),
	}

	if codes := u.MFABackupCodes(); len(codes) > 0 {
		raw, err := json.Marshal(codes)
		if err != nil {
			return nil, fmt.Errorf("failed to encode backup codes: %w", err)
		}
		encoded := string(raw)
		m.MFABackupCodes = &encoded
	}

	if role := u.SystemAdminRole(); role != nil {
		r := string(*role)
		m.SystemAdminRole = &r
	}

	return m, nil
}

func (UserMapperImpl) ToDomain(m *models.UserModel) (*user.User, error) {
	if m == nil {
		return nil, nil
	}

	var codes []string
	if m.MFABackupCodes != nil && *m.MFABackupCodes != "" {
		if err := json.Unmarshal([]byte(*m.MFABackupCodes), &codes); err != nil {
			return nil, fmt.Errorf("failed to decode backup codes of user %s: %w", m.ID, err)
		}
	}

	var role *authorization.SystemAdminRole
	if m.SystemAdminRole != nil {
		r := authorization.SystemAdminRole(*m.SystemAdminRole)
		role = &r
	}

	return user.ReconstructUser(user.Snapshot{
		ID:                  m.ID,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Status:              user.Status(m.Status),
		EmailVerified:       m.EmailVerified,
		MFAEnabled:          m.MFAEnabled,
		MFASecret:           m.MFASecret,
		MFABackupCodes:      codes,
		MFASetupCompletedAt: m.MFASetupCompletedAt,
		IsSystemAdmin:       m.IsSystemAdmin,
		SystemAdminRole:     role,
		LastLoginAt:         m.LastLoginAt,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}), nil
}

func (UserMapperImpl) SessionToModel(s *user.Session) *models.SessionModel {
	return &models.SessionModel{
		ID:               s.ID(),
		UserID:           s.UserID(),
		OrganizationID:   s.OrganizationID(),
		RefreshTokenHash: s.RefreshTokenHash(),
		IPAddress:        s.IPAddress(),
		UserAgent:        s.UserAgent(),
		ExpiresAt:        s.ExpiresAt(),
		RevokedAt:        s.RevokedAt(),
		CreatedAt:        s.CreatedAt(),
		UpdatedAt:        s.UpdatedAt(),
	}
}

func (UserMapperImpl) SessionToDomain(m *models.SessionModel) *user.Session {
	if m == nil {
		return nil
	}
	return user.ReconstructSession(
		m.ID,
		m.UserID,
		m.OrganizationID,
		m.RefreshTokenHash,
		m.IPAddress,
		m.UserAgent,
		m.ExpiresAt,
		m.RevokedAt,
		m.CreatedAt,
		m.UpdatedAt,
	)
}

func (UserMapperImpl) ActionTokenToModel(t *user.ActionToken) *models.ActionTokenModel {
	return &models.ActionTokenModel{
		ID:        t.ID(),
		UserID:    t.UserID(),
		Purpose:   string(t.Purpose()),
		TokenHash: t.TokenHash(),
		ExpiresAt: t.ExpiresAt(),
		UsedAt:    t.UsedAt(),
		CreatedAt: t.CreatedAt(),
	}
}

func (UserMapperImpl) ActionTokenToDomain(m *models.ActionTokenModel) *user.ActionToken {
	if m == nil {
		return nil
	}
	return user.ReconstructActionToken(
		m.ID,
		m.UserID,
		user.TokenPurpose(m.Purpose),
		m.TokenHash,
		m.ExpiresAt,
		m.UsedAt,
		m.CreatedAt,
	)
}
