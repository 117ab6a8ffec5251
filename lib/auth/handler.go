package authhandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/db"
	employeestore "hr-ops-backend/lib/employee/store"
	authutils "hr-ops-backend/lib/utils/auth-utils"
	"hr-ops-backend/models"
	authapimodels "hr-ops-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	Refresh(refreshToken string) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	store employeestore.Provider
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.store.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("failed to look up the account")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		logger.Debug("no active account for this email")
		return authapimodels.JWTResponse{}, errors.New("unknown email or password")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("password check failed")
		return authapimodels.JWTResponse{}, errors.New("unknown email or password")
	}
	if err = i.store.SetLastLogin(user.ID, time.Now()); err != nil {
		logger.WithError(err).Error("failed to record login time")
	}
	return i.issueTokens(user.ID, user.GetFullName(), user.Role, logger)
}

func (i impl) Refresh(refreshToken string) (authapimodels.JWTResponse, error) {
	userID, err := authutils.ParseRefreshToken(refreshToken)
	if err != nil {
		return authapimodels.JWTResponse{}, errors.New("invalid refresh token")
	}
	user, err := i.store.GetByID(userID)
	if err != nil {
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("account is not active")
	}
	return i.issueTokens(user.ID, user.GetFullName(), user.Role, log.WithField("user_id", userID))
}

func (i impl) issueTokens(userID, name string, role models.UserRole, logger *log.Entry) (authapimodels.JWTResponse, error) {
	token, err := authutils.GetToken(userID, name, role)
	if err != nil {
		logger.WithError(err).Error("failed to sign JWT")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		logger.WithError(err).Error("failed to sign refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
