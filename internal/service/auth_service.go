package service

import (
	"context"
	"fmt"

	"go-erp-admin/internal/model"
	"go-erp-admin/internal/repository"
	"go-erp-admin/pkg/jwt"
	"go-erp-admin/pkg/latency"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type AuthService interface {
	Login(ctx context.Context, req *model.LoginRequest) (*LoginResponse, error)
	// SendSmsCode pretends to text a code to phone and returns the notice shown to the user
	SendSmsCode(ctx context.Context, phone string) string
	ValidateToken(ctx context.Context, token string) (*model.UserResponse, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	users   repository.UserRepository
	tokens  *jwt.Manager
	smsCode string
	rt      Runtime
}

func NewAuthService(users repository.UserRepository, tokens *jwt.Manager, smsCode string, rt Runtime) AuthService {
	return &authService{users: users, tokens: tokens, smsCode: smsCode, rt: rt}
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*LoginResponse, error) {
	ctx = s.rt.wait(ctx, latency.Read)
	if err := validate(req); err != nil {
		return nil, err
	}

	var (
		user *model.User
		err  error
	)
	switch req.LoginType {
	case model.LoginAccount:
		user, err = s.account(ctx, req.Username, req.Password)
	case model.LoginMobile:
		user, err = s.mobile(ctx, req.Phone, req.Code)
	case model.LoginQR:
		// Scanning is not simulated, the first account is signed in
		user, err = s.nth(ctx, 0)
	default:
		return nil, errors.Wrapf(ErrUnsupportedLoginType, "login type %q", req.LoginType)
	}
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.Name, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	log.WithFields(log.Fields{"user": user.Username, "loginType": req.LoginType}).Info("login")
	return &LoginResponse{Token: token, User: user.ToResponse()}, nil
}

func (s *authService) account(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// mobile accepts the configured code for any phone. The user owning the phone
// is signed in, or the second account when no one does.
func (s *authService) mobile(ctx context.Context, phone, code string) (*model.User, error) {
	if code != s.smsCode {
		return nil, ErrInvalidSmsCode
	}
	if phone != "" {
		user, err := s.users.FindByPhone(ctx, phone)
		if err == nil {
			return user, nil
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
	}
	return s.nth(ctx, 1)
}

// nth returns the i-th account, or the last one when there are fewer
func (s *authService) nth(ctx context.Context, i int) (*model.User, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrInvalidCredentials
	}
	if i >= len(users) {
		i = len(users) - 1
	}
	return &users[i], nil
}

func (s *authService) SendSmsCode(ctx context.Context, phone string) string {
	s.rt.wait(ctx, latency.Read)

	log.WithField("phone", phone).Info("sms code requested")
	return fmt.Sprintf("verification code sent (default %s)", s.smsCode)
}

func (s *authService) ValidateToken(ctx context.Context, token string) (*model.UserResponse, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, jwt.ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}
