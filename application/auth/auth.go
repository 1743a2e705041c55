package auth

import (
	"context"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/repository/mysqlerr"
	redisrepo "github.com/muhammadheryan/storefront/repository/redis"
	userrepo "github.com/muhammadheryan/storefront/repository/user"
	"github.com/muhammadheryan/storefront/thirdparty/notifier"
	cerr "github.com/muhammadheryan/storefront/utils/errors"
	"github.com/muhammadheryan/storefront/utils/metrics"
	"github.com/muhammadheryan/storefront/utils/otp"
	"github.com/muhammadheryan/storefront/utils/token"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	MessageOTPSent    = "OTP sent to your email"
	MessageVerified   = "Verified"
	MessageUnverified = "Your account is not verified, please verify"

	attemptKeyPrefix = "otp_attempts:"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.MessageResponse, error)
	Verify(ctx context.Context, req *model.VerifyRequest) (*model.MessageResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	RefreshAccessToken(ctx context.Context, req *model.RefreshRequest) (*model.AccessTokenResponse, error)
	Authenticate(ctx context.Context, tokenString string) (*model.AccessClaims, error)
}

type authAppImpl struct {
	config    *config.Config
	log       *zap.Logger
	userRepo  userrepo.UserRepository
	redisRepo redisrepo.Repository
	otp       otp.Engine
	tokens    token.Issuer
	sender    notifier.Sender
}

func NewAuthApp(
	config *config.Config,
	log *zap.Logger,
	userRepo userrepo.UserRepository,
	redisRepo redisrepo.Repository,
	otpEngine otp.Engine,
	tokens token.Issuer,
	sender notifier.Sender,
) AuthApp {
	return &authAppImpl{
		config:    config,
		log:       log,
		userRepo:  userRepo,
		redisRepo: redisRepo,
		otp:       otpEngine,
		tokens:    tokens,
		sender:    sender,
	}
}

// Register creates a pending buyer account and sends it a verification code.
// Registering again with the address of a pending account replaces its
// details and sends a fresh code; an active account is left untouched.
func (s *authAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.MessageResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		s.log.Error("[Register] err userRepo.Get", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if existingUser != nil && existingUser.Status == constant.UserStatusActive {
		s.log.Info("[Register] account already active", zap.Uint64("user_id", existingUser.ID))
		metrics.AuthEvents.WithLabelValues("register", "already_active").Inc()
		return &model.MessageResponse{Message: MessageOTPSent}, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.log.Error("[Register] err bcrypt.GenerateFromPassword", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if existingUser == nil {
		_, err = s.userRepo.Create(ctx, &model.UserEntity{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			PasswordHash: string(hashedPassword),
			Role:         constant.RoleBuyer,
			Status:       constant.UserStatusPending,
			RegionID:     req.RegionID,
			Year:         req.Year,
			Image:        req.Image,
		})
	} else {
		existingUser.Name = req.Name
		existingUser.Phone = req.Phone
		existingUser.PasswordHash = string(hashedPassword)
		existingUser.RegionID = req.RegionID
		existingUser.Year = req.Year
		existingUser.Image = req.Image
		err = s.userRepo.Update(ctx, existingUser)
	}
	if err != nil {
		switch {
		case mysqlerr.IsInvalidReference(err):
			return nil, cerr.SetCustomErrorDetail(constant.ErrInvalidRequest, "region_id does not exist")
		case mysqlerr.IsDuplicate(err):
			// lost a race with a concurrent registration of the same address
			return &model.MessageResponse{Message: MessageOTPSent}, nil
		}
		s.log.Error("[Register] err save user", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	if err := s.sendCode(ctx, req.Email, req.Phone); err != nil {
		s.log.Error("[Register] err sendCode", zap.Error(err), zap.String("email", req.Email))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	metrics.AuthEvents.WithLabelValues("register", "ok").Inc()
	return &model.MessageResponse{Message: MessageOTPSent}, nil
}

func (s *authAppImpl) sendCode(ctx context.Context, email, phone string) error {
	code, err := s.otp.Generate(email)
	if err != nil {
		return err
	}

	if err := s.sender.SendOTP(ctx, &model.OTPDelivery{
		Channel:   constant.DeliveryChannelEmail,
		Recipient: email,
		Code:      code,
	}); err != nil {
		return err
	}

	if s.config.OTP.SMSEnabled && phone != "" {
		// the e-mail already went out, a failed text is not fatal
		if err := s.sender.SendOTP(ctx, &model.OTPDelivery{
			Channel:   constant.DeliveryChannelSMS,
			Recipient: phone,
			Code:      code,
		}); err != nil {
			s.log.Warn("[Register] err send sms", zap.Error(err))
		}
	}
	return nil
}

// Verify activates the account owning the e-mail when the code is valid
// for it in the current window.
func (s *authAppImpl) Verify(ctx context.Context, req *model.VerifyRequest) (*model.MessageResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		s.log.Error("[Verify] err userRepo.Get", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, cerr.SetCustomErrorDetail(constant.ErrNotFound, "user not found")
	}

	key := attemptKeyPrefix + req.Email
	if s.config.OTP.MaxAttempts > 0 {
		attempts, err := s.redisRepo.GetCount(ctx, key)
		if err != nil {
			s.log.Warn("[Verify] err redisRepo.GetCount", zap.Error(err))
		}
		if attempts >= s.config.OTP.MaxAttempts {
			metrics.AuthEvents.WithLabelValues("verify", "locked").Inc()
			return nil, cerr.SetCustomError(constant.ErrTooManyAttempts)
		}
	}

	if !s.otp.Verify(req.Email, req.OTP) {
		if _, err := s.redisRepo.IncrWithTTL(ctx, key, s.config.OTP.AttemptWindow); err != nil {
			s.log.Warn("[Verify] err redisRepo.IncrWithTTL", zap.Error(err))
		}
		metrics.AuthEvents.WithLabelValues("verify", "bad_code").Inc()
		return nil, cerr.SetCustomError(constant.ErrInvalidOTP)
	}

	if err := s.redisRepo.Delete(ctx, key); err != nil {
		s.log.Warn("[Verify] err redisRepo.Delete", zap.Error(err))
	}

	if user.Status != constant.UserStatusActive {
		user.Status = constant.UserStatusActive
		if err := s.userRepo.Update(ctx, user); err != nil {
			s.log.Error("[Verify] err userRepo.Update", zap.Error(err))
			return nil, cerr.SetCustomError(constant.ErrInternal)
		}
	}

	metrics.AuthEvents.WithLabelValues("verify", "ok").Inc()
	return &model.MessageResponse{Message: MessageVerified}, nil
}

// Login checks credentials. Unverified accounts get a message and no tokens.
func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		s.log.Error("[Login] err userRepo.Get", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		metrics.AuthEvents.WithLabelValues("login", "unknown_user").Inc()
		return nil, cerr.SetCustomError(constant.ErrUnknownCredential)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		metrics.AuthEvents.WithLabelValues("login", "bad_password").Inc()
		return nil, cerr.SetCustomError(constant.ErrInvalidPassword)
	}

	if user.Status != constant.UserStatusActive {
		metrics.AuthEvents.WithLabelValues("login", "unverified").Inc()
		return &model.LoginResponse{Message: MessageUnverified}, nil
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		s.log.Error("[Login] err tokens.IssueAccess", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	refreshToken, err := s.tokens.IssueRefresh(user)
	if err != nil {
		s.log.Error("[Login] err tokens.IssueRefresh", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	metrics.AuthEvents.WithLabelValues("login", "ok").Inc()
	return &model.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshAccessToken issues a new access token carrying the user's current
// role and status.
func (s *authAppImpl) RefreshAccessToken(ctx context.Context, req *model.RefreshRequest) (*model.AccessTokenResponse, error) {
	userID, err := s.tokens.VerifyRefresh(req.RefreshToken)
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		s.log.Error("[RefreshAccessToken] err userRepo.Get", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		s.log.Error("[RefreshAccessToken] err tokens.IssueAccess", zap.Error(err))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return &model.AccessTokenResponse{AccessToken: accessToken}, nil
}

// Authenticate resolves an access token to its claims. Tokens of accounts
// that were pending when issued are rejected as unverified.
func (s *authAppImpl) Authenticate(ctx context.Context, tokenString string) (*model.AccessClaims, error) {
	claims, err := s.tokens.VerifyAccess(tokenString)
	if err != nil {
		return nil, cerr.SetCustomError(constant.ErrInvalidToken)
	}
	if claims.Status != constant.UserStatusActive {
		return nil, cerr.SetCustomError(constant.ErrUnverified)
	}
	return claims, nil
}
