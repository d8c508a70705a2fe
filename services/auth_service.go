package services

import (
	"StarBoard/metrics"
	"StarBoard/models"
	"StarBoard/repositories"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	OtpTTL     = 10 * time.Minute
	SessionTTL = 7 * 24 * time.Hour
)

type AuthService struct {
	Repos  repositories.Manager
	Sender OtpSender

	// DevCode is accepted as a valid code for any phone outside production.
	DevCode    string
	Production bool

	HashCost int
	Now      func() time.Time
}

func NewAuthService(repos repositories.Manager, sender OtpSender, devCode string, production bool) *AuthService {
	if sender == nil {
		sender = LogOtpSender{}
	}
	return &AuthService{
		Repos:      repos,
		Sender:     sender,
		DevCode:    devCode,
		Production: production,
		HashCost:   bcrypt.DefaultCost,
		Now:        time.Now,
	}
}

func (s *AuthService) now() time.Time {
	return s.Now().UTC()
}

// RequestOtp issues a new code for the phone and hands it to the sender.
// Delivery problems are logged only: the code is stored either way.
func (s *AuthService) RequestOtp(ctx context.Context, phone string) (time.Time, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return time.Time{}, ErrPhoneRequired
	}

	code, err := randomCode()
	if err != nil {
		return time.Time{}, fmt.Errorf("generate otp: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.HashCost)
	if err != nil {
		return time.Time{}, fmt.Errorf("hash otp: %w", err)
	}

	parent, err := s.Repos.Parents().FindByPhone(ctx, phone)
	if err != nil {
		return time.Time{}, fmt.Errorf("lookup parent: %w", err)
	}

	now := s.now()
	otp := models.OtpRequest{
		Phone:     phone,
		CodeHash:  string(hash),
		ExpiresAt: now.Add(OtpTTL),
		CreatedAt: now,
	}
	if parent != nil {
		otp.ParentID = &parent.ID
	}
	if err := s.Repos.Otps().Create(ctx, &otp); err != nil {
		return time.Time{}, fmt.Errorf("store otp: %w", err)
	}
	metrics.OtpRequested.Inc()

	if err := s.Sender.SendOtp(ctx, phone, code); err != nil {
		metrics.OtpDeliveryFailures.Inc()
		slog.ErrorContext(ctx, "Failed to deliver OTP", "phone", phone, "error", err)
		slog.InfoContext(ctx, fmt.Sprintf("OTP for %s: %s", phone, code))
	}

	return otp.ExpiresAt, nil
}

// VerifyOtp checks the code against the newest usable OTP for the phone and
// opens a session. The parent account is created on first login.
func (s *AuthService) VerifyOtp(ctx context.Context, phone, code string) (*models.Parent, *models.Session, error) {
	phone = strings.TrimSpace(phone)
	code = strings.TrimSpace(code)
	if phone == "" || code == "" {
		return nil, nil, ErrPhoneAndCodeRequired
	}

	if s.DevCode != "" && !s.Production && code == s.DevCode {
		parent, err := s.Repos.Parents().FindOrCreateByPhone(ctx, phone)
		if err != nil {
			return nil, nil, err
		}
		session, err := s.createSession(ctx, parent.ID)
		if err != nil {
			return nil, nil, err
		}
		metrics.OtpVerifications.WithLabelValues("dev_bypass").Inc()
		slog.WarnContext(ctx, "OTP dev bypass used", "phone", phone)
		return parent, session, nil
	}

	otp, err := s.Repos.Otps().FindLatestUsable(ctx, phone, s.now())
	if err != nil {
		return nil, nil, fmt.Errorf("lookup otp: %w", err)
	}
	if otp == nil || !otp.IsUsable(s.now()) {
		metrics.OtpVerifications.WithLabelValues("invalid").Inc()
		return nil, nil, ErrOtpInvalid
	}

	if bcrypt.CompareHashAndPassword([]byte(otp.CodeHash), []byte(code)) != nil {
		if err := s.Repos.Otps().IncrementAttempts(ctx, otp.ID); err != nil {
			return nil, nil, fmt.Errorf("count otp attempt: %w", err)
		}
		metrics.OtpVerifications.WithLabelValues("mismatch").Inc()
		return nil, nil, ErrOtpMismatch
	}

	// The claim, the account and the session commit together; a concurrent
	// request that loses the claim gets no session.
	var parent *models.Parent
	var session *models.Session
	err = s.Repos.Transaction(ctx, func(tx repositories.Manager) error {
		var err error
		parent, err = tx.Parents().FindOrCreateByPhone(ctx, phone)
		if err != nil {
			return err
		}
		claimed, err := tx.Otps().MarkUsed(ctx, otp.ID, parent.ID)
		if err != nil {
			return fmt.Errorf("mark otp used: %w", err)
		}
		if !claimed {
			return ErrOtpInvalid
		}
		session, err = createSession(ctx, tx, parent.ID, s.now())
		return err
	})
	if err != nil {
		if errors.Is(err, ErrOtpInvalid) {
			metrics.OtpVerifications.WithLabelValues("invalid").Inc()
		}
		return nil, nil, err
	}
	metrics.OtpVerifications.WithLabelValues("ok").Inc()
	return parent, session, nil
}

// CurrentParent resolves a session token. Unknown or expired tokens yield nil
// without error; an expired row is removed on the way.
func (s *AuthService) CurrentParent(ctx context.Context, token string) (*models.Parent, error) {
	if token == "" {
		return nil, nil
	}

	session, err := s.Repos.Sessions().FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if session == nil {
		return nil, nil
	}
	if session.IsExpired(s.now()) {
		if err := s.Repos.Sessions().DeleteByToken(ctx, token); err != nil {
			slog.WarnContext(ctx, "Failed to delete expired session", "error", err)
		}
		return nil, nil
	}

	parent, err := s.Repos.Parents().FindByID(ctx, session.ParentID)
	if err != nil {
		return nil, fmt.Errorf("lookup parent: %w", err)
	}
	return parent, nil
}

// Logout removes the session for the token. A blank token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.Repos.Sessions().DeleteByToken(ctx, token)
}

func (s *AuthService) createSession(ctx context.Context, parentID string) (*models.Session, error) {
	return createSession(ctx, s.Repos, parentID, s.now())
}

func createSession(ctx context.Context, repos repositories.Manager, parentID string, now time.Time) (*models.Session, error) {
	token, err := randomToken()
	if err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := models.Session{
		Token:     token,
		ParentID:  parentID,
		ExpiresAt: now.Add(SessionTTL),
		CreatedAt: now,
	}
	if err := repos.Sessions().Create(ctx, &session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &session, nil
}

// randomCode returns a six digit code in [100000, 999999].
func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
