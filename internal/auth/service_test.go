package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/redmonkez12/fintrack/internal/account"
	"github.com/redmonkez12/fintrack/internal/database"
	"github.com/redmonkez12/fintrack/internal/logging"
)

type sentMail struct {
	kind, to, name, code string
}

// fakeMailer records mails and can be told to refuse them
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendVerificationEmail(_ context.Context, to, name, code string) error {
	return f.record("verification", to, name, code)
}

func (f *fakeMailer) SendPasswordResetEmail(_ context.Context, to, name, code string) error {
	return f.record("reset", to, name, code)
}

func (f *fakeMailer) record(kind, to, name, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{kind: kind, to: to, name: name, code: code})
	return nil
}

func (f *fakeMailer) last() sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sent[len(f.sent)-1]
}

type ServiceSuite struct {
	suite.Suite
	ctx      context.Context
	accounts *account.Repository
	tokens   *JWTService
	mailer   *fakeMailer
	service  *Service
	clock    time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()

	db, err := database.OpenSQLite(":memory:")
	s.Require().NoError(err)
	s.T().Cleanup(func() { db.Close() })
	s.Require().NoError(database.Migrate(s.ctx, db))

	s.accounts = account.NewRepository(db)
	s.tokens, err = NewJWTService(testKey)
	s.Require().NoError(err)
	s.mailer = &fakeMailer{}
	s.clock = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	s.service = NewService(s.accounts, s.tokens, s.mailer, logging.NewLogger(true), time.Hour, time.Hour)
	s.service.now = func() time.Time { return s.clock }
}

func (s *ServiceSuite) TestSignupThenLogin() {
	created, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	stored, err := s.accounts.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.NotEqual("p", stored.PasswordHash)

	token, acc, err := s.service.Login(s.ctx, "a@x.com", "p")
	s.Require().NoError(err)
	s.Equal(created.ID, acc.ID)

	claims, err := s.tokens.VerifyToken(token)
	s.Require().NoError(err)
	s.Equal(created.ID, claims.AccountID)
	s.Equal("A", claims.Name)
	s.Equal("a@x.com", claims.Email)
}

func (s *ServiceSuite) TestSignupDuplicateEmail() {
	_, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "B", "a@x.com", "q")
	s.ErrorIs(err, account.ErrDuplicateEmail)
}

func (s *ServiceSuite) TestSignupMissingFields() {
	_, err := s.service.Signup(s.ctx, "", "a@x.com", "p")
	s.ErrorIs(err, ErrMissingFields)
	_, err = s.service.Signup(s.ctx, "A", "a@x.com", "")
	s.ErrorIs(err, ErrMissingFields)
}

func (s *ServiceSuite) TestSignupSucceedsWhenMailIsRefused() {
	s.mailer.err = errors.New("queue down")

	created, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)
	s.NotZero(created.ID)
}

func (s *ServiceSuite) TestLoginInvalidCredentials() {
	_, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	_, _, err = s.service.Login(s.ctx, "a@x.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, _, err = s.service.Login(s.ctx, "nobody@x.com", "p")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, _, err = s.service.Login(s.ctx, "", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestVerifyEmail() {
	created, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	mail := s.mailer.last()
	s.Equal("verification", mail.kind)
	s.Equal("a@x.com", mail.to)

	s.ErrorIs(s.service.VerifyEmail(s.ctx, "bogus"), account.ErrNotFound)
	s.Require().NoError(s.service.VerifyEmail(s.ctx, mail.code))

	stored, err := s.accounts.GetByID(s.ctx, created.ID)
	s.Require().NoError(err)
	s.True(stored.EmailVerified)
}

func (s *ServiceSuite) TestPasswordRecoveryIsSingleUse() {
	_, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	code, err := s.service.RequestPasswordRecovery(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Equal(code, s.mailer.last().code)

	stored, err := s.accounts.GetByEmail(s.ctx, "a@x.com")
	s.Require().NoError(err)
	s.Require().NotNil(stored.RecoveryCode)
	s.NotEqual(code, *stored.RecoveryCode, "only the hash is persisted")

	s.Require().NoError(s.service.ResetPassword(s.ctx, code, "new"))
	s.ErrorIs(s.service.ResetPassword(s.ctx, code, "again"), account.ErrNotFound)

	_, _, err = s.service.Login(s.ctx, "a@x.com", "p")
	s.ErrorIs(err, ErrInvalidCredentials)
	_, _, err = s.service.Login(s.ctx, "a@x.com", "new")
	s.NoError(err)
}

func (s *ServiceSuite) TestPasswordRecoveryExpires() {
	_, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	code, err := s.service.RequestPasswordRecovery(s.ctx, "a@x.com")
	s.Require().NoError(err)

	s.clock = s.clock.Add(2 * time.Hour)
	s.ErrorIs(s.service.ResetPassword(s.ctx, code, "new"), account.ErrNotFound)

	purged, err := s.service.PurgeExpiredRecoveryCodes(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), purged)
}

func (s *ServiceSuite) TestPasswordRecoveryUnknownEmail() {
	_, err := s.service.RequestPasswordRecovery(s.ctx, "nobody@x.com")
	s.ErrorIs(err, account.ErrNotFound)
}

func (s *ServiceSuite) TestPasswordRecoveryFailsWhenMailIsRefused() {
	_, err := s.service.Signup(s.ctx, "A", "a@x.com", "p")
	s.Require().NoError(err)

	s.mailer.err = errors.New("queue down")
	_, err = s.service.RequestPasswordRecovery(s.ctx, "a@x.com")
	s.ErrorIs(err, ErrMailDelivery)
}

func TestResetPasswordRequiresCode(t *testing.T) {
	svc := &Service{now: time.Now}
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), "", "x"), account.ErrNotFound)
	require.ErrorIs(t, svc.VerifyEmail(context.Background(), ""), account.ErrNotFound)
}
