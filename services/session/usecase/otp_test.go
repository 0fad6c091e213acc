package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/services/session/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		Auth: models.AuthConfig{
			Secret:             "test-secret-key",
			Issuer:             "kirana-session",
			AssertionAudience:  "kirana-bootstrap",
			SessionAudience:    "kirana-app",
			AssertionExpiryMin: 5,
			SessionExpiryMin:   60,
			DefaultRole:        models.RoleUser,
			DefaultCountryCode: "91",
		},
		OTP: models.OTPConfig{
			CodeLength:      6,
			ExpiryMinutes:   5,
			MaxAttempts:     3,
			CooldownSeconds: 60,
		},
	}
}

func TestRequestCode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	var dispatched models.CodeDispatchEvent
	var created *models.Challenge

	mockGW.EXPECT().VerifyCaptcha(gomock.Any(), "captcha-ok", "203.0.113.9").Return(nil)
	mockRepo.EXPECT().ReserveCooldown(gomock.Any(), "+919876543210", 60*time.Second).
		Return(time.Duration(0), true, nil)
	mockRepo.EXPECT().CreateChallenge(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.Challenge) error {
			created = c
			return nil
		})
	mockGW.EXPECT().PublishCodeDispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.CodeDispatchEvent) error {
			dispatched = e
			return nil
		})

	resp, err := uc.RequestCode(context.Background(), "98765 43210", "captcha-ok", "203.0.113.9")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, created.Ref, resp.ChallengeRef)
	assert.Equal(t, "+919876543210", created.Destination)
	assert.Equal(t, models.ChannelSMS, created.Channel)
	assert.Equal(t, 3, created.AttemptsLeft)

	// Only the hash is stored; the plain code rides the dispatch event
	assert.Len(t, dispatched.Code, 6)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.CodeHash), []byte(dispatched.Code)))
}

func TestRequestCode_EmailChannel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	mockGW.EXPECT().VerifyCaptcha(gomock.Any(), "captcha-ok", gomock.Any()).Return(nil)
	mockRepo.EXPECT().ReserveCooldown(gomock.Any(), "ravi@example.com", gomock.Any()).
		Return(time.Duration(0), true, nil)
	mockRepo.EXPECT().CreateChallenge(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishCodeDispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.CodeDispatchEvent) error {
			assert.Equal(t, models.ChannelEmail, e.Channel)
			return nil
		})

	_, err := uc.RequestCode(context.Background(), "Ravi@Example.com", "captcha-ok", "")
	assert.NoError(t, err)
}

func TestRequestCode_InvalidDestination(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSessionUC(mocks.NewMockSessionRepo(ctrl), mocks.NewMockSessionGW(ctrl), testConfig())

	_, err := uc.RequestCode(context.Background(), "12", "captcha-ok", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidDestination)
}

func TestRequestCode_CaptchaRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	mockGW.EXPECT().VerifyCaptcha(gomock.Any(), "bad", gomock.Any()).
		Return(apperrors.ErrCaptchaRejected)

	_, err := uc.RequestCode(context.Background(), "9876543210", "bad", "")
	assert.ErrorIs(t, err, apperrors.ErrCaptchaRejected)
}

func TestRequestCode_Cooldown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	mockGW.EXPECT().VerifyCaptcha(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ReserveCooldown(gomock.Any(), "+919876543210", gomock.Any()).
		Return(42*time.Second, false, nil)

	_, err := uc.RequestCode(context.Background(), "9876543210", "captcha-ok", "")
	assert.ErrorIs(t, err, apperrors.ErrRateLimited)
	assert.Contains(t, err.Error(), "42")
}

func TestRequestCode_DispatchUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	mockGW.EXPECT().VerifyCaptcha(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().ReserveCooldown(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(time.Duration(0), true, nil)
	mockRepo.EXPECT().CreateChallenge(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishCodeDispatch(gomock.Any(), gomock.Any()).
		Return(apperrors.ErrProviderUnavailable)

	_, err := uc.RequestCode(context.Background(), "9876543210", "captcha-ok", "")
	assert.ErrorIs(t, err, apperrors.ErrProviderUnavailable)
}

func hashCode(t *testing.T, code string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func liveChallenge(t *testing.T, code string) *models.Challenge {
	t.Helper()
	now := time.Now()
	return &models.Challenge{
		Ref:          "ref-123",
		Destination:  "+919876543210",
		Channel:      models.ChannelSMS,
		CodeHash:     hashCode(t, code),
		AttemptsLeft: 3,
		CreatedAt:    now,
		ExpiresAt:    now.Add(5 * time.Minute),
	}
}

func TestConfirmCode_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	challenge := liveChallenge(t, "482913")

	mockRepo.EXPECT().GetChallenge(gomock.Any(), "ref-123").Return(challenge, nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), challenge).Return(nil)
	mockRepo.EXPECT().GetSubjectByContact(gomock.Any(), "+919876543210", "").
		Return(uuid.Nil, false, nil)

	resp, err := uc.ConfirmCode(context.Background(), "ref-123", "482913")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Assertion)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
}

func TestConfirmCode_Mismatch_DecrementsAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	challenge := liveChallenge(t, "482913")

	mockRepo.EXPECT().GetChallenge(gomock.Any(), "ref-123").Return(challenge, nil)
	mockRepo.EXPECT().DecrementChallengeAttempts(gomock.Any(), "ref-123").Return(2, nil)

	_, err := uc.ConfirmCode(context.Background(), "ref-123", "000000")
	assert.ErrorIs(t, err, apperrors.ErrCodeMismatch)
	assert.Contains(t, err.Error(), "2 attempts left")
}

func TestConfirmCode_LastAttemptConsumesChallenge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	challenge := liveChallenge(t, "482913")
	challenge.AttemptsLeft = 1

	mockRepo.EXPECT().GetChallenge(gomock.Any(), "ref-123").Return(challenge, nil)
	mockRepo.EXPECT().DecrementChallengeAttempts(gomock.Any(), "ref-123").Return(0, nil)
	mockRepo.EXPECT().ConsumeChallenge(gomock.Any(), gomock.Any()).Return(nil)

	_, err := uc.ConfirmCode(context.Background(), "ref-123", "000000")
	assert.ErrorIs(t, err, apperrors.ErrChallengeConsumed)
}

func TestConfirmCode_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetChallenge(gomock.Any(), "gone-ref").
		Return(nil, apperrors.ErrChallengeExpired)

	_, err := uc.ConfirmCode(context.Background(), "gone-ref", "482913")
	assert.ErrorIs(t, err, apperrors.ErrChallengeExpired)
}

func TestConfirmCode_AlreadyConsumed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSessionRepo(ctrl)
	mockGW := mocks.NewMockSessionGW(ctrl)
	uc := NewSessionUC(mockRepo, mockGW, testConfig())

	mockRepo.EXPECT().GetChallenge(gomock.Any(), "used-ref").
		Return(nil, apperrors.ErrChallengeConsumed)

	_, err := uc.ConfirmCode(context.Background(), "used-ref", "482913")
	assert.ErrorIs(t, err, apperrors.ErrChallengeConsumed)
}

func TestConfirmCode_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := NewSessionUC(mocks.NewMockSessionRepo(ctrl), mocks.NewMockSessionGW(ctrl), testConfig())

	_, err := uc.ConfirmCode(context.Background(), "", "482913")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCode)

	_, err = uc.ConfirmCode(context.Background(), "ref-123", "")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCode)
}

func TestGenerateCode_Format(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := generateCode(6)
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9')
		}
	}
}
