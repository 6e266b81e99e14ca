package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"dealership-backend/config"

	"github.com/pquerna/otp/totp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// OtpService handles the second authentication factor. Email OTPs live
// in Redis with a pre-token that binds the challenge to the login that
// requested it; TOTP secrets live on the user record.
type OtpService interface {
	GenerateOtp(keySuffix string) (otp string, preToken string)
	ValidateOtp(otp string, preToken string, keySuffix string) bool
	ValidatePreToken(preToken string, keySuffix string) bool
	InvalidateOtp(keySuffix string)
	AllowOtpRequest(email string) bool

	GenerateTOTPSecret(email string) (*TOTPSetup, error)
	ValidateTOTPCode(secret, code string) bool
}

type TOTPSetup struct {
	Secret    string `json:"secret"`
	QRCodeURL string `json:"qr_code_url"`
	ManualKey string `json:"manual_key"`
}

type otpService struct {
	redisClient *redis.Client
	ctx         context.Context

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

func NewOtpService(redisClient *redis.Client, ctx context.Context) OtpService {
	return &otpService{
		redisClient: redisClient,
		ctx:         ctx,
		limiters:    make(map[string]*rate.Limiter),
	}
}

const otpDuration = 5 * time.Minute

type storagePayload struct {
	PreToken string `json:"pre_token"`
	Otp      string `json:"otp"`
}

// AllowOtpRequest throttles OTP issuance per email: one request every
// 30 seconds with a burst of 3. Keeps the SMTP account off blocklists
// when a client retries in a loop.
func (os *otpService) AllowOtpRequest(email string) bool {
	os.mu.Lock()
	defer os.mu.Unlock()

	limiter, ok := os.limiters[email]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(30*time.Second), 3)
		os.limiters[email] = limiter
	}
	return limiter.Allow()
}

func (os *otpService) GenerateOtp(keySuffix string) (otp string, preToken string) {
	otpValue, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		config.Logger.Error("Failed to generate random OTP", zap.Error(err))
		return "", ""
	}
	otp = fmt.Sprintf("%06d", otpValue.Int64()+100000)

	preTokenBytes := make([]byte, 16)
	if _, err := rand.Read(preTokenBytes); err != nil {
		config.Logger.Error("Failed to generate random pre-token", zap.Error(err))
		return "", ""
	}
	preToken = base64.URLEncoding.EncodeToString(preTokenBytes)

	jsonData, err := json.Marshal(storagePayload{PreToken: preToken, Otp: otp})
	if err != nil {
		config.Logger.Error("Failed to marshal OTP payload", zap.Error(err))
		return "", ""
	}

	redisKey := "otp:" + keySuffix
	if err := os.redisClient.Set(os.ctx, redisKey, string(jsonData), otpDuration).Err(); err != nil {
		config.Logger.Error("Failed to set OTP in Redis", zap.Error(err), zap.String("key", redisKey))
		return "", ""
	}

	return otp, preToken
}

func (os *otpService) ValidateOtp(otp string, preToken string, keySuffix string) bool {
	redisKey := "otp:" + keySuffix
	data := os.redisClient.Get(os.ctx, redisKey).Val()
	if data == "" {
		config.Logger.Warn("OTP not found or expired in Redis", zap.String("key", redisKey))
		return false
	}

	var stored storagePayload
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		config.Logger.Error("Failed to unmarshal OTP payload from Redis",
			zap.Error(err), zap.String("key", redisKey))
		return false
	}

	if stored.PreToken == preToken && stored.Otp == otp {
		os.InvalidateOtp(keySuffix)
		return true
	}

	config.Logger.Warn("Invalid OTP or pre-token provided", zap.String("key", redisKey))
	return false
}

// ValidatePreToken consumes a challenge by pre-token alone. Used for
// authenticator logins, where the 6-digit code is checked against the
// user's TOTP secret instead of Redis.
func (os *otpService) ValidatePreToken(preToken string, keySuffix string) bool {
	redisKey := "otp:" + keySuffix
	data := os.redisClient.Get(os.ctx, redisKey).Val()
	if data == "" {
		return false
	}

	var stored storagePayload
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return false
	}

	if stored.PreToken != preToken {
		return false
	}
	os.InvalidateOtp(keySuffix)
	return true
}

func (os *otpService) InvalidateOtp(keySuffix string) {
	redisKey := "otp:" + keySuffix
	if err := os.redisClient.Del(os.ctx, redisKey).Err(); err != nil {
		config.Logger.Error("Failed to invalidate OTP in Redis",
			zap.Error(err), zap.String("key", redisKey))
	}
}

// GenerateTOTPSecret mints a new authenticator-app secret. The caller
// persists it on the user record once the first code validates.
func (os *otpService) GenerateTOTPSecret(email string) (*TOTPSetup, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "DealershipHQ",
		AccountName: email,
		SecretSize:  32,
	})
	if err != nil {
		config.Logger.Error("Failed to generate TOTP secret", zap.Error(err))
		return nil, err
	}

	return &TOTPSetup{
		Secret:    key.Secret(),
		QRCodeURL: key.URL(),
		ManualKey: key.Secret(),
	}, nil
}

func (os *otpService) ValidateTOTPCode(secret, code string) bool {
	if secret == "" {
		return false
	}
	return totp.Validate(code, secret)
}
