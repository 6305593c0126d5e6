package auth

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"employee-api/internal/domain"
	"employee-api/pkg/utils"
)

const TokenTypeBearer = "bearer"

// Options 构造 TokenService 所需的全部配置，启动时注入，运行期不变
type Options struct {
	Secret       string
	Issuer       string
	TTL          time.Duration
	Username     string
	Password     string // 明文，构造时转 bcrypt
	PasswordHash string // 已是 bcrypt 哈希时优先使用
	Now          func() time.Time
}

type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"-"`
}

// TokenService 单一凭据登录 + 无状态令牌校验
type TokenService struct {
	jwt      *JWTer
	username string
	pwHash   string
}

func NewTokenService(o Options) (*TokenService, error) {
	if o.Secret == "" {
		return nil, errors.New("auth: empty signing secret")
	}
	if o.Username == "" || (o.Password == "" && o.PasswordHash == "") {
		return nil, errors.New("auth: credential pair not configured")
	}
	hash := o.PasswordHash
	if hash == "" {
		h, err := utils.HashPassword(o.Password)
		if err != nil {
			return nil, err
		}
		hash = h
	}
	ttl := o.TTL
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &TokenService{
		jwt:      &JWTer{Secret: []byte(o.Secret), Issuer: o.Issuer, TTL: ttl, Now: o.Now},
		username: o.Username,
		pwHash:   hash,
	}, nil
}

func (s *TokenService) Login(username, password string) (Token, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	// 用户名不对也跑一次 bcrypt，避免按耗时区分
	pwOK := utils.CheckPassword(password, s.pwHash)
	if !userOK || !pwOK {
		return Token{}, domain.ErrInvalidCredentials
	}
	tok, exp, err := s.jwt.Issue(username)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: tok, TokenType: TokenTypeBearer, ExpiresAt: exp}, nil
}

// Validate 返回 subject
func (s *TokenService) Validate(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrMissingToken
	}
	claims, err := s.jwt.Parse(token)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", domain.ErrTokenExpired
	case err != nil:
		return "", domain.ErrMalformedToken
	}
	if claims.Subject == "" {
		return "", domain.ErrMalformedToken
	}
	return claims.Subject, nil
}
