package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medibox/medibox/pkg/pagination"
)

const tokenTTL = 24 * time.Hour

// Claims is the token payload the dashboard reads back.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
	Role Role   `json:"role"`
}

type Service struct {
	repo      Repository
	jwtSecret []byte
}

func NewService(repo Repository, jwtSecret string) *Service {
	return &Service{repo: repo, jwtSecret: []byte(jwtSecret)}
}

func (s *Service) Register(ctx context.Context, st *Staff) error {
	if st.Name == "" {
		return fmt.Errorf("name is required")
	}
	if st.Username == "" {
		return fmt.Errorf("username is required")
	}
	if st.Role == "" {
		st.Role = RoleDoctor
	}
	if !validRoles[st.Role] {
		return fmt.Errorf("invalid role: %s", st.Role)
	}
	return s.repo.Create(ctx, st)
}

// Login authenticates by username and issues an HS256 token carrying the
// member's name and role.
func (s *Service) Login(ctx context.Context, username string) (*Staff, string, error) {
	st, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   st.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		Name: st.Name,
		Role: st.Role,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return st, token, nil
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]Staff, int, error) {
	return s.repo.List(ctx, p)
}
