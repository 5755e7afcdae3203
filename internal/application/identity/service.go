package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/ecom/backend/internal/domain/customer"
	"github.com/ecom/backend/internal/domain/shared"
	"github.com/ecom/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service handles customer registration and authentication
type Service struct {
	customers customer.Repository
	tokens    *auth.JWTService
	blacklist auth.TokenBlacklist
	logger    *zap.Logger
}

// NewService creates a new identity service
func NewService(customers customer.Repository, tokens *auth.JWTService, blacklist auth.TokenBlacklist, logger *zap.Logger) *Service {
	return &Service{
		customers: customers,
		tokens:    tokens,
		blacklist: blacklist,
		logger:    logger,
	}
}

// Register creates a new customer account
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*CustomerResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	c := &customer.Customer{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         req.Name,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Contact:      req.Contact,
		Address:      req.Address,
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("customer registered", zap.Int64("customer_id", c.ID))
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password return the same error so callers cannot probe for
// registered addresses.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	c, err := s.customers.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(req.Password)); err != nil {
		return nil, shared.ErrUnauthorized
	}

	token, err := s.tokens.Generate(c.ID, c.Email)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token.Value,
		ExpiresAt: token.ExpiresAt,
		Customer:  toCustomerResponse(c),
	}, nil
}

// Profile returns the authenticated customer's account details
func (s *Service) Profile(ctx context.Context, customerID int64) (*CustomerResponse, error) {
	c, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	resp := toCustomerResponse(c)
	return &resp, nil
}

// Logout revokes the presented token for its remaining lifetime
func (s *Service) Logout(ctx context.Context, claims *auth.Claims) error {
	remaining := claims.RemainingValidity()
	if remaining <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, remaining)
}
