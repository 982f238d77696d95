package services

import (
	"deliwer-loyalty-system/models"
	"deliwer-loyalty-system/storage"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityProvider resolves a bearer assertion plus shop domain to an admin
// identity. A nil identity with a nil error means the assertion did not
// check out; errors are reserved for the provider itself failing.
type IdentityProvider interface {
	Resolve(token, shopDomain string) (*models.AdminIdentity, error)
}

// AdminClaims is the JWT payload minted by the session gateway.
type AdminClaims struct {
	Email      string `json:"email"`
	ShopDomain string `json:"shop_domain"`
	jwt.RegisteredClaims
}

// JWTIdentityProvider validates HS256 session tokens and resolves the
// current role from the admin registry, so a role change takes effect on the
// next request rather than at the token's next mint.
type JWTIdentityProvider struct {
	Secret []byte
	Admins storage.AdminStore
}

func NewJWTIdentityProvider(secret string, admins storage.AdminStore) *JWTIdentityProvider {
	return &JWTIdentityProvider{Secret: []byte(secret), Admins: admins}
}

func (p *JWTIdentityProvider) Resolve(token, shopDomain string) (*models.AdminIdentity, error) {
	if token == "" || shopDomain == "" {
		return nil, nil
	}

	var claims AdminClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return p.Secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, nil
	}

	// The token must be scoped to the shop the request claims to act on.
	if claims.ShopDomain != shopDomain {
		return nil, nil
	}

	account, err := p.Admins.GetByEmail(shopDomain, claims.Email)
	if err == models.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, &models.CollaboratorError{Collaborator: "admin registry", Err: err}
	}
	if !account.IsActive {
		return nil, nil
	}

	return &models.AdminIdentity{
		ID:          account.ID,
		Email:       account.Email,
		Role:        account.Role,
		ShopDomain:  account.ShopDomain,
		Permissions: models.PermissionsFor(account.Role),
	}, nil
}
