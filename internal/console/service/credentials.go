package service

import (
	"context"
	"strings"

	"github.com/vyaapaarai/console/internal/console/domain"
	"golang.org/x/crypto/bcrypt"
)

// Demo accounts. The passwords live here as literals because this is a mock:
// they are hashed at construction and compared like real credentials so the
// verifier is drop-in replaceable by an identity provider.
const (
	DemoAdminEmail    = "admin@platform.com"
	demoAdminPassword = "admin123"

	DemoMerchantEmail    = "merchant@store.com"
	demoMerchantPassword = "merchant123"
)

// StaticCredentials verifies against a fixed set of per-role reference
// records, one per role.
type StaticCredentials struct {
	records map[domain.Role]domain.Credential
}

// NewStaticCredentials builds a verifier over the given records. Later
// records for the same role replace earlier ones.
func NewStaticCredentials(records ...domain.Credential) *StaticCredentials {
	s := &StaticCredentials{records: make(map[domain.Role]domain.Credential, len(records))}
	for _, rec := range records {
		s.records[rec.Role] = rec
	}
	return s
}

// DemoCredentials returns the verifier holding the two demo accounts.
func DemoCredentials() *StaticCredentials {
	return NewStaticCredentials(
		domain.Credential{
			Role:         domain.RoleAdmin,
			Email:        DemoAdminEmail,
			PasswordHash: mustHash(demoAdminPassword),
		},
		domain.Credential{
			Role:         domain.RoleMerchant,
			Email:        DemoMerchantEmail,
			PasswordHash: mustHash(demoMerchantPassword),
		},
	)
}

// Verify accepts iff email and password exactly match the reference record
// for role. Any other pair yields ErrInvalidCredentials.
func (s *StaticCredentials) Verify(ctx context.Context, role domain.Role, email, password string) error {
	rec, ok := s.records[role]
	if !ok {
		return ErrInvalidCredentials
	}
	if strings.TrimSpace(email) != rec.Email {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		// Only reachable if the password exceeds bcrypt's 72-byte cap.
		panic(err)
	}
	return string(hash)
}
