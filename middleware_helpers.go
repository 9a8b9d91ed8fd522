package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/skillquest/go-auth/middleware/tokenware"
)

// ProtectedRoute returns a fiber middleware that accepts only unexpired
// access tokens, resolves the subject to a credential record, and stores the
// claims and user in the request locals and standard context.
func ProtectedRoute(resolver *SessionResolver, cfg Config, errorHandler func(*fiber.Ctx, error) error) fiber.Handler {
	if errorHandler == nil {
		errorHandler = func(c *fiber.Ctx, err error) error {
			return WriteError(c, nil, err)
		}
	}

	return tokenware.New(tokenware.Config{
		Validator:    accessClaimsValidator(resolver),
		ContextKey:   cfg.GetContextKey(),
		TokenLookup:  cfg.GetTokenLookup(),
		AuthScheme:   cfg.GetAuthScheme(),
		ErrorHandler: errorHandler,
		Listeners: []tokenware.Listener{
			resolveUserListener(resolver),
		},
	})
}

// accessClaimsValidator bridges the root validator into the middleware's
// mirrored Claims interface, enforcing the access kind on the way through.
func accessClaimsValidator(resolver *SessionResolver) tokenware.Validator {
	validator := KindValidator(resolver.Validator(), TokenKindAccess)
	return tokenware.ValidatorFunc(func(tokenString string) (tokenware.Claims, error) {
		claims, err := validator.Validate(tokenString)
		if err != nil {
			return nil, err
		}
		return claims, nil
	})
}

// RequireRole guards a route behind a minimum platform role. It must run
// after ProtectedRoute, which puts the resolved user in the request context.
func RequireRole(minRole UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := FromContext(c.UserContext())
		if !ok {
			return WriteError(c, nil, ErrUnableToFindSession)
		}
		if !RoleIsAtLeast(user.Role, minRole) {
			return c.Status(fiber.StatusForbidden).
				JSON(fiber.Map{"error": "insufficient role"})
		}
		return c.Next()
	}
}

func resolveUserListener(resolver *SessionResolver) tokenware.Listener {
	return func(c *fiber.Ctx, claims tokenware.Claims) error {
		user, err := resolver.ResolveSubject(c.UserContext(), claims.Subject())
		if err != nil {
			return err
		}

		ctx := WithContext(c.UserContext(), user)
		if tc, ok := claims.(*TokenClaims); ok {
			ctx = WithClaimsContext(ctx, tc)
		}
		c.SetUserContext(ctx)

		return nil
	}
}
