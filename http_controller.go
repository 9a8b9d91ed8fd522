package auth

import (
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"

	"github.com/skillquest/go-auth/middleware/tokenware"
)

// AuthControllerRoutes are the mount points for the auth endpoints.
type AuthControllerRoutes struct {
	Login    string
	Refresh  string
	Register string
	Logout   string
	Me       string
}

// AuthController exposes the login/refresh/register endpoints over fiber.
// Tokens travel in the JSON body and in cookies; the refresh token is
// cookie-first so browser clients never handle it directly.
type AuthController struct {
	Debug  bool
	Logger Logger
	Repo   RepositoryManager
	Hasher PasswordHasher
	Auther *Auther
	Config Config
	Routes *AuthControllerRoutes
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Hasher: BcryptHasher{},
		Routes: &AuthControllerRoutes{
			Login:    "/login",
			Refresh:  "/refresh",
			Register: "/register",
			Logout:   "/logout",
			Me:       "/me",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Config == nil {
		c.Config = SimpleConfig{}
	}

	return c
}

func WithControllerAuther(auther *Auther) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		return c
	}
}

func WithControllerRepo(repo RepositoryManager) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Repo = repo
		return c
	}
}

func WithControllerConfig(cfg Config) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Config = cfg
		return c
	}
}

func WithControllerHasher(hasher PasswordHasher) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Hasher = hasher
		return c
	}
}

func WithControllerLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

// RegisterAuthRoutes mounts the auth endpoints under /auth.
func RegisterAuthRoutes(app fiber.Router, opts ...AuthControllerOption) *AuthController {
	controller := NewAuthController(opts...)

	grp := app.Group("/auth")
	grp.Post(controller.Routes.Login, controller.LoginPost)
	grp.Post(controller.Routes.Refresh, controller.RefreshPost)
	grp.Post(controller.Routes.Register, controller.RegistrationCreate)
	grp.Post(controller.Routes.Logout, controller.Logout)
	grp.Get(controller.Routes.Me,
		ProtectedRoute(controller.Auther.Resolver(), controller.Config, controller.writeError),
		controller.Me,
	)

	return controller
}

// LoginRequest payload
type LoginRequest struct {
	Login    string `form:"login" json:"login"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Password, validation.Required),
	)
}

func (a *AuthController) LoginPost(c *fiber.Ctx) error {
	payload := new(LoginRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return a.writeError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse login payload").
			WithCode(errors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return a.writeValidationError(c, err)
	}

	if a.Debug {
		a.Logger.Debug("login attempt", "payload", print.MaybePrettyJSON(fiber.Map{"login": payload.Login}))
	}

	pair, err := a.Auther.Login(c.UserContext(), payload.Login, payload.Password)
	if err != nil {
		return a.writeError(c, err)
	}

	a.setTokenCookies(c, pair)

	return c.JSON(pair)
}

func (a *AuthController) RefreshPost(c *fiber.Ctx) error {
	lookup := "cookie:" + a.Config.GetRefreshCookieName() + ",header:" + fiber.HeaderAuthorization
	raw, _ := tokenware.ExtractRawToken(c, tokenware.GetExtractors(lookup, a.Config.GetAuthScheme()))
	if raw == "" {
		return a.writeError(c, ErrUnableToFindSession)
	}

	pair, err := a.Auther.Refresh(c.UserContext(), raw)
	if err != nil {
		return a.writeError(c, err)
	}

	a.setTokenCookies(c, pair)

	return c.JSON(pair)
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Login    string `form:"login" json:"login"`
	Nickname string `form:"nickname" json:"nickname"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will validate the payload
func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Login, validation.Required, validation.Length(3, 64)),
		validation.Field(&r.Nickname, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
	)
}

func (a *AuthController) RegistrationCreate(c *fiber.Ctx) error {
	payload := new(RegisterRequest)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register parse payload", "error", err)
		return a.writeError(c, errors.Wrap(err, errors.CategoryBadInput, "unable to parse registration payload").
			WithCode(errors.CodeBadRequest))
	}

	if err := payload.Validate(); err != nil {
		return a.writeValidationError(c, err)
	}

	hash, err := a.Hasher.Hash(payload.Password)
	if err != nil {
		return a.writeError(c, err)
	}

	user := &User{
		Login:        payload.Login,
		Nickname:     payload.Nickname,
		Email:        payload.Email,
		PasswordHash: hash,
		Role:         RoleUser,
	}

	if user, err = a.Repo.Users().Register(c.UserContext(), user); err != nil {
		return a.writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

func (a *AuthController) Logout(c *fiber.Ctx) error {
	a.cookieDel(c, a.Config.GetAccessCookieName())
	a.cookieDel(c, a.Config.GetRefreshCookieName())
	return c.SendStatus(fiber.StatusNoContent)
}

func (a *AuthController) Me(c *fiber.Ctx) error {
	user, ok := FromContext(c.UserContext())
	if !ok {
		return a.writeError(c, ErrUnableToFindSession)
	}
	return c.JSON(user)
}

func (a *AuthController) setTokenCookies(c *fiber.Ctx, pair *TokenPair) {
	accessTTL := time.Duration(a.Config.GetAccessTokenTTL()) * time.Minute
	a.setCookie(c, a.Config.GetAccessCookieName(), pair.AccessToken, accessTTL)

	if pair.RefreshToken != "" {
		refreshTTL := time.Duration(a.Config.GetRefreshTokenTTL()) * 24 * time.Hour
		a.setCookie(c, a.Config.GetRefreshCookieName(), pair.RefreshToken, refreshTTL)
	}
}

func (a *AuthController) setCookie(c *fiber.Ctx, name, val string, duration time.Duration) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    val,
		Path:     "/",
		Expires:  time.Now().Add(duration),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *AuthController) cookieDel(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour * (24 * 365)),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
	})
}

func (a *AuthController) writeError(c *fiber.Ctx, err error) error {
	return WriteError(c, a.Logger, err)
}

func (a *AuthController) writeValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":      "invalid payload",
		"validation": FormatValidationErrorToMap(err),
	})
}

// WriteError translates the internal error taxonomy into a transport-level
// status code and JSON body. No other layer touches status codes.
func WriteError(c *fiber.Ctx, logger Logger, err error) error {
	if err == tokenware.ErrTokenMissing {
		err = ErrUnableToFindSession
	}

	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	if logger != nil {
		logger.Info(
			"auth request error",
			"error", richErr.Message,
			"text_code", richErr.TextCode,
			"details", print.MaybePrettyJSON(richErr.Metadata),
		)
	}

	status := int(richErr.Code)
	if status == 0 {
		status = statusFromCategory(richErr.Category)
	}

	body := fiber.Map{"error": richErr.Message}
	if richErr.TextCode != "" {
		body["text_code"] = richErr.TextCode
	}

	return c.Status(status).JSON(body)
}

func statusFromCategory(category errors.Category) int {
	switch category {
	case errors.CategoryAuth, errors.CategoryAuthz:
		return http.StatusUnauthorized
	case errors.CategoryConflict:
		return http.StatusConflict
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryValidation, errors.CategoryBadInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// FormatValidationErrorToMap flattens ozzo validation errors into a
// field->message map for JSON responses.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			out[field] = ferr.Error()
		}
		return out
	}

	out["payload"] = err.Error()
	return out
}
