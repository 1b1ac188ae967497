package auth

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"taskdesk/internal/api"
	"taskdesk/internal/config"
	"taskdesk/internal/database"
	"taskdesk/internal/model"
	"taskdesk/internal/service"
	"taskdesk/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

var (
	hashPassword      = service.HashPassword
	authenticateUser  = service.AuthenticateUser
	issueAccessToken  = service.IssueAccessToken
	createUser        = store.CreateUser
	getUserByUsername = store.GetUserByUsername
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// @Summary     Register a new user
// @Description Creates an account; only the bcrypt hash of the password is stored
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "registration payload"
// @Success     201 {string} string "created username"
// @Failure     400 {object} api.ErrorResponse
// @Failure     409 {object} api.ErrorResponse "username or email already taken"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/ [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		req.Email = strings.ToLower(req.Email)
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid email format"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		user, err := createUser(c.Request().Context(), db, &model.User{
			Username:       req.Username,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			HashedPassword: hash,
			IsActive:       true,
			PhoneNumber:    req.PhoneNumber,
			Role:           req.Role,
		})
		if err != nil {
			if isUniqueViolation(err) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "username or email already exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: err.Error()})
		}

		return c.JSON(http.StatusCreated, user.Username)
	}
}

// @Summary     Obtain an access token
// @Description Verifies username/password form credentials and returns a signed bearer token
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       username formData string true "username"
// @Param       password formData string true "password"
// @Success     200 {object} api.TokenResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse "incorrect username or password"
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/token [post]
func TokenHandler(db database.DB, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TokenRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		// Lookup failure and password mismatch produce the same message.
		user, err := getUserByUsername(c.Request().Context(), db, req.Username)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect username or password"})
		}
		if err := authenticateUser(*user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "incorrect username or password"})
		}

		token, err := issueAccessToken(*user, cfg.JWTSecret, cfg.JWTAlgorithm, cfg.AccessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		return c.JSON(http.StatusOK, api.TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
