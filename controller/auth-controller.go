package controller

import (
	"staffeval/app_error"
	"staffeval/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	authService *service.AuthService
	userService *service.UserService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		authService: service.NewAuthService(db),
		userService: service.NewUserService(db),
	}
}

func setupAuthController(db *gorm.DB) []RouteInfo {
	e := NewAuthController(db)
	basePath := "/auth"
	routes := []RouteInfo{
		{Method: "POST", Path: "/register", HandlerFunc: e.registerHandler()},
		{Method: "POST", Path: "/login", HandlerFunc: e.loginHandler()},
		{Method: "POST", Path: "/refresh", HandlerFunc: e.refreshHandler()},
		{Method: "GET", Path: "/me", HandlerFunc: e.meHandler(), Authenticated: true},
	}
	for i, route := range routes {
		routes[i].Path = basePath + route.Path
	}
	return routes
}

// @id Register
// @Description Creates an account with the user role
// @Tags auth
// @Accept json
// @Produce json
// @Param body body Credentials true "Credentials"
// @Success 201 {object} TokenResponse
// @Router /auth/register [post]
func (e *AuthController) registerHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials Credentials
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tokens, err := e.authService.Register(credentials.Email, credentials.Password)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(201, toTokenResponse(tokens))
	}
}

// @id Login
// @Description Exchanges email and password for an access and a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body Credentials true "Credentials"
// @Success 200 {object} TokenResponse
// @Router /auth/login [post]
func (e *AuthController) loginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var credentials Credentials
		if err := c.ShouldBindJSON(&credentials); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tokens, err := e.authService.Login(credentials.Email, credentials.Password)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toTokenResponse(tokens))
	}
}

// @id Refresh
// @Description Exchanges a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RefreshRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Router /auth/refresh [post]
func (e *AuthController) refreshHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		var request RefreshRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		tokens, err := e.authService.Refresh(request.RefreshToken)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toTokenResponse(tokens))
	}
}

func (e *AuthController) meHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := e.userService.GetProfile(getActor(c).UserId)
		if err != nil {
			app_error.Respond(c, err)
			return
		}
		c.JSON(200, toUserResponse(user))
	}
}

type Credentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token" binding:"required"`
	RefreshToken string `json:"refresh_token" binding:"required"`
	User         *User  `json:"user" binding:"required"`
}

func toTokenResponse(tokens *service.TokenPair) *TokenResponse {
	return &TokenResponse{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         toUserResponse(tokens.User),
	}
}
