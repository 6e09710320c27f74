package controller

import (
	"staffeval/app_error"
	"staffeval/auth"
	"staffeval/repository"
	"staffeval/service"
	"strings"

	"github.com/gin-contrib/cache/persistence"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const actorKey = "actor"

type RouteInfo struct {
	Method        string
	Path          string
	HandlerFunc   gin.HandlerFunc
	Authenticated bool
	RequiredRoles []repository.Role
}

func SetRoutes(r *gin.Engine, db *gorm.DB, cacheStore persistence.CacheStore, publisher service.EvaluationPublisher) {
	routes := make([]RouteInfo, 0)
	routes = append(routes, setupAuthController(db)...)
	routes = append(routes, setupEvaluationController(db, publisher)...)
	routes = append(routes, setupGroupController(db)...)
	routes = append(routes, setupStaffController(db)...)
	routes = append(routes, setupQuestionController(db, cacheStore)...)
	routes = append(routes, setupOrganizationUnitController(db)...)
	routes = append(routes, setupUserController(db)...)
	registerRoutes(r.Group("/api"), routes)
}

func registerRoutes(r gin.IRoutes, routes []RouteInfo) {
	for _, route := range routes {
		handlerfuncs := make([]gin.HandlerFunc, 0)
		if route.Authenticated || len(route.RequiredRoles) > 0 {
			handlerfuncs = append(handlerfuncs, AuthMiddleware(route.RequiredRoles))
		}
		handlerfuncs = append(handlerfuncs, route.HandlerFunc)
		r.Handle(route.Method, route.Path, handlerfuncs...)
	}
}

// AuthMiddleware validates the bearer access token and stores the actor in the context.
// With roles given, the actor needs at least one of them.
func AuthMiddleware(roles []repository.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abort(c, app_error.ErrUnauthenticated)
			return
		}
		claims, err := auth.ParseToken(tokenString, auth.AccessToken)
		if err != nil {
			abort(c, app_error.ErrUnauthenticated)
			return
		}
		actor := claims.Actor()
		c.Set(actorKey, actor)
		if len(roles) == 0 {
			c.Next()
			return
		}
		for _, requiredRole := range roles {
			if actor.HasRole(string(requiredRole)) {
				c.Next()
				return
			}
		}
		abort(c, app_error.ErrForbidden)
	}
}

func abort(c *gin.Context, err error) {
	app_error.Respond(c, err)
	c.Abort()
}

func getActor(c *gin.Context) auth.Actor {
	actor, ok := c.Get(actorKey)
	if !ok {
		return auth.Actor{}
	}
	return actor.(auth.Actor)
}
