// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"blogd/internal/delivery/http/middleware"
	"blogd/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	BlogHandler    *handler.BlogHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	blogHandler    *handler.BlogHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		blogHandler:    params.BlogHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.GET("/me",
			r.authHandler.Me,
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireActive,
		)
	}

	// Content routes. Reads and writes are both public; only /auth/me sits
	// behind the token.
	blogGroup := e.Group("/blog")
	{
		blogGroup.POST("/posts", r.blogHandler.CreatePost)
		blogGroup.GET("/posts", r.blogHandler.ListPosts)
		blogGroup.GET("/posts/:id", r.blogHandler.GetPost)
		blogGroup.PUT("/posts/:id", r.blogHandler.UpdatePost)
		blogGroup.DELETE("/posts/:id", r.blogHandler.DeletePost)

		blogGroup.POST("/comments", r.blogHandler.CreateComment)
		blogGroup.GET("/comments", r.blogHandler.ListComments)
		blogGroup.GET("/comments/:id", r.blogHandler.GetComment)
		blogGroup.PUT("/comments/:id", r.blogHandler.UpdateComment)
		blogGroup.DELETE("/comments/:id", r.blogHandler.DeleteComment)
	}
}
