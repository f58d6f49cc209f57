package handlers

import (
	"encoding/json"
	"net/url"

	"mypresence/service"

	"github.com/labstack/echo/v4"
)

// InstanceInfo defines model for InstanceInfo.
type InstanceInfo struct {
	Name string `json:"name"`
	Host string `json:"host,omitempty"`
}

// InstancesResponse defines model for InstancesResponse.
type InstancesResponse struct {
	Self    InstanceInfo `json:"self"`
	Members []string     `json:"members"`
}

// ValuesResponse defines model for ValuesResponse.
type ValuesResponse struct {
	Key    string            `json:"key"`
	Values []json.RawMessage `json:"values"`
}

// ServerInterface represents all server handlers declared in openapi.yaml.
type ServerInterface interface {
	// (GET /v1/instances)
	GetInstances(ctx echo.Context) error
	// (GET /v1/keys/{key})
	GetAggregate(ctx echo.Context, key string) error
	// (PUT /v1/keys/{key})
	SetContribution(ctx echo.Context, key string) error
	// (GET /v1/keys/{key}/self)
	GetContribution(ctx echo.Context, key string) error
	// (DELETE /v1/keys/{key}/self)
	DeleteContribution(ctx echo.Context, key string) error
	// (PUT /v1/members/{channel})
	UpdateMemberList(ctx echo.Context, channel string) error
	// (POST /v1/publish/{channel})
	PublishRelay(ctx echo.Context, channel string) error
}

// EchoRouter is the subset of *echo.Echo and *echo.Group used for route registration.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface, m ...echo.MiddlewareFunc) {
	router.GET("/v1/instances", si.GetInstances, m...)
	router.GET("/v1/keys/:key", withParam("key", si.GetAggregate), m...)
	router.PUT("/v1/keys/:key", withParam("key", si.SetContribution), m...)
	router.GET("/v1/keys/:key/self", withParam("key", si.GetContribution), m...)
	router.DELETE("/v1/keys/:key/self", withParam("key", si.DeleteContribution), m...)
	router.PUT("/v1/members/:channel", withParam("channel", si.UpdateMemberList), m...)
	router.POST("/v1/publish/:channel", withParam("channel", si.PublishRelay), m...)
}

// withParam passes the unescaped path parameter name to h. Echo routes on URL.RawPath when it is set
// and leaves the parameter escaped in that case only.
func withParam(name string, h func(echo.Context, string) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		value := ctx.Param(name)
		if ctx.Request().URL.RawPath != "" {
			unescaped, err := url.PathUnescape(value)
			if err != nil {
				return service.NewBadParameterError("Invalid format for parameter "+name, err)
			}
			value = unescaped
		}
		return h(ctx, value)
	}
}
