// Package handlers contains http handlers for mypresence.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"mypresence/helpers"
	"mypresence/interfaces"
	"mypresence/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// HTTPServer implements ServerInterface declared in openapi.yaml.
type HTTPServer struct {
	registry interfaces.RegistryView
	store    interfaces.AggregatedStore[json.RawMessage]
	members  *service.MemberLists[json.RawMessage]
	relay    interfaces.PresenceRelay
	logger   log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(
	registry interfaces.RegistryView,
	store interfaces.AggregatedStore[json.RawMessage],
	members *service.MemberLists[json.RawMessage],
	relay interfaces.PresenceRelay,
	logger log.Logger,
) *HTTPServer {
	return &HTTPServer{
		registry: helpers.NilPanic(registry, "handlers.http.go: registry is required"),
		store:    helpers.NilPanic(store, "handlers.http.go: store is required"),
		members:  helpers.NilPanic(members, "handlers.http.go: members is required"),
		relay:    helpers.NilPanic(relay, "handlers.http.go: relay is required"),
		logger:   log.WithPrefix(helpers.NilPanic(logger, "handlers.http.go: logger is required"), "component", "HTTPServer"),
	}
}

// GetInstances (GET /v1/instances) returns the local instance and the current registry view.
func (h *HTTPServer) GetInstances(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toInstancesResponse(h.registry.Self(), h.registry.Members()))
}

// GetAggregate (GET /v1/keys/{key}) returns the values of every live instance under key.
func (h *HTTPServer) GetAggregate(ectx echo.Context, key string) error {
	values := h.store.GetAll(ectx.Request().Context(), key)
	return ectx.JSON(http.StatusOK, toValuesResponse(key, values))
}

// SetContribution (PUT /v1/keys/{key}) replaces the values of this instance. Returns 204 on success, 400 on a bad body, 500 on Redis error.
func (h *HTTPServer) SetContribution(ectx echo.Context, key string) error {
	values, err := fromValuesBody(ectx.Request().Body)
	if err != nil {
		return err
	}

	if err := h.store.Set(ectx.Request().Context(), key, values); err != nil {
		return fmt.Errorf("setContribution failed to write values, err: %w", err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// GetContribution (GET /v1/keys/{key}/self) returns the values of this instance, 404 when there are none.
func (h *HTTPServer) GetContribution(ectx echo.Context, key string) error {
	values, ok := h.store.Get(ectx.Request().Context(), key)
	if !ok {
		return service.NewEntityNotFoundError("no values of this instance under key", nil)
	}
	return ectx.JSON(http.StatusOK, toValuesResponse(key, values))
}

// DeleteContribution (DELETE /v1/keys/{key}/self) removes the values of this instance.
func (h *HTTPServer) DeleteContribution(ectx echo.Context, key string) error {
	if err := h.store.Delete(ectx.Request().Context(), key); err != nil {
		return fmt.Errorf("deleteContribution failed to delete values, err: %w", err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// UpdateMemberList (PUT /v1/members/{channel}) stores the member list of this instance and announces it once.
func (h *HTTPServer) UpdateMemberList(ectx echo.Context, channel string) error {
	members, err := fromValuesBody(ectx.Request().Body)
	if err != nil {
		return err
	}

	if err := h.members.Update(ectx.Request().Context(), channel, members); err != nil {
		return fmt.Errorf("updateMemberList failed to update channel %q, err: %w", channel, err)
	}
	return ectx.NoContent(http.StatusNoContent)
}

// PublishRelay (POST /v1/publish/{channel}) forwards the request body to the relay.
// Returns 204 also when the relay is disabled and nothing was sent.
func (h *HTTPServer) PublishRelay(ectx echo.Context, channel string) error {
	value, err := fromRawBody(ectx.Request().Body)
	if err != nil {
		return err
	}

	if !h.relay.Enabled() {
		level.Debug(h.logger).Log("msg", "Relay disabled, dropping message", "channel", channel)
	}
	if err := h.relay.Publish(ectx.Request().Context(), channel, value); err != nil {
		return fmt.Errorf("publishRelay failed to publish to %q, err: %w", channel, err)
	}
	return ectx.NoContent(http.StatusNoContent)
}
