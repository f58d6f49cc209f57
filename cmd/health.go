package main

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// newHealthServer creates the gRPC server exposing grpc.health.v1. It reports NOT_SERVING until
// markServing is called; health.Server.Shutdown turns it back once the instance deregisters.
func newHealthServer() (*grpc.Server, *health.Server) {
	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)
	return grpcServer, healthServer
}

func markServing(healthServer *health.Server) {
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}
