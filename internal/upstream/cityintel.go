package upstream

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/axelfrache/polymove/internal/model"
	"github.com/axelfrache/polymove/internal/pb"
)

// CityIntelClient wraps the city-intel gRPC API.
//
// The underlying connection is long-lived and safe for concurrent use; every
// call is bounded by the configured per-call timeout. A single failed call is
// final; no retries are attempted.
type CityIntelClient struct {
	conn    *grpc.ClientConn
	client  pb.CityIntelServiceClient
	timeout time.Duration
}

// NewCityIntelClient dials addr (plaintext, in-cluster traffic) and returns
// a ready client. Dialing is lazy; connectivity errors surface on first call.
func NewCityIntelClient(addr string, timeout time.Duration) (*CityIntelClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc.NewClient(%q): %w", addr, err)
	}
	return &CityIntelClient{
		conn:    conn,
		client:  pb.NewCityIntelServiceClient(conn),
		timeout: timeout,
	}, nil
}

// Close tears down the underlying connection.
func (c *CityIntelClient) Close() error {
	return c.conn.Close()
}

// Ping runs a standard gRPC health check against city-intel.
func (c *CityIntelClient) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(c.conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return mapGRPCError(err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("%w: city-intel health status %s", ErrUnavailable, resp.GetStatus())
	}
	return nil
}

// CityScore returns the scoring snapshot for city. Returns ErrNotFound when
// the upstream has no score for that city, ErrUnavailable otherwise.
func (c *CityIntelClient) CityScore(ctx context.Context, city string) (model.CityScore, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.GetCityScore(ctx, &pb.GetCityScoreRequest{City: city})
	if err != nil {
		return model.CityScore{}, mapGRPCError(err)
	}

	s := resp.GetScore()
	if s == nil {
		return model.CityScore{}, fmt.Errorf("%w: city score for %q", ErrNotFound, city)
	}

	return model.CityScore{
		City:          s.GetCity(),
		Country:       s.GetCountry(),
		QualityOfLife: s.GetQualityOfLife(),
		Safety:        s.GetSafety(),
		Economy:       s.GetEconomy(),
		Culture:       s.GetCulture(),
		LastUpdated:   s.GetLastUpdated(),
	}, nil
}

// LatestNewsInCity returns up to limit recent news items for city, newest
// first. A city with no news yields an empty slice, not an error.
func (c *CityIntelClient) LatestNewsInCity(ctx context.Context, city string, limit int) ([]model.NewsItem, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.GetLatestNewsInCity(ctx, &pb.GetLatestNewsInCityRequest{
		City:  city,
		Limit: int32(limit),
	})
	if err != nil {
		return nil, mapGRPCError(err)
	}

	items := make([]model.NewsItem, 0, len(resp.GetNews()))
	for _, n := range resp.GetNews() {
		items = append(items, model.NewsItem{
			ID:      n.GetId(),
			Name:    n.GetName(),
			Source:  n.GetSource(),
			Date:    n.GetDate(),
			Tags:    n.GetTags(),
			City:    n.GetCity(),
			Country: n.GetCountry(),
		})
	}
	return items, nil
}

// mapGRPCError folds gRPC statuses into the upstream error taxonomy.
func mapGRPCError(err error) error {
	if status.Code(err) == codes.NotFound {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
