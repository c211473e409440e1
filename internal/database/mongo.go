package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	appconfig "github.com/timsachnhabe/bookstore-api/internal/config"
)

// mongoConn adapts a *mongo.Client to the Conn interface.
type mongoConn struct {
	client *mongo.Client
	store  *Store
}

func (c *mongoConn) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

func (c *mongoConn) Disconnect(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *mongoConn) Store() *Store {
	return c.store
}

// MongoDialer returns a Dialer that connects to MongoDB with the configured
// server-selection and socket timeouts. The connection is verified with a
// ping before being handed to the Manager, so a dial either yields a live
// connection or an error the retry loop can act on.
func MongoDialer(cfg appconfig.MongoConfig) Dialer {
	return func(ctx context.Context) (Conn, error) {
		opts := options.Client().
			ApplyURI(cfg.URI).
			SetServerSelectionTimeout(cfg.SelectionTimeout).
			SetSocketTimeout(cfg.SocketTimeout).
			SetServerMonitor(serverMonitor())

		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			return nil, err
		}

		pctx, cancel := context.WithTimeout(ctx, cfg.SelectionTimeout)
		defer cancel()
		if err := client.Ping(pctx, nil); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}

		return &mongoConn{
			client: client,
			store:  NewStore(client.Database(cfg.Database)),
		}, nil
	}
}

// serverMonitor logs driver-level connection errors. These are informational
// only: a heartbeat failure here does not trigger a reconnect, that decision
// belongs to the Manager's own watch loop.
func serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			log.Warn().Err(e.Failure).Str("connection_id", e.ConnectionID).Msg("Store heartbeat failed")
		},
	}
}
