package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// Config holds what the Firebase app needs at startup: the service-account
// credential file and the Realtime Database endpoint URL.
type Config struct {
	CredentialsFile string
	DatabaseURL     string
}

// Client wraps the Firebase app's Firestore and Realtime Database handles to
// provide domain-specific operations. Both handles are safe for concurrent
// use and live for the process lifetime.
type Client struct {
	fs   *firestore.Client
	rtdb *db.Client
}

// NewClient creates the Firebase app from the credential file and acquires
// the Firestore and Realtime Database clients.
// It checks for FIRESTORE_EMULATOR_HOST to verify if running against an emulator.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	// Support Emulator: The official clients detect the *_EMULATOR_HOST
	// variables automatically. We log it here for visibility during development.
	if emulatorHost := os.Getenv("FIRESTORE_EMULATOR_HOST"); emulatorHost != "" {
		fmt.Printf("Initializing Firestore Client against Emulator at %s\n", emulatorHost)
	}

	app, err := fb.NewApp(ctx, &fb.Config{DatabaseURL: cfg.DatabaseURL}, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to create firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	rtdb, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime database client: %w", err)
	}

	return &Client{fs: fs, rtdb: rtdb}, nil
}

// Close closes the underlying Firestore client. The Realtime Database client
// holds no connection of its own.
func (c *Client) Close() error {
	return c.fs.Close()
}
