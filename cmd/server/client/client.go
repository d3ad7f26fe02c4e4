// Package client provides commands that call a running perception server
package client

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-perception/internal/errors"
	"github.com/KirkDiggler/rpg-perception/internal/handlers/perception/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	worldID    string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running perception server",
	Long:  `Client commands upload worlds and ask a running perception server what characters can see.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&worldID, "world", "", "World ID")

	// World storage
	ClientCmd.AddCommand(loadWorldCmd)
	ClientCmd.AddCommand(getWorldCmd)
	ClientCmd.AddCommand(listWorldsCmd)
	ClientCmd.AddCommand(deleteWorldCmd)

	// Perception
	ClientCmd.AddCommand(lookCmd)
	ClientCmd.AddCommand(narrateCmd)
}

// createClient opens a connection and returns a perception client
func createClient() (v1alpha1.PerceptionServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPerceptionServiceClient(conn), cleanup, nil
}

func requireWorld() error {
	if worldID == "" {
		return fmt.Errorf("--world is required")
	}
	return nil
}

// describeError prints field level validation errors carried by the status
func describeError(action string, err error) error {
	fields, ok := errors.GetMeta(errors.FromGRPCError(err))["validation_errors"].(map[string]interface{})
	if ok {
		for field, msgs := range fields {
			fmt.Fprintf(os.Stderr, "  %s: %v\n", field, msgs)
		}
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

func printJSON(s *structpb.Struct) error {
	raw, err := json.MarshalIndent(s.AsMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}
