package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-perception/internal/handlers/perception/v1alpha1"
)

var worldFile string

var loadWorldCmd = &cobra.Command{
	Use:   "load-world",
	Short: "Upload a world file",
	Long:  `Read a YAML world file and store it on the server, replacing any world with the same ID.`,
	RunE:  runLoadWorld,
}

var getWorldCmd = &cobra.Command{
	Use:   "get-world",
	Short: "Print a stored world",
	RunE:  runGetWorld,
}

var listWorldsCmd = &cobra.Command{
	Use:   "list-worlds",
	Short: "List stored worlds",
	RunE:  runListWorlds,
}

var deleteWorldCmd = &cobra.Command{
	Use:   "delete-world",
	Short: "Delete a stored world",
	RunE:  runDeleteWorld,
}

func init() {
	loadWorldCmd.Flags().StringVarP(&worldFile, "file", "f", "", "World YAML file (required)")
	_ = loadWorldCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init
}

func runLoadWorld(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(worldFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", worldFile, err)
	}

	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", worldFile, err)
	}

	req, err := v1alpha1.EncodeStruct(map[string]interface{}{"world": doc})
	if err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SaveWorld(ctx, req)
	if err != nil {
		return describeError("load world", err)
	}

	var out v1alpha1.SaveWorldResponse
	if err := v1alpha1.DecodeStruct(resp, &out); err != nil {
		return err
	}
	fmt.Printf("Stored world %s at revision %d\n", out.WorldID, out.Revision)
	return nil
}

func runGetWorld(_ *cobra.Command, _ []string) error {
	if err := requireWorld(); err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.EncodeStruct(v1alpha1.WorldRequest{WorldID: worldID})
	if err != nil {
		return err
	}

	resp, err := client.GetWorld(ctx, req)
	if err != nil {
		return describeError("get world", err)
	}
	return printJSON(resp)
}

func runListWorlds(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListWorlds(ctx, &structpb.Struct{})
	if err != nil {
		return describeError("list worlds", err)
	}

	var out v1alpha1.ListWorldsResponse
	if err := v1alpha1.DecodeStruct(resp, &out); err != nil {
		return err
	}
	if len(out.WorldIDs) == 0 {
		fmt.Println("No worlds stored")
		return nil
	}
	for _, id := range out.WorldIDs {
		fmt.Println(id)
	}
	return nil
}

func runDeleteWorld(_ *cobra.Command, _ []string) error {
	if err := requireWorld(); err != nil {
		return err
	}

	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req, err := v1alpha1.EncodeStruct(v1alpha1.WorldRequest{WorldID: worldID})
	if err != nil {
		return err
	}

	if _, err := client.DeleteWorld(ctx, req); err != nil {
		return describeError("delete world", err)
	}
	fmt.Printf("Deleted world %s\n", worldID)
	return nil
}
