package client

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-perception/internal/handlers/perception/v1alpha1"
)

var (
	observerID  string
	template    string
	attackerID  string
	defendantID string
)

var lookCmd = &cobra.Command{
	Use:   "look",
	Short: "Describe what a character sees",
	RunE:  runLook,
}

var narrateCmd = &cobra.Command{
	Use:   "narrate",
	Short: "Narrate an attack to everyone watching",
	Long: `Render a combat template such as "%a [swings] at %d." for the attacker,
the defendant and every bystander who can see the attacker.`,
	RunE: runNarrate,
}

func init() {
	lookCmd.Flags().StringVar(&observerID, "observer", "", "Observing character ID (required)")
	_ = lookCmd.MarkFlagRequired("observer") // nolint:errcheck // safe to ignore in init

	narrateCmd.Flags().StringVar(&template, "template", "", "Combat template (required)")
	narrateCmd.Flags().StringVar(&attackerID, "attacker", "", "Attacker character ID (required)")
	narrateCmd.Flags().StringVar(&defendantID, "defendant", "", "Defendant character ID (required)")
	_ = narrateCmd.MarkFlagRequired("template")  // nolint:errcheck // safe to ignore in init
	_ = narrateCmd.MarkFlagRequired("attacker")  // nolint:errcheck // safe to ignore in init
	_ = narrateCmd.MarkFlagRequired("defendant") // nolint:errcheck // safe to ignore in init
}

func runLook(_ *cobra.Command, _ []string) error {
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

	req, err := v1alpha1.EncodeStruct(v1alpha1.DescribeRoomRequest{WorldID: worldID, ObserverID: observerID})
	if err != nil {
		return err
	}

	resp, err := client.DescribeRoom(ctx, req)
	if err != nil {
		return describeError("describe room", err)
	}

	var out v1alpha1.DescribeRoomResponse
	if err := v1alpha1.DecodeStruct(resp, &out); err != nil {
		return err
	}
	if out.Text == "" {
		fmt.Println("You see nothing of note.")
	} else {
		fmt.Println(out.Text)
	}
	fmt.Printf("\n(%d people in view, revision %d)\n", out.Tally.Total, out.Revision)
	return nil
}

func runNarrate(_ *cobra.Command, _ []string) error {
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

	req, err := v1alpha1.EncodeStruct(v1alpha1.NarrateActionRequest{
		WorldID:     worldID,
		Template:    template,
		AttackerID:  attackerID,
		DefendantID: defendantID,
	})
	if err != nil {
		return err
	}

	resp, err := client.NarrateAction(ctx, req)
	if err != nil {
		return describeError("narrate action", err)
	}

	var out v1alpha1.NarrateActionResponse
	if err := v1alpha1.DecodeStruct(resp, &out); err != nil {
		return err
	}

	fmt.Printf("%-12s %s\n", attackerID+":", out.Attacker)
	fmt.Printf("%-12s %s\n", defendantID+":", out.Defendant)

	ids := make([]string, 0, len(out.Bystanders))
	for id := range out.Bystanders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Printf("%-12s %s\n", id+":", out.Bystanders[id])
	}
	return nil
}
