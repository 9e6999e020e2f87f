package main

import (
	"strconv"

	"github.com/spf13/cobra"

	buildservice "github.com/remnantforge/builds-api/internal/services/build"
)

var loadoutCmd = &cobra.Command{
	Use:   "loadout",
	Short: "Manage your pinned loadout slots",
}

var loadoutSetCmd = &cobra.Command{
	Use:   "set <slot> <build-id>",
	Short: "Pin a build into a loadout slot",
	Args:  cobra.ExactArgs(2),
	RunE:  runLoadoutSet,
}

var loadoutClearCmd = &cobra.Command{
	Use:   "clear <slot>",
	Short: "Unpin a loadout slot",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoadoutClear,
}

var loadoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pinned loadout slots",
	RunE:  runLoadoutList,
}

func init() {
	loadoutCmd.AddCommand(loadoutSetCmd)
	loadoutCmd.AddCommand(loadoutClearCmd)
	loadoutCmd.AddCommand(loadoutListCmd)
}

func parseSlot(arg string) (int32, error) {
	slot, err := strconv.ParseInt(arg, 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(slot), nil
}

func runLoadoutSet(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.SetLoadoutSlot(cmd.Context(), &buildservice.SetLoadoutSlotInput{
		UserID:  userID,
		Slot:    slot,
		BuildID: args[1],
	})
	if err != nil {
		return err
	}

	if out.Previous != "" {
		cmd.Printf("replaced %s\n", out.Previous)
	}
	return nil
}

func runLoadoutClear(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}
	slot, err := parseSlot(args[0])
	if err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ClearLoadoutSlot(cmd.Context(), &buildservice.ClearLoadoutSlotInput{
		UserID: userID,
		Slot:   slot,
	})
	if err != nil {
		return err
	}

	if !out.Cleared {
		cmd.Println("slot was already empty")
	}
	return nil
}

func runLoadoutList(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListLoadouts(cmd.Context(), &buildservice.ListLoadoutsInput{UserID: userID})
	if err != nil {
		return err
	}

	for _, e := range out.Entries {
		cmd.Printf("%d: %s\n", e.Slot, e.BuildID)
	}
	return nil
}
