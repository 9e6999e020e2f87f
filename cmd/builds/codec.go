package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	"github.com/remnantforge/builds-api/internal/entities/items"
	buildservice "github.com/remnantforge/builds-api/internal/services/build"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <query-string>",
	Short: "Decode a share link query string into a readable build",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

var encodeCmd = &cobra.Command{
	Use:   "encode <build-id>",
	Short: "Print a stored build as a share link query string",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func runDecode(cmd *cobra.Command, args []string) error {
	values, err := url.ParseQuery(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse query string: %w", err)
	}

	engine := builder.New(catalog.Default())
	state := engine.DecodeFromQueryString(values)

	printState(cmd, state)
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.GetBuild(cmd.Context(), &buildservice.GetBuildInput{BuildID: args[0]})
	if err != nil {
		return err
	}

	engine := builder.New(catalog.Default())
	cmd.Println(engine.EncodeToQueryString(out.State).Encode())
	return nil
}

func printState(cmd *cobra.Command, state *builds.BuildState) {
	cmd.Printf("name: %s\n", state.Name)
	if state.Description != "" {
		cmd.Printf("description: %s\n", state.Description)
	}

	printSingle(cmd, "helm", state.Items.Helm)
	printSingle(cmd, "torso", state.Items.Torso)
	printSingle(cmd, "legs", state.Items.Legs)
	printSingle(cmd, "gloves", state.Items.Gloves)
	printSingle(cmd, "relic", state.Items.Relic)
	printSingle(cmd, "amulet", state.Items.Amulet)

	printIndexed(cmd, "archetype", state.Items.Archetype)
	printIndexed(cmd, "skill", state.Items.Skill)
	printIndexed(cmd, "weapon", state.Items.Weapon)
	printIndexed(cmd, "mod", state.Items.Mod)
	printIndexed(cmd, "mutator", state.Items.Mutator)
	printIndexed(cmd, "ring", state.Items.Ring)
	printIndexed(cmd, "fragment", state.Items.RelicFragment)
	printIndexed(cmd, "concoction", state.Items.Concoction)
	printIndexed(cmd, "consumable", state.Items.Consumable)

	for _, tl := range state.Items.Trait {
		cmd.Printf("trait: %s %d\n", tl.Item.Name, tl.Amount)
	}
}

func printSingle(cmd *cobra.Command, label string, it *items.Item) {
	if it == nil {
		return
	}
	cmd.Printf("%s: %s\n", label, it.Name)
}

func printIndexed(cmd *cobra.Command, label string, slot []*items.Item) {
	for i, it := range slot {
		if it == nil {
			continue
		}
		cmd.Printf("%s[%d]: %s\n", label, i, it.Name)
	}
}
