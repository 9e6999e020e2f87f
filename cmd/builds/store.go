package main

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/remnantforge/builds-api/internal/builder"
	"github.com/remnantforge/builds-api/internal/catalog"
	"github.com/remnantforge/builds-api/internal/entities/builds"
	buildservice "github.com/remnantforge/builds-api/internal/services/build"
)

var (
	createName  string
	createQuery string
	voteRemove  bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new build, optionally seeded from a share link",
	RunE:  runCreate,
}

var getCmd = &cobra.Command{
	Use:   "get <build-id>",
	Short: "Print a stored build",
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var deleteCmd = &cobra.Command{
	Use:   "delete <build-id>",
	Short: "Delete a build you created",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your builds, newest first",
	RunE:  runList,
}

var voteCmd = &cobra.Command{
	Use:   "vote <build-id>",
	Short: "Upvote a build, or withdraw your vote with --remove",
	Args:  cobra.ExactArgs(1),
	RunE:  runVote,
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "build name")
	createCmd.Flags().StringVar(&createQuery, "from-query", "", "share link query string to seed the slots from")
	voteCmd.Flags().BoolVar(&voteRemove, "remove", false, "withdraw the vote instead")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}

	var state *builds.BuildState
	if createQuery != "" {
		values, err := url.ParseQuery(createQuery)
		if err != nil {
			return fmt.Errorf("failed to parse query string: %w", err)
		}
		state = builder.New(catalog.Default()).DecodeFromQueryString(values)
	}
	if createName != "" {
		if state == nil {
			state = builds.NewBuildState()
		}
		state.Name = createName
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.CreateBuild(cmd.Context(), &buildservice.CreateBuildInput{
		UserID: userID,
		State:  state,
	})
	if err != nil {
		return err
	}

	cmd.Println(out.Record.ID)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.GetBuild(cmd.Context(), &buildservice.GetBuildInput{BuildID: args[0]})
	if err != nil {
		return err
	}

	printState(cmd, out.State)
	cmd.Printf("upvotes: %d", out.Record.TotalUpvotes)
	if out.IsPopular {
		cmd.Printf(" (popular)")
	}
	cmd.Println()
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	if _, err := svc.DeleteBuild(cmd.Context(), &buildservice.DeleteBuildInput{
		BuildID: args[0],
		UserID:  userID,
	}); err != nil {
		return err
	}

	cmd.Println("deleted")
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	out, err := svc.ListBuilds(cmd.Context(), &buildservice.ListBuildsInput{UserID: userID})
	if err != nil {
		return err
	}

	for _, rec := range out.Records {
		data, err := json.Marshal(map[string]any{
			"id":       rec.ID,
			"name":     rec.Name,
			"upvotes":  rec.TotalUpvotes,
			"isPublic": rec.IsPublic,
		})
		if err != nil {
			return err
		}
		cmd.Println(string(data))
	}
	return nil
}

func runVote(cmd *cobra.Command, args []string) error {
	if err := requireUser(); err != nil {
		return err
	}

	svc, cleanup, err := newService()
	if err != nil {
		return err
	}
	defer cleanup()

	if voteRemove {
		out, err := svc.RemoveUpvote(cmd.Context(), &buildservice.RemoveUpvoteInput{
			BuildID: args[0],
			UserID:  userID,
		})
		if err != nil {
			return err
		}
		cmd.Printf("upvotes: %d\n", out.TotalUpvotes)
		return nil
	}

	out, err := svc.UpvoteBuild(cmd.Context(), &buildservice.UpvoteBuildInput{
		BuildID: args[0],
		UserID:  userID,
	})
	if err != nil {
		return err
	}
	cmd.Printf("upvotes: %d\n", out.TotalUpvotes)
	return nil
}
