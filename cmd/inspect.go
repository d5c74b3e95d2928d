package cmd

import (
	"fmt"
	"strconv"

	"github.com/agentic-research/topicstore/api"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

var (
	inspectAssociation bool
	inspectOccurrence  bool
	inspectAttribute   bool
)

func init() {
	inspectCmd.Flags().BoolVar(&inspectAssociation, "association", false, "Treat the identifier as an association")
	inspectCmd.Flags().BoolVar(&inspectOccurrence, "occurrence", false, "Treat the identifier as an occurrence")
	inspectCmd.Flags().BoolVar(&inspectAttribute, "attribute", false, "Treat the identifier as an attribute")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [map-id] [identifier]",
	Short: "Dump one topic-map entity as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		mapID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid map id %q: %w", args[0], err)
		}
		identifier := args[1]

		s, _, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }() // safe to ignore

		ctx := cmd.Context()
		var entity any
		switch {
		case inspectAssociation:
			entity, err = s.GetAssociation(ctx, mapID, identifier, api.AssociationOptions{
				ResolveAttributes:  true,
				ResolveOccurrences: true,
			})
		case inspectOccurrence:
			entity, err = s.GetOccurrence(ctx, mapID, identifier, api.OccurrenceOptions{
				InlineResourceData: true,
				ResolveAttributes:  true,
			})
		case inspectAttribute:
			entity, err = s.GetAttribute(ctx, mapID, identifier)
		default:
			entity, err = s.GetTopic(ctx, mapID, identifier, api.DefaultTopicOptions())
		}
		if err != nil {
			return err
		}
		if isNil(entity) {
			return fmt.Errorf("no such entity %q in map %d", identifier, mapID)
		}

		fmt.Println(oj.JSON(entity, 2))
		return nil
	},
}

// isNil reports whether the any holds a typed nil pointer from one of the
// store getters.
func isNil(v any) bool {
	switch e := v.(type) {
	case *api.Topic:
		return e == nil
	case *api.Association:
		return e == nil
	case *api.Occurrence:
		return e == nil
	case *api.Attribute:
		return e == nil
	}
	return v == nil
}
