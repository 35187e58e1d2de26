package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"hotelmate/models"
	"hotelmate/services/rategrid"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func gridCmd() *cobra.Command {
	var plansPath string
	var availabilityPath string
	var filters rategrid.Filters

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Merge rate plan and availability JSON files into a rate grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			if plansPath == "" || availabilityPath == "" {
				return fmt.Errorf("--plans and --availability are required")
			}

			var plans []models.RatePlan
			if err := readJSON(plansPath, &plans); err != nil {
				return fmt.Errorf("read plans: %w", err)
			}
			var availability []rategrid.AvailabilityRecord
			if err := readJSON(availabilityPath, &availability); err != nil {
				return fmt.Errorf("read availability: %w", err)
			}

			rooms := filters.Apply(rategrid.MergeRooms(availability, rategrid.GroupRatePlans(plans)))
			if outputCompact {
				return printCompact(cmd.OutOrStdout(), rooms)
			}

			data, err := json.MarshalIndent(rooms, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&plansPath, "plans", "", "Path to rate plans JSON")
	cmd.Flags().StringVar(&availabilityPath, "availability", "", "Path to availability JSON")
	cmd.Flags().StringVar(&filters.RoomType, "room-type", "", "Room type filter")
	cmd.Flags().StringVar(&filters.MealPlan, "meal-plan", "", "Meal plan label filter")
	cmd.Flags().StringVar(&filters.RateCode, "rate-code", "", "Rate code id or name filter")
	cmd.Flags().StringVar(&filters.Currency, "currency", "", "Currency filter")
	return cmd
}

func readJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, target)
}

func printCompact(w io.Writer, rooms []rategrid.MergedRoom) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tPLAN\tLABEL\tCURRENCY\tDATES")
	for _, room := range rooms {
		for _, key := range room.PlanOrder {
			meta := room.PlanMetaMap[key]
			dates := make([]string, 0, len(room.PlansByPlan[key]))
			for d := range room.PlansByPlan[key] {
				dates = append(dates, string(d))
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", room.RoomType, key, meta.Label, meta.CurrencyCode, strings.Join(sortedStrings(dates), ","))
		}
	}
	return tw.Flush()
}

func sortedStrings(s []string) []string {
	sort.Strings(s)
	return s
}
