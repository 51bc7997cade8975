package cmd

import (
	"cdn77cli/internal/models"
	"cdn77cli/pkg/utils"
	"fmt"
	"github.com/spf13/cobra"
)

var statisticsCmd = &cobra.Command{
	Use:   "statistics",
	Short: "Query traffic, bandwidth, cost and cache statistics",
}

var statsGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get statistics of one type without grouping",
	Long: `Get statistics of one type over a time range, without grouping.
The API response schema differs per stat type and is printed as
pretty-printed JSON.

Valid stat types: bandwidth, costs, headers, headers-detail, hit-miss,
hit-miss-detail, traffic, traffic-detail`,
	Example: `  # Traffic over one day
  cdn77cli statistics get --type traffic --from "2023-05-15 00:00" --to "2023-05-16 00:00"

  # Daily buckets, two resources only
  cdn77cli statistics get --type traffic --from "2023-05-01 00:00" --to "2023-06-01 00:00" --resource-ids "1234567,7654321" --aggregation P1D`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsGet(cmd)
	},
}

var statsByResourceCmd = &cobra.Command{
	Use:   "by-resource",
	Short: "Get statistics of one type grouped by CDN resource",
	Example: `  # Hit/miss ratio per resource
  cdn77cli statistics by-resource --type hit-miss --from "2023-05-15 00:00" --to "2023-05-16 00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsByResource(cmd)
	},
}

var statsByDataCenterCmd = &cobra.Command{
	Use:   "by-datacenter",
	Short: "Get statistics of one type grouped by datacenter",
	Example: `  # Traffic per datacenter
  cdn77cli statistics by-datacenter --type traffic --from "2023-05-15 00:00" --to "2023-05-16 00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsByDataCenter(cmd)
	},
}

var statsSumByResourceCmd = &cobra.Command{
	Use:   "sum-by-resource",
	Short: "Sum a statistic per CDN resource",
	Long: `Sum a statistic over the time range, broken down per CDN resource.

Valid stat types: headers, traffic, hit-miss, costs`,
	Example: `  # Total traffic per resource
  cdn77cli statistics sum-by-resource --type traffic --from "2023-05-01 00:00" --to "2023-06-01 00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsSumByResource(cmd)
	},
}

var statsSumByDataCenterCmd = &cobra.Command{
	Use:   "sum-by-datacenter",
	Short: "Sum a statistic per datacenter",
	Long: `Sum a statistic over the time range, broken down per datacenter.

Valid stat types: headers, traffic, hit-miss, costs`,
	Example: `  # Total traffic per datacenter
  cdn77cli statistics sum-by-datacenter --type traffic --from "2023-05-01 00:00" --to "2023-06-01 00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsSumByDataCenter(cmd)
	},
}

var statsSumCmd = &cobra.Command{
	Use:   "sum",
	Short: "Sum a statistic over the whole account",
	Long: `Sum a statistic over the time range across the whole account.

Valid stat types: headers, traffic, hit-miss, costs`,
	Example: `  # Total traffic of the account
  cdn77cli statistics sum --type traffic --from "2023-05-01 00:00" --to "2023-06-01 00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsSum(cmd)
	},
}

var statsBandwidthPercentileCmd = &cobra.Command{
	Use:   "bandwidth-percentile",
	Short: "Get the 95th percentile of bandwidth usage",
	Example: `  # Billing-relevant bandwidth percentile for last month
  cdn77cli statistics bandwidth-percentile --from "2023-05-01 00:00" --to "2023-06-01 00:00"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStatsBandwidthPercentile(cmd)
	},
}

// statsParams are the parsed range and filter values shared by every
// statistics subcommand.
type statsParams struct {
	from        int64
	to          int64
	cdnIDs      []models.ResourceID
	locationIDs []string
}

func parseStatsParams(cmd *cobra.Command) (statsParams, error) {
	var params statsParams

	fromValue, _ := cmd.Flags().GetString("from")
	from, err := utils.ParseDateTime(fromValue, "Start date/time is not in a correct format")
	if err != nil {
		return params, err
	}
	toValue, _ := cmd.Flags().GetString("to")
	to, err := utils.ParseDateTime(toValue, "End date/time is not in a correct format")
	if err != nil {
		return params, err
	}

	resourceIDsValue, _ := cmd.Flags().GetString("resource-ids")
	cdnIDs, err := utils.ParseResourceIDs(resourceIDsValue)
	if err != nil {
		return params, err
	}
	locationIDsValue, _ := cmd.Flags().GetString("location-ids")

	params.from = from.Unix()
	params.to = to.Unix()
	params.cdnIDs = cdnIDs
	params.locationIDs = utils.ParseLocationIDs(locationIDsValue)
	return params, nil
}

func (p statsParams) request(aggregation string) models.StatsRequest {
	return models.StatsRequest{
		From:        p.from,
		To:          p.to,
		CDNIDs:      p.cdnIDs,
		LocationIDs: p.locationIDs,
		Aggregation: aggregation,
	}
}

func (p statsParams) sumRequest() models.SumStatsRequest {
	return models.SumStatsRequest{
		From:        p.from,
		To:          p.to,
		CDNIDs:      p.cdnIDs,
		LocationIDs: p.locationIDs,
	}
}

func statTypeFlag(cmd *cobra.Command) (models.StatType, error) {
	value, _ := cmd.Flags().GetString("type")
	return models.ParseStatType(value)
}

// sumStatTypeFlag validates the sum stat type before anything else is
// parsed, so a bad type never reaches the network.
func sumStatTypeFlag(cmd *cobra.Command) (string, error) {
	value, _ := cmd.Flags().GetString("type")
	if err := models.ValidateSumStatType(value); err != nil {
		return "", err
	}
	return value, nil
}

func runStatsGet(cmd *cobra.Command) error {
	statType, err := statTypeFlag(cmd)
	if err != nil {
		return err
	}
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}
	aggregation, _ := cmd.Flags().GetString("aggregation")

	ctx, cancel := commandContext()
	defer cancel()

	payload, err := apiClient().Stats(ctx, statType, params.request(aggregation))
	if err != nil {
		return err
	}
	return utils.PrintJSON(payload)
}

func runStatsByResource(cmd *cobra.Command) error {
	statType, err := statTypeFlag(cmd)
	if err != nil {
		return err
	}
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}
	aggregation, _ := cmd.Flags().GetString("aggregation")

	ctx, cancel := commandContext()
	defer cancel()

	payload, err := apiClient().StatsByResource(ctx, statType, params.request(aggregation))
	if err != nil {
		return err
	}
	return utils.PrintJSON(payload)
}

func runStatsByDataCenter(cmd *cobra.Command) error {
	statType, err := statTypeFlag(cmd)
	if err != nil {
		return err
	}
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}
	aggregation, _ := cmd.Flags().GetString("aggregation")

	ctx, cancel := commandContext()
	defer cancel()

	payload, err := apiClient().StatsByDataCenter(ctx, statType, params.request(aggregation))
	if err != nil {
		return err
	}
	return utils.PrintJSON(payload)
}

func runStatsSumByResource(cmd *cobra.Command) error {
	statType, err := sumStatTypeFlag(cmd)
	if err != nil {
		return err
	}
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	payload, err := apiClient().StatsSumByResource(ctx, statType, params.sumRequest())
	if err != nil {
		return err
	}
	return utils.PrintJSON(payload)
}

func runStatsSumByDataCenter(cmd *cobra.Command) error {
	statType, err := sumStatTypeFlag(cmd)
	if err != nil {
		return err
	}
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	payload, err := apiClient().StatsSumByDataCenter(ctx, statType, params.sumRequest())
	if err != nil {
		return err
	}
	return utils.PrintJSON(payload)
}

func runStatsSum(cmd *cobra.Command) error {
	statType, err := sumStatTypeFlag(cmd)
	if err != nil {
		return err
	}
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	sum, err := apiClient().StatsSum(ctx, statType, params.sumRequest())
	if err != nil {
		return err
	}

	fmt.Printf("Sum: %v\n", sum.Sum)
	return nil
}

func runStatsBandwidthPercentile(cmd *cobra.Command) error {
	params, err := parseStatsParams(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	percentile, err := apiClient().BandwidthPercentile(ctx, params.sumRequest())
	if err != nil {
		return err
	}

	fmt.Printf("Percentile: %d\n", percentile.Percentile)
	return nil
}

// addStatsRangeFlags registers the range and filter flags every statistics
// subcommand shares. The flags carry no shorthands: -t would be ambiguous
// between --to and --type.
func addStatsRangeFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", `Start of the time range in UTC, format "YYYY-MM-DD HH:MM"`)
	cmd.Flags().String("to", "", `End of the time range in UTC, format "YYYY-MM-DD HH:MM"`)
	cmd.Flags().String("resource-ids", "", "Restrict to a comma separated list of CDN resource IDs")
	cmd.Flags().String("location-ids", "", "Restrict to a comma separated list of location IDs")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
}

func init() {
	statisticsCmd.AddCommand(statsGetCmd)
	statisticsCmd.AddCommand(statsByResourceCmd)
	statisticsCmd.AddCommand(statsByDataCenterCmd)
	statisticsCmd.AddCommand(statsSumByResourceCmd)
	statisticsCmd.AddCommand(statsSumByDataCenterCmd)
	statisticsCmd.AddCommand(statsSumCmd)
	statisticsCmd.AddCommand(statsBandwidthPercentileCmd)

	for _, cmd := range []*cobra.Command{statsGetCmd, statsByResourceCmd, statsByDataCenterCmd} {
		cmd.Flags().String("type", "", "The stat type to query")
		cmd.Flags().String("aggregation", "", "Optional aggregation interval passed through to the API")
		addStatsRangeFlags(cmd)
		_ = cmd.MarkFlagRequired("type")
	}

	for _, cmd := range []*cobra.Command{statsSumByResourceCmd, statsSumByDataCenterCmd, statsSumCmd} {
		cmd.Flags().String("type", "", "The stat type to sum: headers, traffic, hit-miss or costs")
		addStatsRangeFlags(cmd)
		_ = cmd.MarkFlagRequired("type")
	}

	addStatsRangeFlags(statsBandwidthPercentileCmd)
}
