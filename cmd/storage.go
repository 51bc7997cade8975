package cmd

import (
	"cdn77cli/internal/cdnclient"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
)

var storageCmd = &cobra.Command{
	Use:   "storage",
	Short: "Information about storage locations",
}

var storageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the storage locations available to the account",
	Example: `  # List storage locations
  cdn77cli storage list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorageList(cmd)
	},
}

var storageDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Show a single storage location",
	Example: `  # Show one location
  cdn77cli storage detail --storage-id push-l-1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStorageDetail(cmd)
	},
}

func runStorageList(cmd *cobra.Command) error {
	ctx, cancel := commandContext()
	defer cancel()

	locations, err := apiClient().StorageLocations(ctx)
	if errors.Is(err, cdnclient.ErrPlanNotActive) {
		fmt.Println("You do not have a PAYG tariff nor Monthly Plan active")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Found %d storage locations\n", len(locations))
	for i, location := range locations {
		fmt.Printf("\nLocation #%d\nID=%s\nLocation=%s\n", i, location.ID, location.Location)
	}
	return nil
}

func runStorageDetail(cmd *cobra.Command) error {
	storageID, _ := cmd.Flags().GetString("storage-id")

	ctx, cancel := commandContext()
	defer cancel()

	location, err := apiClient().StorageLocation(ctx, storageID)
	if errors.Is(err, cdnclient.ErrPlanNotActive) {
		fmt.Println("You do not have a PAYG tariff nor Monthly Plan active")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("ID=%s\nLocation=%s\n", location.ID, location.Location)
	return nil
}

func init() {
	storageCmd.AddCommand(storageListCmd)
	storageCmd.AddCommand(storageDetailCmd)

	storageDetailCmd.Flags().String("storage-id", "", "The ID of the storage location to show")
	_ = storageDetailCmd.MarkFlagRequired("storage-id")
}
