package cmd

import (
	"cdn77cli/internal/models"
	"fmt"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "List and inspect CDN resources",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all CDN resources",
	Example: `  # List resources
  cdn77cli resources list`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResourcesList(cmd)
	},
}

var resourcesDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Show a single CDN resource",
	Example: `  # Show one resource
  cdn77cli resources detail --resource-id 1234567`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResourcesDetail(cmd)
	},
}

func runResourcesList(cmd *cobra.Command) error {
	ctx, cancel := commandContext()
	defer cancel()

	resources, err := apiClient().Resources(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d resources\n", len(resources))
	for i, resource := range resources {
		fmt.Printf("\nResource #%d\n", i)
		printResource(&resource)
	}
	return nil
}

func runResourcesDetail(cmd *cobra.Command) error {
	resourceID, err := resourceIDFlag(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	resource, err := apiClient().Resource(ctx, resourceID)
	if err != nil {
		return err
	}

	printResource(resource)
	return nil
}

func printResource(resource *models.Resource) {
	fmt.Printf("ID=%d\nLabel=%s\nType=%s\nCname=%s\nCreationTime=%s\nURL=%s\n",
		resource.ID, resource.Label, resource.Type, resource.Cname, resource.CreationTime, resource.URL)
}

func init() {
	resourcesCmd.AddCommand(resourcesListCmd)
	resourcesCmd.AddCommand(resourcesDetailCmd)

	resourcesDetailCmd.Flags().StringP("resource-id", "r", "", "The ID of the resource to show")
	_ = resourcesDetailCmd.MarkFlagRequired("resource-id")
}
