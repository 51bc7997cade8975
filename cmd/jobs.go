package cmd

import (
	"cdn77cli/internal/models"
	"cdn77cli/pkg/utils"
	"fmt"
	"github.com/spf13/cobra"
	"strings"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Submit and inspect purge and prefetch jobs",
}

var jobsPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Purge a list of files/paths from a resource",
	Long: `Purge a list of files/paths from a CDN resource.
Paths may contain wildcards (*).`,
	Example: `  # Purge two paths
  cdn77cli jobs purge --resource-id 1234567 --paths "/images/logo.png,/css/*"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobsPurge(cmd)
	},
}

var jobsPurgeAllCmd = &cobra.Command{
	Use:   "purge-all",
	Short: "Purge all files from a specific CDN resource",
	Example: `  # Wipe everything cached for a resource
  cdn77cli jobs purge-all --resource-id 1234567`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobsPurgeAll(cmd)
	},
}

var jobsPrefetchCmd = &cobra.Command{
	Use:   "prefetch",
	Short: "Prefetch a list of files/paths into a resource",
	Long: `Prefetch a list of files/paths into a CDN resource so they are cached
before the first visitor asks for them. An alternative upstream host can
be given for resources whose origin does not serve the files yet.`,
	Example: `  # Warm up two files
  cdn77cli jobs prefetch --resource-id 1234567 --paths "/videos/intro.mp4,/videos/outro.mp4"

  # Pull from a different origin host
  cdn77cli jobs prefetch --resource-id 1234567 --paths "/videos/intro.mp4" --upstream-host origin.example.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobsPrefetch(cmd)
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List past jobs of one type for a resource",
	Example: `  # List purge-all jobs
  cdn77cli jobs list --resource-id 1234567 --type purge-all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobsList(cmd)
	},
}

var jobsDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Show one job including its full path list",
	Example: `  # Inspect a single job
  cdn77cli jobs detail --resource-id 1234567 --job-id 0462fd60-4b8a-4552-93e9-32cacc11e607`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runJobsDetail(cmd)
	},
}

func runJobsPurge(cmd *cobra.Command) error {
	resourceID, err := resourceIDFlag(cmd)
	if err != nil {
		return err
	}
	pathsValue, _ := cmd.Flags().GetString("paths")
	paths, err := utils.ParsePaths(pathsValue)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	job, err := apiClient().PurgePaths(ctx, resourceID, paths)
	if err != nil {
		return err
	}

	printJob(job)
	return nil
}

func runJobsPurgeAll(cmd *cobra.Command) error {
	resourceID, err := resourceIDFlag(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	job, err := apiClient().PurgeAll(ctx, resourceID)
	if err != nil {
		return err
	}

	printJob(job)
	return nil
}

func runJobsPrefetch(cmd *cobra.Command) error {
	resourceID, err := resourceIDFlag(cmd)
	if err != nil {
		return err
	}
	pathsValue, _ := cmd.Flags().GetString("paths")
	paths, err := utils.ParsePaths(pathsValue)
	if err != nil {
		return err
	}
	upstreamHost, _ := cmd.Flags().GetString("upstream-host")

	ctx, cancel := commandContext()
	defer cancel()

	job, err := apiClient().Prefetch(ctx, resourceID, paths, upstreamHost)
	if err != nil {
		return err
	}

	printJob(job)
	return nil
}

func runJobsList(cmd *cobra.Command) error {
	resourceID, err := resourceIDFlag(cmd)
	if err != nil {
		return err
	}
	typeValue, _ := cmd.Flags().GetString("type")
	jobType, err := models.ParseJobType(typeValue)
	if err != nil {
		return err
	}

	ctx, cancel := commandContext()
	defer cancel()

	jobs, err := apiClient().JobLog(ctx, resourceID, jobType)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d jobs\n", len(jobs))
	for i, job := range jobs {
		fmt.Printf("\nJob #%d\n", i)
		printJob(&job)
	}
	return nil
}

func runJobsDetail(cmd *cobra.Command) error {
	resourceID, err := resourceIDFlag(cmd)
	if err != nil {
		return err
	}
	jobID, _ := cmd.Flags().GetString("job-id")

	ctx, cancel := commandContext()
	defer cancel()

	job, err := apiClient().JobDetail(ctx, resourceID, jobID)
	if err != nil {
		return err
	}

	printJob(job)
	return nil
}

func resourceIDFlag(cmd *cobra.Command) (models.ResourceID, error) {
	value, _ := cmd.Flags().GetString("resource-id")
	return utils.ParseResourceID(value)
}

func printJob(job *models.Job) {
	fmt.Printf("ID=%s\nType=%s\nState=%s\nQueuedAt=%s\nDoneAt=%s\n",
		job.ID, job.Type, job.State, job.QueuedAt, job.DoneAt)
	if job.PathsCount > 0 {
		fmt.Printf("PathsCount=%d\n", job.PathsCount)
	}
	if len(job.Paths) > 0 {
		fmt.Printf("Paths=%s\n", strings.Join(job.Paths, ","))
	}
}

func init() {
	jobsCmd.AddCommand(jobsPurgeCmd)
	jobsCmd.AddCommand(jobsPurgeAllCmd)
	jobsCmd.AddCommand(jobsPrefetchCmd)
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsDetailCmd)

	jobsPurgeCmd.Flags().StringP("resource-id", "r", "", "The ID of the resource which you'd like to purge files from")
	jobsPurgeCmd.Flags().StringP("paths", "p", "", "A comma separated list of paths you'd like to clear. Can contain wildcards (*)")
	_ = jobsPurgeCmd.MarkFlagRequired("resource-id")
	_ = jobsPurgeCmd.MarkFlagRequired("paths")

	jobsPurgeAllCmd.Flags().StringP("resource-id", "r", "", "The ID of the resource which you'd like to purge all files from")
	_ = jobsPurgeAllCmd.MarkFlagRequired("resource-id")

	jobsPrefetchCmd.Flags().StringP("resource-id", "r", "", "The ID of the resource which you'd like to prefetch files into")
	jobsPrefetchCmd.Flags().StringP("paths", "p", "", "A comma separated list of paths you'd like to prefetch")
	jobsPrefetchCmd.Flags().String("upstream-host", "", "Fetch the files from this host instead of the configured origin")
	_ = jobsPrefetchCmd.MarkFlagRequired("resource-id")
	_ = jobsPrefetchCmd.MarkFlagRequired("paths")

	jobsListCmd.Flags().StringP("resource-id", "r", "", "The ID of the resource whose job log you'd like to list")
	jobsListCmd.Flags().String("type", "", "The job type to list: purge, purge-all or prefetch")
	_ = jobsListCmd.MarkFlagRequired("resource-id")
	_ = jobsListCmd.MarkFlagRequired("type")

	jobsDetailCmd.Flags().StringP("resource-id", "r", "", "The ID of the resource the job belongs to")
	jobsDetailCmd.Flags().String("job-id", "", "The ID of the job to show")
	_ = jobsDetailCmd.MarkFlagRequired("resource-id")
	_ = jobsDetailCmd.MarkFlagRequired("job-id")
}
