package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/perchhub/perch-config/internal/system"
)

func init() {
	RootCmd.AddCommand(reloadCmd)
}

var reloadCmd = &cobra.Command{
	Use:       "reload [hub|proxy]",
	Short:     "Reload a component to apply configuration changes",
	ValidArgs: []string{"hub", "proxy"},
	Long: `Restarts a Perch component and waits until it is serving again.

Reloading the hub restarts the hub service and polls its API endpoint
until it answers. Reloading the proxy restarts the proxy service and
waits for the unit to report active. The component defaults to hub.

Examples:
  perch-config reload
  perch-config reload hub
  perch-config reload proxy`,
	Args: cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		component := "hub"
		if len(args) == 1 {
			component = args[0]
		}

		switch component {
		case "hub":
			return reloadHub(cmd)
		case "proxy":
			return reloadProxy(cmd)
		default:
			return fmt.Errorf("unknown component %q", component)
		}
	},
}

func reloadHub(cmd *cobra.Command) error {
	doc, err := newStore().Load()
	if err != nil {
		return err
	}
	address, port, baseURL := system.HubEndpoint(doc)
	Logger.Debugf("Hub endpoint: address=%q port=%d base_url=%q", address, port, baseURL)

	Logger.Infof("Restarting %s", system.HubService)
	if err := system.RestartService(system.HubService); err != nil {
		return err
	}

	_, stop := startSpinner("Waiting for the hub to come back...")
	for !system.ServiceActive(system.HubService) {
		time.Sleep(time.Second)
	}
	for !system.HubReady(address, port, baseURL) {
		time.Sleep(time.Second)
	}
	stop()

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Hub reload with new configuration complete")
	return nil
}

func reloadProxy(cmd *cobra.Command) error {
	Logger.Infof("Restarting %s", system.ProxyService)
	if err := system.RestartService(system.ProxyService); err != nil {
		return err
	}

	_, stop := startSpinner("Waiting for the proxy to come back...")
	for !system.ServiceActive(system.ProxyService) {
		time.Sleep(time.Second)
	}
	stop()

	fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓")+" Proxy reload with new configuration complete")
	return nil
}
