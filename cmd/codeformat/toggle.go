package main

import (
	"fmt"

	"github.com/dgallion1/codeformat/internal/settings"
	"github.com/spf13/cobra"
)

func enableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Turn indentation on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(cmd, true)
		},
	}
}

func disableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable",
		Short: "Turn indentation off; documents pass through at level 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(cmd, false)
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether indentation is on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := settings.Open()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Formatting: %s\n", onOff(store.Active()))
			fmt.Fprintf(cmd.OutOrStdout(), "Settings:   %s\n", store.Path())
			return nil
		},
	}
}

func setActive(cmd *cobra.Command, active bool) error {
	store, err := settings.Open()
	if err != nil {
		return err
	}
	if err := store.SetActive(active); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Formatting %s\n", onOff(active))
	return nil
}

func onOff(active bool) string {
	if active {
		return "on"
	}
	return "off"
}
