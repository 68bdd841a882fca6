package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.toml"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "salonbook",
		Short:         "Сервис записи в салоны красоты: расчет свободного времени мастеров и записи клиентов",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "путь к config.toml")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newSlotsCmd(&configPath))
	root.AddCommand(newCatalogCmd(&configPath))

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
