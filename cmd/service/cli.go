package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nsleadprovider/internal/model"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configPath string

	serve := func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx, configPath)
	}

	root := &cobra.Command{
		Use:           "nsleadprovider",
		Short:         "Nsleadprovider 服務下單與審核後端",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML 設定檔路徑 (可省略，環境變數優先)")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "啟動 HTTP 服務",
		Args:  cobra.NoArgs,
		RunE:  serve,
	})

	root.AddCommand(&cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "執行或退回資料庫 migration",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := migrate(configPath, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrate %s done\n", args[0])
			return nil
		},
	})

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "管理使用者角色",
	}
	for name, role := range map[string]model.Role{"promote": model.RoleAdmin, "demote": model.RoleUser} {
		name, role := name, role
		userCmd.AddCommand(&cobra.Command{
			Use:   name + " <email>",
			Short: fmt.Sprintf("將使用者角色設為 %s", role),
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := setRole(cmd.Context(), configPath, args[0], role); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", args[0], role)
				return nil
			},
		})
	}
	root.AddCommand(userCmd)

	return root
}
