package cmd

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/wuzfei/cfgstruct/cfgstruct"
	"go-hangar/app/global"
)

var (
	conf  global.Config
	webFs fs.FS
)

var rootCmd = &cobra.Command{
	Use:   "hangar",
	Short: "飞船和宇航员管理",
}

func init() {
	cfgstruct.Bind(rootCmd.PersistentFlags(), &conf, cfgstruct.DefaultsFlag(rootCmd))
	rootCmd.AddCommand(
		runCmd,
		migrateCmd,
		resetCmd,
		spacecraftCmd,
		astronautCmd,
		syncCmd,
	)
}

// Execute web为页面文件，index.html位于根目录
func Execute(web fs.FS) {
	webFs = web
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
