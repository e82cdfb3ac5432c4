package cmd

import (
	"github.com/spf13/cobra"
	"go-hangar/app/api"
	"go-hangar/app/global"
	"go-hangar/app/migration"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "启动http服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf.Init()
		defer conf.Close()
		if err := migration.NewMigration(global.Log, global.DB).Setup(); err != nil {
			return err
		}
		ctx, cancel := signalContext()
		defer cancel()
		server := api.NewServer(&conf, global.Log, global.DB, global.Hub, global.Publisher, webFs)
		return server.Run(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "创建缺失的数据表",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf.Init()
		defer conf.Close()
		return migration.NewMigration(global.Log, global.DB).Setup()
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "删除并重建全部数据表，数据会全部丢失",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf.Init()
		defer conf.Close()
		return migration.NewMigration(global.Log, global.DB).Reset()
	},
}
