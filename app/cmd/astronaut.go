package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/wuzfei/go-helper/slices"
	"go-hangar/app/internal/constants"
	"go-hangar/app/service/astronaut"
)

var astronautCmd = &cobra.Command{
	Use:   "astronaut",
	Short: "宇航员管理",
}

var astronautFlags struct {
	name string
	role string
}

func astronautReq(cmd *cobra.Command) *astronaut.SaveReq {
	req := &astronaut.SaveReq{}
	if cmd.Flags().Changed("name") {
		req.Name = &astronautFlags.name
	}
	if cmd.Flags().Changed("role") {
		req.Role = &astronautFlags.role
	}
	return req
}

func parseIds(args []string) ([]int64, error) {
	ids := make([]int64, len(args))
	for i, a := range args {
		id, err := parseId(a)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

var astronautListCmd = &cobra.Command{
	Use:   "list SPACECRAFT_ID",
	Short: "飞船的宇航员",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIds(args)
		if err != nil {
			return err
		}
		list, err := newClient().Astronauts(cmd.Context(), ids[0])
		if err != nil {
			return err
		}
		return printAstronauts(cmd.OutOrStdout(), list)
	},
}

var astronautAddCmd = &cobra.Command{
	Use:   "add SPACECRAFT_ID",
	Short: "创建",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIds(args)
		if err != nil {
			return err
		}
		list, err := newClient().AddAstronaut(cmd.Context(), ids[0], astronautReq(cmd))
		if err != nil {
			return err
		}
		return printAstronauts(cmd.OutOrStdout(), list)
	},
}

var astronautUpdateCmd = &cobra.Command{
	Use:   "update SPACECRAFT_ID ASTRONAUT_ID",
	Short: "修改，只修改传入的字段",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIds(args)
		if err != nil {
			return err
		}
		list, err := newClient().SaveAstronaut(cmd.Context(), ids[0], ids[1], astronautReq(cmd))
		if err != nil {
			return err
		}
		return printAstronauts(cmd.OutOrStdout(), list)
	},
}

var astronautDeleteCmd = &cobra.Command{
	Use:   "delete SPACECRAFT_ID ASTRONAUT_ID",
	Short: "删除",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids, err := parseIds(args)
		if err != nil {
			return err
		}
		list, err := newClient().DeleteAstronaut(cmd.Context(), ids[0], ids[1])
		if err != nil {
			return err
		}
		return printAstronauts(cmd.OutOrStdout(), list)
	},
}

func init() {
	for _, c := range []*cobra.Command{astronautAddCmd, astronautUpdateCmd} {
		f := c.Flags()
		f.StringVar(&astronautFlags.name, "name", "", "姓名")
		f.StringVar(&astronautFlags.role, "role", "", "角色 "+rolesHelp())
	}
	astronautCmd.AddCommand(astronautListCmd, astronautAddCmd, astronautUpdateCmd, astronautDeleteCmd)
}

func rolesHelp() string {
	return "[" + strings.Join(slices.Map(constants.Roles(), func(item constants.Role, k int) string {
		return string(item)
	}), "|") + "]"
}
