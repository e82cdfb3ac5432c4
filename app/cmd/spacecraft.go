package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go-hangar/app/client"
	"go-hangar/app/service/spacecraft"
)

var spacecraftCmd = &cobra.Command{
	Use:   "spacecraft",
	Short: "飞船管理",
}

var listFlags struct {
	filters  []string
	sort     string
	desc     bool
	page     int
	pageSize int
	all      bool
}

var spacecraftFlags struct {
	name     string
	maxSpeed int
	weight   int
}

// viewState 由命令行参数组装列表状态
func viewState() (client.ViewState, error) {
	v := client.NewViewState()
	for _, f := range listFlags.filters {
		field, value, ok := strings.Cut(f, "=")
		if !ok {
			return v, fmt.Errorf("invalid filter %q, want field=value", f)
		}
		v = v.Filter(field, value)
	}
	if listFlags.sort != "" {
		v = v.SortBy(listFlags.sort)
		if listFlags.desc {
			v.SortOrder = -1
		}
	}
	if listFlags.all {
		v.Page = nil
	} else {
		page := listFlags.page
		v.Page = &page
	}
	v.PageSize = listFlags.pageSize
	return v, nil
}

func spacecraftReq(cmd *cobra.Command) *spacecraft.SaveReq {
	req := &spacecraft.SaveReq{}
	if cmd.Flags().Changed("name") {
		req.Name = &spacecraftFlags.name
	}
	if cmd.Flags().Changed("max-speed") {
		req.MaxSpeed = &spacecraftFlags.maxSpeed
	}
	if cmd.Flags().Changed("weight") {
		req.Weight = &spacecraftFlags.weight
	}
	return req
}

var spacecraftListCmd = &cobra.Command{
	Use:   "list",
	Short: "列表",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := viewState()
		if err != nil {
			return err
		}
		res, err := newClient().Spacecrafts(cmd.Context(), v)
		if err != nil {
			return err
		}
		if err = printSpacecrafts(cmd.OutOrStdout(), res.Records); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "total: %d\n", res.Count)
		return err
	},
}

var spacecraftShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "详情，包含宇航员",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseId(args[0])
		if err != nil {
			return err
		}
		m, err := newClient().Spacecraft(cmd.Context(), id)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d  %s  maxSpeed=%d  weight=%d\n\n", m.ID, m.Name, m.MaxSpeed, m.Weight)
		return printAstronauts(out, m.Astronauts)
	},
}

var spacecraftAddCmd = &cobra.Command{
	Use:   "add",
	Short: "创建",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := viewState()
		if err != nil {
			return err
		}
		res, err := newClient().AddSpacecraft(cmd.Context(), spacecraftReq(cmd), v)
		if err != nil {
			return err
		}
		return printSpacecrafts(cmd.OutOrStdout(), res.Records)
	},
}

var spacecraftUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "修改，只修改传入的字段",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseId(args[0])
		if err != nil {
			return err
		}
		v, err := viewState()
		if err != nil {
			return err
		}
		res, err := newClient().SaveSpacecraft(cmd.Context(), id, spacecraftReq(cmd), v)
		if err != nil {
			return err
		}
		return printSpacecrafts(cmd.OutOrStdout(), res.Records)
	},
}

var spacecraftDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "删除飞船及其宇航员",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseId(args[0])
		if err != nil {
			return err
		}
		v, err := viewState()
		if err != nil {
			return err
		}
		res, err := newClient().DeleteSpacecraft(cmd.Context(), id, v)
		if err != nil {
			return err
		}
		return printSpacecrafts(cmd.OutOrStdout(), res.Records)
	},
}

func init() {
	for _, c := range []*cobra.Command{spacecraftListCmd, spacecraftAddCmd, spacecraftUpdateCmd, spacecraftDeleteCmd} {
		f := c.Flags()
		f.StringArrayVar(&listFlags.filters, "filter", nil, "筛选 field=value，返回大于等于value的记录，可多次指定")
		f.StringVar(&listFlags.sort, "sort", "", "排序字段")
		f.BoolVar(&listFlags.desc, "desc", false, "倒序")
		f.IntVar(&listFlags.page, "page", 0, "页码，从0开始")
		f.IntVar(&listFlags.pageSize, "page-size", 3, "每页条数")
		f.BoolVar(&listFlags.all, "all", false, "不分页")
	}
	for _, c := range []*cobra.Command{spacecraftAddCmd, spacecraftUpdateCmd} {
		f := c.Flags()
		f.StringVar(&spacecraftFlags.name, "name", "", "名称")
		f.IntVar(&spacecraftFlags.maxSpeed, "max-speed", 0, "最大速度")
		f.IntVar(&spacecraftFlags.weight, "weight", 0, "重量")
	}
	spacecraftCmd.AddCommand(spacecraftListCmd, spacecraftShowCmd, spacecraftAddCmd, spacecraftUpdateCmd, spacecraftDeleteCmd)
}
