package cmd

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wuzfei/go-helper/slices"
	"go-hangar/app/client"
	"go-hangar/app/model"
)

var serverURL string

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "通过接口删除并重建全部数据表，需要--admin.token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Sync(cmd.Context()); err != nil {
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "created")
		return err
	},
}

func init() {
	for _, c := range []*cobra.Command{spacecraftCmd, astronautCmd, syncCmd} {
		c.PersistentFlags().StringVar(&serverURL, "server", "", "服务地址，为空时根据--api.address推断")
	}
}

// baseURL 监听全部地址时访问本机
func baseURL() string {
	if serverURL != "" {
		return serverURL
	}
	host, port, err := net.SplitHostPort(conf.Api.Address)
	if err != nil {
		return "http://" + conf.Api.Address
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}

func newClient() *client.Client {
	return client.New(baseURL(), client.WithAdminToken(conf.Admin.Token))
}

func parseId(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func writeTable(w io.Writer, header []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

func spacecraftRows(list []*model.Spacecraft) [][]string {
	return slices.Map(list, func(item *model.Spacecraft, k int) []string {
		return []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			strconv.Itoa(item.MaxSpeed),
			strconv.Itoa(item.Weight),
			strconv.Itoa(len(item.Astronauts)),
		}
	})
}

func astronautRows(list []*model.Astronaut) [][]string {
	return slices.Map(list, func(item *model.Astronaut, k int) []string {
		return []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Role.String(),
		}
	})
}

func printSpacecrafts(w io.Writer, list []*model.Spacecraft) error {
	return writeTable(w, []string{"ID", "NAME", "MAX SPEED", "WEIGHT", "CREW"}, spacecraftRows(list))
}

func printAstronauts(w io.Writer, list []*model.Astronaut) error {
	return writeTable(w, []string{"ID", "NAME", "ROLE"}, astronautRows(list))
}
