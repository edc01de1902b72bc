package subwayctl

import (
	"fmt"
	"strconv"

	subwayv1 "github.com/louisbranch/subway/api/gen/go/subway/v1"
	"github.com/louisbranch/subway/internal/services/subway/seed"
	"github.com/spf13/cobra"
)

type pageFlags struct {
	size  int32
	token string
}

func (p *pageFlags) bind(cmd *cobra.Command) {
	cmd.Flags().Int32Var(&p.size, "page-size", 0, "maximum results per page")
	cmd.Flags().StringVar(&p.token, "page-token", "", "token from a previous page")
}

func parseID(kind, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s id must be a positive number, got %q", kind, raw)
	}
	return id, nil
}

func stationsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "stations", Short: "Manage stations"}

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Register a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.CreateStation(ctx, &subwayv1.CreateStationRequest{Name: args[0]})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderStation(resp.GetStation()))
			return nil
		},
	}

	var page pageFlags
	list := &cobra.Command{
		Use:   "list",
		Short: "List stations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.ListStations(ctx, &subwayv1.ListStationsRequest{PageSize: page.size, PageToken: page.token})
			if err != nil {
				return describeError(err)
			}
			for _, station := range resp.Stations {
				fmt.Fprintln(cmd.OutOrStdout(), RenderStation(station))
			}
			printNextPage(cmd, resp.NextPageToken)
			return nil
		},
	}
	page.bind(list)

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("station", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.GetStation(ctx, &subwayv1.GetStationRequest{StationId: id})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderStation(resp.GetStation()))
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a station no line uses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("station", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			if _, err := client.DeleteStation(ctx, &subwayv1.DeleteStationRequest{StationId: id}); err != nil {
				return describeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "station %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(create, list, get, remove)
	return cmd
}

func linesCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "lines", Short: "Manage lines"}

	var first sectionFlags
	var color string
	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a line with its first section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.CreateLine(ctx, &subwayv1.CreateLineRequest{
				Name:          args[0],
				Color:         color,
				UpStationId:   first.up,
				DownStationId: first.down,
				Distance:      first.distance,
			})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderLine(resp.GetLine()))
			return nil
		},
	}
	create.Flags().StringVar(&color, "color", "", "line color")
	create.Flags().Int64Var(&first.up, "up", 0, "up terminal station id")
	create.Flags().Int64Var(&first.down, "down", 0, "down terminal station id")
	create.Flags().Int64Var(&first.distance, "distance", 0, "distance between the two stations")

	var page pageFlags
	var filter string
	list := &cobra.Command{
		Use:   "list",
		Short: "List lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.ListLines(ctx, &subwayv1.ListLinesRequest{
				PageSize:  page.size,
				PageToken: page.token,
				Filter:    filter,
			})
			if err != nil {
				return describeError(err)
			}
			for _, line := range resp.Lines {
				fmt.Fprintln(cmd.OutOrStdout(), RenderLine(line))
			}
			printNextPage(cmd, resp.NextPageToken)
			return nil
		},
	}
	page.bind(list)
	list.Flags().StringVar(&filter, "filter", "", `filter expression, e.g. color = "bg-red-600"`)

	get := &cobra.Command{
		Use:   "get ID",
		Short: "Show a line with its stations in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.GetLine(ctx, &subwayv1.GetLineRequest{LineId: id})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderLine(resp.GetLine()))
			return nil
		},
	}

	var name, newColor string
	update := &cobra.Command{
		Use:   "update ID",
		Short: "Rename or recolor a line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.UpdateLine(ctx, &subwayv1.UpdateLineRequest{LineId: id, Name: name, Color: newColor})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderLine(resp.GetLine()))
			return nil
		},
	}
	update.Flags().StringVar(&name, "name", "", "new line name")
	update.Flags().StringVar(&newColor, "color", "", "new line color")

	remove := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a line and its sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			if _, err := client.DeleteLine(ctx, &subwayv1.DeleteLineRequest{LineId: id}); err != nil {
				return describeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "line %d deleted\n", id)
			return nil
		},
	}

	cmd.AddCommand(create, list, get, update, remove)
	return cmd
}

// sectionFlags holds the --up, --down and --distance values of one section.
type sectionFlags struct {
	up, down, distance int64
}

func sectionsCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "sections", Short: "Extend or shorten a line at its down terminal"}

	var next sectionFlags
	add := &cobra.Command{
		Use:   "add LINE_ID",
		Short: "Append a section after the down terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.AddSection(ctx, &subwayv1.AddSectionRequest{
				LineId:        id,
				UpStationId:   next.up,
				DownStationId: next.down,
				Distance:      next.distance,
			})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderLine(resp.GetLine()))
			return nil
		},
	}
	add.Flags().Int64Var(&next.up, "up", 0, "up station id, the line's current down terminal")
	add.Flags().Int64Var(&next.down, "down", 0, "new down terminal station id")
	add.Flags().Int64Var(&next.distance, "distance", 0, "section distance")

	var stationID int64
	remove := &cobra.Command{
		Use:   "delete LINE_ID",
		Short: "Remove the down terminal station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("line", args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			resp, err := client.DeleteSection(ctx, &subwayv1.DeleteSectionRequest{LineId: id, StationId: stationID})
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), RenderLine(resp.GetLine()))
			return nil
		},
	}
	remove.Flags().Int64Var(&stationID, "station", 0, "station id to remove")

	cmd.AddCommand(add, remove)
	return cmd
}

func seedCmd(s *session) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "seed FILE",
		Short: "Create the stations and lines declared in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := seed.LoadManifest(args[0])
			if err != nil {
				return err
			}
			client, err := s.subway(cmd.Context())
			if err != nil {
				return err
			}
			ctx, cancel := s.requestContext(cmd.Context())
			defer cancel()
			result, err := seed.NewRunner(client, cmd.OutOrStdout(), verbose).Run(ctx, manifest)
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded: %d stations, %d lines (%d existing), %d extra sections\n",
				result.StationsCreated, result.LinesCreated, result.LinesSkipped, result.SectionsAdded)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print each created record")
	return cmd
}

func printNextPage(cmd *cobra.Command, token string) {
	if token == "" {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), faintStyle.Render("next page: --page-token "+token))
}
